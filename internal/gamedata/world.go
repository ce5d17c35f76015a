package gamedata

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/world"
)

// Bundle is a loaded world plus how to draw it.
type Bundle struct {
	Data  *world.Data
	Tiles Tileset
}

// LoadWorld loads the embedded world. Caves are generated from seed.
func LoadWorld(ctx context.Context, seed int64) (*Bundle, error) {
	raw, err := Load[rawWorld](DefaultWorld)
	if err != nil {
		return nil, err
	}
	return build(ctx, DefaultWorld, raw, seed)
}

// LoadWorldFile loads a world bundle from disk.
func LoadWorldFile(ctx context.Context, path string, seed int64) (*Bundle, error) {
	raw, err := LoadFile[rawWorld](path)
	if err != nil {
		return nil, err
	}
	return build(ctx, path, raw, seed)
}

// MustLoadWorld loads the embedded world, panicking on error.
func MustLoadWorld(ctx context.Context, seed int64) *Bundle {
	bundle, err := LoadWorld(ctx, seed)
	if err != nil {
		panic(err)
	}
	return bundle
}

func build(ctx context.Context, source string, raw rawWorld, seed int64) (*Bundle, error) {
	ctx, span := telemetry.Tracer("gamedata").Start(ctx, "world.load")
	defer span.End()
	span.SetAttributes(attribute.String("world.source", source), attribute.Int64("world.seed", seed))

	bundle, err := convertWorld(ctx, raw, seed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load world %s: %w", source, err)
	}
	span.SetAttributes(attribute.Int("world.map_count", len(bundle.Data.Maps)))
	return bundle, nil
}

func convertWorld(ctx context.Context, raw rawWorld, seed int64) (*Bundle, error) {
	palettes, err := convertPalettes(raw.Palettes)
	if err != nil {
		return nil, err
	}
	groups, err := convertNpcGroups(raw.NpcGroups)
	if err != nil {
		return nil, err
	}
	chances, err := convertWildChances(raw.Wild)
	if err != nil {
		return nil, err
	}
	tiles, err := convertTileset(raw.Tiles)
	if err != nil {
		return nil, err
	}

	data := &world.Data{
		Maps:      make(map[positions.Location]*world.WorldMap, len(raw.Maps)+len(raw.Caves)),
		Palettes:  palettes,
		NpcGroups: groups,
		Wild:      chances,
		Spawn:     raw.Spawn,
	}
	for _, rm := range raw.Maps {
		m, err := convertMap(rm)
		if err != nil {
			return nil, err
		}
		if err := addMap(data, m); err != nil {
			return nil, err
		}
	}

	entrances := make(map[positions.Location]positions.Destination, len(raw.Caves))
	for i, rc := range raw.Caves {
		spec, err := caveSpec(rc)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(seed + int64(i)))
		cave, err := world.GenerateCave(ctx, spec, rng)
		if err != nil {
			return nil, err
		}
		if err := addMap(data, cave.Map); err != nil {
			return nil, err
		}
		entrances[spec.Location] = cave.Entrance
	}
	patchCaveWarps(data, entrances)

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &Bundle{Data: data, Tiles: tiles}, nil
}

func addMap(data *world.Data, m *world.WorldMap) error {
	if _, dup := data.Maps[m.ID]; dup {
		return fmt.Errorf("duplicate map %s", m.ID)
	}
	data.Maps[m.ID] = m
	return nil
}

// patchCaveWarps points warps into generated caves at the cave entrance,
// since authored coordinates cannot know where the rooms landed.
func patchCaveWarps(data *world.Data, entrances map[positions.Location]positions.Destination) {
	for _, m := range data.Maps {
		for i := range m.Warps {
			if entrance, ok := entrances[m.Warps[i].Destination.Location]; ok {
				m.Warps[i].Destination.Position = entrance
			}
		}
	}
}
