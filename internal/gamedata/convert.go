package gamedata

import (
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

func parseWarpTile(s string) (world.WarpTile, error) {
	switch s {
	case "door":
		return world.WarpTileDoor, nil
	case "stair":
		return world.WarpTileStair, nil
	case "other":
		return world.WarpTileOther, nil
	default:
		return 0, fmt.Errorf("unknown warp tile kind %q", s)
	}
}

func parseWildType(s string) (world.WildType, error) {
	switch s {
	case "land":
		return world.WildLand, nil
	case "water":
		return world.WildWater, nil
	default:
		return 0, fmt.Errorf("unknown wild type %q", s)
	}
}

func parseMessageColor(s string) (world.MessageColor, error) {
	switch s {
	case "", "black":
		return world.MessageBlack, nil
	case "white":
		return world.MessageWhite, nil
	case "red":
		return world.MessageRed, nil
	case "blue":
		return world.MessageBlue, nil
	default:
		return 0, fmt.Errorf("unknown message color %q", s)
	}
}

func parseBrightness(s string) (world.Brightness, error) {
	switch s {
	case "", "day":
		return world.Day, nil
	case "night":
		return world.Night, nil
	default:
		return 0, fmt.Errorf("unknown brightness %q", s)
	}
}

func parseNpcMovement(s string) (entity.NpcMovementKind, error) {
	switch s {
	case "look":
		return entity.NpcLook, nil
	case "wander":
		return entity.NpcWander, nil
	default:
		return 0, fmt.Errorf("unknown npc movement %q", s)
	}
}

func convertPalettes(raw map[world.PaletteID]rawPalette) (world.Palettes, error) {
	palettes := make(world.Palettes, len(raw))
	for id, rp := range raw {
		data := &world.PaletteTileData{
			Warp:       make(map[world.TileID]world.WarpTile, len(rp.Warp)),
			Cliffs:     rp.Cliffs,
			Wild:       rp.Wild,
			Forwarding: rp.Forwarding,
		}
		for tile, kind := range rp.Warp {
			parsed, err := parseWarpTile(kind)
			if err != nil {
				return nil, fmt.Errorf("palette %d tile %d: %w", id, tile, err)
			}
			data.Warp[tile] = parsed
		}
		palettes[id] = data
	}
	return palettes, nil
}

func convertNpcGroups(raw map[entity.NpcGroupID]rawNpcGroup) (map[entity.NpcGroupID]world.NpcGroup, error) {
	groups := make(map[entity.NpcGroupID]world.NpcGroup, len(raw))
	for id, rg := range raw {
		color, err := parseMessageColor(rg.Message)
		if err != nil {
			return nil, fmt.Errorf("npc group %s: %w", id, err)
		}
		group := world.NpcGroup{Message: color}
		if rg.Trainer != nil {
			group.Trainer = &world.TrainerGroup{
				Name:  rg.Trainer.Name,
				Music: world.MusicID(rg.Trainer.Music),
			}
		}
		groups[id] = group
	}
	return groups, nil
}

func convertWildChances(raw map[string][]int) (world.WildChances, error) {
	chances := make(world.WildChances, len(raw))
	for name, weights := range raw {
		kind, err := parseWildType(name)
		if err != nil {
			return nil, err
		}
		chances[kind] = weights
	}
	return chances, nil
}

func convertWildEntries(raw map[string]world.WildEntry) (world.WildEntries, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	entries := make(world.WildEntries, len(raw))
	for name, entry := range raw {
		kind, err := parseWildType(name)
		if err != nil {
			return nil, err
		}
		entry := entry
		entries[kind] = &entry
	}
	return entries, nil
}

// convertGrid decodes the row strings through the legend.
func convertGrid(rm rawMap) (width, height int32, tiles []world.TileID, movements []world.MovementID, err error) {
	height = int32(len(rm.Rows))
	if height == 0 {
		return 0, 0, nil, nil, fmt.Errorf("%w: no rows", world.ErrGridSize)
	}
	width = int32(utf8.RuneCountInString(rm.Rows[0]))

	tiles = make([]world.TileID, 0, int(width)*int(height))
	movements = make([]world.MovementID, 0, int(width)*int(height))
	for y, row := range rm.Rows {
		if n := int32(utf8.RuneCountInString(row)); n != width {
			return 0, 0, nil, nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", world.ErrGridSize, y, n, width)
		}
		for x, r := range []rune(row) {
			cell, ok := rm.Legend[string(r)]
			if !ok {
				return 0, 0, nil, nil, fmt.Errorf("row %d column %d: %q missing from legend", y, x, r)
			}
			tiles = append(tiles, cell.Tile)
			movements = append(movements, cell.Movement)
		}
	}
	return width, height, tiles, movements, nil
}

func convertNpc(rn rawNpc) (*entity.Npc, error) {
	elevation := positions.Ungrounded
	if rn.Elevation != nil {
		elevation = *rn.Elevation
	}
	npc := &entity.Npc{
		ID:    rn.ID,
		Group: rn.Group,
		Character: entity.Character{
			Name: rn.Name,
			Position: positions.Position{
				Coords:    rn.Coords,
				Direction: rn.Direction,
				Elevation: elevation,
			},
		},
	}
	for _, rm := range rn.Movement {
		kind, err := parseNpcMovement(rm.Kind)
		if err != nil {
			return nil, fmt.Errorf("npc %s: %w", rn.ID, err)
		}
		npc.Movement = append(npc.Movement, entity.NpcMovement{
			Kind:       kind,
			Directions: rm.Directions,
			Area:       rm.Area,
		})
	}
	if len(rn.Message) > 0 {
		npc.Interact = entity.NpcInteract{Kind: entity.InteractMessage, Pages: rn.Message}
	}
	if rt := rn.Trainer; rt != nil {
		npc.Trainer = &entity.Trainer{
			Sight:       rt.Sight,
			Encounter:   rt.Encounter,
			Defeat:      rt.Defeat,
			Party:       entity.Party(rt.Party),
			AlsoDisable: rt.AlsoDisable,
		}
	}
	return npc, nil
}

func convertMap(rm rawMap) (*world.WorldMap, error) {
	width, height, tiles, movements, err := convertGrid(rm)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", rm.Location, err)
	}
	brightness, err := parseBrightness(rm.Settings.Brightness)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", rm.Location, err)
	}
	wild, err := convertWildEntries(rm.Wild)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", rm.Location, err)
	}

	name := rm.Name
	if name == "" {
		name = rm.Location.Name
	}
	m := &world.WorldMap{
		ID:        rm.Location,
		Name:      name,
		Music:     world.MusicID(rm.Music),
		Width:     width,
		Height:    height,
		Palettes:  rm.Palettes,
		Tiles:     tiles,
		Movements: movements,
		Border:    rm.Border,
		Wild:      wild,
		Npcs:      make(map[entity.NpcID]*entity.Npc, len(rm.Npcs)),
		Settings: world.Settings{
			FlyPosition: rm.Settings.FlyPosition,
			Brightness:  brightness,
		},
	}
	if len(rm.Chunk) > 0 {
		m.Chunk = &world.Chunk{Connections: rm.Chunk}
	}
	for _, rw := range rm.Warps {
		m.Warps = append(m.Warps, world.Warp{ID: rw.ID, Area: rw.Area, Destination: rw.Destination})
	}
	for _, rn := range rm.Npcs {
		npc, err := convertNpc(rn)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", rm.Location, err)
		}
		if _, dup := m.Npcs[npc.ID]; dup {
			return nil, fmt.Errorf("map %s: duplicate npc %s", rm.Location, npc.ID)
		}
		m.Npcs[npc.ID] = npc
	}
	for _, ro := range rm.Objects {
		m.Objects = append(m.Objects, world.MapObject{Coords: ro.Coords, Group: ro.Group})
	}
	for _, ri := range rm.Items {
		m.Items = append(m.Items, world.MapItem{Coords: ri.Coords, Item: ri.Item})
	}
	return m, nil
}

func caveSpec(rc rawCave) (world.CaveSpec, error) {
	wild, err := convertWildEntries(rc.Wild)
	if err != nil {
		return world.CaveSpec{}, fmt.Errorf("cave %s: %w", rc.Location, err)
	}
	spec := world.CaveSpec{
		Location: rc.Location,
		Name:     rc.Name,
		Music:    world.MusicID(rc.Music),
		Width:    rc.Width,
		Height:   rc.Height,
		Palettes: rc.Palettes,
		Floor:    rc.Floor,
		Wall:     rc.Wall,
		Exit:     rc.Exit,
		Wild:     wild,
	}
	if spec.Width == 0 {
		spec.Width = world.DefaultCaveWidth
	}
	if spec.Height == 0 {
		spec.Height = world.DefaultCaveHeight
	}
	return spec, nil
}
