package overworld

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/world"
)

// Warp moves the player to dest if that map exists. The player is left
// untouched otherwise.
func (m *Manager) Warp(ctx context.Context, player *entity.Player, dest positions.WarpDestination) bool {
	ctx, span := telemetry.Tracer("overworld").Start(ctx, "overworld.warp")
	defer span.End()
	span.SetAttributes(
		telemetry.Location("warp.from", player.Location),
		telemetry.Location("warp.to", dest.Location),
	)

	if !m.Contains(dest.Location) {
		span.SetAttributes(attribute.Bool("warp.rejected", true))
		m.log.WithFields(logrus.Fields{
			"from": player.Location.String(),
			"to":   dest.Location.String(),
		}).Warn("warp to unknown map rejected")
		return false
	}

	from := player.Location
	player.Relocate(dest.Location, dest.Position)
	m.onMapChange(ctx, from, player)
	return true
}

// WarpTileAt classifies the tile at coords on the player's map.
func (m *Manager) WarpTileAt(player *entity.Player, coords positions.Coordinate) (world.PaletteID, world.TileID, world.WarpTile, bool) {
	current := m.Map(player.Location)
	if current == nil {
		return 0, 0, 0, false
	}
	tile, ok := current.Tile(coords)
	if !ok {
		return 0, 0, 0, false
	}
	palette, kind, ok := m.data.Palettes.WarpTile(current, tile)
	return palette, tile, kind, ok
}

func (m *Manager) onMapChange(ctx context.Context, from positions.Location, player *entity.Player) {
	_, span := telemetry.Tracer("overworld").Start(ctx, "overworld.map_change")
	defer span.End()

	current := m.Map(player.Location)
	if current == nil {
		return
	}
	span.SetAttributes(
		telemetry.Location("map.from", from),
		telemetry.Location("map.to", current.ID),
		attribute.String("map.music", string(current.Music)),
	)

	m.queue.Send(actions.MapChange{From: from, To: current.ID})
	m.queue.Send(actions.PlayMusic{Music: current.Music})
	m.log.WithFields(logrus.Fields{
		"from": from.String(),
		"to":   current.ID.String(),
		"name": current.Name,
	}).Info("map changed")
}
