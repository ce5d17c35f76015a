package gamedata

import (
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

// rawWorld is the on-disk bundle.
type rawWorld struct {
	Spawn     positions.Spawn                   `json:"spawn"`
	Palettes  map[world.PaletteID]rawPalette    `json:"palettes"`
	NpcGroups map[entity.NpcGroupID]rawNpcGroup `json:"npc_groups"`
	Wild      map[string][]int                  `json:"wild"`
	Tiles     map[world.TileID]rawTileStyle     `json:"tiles"`
	Maps      []rawMap                          `json:"maps"`
	Caves     []rawCave                         `json:"caves"`
}

type rawPalette struct {
	Warp       map[world.TileID]string                `json:"warp"`
	Cliffs     map[positions.Direction][]world.TileID `json:"cliffs"`
	Wild       []world.TileID                         `json:"wild"`
	Forwarding []world.TileID                         `json:"forwarding"`
}

type rawNpcGroup struct {
	Message string           `json:"message"`
	Trainer *rawTrainerGroup `json:"trainer,omitempty"`
}

type rawTrainerGroup struct {
	Name  string `json:"name"`
	Music string `json:"music"`
}

type rawTileStyle struct {
	Glyph string `json:"glyph"`
	Fg    string `json:"fg"`
	Bg    string `json:"bg"`
}

// rawCell is one legend entry: the tile drawn and its movement code.
type rawCell struct {
	Tile     world.TileID     `json:"tile"`
	Movement world.MovementID `json:"movement"`
}

// rawMap draws its grid as Rows, one character per tile, decoded through
// Legend.
type rawMap struct {
	Location positions.Location                         `json:"location"`
	Name     string                                     `json:"name"`
	Music    string                                     `json:"music"`
	Palettes [2]world.PaletteID                         `json:"palettes"`
	Border   [4]world.TileID                            `json:"border"`
	Rows     []string                                   `json:"rows"`
	Legend   map[string]rawCell                         `json:"legend"`
	Chunk    map[positions.Direction][]world.Connection `json:"chunk,omitempty"`
	Warps    []rawWarp                                  `json:"warps,omitempty"`
	Wild     map[string]world.WildEntry                 `json:"wild,omitempty"`
	Npcs     []rawNpc                                   `json:"npcs,omitempty"`
	Objects  []rawObject                                `json:"objects,omitempty"`
	Items    []rawItem                                  `json:"items,omitempty"`
	Settings rawSettings                                `json:"settings"`
}

type rawWarp struct {
	ID          string                    `json:"id"`
	Area        positions.BoundingBox     `json:"area"`
	Destination positions.WarpDestination `json:"destination"`
}

type rawNpc struct {
	ID        entity.NpcID         `json:"id"`
	Group     entity.NpcGroupID    `json:"group"`
	Name      string               `json:"name"`
	Coords    positions.Coordinate `json:"coords"`
	Direction positions.Direction  `json:"direction"`
	Elevation *positions.Elevation `json:"elevation,omitempty"`
	Movement  []rawNpcMovement     `json:"movement,omitempty"`
	Message   [][]string           `json:"message,omitempty"`
	Trainer   *rawTrainer          `json:"trainer,omitempty"`
}

type rawNpcMovement struct {
	Kind       string                `json:"kind"`
	Directions []positions.Direction `json:"directions,omitempty"`
	Area       int32                 `json:"area,omitempty"`
}

type rawTrainer struct {
	Sight       int32           `json:"sight"`
	Encounter   [][]string      `json:"encounter"`
	Defeat      [][]string      `json:"defeat"`
	Party       []entity.Member `json:"party"`
	AlsoDisable []entity.NpcID  `json:"also_disable,omitempty"`
}

type rawObject struct {
	Coords positions.Coordinate `json:"coords"`
	Group  world.ObjectGroup    `json:"group"`
}

type rawItem struct {
	Coords positions.Coordinate `json:"coords"`
	Item   entity.ItemID        `json:"item"`
}

type rawSettings struct {
	FlyPosition *positions.Coordinate `json:"fly_position,omitempty"`
	Brightness  string                `json:"brightness,omitempty"`
}

// rawCave declares a procedurally generated cave.
type rawCave struct {
	Location positions.Location         `json:"location"`
	Name     string                     `json:"name"`
	Music    string                     `json:"music"`
	Width    int32                      `json:"width"`
	Height   int32                      `json:"height"`
	Palettes [2]world.PaletteID         `json:"palettes"`
	Floor    world.TileID               `json:"floor"`
	Wall     world.TileID               `json:"wall"`
	Exit     positions.WarpDestination  `json:"exit"`
	Wild     map[string]world.WildEntry `json:"wild,omitempty"`
}
