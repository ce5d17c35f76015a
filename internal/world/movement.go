// Package world provides map units, their terrain encoding and the static
// world bundle.
package world

import "github.com/samdwyer/overworld/internal/positions"

// MovementID packs a tile's walkability and elevation into one byte.
//
//	bit 0     obstacle flag
//	bit 1     reserved, must be zero
//	bits 2-7  elevation field: 0 = crossing (no elevation), n = level n-1
//
// Level 0 is the water surface, so water is 0x4 and the four land levels
// are 0x8, 0xC, 0x10 and 0x14. Any code with the reserved bit set or an
// elevation field above 5 decodes as an obstacle.
type MovementID uint8

const (
	Crossing      MovementID = 0x0
	Obstacle      MovementID = 0x1
	Water         MovementID = 0x4
	WaterObstacle MovementID = 0x5
	HL1           MovementID = 0x8
	HL1Obstacle   MovementID = 0x9
	HL2           MovementID = 0xC
	HL2Obstacle   MovementID = 0xD
	HL3           MovementID = 0x10
	HL3Obstacle   MovementID = 0x11
	HL4           MovementID = 0x14
	HL4Obstacle   MovementID = 0x15
)

const (
	obstacleBit   = 0x1
	reservedBit   = 0x2
	elevationStep = 2
	maxField      = uint8(positions.MaxElevation) + 1
)

// TerrainClass is the decoded category of a movement code.
type TerrainClass uint8

const (
	TerrainCrossing TerrainClass = iota
	TerrainObstacle
	TerrainWater
	TerrainWaterObstacle
	TerrainElevation
)

// String returns a human-readable class name.
func (c TerrainClass) String() string {
	switch c {
	case TerrainCrossing:
		return "crossing"
	case TerrainObstacle:
		return "obstacle"
	case TerrainWater:
		return "water"
	case TerrainWaterObstacle:
		return "water_obstacle"
	case TerrainElevation:
		return "elevation"
	default:
		return "unknown"
	}
}

// Terrain is the explicit form of a MovementID. Level is meaningful only
// for TerrainElevation.
type Terrain struct {
	Class    TerrainClass
	Level    positions.Elevation
	Obstacle bool
}

// Decode unpacks a movement code.
func Decode(code MovementID) Terrain {
	field := uint8(code) >> elevationStep
	obstacle := code&obstacleBit != 0
	switch {
	case code&reservedBit != 0 || field > maxField:
		return Terrain{Class: TerrainObstacle, Obstacle: true}
	case field == 0 && obstacle:
		return Terrain{Class: TerrainObstacle, Obstacle: true}
	case field == 0:
		return Terrain{Class: TerrainCrossing}
	case field == 1 && obstacle:
		return Terrain{Class: TerrainWaterObstacle, Obstacle: true}
	case field == 1:
		return Terrain{Class: TerrainWater}
	default:
		return Terrain{Class: TerrainElevation, Level: positions.Elevation(field - 1), Obstacle: obstacle}
	}
}

// Encode packs the terrain back into its wire form.
func (t Terrain) Encode() MovementID {
	switch t.Class {
	case TerrainCrossing:
		return Crossing
	case TerrainWater:
		return Water
	case TerrainWaterObstacle:
		return WaterObstacle
	case TerrainElevation:
		if t.Level == 0 || !t.Level.Grounded() {
			return Obstacle
		}
		code := MovementID((uint8(t.Level) + 1) << elevationStep)
		if t.Obstacle {
			code |= obstacleBit
		}
		return code
	default:
		return Obstacle
	}
}

// Walkable reports whether anything could ever stand on the code. It
// ignores elevation and is what the pathfinder uses.
func (code MovementID) Walkable() bool {
	return !Decode(code).Obstacle
}

// IsWater reports whether the code is open water.
func (code MovementID) IsWater() bool {
	return code == Water
}

// Level returns the elevation the code places a mover on, if any.
func (code MovementID) Level() (positions.Elevation, bool) {
	t := Decode(code)
	switch {
	case t.Obstacle:
		return 0, false
	case t.Class == TerrainWater:
		return 0, true
	case t.Class == TerrainElevation:
		return t.Level, true
	default:
		return 0, false
	}
}

// CanMove decides whether a mover at elevation may enter a tile. Crossing
// is always enterable. An ungrounded mover may enter any open tile; a
// grounded one only its own level. The water surface sits at level 2's
// height, so water and level 2 connect directly. Whether a mover may
// actually swim is decided by the caller.
func CanMove(elevation positions.Elevation, code MovementID) bool {
	t := Decode(code)
	if t.Obstacle {
		return false
	}
	if t.Class == TerrainCrossing || !elevation.Grounded() {
		return true
	}
	level, _ := code.Level()
	if level == elevation {
		return true
	}
	return shoreline(level) && shoreline(elevation)
}

func shoreline(e positions.Elevation) bool {
	return e == 0 || e == 2
}

// ChangeElevation moves the mover onto the level the code encodes. Crossing
// and obstacle codes leave it untouched.
func ChangeElevation(elevation *positions.Elevation, code MovementID) {
	if level, ok := code.Level(); ok {
		*elevation = level
	}
}
