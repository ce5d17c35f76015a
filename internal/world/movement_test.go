package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/overworld/internal/positions"
)

func TestDecodeKnownCodes(t *testing.T) {
	tests := []struct {
		code  MovementID
		class TerrainClass
		level positions.Elevation
	}{
		{Crossing, TerrainCrossing, 0},
		{Obstacle, TerrainObstacle, 0},
		{Water, TerrainWater, 0},
		{WaterObstacle, TerrainWaterObstacle, 0},
		{HL1, TerrainElevation, 1},
		{HL2, TerrainElevation, 2},
		{HL3, TerrainElevation, 3},
		{HL4, TerrainElevation, 4},
		{HL4Obstacle, TerrainElevation, 4},
	}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			got := Decode(tt.code)
			assert.Equal(t, tt.class, got.Class)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.code, got.Encode())
		})
	}
}

func TestDecodeMalformedIsObstacle(t *testing.T) {
	for _, code := range []MovementID{0x2, 0x3, 0xA, 0x18, 0x19, 0xFE, 0xFF} {
		got := Decode(code)
		assert.True(t, got.Obstacle, "code %#x", code)
		assert.False(t, code.Walkable(), "code %#x", code)
	}
}

func TestCanMove(t *testing.T) {
	ground := positions.Elevation(1)
	assert.True(t, CanMove(ground, Crossing))
	assert.True(t, CanMove(ground, HL1))
	assert.False(t, CanMove(ground, HL3))
	assert.False(t, CanMove(ground, Obstacle))
	assert.False(t, CanMove(ground, HL1Obstacle))

	assert.True(t, CanMove(positions.Ungrounded, HL3))
	assert.True(t, CanMove(positions.Ungrounded, Water))
	assert.False(t, CanMove(positions.Ungrounded, Obstacle))
}

func TestCanMoveShoreline(t *testing.T) {
	assert.True(t, CanMove(2, Water))
	assert.True(t, CanMove(0, HL2))
	assert.False(t, CanMove(1, Water))
	assert.False(t, CanMove(0, HL1))
}

func TestChangeElevation(t *testing.T) {
	e := positions.Ungrounded
	ChangeElevation(&e, HL3)
	assert.Equal(t, positions.Elevation(3), e)

	ChangeElevation(&e, Crossing)
	assert.Equal(t, positions.Elevation(3), e)

	ChangeElevation(&e, Obstacle)
	assert.Equal(t, positions.Elevation(3), e)

	ChangeElevation(&e, Water)
	assert.Equal(t, positions.Elevation(0), e)
}
