package world

import (
	"math/rand"
)

// WildType selects which encounter table a tile rolls on.
type WildType uint8

const (
	WildLand WildType = iota
	WildWater
)

// String returns a human-readable wild type name.
func (w WildType) String() string {
	switch w {
	case WildLand:
		return "land"
	case WildWater:
		return "water"
	default:
		return "unknown"
	}
}

// WildEncounter is one slot of an encounter table.
type WildEncounter struct {
	Species  string `json:"species"`
	MinLevel int    `json:"min_level"`
	MaxLevel int    `json:"max_level"`
}

// WildEntry is a map's encounter table for one wild type. Ratio out of 256
// is the chance a step on a wild tile starts a battle.
type WildEntry struct {
	Ratio      uint8           `json:"ratio"`
	Encounters []WildEncounter `json:"encounters"`
}

// WildEntries holds a map's tables per wild type.
type WildEntries map[WildType]*WildEntry

// WildChances holds the world-wide slot weights per wild type. Slot i of a
// map's table is picked with weight chances[type][i].
type WildChances map[WildType][]int

// WildBattle is a generated wild encounter.
type WildBattle struct {
	Species string `json:"species"`
	Level   int    `json:"level"`
}

// Generate rolls a step on a wild tile. It returns nil when no battle
// starts.
func (e WildEntries) Generate(kind WildType, chances WildChances, rng *rand.Rand) *WildBattle {
	entry, ok := e[kind]
	if !ok || entry == nil || len(entry.Encounters) == 0 {
		return nil
	}
	if rng.Intn(256) >= int(entry.Ratio) {
		return nil
	}
	slot := pickSlot(chances[kind], len(entry.Encounters), rng)
	encounter := entry.Encounters[slot]

	level := encounter.MinLevel
	if spread := encounter.MaxLevel - encounter.MinLevel; spread > 0 {
		level += rng.Intn(spread + 1)
	}
	return &WildBattle{Species: encounter.Species, Level: level}
}

// pickSlot draws a slot index weighted by the first n weights. Without
// usable weights every slot is equally likely.
func pickSlot(weights []int, n int, rng *rand.Rand) int {
	total := 0
	for i := 0; i < n && i < len(weights); i++ {
		total += max(weights[i], 0)
	}
	if total <= 0 {
		return rng.Intn(n)
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := 0; i < n && i < len(weights); i++ {
		cumulative += max(weights[i], 0)
		if roll < cumulative {
			return i
		}
	}
	return 0
}
