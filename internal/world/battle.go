package world

import "github.com/samdwyer/overworld/internal/entity"

// TrainerBattle describes a battle against a trainer NPC.
type TrainerBattle struct {
	Ref    entity.TrainerRef `json:"ref"`
	Name   string            `json:"name"`
	Music  MusicID           `json:"music"`
	Party  entity.Party      `json:"party"`
	Defeat [][]string        `json:"defeat"`
}

// BattleEntry is handed to the battle collaborator. Exactly one of Wild and
// Trainer is set.
type BattleEntry struct {
	Wild    *WildBattle    `json:"wild,omitempty"`
	Trainer *TrainerBattle `json:"trainer,omitempty"`
}

// IsTrainer returns true for trainer battles.
func (b BattleEntry) IsTrainer() bool {
	return b.Trainer != nil
}
