package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/world"
)

// maxRounds ends a stalemate as a loss.
const maxRounds = 100

// battlePrompt is the line shown while a battle waits to start.
func battlePrompt(entry world.BattleEntry) string {
	if entry.IsTrainer() {
		return fmt.Sprintf("%s wants to battle!", entry.Trainer.Name)
	}
	if entry.Wild != nil {
		return fmt.Sprintf("A wild %s (Lv %d) appeared!", strings.ToUpper(entry.Wild.Species), entry.Wild.Level)
	}
	return "A battle begins!"
}

// opponents builds the opposing roster. Trainer parties are copied so the
// map's data is never worn down.
func opponents(entry world.BattleEntry) entity.Party {
	switch {
	case entry.Trainer != nil:
		party := make(entity.Party, len(entry.Trainer.Party))
		copy(party, entry.Trainer.Party)
		party.HealAll()
		return party
	case entry.Wild != nil:
		level := entry.Wild.Level
		return entity.Party{entity.NewMember(entry.Wild.Species, level, 10+level*2)}
	default:
		return nil
	}
}

// fight stands in for the battle engine: leads trade blows until one side
// is out of members, then the overworld applies the outcome.
func (g *Game) fight(ctx context.Context, entry world.BattleEntry) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "overworld.battle")
	defer span.End()

	foes := opponents(entry)
	rounds := 0
	for ; rounds < maxRounds && !g.player.Party.IsDefeated() && !foes.IsDefeated(); rounds++ {
		g.exchange(g.player.Party.Lead(), foes.Lead())
		if foe := foes.Lead(); foe != nil {
			if lead := g.player.Party.Lead(); lead != nil {
				g.exchange(foe, lead)
			}
		}
	}
	winner := foes.IsDefeated() && !g.player.Party.IsDefeated()

	span.SetAttributes(
		attribute.Bool("battle.trainer", entry.IsTrainer()),
		attribute.Bool("battle.winner", winner),
		attribute.Int("battle.rounds", rounds),
	)
	g.log.WithFields(logrus.Fields{
		"trainer": entry.IsTrainer(),
		"winner":  winner,
		"rounds":  rounds,
	}).Info("battle resolved")

	g.manager.PostBattle(ctx, g.player, winner)

	switch {
	case winner && entry.IsTrainer():
		pages := append([][]string{{fmt.Sprintf("You defeated %s!", entry.Trainer.Name)}}, entry.Trainer.Defeat...)
		g.dialogs = append(g.dialogs, &dialog{pages: pages})
	case winner:
		g.dialogs = append(g.dialogs, &dialog{pages: [][]string{{"You won!"}}})
	default:
		g.dialogs = append(g.dialogs, &dialog{pages: [][]string{{g.player.Name + " blacked out!"}}})
	}
}

// exchange has attacker hit defender once. Damage grows with level.
func (g *Game) exchange(attacker, defender *entity.Member) {
	if attacker == nil || defender == nil {
		return
	}
	damage := 2 + attacker.Level/2 + g.rng.Intn(3)
	defender.TakeDamage(damage)
}
