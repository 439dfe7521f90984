package game

import (
	"math"

	"github.com/sgalar/poketower/internal/log"
)

// resolveRound runs one full attack exchange between the two combatants
// currently in the arena, then settles the outcome: survivors go back into
// their containers, fainted pokemon are discarded, and a lone survivor of
// a faint levels up.
func (b *Battle) resolveRound(p1, p2 *Pokemon) {
	switch {
	case p1.Speed > p2.Speed:
		b.strike(0, p1, p2)
		if p2.IsAlive() {
			b.strike(1, p2, p1)
		}
	case p2.Speed > p1.Speed:
		b.strike(1, p2, p1)
		if p1.IsAlive() {
			b.strike(0, p1, p2)
		}
	default:
		// Equal speed: both attacks land, neither gated on survival.
		b.strike(0, p1, p2)
		b.strike(1, p2, p1)
	}

	if p1.IsAlive() && p2.IsAlive() {
		b.suddenDeath(p1, p2)
	}

	b.settle(p1, p2)
}

// strike resolves one attack: base damage times type effectiveness times
// the ratio of the trainers' pokedex completions, ceiled to an integer and
// applied through the defender's defence.
func (b *Battle) strike(side int, attacker, defender *Pokemon) {
	raw := attacker.Attack(defender, b.chart)
	ratio := b.trainers[side].Completion() / b.trainers[1-side].Completion()
	damage := int(math.Ceil(raw * ratio))
	defender.Defend(damage)
	b.logger.Log(log.NewAttackEvent(b.round, side, attacker.Name, defender.Name, damage, defender.Health))
}

// suddenDeath breaks a no-faint exchange: both combatants lose exactly one
// health, bypassing defence halving.
func (b *Battle) suddenDeath(p1, p2 *Pokemon) {
	b.logger.Log(log.NewSuddenDeathEvent(b.round, p1.Name, p2.Name))
	p1.Health--
	p2.Health--
}

// settle routes each combatant back to its team or out of the battle.
func (b *Battle) settle(p1, p2 *Pokemon) {
	switch {
	case p1.IsAlive() && !p2.IsAlive():
		b.faint(1, p2)
		b.levelUp(0, p1)
		b.team(0).Return(p1)
		b.team(1).Discard(p2)
	case p2.IsAlive() && !p1.IsAlive():
		b.faint(0, p1)
		b.levelUp(1, p2)
		b.team(1).Return(p2)
		b.team(0).Discard(p1)
	case p1.IsAlive() && p2.IsAlive():
		b.team(0).Return(p1)
		b.team(1).Return(p2)
	default:
		b.faint(0, p1)
		b.faint(1, p2)
		b.team(0).Discard(p1)
		b.team(1).Discard(p2)
	}
}

func (b *Battle) faint(side int, p *Pokemon) {
	b.logger.Log(log.NewFaintEvent(b.round, side, p.Name))
}

// levelUp raises the survivor's level and reports the evolution when the
// level-up crossed an evolution stage.
func (b *Battle) levelUp(side int, p *Pokemon) {
	before := p.Name
	p.LevelUp()
	b.logger.Log(log.NewLevelUpEvent(b.round, side, p.Name, p.Level))
	if p.Name != before {
		b.logger.Log(log.NewEvolveEvent(b.round, side, before, p.Name))
	}
}
