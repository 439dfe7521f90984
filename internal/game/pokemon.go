package game

import (
	"fmt"
	"math"
)

// EvolutionMultiplier is applied to battle power, health, speed and defence
// on every evolution, compounding across repeated evolutions.
const EvolutionMultiplier = 1.5

// Pokemon is a single combatant. Stats are mutated throughout a battle;
// health may go negative internally before an IsAlive check reads it.
type Pokemon struct {
	Name        string
	Type        PokeType
	Health      float64
	BaseHealth  float64 // species baseline, restored by regeneration
	BattlePower float64
	Defence     float64
	Speed       float64
	Level       int
	Experience  int

	// EvolutionLine is the remaining ladder, current stage first. A pokemon
	// at its final stage has a line of length one (or empty).
	EvolutionLine []string
}

// IsAlive reports whether the pokemon has positive health.
func (p *Pokemon) IsAlive() bool {
	return p.Health > 0
}

// Attack computes the damage this pokemon inflicts on the defender, before
// pokedex completion scaling. The result carries the type effectiveness
// multiplier and may be fractional.
func (p *Pokemon) Attack(defender *Pokemon, chart *TypeChart) float64 {
	var damage float64
	switch {
	case defender.Defence < p.BattlePower/2:
		damage = p.BattlePower - defender.Defence
	case defender.Defence < p.BattlePower:
		damage = math.Ceil(p.BattlePower*5/8 - defender.Defence/4)
	default:
		damage = math.Ceil(p.BattlePower / 4)
	}
	return damage * chart.Effectiveness(p.Type, defender.Type)
}

// Defend applies an incoming attack: damage below the pokemon's defence is
// halved, everything else lands in full. Health is not clamped here.
func (p *Pokemon) Defend(damage int) {
	effective := float64(damage)
	if effective < p.Defence {
		effective /= 2
	}
	p.Health -= effective
}

// LevelUp raises the level by one and evolves the pokemon when it is not
// yet at the final stage of its evolution line.
func (p *Pokemon) LevelUp() {
	p.Level++
	if len(p.EvolutionLine) > 0 && p.Name != p.EvolutionLine[len(p.EvolutionLine)-1] {
		p.evolve()
	}
}

// evolve advances to the next stage, drops the passed stage from the line
// and applies the evolution stat multiplier.
func (p *Pokemon) evolve() {
	for i, name := range p.EvolutionLine {
		if name == p.Name && i+1 < len(p.EvolutionLine) {
			p.Name = p.EvolutionLine[i+1]
			break
		}
	}
	p.EvolutionLine = p.EvolutionLine[1:]
	p.applyMultiplier(EvolutionMultiplier)
}

// applyMultiplier scales all combat stats at once.
func (p *Pokemon) applyMultiplier(m float64) {
	p.BattlePower *= m
	p.Health *= m
	p.Speed *= m
	p.Defence *= m
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s (Level %d) with %v health and %v experience", p.Name, p.Level, p.Health, p.Experience)
}
