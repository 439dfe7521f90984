package game

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
)

// Trainer owns a team and a pokedex of encountered types. The pokedex is a
// bitset over the fifteen types; a trainer's completion ratio scales the
// damage their pokemon deal and take.
type Trainer struct {
	Name    string
	Team    *PokeTeam
	pokedex uint16
}

func NewTrainer(name string) *Trainer {
	return &Trainer{Name: name, Team: NewPokeTeam()}
}

// PickRandomTeam fills the team with random species and registers each one
// in the trainer's own pokedex.
func (t *Trainer) PickRandomTeam(rng *rand.Rand) {
	t.Team.PickRandom(rng)
	for _, p := range t.Team.Roster() {
		t.Register(p)
	}
}

// PickNamedTeam fills the team with the named species and registers each
// one in the trainer's own pokedex.
func (t *Trainer) PickNamedTeam(names ...string) error {
	if err := t.Team.PickNamed(names...); err != nil {
		return err
	}
	for _, p := range t.Team.Roster() {
		t.Register(p)
	}
	return nil
}

// Register records the pokemon's type as encountered. Sighted is enough;
// the pokemon does not have to be defeated.
func (t *Trainer) Register(p *Pokemon) {
	t.pokedex |= 1 << uint(p.Type)
}

// Completion is the fraction of the fifteen types the trainer has
// encountered, rounded to two decimal places.
func (t *Trainer) Completion() float64 {
	seen := bits.OnesCount16(t.pokedex)
	return math.Round(float64(seen)/TypeCount*100) / 100
}

func (t *Trainer) String() string {
	return fmt.Sprintf("Trainer %s Pokedex Completion: %v%%", t.Name, math.Round(t.Completion()*100))
}
