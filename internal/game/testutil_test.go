package game

import (
	"testing"

	"github.com/sgalar/poketower/internal/log"
)

// testPokemon builds a combatant with explicit stats and no evolution line.
func testPokemon(name string, typ PokeType, health, power, defence, speed float64) *Pokemon {
	return &Pokemon{
		Name:        name,
		Type:        typ,
		Health:      health,
		BaseHealth:  health,
		BattlePower: power,
		Defence:     defence,
		Speed:       speed,
		Level:       1,
	}
}

// testTrainer builds a trainer whose team roster holds exactly the given
// pokemon, each registered in the trainer's own pokedex.
func testTrainer(name string, members ...*Pokemon) *Trainer {
	tr := NewTrainer(name)
	tr.Team.roster = append([]*Pokemon{}, members...)
	for _, p := range members {
		tr.Register(p)
	}
	return tr
}

// runBattle commences a battle with a memory logger and returns the winner
// and the captured events.
func runBattle(t *testing.T, t1, t2 *Trainer, cfg BattleConfig) (*Trainer, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	winner, err := NewBattle(t1, t2, cfg).Commence()
	if err != nil {
		t.Fatalf("battle failed: %v", err)
	}
	return winner, logger
}

// takeOrder drains the container and returns the names in take-next order.
func takeOrder(o TeamOrder) []string {
	var names []string
	for {
		p := o.TakeNext()
		if p == nil {
			return names
		}
		names = append(names, p.Name)
	}
}

// peekOrder returns the names in iteration order without consuming.
func peekOrder(o TeamOrder) []string {
	names := make([]string, 0, o.Len())
	for i := 0; i < o.Len(); i++ {
		names = append(names, o.At(i).Name)
	}
	return names
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got, want)
		}
	}
}
