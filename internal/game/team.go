package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// TeamLimit is the maximum number of pokemon in a team.
const TeamLimit = 6

// PokeTeam is an ordered collection of up to TeamLimit pokemon bound to one
// container variant at a time. The assembly-order roster is kept as a
// snapshot so the team can regenerate between battles; fainted pokemon are
// removed from the snapshot and never come back.
type PokeTeam struct {
	roster    []*Pokemon
	order     TeamOrder
	mode      BattleMode
	criterion Criterion
	specials  int // times Special has been invoked; parity is replayed on regeneration
}

func NewPokeTeam() *PokeTeam {
	return &PokeTeam{}
}

// PickRandom fills the team with TeamLimit randomly chosen species.
func (t *PokeTeam) PickRandom(rng *rand.Rand) {
	t.roster = make([]*Pokemon, 0, TeamLimit)
	for i := 0; i < TeamLimit; i++ {
		name := SpeciesNames[rng.Intn(len(SpeciesNames))]
		t.roster = append(t.roster, LookupSpecies(name))
	}
	t.order = nil
	t.specials = 0
}

// PickNamed fills the team with the named species, validated against the
// catalog case-insensitively.
func (t *PokeTeam) PickNamed(names ...string) error {
	if len(names) == 0 || len(names) > TeamLimit {
		return fmt.Errorf("%w: %d pokemon (want 1-%d)", ErrTeamSize, len(names), TeamLimit)
	}
	picked := make([]*Pokemon, 0, len(names))
	for _, name := range names {
		p, err := FindSpecies(name)
		if err != nil {
			return err
		}
		picked = append(picked, p)
	}
	t.roster = picked
	t.order = nil
	t.specials = 0
	return nil
}

// Assemble converts the roster into the container variant for the given
// mode. For Ranked mode the criterion selects the sort key.
func (t *PokeTeam) Assemble(mode BattleMode, criterion Criterion) error {
	if len(t.roster) == 0 {
		return fmt.Errorf("%w: no pokemon picked", ErrTeamSize)
	}
	if mode == ModeRanked && (criterion < CriterionHealth || criterion > CriterionLevel) {
		return fmt.Errorf("%w: %d", ErrInvalidCriterion, criterion)
	}
	order, err := NewTeamOrder(mode, t.roster, criterion, t.direction())
	if err != nil {
		return err
	}
	t.order = order
	t.mode = mode
	t.criterion = criterion
	return nil
}

// direction is the Ranked sort direction implied by the special counter's
// parity.
func (t *PokeTeam) direction() SortDirection {
	if t.specials%2 == 1 {
		return Descending
	}
	return Ascending
}

// Special applies the mode's tactical repositioning effect: KingOfHill
// reverses the top half, Rotation reverses the bottom half, Ranked flips
// the sort direction.
func (t *PokeTeam) Special() error {
	if t.order == nil {
		return ErrTeamNotAssembled
	}
	t.order.Reorder()
	t.specials++
	return nil
}

// Regenerate restores every surviving pokemon to its species' baseline
// health, preserving level and evolution, then reassembles the container
// and replays the special counter's parity so reordering state carries
// across battles. Pokemon that fainted are gone from the roster already.
func (t *PokeTeam) Regenerate() error {
	if t.order == nil {
		return ErrTeamNotAssembled
	}
	for _, p := range t.roster {
		p.Health = p.BaseHealth
	}
	// Ranked encodes parity in the sort direction at construction; the
	// stack and queue variants replay the half-reversal explicitly.
	order, err := NewTeamOrder(t.mode, t.roster, t.criterion, t.direction())
	if err != nil {
		return err
	}
	if t.mode != ModeRanked && t.specials%2 == 1 {
		order.Reorder()
	}
	t.order = order
	return nil
}

// TakeNext removes and returns the next combatant, or nil when the team is
// exhausted or unassembled.
func (t *PokeTeam) TakeNext() *Pokemon {
	if t.order == nil {
		return nil
	}
	return t.order.TakeNext()
}

// Return reinserts a surviving combatant.
func (t *PokeTeam) Return(p *Pokemon) {
	t.order.Return(p)
}

// Discard removes a fainted combatant from the roster snapshot so it stays
// gone through regeneration.
func (t *PokeTeam) Discard(p *Pokemon) {
	for i, member := range t.roster {
		if member == p {
			t.roster = append(t.roster[:i], t.roster[i+1:]...)
			return
		}
	}
}

// Roster returns the surviving members in assembly order.
func (t *PokeTeam) Roster() []*Pokemon {
	out := make([]*Pokemon, len(t.roster))
	copy(out, t.roster)
	return out
}

// Mode returns the battle mode the team was last assembled for.
func (t *PokeTeam) Mode() BattleMode {
	return t.mode
}

// Assembled reports whether the roster has been converted into a container.
func (t *PokeTeam) Assembled() bool {
	return t.order != nil
}

// Len reports the number of pokemon currently in the team's container, or
// in the roster when not yet assembled.
func (t *PokeTeam) Len() int {
	if t.order == nil {
		return len(t.roster)
	}
	return t.order.Len()
}

// At peeks at the pokemon in iteration position i.
func (t *PokeTeam) At(i int) *Pokemon {
	if t.order == nil {
		return t.roster[i]
	}
	return t.order.At(i)
}

func (t *PokeTeam) String() string {
	if t.order == nil {
		names := make([]string, 0, len(t.roster))
		for _, p := range t.roster {
			names = append(names, p.String())
		}
		return strings.Join(names, "\n")
	}
	return t.order.String()
}
