package game

import (
	"fmt"
	"sort"
	"strings"
)

// TeamOrder is the uniform contract over a team's ordering strategy. The
// battle engine only ever takes the next combatant and returns survivors;
// it never branches on the concrete variant.
type TeamOrder interface {
	// TakeNext removes and returns the next combatant, or nil when empty.
	TakeNext() *Pokemon
	// Return reinserts a combatant according to the variant's rules.
	Return(p *Pokemon)
	// Reorder applies the variant's special repositioning effect.
	Reorder()
	// Len reports the number of combatants held.
	Len() int
	// At peeks at the combatant in iteration position i without removal.
	At(i int) *Pokemon

	fmt.Stringer
}

// NewTeamOrder builds the container variant for the given mode from an
// unordered member list. Criterion and direction only apply to Ranked.
func NewTeamOrder(mode BattleMode, members []*Pokemon, criterion Criterion, direction SortDirection) (TeamOrder, error) {
	switch mode {
	case ModeKingOfHill:
		return newKingOfHillOrder(members), nil
	case ModeRotation:
		return newRotationOrder(members), nil
	case ModeRanked:
		return newRankedOrder(members, criterion, direction), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}
}

// --- KingOfHill: LIFO ---

// kingOfHillOrder keeps the current fighter on top until it faints.
// The top of the stack is the end of the slice.
type kingOfHillOrder struct {
	items []*Pokemon
}

func newKingOfHillOrder(members []*Pokemon) *kingOfHillOrder {
	o := &kingOfHillOrder{items: make([]*Pokemon, 0, TeamLimit)}
	for _, p := range members {
		o.items = append(o.items, p)
	}
	return o
}

func (o *kingOfHillOrder) TakeNext() *Pokemon {
	if len(o.items) == 0 {
		return nil
	}
	p := o.items[len(o.items)-1]
	o.items = o.items[:len(o.items)-1]
	return p
}

func (o *kingOfHillOrder) Return(p *Pokemon) {
	o.items = append(o.items, p)
}

// Reorder reverses the top half of the stack.
func (o *kingOfHillOrder) Reorder() {
	half := len(o.items) / 2
	top := o.items[len(o.items)-half:]
	for i, j := 0, len(top)-1; i < j; i, j = i+1, j-1 {
		top[i], top[j] = top[j], top[i]
	}
}

func (o *kingOfHillOrder) Len() int {
	return len(o.items)
}

// At indexes from the top of the stack: At(0) is the next to fight.
func (o *kingOfHillOrder) At(i int) *Pokemon {
	return o.items[len(o.items)-1-i]
}

func (o *kingOfHillOrder) String() string {
	names := make([]string, 0, len(o.items))
	for i := len(o.items) - 1; i >= 0; i-- {
		names = append(names, o.items[i].String())
	}
	return strings.Join(names, "\n")
}

// --- Rotation: FIFO ---

// rotationOrder sends each fighter to the back of the queue after its
// round. The front of the queue is index 0.
type rotationOrder struct {
	items []*Pokemon
}

func newRotationOrder(members []*Pokemon) *rotationOrder {
	o := &rotationOrder{items: make([]*Pokemon, 0, TeamLimit)}
	for _, p := range members {
		o.items = append(o.items, p)
	}
	return o
}

func (o *rotationOrder) TakeNext() *Pokemon {
	if len(o.items) == 0 {
		return nil
	}
	p := o.items[0]
	o.items = o.items[1:]
	return p
}

func (o *rotationOrder) Return(p *Pokemon) {
	o.items = append(o.items, p)
}

// Reorder reverses the bottom half of the queue; the front half keeps its
// order.
func (o *rotationOrder) Reorder() {
	front := len(o.items) / 2
	back := o.items[front:]
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}
}

func (o *rotationOrder) Len() int {
	return len(o.items)
}

func (o *rotationOrder) At(i int) *Pokemon {
	return o.items[i]
}

func (o *rotationOrder) String() string {
	names := make([]string, 0, len(o.items))
	for _, p := range o.items {
		names = append(names, p.String())
	}
	return strings.Join(names, "\n")
}

// --- Ranked: sorted by criterion key ---

type rankedEntry struct {
	pokemon *Pokemon
	key     float64 // criterion value frozen at insertion time
}

// rankedOrder keeps the team sorted by the chosen attribute. The sort
// direction is explicit state rather than a sign baked into the keys, so
// toggling never mutates stored data.
type rankedOrder struct {
	entries   []rankedEntry
	criterion Criterion
	direction SortDirection
}

func newRankedOrder(members []*Pokemon, criterion Criterion, direction SortDirection) *rankedOrder {
	o := &rankedOrder{
		entries:   make([]rankedEntry, 0, TeamLimit),
		criterion: criterion,
		direction: direction,
	}
	for _, p := range members {
		o.Return(p)
	}
	return o
}

// before reports whether key a sorts ahead of key b under the current
// direction.
func (o *rankedOrder) before(a, b float64) bool {
	if o.direction == Ascending {
		return a < b
	}
	return a > b
}

func (o *rankedOrder) TakeNext() *Pokemon {
	if len(o.entries) == 0 {
		return nil
	}
	p := o.entries[0].pokemon
	o.entries = o.entries[1:]
	return p
}

// Return inserts the pokemon at its sorted position, after any equal keys.
func (o *rankedOrder) Return(p *Pokemon) {
	key := o.criterion.value(p)
	idx := sort.Search(len(o.entries), func(i int) bool {
		return o.before(key, o.entries[i].key)
	})
	o.entries = append(o.entries, rankedEntry{})
	copy(o.entries[idx+1:], o.entries[idx:])
	o.entries[idx] = rankedEntry{pokemon: p, key: key}
}

// Reorder flips the sort direction and rebuilds the order.
func (o *rankedOrder) Reorder() {
	if o.direction == Ascending {
		o.direction = Descending
	} else {
		o.direction = Ascending
	}
	for i, j := 0, len(o.entries)-1; i < j; i, j = i+1, j-1 {
		o.entries[i], o.entries[j] = o.entries[j], o.entries[i]
	}
}

func (o *rankedOrder) Len() int {
	return len(o.entries)
}

func (o *rankedOrder) At(i int) *Pokemon {
	return o.entries[i].pokemon
}

func (o *rankedOrder) String() string {
	names := make([]string, 0, len(o.entries))
	for _, e := range o.entries {
		names = append(names, e.pokemon.String())
	}
	return strings.Join(names, "\n")
}
