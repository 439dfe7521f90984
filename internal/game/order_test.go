package game

import (
	"errors"
	"testing"
)

func members(names ...string) []*Pokemon {
	out := make([]*Pokemon, 0, len(names))
	for _, n := range names {
		out = append(out, testPokemon(n, TypeNormal, 100, 50, 10, 10))
	}
	return out
}

func TestKingOfHillTakesReverseInsertionOrder(t *testing.T) {
	o := newKingOfHillOrder(members("Alpha", "Beta", "Gamma"))
	assertNames(t, takeOrder(o), []string{"Gamma", "Beta", "Alpha"})
}

func TestKingOfHillReturnGoesOnTop(t *testing.T) {
	o := newKingOfHillOrder(members("Alpha", "Beta"))
	p := o.TakeNext()
	o.Return(p)
	// The returned fighter stays on top until it faints.
	if o.At(0) != p {
		t.Errorf("returned pokemon not on top, got %s", o.At(0).Name)
	}
}

func TestRotationTakesInsertionOrder(t *testing.T) {
	o := newRotationOrder(members("Alpha", "Beta", "Gamma"))
	assertNames(t, takeOrder(o), []string{"Alpha", "Beta", "Gamma"})
}

func TestRotationReturnGoesToBack(t *testing.T) {
	o := newRotationOrder(members("Alpha", "Beta", "Gamma"))
	p := o.TakeNext()
	o.Return(p)
	assertNames(t, takeOrder(o), []string{"Beta", "Gamma", "Alpha"})
}

func TestRankedTakesAscendingKeyOrder(t *testing.T) {
	ms := members("Five", "One", "Three")
	ms[0].Health, ms[1].Health, ms[2].Health = 5, 1, 3
	o := newRankedOrder(ms, CriterionHealth, Ascending)
	assertNames(t, takeOrder(o), []string{"One", "Three", "Five"})
}

func TestRankedDescending(t *testing.T) {
	ms := members("Five", "One", "Three")
	ms[0].Health, ms[1].Health, ms[2].Health = 5, 1, 3
	o := newRankedOrder(ms, CriterionHealth, Descending)
	assertNames(t, takeOrder(o), []string{"Five", "Three", "One"})
}

func TestRankedReturnKeepsSortedPosition(t *testing.T) {
	ms := members("Two", "Four")
	ms[0].Speed, ms[1].Speed = 2, 4
	o := newRankedOrder(ms, CriterionSpeed, Ascending)

	p := testPokemon("Three", TypeNormal, 100, 50, 10, 3)
	o.Return(p)
	assertNames(t, peekOrder(o), []string{"Two", "Three", "Four"})
}

func TestRankedEqualKeysInsertAfter(t *testing.T) {
	ms := members("First", "Second")
	ms[0].Speed, ms[1].Speed = 5, 5
	o := newRankedOrder(nil, CriterionSpeed, Ascending)
	o.Return(ms[0])
	o.Return(ms[1])
	assertNames(t, peekOrder(o), []string{"First", "Second"})
}

func TestKingOfHillReorderReversesTopHalf(t *testing.T) {
	o := newKingOfHillOrder(members("Alpha", "Beta", "Gamma", "Delta"))
	// Iteration order before: Delta, Gamma, Beta, Alpha.
	o.Reorder()
	assertNames(t, takeOrder(o), []string{"Gamma", "Delta", "Beta", "Alpha"})
}

func TestRotationReorderReversesBackHalf(t *testing.T) {
	o := newRotationOrder(members("Alpha", "Beta", "Gamma", "Delta"))
	o.Reorder()
	assertNames(t, takeOrder(o), []string{"Alpha", "Beta", "Delta", "Gamma"})
}

func TestRankedReorderTogglesDirection(t *testing.T) {
	ms := members("One", "Three", "Five")
	ms[0].Level, ms[1].Level, ms[2].Level = 1, 3, 5
	o := newRankedOrder(ms, CriterionLevel, Ascending)

	o.Reorder()
	assertNames(t, peekOrder(o), []string{"Five", "Three", "One"})

	// A second toggle restores the original order.
	o.Reorder()
	assertNames(t, peekOrder(o), []string{"One", "Three", "Five"})
}

func TestRankedKeyFrozenAtInsertion(t *testing.T) {
	ms := members("Hurt", "Whole")
	ms[0].Health, ms[1].Health = 10, 20
	o := newRankedOrder(ms, CriterionHealth, Ascending)

	// Mutating a stat after insertion does not reshuffle the container.
	ms[0].Health = 100
	assertNames(t, peekOrder(o), []string{"Hurt", "Whole"})
}

func TestNewTeamOrderInvalidMode(t *testing.T) {
	_, err := NewTeamOrder(BattleMode(99), members("Alpha"), CriterionHealth, Ascending)
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}
