package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPickNamedUnknownSpecies(t *testing.T) {
	team := NewPokeTeam()
	err := team.PickNamed("Pikachu", "Missingno")
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("err = %v, want ErrUnknownSpecies", err)
	}
}

func TestPickNamedCaseInsensitive(t *testing.T) {
	team := NewPokeTeam()
	if err := team.PickNamed("pikachu", "GEODUDE"); err != nil {
		t.Fatalf("PickNamed: %v", err)
	}
	roster := team.Roster()
	if roster[0].Name != "Pikachu" || roster[1].Name != "Geodude" {
		t.Errorf("roster = %s, %s", roster[0].Name, roster[1].Name)
	}
}

func TestPickNamedTooMany(t *testing.T) {
	team := NewPokeTeam()
	err := team.PickNamed("Eevee", "Eevee", "Eevee", "Eevee", "Eevee", "Eevee", "Eevee")
	if !errors.Is(err, ErrTeamSize) {
		t.Errorf("err = %v, want ErrTeamSize", err)
	}
}

func TestPickRandomDeterministicUnderSeed(t *testing.T) {
	a, b := NewPokeTeam(), NewPokeTeam()
	a.PickRandom(rand.New(rand.NewSource(7)))
	b.PickRandom(rand.New(rand.NewSource(7)))

	ra, rb := a.Roster(), b.Roster()
	if len(ra) != TeamLimit {
		t.Fatalf("roster size = %d, want %d", len(ra), TeamLimit)
	}
	for i := range ra {
		if ra[i].Name != rb[i].Name {
			t.Fatalf("seeded picks diverge at %d: %s vs %s", i, ra[i].Name, rb[i].Name)
		}
	}
}

func TestAssembleEmptyRoster(t *testing.T) {
	team := NewPokeTeam()
	if err := team.Assemble(ModeRotation, CriterionHealth); !errors.Is(err, ErrTeamSize) {
		t.Errorf("err = %v, want ErrTeamSize", err)
	}
}

func TestSpecialBeforeAssemble(t *testing.T) {
	team := NewPokeTeam()
	if err := team.Special(); !errors.Is(err, ErrTeamNotAssembled) {
		t.Errorf("Special err = %v, want ErrTeamNotAssembled", err)
	}
	if err := team.Regenerate(); !errors.Is(err, ErrTeamNotAssembled) {
		t.Errorf("Regenerate err = %v, want ErrTeamNotAssembled", err)
	}
}

func TestRankedSpecialSurvivesRegeneration(t *testing.T) {
	team := NewPokeTeam()
	team.roster = members("Slow", "Mid", "Fast")
	team.roster[0].Speed, team.roster[1].Speed, team.roster[2].Speed = 10, 20, 30
	if err := team.Assemble(ModeRanked, CriterionSpeed); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if team.At(0).Name != "Slow" {
		t.Fatalf("ascending order should lead with Slow, got %s", team.At(0).Name)
	}

	if err := team.Special(); err != nil {
		t.Fatalf("Special: %v", err)
	}
	if team.At(0).Name != "Fast" {
		t.Fatalf("descending order should lead with Fast, got %s", team.At(0).Name)
	}

	// Battle damage, then regeneration: health restored, direction kept.
	team.roster[2].Health = 1
	if err := team.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if team.roster[2].Health != 100 {
		t.Errorf("health after regeneration = %v, want 100", team.roster[2].Health)
	}
	if team.At(0).Name != "Fast" {
		t.Errorf("regeneration lost the reorder, leads with %s", team.At(0).Name)
	}
}

func TestKingOfHillSpecialSurvivesRegeneration(t *testing.T) {
	team := NewPokeTeam()
	team.roster = members("Alpha", "Beta", "Gamma", "Delta")
	if err := team.Assemble(ModeKingOfHill, CriterionHealth); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if err := team.Special(); err != nil {
		t.Fatalf("Special: %v", err)
	}
	want := peekOrder(team.order)

	if err := team.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	assertNames(t, peekOrder(team.order), want)
}

func TestDiscardIsPermanent(t *testing.T) {
	team := NewPokeTeam()
	team.roster = members("Alpha", "Beta", "Gamma")
	fainted := team.roster[1]
	if err := team.Assemble(ModeRotation, CriterionHealth); err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	team.TakeNext()
	team.TakeNext()
	team.Discard(fainted)
	team.Return(team.roster[0])

	if err := team.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	for _, p := range team.Roster() {
		if p == fainted {
			t.Fatal("fainted pokemon came back through regeneration")
		}
	}
	if team.Len() != 2 {
		t.Errorf("team size after regeneration = %d, want 2", team.Len())
	}
}
