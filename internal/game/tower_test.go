package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sgalar/poketower/internal/log"
)

func towerPlayer(t *testing.T) *Trainer {
	t.Helper()
	tr := NewTrainer("Ash")
	err := tr.PickNamedTeam("Dragonite", "Machamp", "Golem", "Gengar", "Blastoise", "Charizard")
	if err != nil {
		t.Fatalf("picking player team: %v", err)
	}
	return tr
}

func TestTowerRequiresPlayer(t *testing.T) {
	tower := NewBattleTower(TowerConfig{Seed: 1})
	if _, err := tower.NextBattle(); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("err = %v, want ErrNoPlayer", err)
	}
}

func TestTowerExhaustedWithoutEnemies(t *testing.T) {
	tower := NewBattleTower(TowerConfig{Seed: 1})
	tower.SetPlayer(towerPlayer(t))

	if tower.BattlesRemaining() {
		t.Error("no enemies generated, nothing should remain")
	}
	if _, err := tower.NextBattle(); !errors.Is(err, ErrTowerExhausted) {
		t.Errorf("err = %v, want ErrTowerExhausted", err)
	}
}

func TestTowerLivesRollsInRange(t *testing.T) {
	tower := NewBattleTower(TowerConfig{Seed: 42})
	for i := 0; i < 100; i++ {
		lives := tower.rollLives()
		if lives < MinLives || lives > MaxLives {
			t.Fatalf("rolled %d lives, want within [%d,%d]", lives, MinLives, MaxLives)
		}
	}
}

func TestTowerRunsToCompletion(t *testing.T) {
	logger := log.NewMemoryLogger()
	tower := NewBattleTower(TowerConfig{Seed: 7, Logger: logger})
	player := towerPlayer(t)
	tower.SetPlayer(player)
	tower.GenerateEnemies(3)

	startLives := tower.PlayerLives()
	if startLives < MinLives || startLives > MaxLives {
		t.Fatalf("player lives = %d, want within [%d,%d]", startLives, MinLives, MaxLives)
	}

	battles := 0
	for tower.BattlesRemaining() {
		report, err := tower.NextBattle()
		if err != nil {
			t.Fatalf("battle %d: %v", battles+1, err)
		}
		battles++
		if battles > 50 {
			t.Fatal("tower did not converge")
		}

		if report.ID == uuid.Nil {
			t.Error("report has no ID")
		}
		if report.Number != battles {
			t.Errorf("report number = %d, want %d", report.Number, battles)
		}
		// Someone lost a life every battle.
		if report.Winner == player && report.EnemyLives >= MaxLives {
			t.Errorf("battle %d: winning did not cost the enemy a life", battles)
		}
	}

	// The run ends either with the player knocked out or the ladder
	// cleared.
	if tower.PlayerLives() > 0 && tower.EnemiesDefeated() != 3 {
		t.Errorf("run ended with %d lives but only %d of 3 enemies defeated",
			tower.PlayerLives(), tower.EnemiesDefeated())
	}
	if got := len(logger.EventsOfType(log.EventTowerBattle)); got != battles {
		t.Errorf("tower battle events = %d, want %d", got, battles)
	}
	if len(logger.EventsOfType(log.EventRegenerate)) == 0 {
		t.Error("teams should regenerate between ladder battles")
	}
}

func TestTowerDeterministicUnderSeed(t *testing.T) {
	run := func() (int, int) {
		tower := NewBattleTower(TowerConfig{Seed: 11})
		tower.SetPlayer(towerPlayer(t))
		tower.GenerateEnemies(2)
		for i := 0; tower.BattlesRemaining() && i < 50; i++ {
			if _, err := tower.NextBattle(); err != nil {
				t.Fatalf("battle: %v", err)
			}
		}
		return tower.PlayerLives(), tower.EnemiesDefeated()
	}

	lives1, defeated1 := run()
	lives2, defeated2 := run()
	if lives1 != lives2 || defeated1 != defeated2 {
		t.Errorf("seeded runs diverged: (%d,%d) vs (%d,%d)", lives1, defeated1, lives2, defeated2)
	}
}
