package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/sgalar/poketower/internal/log"
)

// Lives bounds for tower entrants. Every entrant, player included, rolls a
// random count in this range on entry.
const (
	MinLives = 1
	MaxLives = 3
)

var (
	ErrNoPlayer       = errors.New("tower has no player")
	ErrTowerExhausted = errors.New("no tower battles remaining")
)

// towerEntry pairs a trainer with its remaining lives.
type towerEntry struct {
	trainer *Trainer
	lives   int
}

// TowerConfig carries the knobs for a tower run. Seed drives enemy team
// generation and lives rolls so a run is reproducible.
type TowerConfig struct {
	Seed      int64
	Logger    log.EventLogger
	Chart     *TypeChart
	MaxRounds int
}

// BattleTower is a ladder of Rotation-mode battles. The player climbs
// through a queue of generated enemy trainers; the loser of each battle
// loses a life, a draw costs both a life, and both teams regenerate
// between battles. Enemies with lives left rejoin the back of the queue.
type BattleTower struct {
	rng       *rand.Rand
	logger    log.EventLogger
	chart     *TypeChart
	maxRounds int

	player   *towerEntry
	enemies  []*towerEntry
	battles  int
	defeated int
}

func NewBattleTower(cfg TowerConfig) *BattleTower {
	chart := cfg.Chart
	if chart == nil {
		chart = DefaultTypeChart()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &BattleTower{
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		logger:    logger,
		chart:     chart,
		maxRounds: cfg.MaxRounds,
	}
}

// rollLives draws a lives count in [MinLives, MaxLives].
func (bt *BattleTower) rollLives() int {
	return MinLives + bt.rng.Intn(MaxLives-MinLives+1)
}

// SetPlayer enters the given trainer into the tower with a rolled lives
// count.
func (bt *BattleTower) SetPlayer(tr *Trainer) {
	bt.player = &towerEntry{trainer: tr, lives: bt.rollLives()}
	bt.logger.Log(log.NewLivesChangeEvent(0, tr.Name, 0, bt.player.lives))
}

// GenerateEnemies fills the tower with n random enemy trainers, each with
// a full random team and a rolled lives count.
func (bt *BattleTower) GenerateEnemies(n int) {
	bt.enemies = make([]*towerEntry, 0, n)
	for i := 0; i < n; i++ {
		enemy := NewTrainer(fmt.Sprintf("Tower Trainer %d", i+1))
		enemy.PickRandomTeam(bt.rng)
		entry := &towerEntry{trainer: enemy, lives: bt.rollLives()}
		bt.enemies = append(bt.enemies, entry)
		bt.logger.Log(log.NewLivesChangeEvent(1, enemy.Name, 0, entry.lives))
	}
}

// BattlesRemaining reports whether the tower run can continue: the player
// still has lives and at least one enemy is still standing.
func (bt *BattleTower) BattlesRemaining() bool {
	return bt.player != nil && bt.player.lives > 0 && len(bt.enemies) > 0
}

// PlayerLives reports the player's remaining lives.
func (bt *BattleTower) PlayerLives() int {
	if bt.player == nil {
		return 0
	}
	return bt.player.lives
}

// EnemiesDefeated reports how many enemy trainers have run out of lives.
func (bt *BattleTower) EnemiesDefeated() int {
	return bt.defeated
}

// TowerBattleReport summarizes one ladder battle. Winner is nil on a draw.
type TowerBattleReport struct {
	ID          uuid.UUID
	Number      int
	Enemy       string
	Winner      *Trainer
	Rounds      int
	PlayerLives int
	EnemyLives  int
}

// NextBattle runs the next ladder battle against the enemy at the front of
// the queue, adjusts lives, regenerates both teams and requeues the enemy
// if it still has lives left.
func (bt *BattleTower) NextBattle() (*TowerBattleReport, error) {
	if bt.player == nil {
		return nil, ErrNoPlayer
	}
	if !bt.BattlesRemaining() {
		return nil, ErrTowerExhausted
	}

	enemy := bt.enemies[0]
	bt.enemies = bt.enemies[1:]
	bt.battles++

	battle := NewBattle(bt.player.trainer, enemy.trainer, BattleConfig{
		Mode:      ModeRotation,
		Chart:     bt.chart,
		Logger:    bt.logger,
		MaxRounds: bt.maxRounds,
	})
	winner, err := battle.Commence()
	if err != nil {
		return nil, err
	}

	result := "draw"
	switch winner {
	case bt.player.trainer:
		result = fmt.Sprintf("%s wins", bt.player.trainer.Name)
		bt.loseLife(1, enemy)
	case enemy.trainer:
		result = fmt.Sprintf("%s wins", enemy.trainer.Name)
		bt.loseLife(0, bt.player)
	default:
		bt.loseLife(0, bt.player)
		bt.loseLife(1, enemy)
	}
	bt.logger.Log(log.NewTowerBattleEvent(bt.battles, bt.player.trainer.Name, enemy.trainer.Name, result))

	bt.regenerate(0, bt.player)
	bt.regenerate(1, enemy)

	if enemy.lives > 0 {
		bt.enemies = append(bt.enemies, enemy)
	} else {
		bt.defeated++
	}

	return &TowerBattleReport{
		ID:          uuid.New(),
		Number:      bt.battles,
		Enemy:       enemy.trainer.Name,
		Winner:      winner,
		Rounds:      battle.Rounds(),
		PlayerLives: bt.player.lives,
		EnemyLives:  enemy.lives,
	}, nil
}

func (bt *BattleTower) loseLife(side int, e *towerEntry) {
	e.lives--
	bt.logger.Log(log.NewLivesChangeEvent(side, e.trainer.Name, e.lives+1, e.lives))
}

// regenerate restores a team between ladder battles. An entrant whose team
// was fully wiped has nothing to regenerate and keeps an empty roster.
func (bt *BattleTower) regenerate(side int, e *towerEntry) {
	if e.trainer.Team.Len() == 0 && len(e.trainer.Team.Roster()) == 0 {
		return
	}
	if err := e.trainer.Team.Regenerate(); err == nil {
		bt.logger.Log(log.NewRegenerateEvent(side, e.trainer.Name))
	}
}
