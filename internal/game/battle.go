package game

import (
	"fmt"

	"github.com/sgalar/poketower/internal/log"
)

// DefaultMaxRounds bounds a battle so a perfectly symmetric stalemate ends
// in a reported draw instead of looping forever.
const DefaultMaxRounds = 500

// BattleConfig carries the knobs for a single battle. Zero values select
// the defaults: King of the Hill mode, the built-in type chart, an
// in-memory logger and the standard round cap.
type BattleConfig struct {
	Mode      BattleMode
	Criterion Criterion // only consulted in Ranked mode
	Chart     *TypeChart
	Logger    log.EventLogger
	MaxRounds int
}

// Battle drives rounds between two trainers' teams until one side runs out
// of pokemon, both do, or the round cap is hit.
type Battle struct {
	trainers  [2]*Trainer
	mode      BattleMode
	criterion Criterion
	chart     *TypeChart
	logger    log.EventLogger
	maxRounds int
	round     int
}

func NewBattle(t1, t2 *Trainer, cfg BattleConfig) *Battle {
	chart := cfg.Chart
	if chart == nil {
		chart = DefaultTypeChart()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Battle{
		trainers:  [2]*Trainer{t1, t2},
		mode:      cfg.Mode,
		criterion: cfg.Criterion,
		chart:     chart,
		logger:    logger,
		maxRounds: maxRounds,
	}
}

func (b *Battle) team(side int) *PokeTeam {
	return b.trainers[side].Team
}

// Rounds reports how many rounds the battle has resolved so far.
func (b *Battle) Rounds() int {
	return b.round
}

// Commence runs the battle to completion and returns the winning trainer,
// or nil on a draw. Teams not yet assembled for the battle's mode are
// assembled first; teams already in that mode keep their container state.
func (b *Battle) Commence() (*Trainer, error) {
	for _, tr := range b.trainers {
		if !tr.Team.Assembled() || tr.Team.Mode() != b.mode {
			if err := tr.Team.Assemble(b.mode, b.criterion); err != nil {
				return nil, err
			}
		}
	}

	b.logger.Log(log.NewBattleStartEvent(b.mode.String()))

	for {
		t1, t2 := b.team(0), b.team(1)
		switch {
		case t1.Len() == 0 && t2.Len() == 0:
			b.logger.Log(log.NewDrawEvent(b.round, "both teams exhausted"))
			return nil, nil
		case t1.Len() == 0:
			return b.declareWinner(1, "opposing team exhausted"), nil
		case t2.Len() == 0:
			return b.declareWinner(0, "opposing team exhausted"), nil
		}

		if b.round >= b.maxRounds {
			b.logger.Log(log.NewDrawEvent(b.round, fmt.Sprintf("round limit %d reached", b.maxRounds)))
			return nil, nil
		}
		b.round++

		p1 := t1.TakeNext()
		p2 := t2.TakeNext()
		b.logger.Log(log.NewRoundEvent(b.round, p1.Name, p2.Name))
		b.logger.Log(log.NewSendOutEvent(b.round, 0, p1.String()))
		b.logger.Log(log.NewSendOutEvent(b.round, 1, p2.String()))

		// A sighting is enough for the pokedex; each trainer records the
		// opposing pokemon the moment it enters the arena.
		b.trainers[0].Register(p2)
		b.trainers[1].Register(p1)

		b.resolveRound(p1, p2)
	}
}

func (b *Battle) declareWinner(side int, reason string) *Trainer {
	winner := b.trainers[side]
	b.logger.Log(log.NewWinEvent(b.round, side, winner.Name, reason))
	return winner
}
