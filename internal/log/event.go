package log

// EventType enumerates all observable battle events.
type EventType int

const (
	EventBattleStart EventType = iota
	EventRound
	EventSendOut
	EventAttack
	EventFaint
	EventLevelUp
	EventEvolve
	EventSuddenDeath
	EventWin
	EventDraw
	EventSpecial
	EventRegenerate
	EventTowerBattle
	EventLivesChange
)

func (e EventType) String() string {
	switch e {
	case EventBattleStart:
		return "BattleStart"
	case EventRound:
		return "Round"
	case EventSendOut:
		return "SendOut"
	case EventAttack:
		return "Attack"
	case EventFaint:
		return "Faint"
	case EventLevelUp:
		return "LevelUp"
	case EventEvolve:
		return "Evolve"
	case EventSuddenDeath:
		return "SuddenDeath"
	case EventWin:
		return "Win"
	case EventDraw:
		return "Draw"
	case EventSpecial:
		return "Special"
	case EventRegenerate:
		return "Regenerate"
	case EventTowerBattle:
		return "TowerBattle"
	case EventLivesChange:
		return "LivesChange"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a battle.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based, 0 outside a battle)
	Side    int       // acting side (0 or 1, -1 when not applicable)
	Type    EventType // event type
	Pokemon string    // pokemon name (if applicable)
	Details string    // human-readable detail string
}
