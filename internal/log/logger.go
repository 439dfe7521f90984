package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging battle events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// sideName returns "T1" or "T2" for display.
func sideName(s int) string {
	return fmt.Sprintf("T%d", s+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	if e.Round == 0 {
		return fmt.Sprintf("--      | %s", e.Details)
	}
	return fmt.Sprintf("R%-6d | %s", e.Round, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewBattleStartEvent(mode string) GameEvent {
	return GameEvent{
		Side:    -1,
		Type:    EventBattleStart,
		Details: fmt.Sprintf("=== Battle commences (%s mode) ===", mode),
	}
}

func NewRoundEvent(round int, p1, p2 string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    -1,
		Type:    EventRound,
		Details: fmt.Sprintf("Round %d: %s vs %s", round, p1, p2),
	}
}

func NewSendOutEvent(round, side int, pokemon string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    side,
		Type:    EventSendOut,
		Pokemon: pokemon,
		Details: fmt.Sprintf("%s sends out %s", sideName(side), pokemon),
	}
}

func NewAttackEvent(round, side int, attacker, defender string, damage int, health float64) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    side,
		Type:    EventAttack,
		Pokemon: attacker,
		Details: fmt.Sprintf("%s attacks %s for %d (%s at %v HP)", attacker, defender, damage, defender, health),
	}
}

func NewFaintEvent(round, side int, pokemon string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    side,
		Type:    EventFaint,
		Pokemon: pokemon,
		Details: fmt.Sprintf("%s fainted", pokemon),
	}
}

func NewLevelUpEvent(round, side int, pokemon string, level int) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    side,
		Type:    EventLevelUp,
		Pokemon: pokemon,
		Details: fmt.Sprintf("%s grows to level %d", pokemon, level),
	}
}

func NewEvolveEvent(round, side int, from, to string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    side,
		Type:    EventEvolve,
		Pokemon: to,
		Details: fmt.Sprintf("%s evolves into %s", from, to),
	}
}

func NewSuddenDeathEvent(round int, p1, p2 string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    -1,
		Type:    EventSuddenDeath,
		Details: fmt.Sprintf("Sudden death: %s and %s each lose 1 HP", p1, p2),
	}
}

func NewWinEvent(round, side int, trainer, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    side,
		Type:    EventWin,
		Details: fmt.Sprintf("%s (%s) wins! (%s)", trainer, sideName(side), reason),
	}
}

func NewDrawEvent(round int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Side:    -1,
		Type:    EventDraw,
		Details: fmt.Sprintf("Battle ends in a draw (%s)", reason),
	}
}

func NewSpecialEvent(side int, trainer, mode string) GameEvent {
	return GameEvent{
		Side:    side,
		Type:    EventSpecial,
		Details: fmt.Sprintf("%s calls a %s special", trainer, mode),
	}
}

func NewRegenerateEvent(side int, trainer string) GameEvent {
	return GameEvent{
		Side:    side,
		Type:    EventRegenerate,
		Details: fmt.Sprintf("%s's team regenerates", trainer),
	}
}

func NewTowerBattleEvent(battle int, player, enemy, result string) GameEvent {
	return GameEvent{
		Side:    -1,
		Type:    EventTowerBattle,
		Details: fmt.Sprintf("Tower battle %d: %s vs %s — %s", battle, player, enemy, result),
	}
}

func NewLivesChangeEvent(side int, trainer string, oldLives, newLives int) GameEvent {
	return GameEvent{
		Side:    side,
		Type:    EventLivesChange,
		Details: fmt.Sprintf("%s lives: %d → %d", trainer, oldLives, newLives),
	}
}
