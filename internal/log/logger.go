package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
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

// Drain returns the events logged so far and clears the buffer. Sequence
// numbers keep increasing across drains.
func (l *MemoryLogger) Drain() []GameEvent {
	events := l.events
	l.events = nil
	return events
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

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	turn := "   "
	if e.Turn > 0 {
		turn = fmt.Sprintf("T%-2d", e.Turn)
	}
	return fmt.Sprintf("%s | %-12s | %s", turn, e.Type, e.Details)
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

func NewConfigureEvent(factory, strategy string) GameEvent {
	return GameEvent{
		Type:    EventConfigure,
		Details: fmt.Sprintf("Engine configured: factory %s, strategy %s", factory, strategy),
	}
}

func NewHandDealtEvent(turn int, hand []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventHandDealt,
		Details: fmt.Sprintf("Hand: [%s]", strings.Join(hand, ", ")),
	}
}

func NewCardPlayedEvent(turn int, cardName string, manaUsed int, effect string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventCardPlayed,
		Card:    cardName,
		Details: fmt.Sprintf("%s played for %d mana: %s", cardName, manaUsed, effect),
	}
}

func NewPlayRejectedEvent(turn int, cardName string, cost, available int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventPlayRejected,
		Card:    cardName,
		Details: fmt.Sprintf("%s not playable: costs %d, %d mana available", cardName, cost, available),
	}
}

func NewTurnResolvedEvent(turn int, strategy string, played []string, manaUsed, damage int) GameEvent {
	return GameEvent{
		Turn: turn,
		Type: EventTurnResolved,
		Details: fmt.Sprintf("%s played [%s] using %d mana, dealing %d damage",
			strategy, strings.Join(played, ", "), manaUsed, damage),
	}
}

func NewDeckBuiltEvent(name string, size int) GameEvent {
	return GameEvent{
		Type:    EventDeckBuilt,
		Details: fmt.Sprintf("Deck %q built with %d cards", name, size),
	}
}

func NewShuffleEvent(size int) GameEvent {
	return GameEvent{
		Type:    EventShuffle,
		Details: fmt.Sprintf("Deck shuffled (%d cards)", size),
	}
}

func NewDrawEvent(turn int, cardName string, cardType string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("Drew: %s (%s)", cardName, cardType),
	}
}

func NewDeckEmptyEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventDeckEmpty,
		Details: "Deck is empty",
	}
}
