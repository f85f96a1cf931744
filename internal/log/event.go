package log

// EventType enumerates all observable simulation events.
type EventType int

const (
	EventConfigure EventType = iota
	EventHandDealt
	EventCardPlayed
	EventPlayRejected
	EventTurnResolved
	EventDeckBuilt
	EventShuffle
	EventDraw
	EventDeckEmpty
)

func (e EventType) String() string {
	switch e {
	case EventConfigure:
		return "Configure"
	case EventHandDealt:
		return "HandDealt"
	case EventCardPlayed:
		return "CardPlayed"
	case EventPlayRejected:
		return "PlayRejected"
	case EventTurnResolved:
		return "TurnResolved"
	case EventDeckBuilt:
		return "DeckBuilt"
	case EventShuffle:
		return "Shuffle"
	case EventDraw:
		return "Draw"
	case EventDeckEmpty:
		return "DeckEmpty"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a simulation.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // simulated turn (1-based, 0 outside a turn)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
