package engine

import "fmt"

// EventKind identifies what happened during a command
type EventKind int

const (
	EventPlayersListed EventKind = iota
	EventRolled
	EventMoved
	EventMovedAgain
	EventBounced
	EventReturnedTo
	EventPranked
	EventJumpedToBridgeTarget
	EventWon
)

var eventKindNames = map[EventKind]string{
	EventPlayersListed:        "players_listed",
	EventRolled:               "rolled",
	EventMoved:                "moved",
	EventMovedAgain:           "moved_again",
	EventBounced:              "bounced",
	EventReturnedTo:           "returned_to",
	EventPranked:              "pranked",
	EventJumpedToBridgeTarget: "jumped_to_bridge_target",
	EventWon:                  "won",
}

// String returns the snake_case event name
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event records one thing that happened during a command.
//
// Fields are populated per kind:
//   - PlayersListed: Players
//   - Rolled: Player, Dice
//   - Moved, MovedAgain: Player, From, To
//   - Bounced, Won: Player
//   - ReturnedTo, JumpedToBridgeTarget: Player, To
//   - Pranked: Player (the displaced occupant), From (the square it was on), To (where it was sent)
type Event[Pl, P, R any] struct {
	Kind    EventKind
	Player  Pl
	Players []Pl
	From    P
	To      P
	Dice    [2]R
}

// String renders the event for logs and test failures
func (e Event[Pl, P, R]) String() string {
	switch e.Kind {
	case EventPlayersListed:
		return fmt.Sprintf("%s(%v)", e.Kind, e.Players)
	case EventRolled:
		return fmt.Sprintf("%s(%v, %v, %v)", e.Kind, e.Player, e.Dice[0], e.Dice[1])
	case EventMoved, EventMovedAgain, EventPranked:
		return fmt.Sprintf("%s(%v, %v, %v)", e.Kind, e.Player, e.From, e.To)
	case EventReturnedTo, EventJumpedToBridgeTarget:
		return fmt.Sprintf("%s(%v, %v)", e.Kind, e.Player, e.To)
	default:
		return fmt.Sprintf("%s(%v)", e.Kind, e.Player)
	}
}

// Events is an append-only sink for the events of a single command
type Events[Pl, P, R any] interface {
	Notify(event Event[Pl, P, R]) error
}

// EventLog is a slice-backed Events sink
type EventLog[Pl, P, R any] struct {
	events []Event[Pl, P, R]
}

// NewEventLog returns an empty log. It is usable as the event factory passed to New.
func NewEventLog[Pl, P, R any]() *EventLog[Pl, P, R] {
	return &EventLog[Pl, P, R]{}
}

// Notify appends the event
func (l *EventLog[Pl, P, R]) Notify(event Event[Pl, P, R]) error {
	l.events = append(l.events, event)
	return nil
}

// Events returns the recorded events in order
func (l *EventLog[Pl, P, R]) Events() []Event[Pl, P, R] {
	return l.events
}

// Len returns the number of recorded events
func (l *EventLog[Pl, P, R]) Len() int {
	return len(l.events)
}

// Winner returns the player of the Won event, if any
func (l *EventLog[Pl, P, R]) Winner() (Pl, bool) {
	for _, e := range l.events {
		if e.Kind == EventWon {
			return e.Player, true
		}
	}
	var none Pl
	return none, false
}
