package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/engine"
)

// Narrate renders the events of one command as a single line of text, e.g.
// "Pippo rolls 4, 2. Pippo moves from Start to 6, The Bridge. Pippo jumps to 12"
func Narrate(events []board.Event) string {
	var b strings.Builder
	for i, e := range events {
		fragment := narrateEvent(e)
		if i > 0 {
			prev := narrateEvent(events[i-1])
			if strings.HasSuffix(prev, "!") {
				b.WriteString(" ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString(fragment)
	}
	return b.String()
}

func narrateEvent(e board.Event) string {
	switch e.Kind {
	case engine.EventPlayersListed:
		return "players: " + strings.Join(e.Players, ", ")
	case engine.EventRolled:
		return fmt.Sprintf("%s rolls %d, %d", e.Player, e.Dice[0], e.Dice[1])
	case engine.EventMoved:
		return fmt.Sprintf("%s moves from %s to %s", e.Player, e.From.Name(), e.To.Label())
	case engine.EventMovedAgain:
		return fmt.Sprintf("%s moves again and goes to %s", e.Player, e.To.Label())
	case engine.EventBounced:
		return e.Player + " bounces!"
	case engine.EventReturnedTo:
		return fmt.Sprintf("%s returns to %s", e.Player, e.To.Name())
	case engine.EventPranked:
		return fmt.Sprintf("On %s there is %s, who returns to %s", e.From.Name(), e.Player, e.To.Name())
	case engine.EventJumpedToBridgeTarget:
		return fmt.Sprintf("%s jumps to %s", e.Player, e.To.Name())
	case engine.EventWon:
		return e.Player + " Wins!!"
	default:
		return e.String()
	}
}

// NarrateError renders player errors the way the text protocol reports them
func NarrateError(err error) string {
	var playerErr *engine.PlayerError[string]
	if errors.As(err, &playerErr) {
		switch {
		case errors.Is(playerErr.Err, engine.ErrDuplicatePlayer):
			return playerErr.Player + ": already existing player"
		case errors.Is(playerErr.Err, engine.ErrPlayerNotFound):
			return playerErr.Player + ": no such player"
		}
	}
	return err.Error()
}

// toGameEvents converts engine events to their wire form
func toGameEvents(events []board.Event) []GameEvent {
	result := make([]GameEvent, 0, len(events))
	for _, e := range events {
		ge := GameEvent{Type: e.Kind.String(), Player: e.Player}
		switch e.Kind {
		case engine.EventPlayersListed:
			ge.Player = ""
			ge.Players = append([]string{}, e.Players...)
		case engine.EventRolled:
			ge.Dice = []int{e.Dice[0], e.Dice[1]}
		case engine.EventMoved, engine.EventMovedAgain, engine.EventPranked:
			ge.From = squareIndex(e.From)
			ge.To = squareIndex(e.To)
		case engine.EventReturnedTo, engine.EventJumpedToBridgeTarget:
			ge.To = squareIndex(e.To)
		}
		result = append(result, ge)
	}
	return result
}

func squareIndex(s board.Square) *uint32 {
	index := s.Index()
	return &index
}
