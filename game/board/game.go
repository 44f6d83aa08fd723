package board

import "github.com/wricardo/mcp-training/goosegame/game/engine"

// Engine types instantiated for string players, board squares and int dice
type (
	Event   = engine.Event[string, Square, int]
	Events  = engine.EventLog[string, Square, int]
	Command = engine.Command[string, int]
	Game    = engine.Game[string, Square, int, *Events]
)

// NewGame wires a board, a roster and a dice source into a game
func NewGame(b *Board, roster *Roster, dice engine.Dice[int], opts ...engine.Option) *Game {
	return engine.New[string, Square, int, *Events](b, roster, dice, engine.NewEventLog[string, Square, int], opts...)
}
