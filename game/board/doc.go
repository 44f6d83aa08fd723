// Package board provides the reference Game of the Goose track.
//
// Board describes the fixed special squares of a linear track, Square is the
// engine position type for that track, and Roster is the in-memory player
// state. Classic returns the standard board: square 63 is the end, square 6
// is the bridge to square 12, and squares 5, 9, 14, 18, 23 and 27 are geese.
//
// Usage:
//
//	b := board.Classic()
//	roster := board.NewRoster()
//	game := board.NewGame(b, roster, dice.NewRandom(0))
//
//	events, err := game.Execute(engine.Add[string, int]("Pippo"))
//
// Validation:
//
// Validate rejects boards whose special squares fall outside the track and
// boards where some two-dice roll bounces between geese forever. Analyze
// reports the longest chain each board can produce.
package board
