// Package engine provides the rules core for the Game of the Goose.
//
// Players race along a linear track by rolling two dice. The engine resolves
// a roll into the full chain of consequences and reports them as an ordered
// list of events:
//   - Landing exactly on the end square wins the game
//   - Overshooting the end square bounces the piece back
//   - Goose squares repeat the same distance again
//   - The bridge sends the piece straight to square 12
//   - Landing on an occupied square pranks the occupants back to where the
//     mover started the turn
//
// Core Types:
//
// Game is generic over the player identity, the position type, the die value
// and the event sink. The host supplies the pieces the engine does not own:
// a Track to build positions from indices, a State holding player positions,
// a Dice source, and a factory for the per-command Events sink.
//
// Usage:
//
//	game := engine.New[string, board.Square, int, *board.Events](
//		classic, roster, dice.NewRandom(seed), engine.NewEventLog[string, board.Square, int])
//
//	if _, err := game.Execute(engine.Add[string, int]("Pippo")); err != nil {
//		log.Fatal(err)
//	}
//
//	events, err := game.Execute(engine.Move[string, int]("Pippo", 4, 2))
//
// Concurrency:
//
// The engine is synchronous and holds no locks. A command runs to completion
// before it returns; hosts sharing a game across goroutines must serialize
// calls themselves.
package engine
