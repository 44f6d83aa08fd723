// Package mcp provides the Model Context Protocol server for the Game of the Goose.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Narrated, plain-text tool results
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_game: Create a new game with board and seed selection
//   - list_games: List all games in progress
//   - add_player: Add a player on the start square
//   - remove_player: Remove a player
//   - move: Move a player with chosen dice
//   - roll_and_move: Roll the dice and move
//   - game_state: Show the players' squares
//   - list_boards: List available boards
//   - game_rules: Explain the rules
//
// Transport:
//
// The server speaks MCP over stdio. Tool failures are returned as tool
// errors carrying the narrated message, e.g. "Pippo: no such player", and
// are logged at warn level.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, logger, version)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
