// Package service provides the business logic layer for the Game of the Goose.
//
// The service package implements:
//   - Multi-session game management
//   - Board selection through a ConfigManager
//   - Command execution, one command at a time per session
//   - The line-based text protocol and its narration
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager loads and lists boards.
//
// Architecture:
//
// The service layer sits between the transports (CLI and MCP) and the rules
// engine. Each Session owns a roster and a game; Execute holds the session
// lock for the whole command so concurrent callers never interleave inside a
// move chain.
//
// Usage:
//
//	sessionMgr := session.NewManager(logger)
//	configMgr, _ := config.NewManager("boards")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic", 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.ExecuteLine(ctx, info.ID, "add player Pippo")
//	fmt.Println(result.Message) // players: Pippo
//
// Text Protocol:
//
//	add player NAME      join the game on the start square
//	remove player NAME   leave the game
//	move NAME A, B       move with the given dice
//	move NAME            roll the dice and move
//
// A move after somebody has won fails with ErrGameOver until the winner
// is removed from the game.
package service
