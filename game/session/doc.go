// Package session provides session management for the Game of the Goose.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the session manager that handles all session operations.
// Each service.Session owns its own board, roster and game, plus the lock
// that the service holds while a command runs.
//
// Session Identifiers:
//
// Sessions are identified by random UUIDs unless the caller picks an ID.
// Lookups are case-insensitive.
//
// Concurrency:
//
// The manager lock guards the session table only. Game state is guarded by
// the per-session lock, so commands on different sessions run in parallel.
//
// Usage:
//
//	manager := session.NewManager(logger)
//
//	sess, err := manager.Create("", board.Classic(), dice.NewRandom(0))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
// Cleanup:
//
// Sessions are kept in memory only. CleanupExpiredSessions drops sessions
// that have not been used for a given duration; the goose command runs it
// periodically while serving MCP.
package session
