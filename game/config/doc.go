// Package config provides board and environment configuration for the Game of the Goose.
//
// The config package handles:
//   - Loading boards from JSON and YAML files
//   - Board validation through board.Validate
//   - Embedded default boards
//   - Board discovery and listing
//   - Environment settings for the goose command
//
// Board Format:
//
// A board names its end square, its bridge square and its goose squares.
// Square 0 is the start and square 12 is always the bridge target.
//
//	name: express
//	description: Short 40-square track
//	end: 40
//	bridge: 6
//	geese: [5, 9, 14, 18, 23, 27]
//
// Available Boards:
//
// Two boards are compiled in and always available:
//   - classic: the 63-square reference board
//   - express: a 40-square track for quick games
//
// Files in the board directory with the same name take precedence.
//
// Usage:
//
//	manager, err := config.NewManager("boards")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	b, err := manager.LoadConfig("express")
//	boards, err := manager.ListConfigs()
//
// Settings:
//
// LoadSettings reads GOOSE_BOARD_DIR, GOOSE_BOARD, GOOSE_SEED,
// GOOSE_LOG_LEVEL and GOOSE_SESSION_TTL.
package config
