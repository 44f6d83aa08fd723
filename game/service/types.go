package service

import (
	"time"

	"github.com/wricardo/mcp-training/goosegame/game/board"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	Board          string            `json:"board"`
	Seed           uint64            `json:"seed,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	Players        []board.Placement `json:"players"`
	Turns          int               `json:"turns"`
	Winner         string            `json:"winner,omitempty"`
}

// CommandResult contains the outcome of a single command
type CommandResult struct {
	Command string            `json:"command"`
	Events  []GameEvent       `json:"events"`
	Message string            `json:"message"`
	Players []board.Placement `json:"players"`
	Winner  string            `json:"winner,omitempty"`
}

// GameEvent is the wire form of an engine event
type GameEvent struct {
	Type    string   `json:"type"` // "players_listed", "rolled", "moved", "moved_again", "bounced", "returned_to", "pranked", "jumped_to_bridge_target", "won"
	Player  string   `json:"player,omitempty"`
	Players []string `json:"players,omitempty"`
	From    *uint32  `json:"from,omitempty"`
	To      *uint32  `json:"to,omitempty"`
	Dice    []int    `json:"dice,omitempty"`
}

// ConfigInfo provides information about a board configuration
type ConfigInfo struct {
	Filename     string   `json:"filename"`
	ConfigID     string   `json:"config_id"` // The identifier to use for session creation
	Name         string   `json:"name"`      // Display name
	Description  string   `json:"description"`
	Builtin      bool     `json:"builtin"`
	End          uint32   `json:"end"`
	Bridge       uint32   `json:"bridge"`
	Geese        []uint32 `json:"geese"`
	LongestChain int      `json:"longest_chain"`
}
