package service

import (
	"context"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, boardName string, seed uint64) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Execute(ctx context.Context, sessionID string, cmd board.Command) (*CommandResult, error)
	ExecuteLine(ctx context.Context, sessionID, line string) (*CommandResult, error)

	// Boards
	ListBoards(ctx context.Context) ([]*ConfigInfo, error)
	LoadBoard(ctx context.Context, boardName string) (*board.Board, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, b *board.Board, dice engine.Dice[int]) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles board loading
type ConfigManager interface {
	LoadConfig(name string) (*board.Board, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *board.Board
}

// Session is one game in progress. Commands on a session must hold its lock.
type Session struct {
	ID             string
	Board          *board.Board
	Roster         *board.Roster
	Game           *board.Game
	Seed           uint64
	Winner         string
	Turns          int
	CreatedAt      time.Time
	LastAccessedAt time.Time

	mu sync.Mutex
}

// NewSession creates a session with an empty roster on the given board
func NewSession(id string, b *board.Board, dice engine.Dice[int]) *Session {
	roster := board.NewRoster()
	now := time.Now()

	sess := &Session{
		ID:             id,
		Board:          b,
		Roster:         roster,
		Game:           board.NewGame(b, roster, dice),
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	if seeded, ok := dice.(interface{ Seed() uint64 }); ok {
		sess.Seed = seeded.Seed()
	}
	return sess
}

// Lock serializes commands on the session
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session
func (s *Session) Unlock() {
	s.mu.Unlock()
}
