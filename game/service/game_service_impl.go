package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/dice"
	"github.com/wricardo/mcp-training/goosegame/game/engine"
)

var (
	ErrInvalidRoll    = errors.New("invalid roll")
	ErrUnknownCommand = errors.New("unknown command")
	ErrGameOver       = errors.New("game is over")
)

// DiceFactory builds the dice for a new session from a seed
type DiceFactory func(seed uint64) engine.Dice[int]

// Option configures the game service
type Option func(*gameServiceImpl)

// WithDiceFactory replaces the seeded random dice used by new sessions
func WithDiceFactory(factory DiceFactory) Option {
	return func(s *gameServiceImpl) {
		s.newDice = factory
	}
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	newDice  DiceFactory
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, opts ...Option) GameService {
	s := &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		newDice: func(seed uint64) engine.Dice[int] {
			return dice.NewRandom(seed)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession creates a new game session on the named board
func (s *gameServiceImpl) CreateSession(ctx context.Context, boardName string, seed uint64) (*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b *board.Board
	if boardName != "" {
		var err error
		b, err = s.configs.LoadConfig(boardName)
		if err != nil {
			return nil, s.boardError(boardName, err)
		}
	} else {
		b = s.configs.GetDefault()
	}

	sess, err := s.sessions.Create("", b, s.newDice(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.sessions.Delete(sessionID)
}

// Execute runs one command on the session's game under the session lock
func (s *gameServiceImpl) Execute(ctx context.Context, sessionID string, cmd board.Command) (*CommandResult, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cmd.Player = strings.TrimSpace(cmd.Player)
	if cmd.Player == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrUnknownCommand)
	}
	if cmd.Kind == engine.CommandMove {
		if err := validateRoll(cmd.Dice[0], cmd.Dice[1]); err != nil {
			return nil, err
		}
	}

	sess.Lock()
	defer sess.Unlock()

	moving := cmd.Kind == engine.CommandMove || cmd.Kind == engine.CommandRollAndMove
	if moving && sess.Winner != "" {
		return nil, fmt.Errorf("%w: %s already won", ErrGameOver, sess.Winner)
	}

	events, err := sess.Game.Execute(cmd)
	if err != nil {
		return nil, err
	}

	if moving {
		sess.Turns++
	}
	if winner, ok := events.Winner(); ok {
		sess.Winner = winner
	}
	if cmd.Kind == engine.CommandRemove && cmd.Player == sess.Winner {
		sess.Winner = ""
	}

	return &CommandResult{
		Command: FormatCommand(cmd),
		Events:  toGameEvents(events.Events()),
		Message: Narrate(events.Events()),
		Players: sess.Roster.Placements(),
		Winner:  sess.Winner,
	}, nil
}

// ExecuteLine parses a text protocol line and executes it
func (s *gameServiceImpl) ExecuteLine(ctx context.Context, sessionID, line string) (*CommandResult, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, sessionID, cmd)
}

// ListBoards returns every loadable board
func (s *gameServiceImpl) ListBoards(ctx context.Context) ([]*ConfigInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.configs.ListConfigs()
}

// LoadBoard returns the named board
func (s *gameServiceImpl) LoadBoard(ctx context.Context, boardName string) (*board.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := s.configs.LoadConfig(boardName)
	if err != nil {
		return nil, s.boardError(boardName, err)
	}
	return b, nil
}

func (s *gameServiceImpl) session(ctx context.Context, sessionID string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	if err := s.sessions.UpdateLastAccessed(sessionID); err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return sess, nil
}

// boardError lists the available boards when the requested one does not exist
func (s *gameServiceImpl) boardError(boardName string, err error) error {
	configs, listErr := s.configs.ListConfigs()
	if listErr != nil || len(configs) == 0 {
		return fmt.Errorf("failed to load board %s: %w", boardName, err)
	}

	ids := make([]string, 0, len(configs))
	for _, cfg := range configs {
		ids = append(ids, cfg.ConfigID)
	}
	return fmt.Errorf("failed to load board %s (available: %s): %w", boardName, strings.Join(ids, ", "), err)
}

func sessionInfo(sess *Session) *SessionInfo {
	sess.Lock()
	defer sess.Unlock()

	return &SessionInfo{
		ID:             sess.ID,
		Board:          sess.Board.Name,
		Seed:           sess.Seed,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Players:        sess.Roster.Placements(),
		Turns:          sess.Turns,
		Winner:         sess.Winner,
	}
}
