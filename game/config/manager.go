package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/service"
)

var (
	ErrConfigNotFound = errors.New("board not found")
	ErrInvalidConfig  = errors.New("invalid board configuration")
)

// DefaultBoard is loaded when no board is named
const DefaultBoard = "classic"

//go:embed boards
var builtin embed.FS

var extensions = []string{".json", ".yaml", ".yml"}

// Manager handles board loading and caching. Boards in the board directory
// shadow the embedded ones with the same name.
type Manager struct {
	boardDir     string
	defaultBoard *board.Board
	boards       map[string]*board.Board
	mu           sync.RWMutex
}

// NewManager creates a new board manager. An empty boardDir serves only the
// embedded boards.
func NewManager(boardDir string) (*Manager, error) {
	if boardDir != "" {
		if _, err := os.Stat(boardDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("board directory does not exist: %s", boardDir)
		}
	}

	m := &Manager{
		boardDir: boardDir,
		boards:   make(map[string]*board.Board),
	}

	if err := m.loadDefaultBoard(); err != nil {
		return nil, fmt.Errorf("failed to load default board: %w", err)
	}

	return m, nil
}

// LoadConfig loads a board by name, with or without its file extension
func (m *Manager) LoadConfig(name string) (*board.Board, error) {
	name = configID(name)
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	m.mu.RLock()
	if b, exists := m.boards[name]; exists {
		m.mu.RUnlock()
		return b, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if b, exists := m.boards[name]; exists {
		return b, nil
	}

	filename, data, err := m.read(name)
	if err != nil {
		return nil, err
	}

	b, err := ParseBoard(filename, data)
	if err != nil {
		return nil, err
	}

	m.boards[name] = b
	return b, nil
}

// ListConfigs returns information about all loadable boards, sorted by id
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	files := make(map[string]string)
	builtinIDs := make(map[string]bool)

	entries, err := builtin.ReadDir("boards")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded boards: %w", err)
	}
	for _, entry := range entries {
		if supported(entry.Name()) {
			files[configID(entry.Name())] = entry.Name()
			builtinIDs[configID(entry.Name())] = true
		}
	}

	if m.boardDir != "" {
		entries, err := os.ReadDir(m.boardDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read board directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !supported(entry.Name()) {
				continue
			}
			files[configID(entry.Name())] = entry.Name()
			delete(builtinIDs, configID(entry.Name()))
		}
	}

	ids := make([]string, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	configs := make([]*service.ConfigInfo, 0, len(ids))
	for _, id := range ids {
		b, err := m.LoadConfig(id)
		if err != nil {
			// Skip invalid boards
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:     files[id],
			ConfigID:     id,
			Name:         b.Name,
			Description:  b.Description,
			Builtin:      builtinIDs[id],
			End:          b.End,
			Bridge:       b.Bridge,
			Geese:        b.Geese,
			LongestChain: b.Analyze().LongestChain,
		})
	}

	return configs, nil
}

// GetDefault returns the default board
func (m *Manager) GetDefault() *board.Board {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultBoard
}

// SetDefault sets the default board by name
func (m *Manager) SetDefault(name string) error {
	b, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultBoard = b
	return nil
}

// RefreshCache drops every cached board so the next load reads from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.boards = make(map[string]*board.Board)
	m.mu.Unlock()

	return m.loadDefaultBoard()
}

// loadDefaultBoard loads the classic board, falling back to the compiled-in one
func (m *Manager) loadDefaultBoard() error {
	b, err := m.LoadConfig(DefaultBoard)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return err
		}
		b = board.Classic()
	}

	m.mu.Lock()
	m.defaultBoard = b
	m.mu.Unlock()
	return nil
}

// read looks for the board in the board directory first, then in the embedded boards
func (m *Manager) read(name string) (string, []byte, error) {
	if m.boardDir != "" {
		for _, ext := range extensions {
			filename := name + ext
			data, err := os.ReadFile(filepath.Join(m.boardDir, filename))
			if err == nil {
				return filename, data, nil
			}
			if !os.IsNotExist(err) {
				return "", nil, fmt.Errorf("failed to read board file: %w", err)
			}
		}
	}

	for _, ext := range extensions {
		filename := name + ext
		if data, err := builtin.ReadFile(path.Join("boards", filename)); err == nil {
			return filename, data, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
}

// LoadFile reads and validates a board file outside the board directory
func LoadFile(filename string) (*board.Board, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	return ParseBoard(filepath.Base(filename), data)
}

// ParseBoard decodes a JSON or YAML board, chosen by file extension, and
// validates it. A board without a name takes the file name.
func ParseBoard(filename string, data []byte) (*board.Board, error) {
	var b board.Board

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, filename, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported file type %s", ErrInvalidConfig, filename)
	}

	if b.Name == "" {
		b.Name = configID(filename)
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &b, nil
}

func supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// configID strips a supported extension from a file name
func configID(name string) string {
	if supported(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
