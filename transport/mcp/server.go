package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/engine"
	"github.com/wricardo/mcp-training/goosegame/game/service"
)

// Server exposes the game service as MCP tools
type Server struct {
	service   service.GameService
	logger    *zap.Logger
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server backed by the given game service
func NewServer(svc service.GameService, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		service: svc,
		logger:  logger,
	}

	s.initMCPServer(version)
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer(version string) {
	s.mcpServer = server.NewMCPServer(
		"Game of the Goose",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Game of the Goose - MCP Interface

Race your players from Start to the end square with two six-sided dice.

AVAILABLE TOOLS:
- create_game: Create a new game on a board
- list_games: List all games in progress
- add_player: Add a player on the start square
- remove_player: Remove a player
- move: Move a player with dice you choose
- roll_and_move: Roll the dice for a player and move
- game_state: Show where every player stands
- list_boards: List available boards
- game_rules: Explain the rules

Moves are narrated, e.g. "Pippo rolls 4, 2. Pippo moves from Start to 6, The Bridge. Pippo jumps to 12".`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	sessionID := map[string]interface{}{
		"type":        "string",
		"description": "Game ID returned by create_game",
	}
	player := map[string]interface{}{
		"type":        "string",
		"description": "Player name",
	}
	die := func(description string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "integer",
			"minimum":     1,
			"maximum":     6,
			"description": description,
		}
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new game with optional board selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": map[string]interface{}{
					"type":        "string",
					"description": "Name of the board to use (optional, see list_boards)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Dice seed for a reproducible game (optional)",
				},
			},
		},
	}, s.handleCreateGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all games in progress",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListGames)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "add_player",
		Description: "Add a player on the start square",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"player":     player,
			},
			Required: []string{"session_id", "player"},
		},
	}, s.handleAddPlayer)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "remove_player",
		Description: "Remove a player from the game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"player":     player,
			},
			Required: []string{"session_id", "player"},
		},
	}, s.handleRemovePlayer)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move a player with the given dice",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"player":     player,
				"first":      die("First die (1-6)"),
				"second":     die("Second die (1-6)"),
			},
			Required: []string{"session_id", "player", "first", "second"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "roll_and_move",
		Description: "Roll both dice for a player and move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"player":     player,
			},
			Required: []string{"session_id", "player"},
		},
	}, s.handleRollAndMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Show every player's square and the winner, if any",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
			},
			Required: []string{"session_id"},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_boards",
		Description: "List available boards",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListBoards)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Explain the rules of the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over stdin and stdout until the input closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	boardName, _ := args["board"].(string)
	seed, _ := intArg(args, "seed")
	if seed < 0 {
		return mcp.NewToolResultError("seed must not be negative"), nil
	}

	info, err := s.service.CreateSession(ctx, boardName, uint64(seed))
	if err != nil {
		return s.toolError("create_game", err), nil
	}

	result := fmt.Sprintf("Created game: %s\nBoard: %s\nSeed: %d\n\nAdd players with add_player, then move them with move or roll_and_move.",
		info.ID, info.Board, info.Seed)
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := s.service.ListSessions(ctx)
	if err != nil {
		return s.toolError("list_games", err), nil
	}
	if len(sessions) == 0 {
		return mcp.NewToolResultText("No games in progress. Use create_game to start one."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d game(s):\n", len(sessions))
	for _, info := range sessions {
		fmt.Fprintf(&b, "- %s", formatSessionInfo(info))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleAddPlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	name, _ := args["player"].(string)

	return s.execute(ctx, "add_player", sessionID, engine.Add[string, int](name))
}

func (s *Server) handleRemovePlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	name, _ := args["player"].(string)

	return s.execute(ctx, "remove_player", sessionID, engine.Remove[string, int](name))
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	name, _ := args["player"].(string)

	first, ok := intArg(args, "first")
	if !ok {
		return mcp.NewToolResultError("first die is required"), nil
	}
	second, ok := intArg(args, "second")
	if !ok {
		return mcp.NewToolResultError("second die is required"), nil
	}

	return s.execute(ctx, "move", sessionID, engine.Move(name, first, second))
}

func (s *Server) handleRollAndMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	name, _ := args["player"].(string)

	return s.execute(ctx, "roll_and_move", sessionID, engine.RollAndMove[string, int](name))
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	info, err := s.service.GetSession(ctx, sessionID)
	if err != nil {
		return s.toolError("game_state", err), nil
	}
	return mcp.NewToolResultText(formatSessionInfo(info)), nil
}

func (s *Server) handleListBoards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := s.service.ListBoards(ctx)
	if err != nil {
		return s.toolError("list_boards", err), nil
	}
	return mcp.NewToolResultText(formatBoards(configs)), nil
}

func (s *Server) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(Rules), nil
}

func (s *Server) execute(ctx context.Context, tool, sessionID string, cmd board.Command) (*mcp.CallToolResult, error) {
	result, err := s.service.Execute(ctx, sessionID, cmd)
	if err != nil {
		return s.toolError(tool, err), nil
	}

	text := result.Message
	if result.Winner != "" {
		text += "\n\nGame over: " + result.Winner + " won."
	}
	return mcp.NewToolResultText(text), nil
}

// toolError logs a failed tool call and reports it to the caller
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn("tool call failed", zap.String("tool", tool), zap.Error(err))
	return mcp.NewToolResultError(service.NarrateError(err))
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

// intArg reads an integer argument; JSON numbers arrive as float64
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
