// Command goose plays the Game of the Goose.
//
// It supports four commands:
//  1. "play" – reads text commands from stdin and prints the narration
//  2. "simulate" – plays random turns for a list of players until somebody wins
//  3. "boards" – lists the available boards or validates a board file
//  4. "mcp" – runs an MCP stdio server for AI agents
//
// Settings come from the environment (GOOSE_*), optionally loaded from a .env
// file; flags override them.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wricardo/mcp-training/goosegame/game/config"
	"github.com/wricardo/mcp-training/goosegame/game/engine"
	"github.com/wricardo/mcp-training/goosegame/game/service"
	"github.com/wricardo/mcp-training/goosegame/game/session"
	"github.com/wricardo/mcp-training/goosegame/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "goose"
)

// ErrNoWinner is returned by simulate when the turn limit is reached
var ErrNoWinner = errors.New("no winner")

// main loads the environment and runs the command tree
func main() {
	// Load .env file if it exists (ignore error if not found)
	envErr := godotenv.Load()
	if os.IsNotExist(envErr) {
		envErr = nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{settings: settings, envErr: envErr}
	cmd := a.command()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		a.sync()
		os.Exit(1)
	}
	a.sync()
}

// app carries the settings and the logger shared by every command
type app struct {
	settings config.Settings
	envErr   error
	logger   *zap.Logger

	// buildLogger replaces newLogger in tests
	buildLogger func(level string) (*zap.Logger, error)
}

// command builds the goose command tree. Flag defaults come from the settings.
func (a *app) command() *cli.Command {
	boardFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:  "board",
			Usage: "board to play on (see 'goose boards')",
			Value: a.settings.Board,
		}
	}
	seedFlag := func() cli.Flag {
		return &cli.Uint64Flag{
			Name:  "seed",
			Usage: "dice seed, 0 picks a random one",
			Value: a.settings.Seed,
		}
	}

	return &cli.Command{
		Name:    AppName,
		Usage:   "Game of the Goose rules engine",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: a.settings.LogLevel,
			},
			&cli.StringFlag{
				Name:  "board-dir",
				Usage: "directory with extra JSON or YAML boards",
				Value: a.settings.BoardDir,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			build := a.buildLogger
			if build == nil {
				build = newLogger
			}
			logger, err := build(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}
			a.logger = logger
			if a.envErr != nil {
				a.logger.Warn("failed to load .env file", zap.Error(a.envErr))
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "read commands from stdin: 'add player NAME', 'move NAME 4, 2', 'move NAME'",
				Flags:  []cli.Flag{boardFlag(), seedFlag()},
				Action: a.play,
			},
			{
				Name:  "simulate",
				Usage: "roll for every player in turn until somebody wins",
				Flags: []cli.Flag{
					boardFlag(),
					seedFlag(),
					&cli.StringSliceFlag{
						Name:     "players",
						Usage:    "player names, in turn order",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-turns",
						Usage: "give up after this many turns",
						Value: 1000,
					},
				},
				Action: a.simulate,
			},
			{
				Name:  "boards",
				Usage: "list or validate boards",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list the available boards",
						Action: a.listBoards,
					},
					{
						Name:      "validate",
						Usage:     "validate a JSON or YAML board file",
						ArgsUsage: "FILE",
						Action:    a.validateBoard,
					},
				},
				Action: a.listBoards,
			},
			{
				Name:  "mcp",
				Usage: "run the MCP stdio server",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "session-ttl",
						Usage: "drop games idle for longer than this",
						Value: a.settings.SessionTTL,
					},
				},
				Action: a.serveMCP,
			},
		},
	}
}

// newLogger builds a production logger writing to stderr at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func (a *app) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// services wires the config manager, session manager and game service
func (a *app) services(cmd *cli.Command) (service.GameService, *session.Manager, *config.Manager, error) {
	configManager, err := config.NewManager(cmd.Root().String("board-dir"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager(a.log())
	gameService := service.NewGameService(sessionManager, configManager)
	return gameService, sessionManager, configManager, nil
}

// play runs the text protocol against a single game until stdin closes
func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	gameService, _, _, err := a.services(cmd)
	if err != nil {
		return err
	}

	info, err := gameService.CreateSession(ctx, cmd.String("board"), cmd.Uint64("seed"))
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "Board %s, seed %d. Type 'add player NAME' to begin.\n", info.Board, info.Seed)

	return runLines(ctx, cmd.Root().Reader, out, func(line string) (string, error) {
		result, err := gameService.ExecuteLine(ctx, info.ID, line)
		if err != nil {
			a.log().Debug("command failed", zap.String("line", line), zap.Error(err))
			return "", err
		}
		return result.Message, nil
	})
}

// runLines feeds every non-empty input line to exec and prints the narration
// or the narrated error
func runLines(ctx context.Context, in io.Reader, out io.Writer, exec func(line string) (string, error)) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		message, err := exec(line)
		if err != nil {
			fmt.Fprintln(out, service.NarrateError(err))
			continue
		}
		fmt.Fprintln(out, message)
	}
	return scanner.Err()
}

// simulate plays RollAndMove turns in round-robin order until a player wins
func (a *app) simulate(ctx context.Context, cmd *cli.Command) error {
	gameService, _, _, err := a.services(cmd)
	if err != nil {
		return err
	}

	info, err := gameService.CreateSession(ctx, cmd.String("board"), cmd.Uint64("seed"))
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "Board %s, seed %d\n", info.Board, info.Seed)

	var players []string
	for _, name := range cmd.StringSlice("players") {
		for _, p := range strings.Split(name, ",") {
			if p = strings.TrimSpace(p); p != "" {
				players = append(players, p)
			}
		}
	}
	if len(players) == 0 {
		return fmt.Errorf("at least one player is required")
	}

	for _, p := range players {
		result, err := gameService.Execute(ctx, info.ID, engine.Add[string, int](p))
		if err != nil {
			return errors.New(service.NarrateError(err))
		}
		fmt.Fprintln(out, result.Message)
	}

	maxTurns := int(cmd.Int("max-turns"))
	for turn := 0; turn < maxTurns; turn++ {
		player := players[turn%len(players)]
		result, err := gameService.Execute(ctx, info.ID, engine.RollAndMove[string, int](player))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result.Message)

		if result.Winner != "" {
			fmt.Fprintf(out, "%s won after %d turns\n", result.Winner, turn+1)
			a.log().Info("simulation finished",
				zap.String("winner", result.Winner),
				zap.Int("turns", turn+1),
				zap.Uint64("seed", info.Seed),
			)
			return nil
		}
	}

	return fmt.Errorf("%w after %d turns", ErrNoWinner, maxTurns)
}

// listBoards prints every loadable board with its longest chain
func (a *app) listBoards(ctx context.Context, cmd *cli.Command) error {
	gameService, _, _, err := a.services(cmd)
	if err != nil {
		return err
	}

	configs, err := gameService.ListBoards(ctx)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	for _, c := range configs {
		source := c.Filename
		if c.Builtin {
			source = "builtin"
		}
		fmt.Fprintf(out, "%-12s end %-3d bridge %-3d geese %-22s longest chain %d  (%s)\n",
			c.ConfigID, c.End, c.Bridge, formatGeese(c.Geese), c.LongestChain, source)
	}
	return nil
}

// validateBoard checks a board file and prints its analysis
func (a *app) validateBoard(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one board file")
	}

	filename := cmd.Args().First()
	b, err := config.LoadFile(filename)
	if err != nil {
		return err
	}

	analysis := b.Analyze()
	fmt.Fprintf(cmd.Root().Writer, "%s: board %s is valid, longest chain %d hop(s) (%d from square %d)\n",
		filename, b.Name, analysis.LongestChain, analysis.Longest.Distance, analysis.Longest.From)
	return nil
}

// serveMCP runs the MCP stdio server and expires idle games in the background
func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	gameService, sessionManager, _, err := a.services(cmd)
	if err != nil {
		return err
	}

	ttl := cmd.Duration("session-ttl")
	if ttl > 0 {
		go sessionCleanupRoutine(ctx, sessionManager, ttl, a.log())
	}

	a.log().Info("MCP stdio server ready", zap.String("version", Version), zap.Duration("session_ttl", ttl))
	return mcp.NewServer(gameService, a.log(), Version).ServeStdio()
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within the provided retention window.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, ttl time.Duration, logger *zap.Logger) {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(ttl); removed > 0 {
				logger.Info("cleaned up expired sessions", zap.Int("removed", removed))
			}
		}
	}
}

func formatGeese(geese []uint32) string {
	parts := make([]string, 0, len(geese))
	for _, g := range geese {
		parts = append(parts, fmt.Sprint(g))
	}
	return strings.Join(parts, ",")
}
