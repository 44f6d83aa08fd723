package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wricardo/mcp-training/goosegame/game/config"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	a := &app{settings: config.Settings{Board: "classic", LogLevel: "error", SessionTTL: time.Minute}}
	cmd := a.command()

	var out bytes.Buffer
	cmd.Writer = &out
	cmd.ErrWriter = &out
	cmd.Reader = strings.NewReader(input)

	err := cmd.Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func TestEnvFileWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	a := &app{
		settings: config.Settings{Board: "classic", LogLevel: "error", SessionTTL: time.Minute},
		envErr:   errors.New("malformed .env"),
		buildLogger: func(string) (*zap.Logger, error) {
			return zap.New(core), nil
		},
	}
	cmd := a.command()
	var out bytes.Buffer
	cmd.Writer = &out
	cmd.ErrWriter = &out

	err := cmd.Run(context.Background(), []string{AppName, "boards", "validate", filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatal("Expected validating a missing file to fail")
	}

	entries := logs.FilterMessage("failed to load .env file").All()
	if len(entries) != 1 {
		t.Fatalf("Expected one .env warning, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "malformed .env" {
		t.Errorf("Unexpected logged error %v", got)
	}
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "goose" {
		t.Errorf("Expected app name goose, got %s", AppName)
	}
}

func TestPlay(t *testing.T) {
	input := strings.Join([]string{
		"add player Pippo",
		"add player Pluto",
		"",
		"move Pippo 4, 2",
		"move Pluto 2, 2",
		"move Pippo 2, 3",
		"add player Pippo",
		"move Topolino 1, 1",
		"fly away",
		"quit",
		"move Pluto 1, 1",
	}, "\n")

	out, err := runApp(t, input, "play", "--seed", "3")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}

	expected := []string{
		"Board classic, seed 3.",
		"players: Pippo\n",
		"players: Pippo, Pluto\n",
		"Pippo rolls 4, 2. Pippo moves from Start to 6, The Bridge. Pippo jumps to 12\n",
		"Pluto rolls 2, 2. Pluto moves from Start to 4\n",
		"Pippo rolls 2, 3. Pippo moves from 12 to 17\n",
		"Pippo: already existing player\n",
		"Topolino: no such player\n",
		"unknown command",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Pluto rolls 1, 1") {
		t.Error("Expected input after quit to be ignored")
	}
}

func TestSimulate(t *testing.T) {
	t.Run("plays until a winner", func(t *testing.T) {
		out, err := runApp(t, "", "simulate", "--players", "Pippo,Pluto", "--seed", "42")
		if err != nil {
			t.Fatalf("simulate failed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "players: Pippo, Pluto") {
			t.Errorf("Expected players to be added:\n%s", out)
		}
		if !strings.Contains(out, "Wins!!") || !strings.Contains(out, "won after") {
			t.Errorf("Expected a winner:\n%s", out)
		}
	})

	t.Run("same seed same game", func(t *testing.T) {
		first, _ := runApp(t, "", "simulate", "--players", "Pippo", "--players", "Pluto", "--seed", "9")
		second, _ := runApp(t, "", "simulate", "--players", "Pippo,Pluto", "--seed", "9")
		if first != second {
			t.Error("Expected identical simulations for the same seed")
		}
	})

	t.Run("turn limit", func(t *testing.T) {
		_, err := runApp(t, "", "simulate", "--players", "Pippo", "--seed", "1", "--max-turns", "1")
		if !errors.Is(err, ErrNoWinner) {
			t.Errorf("Expected ErrNoWinner, got %v", err)
		}
	})

	t.Run("duplicate players", func(t *testing.T) {
		_, err := runApp(t, "", "simulate", "--players", "Pippo,Pippo", "--seed", "1")
		if err == nil || err.Error() != "Pippo: already existing player" {
			t.Errorf("Expected duplicate player error, got %v", err)
		}
	})
}

func TestBoards(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		out, err := runApp(t, "", "boards")
		if err != nil {
			t.Fatalf("boards failed: %v", err)
		}
		if !strings.Contains(out, "classic") || !strings.Contains(out, "express") {
			t.Errorf("Expected builtin boards:\n%s", out)
		}
	})

	t.Run("board dir", func(t *testing.T) {
		dir := t.TempDir()
		content := "name: tiny\nend: 20\nbridge: 6\ngeese: [5]\n"
		if err := os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write board: %v", err)
		}

		out, err := runApp(t, "", "--board-dir", dir, "boards", "list")
		if err != nil {
			t.Fatalf("boards list failed: %v", err)
		}
		if !strings.Contains(out, "tiny") || !strings.Contains(out, "tiny.yaml") {
			t.Errorf("Expected tiny board:\n%s", out)
		}
	})

	t.Run("missing board dir", func(t *testing.T) {
		if _, err := runApp(t, "", "--board-dir", "/non/existent/path", "boards"); err == nil {
			t.Error("Expected error for non-existent board directory")
		}
	})

	t.Run("validate", func(t *testing.T) {
		dir := t.TempDir()
		good := filepath.Join(dir, "good.json")
		bad := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(good, []byte(`{"name": "good", "end": 63, "bridge": 6, "geese": [5, 9]}`), 0644); err != nil {
			t.Fatalf("Failed to write board: %v", err)
		}
		if err := os.WriteFile(bad, []byte("name: bad\nend: 63\nbridge: 6\ngeese: [60, 61]\n"), 0644); err != nil {
			t.Fatalf("Failed to write board: %v", err)
		}

		out, err := runApp(t, "", "boards", "validate", good)
		if err != nil {
			t.Fatalf("validate failed: %v", err)
		}
		if !strings.Contains(out, "board good is valid") {
			t.Errorf("Unexpected output:\n%s", out)
		}

		if _, err := runApp(t, "", "boards", "validate", bad); !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
		if _, err := runApp(t, "", "boards", "validate"); err == nil {
			t.Error("Expected error without a file")
		}
	})
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug"); err != nil {
		t.Errorf("Expected debug level to be accepted, got %v", err)
	}
	if _, err := newLogger("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
