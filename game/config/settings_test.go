package config

import (
	"testing"
	"time"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("Failed to load settings: %v", err)
		}
		if s.Board != "classic" || s.LogLevel != "info" || s.SessionTTL != 30*time.Minute {
			t.Errorf("Unexpected defaults %+v", s)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("GOOSE_BOARD_DIR", "/tmp/boards")
		t.Setenv("GOOSE_BOARD", "express")
		t.Setenv("GOOSE_SEED", "42")
		t.Setenv("GOOSE_SESSION_TTL", "5m")

		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("Failed to load settings: %v", err)
		}
		if s.BoardDir != "/tmp/boards" || s.Board != "express" || s.Seed != 42 || s.SessionTTL != 5*time.Minute {
			t.Errorf("Unexpected settings %+v", s)
		}
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("GOOSE_SEED", "lots")
		if _, err := LoadSettings(); err == nil {
			t.Error("Expected an error for a non-numeric seed")
		}
	})
}
