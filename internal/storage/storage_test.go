package storage

import (
	"os"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dir, err := os.MkdirTemp("", "chess-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := NewStorageAt(dir)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStorage(t *testing.T) {
	s := newTestStorage(t)

	t.Run("LoadGameEmpty", func(t *testing.T) {
		game, err := s.LoadGame()
		if err != nil {
			t.Fatalf("LoadGame: %v", err)
		}
		if game != nil {
			t.Errorf("Expected nil game on empty store, got %+v", game)
		}
	})

	t.Run("SaveLoadGame", func(t *testing.T) {
		saved := &SavedGame{
			FEN:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
			UserColor: "White",
			Moves:     []string{"e2e4"},
		}
		if err := s.SaveGame(saved); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}

		game, err := s.LoadGame()
		if err != nil {
			t.Fatalf("LoadGame: %v", err)
		}
		if game == nil {
			t.Fatal("Expected saved game, got nil")
		}
		if game.FEN != saved.FEN {
			t.Errorf("FEN = %q, want %q", game.FEN, saved.FEN)
		}
		if len(game.Moves) != 1 || game.Moves[0] != "e2e4" {
			t.Errorf("Moves = %v, want [e2e4]", game.Moves)
		}
		if game.UpdatedAt.IsZero() {
			t.Error("UpdatedAt was not set")
		}
	})

	t.Run("ClearGame", func(t *testing.T) {
		if err := s.ClearGame(); err != nil {
			t.Fatalf("ClearGame: %v", err)
		}
		game, err := s.LoadGame()
		if err != nil {
			t.Fatalf("LoadGame: %v", err)
		}
		if game != nil {
			t.Errorf("Expected nil game after clear, got %+v", game)
		}
	})

	t.Run("RecordGame", func(t *testing.T) {
		if err := s.RecordGame(GameResult{Won: true}); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
		if err := s.RecordGame(GameResult{Won: true}); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
		if err := s.RecordGame(GameResult{Draw: true}); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
		if err := s.RecordGame(GameResult{}); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}

		stats, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats: %v", err)
		}
		if stats.GamesPlayed != 4 || stats.Wins != 2 || stats.Draws != 1 || stats.Losses != 1 {
			t.Errorf("Stats = %+v, want 4 played, 2 wins, 1 draw, 1 loss", stats)
		}
		if stats.LongestWinStrk != 2 {
			t.Errorf("LongestWinStrk = %d, want 2", stats.LongestWinStrk)
		}
		if stats.CurrentStreak != 0 {
			t.Errorf("CurrentStreak = %d, want 0 after a loss", stats.CurrentStreak)
		}
	})
}

func TestWinRate(t *testing.T) {
	stats := &GameStats{}
	if stats.GetWinRate() != 0 {
		t.Errorf("Expected 0 win rate on empty stats")
	}

	stats = &GameStats{GamesPlayed: 10, Wins: 5, Losses: 3, Draws: 2}
	if rate := stats.GetWinRate(); rate != 50 {
		t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
	}
}
