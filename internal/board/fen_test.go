package board

import "testing"

func TestParseStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if got := pos.Count(White); got != 16 {
		t.Errorf("White piece count = %d, want 16", got)
	}
	if got := pos.Count(Black); got != 16 {
		t.Errorf("Black piece count = %d, want 16", got)
	}
	if pos.SideToMove != White {
		t.Errorf("SideToMove = %s, want White", pos.SideToMove)
	}

	// Spot-check a few squares.
	if pos.PieceOn(E1) != WhiteKing {
		t.Errorf("e1 = %q, want K", pos.PieceOn(E1))
	}
	if pos.PieceOn(D8) != BlackQueen {
		t.Errorf("d8 = %q, want q", pos.PieceOn(D8))
	}
	if pos.PieceOn(E4) != NoPiece {
		t.Errorf("e4 = %q, want empty", pos.PieceOn(E4))
	}
}

func TestParseFENSideDefaults(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/8/8/8/8")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	if pos.SideToMove != White {
		t.Errorf("SideToMove = %s, want White when side field is absent", pos.SideToMove)
	}

	pos, err = ParseFEN("8/8/8/8/8/8/8/8 b")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	if pos.SideToMove != Black {
		t.Errorf("SideToMove = %s, want Black", pos.SideToMove)
	}
}

func TestParseFENIgnoresExtraFields(t *testing.T) {
	// Castling, en passant and clock fields are accepted but not modeled.
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	if pos.SideToMove != Black {
		t.Errorf("SideToMove = %s, want Black", pos.SideToMove)
	}

	// On output the untracked fields are always placeholders.
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if got := pos.ToFEN(); got != want {
		t.Errorf("ToFEN() = %q, want %q", got, want)
	}
}

func TestParseFENErrors(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w"},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w"},
		{"short rank", "7/8/8/8/8/8/8/8 w"},
		{"long rank", "9/8/8/8/8/8/8/8 w"},
		{"overfull rank", "ppppppppp/8/8/8/8/8/8/8 w"},
		{"bad piece letter", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"bad side token", "8/8/8/8/8/8/8/8 x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); err == nil {
				t.Errorf("ParseFEN(%q) succeeded, want error", tc.fen)
			}
		})
	}
}

func TestToFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
		"8/P7/8/8/8/8/p7/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip of %q = %q", fen, got)
		}
	}
}
