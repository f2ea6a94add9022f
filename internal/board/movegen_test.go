package board

import "testing"

func TestStartingPositionMoves(t *testing.T) {
	pos := NewPosition()

	moves := pos.GenerateLegalMoves()
	if len(moves) != 20 {
		t.Errorf("starting position generates %d moves, want 20", len(moves))
		for _, m := range moves {
			t.Log("  Move:", m)
		}
	}
}

func TestGeneratedMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1",
		"k7/8/8/3q4/8/3R4/8/K7 b - - 0 1",
		"8/P7/8/8/8/3k4/8/K7 w - - 0 1",
		"R6k/6pp/8/8/8/2b5/8/K7 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		mover := pos.SideToMove
		for _, m := range pos.GenerateLegalMoves() {
			child := pos.Copy()
			child.MakeMove(m)
			if child.InCheck(mover) {
				t.Errorf("%s: generated move %s leaves %s in check", fen, m, mover)
			}
		}
	}
}

func TestPinnedRookMoves(t *testing.T) {
	// The e2 rook is pinned against the king by the e8 rook: it may
	// slide along the e-file but never leave it.
	pos, err := ParseFEN("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	for _, m := range pos.GenerateLegalMoves() {
		if m.From() == E2 && m.To().Col() != E2.Col() {
			t.Errorf("pinned rook escaped the file: %s", m)
		}
	}
}

func TestBlockedPawnHasNoMoves(t *testing.T) {
	pos, err := ParseFEN("k7/8/8/8/3p4/3P4/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	for _, m := range pos.GenerateLegalMoves() {
		if m.From() == D3 {
			t.Errorf("blocked pawn produced a move: %s", m)
		}
	}
}

func TestDoublePushNeedsBothSquaresEmpty(t *testing.T) {
	// A piece on d3 blocks both the single and the double push from d2.
	pos, err := ParseFEN("k7/8/8/8/8/3n4/3P4/K7 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	for _, m := range pos.GenerateLegalMoves() {
		if m.From() == D2 && (m.To() == D3 || m.To() == D4) {
			t.Errorf("push through a blocker: %s", m)
		}
	}
}

func TestStalematePosition(t *testing.T) {
	// Black king on a8 is boxed in by the b6 queen without being in
	// check: zero legal moves, reported as stalemate.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	moves := pos.GenerateLegalMoves()
	t.Log("Black legal moves:", len(moves))
	for _, m := range moves {
		t.Log("  Move:", m)
	}

	if len(moves) != 0 {
		t.Errorf("stalemate position generates %d moves, want 0", len(moves))
	}
	if pos.InCheck(Black) {
		t.Error("InCheck = true in stalemate position")
	}
	if !pos.IsStalemate() {
		t.Error("IsStalemate = false, want true")
	}
	if pos.IsCheckmate() {
		t.Error("IsCheckmate = true, want false")
	}
}

func TestBackRankMate(t *testing.T) {
	// Black king fully blocked by its own pawns and attacked by the
	// a8 rook: no blocking, capturing or escape option.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	moves := pos.GenerateLegalMoves()
	t.Log("Black legal moves:", len(moves))
	for _, m := range moves {
		t.Log("  Move:", m)
	}

	if len(moves) != 0 {
		t.Errorf("mate position generates %d moves, want 0", len(moves))
	}
	if !pos.InCheck(Black) {
		t.Error("InCheck = false in mate position")
	}
	if !pos.IsCheckmate() {
		t.Error("IsCheckmate = false, want true")
	}
}

func TestMoveOrderIsDeterministic(t *testing.T) {
	pos := NewPosition()

	first := pos.GenerateLegalMoves()
	for i := 0; i < 10; i++ {
		again := pos.GenerateLegalMoves()
		if len(again) != len(first) {
			t.Fatalf("run %d: %d moves, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: move %d is %s, want %s", i, j, again[j], first[j])
			}
		}
	}
}
