package board

// GenerateLegalMoves returns all legal moves for the side to move.
//
// Moves are generated pseudo-legally square by square in board scan
// order (row-major, then per-piece direction order), then filtered by
// applying each one to a copy of the position and rejecting it if the
// mover's own king ends up in check. The order is deterministic but
// carries no heuristic ranking.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.pseudoLegalMoves()

	legal := pseudo[:0]
	for _, m := range pseudo {
		child := p.Copy()
		child.MakeMove(m)
		if !child.InCheck(p.SideToMove) {
			legal = append(legal, m)
		}
	}
	return legal
}

// pseudoLegalMoves enumerates candidate moves for the side to move
// without regard to whether they leave the own king in check.
func (p *Position) pseudoLegalMoves() []Move {
	var moves []Move

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.PieceAt(row, col)
			if piece == NoPiece || piece.Color() != p.SideToMove {
				continue
			}

			switch piece.Type() {
			case Pawn:
				moves = p.pawnMoves(moves, row, col, piece.Color())
			case Knight:
				moves = p.offsetMoves(moves, row, col, knightOffsets[:])
			case King:
				moves = p.offsetMoves(moves, row, col, queenDirs[:])
			case Bishop:
				moves = p.sliderMoves(moves, row, col, bishopDirs[:])
			case Rook:
				moves = p.sliderMoves(moves, row, col, rookDirs[:])
			case Queen:
				moves = p.sliderMoves(moves, row, col, queenDirs[:])
			}
		}
	}

	return moves
}

// pawnMoves adds pawn pushes and diagonal captures. White pawns move
// toward row 0, black pawns toward row 7. There is no en passant.
func (p *Position) pawnMoves(moves []Move, row, col int, c Color) []Move {
	dir := 1
	startRow := 1
	if c == White {
		dir = -1
		startRow = 6
	}

	from := NewSquare(row, col)

	// Single push, and double push from the starting rank when both
	// squares ahead are empty.
	r1 := row + dir
	if r1 >= 0 && r1 < 8 && p.PieceAt(r1, col) == NoPiece {
		moves = append(moves, NewMove(from, NewSquare(r1, col)))
		if row == startRow {
			r2 := row + 2*dir
			if p.PieceAt(r2, col) == NoPiece {
				moves = append(moves, NewMove(from, NewSquare(r2, col)))
			}
		}
	}

	// Diagonal captures only onto occupied enemy squares.
	for _, dc := range [2]int{-1, 1} {
		target := p.PieceAt(r1, col+dc)
		if target != NoPiece && target.Color() != c {
			moves = append(moves, NewMove(from, NewSquare(r1, col+dc)))
		}
	}

	return moves
}

// offsetMoves adds fixed-offset moves (knight, king): the destination
// is allowed if it is on the board and empty or holds an enemy piece.
func (p *Position) offsetMoves(moves []Move, row, col int, offsets [][2]int) []Move {
	from := NewSquare(row, col)
	mover := p.PieceAt(row, col)

	for _, off := range offsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r > 7 || c < 0 || c > 7 {
			continue
		}
		target := p.PieceAt(r, c)
		if target == NoPiece || target.Color() != mover.Color() {
			moves = append(moves, NewMove(from, NewSquare(r, c)))
		}
	}

	return moves
}

// sliderMoves adds ray moves (bishop, rook, queen): each ray is walked
// until blocked; the blocking square is included only as a capture.
func (p *Position) sliderMoves(moves []Move, row, col int, dirs [][2]int) []Move {
	from := NewSquare(row, col)
	mover := p.PieceAt(row, col)

	for _, dir := range dirs {
		r, c := row+dir[0], col+dir[1]
		for r >= 0 && r < 8 && c >= 0 && c < 8 {
			target := p.PieceAt(r, c)
			if target == NoPiece {
				moves = append(moves, NewMove(from, NewSquare(r, c)))
			} else {
				if target.Color() != mover.Color() {
					moves = append(moves, NewMove(from, NewSquare(r, c)))
				}
				break
			}
			r += dir[0]
			c += dir[1]
		}
	}

	return moves
}

// HasLegalMoves reports whether the side to move has at least one
// legal move.
func (p *Position) HasLegalMoves() bool {
	return len(p.GenerateLegalMoves()) > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.SideToMove) && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.SideToMove) && !p.HasLegalMoves()
}
