package board

// Movement offset tables, as (rowDelta, colDelta) pairs.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	// Queen and king directions in generation order.
	queenDirs = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	// Ray directions for attack detection: the first four are
	// orthogonal (rook rays), the last four diagonal (bishop rays).
	attackRays = [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// kingSquare locates the king of the given color by linear scan.
// Returns NoSquare if the king is absent.
func (p *Position) kingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A8; sq < NoSquare; sq++ {
		if p.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the given color's king is attacked. It is a
// direct attacked-square computation, independent of move generation.
//
// A position with no king for the given color reports true: search
// uses this as a sentinel to steer hard away from king loss instead
// of treating it as an error.
func (p *Position) InCheck(c Color) bool {
	kingSq := p.kingSquare(c)
	if kingSq == NoSquare {
		return true
	}

	kr, kc := kingSq.Row(), kingSq.Col()
	opponent := c.Other()

	// Pawn attacks: probe the two diagonals one rank toward the king
	// from the opponent's advancing direction.
	enemyDir := 1
	if opponent == White {
		enemyDir = -1
	}
	for _, dc := range [2]int{-1, 1} {
		piece := p.PieceAt(kr-enemyDir, kc+dc)
		if piece != NoPiece && piece.Color() == opponent && piece.Type() == Pawn {
			return true
		}
	}

	// Knight attacks.
	for _, off := range knightOffsets {
		piece := p.PieceAt(kr+off[0], kc+off[1])
		if piece != NoPiece && piece.Color() == opponent && piece.Type() == Knight {
			return true
		}
	}

	// Sliding and king attacks: walk each ray outward; the first
	// occupied square settles the ray.
	for i, dir := range attackRays {
		r, c2 := kr+dir[0], kc+dir[1]
		dist := 1
		for r >= 0 && r < 8 && c2 >= 0 && c2 < 8 {
			piece := p.PieceAt(r, c2)
			if piece != NoPiece {
				if piece.Color() == opponent && rayAttacks(piece.Type(), i, dist) {
					return true
				}
				break
			}
			r += dir[0]
			c2 += dir[1]
			dist++
		}
	}

	return false
}

// rayAttacks reports whether a piece of the given type attacks along
// attack ray i from distance dist. Rays 0-3 are orthogonal, 4-7
// diagonal.
func rayAttacks(pt PieceType, i, dist int) bool {
	switch pt {
	case Queen:
		return true
	case Rook:
		return i < 4
	case Bishop:
		return i >= 4
	case King:
		return dist == 1
	}
	return false
}
