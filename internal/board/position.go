package board

import "fmt"

// Position holds the full board state: a mailbox of 64 squares plus
// the side to move. Castling rights, en passant targets and move
// clocks are not modeled at all; FEN input carrying them is accepted
// but those fields are discarded.
type Position struct {
	squares    [64]Piece
	SideToMove Color
}

// NewPosition creates a position set up for a new game.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given row and column.
// Out-of-range coordinates yield NoPiece rather than an error, so ray
// and offset walks may probe past the edge without pre-validating.
func (p *Position) PieceAt(row, col int) Piece {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return NoPiece
	}
	return p.squares[row*8+col]
}

// PieceOn returns the piece on the given square.
func (p *Position) PieceOn(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.squares[sq]
}

// IsEmpty returns true if the square holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceOn(sq) == NoPiece
}

// setPiece places a piece on a square.
func (p *Position) setPiece(piece Piece, sq Square) {
	p.squares[sq] = piece
}

// MakeMove applies a move to the position in place: the piece on the
// from-square is lifted and dropped on the to-square, capturing by
// overwrite. A pawn landing on its far rank is replaced by a queen of
// the same color. Finally the side to move flips.
//
// No legality check is performed here; MakeMove will happily capture a
// king or move into check. Legality is enforced exclusively by the
// move generator's filter.
func (p *Position) MakeMove(m Move) {
	piece := p.squares[m.From()]
	p.squares[m.From()] = NoPiece
	p.squares[m.To()] = piece

	if piece.Type() == Pawn {
		toRow := m.To().Row()
		if (piece.Color() == White && toRow == 0) || (piece.Color() == Black && toRow == 7) {
			p.squares[m.To()] = NewPiece(Queen, piece.Color())
		}
	}

	p.SideToMove = p.SideToMove.Other()
}

// Count returns the number of pieces of the given color on the board.
func (p *Position) Count(c Color) int {
	n := 0
	for sq := A8; sq < NoSquare; sq++ {
		if p.squares[sq] != NoPiece && p.squares[sq].Color() == c {
			n++
		}
	}
	return n
}

// String renders the board as ASCII with file and rank labels, the way
// the console prints it.
func (p *Position) String() string {
	s := "  a b c d e f g h\n"
	for row := 0; row < 8; row++ {
		s += fmt.Sprintf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			piece := p.PieceAt(row, col)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += fmt.Sprintf("%d\n", 8-row)
	}
	s += "  a b c d e f g h\n"
	return s
}
