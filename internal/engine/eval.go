// Package engine implements static evaluation and depth-limited
// negamax search with alpha-beta pruning.
package engine

import "github.com/sv-pro/chess/internal/board"

// Evaluate returns the static material score of a position: the sum of
// piece values, positive for White's pieces and negative for Black's.
// The score is always from White's perspective regardless of whose
// turn it is. There is no positional, mobility or king-safety term.
func Evaluate(pos *board.Position) int {
	score := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := pos.PieceAt(row, col)
			if piece == board.NoPiece {
				continue
			}
			if piece.Color() == board.White {
				score += piece.Value()
			} else {
				score -= piece.Value()
			}
		}
	}
	return score
}
