package engine

import "github.com/sv-pro/chess/internal/board"

// Search constants. Mate scores must always outrank any reachable
// material sum; the exact numbers are tunable, the ordering is not.
const (
	mateScore = 100000
	minScore  = -1000000
)

// Search finds the best move for the side to move by negamax with
// alpha-beta pruning at the given depth, skipping any root move
// present in excluded. It returns ok=false exactly when the root legal
// move set minus exclusions is empty: checkmate, stalemate, or all
// options excluded. That is a normal result, not an error.
//
// The search holds no state across calls. Every recursion step applies
// the candidate move to its own copy of the position, so sibling
// branches never alias state.
func Search(pos *board.Position, depth int, excluded []board.Move) (move board.Move, score int, ok bool) {
	bestScore := -mateScore
	alpha, beta := -mateScore, mateScore

	var bestMove board.Move
	found := false

	for _, m := range pos.GenerateLegalMoves() {
		if containsMove(excluded, m) {
			continue
		}

		child := pos.Copy()
		child.MakeMove(m)
		value := -alphaBeta(child, depth-1, -beta, -alpha)

		// First maximum wins; later equal scores never replace it.
		if value > bestScore || !found {
			bestScore = value
			bestMove = m
			found = true
		}
	}

	return bestMove, bestScore, found
}

// BestMove is Search without the score, for callers that only want the
// chosen move.
func BestMove(pos *board.Position, depth int, excluded []board.Move) (board.Move, bool) {
	move, _, ok := Search(pos, depth, excluded)
	return move, ok
}

// BestMoveFEN decodes a FEN position and searches it. This is the only
// entry point an outer layer needs: encoded position in, move or
// "none" out.
func BestMoveFEN(fen string, depth int, excluded []board.Move) (board.Move, bool, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return board.NoMove, false, err
	}
	move, ok := BestMove(pos, depth, excluded)
	return move, ok, nil
}

// alphaBeta is the recursive negamax search. Leaf scores come from
// Evaluate, which is fixed to White's perspective; each level negates
// the child's value and swaps the bounds.
//
// With no legal moves the node is terminal: a mate scores
// -mateScore+depth so that faster forced mates score more extreme,
// and a stalemate scores 0.
func alphaBeta(pos *board.Position, depth, alpha, beta int) int {
	if depth <= 0 {
		return Evaluate(pos)
	}

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove) {
			return -mateScore + depth
		}
		return 0
	}

	maxEval := minScore
	for _, m := range moves {
		child := pos.Copy()
		child.MakeMove(m)
		eval := -alphaBeta(child, depth-1, -beta, -alpha)
		if eval > maxEval {
			maxEval = eval
		}
		if eval > alpha {
			alpha = eval
		}
		if beta <= alpha {
			break
		}
	}
	return maxEval
}

// containsMove reports whether moves contains m.
func containsMove(moves []board.Move, m board.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is a test harness for the move generator.
func Perft(pos *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		child.MakeMove(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}
