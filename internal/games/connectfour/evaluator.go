package connectfour

import "github.com/vovakirdan/classic-arcade/internal/core"

// Scores used by the move evaluator.
const (
	ScoreWin           = 1_000_000 // the candidate completes four in a row
	ScoreBlock         = 900_000   // the opponent's winning column is the candidate's own
	PenaltyOpponentWin = 800_000   // per other column where the opponent would win

	windowFour          = 100
	windowThree         = 5
	windowTwo           = 2
	windowOpponentThree = -4
)

// centrality is the bonus indexed by distance from the centre column.
var centrality = [...]int{30, 20, 10}

// SelectMove picks the column ai should play with a one-ply lookahead.
// It returns false only when every column is full. The board is left
// exactly as it was found.
//
// Columns are scored left to right and only a strictly higher score
// replaces the current best, so ties go to the lowest column.
func SelectMove(b *Board, ai Player) (int, bool) {
	best, bestScore := -1, 0
	for col := 0; col < b.Width(); col++ {
		if b.IsColumnFull(col) {
			continue
		}
		score := ScoreMove(b, col, ai)
		if best < 0 || score > bestScore {
			best, bestScore = col, score
		}
	}
	return best, best >= 0
}

// ScoreMove returns the heuristic value of ai dropping into col.
// col must not be full.
func ScoreMove(b *Board, col int, ai Player) int {
	row, ok := b.DropRow(col)
	if !ok {
		panic("connectfour: ScoreMove on a full column")
	}

	b.Place(row, col, ai)
	defer b.Clear(row, col)

	return evaluate(b, row, col, ai)
}

// evaluate scores the position with ai's trial piece already at (row, col).
func evaluate(b *Board, row, col int, ai Player) int {
	if b.HasFourInARow(row, col) {
		return ScoreWin
	}

	score := 0
	opp := ai.Opponent()

	// Opponent replies are simulated with ai's trial piece still on the
	// board, so the reply in col lands on top of it.
	for c := 0; c < b.Width(); c++ {
		r, ok := b.DropRow(c)
		if !ok {
			continue
		}
		b.Place(r, c, opp)
		wins := b.HasFourInARow(r, c)
		b.Clear(r, c)
		if !wins {
			continue
		}
		if c == col {
			return ScoreBlock
		}
		score -= PenaltyOpponentWin
	}

	score += scoreWindows(b, row, col, ai)

	if d := core.Abs(col - b.Width()/2); d < len(centrality) {
		score += centrality[d]
	}
	return score
}

// scoreWindows sums every horizontal window on row, every vertical window
// on col, and every diagonal window on the board.
func scoreWindows(b *Board, row, col int, ai Player) int {
	w, h := b.Width(), b.Height()
	var window [4]Cell
	score := 0

	for c := 0; c <= w-4; c++ {
		for i := range window {
			window[i] = b.at(row, c+i)
		}
		score += scoreWindow(window, ai)
	}

	for r := 0; r <= h-4; r++ {
		for i := range window {
			window[i] = b.at(r+i, col)
		}
		score += scoreWindow(window, ai)
	}

	for r := 0; r <= h-4; r++ {
		for c := 0; c <= w-4; c++ {
			for i := range window {
				window[i] = b.at(r+i, c+i)
			}
			score += scoreWindow(window, ai)
		}
	}

	for r := 3; r < h; r++ {
		for c := 0; c <= w-4; c++ {
			for i := range window {
				window[i] = b.at(r-i, c+i)
			}
			score += scoreWindow(window, ai)
		}
	}

	return score
}

// scoreWindow values one run of four cells for ai.
func scoreWindow(window [4]Cell, ai Player) int {
	own, empty, opp := 0, 0, 0
	for _, c := range window {
		switch c {
		case CellOf(ai):
			own++
		case Empty:
			empty++
		default:
			opp++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += windowFour
	case own == 3 && empty == 1:
		score += windowThree
	case own == 2 && empty == 2:
		score += windowTwo
	}
	if opp == 3 && empty == 1 {
		score += windowOpponentThree
	}
	return score
}
