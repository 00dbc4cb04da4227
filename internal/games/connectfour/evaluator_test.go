package connectfour

import (
	"math/rand"
	"testing"
)

// boardFrom builds a 7x6 board from rows written top to bottom,
// using 'R', 'Y' and '.'.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	if len(rows) != 6 {
		t.Fatalf("boardFrom needs 6 rows, got %d", len(rows))
	}
	b := NewBoard(7, 6)
	for r, line := range rows {
		if len(line) != 7 {
			t.Fatalf("row %d has %d columns", r, len(line))
		}
		for c, ch := range line {
			switch ch {
			case 'R':
				b.Place(r, c, PlayerRed)
			case 'Y':
				b.Place(r, c, PlayerYellow)
			}
		}
	}
	return b
}

func TestSelectMoveEmptyBoardPicksCentre(t *testing.T) {
	b := NewBoard(7, 6)
	for _, p := range []Player{PlayerRed, PlayerYellow} {
		col, ok := SelectMove(b, p)
		if !ok || col != 3 {
			t.Errorf("SelectMove(empty, %v) = %d, %v, expected 3", p, col, ok)
		}
	}

	want := []int{0, 10, 20, 30, 20, 10, 0}
	for col, w := range want {
		if got := ScoreMove(b, col, PlayerRed); got != w {
			t.Errorf("ScoreMove(empty, %d) = %d, expected %d", col, got, w)
		}
	}
}

func TestSelectMoveCompletesVerticalFour(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		"..R....",
		"..R....",
		"..R....",
	)
	col, ok := SelectMove(b, PlayerRed)
	if !ok || col != 2 {
		t.Errorf("SelectMove = %d, %v, expected 2", col, ok)
	}
	if got := ScoreMove(b, 2, PlayerRed); got != ScoreWin {
		t.Errorf("ScoreMove(2) = %d, expected %d", got, ScoreWin)
	}
}

func TestSelectMoveBlocksVerticalThree(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		"..Y....",
		"..Y....",
		"..Y....",
	)
	col, ok := SelectMove(b, PlayerRed)
	if !ok || col != 2 {
		t.Errorf("SelectMove = %d, %v, expected 2", col, ok)
	}
	for c := 0; c < 7; c++ {
		if c == 2 {
			continue
		}
		if got := ScoreMove(b, c, PlayerRed); got > -PenaltyOpponentWin+100 {
			t.Errorf("ScoreMove(%d) = %d, expected the open-win penalty", c, got)
		}
	}
}

func TestSelectMovePrefersWinOverBlock(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		".......",
		"YY.....",
		"RRR....",
	)
	col, _ := SelectMove(b, PlayerRed)
	if col != 3 {
		t.Errorf("SelectMove = %d, expected winning column 3", col)
	}
}

func TestSelectMoveBlocksHorizontalThree(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		".......",
		"RR.....",
		"YYY....",
	)
	col, _ := SelectMove(b, PlayerRed)
	if col != 3 {
		t.Errorf("SelectMove = %d, expected blocking column 3", col)
	}
}

func TestSelectMoveTieGoesToLowestColumn(t *testing.T) {
	// Column 3 is full and the position is mirror-symmetric, so columns
	// 2 and 4 score the same.
	b := boardFrom(t,
		"...Y...",
		"...R...",
		"...Y...",
		"...R...",
		"...Y...",
		"...R...",
	)
	left := ScoreMove(b, 2, PlayerRed)
	right := ScoreMove(b, 4, PlayerRed)
	if left != right {
		t.Fatalf("mirror columns scored %d and %d", left, right)
	}
	col, ok := SelectMove(b, PlayerRed)
	if !ok || col != 2 {
		t.Errorf("SelectMove = %d, %v, expected 2", col, ok)
	}
}

func TestScoreMoveColumnEqualityBlock(t *testing.T) {
	// Yellow needs (4,3). With Red's trial piece on (5,3), Yellow's reply
	// in column 3 lands exactly there, so column 3 takes the block score.
	b := boardFrom(t,
		".......",
		".......",
		".......",
		".......",
		"YYY....",
		"RYR....",
	)
	if got := ScoreMove(b, 3, PlayerRed); got != ScoreBlock {
		t.Errorf("ScoreMove(3) = %d, expected %d", got, ScoreBlock)
	}
	if col, _ := SelectMove(b, PlayerRed); col != 3 {
		t.Errorf("SelectMove = %d, expected 3", col)
	}
}

func TestSelectMoveFullBoard(t *testing.T) {
	b := boardFrom(t,
		"RRYYRRY",
		"YYRRYYR",
		"RRYYRRY",
		"YYRRYYR",
		"RRYYRRY",
		"YYRRYYR",
	)
	before := b.Clone()
	col, ok := SelectMove(b, PlayerYellow)
	if ok || col != -1 {
		t.Errorf("SelectMove(full) = %d, %v, expected -1, false", col, ok)
	}
	if !b.Equal(before) {
		t.Error("SelectMove mutated a full board")
	}
}

func TestSelectMoveDoesNotMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 100; game++ {
		b := NewBoard(7, 6)
		p := PlayerRed
		for moves := 0; moves < 42; moves++ {
			before := b.Clone()
			col, ok := SelectMove(b, p)
			if !b.Equal(before) {
				t.Fatalf("SelectMove mutated the board:\nbefore\n%s\nafter\n%s", before, b)
			}
			if !ok {
				break
			}
			if b.IsColumnFull(col) {
				t.Fatalf("SelectMove returned full column %d", col)
			}

			// Mix evaluator moves with random ones to reach varied positions.
			if rng.Intn(3) == 0 {
				col = rng.Intn(7)
				if b.IsColumnFull(col) {
					continue
				}
			}
			row, _ := b.Drop(col, p)
			if b.HasFourInARow(row, col) {
				break
			}
			p = p.Opponent()
		}
	}
}

func TestSelectMoveReturnsWinWheneverOneExists(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for game := 0; game < 200; game++ {
		b := NewBoard(7, 6)
		p := PlayerRed
		for !b.IsFull() {
			winning := -1
			for c := 0; c < 7; c++ {
				if b.IsColumnFull(c) {
					continue
				}
				row, _ := b.DropRow(c)
				b.Place(row, c, p)
				if b.HasFourInARow(row, c) {
					winning = c
				}
				b.Clear(row, c)
				if winning >= 0 {
					break
				}
			}

			col, _ := SelectMove(b, p)
			if winning >= 0 {
				row, _ := b.DropRow(col)
				b.Place(row, col, p)
				if !b.HasFourInARow(row, col) {
					t.Fatalf("SelectMove = %d missed win in column %d:\n%s", col, winning, b)
				}
				break
			}

			col = rng.Intn(7)
			if b.IsColumnFull(col) {
				continue
			}
			row, _ := b.Drop(col, p)
			if b.HasFourInARow(row, col) {
				break
			}
			p = p.Opponent()
		}
	}
}

func TestScoreWindow(t *testing.T) {
	r, y := CellOf(PlayerRed), CellOf(PlayerYellow)
	tests := []struct {
		name   string
		window [4]Cell
		want   int
	}{
		{"four own", [4]Cell{r, r, r, r}, 100},
		{"three own one empty", [4]Cell{r, Empty, r, r}, 5},
		{"two own two empty", [4]Cell{Empty, r, Empty, r}, 2},
		{"three opponent one empty", [4]Cell{y, y, Empty, y}, -4},
		{"three own one opponent", [4]Cell{r, r, r, y}, 0},
		{"one own", [4]Cell{r, Empty, Empty, Empty}, 0},
		{"empty", [4]Cell{}, 0},
		{"four opponent", [4]Cell{y, y, y, y}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreWindow(tc.window, PlayerRed); got != tc.want {
				t.Errorf("scoreWindow = %d, expected %d", got, tc.want)
			}
		})
	}
}
