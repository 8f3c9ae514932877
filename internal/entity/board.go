package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	BoardSize      = 9
	CenterPosition = 5
)

// WinCombos lists every winning line as board positions (1..9): rows, then columns, then diagonals.
// Scans over the board always follow this order.
var WinCombos = [][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Board is the 3x3 grid. Position p is stored at Cells[p-1].
type Board struct {
	Cells [BoardSize]Square `json:"cells"`
}

func NewBoard() *Board {
	return &Board{}
}

func IsValidPosition(position int) bool {
	return position >= 1 && position <= BoardSize
}

// Place marks an empty square. The board is left untouched on error.
func (that *Board) Place(position int, mark Mark) error {
	if !IsValidMark(mark) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !IsValidPosition(position) {
		return fmt.Errorf("%w: %w %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, position)
	}

	if that.Cells[position-1].IsMarked() {
		return fmt.Errorf("%w: %w %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, position)
	}

	that.Cells[position-1].Mark = mark

	return nil
}

// Mark returns the mark at position, EmptyMark for positions off the board.
func (that *Board) Mark(position int) Mark {
	if !IsValidPosition(position) {
		return EmptyMark
	}

	return that.Cells[position-1].Mark
}

func (that *Board) OpenPositions() []int {
	open := make([]int, 0, BoardSize)
	for i, square := range that.Cells {
		if square.IsUnmarked() {
			open = append(open, i+1)
		}
	}

	return open
}

func (that *Board) IsOpen(position int) bool {
	return IsValidPosition(position) && that.Cells[position-1].IsUnmarked()
}

func (that *Board) IsFull() bool {
	return len(that.OpenPositions()) == 0
}

// WinningMark returns the mark of the first fully and uniformly marked line, or EmptyMark.
func (that *Board) WinningMark() Mark {
	for _, combo := range WinCombos {
		a, b, c := that.Mark(combo[0]), that.Mark(combo[1]), that.Mark(combo[2])
		if a != EmptyMark && a == b && b == c {
			return a
		}
	}

	return EmptyMark
}

func (that *Board) SomeoneWon() bool {
	return that.WinningMark() != EmptyMark
}

// FindThreat returns the open square of the first line holding exactly two of mark and one empty square.
func (that *Board) FindThreat(mark Mark) (int, bool) {
	if mark == EmptyMark {
		return 0, false
	}

	for _, combo := range WinCombos {
		marked, open := 0, 0
		for _, position := range combo {
			switch that.Mark(position) {
			case mark:
				marked++
			case EmptyMark:
				open = position
			}
		}

		if marked == 2 && open != 0 {
			return open, true
		}
	}

	return 0, false
}

func (that *Board) Reset() {
	that.Cells = [BoardSize]Square{}
}

func (that *Board) Snapshot() [BoardSize]Mark {
	var marks [BoardSize]Mark
	for i, square := range that.Cells {
		marks[i] = square.Mark
	}

	return marks
}
