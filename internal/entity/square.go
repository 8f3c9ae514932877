package entity

// Mark is the symbol a player places on a square.
type Mark string

const (
	EmptyMark Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"

	// MarkTie is recorded as the round winner when the board fills without a line.
	MarkTie Mark = "-"
)

// Square holds the state of a single board cell.
type Square struct {
	Mark Mark `json:"mark"`
}

func (that Square) IsMarked() bool {
	return that.Mark != EmptyMark
}

func (that Square) IsUnmarked() bool {
	return that.Mark == EmptyMark
}

func (that Square) String() string {
	if that.Mark == EmptyMark {
		return " "
	}

	return string(that.Mark)
}
