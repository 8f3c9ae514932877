package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const ruleWidth = 50

// Formatter turns match state into console text. It holds no state.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (that *Formatter) SingleRule() string {
	return strings.Repeat("-", ruleWidth)
}

func (that *Formatter) DoubleRule() string {
	return strings.Repeat("=", ruleWidth)
}

func (that *Formatter) EmptyRule() string {
	return strings.Repeat(" ", ruleWidth)
}

// Board draws the 3x3 grid, one string per output line.
func (that *Formatter) Board(cells [entity.BoardSize]entity.Mark) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("-----+-----+-----\n")
		}

		square := func(col int) string {
			return entity.Square{Mark: cells[row*3+col]}.String()
		}

		sb.WriteString("     |     |\n")
		fmt.Fprintf(&sb, "  %s  |  %s  |  %s\n", square(0), square(1), square(2))
		sb.WriteString("     |     |\n")
	}

	return sb.String()
}

func (that *Formatter) Header(human, computer entity.Player) string {
	return fmt.Sprintf("You're a %s. %s is an %s.", human.Mark, computer.Name, computer.Mark)
}

func (that *Formatter) Score(human, computer entity.Player) string {
	return fmt.Sprintf("The score is:\n%s: %d.\n%s: %d\n%s",
		human.Name, human.Score, computer.Name, computer.Score, that.SingleRule())
}

func (that *Formatter) Positions(positions []int) string {
	parts := make([]string, 0, len(positions))
	for _, position := range positions {
		parts = append(parts, strconv.Itoa(position))
	}

	return strings.Join(parts, ", ")
}

func (that *Formatter) Marks(marks []entity.Mark) string {
	parts := make([]string, 0, len(marks))
	for _, mark := range marks {
		parts = append(parts, string(mark))
	}

	return strings.Join(parts, " or ")
}
