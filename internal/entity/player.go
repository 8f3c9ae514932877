package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Role string

const (
	RoleHuman    Role = "human"
	RoleComputer Role = "computer"
)

var (
	ValidMarks = []Mark{MarkX, MarkO}

	ComputerNames = []string{"BlackBeard", "CaptainKidd", "Tom from MySpace"}
)

type Player struct {
	Name  string `json:"name"`
	Mark  Mark   `json:"mark"`
	Score int    `json:"score"`
	Role  Role   `json:"role"`
}

func NewHumanPlayer(name string) *Player {
	return &Player{Name: name, Role: RoleHuman}
}

func NewComputerPlayer(name string) *Player {
	return &Player{Name: name, Role: RoleComputer}
}

func (that *Player) IsComputer() bool {
	return that.Role == RoleComputer
}

func IsValidMark(mark Mark) bool {
	for _, valid := range ValidMarks {
		if mark == valid {
			return true
		}
	}

	return false
}

// ParseMark accepts "x"/"o" in any case and surrounding whitespace.
func ParseMark(input string) (Mark, error) {
	mark := Mark(strings.ToUpper(strings.TrimSpace(input)))
	if !IsValidMark(mark) {
		return EmptyMark, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, input)
	}

	return mark, nil
}

// OtherMark returns the valid mark that is not mark.
func OtherMark(mark Mark) Mark {
	if mark == MarkX {
		return MarkO
	}

	return MarkX
}
