package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusAwaitingMove = "awaiting_move"
	StatusRoundOver    = "round_over"

	StatusInMatch   = "in_match"
	StatusMatchOver = "match_over"

	DefaultWinningScore = 4
)

// FirstPlayer is the interactive answer to "who goes first".
type FirstPlayer int

const (
	FirstHuman FirstPlayer = iota + 1
	FirstComputer
	FirstRandom
)

// Randomizer is satisfied by *math/rand.Rand.
type Randomizer interface {
	Intn(n int) int
}

// RoundResult is what a finished round reports. Scores are taken before a match-over reset.
type RoundResult struct {
	Round         int  `json:"round"`
	Winner        Mark `json:"winner"`
	HumanScore    int  `json:"human_score"`
	ComputerScore int  `json:"computer_score"`
	MatchWinner   Mark `json:"match_winner,omitempty"`
}

func (that RoundResult) IsTie() bool {
	return that.Winner == MarkTie
}

func (that RoundResult) EndsMatch() bool {
	return that.MatchWinner != EmptyMark
}

// Match is the round and match state machine. It owns the board and both players.
type Match struct {
	ID           string        `json:"id"`
	Board        *Board        `json:"board"`
	Human        *Player       `json:"human"`
	Computer     *Player       `json:"computer"`
	WinningScore int           `json:"winning_score"`
	StartingMark Mark          `json:"starting_mark"`
	CurrentMark  Mark          `json:"current_mark"`
	Status       string        `json:"status"`
	Winner       Mark          `json:"winner"`
	Scored       bool          `json:"scored"`
	MatchStatus  string        `json:"match_status"`
	MatchWinner  Mark          `json:"match_winner"`
	Round        int           `json:"round"`
	History      []RoundResult `json:"history,omitempty"`
}

// NewMatch assigns the computer the mark the human did not take.
func NewMatch(id string, human, computer *Player, winningScore int) (*Match, error) {
	if !IsValidMark(human.Mark) {
		return nil, fmt.Errorf("%w: human mark %q", apperror.ErrInvalidMark, human.Mark)
	}

	if winningScore <= 0 {
		winningScore = DefaultWinningScore
	}

	human.Role = RoleHuman
	computer.Role = RoleComputer
	computer.Mark = OtherMark(human.Mark)

	return &Match{
		ID:           id,
		Board:        NewBoard(),
		Human:        human,
		Computer:     computer,
		WinningScore: winningScore,
		StartingMark: human.Mark,
		CurrentMark:  human.Mark,
		Status:       StatusAwaitingMove,
		MatchStatus:  StatusInMatch,
	}, nil
}

// SelectFirstPlayer resolves the starting mark once; every round of the match starts with it.
func (that *Match) SelectFirstPlayer(choice FirstPlayer, rnd Randomizer) Mark {
	switch choice {
	case FirstComputer:
		that.StartingMark = that.Computer.Mark
	case FirstRandom:
		marks := []Mark{that.Human.Mark, that.Computer.Mark}
		that.StartingMark = marks[rnd.Intn(len(marks))]
	default:
		that.StartingMark = that.Human.Mark
	}

	that.CurrentMark = that.StartingMark

	return that.StartingMark
}

// StartRound clears the board and hands the turn to the starting mark.
func (that *Match) StartRound() {
	that.Board.Reset()

	if that.StartingMark == EmptyMark {
		that.StartingMark = that.Human.Mark
	}

	that.CurrentMark = that.StartingMark
	that.Status = StatusAwaitingMove
	that.Winner = EmptyMark
	that.Scored = false
	that.Round++

	if that.MatchStatus == StatusMatchOver {
		that.MatchStatus = StatusInMatch
		that.MatchWinner = EmptyMark
	}
}

func (that *Match) ApplyMove(mark Mark, position int) error {
	if that.IsRoundOver() {
		return apperror.ErrRoundOver
	}

	if that.CurrentMark != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(position, mark); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	that.updateRoundState()

	return nil
}

// updateRoundState checks for a win before fullness, so a win on the last square is not a tie.
func (that *Match) updateRoundState() {
	if winner := that.Board.WinningMark(); winner != EmptyMark {
		that.Winner = winner
		that.Status = StatusRoundOver
		return
	}

	if that.Board.IsFull() {
		that.Winner = MarkTie
		that.Status = StatusRoundOver
		return
	}

	that.CurrentMark = OtherMark(that.CurrentMark)
}

// FinishRound scores a finished round and closes the match once a score reaches the winning score.
func (that *Match) FinishRound() (RoundResult, error) {
	if !that.IsRoundOver() {
		return RoundResult{}, apperror.ErrRoundNotOver
	}

	if that.Scored {
		return that.History[len(that.History)-1], nil
	}

	if player := that.PlayerByMark(that.Winner); player != nil {
		player.Score++
	}

	result := RoundResult{
		Round:         that.Round,
		Winner:        that.Winner,
		HumanScore:    that.Human.Score,
		ComputerScore: that.Computer.Score,
	}

	switch {
	case that.Human.Score >= that.WinningScore:
		result.MatchWinner = that.Human.Mark
	case that.Computer.Score >= that.WinningScore:
		result.MatchWinner = that.Computer.Mark
	}

	if result.EndsMatch() {
		that.MatchStatus = StatusMatchOver
		that.MatchWinner = result.MatchWinner
		that.Human.Score = 0
		that.Computer.Score = 0
	}

	that.Scored = true
	that.History = append(that.History, result)

	return result, nil
}

// PlayerByMark returns nil for EmptyMark and MarkTie.
func (that *Match) PlayerByMark(mark Mark) *Player {
	switch mark {
	case that.Human.Mark:
		return that.Human
	case that.Computer.Mark:
		return that.Computer
	default:
		return nil
	}
}

func (that *Match) CurrentPlayer() *Player {
	return that.PlayerByMark(that.CurrentMark)
}

func (that *Match) IsRoundOver() bool {
	return that.Status == StatusRoundOver
}

func (that *Match) IsMatchOver() bool {
	return that.MatchStatus == StatusMatchOver
}

// MatchView is a copy of what collaborators may show: the board, both players and the round.
type MatchView struct {
	Board        [BoardSize]Mark
	Human        Player
	Computer     Player
	Round        int
	CurrentMark  Mark
	WinningScore int
}

func (that *Match) View() MatchView {
	return MatchView{
		Board:        that.Board.Snapshot(),
		Human:        *that.Human,
		Computer:     *that.Computer,
		Round:        that.Round,
		CurrentMark:  that.CurrentMark,
		WinningScore: that.WinningScore,
	}
}

// PlayerByMark returns nil for marks neither player holds.
func (that MatchView) PlayerByMark(mark Mark) *Player {
	switch mark {
	case that.Human.Mark:
		return &that.Human
	case that.Computer.Mark:
		return &that.Computer
	default:
		return nil
	}
}
