package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func (that *Console) Clear() {
	that.print(clearScreen)
}

func (that *Console) Welcome(winningScore int) {
	that.Clear()
	that.println("Hello! Welcome to Tic-Tac-Toe!")
	that.println(fmt.Sprintf("First one to win %d wins!", winningScore))
	that.println(that.formatter.DoubleRule())
}

func (that *Console) Greet(human, computer string) {
	that.println(fmt.Sprintf("Good luck %s!", human))
	that.println(that.formatter.EmptyRule())
	that.println(fmt.Sprintf("You'll be playing against %s today.", computer))
	that.println(that.formatter.DoubleRule())
}

func (that *Console) Goodbye() {
	that.println("Thanks for playing Tic Tac Toe! Goodbye!")
}

// Render clears the screen and draws the board with both scores.
func (that *Console) Render(view entity.MatchView) {
	that.Clear()
	that.println(that.formatter.Header(view.Human, view.Computer))
	that.println(that.formatter.SingleRule())
	that.println("")
	that.print(that.formatter.Board(view.Board))
	that.println("")
	that.println(that.formatter.Score(view.Human, view.Computer))
}

// ShowRoundResult draws the final board with the scores the round produced, then names the winner.
func (that *Console) ShowRoundResult(view entity.MatchView, result entity.RoundResult) {
	view.Human.Score = result.HumanScore
	view.Computer.Score = result.ComputerScore
	that.Render(view)

	switch result.Winner {
	case view.Human.Mark:
		that.println(fmt.Sprintf("You won %s!", view.Human.Name))
	case view.Computer.Mark:
		that.println(fmt.Sprintf("%s won!", view.Computer.Name))
	default:
		that.println("It's a tie!")
	}

	that.println(that.formatter.DoubleRule())
}

func (that *Console) ShowMatchWinner(view entity.MatchView, result entity.RoundResult) {
	winner := view.PlayerByMark(result.MatchWinner)
	if winner == nil {
		return
	}

	that.println("")
	that.println(fmt.Sprintf("Ding-Ding-Ding! That's a wrap folks! %s wins!!!", winner.Name))
}

func (that *Console) print(text string) {
	if _, err := fmt.Fprint(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
