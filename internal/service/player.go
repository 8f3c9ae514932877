package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Mover is how a player picks a mark and a square. Human and computer differ only here.
type Mover interface {
	ChooseMark(ctx context.Context, opponent entity.Mark) (entity.Mark, error)
	ChooseMove(ctx context.Context, board *entity.Board, own, opponent entity.Mark) (int, error)
}

type prompter interface {
	ChooseMark(ctx context.Context, valid []entity.Mark) (entity.Mark, error)
	RequestMove(ctx context.Context, valid []int) (int, error)
}

// HumanPlayer asks the person at the console.
type HumanPlayer struct {
	prompter prompter
}

func NewHumanPlayer(prompter prompter) *HumanPlayer {
	return &HumanPlayer{prompter: prompter}
}

func (that *HumanPlayer) ChooseMark(ctx context.Context, _ entity.Mark) (entity.Mark, error) {
	mark, err := that.prompter.ChooseMark(ctx, entity.ValidMarks)
	if err != nil {
		return entity.EmptyMark, fmt.Errorf("failed to choose mark: %w", err)
	}

	return mark, nil
}

func (that *HumanPlayer) ChooseMove(ctx context.Context, board *entity.Board, _, _ entity.Mark) (int, error) {
	position, err := that.prompter.RequestMove(ctx, board.OpenPositions())
	if err != nil {
		return 0, fmt.Errorf("failed to request move: %w", err)
	}

	return position, nil
}

// BotPlayer plays by the opponent policy.
type BotPlayer struct {
	bot BotService
}

func NewBotPlayer(bot BotService) *BotPlayer {
	return &BotPlayer{bot: bot}
}

// ChooseMark never picks independently: the computer always takes the mark the human left.
func (that *BotPlayer) ChooseMark(_ context.Context, opponent entity.Mark) (entity.Mark, error) {
	return entity.OtherMark(opponent), nil
}

func (that *BotPlayer) ChooseMove(_ context.Context, board *entity.Board, own, opponent entity.Mark) (int, error) {
	position, err := that.bot.ChooseMove(board, own, opponent)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	return position, nil
}
