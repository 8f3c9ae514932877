package service

import (
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Rules of the opponent policy, in priority order.
const (
	RuleBlock  = "block"
	RuleWin    = "win"
	RuleCenter = "center"
	RuleRandom = "random"
)

type BotService interface {
	ChooseMove(board *entity.Board, own, opponent entity.Mark) (int, error)
}

type botService struct {
	logger *slog.Logger
	rnd    entity.Randomizer
}

func NewBotService(logger *slog.Logger, rnd entity.Randomizer) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rnd:    rnd,
	}
}

// ChooseMove blocks the opponent first, then completes its own line, then takes the center,
// then plays a random open square. It looks one ply ahead and no further.
func (that *botService) ChooseMove(board *entity.Board, own, opponent entity.Mark) (int, error) {
	position, rule, err := that.decide(board, own, opponent)
	if err != nil {
		return 0, err
	}

	that.logger.Debug("bot chose a square", "position", position, "rule", rule, "mark", own)

	return position, nil
}

func (that *botService) decide(board *entity.Board, own, opponent entity.Mark) (int, string, error) {
	if position, ok := board.FindThreat(opponent); ok {
		return position, RuleBlock, nil
	}

	if position, ok := board.FindThreat(own); ok {
		return position, RuleWin, nil
	}

	if board.IsOpen(entity.CenterPosition) {
		return entity.CenterPosition, RuleCenter, nil
	}

	open := board.OpenPositions()
	if len(open) == 0 {
		return 0, "", ErrNoAvailableMoves
	}

	return open[that.rnd.Intn(len(open))], RuleRandom, nil
}
