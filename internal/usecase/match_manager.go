package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
)

const playAgainPrompt = "Would you like to play again?"

var ErrMatchNotStarted = errors.New("match is not set up")

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	DeleteByID(ctx context.Context, id string) error
}

type mover interface {
	ChooseMark(ctx context.Context, opponent entity.Mark) (entity.Mark, error)
	ChooseMove(ctx context.Context, board *entity.Board, own, opponent entity.Mark) (int, error)
}

type ui interface {
	Render(view entity.MatchView)
	ShowRoundResult(view entity.MatchView, result entity.RoundResult)
	ShowMatchWinner(view entity.MatchView, result entity.RoundResult)

	ChooseFirstPlayer(ctx context.Context, human, computer string) (entity.FirstPlayer, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// MatchManager drives one match: it owns the board and both players and alternates their moves.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	ui        ui

	human    mover
	computer mover
	rnd      entity.Randomizer

	winningScore int
	match        *entity.Match
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, ui ui, human, computer mover, rnd entity.Randomizer, winningScore int) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match"),
		matchRepo: matchRepo,
		ui:        ui,

		human:    human,
		computer: computer,
		rnd:      rnd,

		winningScore: winningScore,
	}
}

// Setup lets the human pick a mark, gives the computer the other one and asks once who goes first.
func (that *MatchManager) Setup(ctx context.Context, human, computer *entity.Player) (*entity.Match, error) {
	log := that.logger.With("method", "Setup")

	humanMark, err := that.human.ChooseMark(ctx, entity.EmptyMark)
	if err != nil {
		return nil, fmt.Errorf("failed to choose human mark: %w", err)
	}
	human.Mark = humanMark

	computerMark, err := that.computer.ChooseMark(ctx, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to choose computer mark: %w", err)
	}
	computer.Mark = computerMark

	match, err := entity.NewMatch(pkg.GenerateMatchID(), human, computer, that.winningScore)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	choice, err := that.ui.ChooseFirstPlayer(ctx, human.Name, computer.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to choose first player: %w", err)
	}

	startingMark := match.SelectFirstPlayer(choice, that.rnd)
	that.match = match
	that.saveMatch(ctx)

	log.Info("match set up", "matchID", match.ID, "human", human.Mark, "computer", computer.Mark, "first", startingMark)

	return match, nil
}

// Play runs rounds until the player declines a rematch.
func (that *MatchManager) Play(ctx context.Context) error {
	log := that.logger.With("method", "Play")

	if that.match == nil {
		return ErrMatchNotStarted
	}

	for {
		that.match.StartRound()

		result, err := that.PlayRound(ctx)
		if err != nil {
			return fmt.Errorf("failed to play round %d: %w", that.match.Round, err)
		}

		view := that.match.View()
		that.ui.ShowRoundResult(view, result)
		log.Info("round over", "round", result.Round, "winner", result.Winner,
			"humanScore", result.HumanScore, "computerScore", result.ComputerScore)

		if result.EndsMatch() {
			that.ui.ShowMatchWinner(view, result)
			log.Info("match over", "winner", result.MatchWinner)
		}

		that.saveMatch(ctx)

		again, err := that.ui.Confirm(ctx, playAgainPrompt)
		if err != nil {
			return fmt.Errorf("failed to confirm rematch: %w", err)
		}

		if !again {
			that.deleteMatch(ctx)
			return nil
		}
	}
}

// PlayRound alternates half-moves on the current board until a win or a full board, then scores the round.
func (that *MatchManager) PlayRound(ctx context.Context) (entity.RoundResult, error) {
	if that.match == nil {
		return entity.RoundResult{}, ErrMatchNotStarted
	}

	that.ui.Render(that.match.View())

	for !that.match.IsRoundOver() {
		if err := ctx.Err(); err != nil {
			return entity.RoundResult{}, fmt.Errorf("round interrupted: %w", err)
		}

		if err := that.playTurn(ctx); err != nil {
			return entity.RoundResult{}, err
		}

		that.saveMatch(ctx)

		if !that.match.IsRoundOver() {
			that.ui.Render(that.match.View())
		}
	}

	result, err := that.match.FinishRound()
	if err != nil {
		return entity.RoundResult{}, fmt.Errorf("failed to finish round: %w", err)
	}

	return result, nil
}

// playTurn asks the current player until a legal move lands. Only the human is asked again.
func (that *MatchManager) playTurn(ctx context.Context) error {
	log := that.logger.With("method", "playTurn")

	player := that.match.CurrentPlayer()
	current := that.human
	if player.IsComputer() {
		current = that.computer
	}

	for {
		board := *that.match.Board

		position, err := current.ChooseMove(ctx, &board, player.Mark, entity.OtherMark(player.Mark))
		if err != nil {
			return fmt.Errorf("%s failed to choose a move: %w", player.Role, err)
		}

		err = that.match.ApplyMove(player.Mark, position)
		if err == nil {
			log.Debug("move applied", "role", player.Role, "mark", player.Mark, "position", position)
			return nil
		}

		if errors.Is(err, apperror.ErrInvalidMove) && !player.IsComputer() {
			log.Debug("invalid move, asking again", "position", position, "error", err)
			continue
		}

		return fmt.Errorf("failed to apply move: %w", err)
	}
}

func (that *MatchManager) saveMatch(ctx context.Context) {
	if err := that.matchRepo.CreateOrUpdate(ctx, that.match); err != nil {
		that.logger.Error("failed to save match", "matchID", that.match.ID, "error", err)
	}
}

func (that *MatchManager) deleteMatch(ctx context.Context) {
	log := that.logger.With("method", "deleteMatch")

	if err := that.matchRepo.DeleteByID(ctx, that.match.ID); err != nil {
		log.Error("failed to delete match", "matchID", that.match.ID, "error", err)
		return
	}

	log.Info("match deleted", "matchID", that.match.ID)
}

func (that *MatchManager) Match() *entity.Match {
	return that.match
}
