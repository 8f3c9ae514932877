package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the game on the terminal until the player declines a rematch or input ends.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
		_ = os.Stdin.Close()
	}()

	matchRepo, closeRepo, err := newMatchRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness

	term := console.NewConsole(logger, os.Stdin, os.Stdout, console.NewFormatter())
	human := service.NewHumanPlayer(term)
	computer := service.NewBotPlayer(service.NewBotService(logger, rnd))
	manager := usecase.NewMatchManager(logger, matchRepo, term, human, computer, rnd, conf.WinningScore)

	err = play(ctx, term, manager, rnd, conf)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("input closed, exiting", "error", err)
	default:
		return fmt.Errorf("game failed: %w", err)
	}

	term.Goodbye()

	return nil
}

func play(ctx context.Context, term *console.Console, manager *usecase.MatchManager, rnd entity.Randomizer, conf *config.Config) error {
	term.Welcome(conf.WinningScore)

	name, err := term.AskName(ctx)
	if err != nil {
		return fmt.Errorf("failed to ask name: %w", err)
	}

	humanPlayer := entity.NewHumanPlayer(name)
	computerPlayer := entity.NewComputerPlayer(pkg.PickName(rnd, conf.ComputerNames, entity.ComputerNames[0]))
	term.Greet(humanPlayer.Name, computerPlayer.Name)

	if _, err = manager.Setup(ctx, humanPlayer, computerPlayer); err != nil {
		return fmt.Errorf("failed to set up match: %w", err)
	}

	if err = manager.Play(ctx); err != nil {
		return fmt.Errorf("failed to play match: %w", err)
	}

	return nil
}

// newMatchRepository picks the snapshot backend. The returned func releases it.
func newMatchRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MatchRepository, func(), error) {
	if conf.Storage.Driver != config.StorageRedis {
		return repository.NewMemoryMatchRepository(), func() {}, nil
	}

	redisAddrString := conf.Storage.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMatchRepository(redisStorage, conf.Storage.Redis.TTL), closeStorage, nil
}
