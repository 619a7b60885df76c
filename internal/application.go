package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/config"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/console"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/repository"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/repository/storage"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/tictactoe"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/usecase"
)

var ErrScoreboardNeedsRedis = errors.New("scoreboard needs redis.enabled: the in-memory score does not outlive a game")

// RunApp - plays one game on the console and prints the scoreboard afterwards.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := watchSignals(ctx, log)
	defer cancel()

	scoreRepo, closeStorage, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage(log)

	engine := tictactoe.NewEngine()
	driver := console.New(logger, engine, in, out, console.Options{
		ClearScreen: conf.Console.ClearScreen,
		Color:       conf.Console.Color,
	})
	gameManager := usecase.NewGameManager(logger, scoreRepo, driver)

	if _, err = gameManager.PlayGame(ctx); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	score, err := gameManager.Score(ctx)
	if err != nil {
		return fmt.Errorf("could not load score: %w", err)
	}

	driver.ShowScore(score)

	return nil
}

// ShowScore - prints the redis scoreboard without playing, clearing it first when reset is set.
func ShowScore(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer, reset bool) error {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		return ErrScoreboardNeedsRedis
	}

	scoreRepo, closeStorage, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage(log)

	if reset {
		if err = scoreRepo.Reset(ctx); err != nil {
			return fmt.Errorf("could not reset score: %w", err)
		}

		log.Info("score reset")
	}

	score, err := scoreRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("could not load score: %w", err)
	}

	if err = console.WriteScore(out, score); err != nil {
		return fmt.Errorf("could not print score: %w", err)
	}

	return nil
}

func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func(*slog.Logger), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryScoreRepository(), func(*slog.Logger) {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func(log *slog.Logger) {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(redisStorage.Connection), closeStorage, nil
}

func watchSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
