package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

type scoreRepo interface {
	Record(ctx context.Context, result *entity.Result) error
	Get(ctx context.Context) (*entity.Score, error)
}

type gameDriver interface {
	Play(ctx context.Context) (*entity.Result, error)
}

type GameManager struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
	driver    gameDriver
}

func NewGameManager(logger *slog.Logger, scoreRepo scoreRepo, driver gameDriver) *GameManager {
	return &GameManager{
		logger: logger,

		scoreRepo: scoreRepo,
		driver:    driver,
	}
}

// PlayGame - plays one game to the end and records its result on the scoreboard.
func (that *GameManager) PlayGame(ctx context.Context) (*entity.Result, error) {
	gameID := uuid.NewString()
	log := that.logger.With("method", "PlayGame", "game_id", gameID)

	log.Debug("game started")

	result, err := that.driver.Play(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to play game %s: %w", gameID, err)
	}

	result.GameID = gameID

	if err = that.scoreRepo.Record(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	log.Debug("game finished", "status", result.Status.String(), "winner", result.Winner.String(), "moves", result.Moves)

	return result, nil
}

func (that *GameManager) Score(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}
