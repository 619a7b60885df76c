package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

const (
	scoreKey = "score"

	fieldO         = "O"
	fieldX         = "X"
	fieldStalemate = "stalemate"
)

var ErrUnfinishedGame = errors.New("game has no result")

type ScoreRepository interface {
	Record(ctx context.Context, result *entity.Result) error
	Get(ctx context.Context) (*entity.Score, error)
	Reset(ctx context.Context) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, result *entity.Result) error {
	field, err := scoreField(result)
	if err != nil {
		return err
	}

	if err = that.client.HIncrBy(ctx, scoreKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Score, error) {
	response, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score := &entity.Score{}
	for field, target := range map[string]*int64{fieldO: &score.O, fieldX: &score.X, fieldStalemate: &score.Stalemates} {
		value, ok := response[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s count: %w", field, err)
		}
	}

	return score, nil
}

func (that *dbScore) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoreKey).Err(); err != nil {
		return fmt.Errorf("failed to reset score: %w", err)
	}

	return nil
}

func scoreField(result *entity.Result) (string, error) {
	if result.IsStalemate() {
		return fieldStalemate, nil
	}

	switch result.Winner {
	case entity.PlayerO:
		return fieldO, nil
	case entity.PlayerX:
		return fieldX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnfinishedGame, result.Status)
	}
}
