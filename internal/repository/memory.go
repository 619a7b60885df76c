package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

type memScore struct {
	mu    sync.Mutex
	score entity.Score
}

// NewMemoryScoreRepository keeps the score for the lifetime of the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memScore{}
}

func (that *memScore) Record(_ context.Context, result *entity.Result) error {
	if _, err := scoreField(result); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.score.Add(result)

	return nil
}

func (that *memScore) Get(_ context.Context) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.score

	return &score, nil
}

func (that *memScore) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.score = entity.Score{}

	return nil
}
