package repository

import (
	"testing"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
	"github.com/rocketscienceinc/noughts-and-crosses/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRepository_Record(t *testing.T) {
	t.Run("Record_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		// Given: an O win, an X win and a stalemate
		results := []*entity.Result{
			{Winner: entity.PlayerO, Status: entity.StatusWon},
			{Winner: entity.PlayerO, Status: entity.StatusWon},
			{Winner: entity.PlayerX, Status: entity.StatusWon},
			{Winner: entity.MarkEmpty, Status: entity.StatusStalemate},
		}

		// When: Record is called for each of them
		for _, result := range results {
			require.NoError(t, scoreRepo.Record(ctx, result))
		}

		// Then: the stored score counts every game
		score, err := scoreRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, &entity.Score{O: 2, X: 1, Stalemates: 1}, score)
	})

	t.Run("Record_Unfinished", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		// When: Record is called with a game that has no result
		err := scoreRepo.Record(ctx, &entity.Result{Status: entity.StatusInProgress})

		// Then: ErrUnfinishedGame is returned
		require.ErrorIs(t, err, ErrUnfinishedGame)
	})
}

func TestScoreRepository_Get(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(st.Storage)

	// When: Get is called before anything was recorded
	score, err := scoreRepo.Get(ctx)

	// Then: an empty score is returned
	require.NoError(t, err)
	assert.Equal(t, &entity.Score{}, score)
}

func TestScoreRepository_Reset(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(st.Storage)

	// Given: a recorded win
	require.NoError(t, scoreRepo.Record(ctx, &entity.Result{Winner: entity.PlayerX, Status: entity.StatusWon}))

	// When: Reset is called
	err := scoreRepo.Reset(ctx)

	// Then: the score is empty again
	require.NoError(t, err)
	score, err := scoreRepo.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, score.Played())
}
