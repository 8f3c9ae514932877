package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) (context.Context, MatchRepository)
}

var backends = []backend{
	{
		name: "memory",
		open: func(_ *testing.T) (context.Context, MatchRepository) {
			return context.Background(), NewMemoryMatchRepository()
		},
	},
	{
		name: "redis",
		open: func(t *testing.T) (context.Context, MatchRepository) {
			ctx, st := suite.New(t)
			return ctx, NewMatchRepository(st.Storage, time.Minute)
		},
	},
}

func newMatch(t *testing.T) *entity.Match {
	t.Helper()

	human := entity.NewHumanPlayer("Ada")
	human.Mark = entity.MarkX

	match, err := entity.NewMatch("123", human, entity.NewComputerPlayer("BlackBeard"), 4)
	require.NoError(t, err)

	match.StartRound()
	require.NoError(t, match.ApplyMove(entity.MarkX, 5))

	return match
}

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx, matchRepo := b.open(t)

			// Given: a match with one move played
			match := newMatch(t)

			// When: CreateOrUpdate is called
			err := matchRepo.CreateOrUpdate(ctx, match)

			// Then: no error should be returned, and the match is stored
			require.NoError(t, err)
		})
	}
}

func TestMatchRepository_GetByID(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name+"/Success", func(t *testing.T) {
			ctx, matchRepo := b.open(t)

			// Given: a stored match
			match := newMatch(t)
			require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

			// When: GetByID is called with its id
			retrieved, err := matchRepo.GetByID(ctx, match.ID)

			// Then: the snapshot matches what was saved
			require.NoError(t, err)
			assert.Equal(t, match.ID, retrieved.ID)
			assert.Equal(t, match.Board.Snapshot(), retrieved.Board.Snapshot())
			assert.Equal(t, match.CurrentMark, retrieved.CurrentMark)
			assert.Equal(t, match.Computer.Mark, retrieved.Computer.Mark)
		})

		t.Run(b.name+"/Snapshot is not shared", func(t *testing.T) {
			ctx, matchRepo := b.open(t)

			// Given: a stored match
			match := newMatch(t)
			require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

			// When: the caller keeps playing without saving
			require.NoError(t, match.ApplyMove(entity.MarkO, 1))

			// Then: the stored snapshot is unchanged
			retrieved, err := matchRepo.GetByID(ctx, match.ID)
			require.NoError(t, err)
			assert.True(t, retrieved.Board.IsOpen(1))
		})

		t.Run(b.name+"/NotFound", func(t *testing.T) {
			ctx, matchRepo := b.open(t)

			// When: GetByID is called with non-existent ID
			retrieved, err := matchRepo.GetByID(ctx, "9999999")

			// Then: an ErrMatchNotFound error should be returned
			require.ErrorIs(t, err, apperror.ErrMatchNotFound)
			assert.Nil(t, retrieved)
		})
	}
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name+"/Success", func(t *testing.T) {
			ctx, matchRepo := b.open(t)

			// Given: a stored match
			match := newMatch(t)
			require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

			// When: DeleteByID is called with its id
			err := matchRepo.DeleteByID(ctx, match.ID)

			// Then: it is gone
			require.NoError(t, err)

			_, err = matchRepo.GetByID(ctx, match.ID)
			require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		})

		t.Run(b.name+"/NotFound", func(t *testing.T) {
			ctx, matchRepo := b.open(t)

			// When: DeleteByID is called with non-existent ID
			err := matchRepo.DeleteByID(ctx, "9999999")

			// Then: an ErrMatchNotFound error should be returned
			require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		})
	}
}
