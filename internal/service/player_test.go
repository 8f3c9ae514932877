package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrompter struct {
	mark     entity.Mark
	position int
	err      error

	offered []int
}

func (that *stubPrompter) ChooseMark(_ context.Context, _ []entity.Mark) (entity.Mark, error) {
	return that.mark, that.err
}

func (that *stubPrompter) RequestMove(_ context.Context, valid []int) (int, error) {
	that.offered = valid
	return that.position, that.err
}

func TestHumanPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Chooses the prompted mark", func(t *testing.T) {
		player := NewHumanPlayer(&stubPrompter{mark: entity.MarkO})

		mark, err := player.ChooseMark(ctx, entity.EmptyMark)

		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, mark)
	})

	t.Run("Offers only open squares", func(t *testing.T) {
		// Given: a board with two marks
		board := boardOf(t, [entity.BoardSize]entity.Mark{
			x, e, e,
			e, o, e,
			e, e, e,
		})
		prompter := &stubPrompter{position: 9}
		player := NewHumanPlayer(prompter)

		// When: the human is asked for a move
		position, err := player.ChooseMove(ctx, board, x, o)

		// Then: the prompt received the open positions and the answer is passed through
		require.NoError(t, err)
		assert.Equal(t, 9, position)
		assert.Equal(t, []int{2, 3, 4, 6, 7, 8, 9}, prompter.offered)
	})

	t.Run("Closed input is returned", func(t *testing.T) {
		player := NewHumanPlayer(&stubPrompter{err: apperror.ErrInputClosed})

		_, err := player.ChooseMove(ctx, entity.NewBoard(), x, o)

		require.True(t, errors.Is(err, apperror.ErrInputClosed))
	})
}
