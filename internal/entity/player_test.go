package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func TestParseMark(t *testing.T) {
	tests := []struct {
		input    string
		expected Mark
		err      error
	}{
		{input: "x", expected: MarkX},
		{input: " O ", expected: MarkO},
		{input: "X", expected: MarkX},
		{input: "", err: apperror.ErrInvalidMark},
		{input: "-", err: apperror.ErrInvalidMark},
		{input: "xo", err: apperror.ErrInvalidMark},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mark, err := ParseMark(tt.input)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Equal(t, EmptyMark, mark)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, mark)
		})
	}
}

func TestOtherMark(t *testing.T) {
	assert.Equal(t, MarkO, OtherMark(MarkX))
	assert.Equal(t, MarkX, OtherMark(MarkO))
	assert.False(t, IsValidMark(MarkTie))
	assert.False(t, IsValidMark(EmptyMark))
}

func TestSquare(t *testing.T) {
	empty := Square{}
	marked := Square{Mark: MarkO}

	assert.True(t, empty.IsUnmarked())
	assert.False(t, empty.IsMarked())
	assert.Equal(t, " ", empty.String())

	assert.True(t, marked.IsMarked())
	assert.Equal(t, "O", marked.String())
}

func TestMatch_View(t *testing.T) {
	// Given: a match with one move on the board
	match := newTestMatch(t, MarkX)
	require.NoError(t, match.ApplyMove(MarkX, 5))

	// When: a view is taken and then changed
	view := match.View()
	view.Board[0] = MarkO
	view.Human.Score = 9

	// Then: the match itself is untouched
	assert.True(t, match.Board.IsOpen(1))
	assert.Equal(t, 0, match.Human.Score)
	assert.Equal(t, MarkX, view.Board[4])
	assert.Equal(t, "BlackBeard", view.PlayerByMark(MarkO).Name)
	assert.Nil(t, view.PlayerByMark(MarkTie))
}
