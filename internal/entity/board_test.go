package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	// When: the initial board is created
	board := InitialState()

	// Then: every cell is empty
	assert.Equal(t, 9, board.Count(Empty))
	assert.Equal(t, ".........", board.String())
}

func TestBoard_ValueSemantics(t *testing.T) {
	// Given: a board and a copy of it
	board := InitialState()
	derived := board

	// When: the copy is changed
	derived[0][0] = MarkX

	// Then: the original board is untouched and boards compare by layout
	assert.Equal(t, Empty, board[0][0])
	assert.NotEqual(t, board, derived)
	assert.Equal(t, InitialState(), board)
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses compact and separated forms", func(t *testing.T) {
		// Given: the same position written two ways
		compact := "XX.OO...."
		separated := "xx./oo./..."

		// When: both are parsed
		a, err := ParseBoard(compact)
		require.NoError(t, err)
		b, err := ParseBoard(separated)
		require.NoError(t, err)

		// Then: they are the same board
		assert.Equal(t, a, b)
		assert.Equal(t, MarkX, a[0][1])
		assert.Equal(t, MarkO, a[1][0])
		assert.Equal(t, compact, a.String())
	})

	t.Run("Rejects wrong length", func(t *testing.T) {
		// When: too few cells are given
		_, err := ParseBoard("XO.")

		// Then: ErrInvalidBoard is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown characters", func(t *testing.T) {
		// When: a character outside the alphabet is given
		_, err := ParseBoard("XO.Z.....")

		// Then: ErrInvalidBoard is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unreachable mark counts", func(t *testing.T) {
		// When: O has more marks than X, or X is two ahead
		_, errO := ParseBoard("OO.......")
		_, errX := ParseBoard("XX.......")

		// Then: both are invalid
		assert.ErrorIs(t, errO, apperror.ErrInvalidBoard)
		assert.ErrorIs(t, errX, apperror.ErrInvalidBoard)
	})
}

func TestBoard_JSONRoundTrip(t *testing.T) {
	// Given: a board in the middle of a game
	board, err := ParseBoard("XO..X...O")
	require.NoError(t, err)

	// When: it is marshalled and unmarshalled
	data, err := board.MarshalJSON()
	require.NoError(t, err)

	var restored Board
	require.NoError(t, restored.UnmarshalJSON(data))

	// Then: the layout survives
	assert.Equal(t, `"XO..X...O"`, string(data))
	assert.Equal(t, board, restored)
}

func TestAction(t *testing.T) {
	t.Run("Index and ActionFromIndex agree", func(t *testing.T) {
		for cell := 0; cell < 9; cell++ {
			action := ActionFromIndex(cell)
			assert.True(t, action.InRange())
			assert.Equal(t, cell, action.Index())
		}
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		for _, action := range []Action{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 3}} {
			assert.False(t, action.InRange(), action.String())
		}
	})
}

func TestParsePlayer(t *testing.T) {
	x, err := ParsePlayer("x")
	require.NoError(t, err)
	assert.Equal(t, PlayerX, x)
	assert.Equal(t, PlayerO, x.Opponent())
	assert.Equal(t, MarkO, x.Opponent().Mark())

	_, err = ParsePlayer("Z")
	assert.ErrorIs(t, err, apperror.ErrInvalidPayload)
}
