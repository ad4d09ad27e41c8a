package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPlayer(t *testing.T) {
	t.Run("X moves first", func(t *testing.T) {
		assert.Equal(t, entity.PlayerX, CurrentPlayer(entity.InitialState()))
	})

	t.Run("Players alternate on every reachable board", func(t *testing.T) {
		// Given: every board reachable by legal play
		for _, board := range reachableBoards(t) {
			if IsTerminal(board) {
				continue
			}

			player := CurrentPlayer(board)
			for _, action := range LegalActions(board) {
				// When: the player to move takes any legal action
				next, err := Apply(board, action)
				require.NoError(t, err)

				// Then: the mark placed is the mover's and the opponent moves next
				assert.Equal(t, player.Mark(), next.At(action))
				assert.Equal(t, player.Opponent(), CurrentPlayer(next))
			}
		}
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("All cells on the initial board in row-major order", func(t *testing.T) {
		actions := LegalActions(entity.InitialState())

		require.Len(t, actions, 9)
		for i, action := range actions {
			assert.Equal(t, entity.ActionFromIndex(i), action)
		}
	})

	t.Run("Only empty cells", func(t *testing.T) {
		// Given: a board with four marks
		board := mustParse(t, "XO./.X./..O")

		// When: listing legal actions
		actions := LegalActions(board)

		// Then: exactly the five empty cells are returned
		expected := []entity.Action{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}
		assert.Equal(t, expected, actions)
	})
}

func TestApply(t *testing.T) {
	t.Run("Does not mutate the input board", func(t *testing.T) {
		// Given: a board and a snapshot of it
		board := mustParse(t, "X...O....")
		snapshot := board

		// When: an action is applied
		next, err := Apply(board, entity.Action{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the input is unchanged and the result holds the new mark
		assert.Equal(t, snapshot, board)
		assert.Equal(t, entity.MarkX, next[2][2])
		assert.Equal(t, entity.Empty, board[2][2])
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board where (0,0) is taken
		board := mustParse(t, "X........")

		// When: O tries to play there
		next, err := Apply(board, entity.Action{Row: 0, Col: 0})

		// Then: ErrIllegalAction is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalAction)
		assert.Equal(t, board, next)
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		for _, action := range []entity.Action{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 1}, {Row: 1, Col: 3}, {Row: 20, Col: 20}} {
			_, err := Apply(entity.InitialState(), action)
			assert.ErrorIs(t, err, apperror.ErrIllegalAction, action.String())
		}
	})

	t.Run("Every occupied cell of every reachable board is rejected", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			for cell := 0; cell < 9; cell++ {
				action := entity.ActionFromIndex(cell)
				if board.At(action) == entity.Empty {
					continue
				}
				_, err := Apply(board, action)
				require.ErrorIs(t, err, apperror.ErrIllegalAction)
			}
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("Winner X by column", func(t *testing.T) {
		board := mustParse(t, "XO./XO./X..")

		winner, ok := Winner(board)

		require.True(t, ok)
		assert.Equal(t, entity.PlayerX, winner)
		assert.Equal(t, 1, Utility(board))
		assert.Equal(t, entity.XWins, OutcomeOf(board))
	})

	t.Run("Winner O by anti-diagonal", func(t *testing.T) {
		board := mustParse(t, "XXO/XO./O.X")

		winner, ok := Winner(board)

		require.True(t, ok)
		assert.Equal(t, entity.PlayerO, winner)
		assert.Equal(t, -1, Utility(board))
		assert.Equal(t, entity.OWins, OutcomeOf(board))
	})

	t.Run("No winner before five marks", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			if board.Count(entity.Empty) > 4 {
				_, ok := Winner(board)
				require.False(t, ok, board.String())
			}
		}
	})

	t.Run("Both marks winning: first line in scan order decides", func(t *testing.T) {
		// Given: boards that legal play cannot produce, with a winning row for each mark
		xFirst := entity.Board{
			{entity.MarkX, entity.MarkX, entity.MarkX},
			{entity.MarkO, entity.MarkO, entity.MarkO},
		}
		oFirst := entity.Board{
			{entity.MarkO, entity.MarkO, entity.MarkO},
			{entity.MarkX, entity.MarkX, entity.MarkX},
		}

		// When: the winner is computed
		xWinner, _ := Winner(xFirst)
		oWinner, _ := Winner(oFirst)

		// Then: the upper row wins in both cases
		assert.Equal(t, entity.PlayerX, xWinner)
		assert.Equal(t, entity.PlayerO, oWinner)
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("Ongoing game", func(t *testing.T) {
		board := mustParse(t, "XOX/.O./X..")

		assert.False(t, IsTerminal(board))
		assert.Equal(t, entity.InProgress, OutcomeOf(board))
	})

	t.Run("Tie", func(t *testing.T) {
		board := mustParse(t, "OXO/OXX/XOX")

		assert.True(t, IsTerminal(board))
		assert.Equal(t, 0, Utility(board))
		assert.Equal(t, entity.Draw, OutcomeOf(board))
	})

	t.Run("Every full reachable board is terminal", func(t *testing.T) {
		for _, board := range reachableBoards(t) {
			if board.Count(entity.Empty) == 0 {
				require.True(t, IsTerminal(board), board.String())
			}
		}
	})
}
