package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

// reachableBoards - every board reachable from the initial state by legal play,
// each listed once, in discovery order.
func reachableBoards(t *testing.T) []entity.Board {
	t.Helper()

	seen := map[entity.Board]bool{}
	var boards []entity.Board

	var walk func(board entity.Board)
	walk = func(board entity.Board) {
		if seen[board] {
			return
		}
		seen[board] = true
		boards = append(boards, board)

		if IsTerminal(board) {
			return
		}

		for _, action := range LegalActions(board) {
			next, err := Apply(board, action)
			require.NoError(t, err)
			walk(next)
		}
	}

	walk(entity.InitialState())

	return boards
}

// exhaustiveValue - plain minimax without pruning, memoized by board.
func exhaustiveValue(board entity.Board, memo map[entity.Board]int) int {
	if value, ok := memo[board]; ok {
		return value
	}

	if IsTerminal(board) {
		memo[board] = Utility(board)
		return memo[board]
	}

	maximizing := CurrentPlayer(board) == entity.PlayerX
	best := 2
	if maximizing {
		best = -2
	}

	for _, action := range LegalActions(board) {
		value := exhaustiveValue(result(board, action), memo)
		if maximizing && value > best || !maximizing && value < best {
			best = value
		}
	}

	memo[board] = best
	return best
}

func mustParse(t *testing.T, raw string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(raw)
	require.NoError(t, err)

	return board
}
