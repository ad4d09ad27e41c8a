package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// WinCombos - the 8 lines in scan order: rows, columns, main diagonal, anti-diagonal.
// When a board holds winning lines for both marks, the first one found here decides.
var WinCombos = [8][3]entity.Action{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// CurrentPlayer - X moves whenever both sides have placed the same number of marks.
func CurrentPlayer(board entity.Board) entity.Player {
	if board.Count(entity.MarkX) > board.Count(entity.MarkO) {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// LegalActions - every empty cell in row-major order.
func LegalActions(board entity.Board) []entity.Action {
	actions := make([]entity.Action, 0, entity.BoardSize*entity.BoardSize)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] == entity.Empty {
				actions = append(actions, entity.Action{Row: row, Col: col})
			}
		}
	}
	return actions
}

// Apply - returns the board after the current player marks the action's cell.
// The argument is a copy, so the caller's board is never touched.
func Apply(board entity.Board, action entity.Action) (entity.Board, error) {
	if err := validateAction(board, action); err != nil {
		return board, err
	}

	board[action.Row][action.Col] = CurrentPlayer(board).Mark()

	return board, nil
}

func validateAction(board entity.Board, action entity.Action) error {
	if !action.InRange() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrIllegalAction, action)
	}

	if board.At(action) != entity.Empty {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrIllegalAction, action)
	}

	return nil
}

// Winner - returns the mark holding a complete line, if any.
func Winner(board entity.Board) (entity.Player, bool) {
	for _, combo := range WinCombos {
		a, b, c := board.At(combo[0]), board.At(combo[1]), board.At(combo[2])
		if a != entity.Empty && a == b && b == c {
			if a == entity.MarkX {
				return entity.PlayerX, true
			}
			return entity.PlayerO, true
		}
	}

	return 0, false
}

func IsTerminal(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	// the game will continue until all the squares are full
	return board.Count(entity.Empty) == 0
}

// Utility - the score from X's perspective. Only meaningful on terminal boards.
func Utility(board entity.Board) int {
	winner, ok := Winner(board)
	switch {
	case !ok:
		return 0
	case winner == entity.PlayerX:
		return 1
	default:
		return -1
	}
}

func OutcomeOf(board entity.Board) entity.Outcome {
	if winner, ok := Winner(board); ok {
		if winner == entity.PlayerX {
			return entity.XWins
		}
		return entity.OWins
	}

	if board.Count(entity.Empty) == 0 {
		return entity.Draw
	}

	return entity.InProgress
}
