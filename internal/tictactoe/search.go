package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	minUtility = -1
	maxUtility = 1
)

// MaxValue - value of the board for X to move. A child value >= bound is returned as soon
// as it is seen: the calling MinValue frame already holds something no larger, so the rest
// of the subtree cannot change its choice. MaxValue(board, 1) is the exact minimax value.
func MaxValue(board entity.Board, bound int) int {
	var s search
	return s.maxValue(board, bound)
}

// MinValue - the mirror of MaxValue for O to move. MinValue(board, -1) is exact.
func MinValue(board entity.Board, bound int) int {
	var s search
	return s.minValue(board, bound)
}

// Value - exact game value from X's perspective under optimal play by both sides.
func Value(board entity.Board) int {
	if CurrentPlayer(board) == entity.PlayerX {
		return MaxValue(board, maxUtility)
	}
	return MinValue(board, minUtility)
}

// BestAction - an optimal action for the player to move. Ties go to the first optimal
// action in row-major order.
func BestAction(board entity.Board) (entity.Action, error) {
	var s search

	action, _, err := s.bestAction(board)
	if err != nil {
		return entity.Action{}, err
	}

	return action, nil
}

// search counts visited nodes; the zero value is ready to use.
type search struct {
	nodes uint64
}

func (that *search) bestAction(board entity.Board) (entity.Action, int, error) {
	if IsTerminal(board) {
		return entity.Action{}, 0, fmt.Errorf("%w: best action requested on %s", apperror.ErrInvalidQuery, board)
	}

	player := CurrentPlayer(board)
	actions := LegalActions(board)

	values := make([]int, len(actions))
	for i, action := range actions {
		values[i] = that.reply(result(board, action), player)
	}

	best := pickBest(player, values)

	return actions[best], values[best], nil
}

// reply - exact value of the board the opponent now has to answer.
func (that *search) reply(board entity.Board, mover entity.Player) int {
	if mover == entity.PlayerX {
		return that.minValue(board, minUtility)
	}
	return that.maxValue(board, maxUtility)
}

func (that *search) maxValue(board entity.Board, bound int) int {
	that.nodes++

	if IsTerminal(board) {
		return Utility(board)
	}

	best := minUtility
	for _, action := range LegalActions(board) {
		value := that.minValue(result(board, action), best)
		if value >= bound {
			return value
		}
		best = max(best, value)
	}

	return best
}

func (that *search) minValue(board entity.Board, bound int) int {
	that.nodes++

	if IsTerminal(board) {
		return Utility(board)
	}

	worst := maxUtility
	for _, action := range LegalActions(board) {
		value := that.maxValue(result(board, action), worst)
		if value <= bound {
			return value
		}
		worst = min(worst, value)
	}

	return worst
}

// pickBest - index of the first strict improvement: highest value for X, lowest for O.
func pickBest(player entity.Player, values []int) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if player == entity.PlayerX && values[i] > values[best] {
			best = i
		}
		if player == entity.PlayerO && values[i] < values[best] {
			best = i
		}
	}
	return best
}

// result - Apply without validation, for actions taken from LegalActions.
func result(board entity.Board, action entity.Action) entity.Board {
	board[action.Row][action.Col] = CurrentPlayer(board).Mark()
	return board
}
