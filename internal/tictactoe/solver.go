package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
)

type searchObserver interface {
	ObserveSearch(player, mode string, duration time.Duration, nodes uint64)
}

// Solver - BestAction with logging, metrics and optional parallel evaluation of root actions.
type Solver struct {
	logger   *slog.Logger
	observer searchObserver
	parallel bool
}

// NewSolver - observer may be nil.
func NewSolver(logger *slog.Logger, observer searchObserver, parallel bool) *Solver {
	return &Solver{
		logger:   logger.With("component", "solver"),
		observer: observer,
		parallel: parallel,
	}
}

// BestAction - returns the optimal action for the player to move and its game value from
// X's perspective. The parallel mode returns the same action as the sequential one.
func (that *Solver) BestAction(ctx context.Context, board entity.Board) (entity.Action, int, error) {
	if err := ctx.Err(); err != nil {
		return entity.Action{}, 0, fmt.Errorf("search canceled: %w", err)
	}

	if IsTerminal(board) {
		return entity.Action{}, 0, fmt.Errorf("%w: best action requested on %s", apperror.ErrInvalidQuery, board)
	}

	started := time.Now()
	mode := modeSequential

	var (
		action entity.Action
		value  int
		nodes  uint64
		err    error
	)

	if that.parallel {
		mode = modeParallel
		action, value, nodes, err = that.searchParallel(ctx, board)
	} else {
		var s search
		action, value, err = s.bestAction(board)
		nodes = s.nodes
	}

	if err != nil {
		return entity.Action{}, 0, err
	}

	player := CurrentPlayer(board)
	if that.observer != nil {
		that.observer.ObserveSearch(player.String(), mode, time.Since(started), nodes)
	}

	that.logger.Debug("best action chosen",
		"board", board.String(),
		"player", player.String(),
		"action", action.String(),
		"value", value,
		"nodes", nodes,
		"mode", mode,
	)

	return action, value, nil
}

// searchParallel - one goroutine per root action; boards are values so siblings share nothing.
func (that *Solver) searchParallel(ctx context.Context, board entity.Board) (entity.Action, int, uint64, error) {
	player := CurrentPlayer(board)
	actions := LegalActions(board)

	values := make([]int, len(actions))
	nodes := make([]uint64, len(actions))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, action := range actions {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("search canceled: %w", err)
			}

			var s search
			values[i] = s.reply(result(board, action), player)
			nodes[i] = s.nodes

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return entity.Action{}, 0, 0, err
	}

	var total uint64
	for _, n := range nodes {
		total += n
	}

	best := pickBest(player, values)

	return actions[best], values[best], total, nil
}
