package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type solver interface {
	BestAction(ctx context.Context, board entity.Board) (entity.Action, int, error)
}

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
	solver solver
}

func NewBotService(logger *slog.Logger, solver solver) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		solver: solver,
	}
}

// MakeTurn - plays the solver's best action for the bot's mark.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	action, value, err := that.solver.BestAction(ctx, game.Board)
	if err != nil {
		return fmt.Errorf("failed to find bot action: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.BotMark, action); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.LastBotAction = &action

	that.logger.Debug("bot moved", "gameID", game.ID, "action", action.String(), "value", value)

	return nil
}
