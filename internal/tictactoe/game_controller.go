package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn - plays the action for player on the game's board and updates the game status.
func MakeTurn(gameInstance *entity.Game, player entity.Player, action entity.Action) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if CurrentPlayer(gameInstance.Board) != player {
		return apperror.ErrNotYourTurn
	}

	board, err := Apply(gameInstance.Board, action)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = board
	gameInstance.UpdateGameState(OutcomeOf(board), CurrentPlayer(board))

	return nil
}
