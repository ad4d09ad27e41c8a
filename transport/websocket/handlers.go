package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, errors.Join(apperror.ErrInvalidPayload, err)
	}

	return &payload, nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message) (*Payload, error) {
	req, err := decodePayload(msg)
	if err != nil {
		return nil, err
	}

	mark := entity.PlayerX
	if req.Mark != nil {
		mark = *req.Mark
	}

	game, err := that.games.NewGame(ctx, mark)
	if err != nil {
		return nil, err
	}

	return &Payload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) (*Payload, error) {
	req, err := decodePayload(msg)
	if err != nil {
		return nil, err
	}

	if req.GameID == "" {
		return nil, fmt.Errorf("%w: game_id is required", apperror.ErrInvalidPayload)
	}

	if req.Cell == nil {
		return nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	game, err := that.games.MakeTurn(ctx, req.GameID, entity.ActionFromIndex(*req.Cell))
	if err != nil {
		return nil, err
	}

	return &Payload{Game: game}, nil
}

func (that *Server) handleAnalyze(ctx context.Context, msg *Message) (*Payload, error) {
	req, err := decodePayload(msg)
	if err != nil {
		return nil, err
	}

	if req.Board == nil {
		return nil, fmt.Errorf("%w: board is required", apperror.ErrInvalidPayload)
	}

	analysis, err := that.games.Analyze(ctx, *req.Board)
	if err != nil {
		return nil, err
	}

	return &Payload{Analysis: analysis}, nil
}
