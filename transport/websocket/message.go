package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionGameNew      = "game:new"
	actionGameTurn     = "game:turn"
	actionBoardAnalyze = "board:analyze"
	actionError        = "error"
)

// Message - every frame in both directions is one Message.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - request fields and response fields share one shape; unused ones are omitted.
type Payload struct {
	Mark   *entity.Player `json:"mark,omitempty"`
	GameID string         `json:"game_id,omitempty"`
	// Cell is the row-major index 0..8.
	Cell  *int          `json:"cell,omitempty"`
	Board *entity.Board `json:"board,omitempty"`

	Game     *entity.Game     `json:"game,omitempty"`
	Analysis *entity.Analysis `json:"analysis,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action string, cause error) error {
	return that.sendMessage(conn, action, &Payload{Error: cause.Error()})
}
