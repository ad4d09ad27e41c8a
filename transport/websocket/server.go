package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxMessageSize = 4096

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
)

type gameUseCase interface {
	NewGame(ctx context.Context, humanMark entity.Player) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, action entity.Action) (*entity.Game, error)
	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

type handlerFunc func(ctx context.Context, msg *Message) (*Payload, error)

type Server struct {
	logger *slog.Logger
	games  gameUseCase

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionBoardAnalyze] = server.handleAnalyze

	return server
}

// ServeHTTP - upgrades the request and serves messages until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - answers every message on the connection in order.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("client closed connection")
				return nil
			}
			return err
		}

		var msg Message
		if err = json.Unmarshal(raw, &msg); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, actionError, errMalformedMessage); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Warn("unknown action", "action", msg.Action)
			if err = that.sendError(conn, msg.Action, errUnknownAction); err != nil {
				return err
			}
			continue
		}

		payload, err := handler(ctx, &msg)
		if err != nil {
			log.Info("action failed", "action", msg.Action, "error", err)
			if err = that.sendError(conn, msg.Action, err); err != nil {
				return err
			}
			continue
		}

		if err = that.sendMessage(conn, msg.Action, payload); err != nil {
			return err
		}
	}
}
