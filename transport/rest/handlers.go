package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

type analyzeRequest struct {
	Board *entity.Board `json:"board"`
}

type newGameRequest struct {
	Mark entity.Player `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, errors.Join(apperror.ErrInvalidPayload, err))
		return
	}

	if req.Board == nil {
		that.writeError(w, fmt.Errorf("%w: board is required", apperror.ErrInvalidPayload))
		return
	}

	analysis, err := that.games.Analyze(r.Context(), *req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, analysis)
}

func (that *handlers) newGame(w http.ResponseWriter, r *http.Request) {
	req := newGameRequest{Mark: entity.PlayerX}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			that.writeError(w, errors.Join(apperror.ErrInvalidPayload, err))
			return
		}
	}

	game, err := that.games.NewGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var action entity.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		that.writeError(w, errors.Join(apperror.ErrInvalidPayload, err))
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidBoard), errors.Is(err, apperror.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrIllegalAction),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrInvalidQuery):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
