package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
)

const headerPlayerID = "X-Player-ID"

var errPlayerIDRequired = errors.New(headerPlayerID + " header is required")

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, playerID, from, to string) (*entity.Game, error)
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (that *handlers) createPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.gameUseCase.GetOrCreatePlayer(r.Context(), "")
	if err != nil {
		that.writeError(w, "createPlayer", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, player)
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	playerID := r.Header.Get(headerPlayerID)
	if playerID == "" {
		that.writeError(w, "createGame", errPlayerIDRequired)
		return
	}

	game, err := that.gameUseCase.GetOrCreateGame(r.Context(), playerID)
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) getBoard(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getBoard", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(game.Board.Board().String()))
}

func (that *handlers) joinGame(w http.ResponseWriter, r *http.Request) {
	playerID := r.Header.Get(headerPlayerID)
	if playerID == "" {
		that.writeError(w, "joinGame", errPlayerIDRequired)
		return
	}

	game, err := that.gameUseCase.JoinGame(r.Context(), chi.URLParam(r, "id"), playerID)
	if err != nil {
		that.writeError(w, "joinGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameID := chi.URLParam(r, "id")

	playerID := r.Header.Get(headerPlayerID)
	if playerID == "" {
		that.writeError(w, "makeMove", errPlayerIDRequired)
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, "makeMove", fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		that.writeError(w, "makeMove", err)
		return
	}

	if player.GameID != gameID {
		that.writeError(w, "makeMove", fmt.Errorf("%w: %s", apperror.ErrNotInGame, gameID))
		return
	}

	game, err := that.gameUseCase.MakeMove(ctx, playerID, req.From, req.To)
	if err != nil {
		that.writeError(w, "makeMove", err)
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
