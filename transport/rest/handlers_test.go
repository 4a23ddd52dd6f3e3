package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"
)

type gameUseCaseMock struct {
	mock.Mock
}

func (m *gameUseCaseMock) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	args := m.Called(ctx, playerID)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *gameUseCaseMock) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	args := m.Called(ctx, playerID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *gameUseCaseMock) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	args := m.Called(ctx, gameID, playerID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *gameUseCaseMock) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	args := m.Called(ctx, gameID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *gameUseCaseMock) MakeMove(ctx context.Context, playerID, from, to string) (*entity.Game, error) {
	args := m.Called(ctx, playerID, from, to)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func newTestRouter(t *testing.T) (*gameUseCaseMock, http.Handler) {
	t.Helper()

	useCase := &gameUseCaseMock{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return useCase, NewRouter(logger, useCase)
}

func serve(handler http.Handler, method, target, playerID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if playerID != "" {
		req.Header.Set(headerPlayerID, playerID)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	return resp.Error
}

func TestPing(t *testing.T) {
	_, router := newTestRouter(t)

	rr := serve(router, http.MethodGet, "/ping", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestCreatePlayer(t *testing.T) {
	useCase, router := newTestRouter(t)
	useCase.On("GetOrCreatePlayer", mock.Anything, "").Return(&entity.Player{ID: "p1"}, nil)

	rr := serve(router, http.MethodPost, "/players", "", "")

	require.Equal(t, http.StatusCreated, rr.Code)

	var player entity.Player
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&player))
	assert.Equal(t, "p1", player.ID)
}

func TestCreateGame(t *testing.T) {
	t.Run("Requires the player header", func(t *testing.T) {
		_, router := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/games", "", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), headerPlayerID)
	})

	t.Run("Returns the created game", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("GetOrCreateGame", mock.Anything, "p1").Return(entity.NewGame("g1"), nil)

		rr := serve(router, http.MethodPost, "/games", "p1", "")

		require.Equal(t, http.StatusCreated, rr.Code)

		var game entity.Game
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&game))
		assert.Equal(t, "g1", game.ID)
		assert.Equal(t, entity.StatusWaiting, game.Status)
		assert.Equal(t, hasami.Black, game.Board.ActivePlayer())
	})
}

func TestGetGame(t *testing.T) {
	t.Run("Unknown game is 404", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("GetGame", mock.Anything, "missing").Return(nil, apperror.ErrNotFound)

		rr := serve(router, http.MethodGet, "/games/missing", "", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Board is rendered as text", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("GetGame", mock.Anything, "g1").Return(entity.NewGame("g1"), nil)

		rr := serve(router, http.MethodGet, "/games/g1/board", "", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, hasami.NewBoard().String(), rr.Body.String())
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	})
}

func TestJoinGame(t *testing.T) {
	t.Run("A full game is a conflict", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("JoinGame", mock.Anything, "g1", "p3").Return(nil, apperror.ErrGameFull)

		rr := serve(router, http.MethodPost, "/games/g1/join", "p3", "")

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, decodeError(t, rr), apperror.ErrGameFull.Error())
	})
}

func TestMakeMove(t *testing.T) {
	seated := &entity.Player{ID: "p1", GameID: "g1", Color: hasami.Black}

	t.Run("Applies the move", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("GetOrCreatePlayer", mock.Anything, "p1").Return(seated, nil)
		useCase.On("MakeMove", mock.Anything, "p1", "i1", "e1").Return(entity.NewGame("g1"), nil)

		rr := serve(router, http.MethodPost, "/games/g1/moves", "p1", `{"from":"i1","to":"e1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("Malformed body is rejected before any lookup", func(t *testing.T) {
		useCase, router := newTestRouter(t)

		rr := serve(router, http.MethodPost, "/games/g1/moves", "p1", `{"from":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		useCase.AssertNotCalled(t, "GetOrCreatePlayer", mock.Anything, mock.Anything)
	})

	t.Run("A player of another game is forbidden", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("GetOrCreatePlayer", mock.Anything, "p1").Return(seated, nil)

		rr := serve(router, http.MethodPost, "/games/other/moves", "p1", `{"from":"i1","to":"e1"}`)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		useCase.AssertNotCalled(t, "MakeMove", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not your turn", err: apperror.ErrNotYourTurn, status: http.StatusForbidden},
		{name: "game not started", err: apperror.ErrGameIsNotStarted, status: http.StatusConflict},
		{name: "game over", err: hasami.ErrGameOver, status: http.StatusConflict},
		{name: "bad location", err: hasami.ErrInvalidLocation, status: http.StatusBadRequest},
		{name: "not your piece", err: hasami.ErrNotYourPiece, status: http.StatusBadRequest},
		{name: "diagonal", err: hasami.ErrIllegalDirection, status: http.StatusBadRequest},
		{name: "blocked", err: hasami.ErrPathBlocked, status: http.StatusBadRequest},
		{name: "unexpected", err: io.ErrUnexpectedEOF, status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run("Maps "+tc.name, func(t *testing.T) {
			useCase, router := newTestRouter(t)
			useCase.On("GetOrCreatePlayer", mock.Anything, "p1").Return(seated, nil)
			useCase.On("MakeMove", mock.Anything, "p1", "i1", "h2").Return(nil, tc.err)

			rr := serve(router, http.MethodPost, "/games/g1/moves", "p1", `{"from":"i1","to":"h2"}`)

			assert.Equal(t, tc.status, rr.Code)
		})
	}

	t.Run("Internal errors are not leaked", func(t *testing.T) {
		useCase, router := newTestRouter(t)
		useCase.On("GetOrCreatePlayer", mock.Anything, "p1").Return(seated, nil)
		useCase.On("MakeMove", mock.Anything, "p1", "i1", "e1").Return(nil, io.ErrUnexpectedEOF)

		rr := serve(router, http.MethodPost, "/games/g1/moves", "p1", `{"from":"i1","to":"e1"}`)

		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rr))
	})
}
