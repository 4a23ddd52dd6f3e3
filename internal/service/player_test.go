package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"
)

var errStorage = errors.New("storage is down")

func TestPlayerService_CreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a player with a fresh session id", func(t *testing.T) {
		repo := &playerRepoMock{}
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Player")).Return(nil)

		player, err := NewPlayerService(repo).CreatePlayer(ctx)

		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.False(t, player.InGame())
		repo.AssertExpectations(t)
	})

	t.Run("Wraps storage failures", func(t *testing.T) {
		repo := &playerRepoMock{}
		repo.On("CreateOrUpdate", ctx, mock.Anything).Return(errStorage)

		player, err := NewPlayerService(repo).CreatePlayer(ctx)

		require.ErrorIs(t, err, errStorage)
		assert.Nil(t, player)
	})
}

func TestPlayerService_GetPlayerByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored player", func(t *testing.T) {
		stored := &entity.Player{ID: "p1", GameID: "g1", Color: hasami.Red}

		repo := &playerRepoMock{}
		repo.On("GetByID", ctx, "p1").Return(stored, nil)

		player, err := NewPlayerService(repo).GetPlayerByID(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, stored, player)
	})

	t.Run("Keeps not found matchable", func(t *testing.T) {
		repo := &playerRepoMock{}
		repo.On("GetByID", ctx, "ghost").Return(nil, apperror.ErrNotFound)

		_, err := NewPlayerService(repo).GetPlayerByID(ctx, "ghost")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
