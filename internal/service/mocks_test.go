package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
)

type playerRepoMock struct {
	mock.Mock
}

func (m *playerRepoMock) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *playerRepoMock) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

type gameRepoMock struct {
	mock.Mock
}

func (m *gameRepoMock) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *gameRepoMock) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *gameRepoMock) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Update applies fn to the game configured as the first return value.
func (m *gameRepoMock) Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}

	game, _ := args.Get(0).(*entity.Game)
	if err := apply(game); err != nil {
		return nil, err
	}

	return game, nil
}

type playerServiceMock struct {
	mock.Mock
}

func (m *playerServiceMock) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	args := m.Called(ctx)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *playerServiceMock) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *playerServiceMock) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}
