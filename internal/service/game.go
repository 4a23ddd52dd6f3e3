package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/pkg"
)

type GameService interface {
	CreateGame(ctx context.Context, player *entity.Player) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	ApplyToGame(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

// CreateGame creates a waiting game with player seated as Black.
func (that *gameService) CreateGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())

	if err := game.AddPlayer(player); err != nil {
		return nil, fmt.Errorf("failed to seat player: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// ApplyToGame runs apply against the stored game atomically.
func (that *gameService) ApplyToGame(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, id, apply)
	if err != nil {
		return nil, fmt.Errorf("failed to apply change to game %s: %w", id, err)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
