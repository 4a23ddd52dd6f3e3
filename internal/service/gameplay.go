package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
)

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGameState(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, playerID, from, to string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		playerService: playerService,
		gameService:   gameService,
	}
}

// GetOrCreateGame returns the player's current game or opens a new one.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.InGame() {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}

		return game, nil
	}

	game, err := that.gameService.CreateGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return game, nil
}

func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.InGame() && player.GameID != gameID {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAlreadyInGame, player.GameID)
	}

	game, err := that.gameService.ApplyToGame(ctx, gameID, func(game *entity.Game) error {
		return game.AddPlayer(player)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, game.PlayerByID(playerID)); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Info("player joined game", "gameID", game.ID, "playerID", playerID, "status", game.Status)

	return game, nil
}

func (that *gamePlayService) GetGameState(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeMove applies a move for playerID in its current game. A move that ends
// the game releases both players.
func (that *gamePlayService) MakeMove(ctx context.Context, playerID, from, to string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, apperror.ErrNotInGame
	}

	game, err := that.gameService.ApplyToGame(ctx, player.GameID, func(game *entity.Game) error {
		return game.MakeMove(player, from, to)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	that.logger.Debug("move made", "gameID", game.ID, "playerID", playerID, "from", from, "to", to)

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner.String())
		that.CleanupGame(ctx, game)
	}

	return game, nil
}

// CleanupGame releases the players of a finished game. The game itself is kept
// until storage expires it.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	for _, player := range game.Players {
		released := *player
		released.LeaveGame()

		if err := that.playerService.UpdatePlayer(ctx, &released); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}
}
