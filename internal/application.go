package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/config"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/repository"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/repository/storage"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/service"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/usecase"
	"github.com/rocketscienceinc/hasami-shogi-backend/transport/rest"
	"github.com/rocketscienceinc/hasami-shogi-backend/transport/websocket"
)

// RunApp - runs the application until a signal arrives or a server fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisStorage, err := storage.New(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.TTL)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService)

	gameUseCase := usecase.NewGameUseCase(playerService, gamePlayService)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameUseCase))
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		cancel()
		<-wsErrCh

		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		cancel()
		<-httpErrCh

		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	if err = <-httpErrCh; err != nil {
		log.Error("HTTP server shutdown", "error", err)
	}

	if err = <-wsErrCh; err != nil {
		log.Error("WebSocket server shutdown", "error", err)
	}

	return nil
}
