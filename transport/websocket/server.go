package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
)

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, playerID, from, to string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, msg *Message, conn *connection) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	connectionsMutex sync.RWMutex
	connections      map[string]*connection

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,

		connections: make(map[string]*connection),
		handlers:    make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameJoin] = server.handleJoinGame
	server.handlers[actionGameMove] = server.handleGameMove
	server.handlers[actionGameState] = server.handleGameState

	return server
}

// Start - starts WebSocket server and stops it once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		that.handleMessages(ctx, newConnection(conn), conn.ReadMessage)
	}))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// handleMessages - processes messages from the client until the connection is closed.
func (that *Server) handleMessages(ctx context.Context, conn *connection, read func() (int, []byte, error)) {
	log := that.logger.With("method", "handleMessages")

	defer that.unregister(conn)

	for {
		messageType, data, err := read()
		if err != nil {
			log.Debug("connection closed", "error", err)
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		that.dispatch(ctx, conn, data)
	}
}

func (that *Server) dispatch(ctx context.Context, conn *connection, data []byte) {
	log := that.logger.With("method", "dispatch")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Error("failed to unmarshal message", "error", err)

		if err = that.sendErrorResponse(conn, "", "malformed message"); err != nil {
			log.Error("failed to send error", "error", err)
		}

		return
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)

		if err := that.sendErrorResponse(conn, message.Action, "unknown action"); err != nil {
			log.Error("failed to send error", "error", err)
		}

		return
	}

	if err := handler(ctx, &message, conn); err != nil {
		log.Error("error processing message", "action", message.Action, "error", err)
	}
}
