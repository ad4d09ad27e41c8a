package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the HTTP and WebSocket server until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(log)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	recorder := metrics.NewRecorder()

	gameRepo := repository.NewGameRepository(redisStorage, conf.GameTTL)
	solver := tictactoe.NewSolver(logger, recorder, conf.Search.Parallel)
	bot := service.NewBotService(logger, solver)
	gameUseCase := usecase.NewGameManager(logger, gameRepo, bot, solver, recorder)

	wsServer := websocket.New(logger, gameUseCase)
	router := rest.NewRouter(logger, gameUseCase, wsServer)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "parallelSearch", conf.Search.Parallel)

	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// RunConsole - plays one game against the solver in the terminal. No storage is needed.
func RunConsole(logger *slog.Logger, conf *config.Config, humanMark entity.Player, in io.Reader, out io.Writer) error {
	ctx, cancel := withSignals(logger.With("component", "app"))
	defer cancel()

	solver := tictactoe.NewSolver(logger, nil, conf.Search.Parallel)
	bot := service.NewBotService(logger, solver)

	if _, err := console.New(logger, bot, in, out).Play(ctx, humanMark); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}

func withSignals(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
