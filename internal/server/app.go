// Package server initializes and runs the auth service: it wires the
// credential store, the password hasher and the token issuer, and runs the
// REST and gRPC listeners side by side in one process sharing the same
// signing secret and store connection.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/queueflex/auth-service/internal/logging"
	"github.com/queueflex/auth-service/internal/server/config"
	"github.com/queueflex/auth-service/internal/server/password"
	"github.com/queueflex/auth-service/internal/server/shared/db"
	"github.com/queueflex/auth-service/internal/server/users"

	gs "github.com/queueflex/auth-service/internal/server/grpc"
	rs "github.com/queueflex/auth-service/internal/server/rest"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := password.NewHasher(c.BcryptCost)
	us := users.NewService(m.Users(), hasher, c)

	return &App{config: c, logger: logger, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startRESTServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := rs.NewRESTServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.CORSOrigin)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startRESTServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
