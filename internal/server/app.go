// Package server wires the user listing service together: storage, the
// user service, and the HTTP and gRPC transports.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/userlist/internal/logging"
	"github.com/dmitrijs2005/userlist/internal/server/config"
	gs "github.com/dmitrijs2005/userlist/internal/server/grpc"
	"github.com/dmitrijs2005/userlist/internal/server/httpapi"
	"github.com/dmitrijs2005/userlist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userlist/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     *repomanager.Manager
	userService *services.UserService
}

// NewApp opens storage, builds the user service and seeds it when
// configured to.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, "json", c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	m, err := repomanager.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := services.NewUserService(m.Users(), logger)

	if c.SeedOnStart {
		if _, err := us.Seed(ctx, nil); err != nil {
			_ = m.Close(ctx)
			return nil, err
		}
	}

	logger.Info(ctx, "storage ready", "backend", m.Backend())
	return &App{config: c, logger: logger, manager: m, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.userService, app.logger, app.config.ShutdownTimeout)
	if err := s.Run(ctx, app.config.EndpointAddrHTTP); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// waits for the servers to stop and closes storage.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.manager.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
