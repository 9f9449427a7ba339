package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/client"
	"github.com/dmitrijs2005/userlist/internal/client/config"
	"github.com/dmitrijs2005/userlist/internal/client/idgen"
	"github.com/dmitrijs2005/userlist/internal/client/services"
	"github.com/dmitrijs2005/userlist/internal/client/store"
	"github.com/dmitrijs2005/userlist/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	client client.Client
	store  *store.Store
	loader *services.Loader
	logger logging.Logger

	scanner *bufio.Scanner
	out     io.Writer

	mu          sync.Mutex
	mode        Mode
	formVisible bool

	loads   sync.WaitGroup
	workers sync.WaitGroup
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, "text", c.LogLevel)
	if err != nil {
		return nil, err
	}

	ids, err := idgen.New(c.IDGenerator)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.New(c.Transport, c.Endpoint, c.GRPCAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, ids, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, ids idgen.Generator, logger logging.Logger, in io.Reader, out io.Writer) *App {
	st := store.New(ids)
	return &App{
		config:  c,
		client:  cl,
		store:   st,
		loader:  services.NewLoader(cl, st, logger),
		logger:  logger,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run starts the initial load and the online watcher, then blocks in the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		a.loads.Wait()
		a.workers.Wait()
		if err := a.client.Close(); err != nil {
			a.logger.Warn(ctx, "error closing client", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to userlist CLI (type 'help' for commands)")

	a.startLoad(ctx)

	a.workers.Add(1)
	go func() {
		defer a.workers.Done()
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, a.scanner, a.out)
}

// startLoad runs a load in the background. Its outcome is reflected in the
// prompt status; failures are logged by the loader.
func (a *App) startLoad(ctx context.Context) {
	a.loads.Add(1)
	go func() {
		defer a.loads.Done()
		_ = a.loader.Load(ctx)
	}()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setFormVisible(v bool) {
	a.mu.Lock()
	a.formVisible = v
	a.mu.Unlock()
}

// FormVisible reports whether the add form is open.
func (a *App) FormVisible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.formVisible
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx, interval)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context, timeout time.Duration) {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	err := a.client.Ping(pingCtx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
