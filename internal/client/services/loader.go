// Package services holds the client's use cases that sit between the
// transport and the in-memory store.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/logging"
)

// ErrStaleResponse is returned by Load when a newer load started while this
// one was in flight. Its result is discarded.
var ErrStaleResponse = errors.New("stale response discarded")

type State int

const (
	Idle State = iota
	Loading
	Loaded
	LoadFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Lister fetches the remote user collection.
type Lister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Replacer receives a freshly loaded collection.
type Replacer interface {
	ReplaceAll(users []models.User)
}

// Loader fetches the remote collection and installs it into the store.
type Loader struct {
	client Lister
	store  Replacer
	logger logging.Logger

	mu      sync.Mutex
	gen     uint64
	state   State
	lastErr error
}

func NewLoader(client Lister, store Replacer, logger logging.Logger) *Loader {
	return &Loader{client: client, store: store, logger: logger}
}

// Load performs one fetch. On failure the store is left untouched and the
// state becomes LoadFailed; there is no retry.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.state = Loading
	l.mu.Unlock()

	l.logger.Debug(ctx, "loading users", "generation", gen)

	users, err := l.client.ListUsers(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		l.logger.Warn(ctx, "discarding stale users response", "generation", gen, "latest", l.gen)
		return ErrStaleResponse
	}

	if err != nil {
		l.state = LoadFailed
		l.lastErr = err
		l.logger.Error(ctx, "error loading users", "error", err)
		return fmt.Errorf("error loading users: %w", err)
	}

	l.store.ReplaceAll(users)
	l.state = Loaded
	l.lastErr = nil
	l.logger.Info(ctx, "users loaded", "count", len(users))
	return nil
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// LastError is the error of the most recent failed load, or nil after a
// successful one.
func (l *Loader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}
