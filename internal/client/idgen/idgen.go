// Package idgen provides the identifier generators used for records added
// on the client.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string { return f() }

// UUID returns random version 4 UUIDs.
func UUID() Generator {
	return GeneratorFunc(uuid.NewString)
}

type ulidGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// ULID returns lexically sortable ids. Ids generated within the same
// millisecond still sort in generation order.
func ULID() Generator {
	return &ulidGenerator{entropy: ulid.Monotonic(rand.Reader, 0), now: time.Now}
}

func (g *ulidGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

// Counter yields prefix+n for n = start, start+1, ...
type Counter struct {
	prefix string
	next   atomic.Int64
}

func NewCounter(prefix string, start int64) *Counter {
	c := &Counter{prefix: prefix}
	c.next.Store(start)
	return c
}

func (c *Counter) NewID() string {
	n := c.next.Add(1) - 1
	return c.prefix + strconv.FormatInt(n, 10)
}

// New returns the generator registered under name: uuid, ulid or counter.
func New(name string) (Generator, error) {
	switch name {
	case "", "uuid":
		return UUID(), nil
	case "ulid":
		return ULID(), nil
	case "counter":
		return NewCounter("local-", 1), nil
	}
	return nil, fmt.Errorf("id generator %q: %w", name, common.ErrorUnsupportedOption)
}
