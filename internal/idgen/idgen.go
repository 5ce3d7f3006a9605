// Package idgen produces application identifiers of the form
// app_<unix-millis>_<base36 suffix>.
//
// Identifiers sort by creation time at millisecond granularity. The random
// suffix makes collisions improbable, not impossible: ids are not
// cryptographically unique and must not be used as secrets.
package idgen

import (
	"encoding/binary"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// Prefix starts every generated identifier.
	Prefix = "app_"

	suffixLen = 9
)

// suffixSpace is 36^9, the number of distinct 9-character base-36 suffixes.
const suffixSpace uint64 = 101559956668416

// Generator hands out identifiers. It is safe for concurrent use.
type Generator struct {
	now  func() time.Time
	rand io.Reader

	mu   sync.Mutex
	last int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandom overrides the randomness source used for the suffix.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// New creates a Generator backed by the wall clock and crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a fresh identifier. The time component never goes backwards
// even when the clock does.
func (g *Generator) Next() string {
	millis := g.tick()
	return Prefix + strconv.FormatInt(millis, 10) + "_" + g.suffix()
}

func (g *Generator) tick() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis < g.last {
		millis = g.last
	}
	g.last = millis
	return millis
}

func (g *Generator) suffix() string {
	var (
		u   uuid.UUID
		err error
	)
	if g.rand != nil {
		u, err = uuid.NewRandomFromReader(g.rand)
	} else {
		u, err = uuid.NewRandom()
	}
	if err != nil {
		// Exhausted or broken reader: fall back to the process-wide source.
		u = uuid.New()
	}

	n := binary.BigEndian.Uint64(u[:8]) ^ binary.BigEndian.Uint64(u[8:])
	s := strconv.FormatUint(n%suffixSpace, 36)
	if len(s) < suffixLen {
		s = strings.Repeat("0", suffixLen-len(s)) + s
	}
	return s
}
