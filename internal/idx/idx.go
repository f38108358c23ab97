// Package idx generates record identifiers: ULIDs drawn from a monotonic
// source, so ids sort by creation time and two ids minted by one generator
// within the same millisecond are still distinct and increasing.
package idx

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Generator mints ULIDs from a monotonic entropy source. It is safe for
// concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	last    ulid.ULID
}

// NewGenerator returns a generator with its own entropy source.
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewAt mints an ID stamped with t. If t is earlier than the previous stamp
// (clock stepped back) the previous stamp is reused, so ids never go backwards.
func (g *Generator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(t)
	if g.last.Time() > ms {
		ms = g.last.Time()
	}

	u, err := ulid.New(ms, g.entropy)
	if err != nil {
		// Monotonic entropy overflowed inside one millisecond; move to the next.
		u = ulid.MustNew(ms+1, g.entropy)
	}
	g.last = u
	return ID(u.String())
}

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Compare reports the lexical ordering between a and b (-1, 0, +1).
func Compare(a, b ID) int {
	return strings.Compare(a.String(), b.String())
}
