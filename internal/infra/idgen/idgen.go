// Package idgen generates job IDs.
package idgen

import (
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/oklog/ulid"
)

// Ensure ULID implements domain.IDGenerator.
var _ domain.IDGenerator = (*ULID)(nil)

// ULID generates lowercase, lexically sortable IDs. IDs from one generator are strictly
// increasing, even within the same millisecond.
type ULID struct {
	entropy io.Reader
	now     func() time.Time
	mu      sync.Mutex
}

// New creates a ULID generator seeded from the current time.
func New() *ULID {
	return NewWithSource(time.Now, rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint:gosec // IDs need uniqueness, not secrecy
}

// NewWithSource creates a generator with an explicit clock and randomness source.
func NewWithSource(now func() time.Time, r io.Reader) *ULID {
	return &ULID{
		entropy: ulid.Monotonic(r, 0),
		now:     now,
	}
}

// NewID returns a fresh ID.
func (g *ULID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String())
}
