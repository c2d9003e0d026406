package strhelp

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator produces lexicographically sortable ULIDs (48-bit ms
// timestamp + 80 bits of entropy, Crockford base32). Within the same
// millisecond the entropy is incremented rather than redrawn. A clock that
// steps backwards is held at the last timestamp used, so values from one
// generator are strictly increasing.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
	lastMs  uint64
}

// NewULIDGenerator creates a ULIDGenerator seeded from crypto/rand
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// New returns the next ULID.
func (g *ULIDGenerator) New() (ulid.ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(g.now())
	if ms < g.lastMs {
		ms = g.lastMs
	}

	id, err := ulid.New(ms, g.entropy)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("strhelp: ulid: %w", err)
	}
	g.lastMs = ms
	return id, nil
}

var defaultULIDGenerator = NewULIDGenerator()

// NewULID returns a new ULID string from the package-level generator.
func NewULID() (string, error) {
	id, err := defaultULIDGenerator.New()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
