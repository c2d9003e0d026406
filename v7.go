package strhelp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	gouuid "github.com/google/uuid"
)

// maxTimestamp is the largest millisecond count the 48-bit field holds.
const maxTimestamp = 1<<48 - 1

// Generator is a thread-safe UUID generator. For UUIDv7 it owns the last
// millisecond timestamp it used, and bumps the next one by at least 1ms when
// the clock has not advanced, so that identifiers from one generator sort
// in creation order even under concurrent callers or a stalled clock.
type Generator struct {
	mu            sync.Mutex
	lastTimestamp uint64
	randReader    io.Reader
	now           func() time.Time
}

// NewGenerator creates a new generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        time.Now,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
		now:        time.Now,
	}
}

// NewGeneratorWithClock creates a new generator reading time from clock
// instead of time.Now.
func NewGeneratorWithClock(clock func() time.Time) *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        clock,
	}
}

// New generates a new UUIDv7 with the current timestamp.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates a new UUIDv7 treating t as the current clock reading.
// If t is not later than the last timestamp issued by g, the last timestamp
// plus one millisecond is used instead. Timestamps past the 48-bit field fail
// with ErrInvalidArgument and leave g unchanged.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	var uuid UUID

	var timestamp uint64
	if ms := t.UnixMilli(); ms > 0 {
		timestamp = uint64(ms)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 74 random bits: rand_a (12) and rand_b (62) around the version and variant
	if _, err := io.ReadFull(g.randReader, uuid[6:]); err != nil {
		return Nil, fmt.Errorf("strhelp: v7 entropy: %w", err)
	}

	if g.lastTimestamp >= timestamp {
		timestamp = g.lastTimestamp + 1
	}
	if timestamp > maxTimestamp {
		return Nil, fmt.Errorf("%w: v7 timestamp %d exceeds 48 bits", ErrInvalidArgument, timestamp)
	}
	g.lastTimestamp = timestamp

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], timestamp)
	copy(uuid[0:6], ts[2:8])

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // Version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant 10xx

	return uuid, nil
}

// NewV4 generates a random UUIDv4 from the generator's random source.
func (g *Generator) NewV4() (UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := gouuid.NewRandomFromReader(g.randReader)
	if err != nil {
		return Nil, fmt.Errorf("strhelp: v4 entropy: %w", err)
	}
	return UUID(u), nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = strhelp.Must(generator.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator backs the package-level New* functions
var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 using the default generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// NewV7 is New under a name that states the version.
func NewV7() (UUID, error) {
	return defaultGenerator.New()
}

// NewV4 generates a new UUIDv4 from crypto/rand.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Time returns the timestamp as a time.Time for UUIDv7
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeSorted {
		return time.Time{}
	}
	return time.UnixMilli(u.Timestamp())
}
