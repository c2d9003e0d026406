package strhelp

import (
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	s, err := NewULID()
	require.NoError(t, err)
	assert.Len(t, s, ulid.EncodedSize)

	id, err := ulid.ParseStrict(s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ulid.Time(id.Time()), time.Minute)
}

func TestULIDGenerator_MonotonicWithinMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	gen := NewULIDGenerator()
	gen.now = func() time.Time { return fixed }

	prev, err := gen.New()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		next, err := gen.New()
		require.NoError(t, err)
		require.Equal(t, 1, next.Compare(prev), "ULID %d not increasing", i)
		require.Equal(t, uint64(fixed.UnixMilli()), next.Time())
		prev = next
	}
}

func TestULIDGenerator_ClockBackwards(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	gen := NewULIDGenerator()
	gen.now = func() time.Time { return now }

	ahead, err := gen.New()
	require.NoError(t, err)

	now = now.Add(-time.Hour)
	behind, err := gen.New()
	require.NoError(t, err)

	assert.Equal(t, 1, behind.Compare(ahead), "ULID after clock moved back sorts before its predecessor")
	assert.Equal(t, ahead.Time(), behind.Time())
}

func TestULIDGenerator_Concurrent(t *testing.T) {
	gen := NewULIDGenerator()
	const goroutines, perGoroutine = 8, 200

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[ulid.ULID]bool)
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				id, err := gen.New()
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
}
