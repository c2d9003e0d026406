package strhelp

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
)

// Random returns length characters drawn independently and uniformly, with
// replacement, from cs. It uses the math/rand/v2 global source and is not
// suitable for secrets; use UID for those.
func Random(length int, cs Charset) (string, error) {
	return RandomFrom(nil, length, cs)
}

// RandomFrom is Random with an explicit source. A nil r uses the
// concurrency-safe global source; a caller-supplied *rand.Rand must not be
// shared between goroutines.
func RandomFrom(r *rand.Rand, length int, cs Charset) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: length %d", ErrInvalidArgument, length)
	}

	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	b := make([]byte, length)
	switch cs {
	case CharsetNumeric:
		for i := range b {
			b[i] = '0' + byte(intN(10))
		}
	case CharsetNonzero:
		for i := range b {
			b[i] = '1' + byte(intN(9))
		}
	default:
		pool := cs.Chars()
		for i := range b {
			b[i] = pool[intN(len(pool))]
		}
	}
	return string(b), nil
}

// UID returns a cryptographically secure identifier of exactly length
// lowercase hex digits.
func UID(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: length %d", ErrInvalidArgument, length)
	}
	buf := make([]byte, (length+1)/2)
	if _, err := cryptorand.Read(buf); err != nil {
		return "", fmt.Errorf("strhelp: uid entropy: %w", err)
	}
	return hex.EncodeToString(buf)[:length], nil
}
