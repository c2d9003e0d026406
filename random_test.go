package strhelp

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCharsets = []Charset{
	CharsetAll,
	CharsetNonzero,
	CharsetNumeric,
	CharsetAlpha,
	CharsetAlphaLower,
	CharsetAlphaUpper,
	CharsetAlphanumeric,
	CharsetAlphanumericLower,
	CharsetAlphanumericUpper,
}

func TestRandom_Numeric(t *testing.T) {
	s, err := Random(10, CharsetNumeric)
	require.NoError(t, err)
	assert.Len(t, s, 10)
	assert.Regexp(t, `^[0-9]{10}$`, s)
}

func TestRandom_StaysInCharset(t *testing.T) {
	for _, cs := range allCharsets {
		t.Run(cs.String(), func(t *testing.T) {
			s, err := Random(500, cs)
			require.NoError(t, err)
			require.Len(t, s, 500)

			chars := cs.Chars()
			for _, r := range s {
				assert.True(t, strings.ContainsRune(chars, r), "%q not in %s", r, cs)
			}
		})
	}

	s, err := Random(500, CharsetNonzero)
	require.NoError(t, err)
	assert.NotContains(t, s, "0")
}

func TestRandom_Lengths(t *testing.T) {
	s, err := Random(0, CharsetAll)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = Random(-1, CharsetAll)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRandomFrom_Deterministic(t *testing.T) {
	a, err := RandomFrom(rand.New(rand.NewPCG(1, 2)), 32, CharsetAlphanumeric)
	require.NoError(t, err)
	b, err := RandomFrom(rand.New(rand.NewPCG(1, 2)), 32, CharsetAlphanumeric)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCharset_Chars(t *testing.T) {
	assert.Equal(t, "0123456789", CharsetNumeric.Chars())
	assert.Equal(t, "123456789", CharsetNonzero.Chars())
	assert.Equal(t, CharsetAll.Chars(), Charset(99).Chars())

	all := CharsetAll.Chars()
	for _, cs := range allCharsets {
		for _, r := range cs.Chars() {
			assert.True(t, strings.ContainsRune(all, r), "%q from %s missing in all", r, cs)
		}
	}
	assert.NotContains(t, all, "`")
	assert.NotContains(t, all, "'")
	assert.NotContains(t, all, `"`)
}

func TestParseCharset(t *testing.T) {
	for _, cs := range allCharsets {
		parsed, err := ParseCharset(cs.String())
		require.NoError(t, err)
		assert.Equal(t, cs, parsed)
	}

	parsed, err := ParseCharset(" Alpha-Lower ")
	require.NoError(t, err)
	assert.Equal(t, CharsetAlphaLower, parsed)

	_, err = ParseCharset("emoji")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, CharsetAll, LookupCharset("emoji"))
	assert.Equal(t, "Charset(99)", Charset(99).String())

	var cs Charset
	require.NoError(t, cs.UnmarshalText([]byte("numeric")))
	assert.Equal(t, CharsetNumeric, cs)
	text, err := cs.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "numeric", string(text))
}

func TestUID(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 32, 33} {
		s, err := UID(n)
		require.NoError(t, err)
		assert.Len(t, s, n)
		if n > 0 {
			assert.Regexp(t, `^[0-9a-f]+$`, s)
		}
	}

	a, err := UID(32)
	require.NoError(t, err)
	b, err := UID(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = UID(-4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
