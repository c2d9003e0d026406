package strhelp

import (
	"fmt"
	"strings"
)

// Charset names a fixed set of characters that Random samples from.
type Charset int

const (
	CharsetAll Charset = iota
	CharsetNonzero
	CharsetNumeric
	CharsetAlpha
	CharsetAlphaLower
	CharsetAlphaUpper
	CharsetAlphanumeric
	CharsetAlphanumericLower
	CharsetAlphanumericUpper
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	nonzero      = "123456789"

	// Symbols excludes backtick and both quote characters.
	Symbols = `-=/\[];,.~!@#$%^&*()_+{}|:?<>`
)

var charsetNames = map[Charset]string{
	CharsetAll:               "all",
	CharsetNonzero:           "nonzero",
	CharsetNumeric:           "numeric",
	CharsetAlpha:             "alpha",
	CharsetAlphaLower:        "alpha_lower",
	CharsetAlphaUpper:        "alpha_upper",
	CharsetAlphanumeric:      "alphanumeric",
	CharsetAlphanumericLower: "alphanumeric_lower",
	CharsetAlphanumericUpper: "alphanumeric_upper",
}

// Chars returns the characters in the set. Values outside the declared
// constants map to the CharsetAll characters.
func (c Charset) Chars() string {
	switch c {
	case CharsetNonzero:
		return nonzero
	case CharsetNumeric:
		return digits
	case CharsetAlpha:
		return lowerLetters + upperLetters
	case CharsetAlphaLower:
		return lowerLetters
	case CharsetAlphaUpper:
		return upperLetters
	case CharsetAlphanumeric:
		return lowerLetters + upperLetters + digits
	case CharsetAlphanumericLower:
		return lowerLetters + digits
	case CharsetAlphanumericUpper:
		return upperLetters + digits
	default:
		return lowerLetters + upperLetters + digits + Symbols
	}
}

func (c Charset) String() string {
	if name, ok := charsetNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Charset(%d)", int(c))
}

// ParseCharset maps a charset name ("alpha", "alphanumeric_lower", ...) to its
// Charset. Hyphens are accepted in place of underscores and case is ignored.
func ParseCharset(name string) (Charset, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for c, n := range charsetNames {
		if n == key {
			return c, nil
		}
	}
	return CharsetAll, fmt.Errorf("%w: unknown charset %q", ErrInvalidArgument, name)
}

// LookupCharset is ParseCharset without the error: unknown names fall back to
// CharsetAll.
func LookupCharset(name string) Charset {
	c, _ := ParseCharset(name)
	return c
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseCharset.
func (c *Charset) UnmarshalText(text []byte) error {
	parsed, err := ParseCharset(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Charset) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
