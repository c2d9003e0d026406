package strhelp

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ComplexityRules describes password-style requirements. A zero minimum
// disables that check; a zero MaxLength means no upper bound.
type ComplexityRules struct {
	MinLength  int
	MaxLength  int
	MinLower   int
	MinUpper   int
	MinDigits  int
	MinSpecial int
}

// HasComplexity reports whether s satisfies every rule. Length is counted in
// characters; lower, upper and digits are the ASCII classes and every other
// character counts as special.
//
//	HasComplexity("Abc123!", 6, 0, 1, 1, 1, 1) // true
func HasComplexity(s string, minLen, maxLen, minLower, minUpper, minDigits, minSpecial int) bool {
	return CheckComplexity(s, ComplexityRules{
		MinLength:  minLen,
		MaxLength:  maxLen,
		MinLower:   minLower,
		MinUpper:   minUpper,
		MinDigits:  minDigits,
		MinSpecial: minSpecial,
	}) == nil
}

// CheckComplexity returns nil when s satisfies rules, or a multi-error with
// one entry per violated rule. Every entry wraps ErrComplexity.
func CheckComplexity(s string, rules ComplexityRules) error {
	var length, lower, upper, digit, special int
	for _, r := range s {
		length++
		switch {
		case 'a' <= r && r <= 'z':
			lower++
		case 'A' <= r && r <= 'Z':
			upper++
		case '0' <= r && r <= '9':
			digit++
		default:
			special++
		}
	}

	var result *multierror.Error
	if length < rules.MinLength {
		result = multierror.Append(result,
			fmt.Errorf("%w: length %d is below minimum %d", ErrComplexity, length, rules.MinLength))
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		result = multierror.Append(result,
			fmt.Errorf("%w: length %d exceeds maximum %d", ErrComplexity, length, rules.MaxLength))
	}

	classes := []struct {
		name string
		got  int
		min  int
	}{
		{"lowercase", lower, rules.MinLower},
		{"uppercase", upper, rules.MinUpper},
		{"digit", digit, rules.MinDigits},
		{"special", special, rules.MinSpecial},
	}
	for _, c := range classes {
		if c.min > 0 && c.got < c.min {
			result = multierror.Append(result,
				fmt.Errorf("%w: %d %s characters, need %d", ErrComplexity, c.got, c.name, c.min))
		}
	}

	return result.ErrorOrNil()
}
