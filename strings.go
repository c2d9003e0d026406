package strhelp

import "strings"

// Has reports whether needle occurs in s. The match is case-sensitive and byte-exact.
func Has(s, needle string) bool {
	return strings.Contains(s, needle)
}

// HasSpace reports whether s contains an ASCII space.
func HasSpace(s string) bool {
	return strings.IndexByte(s, ' ') >= 0
}

// StartsWith reports whether s begins with prefix. An empty prefix always matches.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. An empty suffix always matches.
func EndsWith(s, suffix string) bool {
	return suffix == "" || strings.HasSuffix(s, suffix)
}

// StartWith returns s with prefix prepended unless s already starts with it.
// Applying it twice gives the same result as applying it once.
func StartWith(s, prefix string) string {
	if StartsWith(s, prefix) {
		return s
	}
	return prefix + s
}

// EndWith returns s with suffix appended unless s already ends with it.
func EndWith(s, suffix string) string {
	if EndsWith(s, suffix) {
		return s
	}
	return s + suffix
}
