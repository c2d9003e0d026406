package strhelp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugOption configures KebabCase and SnakeCase.
type SlugOption func(*slugOptions)

type slugOptions struct {
	lowercase bool
}

// WithLowercase controls whether the slug is lower-cased. KebabCase keeps the
// input's case by default, SnakeCase lower-cases by default.
func WithLowercase(lowercase bool) SlugOption {
	return func(o *slugOptions) {
		o.lowercase = lowercase
	}
}

// KebabCase converts s to a URL-friendly slug: non-ASCII characters are
// transliterated, every run of non-alphanumerics becomes a single '-', and
// leading and trailing hyphens are trimmed.
func KebabCase(s string, opts ...SlugOption) string {
	return slugify(s, "-", false, opts)
}

// SnakeCase is KebabCase with '_' as the separator, lower-cased unless
// WithLowercase(false) is given.
//
//	SnakeCase("Hello, World!") // "hello_world"
func SnakeCase(s string, opts ...SlugOption) string {
	return slugify(s, "_", true, opts)
}

func slugify(s, sep string, lowercase bool, opts []SlugOption) string {
	o := slugOptions{lowercase: lowercase}
	for _, opt := range opts {
		opt(&o)
	}

	// The pattern matches whole runs, so separators come out collapsed.
	s = nonAlnum.ReplaceAllString(Transliterate(s), sep)
	s = strings.Trim(s, sep)

	if o.lowercase {
		return Lowercase(s)
	}
	return s
}

// letters with no compatibility decomposition to an ASCII base
var ligatures = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// Transliterate folds s to ASCII: diacritics are stripped ("é" becomes "e"),
// compatibility forms are unfolded ("ﬁ" becomes "fi", "Ａ" becomes "A"),
// common ligatures are spelled out, and anything else outside ASCII is dropped.
func Transliterate(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, ligatures.Replace(s))
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf {
			return r
		}
		return -1
	}, folded)
}
