package strhelp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// CaseMode selects the folding applied by ConvertCase.
type CaseMode int

const (
	CaseLower CaseMode = iota
	CaseUpper
	CaseTitle
)

func (m CaseMode) String() string {
	switch m {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	default:
		return fmt.Sprintf("CaseMode(%d)", int(m))
	}
}

// nonAlnum matches maximal runs of characters outside [A-Za-z0-9]
var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Lowercase converts a UTF-8 string to lower case.
func Lowercase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Uppercase converts a UTF-8 string to upper case.
func Uppercase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TitleCase upper-cases the first letter of every whitespace-delimited word
// and lower-cases everything else.
func TitleCase(s string) string {
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i:]

		j := strings.IndexFunc(s, unicode.IsSpace)
		if j < 0 {
			j = len(s)
		}
		word := s[:j]
		s = s[j:]

		// Leading punctuation is skipped; a leading digit means nothing is capitalized.
		k := strings.IndexFunc(word, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		})
		r, size := utf8.DecodeRuneInString(word[max(k, 0):])
		if k < 0 || !unicode.IsLetter(r) {
			b.WriteString(lower.String(word))
			continue
		}
		b.WriteString(lower.String(word[:k]))
		// full mapping, so "ß" becomes "Ss"
		b.WriteString(title.String(word[k : k+size]))
		b.WriteString(lower.String(word[k+size:]))
	}
	return b.String()
}

// ConvertCase folds s, which is encoded in the named character encoding, and
// returns the result in that same encoding. An empty name means UTF-8. Names
// are IANA charset names or aliases, matched case-insensitively.
//
// Characters whose folded form does not exist in the target encoding are
// replaced with the encoding's replacement character.
func ConvertCase(s string, mode CaseMode, encName string) (string, error) {
	enc, err := lookupEncoding(encName)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return applyCase(s, mode)
	}

	decoded, err := enc.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("strhelp: decode %s: %w", encName, err)
	}
	folded, err := applyCase(decoded, mode)
	if err != nil {
		return "", err
	}
	outEnc := enc
	if canonical, _ := ianaindex.IANA.Name(enc); canonical == "UTF-16" {
		outEnc = utf16Output(s)
	}
	out, err := encoding.ReplaceUnsupported(outEnc.NewEncoder()).String(folded)
	if err != nil {
		return "", fmt.Errorf("strhelp: encode %s: %w", encName, err)
	}
	return out, nil
}

// utf16Output picks the UTF-16 encoder that reproduces the input's byte
// order mark, or writes none when the input had none.
func utf16Output(s string) encoding.Encoding {
	switch {
	case strings.HasPrefix(s, "\xfe\xff"):
		return xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM)
	case strings.HasPrefix(s, "\xff\xfe"):
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM)
	default:
		return xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)
	}
}

func applyCase(s string, mode CaseMode) (string, error) {
	switch mode {
	case CaseLower:
		return Lowercase(s), nil
	case CaseUpper:
		return Uppercase(s), nil
	case CaseTitle:
		return TitleCase(s), nil
	default:
		return "", fmt.Errorf("%w: case mode %v", ErrInvalidArgument, mode)
	}
}

// SupportedEncoding reports whether ConvertCase accepts the encoding name.
func SupportedEncoding(name string) bool {
	_, err := lookupEncoding(name)
	return err == nil
}

// lookupEncoding resolves an IANA name. UTF-8 resolves to nil, meaning no
// transcoding is needed.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf8") {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	if canonical, _ := ianaindex.IANA.Name(enc); canonical == "UTF-8" {
		return nil, nil
	}
	return enc, nil
}

// CamelCase turns every run of characters outside [A-Za-z0-9] into a word
// break and joins the words as lowerCamelCase. Only ASCII letters and digits
// survive, e.g. "my_variable-name 1" becomes "myVariableName1".
func CamelCase(s string) string {
	words := strings.Fields(nonAlnum.ReplaceAllString(s, " "))

	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		w = strings.ToLower(w)
		if i > 0 {
			b.WriteString(strings.ToUpper(w[:1]))
			w = w[1:]
		}
		b.WriteString(w)
	}
	return b.String()
}
