package strhelp

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The UUID is a 128-bit (16 byte) value that is used to uniquely identify information.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	_
	VersionTimeSorted // UUIDv7
	VersionCustom     // UUIDv8
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// hyphen positions in the canonical 36-character form
var hyphens = [4]int{8, 13, 18, 23}

// groups maps each hex group of the canonical form to its byte range.
var groups = [5]struct{ start, lo, hi int }{
	{0, 0, 4},
	{9, 4, 6},
	{14, 6, 8},
	{19, 8, 10},
	{24, 10, 16},
}

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex writes the 8-4-4-4-12 grouped form of u into dst
func encodeHex(dst []byte, u UUID) {
	for _, i := range hyphens {
		dst[i] = '-'
	}
	for _, g := range groups {
		hex.Encode(dst[g.start:], u[g.lo:g.hi])
	}
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func Parse(s string) (UUID, error) {
	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return parseStrict(s)
}

// parseStrict accepts only the canonical grouped form or 32 bare hex digits.
func parseStrict(s string) (UUID, error) {
	var uuid UUID

	switch len(s) {
	case 36:
		for _, i := range hyphens {
			if s[i] != '-' {
				return uuid, ErrInvalidFormat
			}
		}
		for _, g := range groups {
			if err := decodeHexSegment(uuid[g.lo:g.hi], s[g.start:g.start+2*(g.hi-g.lo)]); err != nil {
				return uuid, err
			}
		}
		return uuid, nil
	case 32:
		if err := decodeHexSegment(uuid[:], s); err != nil {
			return uuid, err
		}
		return uuid, nil
	}

	return uuid, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("strhelp: Parse(%q): %v", s, err))
	}
	return uuid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// IsValidUUID reports whether s is a canonical 36-character UUID with a
// version nibble between 1 and 5 and an RFC 4122 variant nibble (8, 9, a or b).
// Hex digits are matched case-insensitively.
//
// Version 7 identifiers are rejected; use Validate for the full RFC 9562 range.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		case 14:
			if s[i] < '1' || s[i] > '5' {
				return false
			}
		case 19:
			switch s[i] {
			case '8', '9', 'a', 'b', 'A', 'B':
			default:
				return false
			}
		default:
			if !isHexDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

// Validate parses s in canonical form and checks that it carries the RFC 4122
// variant and a version between 1 and 8.
func Validate(s string) error {
	if len(s) != 36 {
		return ErrInvalidFormat
	}
	uuid, err := parseStrict(s)
	if err != nil {
		return err
	}
	if v := uuid.Version(); v < VersionTimeBased || v > VersionCustom {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}
	if uuid.Variant() != VariantRFC4122 {
		return ErrInvalidVariant
	}
	return nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// BinToUUID converts the raw 16-byte form into the canonical grouped string.
func BinToUUID(b []byte) (string, error) {
	uuid, err := FromBytes(b)
	if err != nil {
		return "", err
	}
	return uuid.String(), nil
}

// UUIDToBin converts a canonical UUID string (or its 32 hex digits without
// hyphens) into the raw 16-byte form. Malformed input yields ErrInvalidFormat.
func UUIDToBin(s string) ([]byte, error) {
	uuid, err := parseStrict(s)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 16)
	copy(b, uuid[:])
	return b, nil
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText emits the canonical form.
func (u UUID) MarshalText() ([]byte, error) {
	buf := make([]byte, 36)
	encodeHex(buf, u)
	return buf, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// 16-byte values are taken as the binary form, anything else is parsed as text.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		switch len(src) {
		case 0:
			return nil
		case 16:
			return u.UnmarshalBinary(src)
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("strhelp: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare orders UUIDs bytewise, which for v7 is generation order.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u[:], other[:])
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
