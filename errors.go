package strhelp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that the UUID string or binary form is malformed
	ErrInvalidFormat = errors.New("strhelp: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length.
	// It wraps ErrInvalidFormat.
	ErrInvalidLength = fmt.Errorf("%w: expected 16 bytes", ErrInvalidFormat)

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("strhelp: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("strhelp: invalid UUID variant (expected RFC 4122)")

	// ErrInvalidArgument indicates a negative length or an unknown charset name
	ErrInvalidArgument = errors.New("strhelp: invalid argument")

	// ErrUnsupportedEncoding indicates an unknown or unsupported text encoding name
	ErrUnsupportedEncoding = errors.New("strhelp: unsupported encoding")

	// ErrComplexity is wrapped by every rule violation reported by CheckComplexity
	ErrComplexity = errors.New("strhelp: complexity requirement not met")
)
