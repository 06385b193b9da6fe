// Package errs defines the sentinel errors returned by the puny packages.
//
// Errors are wrapped with additional context at the call site, so callers
// should compare with errors.Is rather than with ==:
//
//	if _, err := puny.Decode(label); errors.Is(err, errs.ErrMalformedInput) {
//	    // label is not a valid Punycode string
//	}
package errs

import "errors"

// Codec errors.
var (
	// ErrMalformedInput is returned when the input contains a character outside the
	// digit alphabet, a digit group never terminates, or a code point is a surrogate
	// or above U+10FFFF.
	ErrMalformedInput = errors.New("punycode: malformed input")

	// ErrOverflow is returned when an intermediate value does not fit in 32 bits.
	ErrOverflow = errors.New("punycode: arithmetic overflow")

	// ErrResourceLimit is returned when the input exceeds the configured maximum length.
	ErrResourceLimit = errors.New("punycode: input exceeds resource limit")

	// ErrInvalidParams is returned for invalid Bootstring parameters or options.
	ErrInvalidParams = errors.New("punycode: invalid parameters")
)

// Label set errors.
var (
	ErrDuplicateLabel = errors.New("labelset: label already added")
	ErrLabelCollision = errors.New("labelset: ACE form collides with an existing label")
	ErrLabelTooLong   = errors.New("labelset: ACE label too long")
	ErrTooManyLabels  = errors.New("labelset: too many labels")
)

// Snapshot errors.
var (
	ErrInvalidHeaderSize  = errors.New("labelset: invalid header size")
	ErrInvalidMagic       = errors.New("labelset: invalid magic")
	ErrUnsupportedVersion = errors.New("labelset: unsupported version")
	ErrChecksumMismatch   = errors.New("labelset: checksum mismatch")
	ErrInvalidPayload     = errors.New("labelset: invalid payload")
)
