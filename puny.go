// Package puny converts domain name labels between Unicode and Punycode, the
// ASCII-Compatible Encoding (ACE) of RFC 3492 used by internationalized
// domain names.
//
// The functions in this package work on a single label. Splitting a domain
// name on dots and applying IDNA mapping rules (case folding, normalization,
// bidi checks) are left to the caller.
//
// # Basic Usage
//
// Bare Punycode, without the ACE prefix:
//
//	ace, err := puny.EncodeString("münchen") // "mnchen-3ya"
//	label, err := puny.DecodeString("mnchen-3ya") // "münchen"
//
// Labels with the "xn--" prefix:
//
//	ace, err := puny.ToASCII("münchen")        // "xn--mnchen-3ya"
//	label, err := puny.ToUnicode("xn--mnchen-3ya") // "münchen"
//	label, err = puny.ToUnicode("example")       // "example", unchanged
//
// # Errors
//
// Failures wrap one of the sentinel errors in package errs:
//   - errs.ErrMalformedInput: invalid characters, unterminated digit groups,
//     surrogates or code points above U+10FFFF
//   - errs.ErrOverflow: intermediate values exceed 32 bits
//   - errs.ErrResourceLimit: a label over the codec limit (1024 code points by default)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bootstring
// package, which implements the generalized algorithm and allows custom
// parameters and limits. The labelset package builds on it to convert, index
// and persist batches of labels.
package puny

import (
	"fmt"

	"github.com/arloliu/puny/bootstring"
)

// ACEPrefix marks a label encoded with Punycode.
const ACEPrefix = bootstring.DefaultACEPrefix

var defaultCodec = mustNewCodec()

func mustNewCodec() *bootstring.Codec {
	c, err := NewCodec()
	if err != nil {
		// Punycode parameters are constant and valid
		panic(fmt.Sprintf("puny: failed to create default codec: %v", err))
	}

	return c
}

// NewCodec creates a Punycode codec with custom options.
//
// Example:
//
//	codec, err := puny.NewCodec(bootstring.WithMaxInputLength(63))
func NewCodec(opts ...bootstring.CodecOption) (*bootstring.Codec, error) {
	return bootstring.NewCodec(bootstring.Punycode, opts...)
}

// DefaultCodec returns the codec used by the package-level functions.
func DefaultCodec() *bootstring.Codec {
	return defaultCodec
}

// Encode returns the Punycode encoding of label without the ACE prefix.
// A label made only of ASCII code points is returned unchanged.
func Encode(label []rune) (string, error) {
	return defaultCodec.Encode(label)
}

// AppendEncode appends the Punycode encoding of label to dst.
func AppendEncode(dst []byte, label []rune) ([]byte, error) {
	return defaultCodec.AppendEncode(dst, label)
}

// EncodeString is like Encode but takes the label as a UTF-8 string.
func EncodeString(label string) (string, error) {
	return defaultCodec.EncodeString(label)
}

// Decode returns the code points of a Punycode string given without the ACE prefix.
func Decode(label string) ([]rune, error) {
	return defaultCodec.Decode(label)
}

// DecodeString is like Decode but returns a UTF-8 string.
func DecodeString(label string) (string, error) {
	return defaultCodec.DecodeString(label)
}

// ToASCII converts a Unicode label to its ACE form.
// ASCII labels are returned unchanged, others are encoded and prefixed with "xn--".
func ToASCII(label string) (string, error) {
	return defaultCodec.ToASCII(label)
}

// ToUnicode converts an ACE label to Unicode.
// Labels without the "xn--" prefix are returned unchanged.
func ToUnicode(label string) (string, error) {
	return defaultCodec.ToUnicode(label)
}

// IsACE reports whether label starts with the "xn--" prefix, ignoring case.
func IsACE(label string) bool {
	return defaultCodec.IsACE(label)
}
