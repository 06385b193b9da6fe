package bootstring

import (
	"fmt"
	"math"

	"github.com/arloliu/puny/errs"
)

// MaxCodePoint is the largest Unicode scalar value.
const MaxCodePoint = 0x10FFFF

// digitSymbols maps a digit value to its ASCII symbol.
const digitSymbols = "abcdefghijklmnopqrstuvwxyz0123456789"

// Params holds the parameters of a Bootstring instance.
//
// Punycode is the instance used for internationalized domain names; other
// instances are mostly useful for experimentation and testing.
type Params struct {
	Base        uint32 // number of digit symbols, at most 36
	TMin        uint32 // lower clamp of the threshold function
	TMax        uint32 // upper clamp of the threshold function
	Skew        uint32 // bias adaptation skew
	Damp        uint32 // damping factor applied to the first delta
	InitialBias uint32 // bias at the start of a pass
	InitialN    uint32 // first extended code point; basic code points are below it
	Delimiter   byte   // separates the basic prefix from the digit groups
}

// Punycode is the Bootstring parameter set defined for IDNA.
var Punycode = Params{
	Base:        36,
	TMin:        1,
	TMax:        26,
	Skew:        38,
	Damp:        700,
	InitialBias: 72,
	InitialN:    128,
	Delimiter:   '-',
}

// Validate checks the parameter constraints required for the encoder to terminate
// and for every encoding to be decodable.
func (p Params) Validate() error {
	switch {
	case p.Base < 2 || p.Base > uint32(len(digitSymbols)):
		return fmt.Errorf("%w: base %d out of range [2, %d]", errs.ErrInvalidParams, p.Base, len(digitSymbols))
	case p.TMin < 1 || p.TMin > p.TMax || p.TMax > p.Base-1:
		return fmt.Errorf("%w: require 1 <= tmin(%d) <= tmax(%d) <= base-1(%d)",
			errs.ErrInvalidParams, p.TMin, p.TMax, p.Base-1)
	case p.Skew < 1:
		return fmt.Errorf("%w: skew must be at least 1", errs.ErrInvalidParams)
	case p.Damp < 2:
		return fmt.Errorf("%w: damp must be at least 2", errs.ErrInvalidParams)
	case p.InitialBias%p.Base > p.Base-p.TMin:
		return fmt.Errorf("%w: initial bias %d mod base exceeds base-tmin", errs.ErrInvalidParams, p.InitialBias)
	case p.InitialN < 1 || p.InitialN > 0x80:
		return fmt.Errorf("%w: initial n %d out of range [1, 128]", errs.ErrInvalidParams, p.InitialN)
	case uint32(p.Delimiter) >= p.InitialN:
		return fmt.Errorf("%w: delimiter %q is not a basic code point", errs.ErrInvalidParams, p.Delimiter)
	case p.digitValue(p.Delimiter) < p.Base:
		return fmt.Errorf("%w: delimiter %q is a digit symbol", errs.ErrInvalidParams, p.Delimiter)
	}

	for d := uint32(0); d < p.Base; d++ {
		if sym := p.digitSymbol(d); uint32(sym) >= p.InitialN {
			return fmt.Errorf("%w: digit symbol %q is not a basic code point", errs.ErrInvalidParams, sym)
		}
	}

	return nil
}

// IsBasic reports whether r is a basic code point for this parameter set.
func (p Params) IsBasic(r rune) bool {
	return r >= 0 && uint32(r) < p.InitialN
}

// Threshold returns t(k, bias), clamped to [TMin, TMax].
//
// k is the digit position weight base, advanced by Base for every digit of a group.
func (p Params) Threshold(k, bias uint32) uint32 {
	switch {
	case k <= bias:
		return p.TMin
	case k >= bias+p.TMax:
		return p.TMax
	default:
		return k - bias
	}
}

// digitSymbol returns the ASCII symbol for digit d. d must be below Base.
func (p Params) digitSymbol(d uint32) byte {
	return digitSymbols[d]
}

// digitValue returns the digit represented by c, or Base if c is not a digit symbol.
// Upper case letters decode to the same digits as lower case ones.
func (p Params) digitValue(c byte) uint32 {
	var d uint32
	switch {
	case c >= 'a' && c <= 'z':
		d = uint32(c - 'a')
	case c >= 'A' && c <= 'Z':
		d = uint32(c - 'A')
	case c >= '0' && c <= '9':
		d = uint32(c-'0') + 26
	default:
		return p.Base
	}

	if d >= p.Base {
		return p.Base
	}

	return d
}

// maxGroupDigits returns the largest number of digits a group encoding a
// 32-bit delta can have, or 0 if groups are unbounded.
//
// Every digit but the last is at least the threshold, so a group of d digits
// is worth at least (Base-TMax)^(d-2).
func (p Params) maxGroupDigits() int {
	r := uint64(p.Base - p.TMax)
	if r < 2 {
		return 0
	}

	d := 2
	for w := r; w <= math.MaxUint32; w *= r {
		d++
	}

	return d
}

// EncodedLengthBound returns the longest encoding of a label of n code points,
// capped at MaxEncodedLengthLimit.
func (p Params) EncodedLengthBound(n int) int {
	d := p.maxGroupDigits()
	if d == 0 || n > (MaxEncodedLengthLimit-1)/d {
		return MaxEncodedLengthLimit
	}

	// basic code points take one byte, plus the delimiter
	return n*d + 1
}
