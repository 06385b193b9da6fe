package bootstring

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/internal/pool"
)

// Encode returns the Bootstring encoding of label, without any ACE prefix.
//
// A label made only of basic code points is returned unchanged, without a
// trailing delimiter.
func (c *Codec) Encode(label []rune) (string, error) {
	buf := pool.GetLabelBuffer()
	defer pool.PutLabelBuffer(buf)

	out, err := c.AppendEncode(buf.B, label)
	if err != nil {
		return "", err
	}
	buf.B = out

	return string(out), nil
}

// EncodeString is like Encode but takes the label as a UTF-8 string.
//
// Returns an error wrapping errs.ErrMalformedInput if s is not valid UTF-8.
func (c *Codec) EncodeString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: label is not valid UTF-8", errs.ErrMalformedInput)
	}

	count := utf8.RuneCountInString(s)
	if count > c.maxInputLength {
		return "", c.limitError(count, "code points", c.maxInputLength)
	}

	runes, cleanup := pool.GetRuneSlice(count)
	defer cleanup()

	i := 0
	for _, r := range s {
		runes[i] = r
		i++
	}

	return c.Encode(runes)
}

// AppendEncode appends the Bootstring encoding of label to dst and returns the
// extended buffer. On error dst is returned unchanged.
//
// Errors:
//   - errs.ErrResourceLimit if label has more code points than MaxInputLength, or
//     its encoding is longer than MaxEncodedLength
//   - errs.ErrMalformedInput if label holds a negative, surrogate or out-of-range code point
//   - errs.ErrOverflow if the weighted delta does not fit in 32 bits
func (c *Codec) AppendEncode(dst []byte, label []rune) ([]byte, error) {
	if len(label) > c.maxInputLength {
		return dst, c.limitError(len(label), "code points", c.maxInputLength)
	}

	p := c.params
	out := dst

	var basic uint32
	for i, r := range label {
		if !validCodePoint(r) {
			return dst, fmt.Errorf("%w: invalid code point %U at index %d", errs.ErrMalformedInput, r, i)
		}
		if p.IsBasic(r) {
			out = append(out, byte(r))
			basic++
		}
	}

	total := uint32(len(label)) //nolint:gosec
	if basic == total {
		return c.checkEncodedLength(dst, out)
	}
	if basic > 0 {
		out = append(out, p.Delimiter)
	}

	s := p.NewState(basic)
	for s.Handled < total {
		// extended code points are visited by increasing value, ties left to right
		m := uint32(math.MaxUint32)
		for _, r := range label {
			if cp := uint32(r); cp >= s.N && cp < m {
				m = cp
			}
		}

		if !s.addDelta(m-s.N, s.Handled+1) {
			return dst, fmt.Errorf("%w: delta for code point %U", errs.ErrOverflow, rune(m))
		}
		s.N = m
		if encodeStepHook != nil {
			encodeStepHook(s)
		}

		for _, r := range label {
			cp := uint32(r)
			if cp < s.N {
				if !s.incDelta() {
					return dst, fmt.Errorf("%w: delta for code point %U", errs.ErrOverflow, rune(m))
				}
				continue
			}
			if cp > s.N {
				continue
			}

			out = p.AppendDelta(out, s.Delta, s.Bias)
			s.Bias = p.Adapt(s.Delta, s.Handled+1, s.Handled == basic)
			s.Delta = 0
			s.Handled++
		}

		if !s.incDelta() || !s.incN() {
			return dst, fmt.Errorf("%w: advancing past code point %U", errs.ErrOverflow, rune(m))
		}
	}

	return c.checkEncodedLength(dst, out)
}

// checkEncodedLength returns out, or dst and an error if the bytes appended to
// dst exceed the encoded length limit, which Decode would reject.
func (c *Codec) checkEncodedLength(dst, out []byte) ([]byte, error) {
	if n := len(out) - len(dst); n > c.maxEncodedLength {
		return dst, c.limitError(n, "encoded bytes", c.maxEncodedLength)
	}

	return out, nil
}

// encodeStepHook, when set, observes the state each time encoding moves to the
// next extended code point.
var encodeStepHook func(State)

func (c *Codec) limitError(n int, unit string, limit int) error {
	return fmt.Errorf("%w: %d %s, limit %d", errs.ErrResourceLimit, n, unit, limit)
}

func validCodePoint(r rune) bool {
	return r >= 0 && r <= MaxCodePoint && !isSurrogate(uint32(r))
}

func isSurrogate(cp uint32) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}
