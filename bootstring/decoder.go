package bootstring

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/internal/pool"
)

// Decode returns the code points represented by the Bootstring string s.
// s must not carry an ACE prefix.
//
// Everything before the last delimiter is copied verbatim and must consist of
// basic code points; the rest must be digit groups. Digit symbols are accepted
// in either case.
//
// Errors:
//   - errs.ErrResourceLimit if s is longer than MaxEncodedLength bytes or
//     decodes to more than MaxInputLength code points
//   - errs.ErrMalformedInput for invalid characters, unterminated digit groups,
//     surrogates and code points above U+10FFFF
//   - errs.ErrOverflow if an intermediate value does not fit in 32 bits
func (c *Codec) Decode(s string) ([]rune, error) {
	out, err := c.appendDecode(make([]rune, 0, min(len(s), c.maxInputLength)), s)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeString is like Decode but returns the label as a UTF-8 string.
func (c *Codec) DecodeString(s string) (string, error) {
	if len(s) > c.maxEncodedLength {
		return "", c.limitError(len(s), "encoded bytes", c.maxEncodedLength)
	}

	// every input byte yields at most one code point
	runes, cleanup := pool.GetRuneSlice(min(len(s), c.maxInputLength))
	defer cleanup()

	out, err := c.appendDecode(runes[:0], s)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// appendDecode decodes s, appending the code points to dst. On error dst is
// returned unchanged.
func (c *Codec) appendDecode(dst []rune, s string) ([]rune, error) {
	if len(s) > c.maxEncodedLength {
		return dst, c.limitError(len(s), "encoded bytes", c.maxEncodedLength)
	}

	p := c.params
	out := dst
	start := len(dst)

	pos := 0
	if b := strings.LastIndexByte(s, p.Delimiter); b > 0 {
		if b > c.maxInputLength {
			return dst, c.limitError(b, "code points", c.maxInputLength)
		}
		for i := 0; i < b; i++ {
			if uint32(s[i]) >= p.InitialN {
				return dst, fmt.Errorf("%w: non-basic byte 0x%02x at offset %d", errs.ErrMalformedInput, s[i], i)
			}
			out = append(out, rune(s[i]))
		}
		pos = b + 1
	}

	st := p.NewState(uint32(len(out) - start)) //nolint:gosec
	var i uint32
	first := true
	for pos < len(s) {
		oldi := i

		var err error
		i, pos, err = p.ReadDelta(s, pos, st.Bias, i)
		if err != nil {
			return dst, err
		}

		length := st.Handled + 1
		st.Bias = p.Adapt(i-oldi, length, first)
		first = false

		n, ok := addUint32(st.N, i/length)
		if !ok {
			return dst, fmt.Errorf("%w: code point value", errs.ErrOverflow)
		}
		st.N = n
		i %= length

		if st.N > MaxCodePoint || isSurrogate(st.N) {
			return dst, fmt.Errorf("%w: decoded invalid code point 0x%X", errs.ErrMalformedInput, st.N)
		}

		if int(length) > c.maxInputLength {
			return dst, c.limitError(int(length), "code points", c.maxInputLength)
		}

		out = slices.Insert(out, start+int(i), rune(st.N))
		st.Handled++
		i++
	}

	return out, nil
}
