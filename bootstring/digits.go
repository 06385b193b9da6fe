package bootstring

import (
	"fmt"

	"github.com/arloliu/puny/errs"
)

// AppendDelta appends the generalized variable-length integer representation of q
// to dst and returns the extended slice.
//
// The group is self-terminating: every digit except the last is at least the
// threshold for its position, and the last one is below it.
func (p Params) AppendDelta(dst []byte, q, bias uint32) []byte {
	for k := p.Base; ; k += p.Base {
		t := p.Threshold(k, bias)
		if q < t {
			break
		}
		dst = append(dst, p.digitSymbol(t+(q-t)%(p.Base-t)))
		q = (q - t) / (p.Base - t)
	}

	return append(dst, p.digitSymbol(q))
}

// ReadDelta decodes one digit group of src starting at pos and adds it to start.
//
// It returns the new accumulator value and the position just past the group.
// Passing the running accumulator as start lets overflow be detected on the sum
// rather than on the group alone; pass 0 to decode a standalone group.
func (p Params) ReadDelta(src string, pos int, bias, start uint32) (uint32, int, error) {
	value, w := start, uint32(1)
	// the weight of a terminating zero digit may exceed 32 bits harmlessly
	wideWeight := false
	for k := p.Base; ; k += p.Base {
		if pos >= len(src) {
			return 0, pos, fmt.Errorf("%w: unterminated digit group", errs.ErrMalformedInput)
		}

		c := src[pos]
		digit := p.digitValue(c)
		if digit >= p.Base {
			return 0, pos, fmt.Errorf("%w: invalid digit %q at offset %d", errs.ErrMalformedInput, c, pos)
		}
		pos++

		if digit != 0 {
			inc, ok := mulUint32(digit, w)
			if !ok || wideWeight {
				return 0, pos, fmt.Errorf("%w: digit group weight", errs.ErrOverflow)
			}
			if value, ok = addUint32(value, inc); !ok {
				return 0, pos, fmt.Errorf("%w: digit group value", errs.ErrOverflow)
			}
		}

		t := p.Threshold(k, bias)
		if digit < t {
			return value, pos, nil
		}

		var ok bool
		if w, ok = mulUint32(w, p.Base-t); !ok {
			wideWeight = true
		}
	}
}
