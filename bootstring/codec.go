package bootstring

import (
	"fmt"

	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/internal/options"
)

const (
	// DefaultMaxInputLength bounds the code points of a label: the input of an
	// encode and the output of a decode. DNS labels are far shorter, but the codec
	// does not enforce DNS rules.
	DefaultMaxInputLength = 1024

	// MaxInputLengthLimit is the largest value accepted by WithMaxInputLength.
	MaxInputLengthLimit = 1 << 20

	// MaxEncodedLengthLimit is the largest value accepted by WithMaxEncodedLength,
	// and the encoded length limit of parameter sets whose digit groups are unbounded.
	MaxEncodedLengthLimit = 1 << 24

	// DefaultACEPrefix is the IDNA ACE prefix.
	DefaultACEPrefix = "xn--"
)

// Codec encodes and decodes labels with one Bootstring parameter set.
//
// A Codec is immutable once created and safe for concurrent use; every call
// works on its own State.
type Codec struct {
	params           Params
	maxInputLength   int
	maxEncodedLength int
	acePrefix        string
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// NewCodec creates a codec for params.
//
// Returns an error wrapping errs.ErrInvalidParams if params or any option is invalid.
func NewCodec(params Params, opts ...CodecOption) (*Codec, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c := &Codec{
		params:         params,
		maxInputLength: DefaultMaxInputLength,
		acePrefix:      DefaultACEPrefix,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.maxEncodedLength == 0 {
		c.maxEncodedLength = params.EncodedLengthBound(c.maxInputLength)
	}

	return c, nil
}

// WithMaxInputLength sets the maximum input length accepted by a single call.
// Longer inputs fail with errs.ErrResourceLimit.
func WithMaxInputLength(n int) CodecOption {
	return options.New(func(c *Codec) error {
		if n <= 0 || n > MaxInputLengthLimit {
			return fmt.Errorf("%w: max input length %d out of range [1, %d]",
				errs.ErrInvalidParams, n, MaxInputLengthLimit)
		}
		c.maxInputLength = n

		return nil
	})
}

// WithMaxEncodedLength sets the maximum length in bytes of a Bootstring string:
// the output of an encode and the input of a decode.
//
// By default it is derived from the maximum input length with
// Params.EncodedLengthBound, so every label within that length encodes.
// A smaller value makes encoding fail with errs.ErrResourceLimit for labels
// whose encoding would be rejected by Decode.
func WithMaxEncodedLength(n int) CodecOption {
	return options.New(func(c *Codec) error {
		if n <= 0 || n > MaxEncodedLengthLimit {
			return fmt.Errorf("%w: max encoded length %d out of range [1, %d]",
				errs.ErrInvalidParams, n, MaxEncodedLengthLimit)
		}
		c.maxEncodedLength = n

		return nil
	})
}

// WithACEPrefix sets the prefix that marks an encoded label in ToASCII and ToUnicode.
func WithACEPrefix(prefix string) CodecOption {
	return options.New(func(c *Codec) error {
		if prefix == "" {
			return fmt.Errorf("%w: empty ACE prefix", errs.ErrInvalidParams)
		}
		for i := 0; i < len(prefix); i++ {
			if prefix[i] >= 0x80 {
				return fmt.Errorf("%w: ACE prefix %q is not ASCII", errs.ErrInvalidParams, prefix)
			}
		}
		c.acePrefix = prefix

		return nil
	})
}

// Params returns the parameter set of the codec.
func (c *Codec) Params() Params {
	return c.params
}

// MaxInputLength returns the maximum number of code points of a label.
func (c *Codec) MaxInputLength() int {
	return c.maxInputLength
}

// MaxEncodedLength returns the maximum length in bytes of a Bootstring string.
func (c *Codec) MaxEncodedLength() int {
	return c.maxEncodedLength
}

// ACEPrefix returns the ACE prefix used by ToASCII and ToUnicode.
func (c *Codec) ACEPrefix() string {
	return c.acePrefix
}
