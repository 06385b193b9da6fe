package bootstring

import (
	"testing"

	"github.com/arloliu/puny/errs"
	"github.com/stretchr/testify/require"
)

func TestNewCodec_Defaults(t *testing.T) {
	c, err := NewCodec(Punycode)
	require.NoError(t, err)

	require.Equal(t, Punycode, c.Params())
	require.Equal(t, DefaultMaxInputLength, c.MaxInputLength())
	require.Equal(t, DefaultACEPrefix, c.ACEPrefix())
	require.Equal(t, DefaultMaxInputLength*11+1, c.MaxEncodedLength())
}

func TestNewCodec_Options(t *testing.T) {
	c, err := NewCodec(Punycode, WithMaxInputLength(63), WithACEPrefix("zz--"))
	require.NoError(t, err)

	require.Equal(t, 63, c.MaxInputLength())
	require.Equal(t, "zz--", c.ACEPrefix())
	require.Equal(t, 63*11+1, c.MaxEncodedLength())

	c, err = NewCodec(Punycode, WithMaxEncodedLength(100))
	require.NoError(t, err)
	require.Equal(t, 100, c.MaxEncodedLength())
}

func TestParams_EncodedLengthBound(t *testing.T) {
	require.Equal(t, 11, Punycode.maxGroupDigits())
	require.Equal(t, 1, Punycode.EncodedLengthBound(0))
	require.Equal(t, 64*11+1, Punycode.EncodedLengthBound(64))
	require.Equal(t, MaxEncodedLengthLimit, Punycode.EncodedLengthBound(MaxInputLengthLimit*2))

	p := Params{Base: 10, TMin: 1, TMax: 9, Skew: 3, Damp: 2, InitialBias: 5, InitialN: 0x80, Delimiter: '_'}
	require.Equal(t, 0, p.maxGroupDigits())
	require.Equal(t, MaxEncodedLengthLimit, p.EncodedLengthBound(1))
}

func TestNewCodec_InvalidParams(t *testing.T) {
	p := Punycode
	p.Base = 40

	c, err := NewCodec(p)
	require.ErrorIs(t, err, errs.ErrInvalidParams)
	require.Nil(t, c)
}

func TestNewCodec_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  CodecOption
	}{
		{"zero max length", WithMaxInputLength(0)},
		{"negative max length", WithMaxInputLength(-5)},
		{"max length above limit", WithMaxInputLength(MaxInputLengthLimit + 1)},
		{"zero encoded length", WithMaxEncodedLength(0)},
		{"encoded length above limit", WithMaxEncodedLength(MaxEncodedLengthLimit + 1)},
		{"empty prefix", WithACEPrefix("")},
		{"non-ascii prefix", WithACEPrefix("ü--")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCodec(Punycode, tt.opt)
			require.ErrorIs(t, err, errs.ErrInvalidParams)
			require.Nil(t, c)
		})
	}
}

func TestState_CheckedArithmetic(t *testing.T) {
	s := Punycode.NewState(3)
	require.Equal(t, State{N: 128, Delta: 0, Bias: 72, Handled: 3}, s)

	require.True(t, s.addDelta(10, 4))
	require.Equal(t, uint32(40), s.Delta)

	require.False(t, s.addDelta(1<<16, 1<<16), "product overflow")

	s.Delta = 1<<32 - 2
	require.True(t, s.incDelta())
	require.False(t, s.incDelta())
	require.False(t, s.addDelta(1, 1), "sum overflow")

	s.N = 1<<32 - 1
	require.False(t, s.incN())
	s.N = 200
	require.True(t, s.incN())
	require.Equal(t, uint32(201), s.N)
}
