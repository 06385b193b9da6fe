package labelset

import (
	"fmt"
	"testing"

	"github.com/arloliu/puny"
	"github.com/arloliu/puny/bootstring"
	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/format"
	"github.com/arloliu/puny/internal/hash"
	"github.com/stretchr/testify/require"
)

func newSet(t testing.TB, opts ...Option) *Set {
	t.Helper()

	s, err := New(opts...)
	require.NoError(t, err)

	return s
}

func TestNew_Defaults(t *testing.T) {
	s := newSet(t)

	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Entries())
	require.False(t, s.HasCollision())
	require.Equal(t, format.CompressionZstd, s.Compression())
	require.Same(t, puny.DefaultCodec(), s.Codec())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithCodec(nil))
	require.ErrorIs(t, err, errs.ErrInvalidParams)

	_, err = New(WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidParams)

	_, err = New(WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidParams)
}

func TestSet_Add(t *testing.T) {
	s := newSet(t)

	tests := []struct {
		label string
		ace   string
	}{
		{"münchen", "xn--mnchen-3ya"},
		{"bücher", "xn--bcher-kva"},
		{"日本語", "xn--wgv71a119e"},
		{"example", "example"},
		{"☃", "xn--n3h"},
	}

	for i, tt := range tests {
		entry, err := s.Add(tt.label)
		require.NoError(t, err)
		require.Equal(t, tt.label, entry.Unicode)
		require.Equal(t, tt.ace, entry.ACE)
		require.Equal(t, hash.LabelID(tt.ace), entry.ID)
		require.Equal(t, i+1, s.Len())
	}

	entries := s.Entries()
	require.Len(t, entries, len(tests))
	for i, tt := range tests {
		require.Equal(t, tt.ace, entries[i].ACE, "insertion order")
	}
}

func TestSet_Add_InvalidLabel(t *testing.T) {
	s := newSet(t)

	_, err := s.Add(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, errs.ErrMalformedInput)
	require.Equal(t, 0, s.Len())
}

func TestSet_AddACE(t *testing.T) {
	s := newSet(t)

	entry, err := s.AddACE("xn--bcher-kva")
	require.NoError(t, err)
	require.Equal(t, "bücher", entry.Unicode)
	require.Equal(t, "xn--bcher-kva", entry.ACE)

	entry, err = s.AddACE("plain")
	require.NoError(t, err)
	require.Equal(t, "plain", entry.Unicode)

	_, err = s.AddACE("xn--example-")
	require.ErrorIs(t, err, errs.ErrMalformedInput)

	_, err = s.AddACE("xn--ab!c")
	require.ErrorIs(t, err, errs.ErrMalformedInput)
	require.Equal(t, 2, s.Len())
}

func TestSet_Duplicate(t *testing.T) {
	s := newSet(t)

	_, err := s.Add("münchen")
	require.NoError(t, err)

	_, err = s.Add("münchen")
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)

	// same label through its ACE form, in any case
	_, err = s.AddACE("xn--mnchen-3ya")
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)
	_, err = s.AddACE("XN--MNCHEN-3YA")
	require.ErrorIs(t, err, errs.ErrLabelCollision)

	require.Equal(t, 1, s.Len())
}

func TestSet_CaseCollision(t *testing.T) {
	s := newSet(t)

	_, err := s.Add("Müller")
	require.NoError(t, err)

	// "xn--mller-kva" differs from "xn--Mller-kva" only in case
	_, err = s.Add("müller")
	require.ErrorIs(t, err, errs.ErrLabelCollision)
	require.Contains(t, err.Error(), "xn--mller-kva")

	_, err = s.Add("EXAMPLE")
	require.NoError(t, err)
	_, err = s.Add("example")
	require.ErrorIs(t, err, errs.ErrLabelCollision)

	require.Equal(t, 2, s.Len())
	require.False(t, s.HasCollision())
}

func TestSet_HashCollision(t *testing.T) {
	s := newSet(t)
	s.labelID = func(string) uint64 { return 42 }

	a, err := s.Add("münchen")
	require.NoError(t, err)
	b, err := s.Add("bücher")
	require.NoError(t, err)

	require.Equal(t, a.ID, b.ID)
	require.True(t, s.HasCollision())

	got, ok := s.Lookup("xn--mnchen-3ya")
	require.True(t, ok)
	require.Equal(t, "münchen", got.Unicode)

	got, ok = s.Lookup("xn--bcher-kva")
	require.True(t, ok)
	require.Equal(t, "bücher", got.Unicode)

	_, ok = s.Lookup("xn--n3h")
	require.False(t, ok)

	_, err = s.Add("bücher")
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)
}

func TestSet_Lookup(t *testing.T) {
	s := newSet(t)

	_, err := s.Add("münchen")
	require.NoError(t, err)
	_, err = s.Add("example")
	require.NoError(t, err)

	for _, ace := range []string{"xn--mnchen-3ya", "XN--MNCHEN-3YA", "Xn--mNchen-3ya"} {
		entry, ok := s.Lookup(ace)
		require.True(t, ok, ace)
		require.Equal(t, "münchen", entry.Unicode)
	}

	entry, ok := s.LookupUnicode("münchen")
	require.True(t, ok)
	require.Equal(t, "xn--mnchen-3ya", entry.ACE)

	entry, ok = s.LookupUnicode("example")
	require.True(t, ok)
	require.Equal(t, "example", entry.ACE)

	_, ok = s.Lookup("xn--bcher-kva")
	require.False(t, ok)
	_, ok = s.LookupUnicode(string([]byte{0xff}))
	require.False(t, ok)
}

func TestSet_LabelTooLong(t *testing.T) {
	s := newSet(t)

	// 200 code points encode to far more than 255 bytes
	long := make([]rune, 200)
	for i := range long {
		long[i] = rune(0x4e00 + i*7)
	}

	_, err := s.Add(string(long))
	require.ErrorIs(t, err, errs.ErrLabelTooLong)
	require.Equal(t, 0, s.Len())
}

func TestSet_TooManyLabels(t *testing.T) {
	if testing.Short() {
		t.Skip("adds 65535 labels")
	}

	s := newSet(t)
	for i := range MaxLabels {
		_, err := s.Add(fmt.Sprintf("l%d", i))
		require.NoError(t, err)
	}
	require.Equal(t, MaxLabels, s.Len())

	_, err := s.Add("one-more")
	require.ErrorIs(t, err, errs.ErrTooManyLabels)

	// duplicates are still reported as duplicates
	_, err = s.Add("l0")
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)
}

func TestSet_Entries_Copy(t *testing.T) {
	s := newSet(t)
	_, err := s.Add("münchen")
	require.NoError(t, err)

	entries := s.Entries()
	entries[0].ACE = "changed"

	entry, ok := s.Lookup("xn--mnchen-3ya")
	require.True(t, ok)
	require.Equal(t, "xn--mnchen-3ya", entry.ACE)
}

func TestSet_Reset(t *testing.T) {
	s := newSet(t, WithCompression(format.CompressionLZ4))
	s.labelID = func(string) uint64 { return 7 }

	_, err := s.Add("münchen")
	require.NoError(t, err)
	_, err = s.Add("bücher")
	require.NoError(t, err)
	require.True(t, s.HasCollision())

	s.Reset()
	require.Equal(t, 0, s.Len())
	require.False(t, s.HasCollision())
	require.Equal(t, format.CompressionLZ4, s.Compression())

	_, ok := s.Lookup("xn--mnchen-3ya")
	require.False(t, ok)

	_, err = s.Add("münchen")
	require.NoError(t, err)
}

func TestSet_WithCodec(t *testing.T) {
	codec, err := puny.NewCodec(bootstring.WithACEPrefix("bq--"))
	require.NoError(t, err)

	s := newSet(t, WithCodec(codec))

	entry, err := s.Add("münchen")
	require.NoError(t, err)
	require.Equal(t, "bq--mnchen-3ya", entry.ACE)

	entry, err = s.AddACE("bq--bcher-kva")
	require.NoError(t, err)
	require.Equal(t, "bücher", entry.Unicode)

	// the default prefix is an ordinary label for this codec
	entry, err = s.AddACE("xn--bcher-kva")
	require.NoError(t, err)
	require.Equal(t, "xn--bcher-kva", entry.Unicode)
}

func BenchmarkSet_Add(b *testing.B) {
	labels := make([]string, 1000)
	for i := range labels {
		labels[i] = fmt.Sprintf("münchen-%d", i)
	}

	s := newSet(b)

	b.ReportAllocs()
	for b.Loop() {
		s.Reset()
		for _, label := range labels {
			_, _ = s.Add(label)
		}
	}
}
