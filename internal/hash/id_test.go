package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID([]byte(tt.data)))
			assert.Equal(t, tt.id, LabelID(tt.data))
		})
	}
}

func TestLabelID_CaseInsensitive(t *testing.T) {
	require.Equal(t, LabelID("xn--mller-kva"), LabelID("xn--Mller-kva"))
	require.Equal(t, LabelID("xn--mnchen-3ya"), LabelID("XN--MNCHEN-3YA"))
	require.Equal(t, uint64(0x4fdcca5ddb678139), LabelID("TeSt"))
	require.NotEqual(t, LabelID("xn--mnchen-3ya"), LabelID("xn--mnchen-4ya"))
}

func TestFoldLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"example", "example"},
		{"XN--Mller-KVA", "xn--mller-kva"},
		{"Müller", "müller"}, // only ASCII letters fold
		{"ÄB", "Äb"},
		{"A-1_Z", "a-1_z"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, FoldLabel(tt.in))
		})
	}
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkLabelID(b *testing.B) {
	randStr := "xn--" + randString(20)
	b.ResetTimer()
	for b.Loop() {
		LabelID(randStr)
	}
}
