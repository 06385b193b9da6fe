// Package hash computes label identifiers.
package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of data.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// LabelID computes the identifier of an ACE label.
//
// ACE labels compare case-insensitively, so ASCII letters are folded to lower
// case before hashing: LabelID("xn--Mller-kva") == LabelID("xn--mller-kva").
func LabelID(ace string) uint64 {
	return xxhash.Sum64String(FoldLabel(ace))
}

// FoldLabel lower-cases the ASCII letters of label and leaves every other byte as is.
func FoldLabel(label string) string {
	for i := 0; i < len(label); i++ {
		if c := label[i]; c >= 'A' && c <= 'Z' {
			return strings.Map(foldASCII, label)
		}
	}

	return label
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}
