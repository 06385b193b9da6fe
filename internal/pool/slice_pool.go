package pool

import "sync"

// runeSliceMaxThreshold bounds the capacity of rune slices kept in the pool.
const runeSliceMaxThreshold = 64 * 1024

var runeSlicePool = sync.Pool{
	New: func() any { return &[]rune{} },
}

// GetRuneSlice retrieves a rune slice of exactly size elements from the pool.
//
// The contents are unspecified. If the pooled slice is too small a new one is
// allocated. The caller must call the returned cleanup function, typically with
// defer, and must not use the slice afterwards.
//
// Example:
//
//	runes, cleanup := pool.GetRuneSlice(utf8.RuneCountInString(s))
//	defer cleanup()
func GetRuneSlice(size int) ([]rune, func()) {
	ptr, _ := runeSlicePool.Get().(*[]rune)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]rune, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > runeSliceMaxThreshold {
			return
		}
		runeSlicePool.Put(ptr)
	}
}
