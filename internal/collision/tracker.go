package collision

import (
	"github.com/arloliu/puny/errs"
)

// Tracker indexes folded ACE keys by their 64-bit identifier.
//
// Different keys sharing an identifier are kept side by side and flag the
// tracker; lookups then compare the keys themselves.
type Tracker struct {
	slots        map[uint64][]int // identifier -> positions in keys
	keys         []string         // insertion order
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		slots: make(map[uint64][]int),
		keys:  make([]string, 0),
	}
}

// Track records key under id and returns its position in insertion order.
//
// Returns errs.ErrDuplicateLabel if the same key was already tracked.
func (t *Tracker) Track(key string, id uint64) (int, error) {
	if _, found := t.Find(key, id); found {
		return -1, errs.ErrDuplicateLabel
	}

	if len(t.slots[id]) > 0 {
		// same identifier, different key
		t.hasCollision = true
	}

	pos := len(t.keys)
	t.slots[id] = append(t.slots[id], pos)
	t.keys = append(t.keys, key)

	return pos, nil
}

// Find returns the position of key, which must have been tracked under id.
func (t *Tracker) Find(key string, id uint64) (int, bool) {
	for _, pos := range t.slots[id] {
		if t.keys[pos] == key {
			return pos, true
		}
	}

	return -1, false
}

// HasCollision reports whether two different keys shared an identifier.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return len(t.keys)
}

// Reset clears the tracker but keeps its allocated capacity.
func (t *Tracker) Reset() {
	clear(t.slots)
	t.keys = t.keys[:0]
	t.hasCollision = false
}
