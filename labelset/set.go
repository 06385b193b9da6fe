package labelset

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/puny"
	"github.com/arloliu/puny/bootstring"
	"github.com/arloliu/puny/endian"
	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/format"
	"github.com/arloliu/puny/internal/collision"
	"github.com/arloliu/puny/internal/encoding"
	"github.com/arloliu/puny/internal/hash"
	"github.com/arloliu/puny/internal/options"
)

const (
	// MaxLabels is the number of labels a snapshot header can count.
	MaxLabels = math.MaxUint16

	// MaxLabelLength is the longest ACE label a snapshot can store.
	MaxLabelLength = encoding.MaxLabelLength
)

// Entry is a label held by a Set.
type Entry struct {
	// Unicode is the label in Unicode form.
	Unicode string
	// ACE is the label in ASCII-Compatible Encoding, with the ACE prefix when
	// the label is not plain ASCII.
	ACE string
	// ID is the xxHash64 of the lower-cased ACE form.
	ID uint64
}

// Set is an ordered collection of unique labels.
type Set struct {
	codec       *bootstring.Codec
	compression format.CompressionType
	engine      endian.EndianEngine

	tracker *collision.Tracker
	entries []Entry

	// labelID computes entry identifiers; replaced in tests to force collisions.
	labelID func(ace string) uint64
}

// New creates an empty Set.
//
// Returns an error wrapping errs.ErrInvalidParams if an option is invalid.
func New(opts ...Option) (*Set, error) {
	s := &Set{
		codec:       puny.DefaultCodec(),
		compression: format.CompressionZstd,
		engine:      endian.GetLittleEndianEngine(),
		tracker:     collision.NewTracker(),
		entries:     make([]Entry, 0),
		labelID:     hash.LabelID,
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Add converts a Unicode label to ACE form and adds it.
//
// Errors:
//   - errors from the codec (errs.ErrMalformedInput, errs.ErrOverflow, errs.ErrResourceLimit)
//   - errs.ErrDuplicateLabel if the label is already in the set
//   - errs.ErrLabelCollision if another label has the same ACE form, ignoring case
//   - errs.ErrLabelTooLong if the ACE form exceeds MaxLabelLength bytes
//   - errs.ErrTooManyLabels if the set already holds MaxLabels labels
func (s *Set) Add(label string) (Entry, error) {
	ace, err := s.codec.ToASCII(label)
	if err != nil {
		return Entry{}, fmt.Errorf("label %q: %w", label, err)
	}

	return s.add(label, ace)
}

// AddACE converts an ACE label to Unicode form and adds it.
//
// Labels without the ACE prefix are added as is. The errors are those of Add;
// a non-canonical ACE label fails with errs.ErrMalformedInput.
func (s *Set) AddACE(ace string) (Entry, error) {
	label, err := s.codec.ToUnicode(ace)
	if err != nil {
		return Entry{}, fmt.Errorf("label %q: %w", ace, err)
	}

	return s.add(label, ace)
}

func (s *Set) add(label, ace string) (Entry, error) {
	if len(ace) > MaxLabelLength {
		return Entry{}, fmt.Errorf("%w: %q is %d bytes, maximum %d", errs.ErrLabelTooLong, ace, len(ace), MaxLabelLength)
	}

	key := hash.FoldLabel(ace)
	id := s.labelID(ace)

	if pos, found := s.tracker.Find(key, id); found {
		existing := s.entries[pos]
		if existing.Unicode == label {
			return Entry{}, fmt.Errorf("%w: %q", errs.ErrDuplicateLabel, label)
		}

		return Entry{}, fmt.Errorf("%w: %q and %q both encode to %q",
			errs.ErrLabelCollision, label, existing.Unicode, key)
	}

	if len(s.entries) >= MaxLabels {
		return Entry{}, fmt.Errorf("%w: maximum %d", errs.ErrTooManyLabels, MaxLabels)
	}

	if _, err := s.tracker.Track(key, id); err != nil {
		return Entry{}, err
	}

	entry := Entry{Unicode: label, ACE: ace, ID: id}
	s.entries = append(s.entries, entry)

	return entry, nil
}

// Lookup returns the entry whose ACE form equals ace, ignoring ASCII case.
func (s *Set) Lookup(ace string) (Entry, bool) {
	pos, found := s.tracker.Find(hash.FoldLabel(ace), s.labelID(ace))
	if !found {
		return Entry{}, false
	}

	return s.entries[pos], true
}

// LookupUnicode converts label to ACE form and looks it up.
func (s *Set) LookupUnicode(label string) (Entry, bool) {
	ace, err := s.codec.ToASCII(label)
	if err != nil {
		return Entry{}, false
	}

	return s.Lookup(ace)
}

// Entries returns a copy of the entries in insertion order.
func (s *Set) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of labels in the set.
func (s *Set) Len() int {
	return s.tracker.Count()
}

// HasCollision reports whether two different labels share an identifier.
//
// Lookups stay correct after a collision; callers that use Entry.ID as a key
// of their own need to check it.
func (s *Set) HasCollision() bool {
	return s.tracker.HasCollision()
}

// Compression returns the compression applied to snapshots.
func (s *Set) Compression() format.CompressionType {
	return s.compression
}

// Codec returns the codec used to convert labels.
func (s *Set) Codec() *bootstring.Codec {
	return s.codec
}

// Reset removes every label but keeps the configuration.
func (s *Set) Reset() {
	s.tracker.Reset()
	s.entries = s.entries[:0]
}
