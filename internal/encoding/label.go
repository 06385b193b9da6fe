// Package encoding implements the label payload of a label set snapshot.
//
// The payload is a plain run of ACE labels, each stored as
//
//	1 byte: length (0-255)
//	N bytes: label
//
// The number of labels is kept in the snapshot header, not in the payload.
package encoding

import (
	"fmt"

	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/internal/pool"
)

// MaxLabelLength is the longest label a uint8 length prefix can describe.
const MaxLabelLength = 255

// LabelEncoder appends length-prefixed labels to a pooled buffer.
type LabelEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewLabelEncoder creates an encoder backed by a pooled snapshot buffer.
//
// Call Reset once the encoded bytes are no longer needed to return the buffer.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{
		buf: pool.GetSnapshotBuffer(),
	}
}

// Write encodes a single label.
//
// Parameters:
//   - label: ACE label to encode (must not exceed MaxLabelLength bytes)
//
// Returns:
//   - error: errs.ErrLabelTooLong if label exceeds MaxLabelLength
func (e *LabelEncoder) Write(label string) error {
	if len(label) > MaxLabelLength {
		return fmt.Errorf("%w: length %d exceeds maximum %d", errs.ErrLabelTooLong, len(label), MaxLabelLength)
	}

	e.buf.Grow(1 + len(label))
	e.buf.MustWriteByte(uint8(len(label))) //nolint:gosec
	e.buf.MustWriteString(label)
	e.count++

	return nil
}

// WriteSlice encodes labels in order.
//
// Every label is validated before anything is written, so a failed call
// leaves the encoder unchanged.
func (e *LabelEncoder) WriteSlice(labels []string) error {
	totalSize := 0
	for _, label := range labels {
		if len(label) > MaxLabelLength {
			return fmt.Errorf("%w: length %d exceeds maximum %d", errs.ErrLabelTooLong, len(label), MaxLabelLength)
		}
		totalSize += 1 + len(label)
	}

	e.buf.Grow(totalSize)
	for _, label := range labels {
		if err := e.Write(label); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded payload.
//
// The returned slice shares the encoder's buffer and is invalid after Reset.
func (e *LabelEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of labels encoded.
func (e *LabelEncoder) Len() int {
	return e.count
}

// Reset returns the buffer to the pool. The encoder must not be used afterwards.
func (e *LabelEncoder) Reset() {
	if e.buf != nil {
		pool.PutSnapshotBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// LabelDecoder reads payloads produced by LabelEncoder. It is stateless.
type LabelDecoder struct{}

// NewLabelDecoder creates a new label decoder.
func NewLabelDecoder() LabelDecoder {
	return LabelDecoder{}
}

// Decode returns exactly count labels.
//
// Returns errs.ErrInvalidPayload if data holds fewer labels or has trailing bytes.
func (d LabelDecoder) Decode(data []byte, count int) ([]string, error) {
	if count < 0 || count > len(data) {
		return nil, fmt.Errorf("%w: %d labels cannot fit in %d bytes", errs.ErrInvalidPayload, count, len(data))
	}

	labels := make([]string, 0, count)
	offset := 0
	for i := range count {
		label, next, ok := labelAt(data, offset)
		if !ok {
			return nil, fmt.Errorf("%w: label %d truncated at offset %d", errs.ErrInvalidPayload, i, offset)
		}
		labels = append(labels, label)
		offset = next
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, len(data)-offset)
	}

	return labels, nil
}

// labelAt decodes the label starting at offset and returns it with the offset of the next one.
func labelAt(data []byte, offset int) (string, int, bool) {
	if offset >= len(data) {
		return "", offset, false
	}

	start := offset + 1
	end := start + int(data[offset])
	if end > len(data) {
		return "", offset, false
	}

	return string(data[start:end]), end, true
}
