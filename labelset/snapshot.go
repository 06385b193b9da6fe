package labelset

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arloliu/puny/compress"
	"github.com/arloliu/puny/endian"
	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/format"
	"github.com/arloliu/puny/internal/encoding"
	"github.com/arloliu/puny/internal/hash"
)

const (
	// HeaderSize is the size of the snapshot header in bytes.
	HeaderSize = 20

	// Version is the snapshot format version written by MarshalBinary.
	Version = 1

	flagBigEndian       = 0x01
	flagReservedMask    = 0x0E
	flagCompressionBits = 4
)

var snapshotMagic = []byte("PNYS")

// header field offsets
const (
	offVersion  = 4
	offFlags    = 5
	offCount    = 6
	offChecksum = 8
	offLength   = 16
)

// MarshalBinary encodes the ACE forms of the set into a snapshot.
//
// The snapshot uses the byte order and compression configured on the set.
func (s *Set) MarshalBinary() ([]byte, error) {
	encoder := encoding.NewLabelEncoder()
	defer encoder.Reset()

	labels := make([]string, len(s.entries))
	for i := range s.entries {
		labels[i] = s.entries[i].ACE
	}
	if err := encoder.WriteSlice(labels); err != nil {
		return nil, err
	}

	payload := encoder.Bytes()
	checksum := hash.ID(payload)

	codec, err := compress.GetCodec(s.compression)
	if err != nil {
		return nil, err
	}

	stored, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrInvalidPayload, len(stored))
	}

	flags := byte(s.compression) << flagCompressionBits
	if endian.IsBigEndian(s.engine) {
		flags |= flagBigEndian
	}

	// stored may alias the pooled payload buffer, so it is copied before Reset
	data := make([]byte, 0, HeaderSize+len(stored))
	data = append(data, snapshotMagic...)
	data = append(data, Version, flags)
	data = s.engine.AppendUint16(data, uint16(encoder.Len())) //nolint:gosec
	data = s.engine.AppendUint64(data, checksum)
	data = s.engine.AppendUint32(data, uint32(len(stored))) //nolint:gosec
	data = append(data, stored...)

	return data, nil
}

// Unmarshal decodes a snapshot produced by MarshalBinary into a new Set.
//
// opts configure the new set as in New; the byte order and compression are
// then taken from the snapshot header, so marshaling the result again
// reproduces data.
//
// Errors:
//   - errs.ErrInvalidHeaderSize if data is shorter than the header
//   - errs.ErrInvalidMagic, errs.ErrUnsupportedVersion for foreign data
//   - errs.ErrInvalidPayload if the payload is truncated, cannot be decompressed
//     or holds a label the codec rejects
//   - errs.ErrChecksumMismatch if the payload does not match its checksum
func Unmarshal(data []byte, opts ...Option) (*Set, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if uint64(len(stored)) != uint64(h.length) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, found %d",
			errs.ErrInvalidPayload, h.length, len(stored))
	}

	codec, err := compress.GetCodec(h.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	if sum := hash.ID(payload); sum != h.checksum {
		return nil, fmt.Errorf("%w: expected %#016x, got %#016x", errs.ErrChecksumMismatch, h.checksum, sum)
	}

	labels, err := encoding.NewLabelDecoder().Decode(payload, int(h.count))
	if err != nil {
		return nil, err
	}

	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	s.engine = h.engine
	s.compression = h.compression

	for i, ace := range labels {
		if _, err := s.AddACE(ace); err != nil {
			return nil, fmt.Errorf("%w: label %d: %w", errs.ErrInvalidPayload, i, err)
		}
	}

	return s, nil
}

type header struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	count       uint16
	checksum    uint64
	length      uint32
}

func parseHeader(data []byte) (header, error) {
	if len(data) < HeaderSize {
		return header{}, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if !bytes.Equal(data[:offVersion], snapshotMagic) {
		return header{}, fmt.Errorf("%w: %q", errs.ErrInvalidMagic, data[:offVersion])
	}

	if v := data[offVersion]; v != Version {
		return header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, v)
	}

	flags := data[offFlags]
	if flags&flagReservedMask != 0 {
		return header{}, fmt.Errorf("%w: reserved flags %#02x set", errs.ErrUnsupportedVersion, flags)
	}

	compression := format.CompressionType(flags >> flagCompressionBits)
	if !compression.IsValid() {
		return header{}, fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidPayload, compression)
	}

	engine := endian.GetEngine(flags&flagBigEndian != 0)

	return header{
		engine:      engine,
		compression: compression,
		count:       engine.Uint16(data[offCount:offChecksum]),
		checksum:    engine.Uint64(data[offChecksum:offLength]),
		length:      engine.Uint32(data[offLength:HeaderSize]),
	}, nil
}
