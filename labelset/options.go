package labelset

import (
	"fmt"

	"github.com/arloliu/puny/bootstring"
	"github.com/arloliu/puny/endian"
	"github.com/arloliu/puny/errs"
	"github.com/arloliu/puny/format"
	"github.com/arloliu/puny/internal/options"
)

// Option configures a Set.
type Option = options.Option[*Set]

// WithCodec sets the codec used to convert labels. The default is puny.DefaultCodec().
func WithCodec(codec *bootstring.Codec) Option {
	return options.New(func(s *Set) error {
		if codec == nil {
			return fmt.Errorf("%w: nil codec", errs.ErrInvalidParams)
		}
		s.codec = codec

		return nil
	})
}

// WithCompression sets the compression applied to the snapshot payload.
// The default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(s *Set) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidParams, compression)
		}
		s.compression = compression

		return nil
	})
}

// WithLittleEndian writes snapshot headers in little-endian byte order, the default.
func WithLittleEndian() Option {
	return options.NoError(func(s *Set) {
		s.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes snapshot headers in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(s *Set) {
		s.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes snapshot headers in the byte order of the host.
func WithNativeEndian() Option {
	return options.NoError(func(s *Set) {
		s.engine = endian.GetNativeEndianEngine()
	})
}
