// Package compress provides the payload codecs used by label set snapshots.
//
// A snapshot payload is a run of short length-prefixed ACE labels. Such
// payloads share long runs of "xn--" prefixes and common suffixes, so a
// general-purpose compressor usually shrinks them well. Four algorithms are
// available, selected by format.CompressionType:
//
//   - None: the payload is stored as is
//   - Zstd: best ratio, the default for snapshots
//   - S2: faster compression with a good ratio
//   - LZ4: fastest decompression
//
// All codecs implement the Codec interface:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(stored)
//
// Codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
//
// An empty input compresses to an empty output for every algorithm except
// NoOp, which returns its input unchanged.
package compress
