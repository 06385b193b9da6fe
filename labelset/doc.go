// Package labelset converts batches of domain name labels to ACE form and
// keeps them indexed and persistable.
//
// A Set holds unique labels in insertion order. Each entry carries the Unicode
// form, the ACE form and a 64-bit identifier computed from the lower-cased ACE
// form. ACE labels compare without regard to ASCII case, so "Müller" and
// "müller", whose ACE forms differ only in case, cannot both be added.
//
// # Basic Usage
//
//	set, err := labelset.New(labelset.WithCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	entry, err := set.Add("münchen")        // entry.ACE == "xn--mnchen-3ya"
//	_, err = set.AddACE("xn--bcher-kva")    // Unicode form "bücher"
//	entry, ok := set.Lookup("XN--MNCHEN-3YA")
//
// # Snapshots
//
// MarshalBinary writes a compact snapshot of the ACE forms:
//
//	header (20 bytes):
//	  magic "PNYS"    4 bytes
//	  version         1 byte
//	  flags           1 byte   bit 0: big endian, bits 4-7: compression type
//	  label count     2 bytes
//	  checksum        8 bytes  xxHash64 of the uncompressed payload
//	  payload length  4 bytes  length of the stored payload
//	payload:
//	  the ACE labels, each prefixed by a 1-byte length, then compressed
//
// Unmarshal verifies the snapshot and rebuilds the Unicode forms by decoding
// every label again, so a snapshot is rejected if it holds a label the codec
// does not accept.
//
// A Set is not safe for concurrent use.
package labelset
