// Package bootstring implements the generalized Bootstring algorithm of RFC 3492
// and its Punycode instance.
//
// Bootstring represents a sequence of code points as a string of basic code
// points. The basic code points of the input are copied verbatim, followed by a
// delimiter and a sequence of self-terminating, variable-length integers (digit
// groups) that describe where and which extended code points to insert.
//
// # Basic Usage
//
//	codec, err := bootstring.NewCodec(bootstring.Punycode)
//	if err != nil {
//	    return err
//	}
//
//	ace, _ := codec.Encode([]rune("münchen"))   // "mnchen-3ya"
//	label, _ := codec.DecodeString("mnchen-3ya") // "münchen"
//
//	full, _ := codec.ToASCII("münchen")         // "xn--mnchen-3ya"
//
// # Arithmetic
//
// All state is held in uint32 and every addition and multiplication is checked.
// Inputs whose intermediate values do not fit fail with errs.ErrOverflow instead
// of wrapping around.
//
// # Resource Limits
//
// A Codec bounds the code points of a label (see WithMaxInputLength) and the
// bytes of its Bootstring form (see WithMaxEncodedLength), failing with
// errs.ErrResourceLimit. The encoded limit defaults to the longest encoding of a
// label within the code point limit, so anything Encode produces is accepted by
// Decode. Encoding is quadratic in the label length, so the limits bound the
// work of a single call.
//
// # Thread Safety
//
// Params and Codec are immutable; all functions and methods are safe for
// concurrent use.
package bootstring
