package bootstring

import (
	"fmt"
	"strings"

	"github.com/arloliu/puny/errs"
)

// IsACE reports whether label starts with the codec ACE prefix, compared case-insensitively.
func (c *Codec) IsACE(label string) bool {
	return len(label) >= len(c.acePrefix) && strings.EqualFold(label[:len(c.acePrefix)], c.acePrefix)
}

// ToASCII converts a single label to its ASCII form.
//
// Labels made only of basic code points are returned unchanged; any other label
// is encoded and prefixed with the ACE prefix. No IDNA mapping or validation is
// applied and the label must not contain dots.
func (c *Codec) ToASCII(label string) (string, error) {
	if c.isBasicString(label) {
		return label, nil
	}

	enc, err := c.EncodeString(label)
	if err != nil {
		return "", err
	}

	return c.acePrefix + enc, nil
}

// ToUnicode converts a single label to its Unicode form.
//
// Labels without the ACE prefix are returned unchanged. Prefixed labels are
// decoded and must convert back to the same ACE form, compared case-insensitively;
// otherwise an error wrapping errs.ErrMalformedInput is returned.
func (c *Codec) ToUnicode(label string) (string, error) {
	if !c.IsACE(label) {
		return label, nil
	}

	dec, err := c.DecodeString(label[len(c.acePrefix):])
	if err != nil {
		return "", err
	}

	ace, err := c.ToASCII(dec)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(ace, label) {
		return "", fmt.Errorf("%w: %q is not the canonical encoding of %q", errs.ErrMalformedInput, label, dec)
	}

	return dec, nil
}

func (c *Codec) isBasicString(s string) bool {
	for i := 0; i < len(s); i++ {
		if uint32(s[i]) >= c.params.InitialN {
			return false
		}
	}

	return true
}
