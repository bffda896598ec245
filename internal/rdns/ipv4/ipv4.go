// Package ipv4 packs dotted-decimal addresses into network-order uint32s.
package ipv4

import (
	"errors"
	"fmt"
)

// Encode converts a dotted-decimal byte string into a big-endian uint32
// (o0<<24 | o1<<16 | o2<<8 | o3).
//
// No validation: an octet over 255 or a count other than 4 produces a
// numerically defined but meaningless value. Callers that need rejection
// of malformed input use EncodeStrict.
func Encode(b []byte) uint32 {
	var acc, octet uint32
	for _, c := range b {
		if c == '.' {
			acc = acc<<8 | octet
			octet = 0
			continue
		}
		octet = octet*10 + uint32(c-'0')
	}
	return acc<<8 | octet
}

var (
	errOctetRange = errors.New("octet out of range")
	errOctetCount = errors.New("expected 4 octets")
	errBadByte    = errors.New("unexpected byte")
)

// EncodeStrict is the checked variant: exactly four non-empty decimal
// octets, each 0-255, digits and dots only.
func EncodeStrict(b []byte) (uint32, error) {
	var acc, octet uint32
	octets := 0
	digits := 0
	for _, c := range b {
		switch {
		case c == '.':
			if digits == 0 {
				return 0, fmt.Errorf("%w in %q", errOctetCount, b)
			}
			acc = acc<<8 | octet
			octet = 0
			digits = 0
			octets++
		case c >= '0' && c <= '9':
			octet = octet*10 + uint32(c-'0')
			if octet > 255 {
				return 0, fmt.Errorf("%w in %q", errOctetRange, b)
			}
			digits++
		default:
			return 0, fmt.Errorf("%w %q in %q", errBadByte, c, b)
		}
	}
	if digits == 0 || octets != 3 {
		return 0, fmt.Errorf("%w in %q", errOctetCount, b)
	}
	return acc<<8 | octet, nil
}
