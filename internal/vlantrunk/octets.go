package vlantrunk

import (
	"fmt"
	"strings"
)

// IsValidTrunkString reports whether s is a correctly formatted trunk mode
// list string: exactly GroupBytes two-digit upper-case hex bytes separated
// by single spaces, nothing else.
func IsValidTrunkString(s string) bool {
	if len(s) != GroupBytes*3-1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i%3 == 2 {
			if s[i] != ' ' {
				return false
			}
		} else if !isUpperHex(s[i]) {
			return false
		}
	}
	return true
}

func isUpperHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}

// Only valid after isUpperHex.
func hexDigit(c byte) byte {
	if c <= '9' {
		return c - '0'
	}
	return c - 'A' + 10
}

// decodeTrunkString parses the wire form into a Mask. The wire string is a
// big-endian hex rendering whose first bit is the group's first VLAN, so
// the parsed value is bit-reversed to reach the internal bit order.
func decodeTrunkString(s string) (Mask, error) {
	var wire Mask
	if !IsValidTrunkString(s) {
		return wire, fmt.Errorf("%w: %q", ErrOctetString, s)
	}
	for i := 0; i < GroupBytes; i++ {
		// first token is the most significant byte
		wire[GroupBytes-1-i] = hexDigit(s[i*3])<<4 | hexDigit(s[i*3+1])
	}
	return wire.Reverse(), nil
}

// encodeTrunkString renders a Mask in the wire form.
func encodeTrunkString(m Mask) string {
	wire := m.Reverse()
	parts := make([]string, GroupBytes)
	for i := 0; i < GroupBytes; i++ {
		parts[i] = fmt.Sprintf("%02X", wire[GroupBytes-1-i])
	}
	return strings.Join(parts, " ")
}
