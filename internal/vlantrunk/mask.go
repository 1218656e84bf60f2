package vlantrunk

import "math/bits"

// Mask is one group's membership bitmap, GroupSize bits wide. Bits are
// stored little-endian: bit 0 of byte 0 is the group's first VLAN. The wire
// form uses the opposite convention (first VLAN in the first byte's high
// bit), which is what Reverse bridges.
type Mask [GroupBytes]byte

func (m *Mask) Set(bit int) {
	if bit < 0 || bit >= GroupSize {
		return
	}
	m[bit/8] |= 1 << (bit % 8)
}

func (m *Mask) Clear(bit int) {
	if bit < 0 || bit >= GroupSize {
		return
	}
	m[bit/8] &^= 1 << (bit % 8)
}

func (m *Mask) Test(bit int) bool {
	if bit < 0 || bit >= GroupSize {
		return false
	}
	return m[bit/8]&(1<<(bit%8)) != 0
}

// Or merges other into m.
func (m *Mask) Or(other Mask) {
	for i := range m {
		m[i] |= other[i]
	}
}

// Reverse flips the bit order of the whole GroupSize-bit field, so bit i
// moves to bit GroupSize-1-i. Applying it twice returns the original mask.
func (m Mask) Reverse() Mask {
	var r Mask
	for i := range m {
		r[i] = bits.Reverse8(m[GroupBytes-1-i])
	}
	return r
}
