package vlantrunk

import "fmt"

// ModeList holds one group's trunk membership bitmap. TrunkSet is the usual
// entry point; use ModeList directly when only a single group matters.
type ModeList struct {
	group int
	mask  Mask
}

func NewModeList(group int) *ModeList {
	return &ModeList{group: group}
}

func (l *ModeList) Group() int {
	return l.group
}

// Mask returns a copy of the raw bitmap.
func (l *ModeList) Mask() Mask {
	return l.mask
}

// AddVlan sets the VLAN's bit. Setting an already-set bit changes nothing.
func (l *ModeList) AddVlan(vlanID int) error {
	if !VlanInGroup(vlanID, l.group) {
		return fmt.Errorf("%w: vlan %d, group %d", ErrVlanNotInGroup, vlanID, l.group)
	}
	bit, err := BitIndexForVlan(vlanID)
	if err != nil {
		return err
	}
	l.mask.Set(bit)
	return nil
}

// AddTrunkString merges the members encoded in s into the list. The decoded
// bitmap is ORed in, so VLANs already present stay present.
func (l *ModeList) AddTrunkString(s string) error {
	m, err := decodeTrunkString(s)
	if err != nil {
		return err
	}
	l.mask.Or(m)
	return nil
}

// RemoveVlan clears the VLAN's bit. A VLAN outside this group's range is
// left alone rather than rejected.
func (l *ModeList) RemoveVlan(vlanID int) {
	if !VlanInGroup(vlanID, l.group) {
		return
	}
	bit, err := BitIndexForVlan(vlanID)
	if err != nil {
		return
	}
	l.mask.Clear(bit)
}

func (l *ModeList) HasVlan(vlanID int) bool {
	bit, err := BitIndexForVlan(vlanID)
	if err != nil {
		return false
	}
	return l.mask.Test(bit)
}

// TrunkString renders the list in the wire form.
func (l *ModeList) TrunkString() string {
	return encodeTrunkString(l.mask)
}

// Vlans returns the member VLAN IDs in ascending order.
func (l *ModeList) Vlans() []int {
	var vlans []int
	for bit := 0; bit < GroupSize; bit++ {
		if l.mask.Test(bit) {
			vlans = append(vlans, VlanForBit(bit, l.group))
		}
	}
	return vlans
}
