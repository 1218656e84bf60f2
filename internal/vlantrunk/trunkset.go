package vlantrunk

import "fmt"

// TrunkSet manipulates a full trunk configuration, one ModeList per group.
// A new set has no VLANs in any group. Operations taking a VLAN ID route to
// the owning group themselves; operations taking a group ID reject anything
// outside [0, GroupCount).
//
// TrunkSet is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
type TrunkSet struct {
	lists [GroupCount]*ModeList
}

func NewTrunkSet() *TrunkSet {
	t := &TrunkSet{}
	for group := 0; group < GroupCount; group++ {
		t.lists[group] = NewModeList(group)
	}
	return t
}

func (t *TrunkSet) AddVlan(vlanID int) error {
	l, err := t.listForVlan(vlanID)
	if err != nil {
		return err
	}
	return l.AddVlan(vlanID)
}

func (t *TrunkSet) AddTrunkString(s string, group int) error {
	l, err := t.list(group)
	if err != nil {
		return err
	}
	return l.AddTrunkString(s)
}

// RemoveVlan clears the VLAN from its owning group. Removing a VLAN that
// was never added changes nothing.
func (t *TrunkSet) RemoveVlan(vlanID int) error {
	l, err := t.listForVlan(vlanID)
	if err != nil {
		return err
	}
	l.RemoveVlan(vlanID)
	return nil
}

func (t *TrunkSet) HasVlan(vlanID int) (bool, error) {
	l, err := t.listForVlan(vlanID)
	if err != nil {
		return false, err
	}
	return l.HasVlan(vlanID), nil
}

// TrunkString renders one group's wire form.
func (t *TrunkSet) TrunkString(group int) (string, error) {
	l, err := t.list(group)
	if err != nil {
		return "", err
	}
	return l.TrunkString(), nil
}

// Vlans returns one group's member VLAN IDs in ascending order.
func (t *TrunkSet) Vlans(group int) ([]int, error) {
	l, err := t.list(group)
	if err != nil {
		return nil, err
	}
	return l.Vlans(), nil
}

// TrunkStrings returns every group's wire form, keyed by group.
func (t *TrunkSet) TrunkStrings() map[int]string {
	out := make(map[int]string, GroupCount)
	for group, l := range t.lists {
		out[group] = l.TrunkString()
	}
	return out
}

// AllVlans returns every group's member VLAN IDs, keyed by group.
func (t *TrunkSet) AllVlans() map[int][]int {
	out := make(map[int][]int, GroupCount)
	for group, l := range t.lists {
		out[group] = l.Vlans()
	}
	return out
}

func (t *TrunkSet) list(group int) (*ModeList, error) {
	if group < 0 || group >= GroupCount {
		return nil, fmt.Errorf("%w: %d", ErrGroupRange, group)
	}
	return t.lists[group], nil
}

func (t *TrunkSet) listForVlan(vlanID int) (*ModeList, error) {
	group, err := GroupForVlan(vlanID)
	if err != nil {
		return nil, err
	}
	return t.lists[group], nil
}
