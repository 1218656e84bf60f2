// Package vlantrunk converts between VLAN ID sets and the space-separated
// octet strings that switches expose for VLAN trunk membership over SNMP.
// The 4094 usable VLANs are split across four management objects of 1024
// VLANs each; this package handles the group routing, the bit-order
// reversal between the internal bitmap and the wire form, and the strict
// formatting of the exchanged strings. It performs no SNMP requests itself.
package vlantrunk

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Lowest and highest VLAN IDs supported by the switches.
	MinVlan = 1
	MaxVlan = 4094

	GroupCount = 4

	// VLANs in each group (4 OIDs == 4 groups of 1024). Also the number of
	// bits per group, so it must stay divisible by 8.
	GroupSize = 1024

	GroupBytes = GroupSize / 8
)

var (
	ErrVlanRange      = errors.New("vlan id out of range")
	ErrVlanNotInGroup = errors.New("vlan id not in group")
	ErrGroupRange     = errors.New("group id out of range")
	ErrOctetString    = errors.New("malformed vlan trunk string")
	ErrUnknownOID     = errors.New("oid not in any vlan group")
)

// Each group's trunk mode list object, as the OID prefix without the
// trailing interface index and as the MIB object name.
var groupOIDs = [GroupCount][2]string{
	{".1.3.6.1.4.1.89.48.61.1.2.", "vlanTrunkModeList1to1024"},
	{".1.3.6.1.4.1.89.48.61.1.3.", "vlanTrunkModeList1025to2048"},
	{".1.3.6.1.4.1.89.48.61.1.4.", "vlanTrunkModeList2049to3072"},
	{".1.3.6.1.4.1.89.48.61.1.5.", "vlanTrunkModeList3073to4094"},
}

func IsValidVlan(vlanID int) bool {
	return vlanID >= MinVlan && vlanID <= MaxVlan
}

func ValidateVlan(vlanID int) error {
	if !IsValidVlan(vlanID) {
		return fmt.Errorf("%w: %d", ErrVlanRange, vlanID)
	}
	return nil
}

// VlanInGroup reports whether the VLAN ID falls inside the group's range.
// The test is inclusive at both ends, so an ID on an exact group boundary
// satisfies it for two adjacent groups; GroupForVlan is the authority for
// which group actually owns a VLAN.
func VlanInGroup(vlanID, group int) bool {
	rel := vlanID - group*GroupSize
	return rel >= 0 && rel <= GroupSize
}

// GroupForVlan returns the group the VLAN falls under. Boundary IDs resolve
// to the lower of the two candidate groups.
func GroupForVlan(vlanID int) (int, error) {
	if err := ValidateVlan(vlanID); err != nil {
		return 0, err
	}
	group := 0
	for rest := vlanID; rest > GroupSize; rest -= GroupSize {
		group++
	}
	return group, nil
}

// BitIndexForVlan returns the VLAN's bit position within its owning group's
// bitmap, in [0, GroupSize).
func BitIndexForVlan(vlanID int) (int, error) {
	group, err := GroupForVlan(vlanID)
	if err != nil {
		return 0, err
	}
	return vlanID - group*GroupSize - 1, nil
}

// VlanForBit is the inverse of BitIndexForVlan for a known group.
func VlanForBit(bit, group int) int {
	return bit + 1 + group*GroupSize
}

// GroupForOID finds the group a trunk mode list identifier belongs to. The
// identifier may be a full OID (prefix plus interface index) or the object
// name.
func GroupForOID(oid string) (int, error) {
	for group, entry := range groupOIDs {
		if strings.HasPrefix(oid, entry[0]) || strings.HasPrefix(oid, entry[1]) {
			return group, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownOID, oid)
}

// OIDPrefix returns the group's OID prefix, without the interface index.
func OIDPrefix(group int) (string, error) {
	if group < 0 || group >= GroupCount {
		return "", fmt.Errorf("%w: %d", ErrGroupRange, group)
	}
	return groupOIDs[group][0], nil
}

// ObjectName returns the group's MIB object name.
func ObjectName(group int) (string, error) {
	if group < 0 || group >= GroupCount {
		return "", fmt.Errorf("%w: %d", ErrGroupRange, group)
	}
	return groupOIDs[group][1], nil
}
