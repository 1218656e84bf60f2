// Package snmp adapts trunk mode list data between vlantrunk sets and the
// PDU payloads a gosnmp transport layer carries. It never opens a
// connection; it only converts what a GET/WALK returned or what a SET
// should send.
package snmp

import (
	"encoding/hex"
	"fmt"
	"strings"

	"snmp-vlan-trunk/internal/vlantrunk"

	"github.com/gosnmp/gosnmp"
)

// ApplyPDU merges a trunk mode list PDU into set. The owning group is
// resolved from the PDU name. Devices return OctetString values as raw
// bytes; some tooling hands them over pre-formatted, so both are accepted.
func ApplyPDU(set *vlantrunk.TrunkSet, pdu gosnmp.SnmpPDU) error {
	group, err := vlantrunk.GroupForOID(pdu.Name)
	if err != nil {
		return err
	}
	switch v := pdu.Value.(type) {
	case []byte:
		s, err := FormatOctets(v)
		if err != nil {
			return fmt.Errorf("%s: %w", pdu.Name, err)
		}
		return set.AddTrunkString(s, group)
	case string:
		return set.AddTrunkString(v, group)
	default:
		return fmt.Errorf("unexpected value type %T for %s", pdu.Value, pdu.Name)
	}
}

// TrunkPDUs builds one OctetString SET payload per group for the given
// interface index, in group order.
func TrunkPDUs(set *vlantrunk.TrunkSet, ifIndex int) ([]gosnmp.SnmpPDU, error) {
	pdus := make([]gosnmp.SnmpPDU, 0, vlantrunk.GroupCount)
	for group := 0; group < vlantrunk.GroupCount; group++ {
		prefix, err := vlantrunk.OIDPrefix(group)
		if err != nil {
			return nil, err
		}
		s, err := set.TrunkString(group)
		if err != nil {
			return nil, err
		}
		octets, err := ParseOctets(s)
		if err != nil {
			return nil, err
		}
		pdus = append(pdus, gosnmp.SnmpPDU{
			Name:  fmt.Sprintf("%s%d", prefix, ifIndex),
			Type:  gosnmp.OctetString,
			Value: octets,
		})
	}
	return pdus, nil
}

// FormatOctets renders one group's raw octets in the space-separated hex
// form.
func FormatOctets(b []byte) (string, error) {
	if len(b) != vlantrunk.GroupBytes {
		return "", fmt.Errorf("expected %d octets, got %d", vlantrunk.GroupBytes, len(b))
	}
	parts := make([]string, len(b))
	for i, octet := range b {
		parts[i] = fmt.Sprintf("%02X", octet)
	}
	return strings.Join(parts, " "), nil
}

// ParseOctets converts the space-separated hex form back into raw octets.
func ParseOctets(s string) ([]byte, error) {
	if !vlantrunk.IsValidTrunkString(s) {
		return nil, fmt.Errorf("%w: %q", vlantrunk.ErrOctetString, s)
	}
	return hex.DecodeString(strings.ReplaceAll(s, " ", ""))
}
