// trunkcheck runs a round-trip sanity check of the vlantrunk codec without
// touching any device.
package main

import (
	"log"
	"strings"

	"snmp-vlan-trunk/internal/snmp"
	"snmp-vlan-trunk/internal/vlantrunk"

	"github.com/gosnmp/gosnmp"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// First bit set, everything else clear: a trunk carrying only the
	// group's first VLAN.
	testString := "80" + strings.Repeat(" 00", vlantrunk.GroupBytes-1)
	log.Printf("Test string is: %s", testString)

	if !vlantrunk.IsValidTrunkString(testString) {
		log.Fatal("test string failed validation")
	}

	trunk := vlantrunk.NewTrunkSet()

	firstVlans := make(map[int]int)
	for group := 0; group < vlantrunk.GroupCount; group++ {
		vlanID := 1 + group*vlantrunk.GroupSize
		firstVlans[group] = vlanID
		log.Printf("Adding VLAN %d to group %d", vlanID, group)
		if err := trunk.AddVlan(vlanID); err != nil {
			log.Fatalf("Adding VLAN %d failed: %v", vlanID, err)
		}
		ok, err := trunk.HasVlan(vlanID)
		if err != nil || !ok {
			log.Fatalf("VLAN %d does not appear to be set (err: %v)", vlanID, err)
		}
	}

	for group, trunkString := range trunk.TrunkStrings() {
		if trunkString != testString {
			log.Fatalf("Group %d has invalid data! String: %s", group, trunkString)
		}
		log.Printf("Group %d trunk string matched test string", group)
	}

	for group := 0; group < vlantrunk.GroupCount; group++ {
		log.Printf("Re-importing test string into group %d", group)
		if err := trunk.AddTrunkString(testString, group); err != nil {
			log.Fatalf("Import for group %d failed: %v", group, err)
		}
	}

	for group, vlans := range trunk.AllVlans() {
		log.Printf("Group %d has vlans: %v", group, vlans)
		if len(vlans) != 1 || vlans[0] != firstVlans[group] {
			log.Fatalf("Group %d has invalid data! Missing VLAN: %d", group, firstVlans[group])
		}
	}

	// Run the same payload through the PDU adapter path.
	octets, err := snmp.ParseOctets(testString)
	if err != nil {
		log.Fatalf("Parsing test string octets failed: %v", err)
	}
	fresh := vlantrunk.NewTrunkSet()
	err = snmp.ApplyPDU(fresh, gosnmp.SnmpPDU{
		Name:  ".1.3.6.1.4.1.89.48.61.1.2.5",
		Type:  gosnmp.OctetString,
		Value: octets,
	})
	if err != nil {
		log.Fatalf("Applying PDU failed: %v", err)
	}
	if ok, _ := fresh.HasVlan(1); !ok {
		log.Fatal("PDU import did not set VLAN 1")
	}
	pdus, err := snmp.TrunkPDUs(fresh, 5)
	if err != nil {
		log.Fatalf("Building trunk PDUs failed: %v", err)
	}
	for _, pdu := range pdus {
		log.Printf("SET payload ready for %s (%d octets)", pdu.Name, len(pdu.Value.([]byte)))
	}

	log.Print("All checks passed")
}
