package vlantrunk

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrunkSetRouting(t *testing.T) {
	trunk := NewTrunkSet()

	for _, vlanID := range []int{1, 1024, 1025, 2049, 3073, 4094} {
		require.NoError(t, trunk.AddVlan(vlanID))
		ok, err := trunk.HasVlan(vlanID)
		require.NoError(t, err)
		assert.True(t, ok, "vlan %d", vlanID)
	}

	// 1024 is on the group 0/1 boundary and routes to group 0.
	vlans, err := trunk.Vlans(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1024}, vlans)
	vlans, err = trunk.Vlans(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1025}, vlans)
}

func TestTrunkSetRoutesSharedBitIndex(t *testing.T) {
	// VLAN 1 and VLAN 1025 share bit index 0 in their groups' bitmaps;
	// routing by group keeps them distinct at the set level.
	trunk := NewTrunkSet()
	require.NoError(t, trunk.AddVlan(1025))

	ok, err := trunk.HasVlan(1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = trunk.HasVlan(1025)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTrunkSetInvalidVlan(t *testing.T) {
	trunk := NewTrunkSet()

	assert.ErrorIs(t, trunk.AddVlan(0), ErrVlanRange)
	assert.ErrorIs(t, trunk.AddVlan(4095), ErrVlanRange)
	assert.ErrorIs(t, trunk.RemoveVlan(0), ErrVlanRange)
	_, err := trunk.HasVlan(-5)
	assert.ErrorIs(t, err, ErrVlanRange)
}

func TestTrunkSetInvalidGroup(t *testing.T) {
	trunk := NewTrunkSet()
	s := "00" + strings.Repeat(" 00", GroupBytes-1)

	for _, group := range []int{-1, 4, 100} {
		assert.ErrorIs(t, trunk.AddTrunkString(s, group), ErrGroupRange, "group %d", group)
		_, err := trunk.TrunkString(group)
		assert.ErrorIs(t, err, ErrGroupRange, "group %d", group)
		_, err = trunk.Vlans(group)
		assert.ErrorIs(t, err, ErrGroupRange, "group %d", group)
	}
}

func TestTrunkSetRemove(t *testing.T) {
	trunk := NewTrunkSet()
	require.NoError(t, trunk.AddVlan(2100))

	require.NoError(t, trunk.RemoveVlan(2100))
	ok, err := trunk.HasVlan(2100)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a VLAN that was never added is fine.
	require.NoError(t, trunk.RemoveVlan(2100))
	require.NoError(t, trunk.RemoveVlan(9))
}

func TestTrunkSetStartsEmpty(t *testing.T) {
	trunk := NewTrunkSet()
	empty := "00" + strings.Repeat(" 00", GroupBytes-1)

	exports := trunk.TrunkStrings()
	require.Len(t, exports, GroupCount)
	for group, s := range exports {
		assert.Equal(t, empty, s, "group %d", group)
	}
	for group, vlans := range trunk.AllVlans() {
		assert.Empty(t, vlans, "group %d", group)
	}
}

func TestTrunkSetRoundTrip(t *testing.T) {
	vlans := []int{2, 9, 512, 1000, 1024}

	trunk := NewTrunkSet()
	for _, v := range vlans {
		require.NoError(t, trunk.AddVlan(v))
	}

	s, err := trunk.TrunkString(0)
	require.NoError(t, err)

	fresh := NewTrunkSet()
	require.NoError(t, fresh.AddTrunkString(s, 0))

	sorted := append([]int(nil), vlans...)
	sort.Ints(sorted)
	got, err := fresh.Vlans(0)
	require.NoError(t, err)
	assert.Equal(t, sorted, got)
}

func TestTrunkSetBulkViews(t *testing.T) {
	trunk := NewTrunkSet()
	require.NoError(t, trunk.AddVlan(10))
	require.NoError(t, trunk.AddVlan(1030))
	require.NoError(t, trunk.AddVlan(2060))
	require.NoError(t, trunk.AddVlan(3090))

	all := trunk.AllVlans()
	require.Len(t, all, GroupCount)
	assert.Equal(t, []int{10}, all[0])
	assert.Equal(t, []int{1030}, all[1])
	assert.Equal(t, []int{2060}, all[2])
	assert.Equal(t, []int{3090}, all[3])

	for group, s := range trunk.TrunkStrings() {
		perGroup, err := trunk.TrunkString(group)
		require.NoError(t, err)
		assert.Equal(t, perGroup, s)
	}
}
