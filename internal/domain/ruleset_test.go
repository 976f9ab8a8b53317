package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTable_Lookup(t *testing.T) {
	table := DefaultRuleTable()

	rs, err := table.Lookup("TR", "residential")
	require.NoError(t, err)
	assert.Equal(t, 5.0, rs.MinRoomArea)
	assert.Contains(t, rs.RequiredRooms, "bathroom")

	rs, err = table.Lookup("US", "commercial")
	require.NoError(t, err)
	assert.True(t, rs.AccessibilityRequirements)

	_, err = table.Lookup("ZZ", "residential")
	assert.ErrorIs(t, err, ErrUnknownRegion)

	_, err = table.Lookup("TR", "stadium")
	assert.ErrorIs(t, err, ErrUnknownBuildingType)
}

func TestGroupRatio(t *testing.T) {
	out := &ValidationOutcome{Groups: map[string]bool{"a": true, "b": false, "c": true, "d": true}}
	assert.InDelta(t, 0.75, out.GroupRatio(), 1e-9)

	empty := &ValidationOutcome{}
	assert.InDelta(t, 1.0, empty.GroupRatio(), 1e-9)
}
