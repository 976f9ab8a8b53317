package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
version: v1
regions:
  TR:
    residential:
      min_room_area: 5.0
      max_room_area: 100.0
      min_ceiling_height: 2.4
      min_window_area_ratio: 0.1
      required_rooms: [bedroom, bathroom, kitchen]
      fire_safety_requirements: true
      accessibility_requirements: false
      guards:
        - id: tall-building
          message: buildings over 40 floors need an additional permit
          logic:
            ">":
              - var: design.structure.floors
              - 40
`

func TestLoadRuleTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulesets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := LoadRuleTable(path)
	require.NoError(t, err)

	rs, err := table.Lookup("TR", "residential")
	require.NoError(t, err)
	assert.Equal(t, 2.4, rs.MinCeilingHeight)
	require.Len(t, rs.Guards, 1)
	assert.Equal(t, "tall-building", rs.Guards[0].ID)
	assert.Contains(t, rs.Guards[0].Logic, ">")
}

func TestLoadRuleTable_Missing(t *testing.T) {
	_, err := LoadRuleTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoader_VersionFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulesets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regions: {}\n"), 0o644))

	l := &Loader{Path: path}
	table, err := l.Load(context.Background(), "v7")
	require.NoError(t, err)
	assert.Equal(t, "v7", table.Version)
}
