package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRuleTableLoader(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`{
		"version": "v2",
		"regions": {
			"TR": {
				"residential": {
					"min_room_area": 5,
					"max_room_area": 100,
					"min_ceiling_height": 2.4,
					"min_window_area_ratio": 0.1,
					"required_rooms": ["bedroom", "bathroom", "kitchen"],
					"fire_safety_requirements": true
				}
			}
		}
	}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v2_rulesets.json"), content, 0o644))

	loader := NewFileRuleTableLoader(dir)
	table, err := loader.Load(context.Background(), "v2")
	require.NoError(t, err)

	assert.Equal(t, "v2", table.Version)
	rs, err := table.Lookup("TR", "residential")
	require.NoError(t, err)
	assert.Equal(t, 5.0, rs.MinRoomArea)
	assert.True(t, rs.FireSafetyRequirements)
	assert.Equal(t, []string{"bedroom", "bathroom", "kitchen"}, rs.RequiredRooms)

	_, err = loader.Load(context.Background(), "v404")
	assert.Error(t, err)
}
