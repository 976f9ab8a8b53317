package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDesignPatch(t *testing.T) {
	original := map[string]any{
		"rooms": []any{
			map[string]any{"type": "bedroom", "area": 14.0},
		},
		"dimensions": map[string]any{"height": 2.6},
	}

	t.Run("replace and add", func(t *testing.T) {
		patch := []byte(`[
			{"op": "replace", "path": "/dimensions/height", "value": 2.2},
			{"op": "add", "path": "/rooms/-", "value": {"type": "bathroom", "area": 6.0}}
		]`)
		updated, err := ApplyDesignPatch(original, patch)
		require.NoError(t, err)

		dims := updated["dimensions"].(map[string]any)
		assert.Equal(t, 2.2, dims["height"])
		assert.Len(t, updated["rooms"], 2)

		// The original payload is untouched.
		assert.Equal(t, 2.6, original["dimensions"].(map[string]any)["height"])
		assert.Len(t, original["rooms"], 1)
	})

	t.Run("malformed patch", func(t *testing.T) {
		_, err := ApplyDesignPatch(original, []byte(`{"not": "a patch"}`))
		assert.Error(t, err)
	})

	t.Run("patch against missing path", func(t *testing.T) {
		_, err := ApplyDesignPatch(original, []byte(`[{"op": "replace", "path": "/nope/x", "value": 1}]`))
		assert.Error(t, err)
	})
}
