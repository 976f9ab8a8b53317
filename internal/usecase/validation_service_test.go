package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-validation/internal/domain"
	infrayaml "service-validation/internal/infrastructure/yaml"
	pkgvalidation "service-validation/pkg/validation"
)

const testTable = `
version: v1
regions:
  TR:
    residential:
      min_room_area: 5.0
      max_room_area: 100.0
      min_ceiling_height: 2.4
      min_window_area_ratio: 0.1
      required_rooms: [bathroom]
      fire_safety_requirements: false
`

func testPayload() map[string]any {
	return map[string]any{
		"rooms": []any{
			map[string]any{"type": "bedroom", "area": 14.0},
			map[string]any{"type": "bathroom", "area": 6.0},
			map[string]any{"type": "kitchen", "area": 12.0},
		},
		"walls":     []any{map[string]any{"start": map[string]any{"x": 0.0, "y": 0.0}, "end": map[string]any{"x": 200.0, "y": 0.0}}},
		"doors":     []any{map[string]any{"width": 900.0}},
		"corridors": []any{map[string]any{"width": 1300.0}},
	}
}

func TestValidationService_FullFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulesets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTable), 0o644))

	svc, err := NewValidationService(context.Background(), &infrayaml.Loader{Path: path}, "v1", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", svc.RuleTable().Version)

	t.Run("comprehensive pass", func(t *testing.T) {
		res := svc.ValidateComprehensive(testPayload(), "residential", "TR", nil)
		assert.Equal(t, domain.StatusValid, res.Status)
		assert.True(t, res.OverallSuccess)
		assert.Empty(t, res.Errors)
	})

	t.Run("loaded table drives the code evaluator", func(t *testing.T) {
		payload := testPayload()
		payload["rooms"] = []any{map[string]any{"type": "bedroom", "area": 14.0}}
		res := svc.ValidateComprehensive(payload, "residential", "TR", nil)
		assert.Contains(t, res.Errors, "missing required room: bathroom")
	})

	t.Run("unknown region reported not crashed", func(t *testing.T) {
		res := svc.ValidateComprehensive(testPayload(), "residential", "ZZ", nil)
		assert.False(t, res.OverallSuccess)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[len(res.Errors)-1], "unsupported region")
	})

	t.Run("quick path", func(t *testing.T) {
		rep := svc.ValidateQuick(testPayload(), "residential")
		assert.Equal(t, pkgvalidation.StatusValid, rep.Status)
		assert.Empty(t, rep.Errors)
	})
}

func TestValidationService_DefaultTable(t *testing.T) {
	svc, err := NewValidationService(context.Background(), nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "builtin", svc.RuleTable().Version)

	_, err = svc.RuleTable().Lookup("US", "commercial")
	assert.NoError(t, err)
}

type failingLoader struct{}

func (failingLoader) Load(ctx context.Context, version string) (*domain.RuleTable, error) {
	return nil, errors.New("disk on fire")
}

func TestValidationService_LoaderFailure(t *testing.T) {
	_, err := NewValidationService(context.Background(), failingLoader{}, "v1", nil)
	assert.ErrorContains(t, err, "load rule table")
}
