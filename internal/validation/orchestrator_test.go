package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-validation/internal/domain"
)

func newOrchestrator() *Orchestrator {
	return NewOrchestrator(
		NewGeometryEvaluator(domain.DefaultGeometryLimits()),
		NewCodeEvaluator(nil, nil),
	)
}

func TestOrchestrator_CleanDesign(t *testing.T) {
	o := newOrchestrator()
	res := o.Validate(residentialTR(), "residential", "TR", nil)

	assert.Equal(t, domain.StatusValid, res.Status)
	assert.True(t, res.OverallSuccess)
	assert.Empty(t, res.Errors)
	assert.InDelta(t, 1.0, res.ConfidenceScore, 1e-9)
	require.Len(t, res.Results, 3)
}

func TestOrchestrator_SubsetSelection(t *testing.T) {
	o := newOrchestrator()

	t.Run("schema only", func(t *testing.T) {
		res := o.Validate(map[string]any{"rooms": "nope"}, "residential", "TR", []string{KindSchema})
		require.Len(t, res.Results, 1)
		assert.Equal(t, []string{"rooms_must_be_array"}, res.Errors)
		assert.False(t, res.OverallSuccess)
		assert.InDelta(t, 0.0, res.ConfidenceScore, 1e-9)
	})

	t.Run("geometry only skips code lookups entirely", func(t *testing.T) {
		res := o.Validate(residentialTR(), "residential", "ZZ-not-a-region", []string{KindGeometric})
		assert.True(t, res.OverallSuccess)
		assert.NotContains(t, res.Results, KindCode)
	})

	t.Run("unknown kind names are ignored", func(t *testing.T) {
		res := o.Validate(residentialTR(), "residential", "TR", []string{KindSchema, "telepathy"})
		require.Len(t, res.Results, 1)
	})
}

func TestOrchestrator_MergeOrder(t *testing.T) {
	o := newOrchestrator()

	// One failure per evaluator: a wrong-typed walls field (schema), an
	// undersized room (geometry) and a missing required room (code).
	payload := map[string]any{
		"walls": "nope",
		"rooms": []any{
			map[string]any{"type": "bathroom", "area": 2.0},
			map[string]any{"type": "bedroom", "area": 14.0},
			map[string]any{"type": "kitchen", "area": 10.0},
		},
		"dimensions":         map[string]any{"height": 2.6},
		"escape_routes":      true,
		"fire_alarm":         true,
		"fire_extinguishers": true,
	}
	res := o.Validate(payload, "residential", "TR", nil)

	require.Len(t, res.Errors, 3)
	assert.Equal(t, "walls_must_be_array", res.Errors[0])
	assert.Contains(t, res.Errors[1], "below minimum")
	assert.Contains(t, res.Errors[2], "below code minimum")
	assert.Equal(t, domain.StatusRequiresReview, res.Status)
	assert.False(t, res.OverallSuccess)
	assert.InDelta(t, 0.0, res.ConfidenceScore, 1e-9)
}

func TestOrchestrator_StatusTiers(t *testing.T) {
	o := newOrchestrator()

	// Three degenerate rooms produce three geometry errors plus three
	// missing required rooms: comfortably past the rejection threshold.
	payload := map[string]any{
		"rooms": []any{
			map[string]any{"type": "a", "area": 1.0},
			map[string]any{"type": "b", "area": 1.0},
			map[string]any{"type": "c", "area": 1.0},
		},
	}
	res := o.Validate(payload, "residential", "TR", nil)
	assert.Equal(t, domain.StatusRejected, res.Status)
	assert.Greater(t, len(res.Errors), 3)
}

func TestOrchestrator_WarningsNeverChangeStatus(t *testing.T) {
	o := newOrchestrator()
	payload := residentialTR()
	payload["rooms"] = append(payload["rooms"].([]any), map[string]any{"type": "living", "area": 150.0})
	delete(payload, "fire_alarm")

	res := o.Validate(payload, "residential", "TR", nil)
	assert.Equal(t, domain.StatusValid, res.Status)
	assert.True(t, res.OverallSuccess)
	assert.NotEmpty(t, res.Warnings)
}

func TestOrchestrator_Deterministic(t *testing.T) {
	o := newOrchestrator()
	payload := map[string]any{
		"walls": "nope",
		"rooms": []any{map[string]any{"type": "closet", "area": 1.0}},
	}
	first := o.Validate(payload, "residential", "TR", nil)
	second := o.Validate(payload, "residential", "TR", nil)
	assert.Equal(t, first, second)
}
