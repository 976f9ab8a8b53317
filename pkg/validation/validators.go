package validation

import (
	"fmt"
	"math"
	"reflect"
)

// Thresholds for the lightweight checks. Linear measures are millimeters.
const (
	minWallLength    = 100.0
	minDoorWidth     = 600.0
	maxDoorWidth     = 2000.0
	minCorridorWidth = 1200.0
)

// ValidateSchema checks the raw payload shape. The three container checks
// are independent: a wrong-typed walls field does not stop the doors and
// rooms checks. Only a non-object payload short-circuits.
func ValidateSchema(payload any) []string {
	m, ok := payload.(map[string]any)
	if !ok {
		return []string{CodePayloadMustBeObject}
	}

	var errs []string
	for _, f := range []struct {
		key  string
		code string
	}{
		{"walls", CodeWallsMustBeArray},
		{"doors", CodeDoorsMustBeArray},
		{"rooms", CodeRoomsMustBeArray},
	} {
		if v, present := m[f.key]; present && !isSequence(v) {
			errs = append(errs, f.code)
		}
	}
	return errs
}

// ValidateGeometry checks wall lengths and door widths. A wall whose
// coordinates cannot be read is reported as too short: the check fails
// closed rather than guessing at malformed geometry.
func ValidateGeometry(payload any) []string {
	m, _ := payload.(map[string]any)
	var errs []string

	for i, v := range sequence(m["walls"]) {
		if length, ok := wallLength(v); !ok || length < minWallLength {
			errs = append(errs, fmt.Sprintf("wall_%d_too_short", i))
		}
	}

	for i, v := range sequence(m["doors"]) {
		width := numericField(v, "width")
		if width < minDoorWidth || width > maxDoorWidth {
			errs = append(errs, fmt.Sprintf("door_%d_width_out_of_range", i))
		}
	}

	return errs
}

// ValidateBuildingCode checks the jurisdictional minimums that apply on
// the lightweight path. Corridor width is only regulated for residential
// buildings.
func ValidateBuildingCode(payload any, buildingType string) []string {
	if buildingType != "residential" {
		return nil
	}
	m, _ := payload.(map[string]any)
	var errs []string
	for i, v := range sequence(m["corridors"]) {
		if numericField(v, "width") < minCorridorWidth {
			errs = append(errs, fmt.Sprintf("corridor_%d_below_min_width", i))
		}
	}
	return errs
}

// ValidateDesign runs the three lightweight checks and merges their codes
// in fixed order (schema, geometry, building code), then derives the
// triage status from the total count.
func ValidateDesign(payload any, buildingType string) Report {
	errs := ValidateSchema(payload)
	errs = append(errs, ValidateGeometry(payload)...)
	errs = append(errs, ValidateBuildingCode(payload, buildingType)...)
	if errs == nil {
		errs = []string{}
	}
	return Report{Status: StatusFor(len(errs)), Errors: errs}
}

func wallLength(v any) (float64, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return 0, false
	}
	sx, okA := pointCoord(m["start"], "x")
	sy, okB := pointCoord(m["start"], "y")
	ex, okC := pointCoord(m["end"], "x")
	ey, okD := pointCoord(m["end"], "y")
	if !okA || !okB || !okC || !okD {
		return 0, false
	}
	return math.Hypot(ex-sx, ey-sy), true
}

func pointCoord(v any, key string) (float64, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return 0, false
	}
	return toFloat(m[key])
}

// numericField reads a numeric member of a sequence element, defaulting to
// zero so that a missing or malformed value lands outside every accepted
// range.
func numericField(v any, key string) float64 {
	m, ok := v.(map[string]any)
	if !ok {
		return 0
	}
	f, _ := toFloat(m[key])
	return f
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// sequence normalizes any slice value into []any so callers can iterate
// payloads built both from decoded JSON and from typed test fixtures.
func sequence(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}
