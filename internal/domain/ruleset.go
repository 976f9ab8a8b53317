package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRegion       = errors.New("unsupported region")
	ErrUnknownBuildingType = errors.New("unsupported building type")
)

// GuardRule is a jurisdiction-specific rule expressed as a jsonlogic
// expression over the raw design payload (exposed under the "design" var).
// A truthy result means the guard fired.
type GuardRule struct {
	ID       string         `json:"id" yaml:"id"`
	Logic    map[string]any `json:"logic" yaml:"logic"`
	Message  string         `json:"message" yaml:"message"`
	Blocking bool           `json:"blocking" yaml:"blocking"`
}

// RuleSet is the building-code threshold table for one (region, building
// type) pair. Loaded once at evaluator construction and never mutated, so
// it is safe to share across concurrent validations.
type RuleSet struct {
	MinRoomArea               float64     `json:"min_room_area" yaml:"min_room_area"`
	MaxRoomArea               float64     `json:"max_room_area" yaml:"max_room_area"`
	MinCeilingHeight          float64     `json:"min_ceiling_height" yaml:"min_ceiling_height"`
	MinWindowAreaRatio        float64     `json:"min_window_area_ratio" yaml:"min_window_area_ratio"`
	RequiredRooms             []string    `json:"required_rooms" yaml:"required_rooms"`
	FireSafetyRequirements    bool        `json:"fire_safety_requirements" yaml:"fire_safety_requirements"`
	AccessibilityRequirements bool        `json:"accessibility_requirements" yaml:"accessibility_requirements"`
	Guards                    []GuardRule `json:"guards,omitempty" yaml:"guards,omitempty"`
}

// RuleTable holds the rule sets for every supported jurisdiction, keyed by
// region and then building type.
type RuleTable struct {
	Version string                        `json:"version" yaml:"version"`
	Regions map[string]map[string]RuleSet `json:"regions" yaml:"regions"`
}

// Lookup resolves the rule set for a region and building type. The two
// miss cases are distinguished so the evaluator can report which part of
// the request was unsupported.
func (t *RuleTable) Lookup(region, buildingType string) (RuleSet, error) {
	byType, ok := t.Regions[region]
	if !ok {
		return RuleSet{}, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	rs, ok := byType[buildingType]
	if !ok {
		return RuleSet{}, fmt.Errorf("%w for region %s: %s", ErrUnknownBuildingType, region, buildingType)
	}
	return rs, nil
}

// DefaultRuleTable returns the compiled-in jurisdiction table. Deployments
// that need different thresholds load a table through a RuleTableLoader
// instead; nothing in the evaluators assumes these exact regions.
func DefaultRuleTable() *RuleTable {
	return &RuleTable{
		Version: "builtin",
		Regions: map[string]map[string]RuleSet{
			"TR": {
				"residential": {
					MinRoomArea:               5.0,
					MaxRoomArea:               100.0,
					MinCeilingHeight:          2.4,
					MinWindowAreaRatio:        0.10,
					RequiredRooms:             []string{"bedroom", "bathroom", "kitchen"},
					FireSafetyRequirements:    true,
					AccessibilityRequirements: false,
				},
				"commercial": {
					MinRoomArea:               8.0,
					MaxRoomArea:               200.0,
					MinCeilingHeight:          2.7,
					MinWindowAreaRatio:        0.12,
					RequiredRooms:             []string{"office", "bathroom"},
					FireSafetyRequirements:    true,
					AccessibilityRequirements: true,
				},
			},
			"US": {
				"residential": {
					MinRoomArea:               6.5,
					MaxRoomArea:               120.0,
					MinCeilingHeight:          2.44,
					MinWindowAreaRatio:        0.10,
					RequiredRooms:             []string{"bedroom", "bathroom", "kitchen"},
					FireSafetyRequirements:    true,
					AccessibilityRequirements: false,
				},
				"commercial": {
					MinRoomArea:               9.0,
					MaxRoomArea:               250.0,
					MinCeilingHeight:          2.9,
					MinWindowAreaRatio:        0.15,
					RequiredRooms:             []string{"office", "bathroom"},
					FireSafetyRequirements:    true,
					AccessibilityRequirements: true,
				},
			},
		},
	}
}

// GeometryLimits holds the fixed numeric thresholds used by the geometry
// evaluator. Linear wall/door/corridor thresholds are millimeters; room
// dimensions are meters and square meters.
type GeometryLimits struct {
	MinRoomArea        float64 `json:"min_room_area" yaml:"min_room_area"`
	MaxRoomArea        float64 `json:"max_room_area" yaml:"max_room_area"`
	MinCeilingHeight   float64 `json:"min_ceiling_height" yaml:"min_ceiling_height"`
	MaxCeilingHeight   float64 `json:"max_ceiling_height" yaml:"max_ceiling_height"`
	MaxAspectRatio     float64 `json:"max_aspect_ratio" yaml:"max_aspect_ratio"`
	MinWindowAreaRatio float64 `json:"min_window_area_ratio" yaml:"min_window_area_ratio"`
	MinWallLength      float64 `json:"min_wall_length" yaml:"min_wall_length"`
	MinDoorWidth       float64 `json:"min_door_width" yaml:"min_door_width"`
	MaxDoorWidth       float64 `json:"max_door_width" yaml:"max_door_width"`
	MinCorridorWidth   float64 `json:"min_corridor_width" yaml:"min_corridor_width"`

	// Residential whole-design advisory band, square meters.
	MinResidentialTotalArea float64 `json:"min_residential_total_area" yaml:"min_residential_total_area"`
	MaxResidentialTotalArea float64 `json:"max_residential_total_area" yaml:"max_residential_total_area"`

	MaxFloors int `json:"max_floors" yaml:"max_floors"`
}

func DefaultGeometryLimits() GeometryLimits {
	return GeometryLimits{
		MinRoomArea:             5.0,
		MaxRoomArea:             100.0,
		MinCeilingHeight:        2.4,
		MaxCeilingHeight:        4.0,
		MaxAspectRatio:          3.0,
		MinWindowAreaRatio:      0.1,
		MinWallLength:           100.0,
		MinDoorWidth:            600.0,
		MaxDoorWidth:            2000.0,
		MinCorridorWidth:        1200.0,
		MinResidentialTotalArea: 30.0,
		MaxResidentialTotalArea: 300.0,
		MaxFloors:               50,
	}
}

// StructureTypes are the accepted structural systems.
var StructureTypes = map[string]bool{
	"concrete": true,
	"steel":    true,
	"wood":     true,
	"masonry":  true,
}
