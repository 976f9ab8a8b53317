package validation

import (
	"fmt"

	"service-validation/internal/domain"
)

// Check group names shared by the evaluators.
const (
	groupRooms        = "rooms"
	groupCompleteness = "completeness"
	groupDimensions   = "dimensions"
	groupStructure    = "structure"
	groupHeight       = "height"
	groupFireSafety   = "fire_safety"
	groupAccess       = "accessibility"
)

// GeometryEvaluator checks room dimensions, proportions and structural
// plausibility against fixed limits. It holds no mutable state and is safe
// for concurrent use.
type GeometryEvaluator struct {
	limits domain.GeometryLimits
}

func NewGeometryEvaluator(limits domain.GeometryLimits) *GeometryEvaluator {
	return &GeometryEvaluator{limits: limits}
}

// Validate runs the full geometry rule set for one design. Errors mark the
// design invalid; warnings are advisory only. A panic anywhere inside is
// converted into a single-error invalid outcome so the caller always gets
// a structured result.
func (g *GeometryEvaluator) Validate(p *domain.DesignPayload, buildingType string) (out *domain.ValidationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = &domain.ValidationOutcome{
				Valid:    false,
				Errors:   []string{fmt.Sprintf("geometry validation error: %v", r)},
				Warnings: []string{},
			}
		}
	}()

	out = &domain.ValidationOutcome{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
		Groups:   map[string]bool{},
	}

	if len(p.Rooms) > 0 {
		g.checkRooms(p, buildingType, out)
	}
	if buildingType == "residential" || buildingType == "commercial" {
		g.checkCompleteness(p, buildingType, out)
	}
	if p.Dimensions != nil {
		g.checkDimensions(p.Dimensions, out)
	}
	if p.Structure != nil {
		g.checkStructure(p.Structure, out)
	}

	out.Valid = len(out.Errors) == 0
	return out
}

func (g *GeometryEvaluator) checkRooms(p *domain.DesignPayload, buildingType string, out *domain.ValidationOutcome) {
	out.RoomCompliance = make(map[int]domain.CheckResult, len(p.Rooms))
	report := &domain.RoomsReport{RoomCount: len(p.Rooms)}
	groupOK := true

	for i, room := range p.Rooms {
		rc := domain.CheckResult{Valid: true}

		if area, ok := room.ResolvedArea(); ok {
			report.TotalArea += area
			if area < g.limits.MinRoomArea {
				rc.Errors = append(rc.Errors, fmt.Sprintf("room %d: area %.1f m2 below minimum %.1f m2", i, area, g.limits.MinRoomArea))
			} else if area > g.limits.MaxRoomArea {
				rc.Warnings = append(rc.Warnings, fmt.Sprintf("room %d: area %.1f m2 above maximum %.1f m2", i, area, g.limits.MaxRoomArea))
			}

			if room.WindowArea != nil && area > 0 {
				if *room.WindowArea/area < g.limits.MinWindowAreaRatio {
					rc.Errors = append(rc.Errors, fmt.Sprintf("room %d: window area ratio %.2f below minimum %.2f", i, *room.WindowArea/area, g.limits.MinWindowAreaRatio))
				}
			}
		}

		if room.Length != nil && room.Width != nil {
			l, w := *room.Length, *room.Width
			if l <= 0 || w <= 0 {
				rc.Errors = append(rc.Errors, fmt.Sprintf("room %d: sides must be positive", i))
			} else {
				ratio := l / w
				if w > l {
					ratio = w / l
				}
				if ratio > g.limits.MaxAspectRatio {
					rc.Warnings = append(rc.Warnings, fmt.Sprintf("room %d: aspect ratio %.1f exceeds %.1f", i, ratio, g.limits.MaxAspectRatio))
				}
			}
		}

		if room.Height != nil {
			if *room.Height < g.limits.MinCeilingHeight {
				rc.Errors = append(rc.Errors, fmt.Sprintf("room %d: ceiling height %.2f m below minimum %.2f m", i, *room.Height, g.limits.MinCeilingHeight))
			} else if *room.Height > g.limits.MaxCeilingHeight {
				rc.Warnings = append(rc.Warnings, fmt.Sprintf("room %d: ceiling height %.2f m above typical maximum %.2f m", i, *room.Height, g.limits.MaxCeilingHeight))
			}
		}

		rc.Valid = len(rc.Errors) == 0
		if !rc.Valid {
			groupOK = false
		}
		out.RoomCompliance[i] = rc
		out.Errors = append(out.Errors, rc.Errors...)
		out.Warnings = append(out.Warnings, rc.Warnings...)
	}

	if buildingType == "residential" {
		if report.TotalArea < g.limits.MinResidentialTotalArea {
			out.Warnings = append(out.Warnings, fmt.Sprintf("total area %.1f m2 is small for a residential design", report.TotalArea))
		} else if report.TotalArea > g.limits.MaxResidentialTotalArea {
			out.Warnings = append(out.Warnings, fmt.Sprintf("total area %.1f m2 is large for a residential design", report.TotalArea))
		}
	}

	out.Rooms = report
	out.Groups[groupRooms] = groupOK
}

func (g *GeometryEvaluator) checkCompleteness(p *domain.DesignPayload, buildingType string, out *domain.ValidationOutcome) {
	has := func(roomType string) bool {
		for _, r := range p.Rooms {
			if r.Type == roomType {
				return true
			}
		}
		return false
	}

	groupOK := true
	switch buildingType {
	case "residential":
		if !has("bathroom") {
			out.Errors = append(out.Errors, "residential design must include a bathroom")
			groupOK = false
		}
		if !has("bedroom") {
			out.Warnings = append(out.Warnings, "residential design has no bedroom")
		}
	case "commercial":
		if !has("office") {
			out.Warnings = append(out.Warnings, "commercial design has no office space")
		}
	}
	out.Groups[groupCompleteness] = groupOK
}

func (g *GeometryEvaluator) checkDimensions(d *domain.Dimensions, out *domain.ValidationOutcome) {
	groupOK := true
	if d.Height != nil && *d.Height < g.limits.MinCeilingHeight {
		out.Errors = append(out.Errors, fmt.Sprintf("overall height %.2f m below minimum %.2f m", *d.Height, g.limits.MinCeilingHeight))
		groupOK = false
	}
	out.Groups[groupDimensions] = groupOK
}

func (g *GeometryEvaluator) checkStructure(s *domain.Structure, out *domain.ValidationOutcome) {
	groupOK := true
	if !domain.StructureTypes[s.Type] {
		out.Errors = append(out.Errors, fmt.Sprintf("structure type %q must be one of concrete, steel, wood, masonry", s.Type))
		groupOK = false
	}
	if s.Floors != nil {
		if *s.Floors <= 0 {
			out.Errors = append(out.Errors, "structure floors must be a positive integer")
			groupOK = false
		} else if *s.Floors > g.limits.MaxFloors {
			out.Warnings = append(out.Warnings, fmt.Sprintf("structure has %d floors, above typical maximum %d", *s.Floors, g.limits.MaxFloors))
		}
	}
	out.Groups[groupStructure] = groupOK
}
