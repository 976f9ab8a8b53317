package validation

import (
	"fmt"

	"service-validation/internal/domain"
)

// Accessibility minimum door width. Note the sub-1 threshold: every other
// door check in the system is in millimeters, this one reads as meters.
// Preserved as-is because the resulting warning text is part of the
// observable contract; see DESIGN.md.
const accessibilityMinDoorWidth = 0.9

// GuardExecutor evaluates one jurisdiction guard rule against the raw
// payload, reporting whether the guard fired.
type GuardExecutor interface {
	Evaluate(rule domain.GuardRule, payload map[string]any) (bool, error)
}

// CodeEvaluator checks a design against the building-code rule table for a
// given region and building type. The table is read-only after construction
// and may be shared across concurrent calls.
type CodeEvaluator struct {
	table  *domain.RuleTable
	guards GuardExecutor
}

// NewCodeEvaluator builds an evaluator over the given table. guards may be
// nil, in which case rule-set guard rules are skipped.
func NewCodeEvaluator(table *domain.RuleTable, guards GuardExecutor) *CodeEvaluator {
	if table == nil {
		table = domain.DefaultRuleTable()
	}
	return &CodeEvaluator{table: table, guards: guards}
}

// Validate runs the building-code rule set for one design. An unknown
// region or building type produces a single descriptive error and no
// further checks. Panics are converted into a single-error invalid
// outcome, same policy as the geometry evaluator.
func (c *CodeEvaluator) Validate(p *domain.DesignPayload, buildingType, region string) (out *domain.ValidationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = &domain.ValidationOutcome{
				Valid:    false,
				Errors:   []string{fmt.Sprintf("building code validation error: %v", r)},
				Warnings: []string{},
			}
		}
	}()

	rs, err := c.table.Lookup(region, buildingType)
	if err != nil {
		return &domain.ValidationOutcome{
			Valid:    false,
			Errors:   []string{err.Error()},
			Warnings: []string{},
		}
	}

	out = &domain.ValidationOutcome{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
		Groups:   map[string]bool{},
	}

	c.checkRooms(p, rs, out)
	if p.Dimensions != nil && p.Dimensions.Height != nil {
		c.checkHeight(*p.Dimensions.Height, rs, out)
	}
	if rs.FireSafetyRequirements {
		c.checkFireSafety(p, out)
	}
	if rs.AccessibilityRequirements {
		c.checkAccessibility(p, out)
	}
	c.applyGuards(p, rs, out)

	score := out.GroupRatio()
	out.ComplianceScore = &score
	out.Valid = len(out.Errors) == 0
	return out
}

func (c *CodeEvaluator) checkRooms(p *domain.DesignPayload, rs domain.RuleSet, out *domain.ValidationOutcome) {
	groupOK := true

	present := make(map[string]bool, len(p.Rooms))
	for _, r := range p.Rooms {
		present[r.Type] = true
	}
	for _, required := range rs.RequiredRooms {
		if !present[required] {
			out.Errors = append(out.Errors, fmt.Sprintf("missing required room: %s", required))
			groupOK = false
		}
	}

	out.RoomCompliance = make(map[int]domain.CheckResult, len(p.Rooms))
	for i, room := range p.Rooms {
		rc := domain.CheckResult{Valid: true}

		if area, ok := room.ResolvedArea(); ok {
			if area < rs.MinRoomArea {
				rc.Errors = append(rc.Errors, fmt.Sprintf("room %d: area %.1f m2 below code minimum %.1f m2", i, area, rs.MinRoomArea))
			} else if area > rs.MaxRoomArea {
				rc.Warnings = append(rc.Warnings, fmt.Sprintf("room %d: area %.1f m2 above code maximum %.1f m2", i, area, rs.MaxRoomArea))
			}
			if room.WindowArea != nil && area > 0 && *room.WindowArea/area < rs.MinWindowAreaRatio {
				rc.Errors = append(rc.Errors, fmt.Sprintf("room %d: window area ratio %.2f below code minimum %.2f", i, *room.WindowArea/area, rs.MinWindowAreaRatio))
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

	out.Groups[groupRooms] = groupOK
}

func (c *CodeEvaluator) checkHeight(height float64, rs domain.RuleSet, out *domain.ValidationOutcome) {
	groupOK := true
	if height < rs.MinCeilingHeight {
		out.Errors = append(out.Errors, fmt.Sprintf("ceiling height %.2f m below code minimum %.2f m", height, rs.MinCeilingHeight))
		groupOK = false
	}
	out.Groups[groupHeight] = groupOK
}

// Fire-safety gaps are advisory: the group never fails, it only produces
// warnings. Escalating these to hard errors is a pending product decision.
func (c *CodeEvaluator) checkFireSafety(p *domain.DesignPayload, out *domain.ValidationOutcome) {
	for _, key := range []string{"escape_routes", "fire_alarm", "fire_extinguishers"} {
		if !p.Has(key) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("fire safety: %s not specified", key))
		}
	}
	out.Groups[groupFireSafety] = true
}

// Accessibility gaps are advisory as well.
func (c *CodeEvaluator) checkAccessibility(p *domain.DesignPayload, out *domain.ValidationOutcome) {
	for _, key := range []string{"ramps", "elevator"} {
		if !p.Has(key) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("accessibility: %s not specified", key))
		}
	}
	for i, door := range p.Doors {
		if door.Width < accessibilityMinDoorWidth {
			out.Warnings = append(out.Warnings, fmt.Sprintf("accessibility: door %d width %.2f below minimum %.2f", i, door.Width, accessibilityMinDoorWidth))
		}
	}
	out.Groups[groupAccess] = true
}

// applyGuards evaluates the rule set's jsonlogic guards. A guard that
// cannot be evaluated is skipped; a fired guard contributes a warning, or
// an error when the guard is declared blocking. Guards are the extension
// seam for jurisdiction rules beyond the fixed threshold table and do not
// count toward the compliance score.
func (c *CodeEvaluator) applyGuards(p *domain.DesignPayload, rs domain.RuleSet, out *domain.ValidationOutcome) {
	if c.guards == nil || len(rs.Guards) == 0 {
		return
	}
	payload := p.ToMap()
	for _, guard := range rs.Guards {
		fired, err := c.guards.Evaluate(guard, payload)
		if err != nil || !fired {
			continue
		}
		msg := guard.Message
		if msg == "" {
			msg = fmt.Sprintf("guard %s fired", guard.ID)
		}
		if guard.Blocking {
			out.Errors = append(out.Errors, msg)
		} else {
			out.Warnings = append(out.Warnings, msg)
		}
	}
}
