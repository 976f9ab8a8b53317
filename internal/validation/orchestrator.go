package validation

import (
	"service-validation/internal/domain"
)

// Evaluator kinds accepted by the orchestrator.
const (
	KindSchema    = "schema"
	KindGeometric = "geometric"
	KindCode      = "code"
)

// allKinds is also the fixed merge order for errors and warnings.
var allKinds = []string{KindSchema, KindGeometric, KindCode}

// Orchestrator runs a selectable subset of the evaluators over one payload
// and merges their results into a single verdict. The evaluators share no
// state and each receives the same immutable payload, so they could run in
// any order; the merged lists are assembled in the fixed logical order
// regardless.
type Orchestrator struct {
	geometry *GeometryEvaluator
	code     *CodeEvaluator
}

func NewOrchestrator(geometry *GeometryEvaluator, code *CodeEvaluator) *Orchestrator {
	return &Orchestrator{geometry: geometry, code: code}
}

// Validate runs the selected evaluators (all three when kinds is empty)
// and merges errors, warnings, success and confidence. Unknown kind names
// are ignored.
func (o *Orchestrator) Validate(payload any, buildingType, region string, kinds []string) *domain.AggregateResult {
	selected := selectKinds(kinds)

	decoded := domain.DecodeDesign(payload)
	results := make(map[string]*domain.ValidationOutcome, len(selected))

	for kind := range selected {
		switch kind {
		case KindSchema:
			results[KindSchema] = Schema(payload)
		case KindGeometric:
			results[KindGeometric] = o.geometry.Validate(decoded, buildingType)
		case KindCode:
			results[KindCode] = o.code.Validate(decoded, buildingType, region)
		}
	}

	agg := &domain.AggregateResult{
		OverallSuccess: true,
		Errors:         []string{},
		Warnings:       []string{},
		Results:        results,
	}

	ran, passed := 0, 0
	for _, kind := range allKinds {
		out, ok := results[kind]
		if !ok {
			continue
		}
		ran++
		if out.Valid {
			passed++
		} else {
			agg.OverallSuccess = false
		}
		agg.Errors = append(agg.Errors, out.Errors...)
		agg.Warnings = append(agg.Warnings, out.Warnings...)
	}

	if ran > 0 {
		agg.ConfidenceScore = float64(passed) / float64(ran)
	} else {
		agg.ConfidenceScore = 1.0
	}
	agg.Status = domain.StatusForErrorCount(len(agg.Errors))
	return agg
}

func selectKinds(kinds []string) map[string]bool {
	selected := map[string]bool{}
	if len(kinds) == 0 {
		for _, k := range allKinds {
			selected[k] = true
		}
		return selected
	}
	for _, k := range kinds {
		switch k {
		case KindSchema, KindGeometric, KindCode:
			selected[k] = true
		}
	}
	return selected
}
