// Package analysis blends evaluator results for stored projects into a
// single project-level confidence with aggregated recommendations.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"service-validation/internal/domain"
	"service-validation/internal/validation"
)

// ProjectStore retrieves the raw payload of a previously stored project.
// Persistence itself is outside the core; only this read contract is
// assumed.
type ProjectStore interface {
	Get(ctx context.Context, projectID string) (map[string]any, error)
}

// Analysis type values accepted by AnalyzeProject.
const (
	TypeGeometry = "geometry"
	TypeCode     = "code"
	TypeBoth     = "both"
)

// Aspect keys in the result.
const (
	aspectGeometry = "geometry"
	aspectCode     = "code"
)

// ErrInvalidAnalysisType marks a request-shape failure: the caller asked
// for an analysis type that does not exist. It is distinct from a
// validation failure and is never folded into per-aspect results.
var ErrInvalidAnalysisType = errors.New("invalid analysis type")

// Options carries the jurisdiction parameters for a project analysis.
type Options struct {
	BuildingType string
	Region       string
}

// Aggregator runs geometry and/or building-code analysis against a stored
// project and blends the per-aspect confidences.
type Aggregator struct {
	store    ProjectStore
	geometry *validation.GeometryEvaluator
	code     *validation.CodeEvaluator
}

func NewAggregator(store ProjectStore, geometry *validation.GeometryEvaluator, code *validation.CodeEvaluator) *Aggregator {
	return &Aggregator{store: store, geometry: geometry, code: code}
}

// AnalyzeProject fetches the stored payload and runs the selected aspects.
// Each aspect is guarded independently: a failure inside one aspect
// contributes zero confidence and an embedded error instead of aborting
// the whole analysis. The blended confidence always divides by the two
// possible aspects, so a single successful aspect yields 0.5.
func (a *Aggregator) AnalyzeProject(ctx context.Context, projectID, analysisType string, opts Options) (*domain.ProjectAnalysisResult, error) {
	switch analysisType {
	case TypeGeometry, TypeCode, TypeBoth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnalysisType, analysisType)
	}

	payload, err := a.store.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", projectID, err)
	}
	decoded := domain.DecodeDesign(payload)

	if opts.BuildingType == "" {
		opts.BuildingType = "residential"
	}
	if opts.Region == "" {
		opts.Region = "TR"
	}

	result := &domain.ProjectAnalysisResult{
		ProjectID:       projectID,
		AnalysisType:    analysisType,
		Aspects:         map[string]domain.AspectResult{},
		Recommendations: []string{},
	}

	total := 0.0
	if analysisType == TypeGeometry || analysisType == TypeBoth {
		aspect, recs := runAspect("geometric", func() *domain.ValidationOutcome {
			return a.geometry.Validate(decoded, opts.BuildingType)
		})
		result.Aspects[aspectGeometry] = aspect
		result.Recommendations = append(result.Recommendations, recs...)
		total += aspect.ConfidenceScore
	}
	if analysisType == TypeCode || analysisType == TypeBoth {
		aspect, recs := runAspect("code", func() *domain.ValidationOutcome {
			return a.code.Validate(decoded, opts.BuildingType, opts.Region)
		})
		result.Aspects[aspectCode] = aspect
		result.Recommendations = append(result.Recommendations, recs...)
		total += aspect.ConfidenceScore
	}

	// Fixed two-aspect divisor: one fully successful aspect alone scores
	// 0.5, both together 1.0, total failure 0.0.
	result.ConfidenceScore = total / 2

	if result.ConfidenceScore < 1.0 {
		result.Recommendations = append(result.Recommendations, "a more detailed review of the design is recommended")
	}
	return result, nil
}

// runAspect executes one evaluator, converting a panic into a zero
// confidence aspect with an embedded error and a failure recommendation.
// The aspect confidence is the fraction of check groups that passed.
func runAspect(name string, run func() *domain.ValidationOutcome) (aspect domain.AspectResult, recs []string) {
	defer func() {
		if r := recover(); r != nil {
			aspect = domain.AspectResult{ConfidenceScore: 0.0, Error: fmt.Sprintf("%v", r)}
			recs = []string{fmt.Sprintf("%s validation failed: %v", name, r)}
		}
	}()

	out := run()

	// Evaluator boundaries convert their own failures (and lookup misses)
	// into a single-error outcome with no check groups; surface those as
	// failed aspects rather than rule violations.
	if !out.Valid && len(out.Groups) == 0 && len(out.Errors) == 1 {
		aspect = domain.AspectResult{ConfidenceScore: 0.0, Error: out.Errors[0]}
		recs = []string{fmt.Sprintf("%s validation failed: %s", name, out.Errors[0])}
		return aspect, recs
	}

	aspect = domain.AspectResult{
		ConfidenceScore: out.GroupRatio(),
		Valid:           out.Valid,
		Errors:          out.Errors,
		Warnings:        out.Warnings,
	}
	if !out.Valid {
		recs = append(recs, fmt.Sprintf("resolve %d %s issue(s) before approval", len(out.Errors), name))
	}
	recs = append(recs, out.Warnings...)
	return aspect, recs
}
