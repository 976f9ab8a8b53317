package interfaces

import (
	"context"

	"service-validation/internal/analysis"
	"service-validation/internal/domain"
	"service-validation/internal/infrastructure/jsonlogic"
	"service-validation/internal/validation"
)

// ValidateDesign is the embedding entry point: a comprehensive validation
// against the compiled-in rule table with guard rules enabled.
func ValidateDesign(payload any, buildingType, region string, kinds []string) *domain.AggregateResult {
	orch := validation.NewOrchestrator(
		validation.NewGeometryEvaluator(domain.DefaultGeometryLimits()),
		validation.NewCodeEvaluator(domain.DefaultRuleTable(), jsonlogic.NewExecutor()),
	)
	return orch.Validate(payload, buildingType, region, kinds)
}

// AnalyzeProject runs a project analysis against the given store using the
// default evaluators.
func AnalyzeProject(ctx context.Context, store analysis.ProjectStore, projectID, analysisType string, opts analysis.Options) (*domain.ProjectAnalysisResult, error) {
	agg := analysis.NewAggregator(
		store,
		validation.NewGeometryEvaluator(domain.DefaultGeometryLimits()),
		validation.NewCodeEvaluator(domain.DefaultRuleTable(), jsonlogic.NewExecutor()),
	)
	return agg.AnalyzeProject(ctx, projectID, analysisType, opts)
}
