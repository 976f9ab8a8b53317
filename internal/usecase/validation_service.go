package usecase

import (
	"context"
	"fmt"

	"service-validation/internal/domain"
	"service-validation/internal/interfaces"
	"service-validation/internal/validation"
	pkgvalidation "service-validation/pkg/validation"
)

// ValidationService wires the rule table, geometry limits and guard
// executor into the orchestrator. The table is loaded once at construction
// and shared read-only by every call, so the service is safe for
// concurrent use.
type ValidationService struct {
	table *domain.RuleTable
	orch  *validation.Orchestrator
}

// NewValidationService builds a service around the table produced by the
// loader. A nil loader selects the compiled-in default table; a nil guard
// executor disables guard rules.
func NewValidationService(ctx context.Context, loader interfaces.RuleTableLoader, tableVersion string, guards validation.GuardExecutor) (*ValidationService, error) {
	table := domain.DefaultRuleTable()
	if loader != nil {
		loaded, err := loader.Load(ctx, tableVersion)
		if err != nil {
			return nil, fmt.Errorf("load rule table: %w", err)
		}
		table = loaded
	}

	orch := validation.NewOrchestrator(
		validation.NewGeometryEvaluator(domain.DefaultGeometryLimits()),
		validation.NewCodeEvaluator(table, guards),
	)
	return &ValidationService{table: table, orch: orch}, nil
}

// RuleTable exposes the loaded table for callers that need to report which
// jurisdictions are available.
func (s *ValidationService) RuleTable() *domain.RuleTable {
	return s.table
}

// ValidateComprehensive runs the selected evaluators (all when kinds is
// empty) and returns the merged verdict.
func (s *ValidationService) ValidateComprehensive(payload any, buildingType, region string, kinds []string) *domain.AggregateResult {
	return s.orch.Validate(payload, buildingType, region, kinds)
}

// ValidateQuick runs the flat lightweight path: string error codes and the
// triage status, no per-room detail.
func (s *ValidationService) ValidateQuick(payload any, buildingType string) pkgvalidation.Report {
	return pkgvalidation.ValidateDesign(payload, buildingType)
}
