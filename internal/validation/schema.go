package validation

import (
	"service-validation/internal/domain"

	pkgvalidation "service-validation/pkg/validation"
)

// Schema wraps the lightweight shape check into an evaluator outcome so
// the orchestrator can merge it alongside the rich evaluators.
func Schema(payload any) *domain.ValidationOutcome {
	errs := pkgvalidation.ValidateSchema(payload)
	if errs == nil {
		errs = []string{}
	}
	return &domain.ValidationOutcome{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: []string{},
	}
}
