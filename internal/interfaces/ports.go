// Package interfaces defines the ports through which the validation core
// talks to its collaborators, plus a convenience facade for embedding.
package interfaces

import (
	"context"

	"service-validation/internal/domain"
)

// RuleTableLoader loads a jurisdiction rule table (from disk, network,
// wherever). The core loads once at construction; tables are immutable
// afterwards.
type RuleTableLoader interface {
	Load(ctx context.Context, version string) (*domain.RuleTable, error)
}
