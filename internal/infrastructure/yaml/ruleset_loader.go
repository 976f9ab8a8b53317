package yaml

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"service-validation/internal/domain"
)

// LoadRuleTable reads a jurisdiction rule table from a YAML file.
func LoadRuleTable(path string) (*domain.RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule table %s: %w", path, err)
	}

	var table domain.RuleTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rule table: %w", err)
	}
	return &table, nil
}

// Loader adapts a fixed YAML file to the RuleTableLoader port. The version
// argument is recorded on the loaded table when the file does not carry
// one of its own.
type Loader struct {
	Path string
}

func (l *Loader) Load(ctx context.Context, version string) (*domain.RuleTable, error) {
	table, err := LoadRuleTable(l.Path)
	if err != nil {
		return nil, err
	}
	if table.Version == "" {
		table.Version = version
	}
	return table, nil
}
