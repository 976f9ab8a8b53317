package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"service-validation/internal/domain"
	"service-validation/internal/interfaces"
)

// FileRuleTableLoader reads versioned rule tables from JSON files named
// <version>_rulesets.json under BasePath.
type FileRuleTableLoader struct {
	BasePath string
}

func NewFileRuleTableLoader(basePath string) interfaces.RuleTableLoader {
	return &FileRuleTableLoader{BasePath: basePath}
}

func (l *FileRuleTableLoader) Load(ctx context.Context, version string) (*domain.RuleTable, error) {
	path := filepath.Join(l.BasePath, fmt.Sprintf("%s_rulesets.json", version))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule table %s: %w", path, err)
	}

	var table domain.RuleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rule table: %w", err)
	}

	return &table, nil
}
