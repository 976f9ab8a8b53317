package infrastructure

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyDesignPatch applies an RFC 6902 patch to a raw design payload and
// returns the patched payload, leaving the original untouched. Callers
// revalidate the result; the patch itself carries no validation semantics.
func ApplyDesignPatch(original map[string]any, patchData []byte) (map[string]any, error) {
	originalJSON, err := json.Marshal(original)
	if err != nil {
		return nil, fmt.Errorf("failed to encode design: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patch: %w", err)
	}

	modifiedJSON, err := patch.Apply(originalJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to apply patch: %w", err)
	}

	var updated map[string]any
	if err := json.Unmarshal(modifiedJSON, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode patched design: %w", err)
	}
	return updated, nil
}
