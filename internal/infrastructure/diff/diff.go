// Package diff reports which top-level keys of a design payload changed.
package diff

import "reflect"

type Differ struct{}

// Diff returns the after-values of every top-level key that was added or
// changed, plus nil entries for keys that were removed.
func (d *Differ) Diff(before, after map[string]any) map[string]any {
	delta := map[string]any{}
	for k, v := range after {
		if !reflect.DeepEqual(before[k], v) {
			delta[k] = v
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			delta[k] = nil
		}
	}
	return delta
}
