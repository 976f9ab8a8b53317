// Package jsonlogic evaluates jurisdiction guard rules expressed as
// jsonlogic over the raw design payload.
package jsonlogic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/diegoholiveira/jsonlogic/v3"

	"service-validation/internal/domain"
)

// Executor runs guard rules through the jsonlogic engine. Custom operators
// are checked first so deployments can extend the vocabulary without
// touching the engine.
type Executor struct {
	customOps map[string]func(args ...any) any
}

func NewExecutor() *Executor {
	e := &Executor{customOps: make(map[string]func(args ...any) any)}
	e.RegisterCustomOperator("round", Round)
	return e
}

func (e *Executor) RegisterCustomOperator(name string, fn func(args ...any) any) {
	e.customOps[name] = fn
}

// Evaluate applies one guard rule against the payload, which is exposed to
// the logic under the "design" variable. The returned bool follows
// jsonlogic truthiness: false, zero and null do not fire the guard.
func (e *Executor) Evaluate(rule domain.GuardRule, payload map[string]any) (bool, error) {
	if len(rule.Logic) == 0 {
		return false, nil
	}

	for name, fn := range e.customOps {
		if args, ok := rule.Logic[name]; ok {
			return truthy(e.manualEval(args, payload, fn)), nil
		}
	}

	ruleJSON, err := json.Marshal(rule.Logic)
	if err != nil {
		return false, fmt.Errorf("guard %s: encode logic: %w", rule.ID, err)
	}
	dataJSON, err := json.Marshal(map[string]any{"design": payload})
	if err != nil {
		return false, fmt.Errorf("guard %s: encode payload: %w", rule.ID, err)
	}

	var result bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &result); err != nil {
		return false, fmt.Errorf("guard %s: %w", rule.ID, err)
	}

	s := result.String()
	if s == "" || s == "null" {
		return false, nil
	}

	var out any
	if err := json.Unmarshal(result.Bytes(), &out); err != nil {
		return false, fmt.Errorf("guard %s: decode result: %w", rule.ID, err)
	}
	return truthy(out), nil
}

func (e *Executor) manualEval(args any, payload map[string]any, fn func(args ...any) any) any {
	var params []any
	if list, ok := args.([]any); ok {
		for _, arg := range list {
			params = append(params, resolveVar(arg, payload))
		}
	} else {
		params = append(params, resolveVar(args, payload))
	}
	return fn(params...)
}

// resolveVar substitutes {"var": "design.x.y"} arguments with the value at
// that path in the payload; anything else passes through untouched.
func resolveVar(arg any, payload map[string]any) any {
	m, ok := arg.(map[string]any)
	if !ok {
		return arg
	}
	path, ok := m["var"].(string)
	if !ok {
		return arg
	}
	return lookupPath(map[string]any{"design": payload}, path)
}

func lookupPath(root map[string]any, path string) any {
	var cur any = root
	start := 0
	for i := 0; i <= len(path); i++ {
		if i != len(path) && path[i] != '.' {
			continue
		}
		key := path[start:i]
		start = i + 1
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case nil:
		return false
	}
	return true
}

// Round is the built-in custom operator: round to the nearest integer.
func Round(args ...any) any {
	if len(args) == 0 {
		return 0.0
	}
	if f, ok := domain.AsNumber(args[0]); ok {
		return math.Round(f)
	}
	return args[0]
}
