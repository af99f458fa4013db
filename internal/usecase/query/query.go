package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// Result is the outcome of one named expression.
type Result struct {
	Name    string
	Expr    string
	Value   string
	Success bool
	Message string
}

// Get evaluates one expression against a song and renders the match as a string.
func Get(sheet domain.SheetMusic, expr string) (string, error) {
	doc, err := Project(sheet)
	if err != nil {
		return "", err
	}
	return eval(doc, expr)
}

// Apply evaluates named expressions against a song.
// rules: map[name]jsonPathExpr
//
// Policy:
// - Results are sorted by name.
// - If a rule fails -> it's reported in its Result; other rules still run.
func Apply(sheet domain.SheetMusic, rules map[string]string) ([]Result, error) {
	if len(rules) == 0 {
		return []Result{}, nil
	}

	doc, err := Project(sheet)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]Result, 0, len(keys))
	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		v, err := eval(doc, expr)
		if err != nil {
			results = append(results, Result{
				Name:    name,
				Expr:    expr,
				Message: fmt.Sprintf("query %q: %v", name, err),
			})
			continue
		}
		results = append(results, Result{
			Name:    name,
			Expr:    expr,
			Value:   v,
			Success: true,
			Message: fmt.Sprintf("matched %q", name),
		})
	}
	return results, nil
}

func eval(doc any, expr string) (string, error) {
	if expr == "" {
		return "", queryErr(expr, fmt.Errorf("empty jsonpath expression"))
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", queryErr(expr, fmt.Errorf("jsonpath error: %w", err))
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.get",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}

	s, err := toString(val)
	if err != nil {
		return "", queryErr(expr, fmt.Errorf("cannot convert value to string: %w", err))
	}
	return s, nil
}

func queryErr(expr string, err error) error {
	return &domain.OpError{
		Op:   "query.get",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%q: %w", expr, err),
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Common case: jsonpath returns a slice with 1 element
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
