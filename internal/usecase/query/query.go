// Package query evaluates JSONPath expressions against saved calculation records.
package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

var (
	ErrEmptyExpr = errors.New("empty jsonpath expression")
	ErrNoMatch   = errors.New("no value found")
)

// Lookup evaluates expr against a JSON document and renders the match as a string.
//
// A single-element match is unwrapped, scalars print as-is and anything else
// prints as compact JSON. Numbers keep their exact decimal form.
func Lookup(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", ErrEmptyExpr
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return "", fmt.Errorf("record is not valid JSON: %w", err)
	}

	match, err := jsonpath.Get(expr, root)
	if err != nil {
		return "", fmt.Errorf("jsonpath %s: %w", expr, err)
	}

	match = unwrap(match)
	if empty(match) {
		return "", fmt.Errorf("jsonpath %s: %w", expr, ErrNoMatch)
	}
	return render(match)
}

func unwrap(v any) any {
	for {
		arr, ok := v.([]any)
		if !ok || len(arr) != 1 {
			return v
		}
		v = arr[0]
	}
}

func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

func render(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return fmt.Sprint(t), nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
