package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Inputs is a name-keyed set of calculator inputs as received from a caller.
// Values are usually JSON numbers, strings or booleans.
type Inputs map[string]any

// Has reports whether name is present with a non-empty value.
func (in Inputs) Has(name string) bool {
	v, ok := in[name]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

// Float returns the numeric value of name. Numeric strings are accepted.
func (in Inputs) Float(name string) (float64, bool) {
	if !in.Has(name) {
		return 0, false
	}
	return toFloat(in[name])
}

// FloatOr returns the numeric value of name, or def when it is absent.
func (in Inputs) FloatOr(name string, def float64) float64 {
	if v, ok := in.Float(name); ok {
		return v
	}
	return def
}

// String returns the textual value of name.
func (in Inputs) String(name string) (string, bool) {
	if !in.Has(name) {
		return "", false
	}
	switch v := in[name].(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	}
	return "", false
}

// StringOr returns the textual value of name, or def when it is absent.
func (in Inputs) StringOr(name, def string) string {
	if v, ok := in.String(name); ok {
		return v
	}
	return def
}

// Bool returns the boolean value of name. "true", "false", "1" and "0" are
// accepted as strings.
func (in Inputs) Bool(name string) (bool, bool) {
	if !in.Has(name) {
		return false, false
	}
	switch v := in[name].(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	}
	return false, false
}

// BoolOr returns the boolean value of name, or def when it is absent or not a boolean.
func (in Inputs) BoolOr(name string, def bool) bool {
	if v, ok := in.Bool(name); ok {
		return v
	}
	return def
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
