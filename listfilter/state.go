package listfilter

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
)

// State maps filter-field names to values. Values are JSON-shaped:
// nil, bool, float64, string, []any or map[string]any.
type State map[string]any

// String returns the value under key as a string, or "" when it is not one.
func (s State) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Strings returns the value under key as a string slice. A lone string is
// returned as a one-element slice; non-string elements are skipped.
func (s State) Strings(key string) []string {
	switch v := s[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok && str != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Float returns the value under key as a float64. Numeric strings are
// accepted since HTML forms submit everything as text.
func (s State) Float(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	}
	return v
}

// IsEmpty reports whether v is omitted from a serialized query:
// nil, the empty string, or an empty array.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// canonical turns any JSON-serializable value into the shape the decoder
// produces, so defaults and decoded values compare structurally.
func canonical(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parseJSON(string(raw))
}

func parseJSON(raw string) (any, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON %q", raw)
	}
	v := gjson.Parse(raw).Value()
	if !finite(v) {
		return nil, fmt.Errorf("number out of range in %q", raw)
	}
	return v, nil
}

// finite reports whether every number in v fits a float64. gjson turns
// overflowing literals such as 1e400 into ±Inf, which cannot be encoded
// back to JSON.
func finite(v any) bool {
	switch t := v.(type) {
	case float64:
		return !math.IsInf(t, 0) && !math.IsNaN(t)
	case []any:
		for _, item := range t {
			if !finite(item) {
				return false
			}
		}
	case map[string]any:
		for _, item := range t {
			if !finite(item) {
				return false
			}
		}
	}
	return true
}
