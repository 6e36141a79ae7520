package listfilter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// PathParams holds the concrete values of the dynamic segments of the
// active route, keyed by segment name.
type PathParams map[string]string

// Has reports whether name is a pathname param.
func (p PathParams) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// MalformedValueError reports a query value that is not valid JSON.
type MalformedValueError struct {
	Key string
	Raw string
	Err error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("listfilter: malformed value for %q: %v", e.Key, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// Encode serializes state into query parameters. Empty values are
// omitted, every other value is JSON-encoded. Pathname params are appended
// verbatim and any state key that collides with one is ignored.
func Encode(state State, pathParams PathParams) (url.Values, error) {
	q := url.Values{}
	for key, value := range state {
		if pathParams.Has(key) || IsEmpty(value) {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("listfilter: encode %q: %w", key, err)
		}
		q.Set(key, string(raw))
	}
	for name, value := range pathParams {
		q.Set(name, value)
	}
	return q, nil
}

// Decode parses query parameters back into a State. Keys that are
// excluded or pathname params are skipped; a key carrying several values
// decodes to an array. Malformed values are left out of the result and
// reported together in the returned error, so callers can keep the rest.
func Decode(query url.Values, template *Template, pathParams PathParams, excluded ...string) (State, error) {
	skip := make(map[string]struct{}, len(excluded))
	for _, k := range excluded {
		skip[k] = struct{}{}
	}

	out := make(State, len(query))
	var errs []error
	for key, raws := range query {
		if _, ok := skip[key]; ok || pathParams.Has(key) || len(raws) == 0 {
			continue
		}
		value, err := decodeValues(key, raws)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if template.wantsArray(key) {
			if _, isArray := value.([]any); !isArray && value != nil {
				value = []any{value}
			}
		}
		out[key] = value
	}
	return out, errors.Join(errs...)
}

func decodeValues(key string, raws []string) (any, error) {
	if len(raws) == 1 {
		v, err := parseJSON(raws[0])
		if err != nil {
			return nil, &MalformedValueError{Key: key, Raw: raws[0], Err: err}
		}
		return v, nil
	}
	values := make([]any, 0, len(raws))
	for _, raw := range raws {
		v, err := parseJSON(raw)
		if err != nil {
			return nil, &MalformedValueError{Key: key, Raw: raw, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}
