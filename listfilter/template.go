package listfilter

import "fmt"

// Field declares one filter of a list screen and its default value.
type Field struct {
	Name    string
	Default any
}

// Template is the empty shape of a list screen's filter form. It is
// immutable once built.
type Template struct {
	keys     []string
	defaults State
}

// NewTemplate builds a Template. Defaults are canonicalised to their JSON
// shape (ints become float64, []string becomes []any).
func NewTemplate(fields ...Field) (*Template, error) {
	t := &Template{
		keys:     make([]string, 0, len(fields)),
		defaults: make(State, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("listfilter: field with empty name")
		}
		if _, dup := t.defaults[f.Name]; dup {
			return nil, fmt.Errorf("listfilter: duplicate field %q", f.Name)
		}
		v, err := canonical(f.Default)
		if err != nil {
			return nil, fmt.Errorf("listfilter: default for %q: %w", f.Name, err)
		}
		t.keys = append(t.keys, f.Name)
		t.defaults[f.Name] = v
	}
	return t, nil
}

// MustTemplate is NewTemplate for package-level screen declarations.
func MustTemplate(fields ...Field) *Template {
	t, err := NewTemplate(fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Keys returns the field names in declaration order.
func (t *Template) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Has reports whether key is a field of the template.
func (t *Template) Has(key string) bool {
	_, ok := t.defaults[key]
	return ok
}

// Defaults returns a fresh copy of the default state.
func (t *Template) Defaults() State {
	return t.defaults.Clone()
}

func (t *Template) wantsArray(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.defaults[key].([]any)
	return ok
}

// Merge overlays values on the template defaults, one level deep. Only
// template keys are kept; keys missing from values keep their default.
func Merge(t *Template, values State) State {
	out := make(State, len(t.keys))
	for _, k := range t.keys {
		if v, ok := values[k]; ok {
			out[k] = cloneValue(v)
			continue
		}
		out[k] = cloneValue(t.defaults[k])
	}
	return out
}
