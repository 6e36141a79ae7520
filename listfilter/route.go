package listfilter

import (
	"fmt"
	"strings"
)

type segmentKind int

const (
	staticSegment segmentKind = iota
	paramSegment
	catchAllSegment
)

type segment struct {
	kind     segmentKind
	text     string
	optional bool
}

// Route is a parsed route pattern. Dynamic segments are written either the
// gin way (":id", "*rest") or the bracket way ("[id]", "[...rest]",
// "[[...rest]]"). "[...rest]" needs at least one segment; "*rest" and
// "[[...rest]]" also match none.
type Route struct {
	pattern  string
	segments []segment
}

// ParseRoute parses pattern. It never fails: anything that is not a
// recognised dynamic segment is matched literally.
func ParseRoute(pattern string) Route {
	r := Route{pattern: pattern}
	for _, part := range splitPath(pattern) {
		r.segments = append(r.segments, parseSegment(part))
	}
	return r
}

func parseSegment(part string) segment {
	switch {
	case strings.HasPrefix(part, ":") && len(part) > 1:
		return segment{kind: paramSegment, text: part[1:]}
	case strings.HasPrefix(part, "*") && len(part) > 1:
		return segment{kind: catchAllSegment, text: part[1:], optional: true}
	case strings.HasPrefix(part, "[[...") && strings.HasSuffix(part, "]]"):
		return segment{kind: catchAllSegment, text: part[5 : len(part)-2], optional: true}
	case strings.HasPrefix(part, "[...") && strings.HasSuffix(part, "]"):
		return segment{kind: catchAllSegment, text: part[4 : len(part)-1]}
	case strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") && len(part) > 2:
		return segment{kind: paramSegment, text: part[1 : len(part)-1]}
	}
	return segment{kind: staticSegment, text: part}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Pattern returns the pattern the route was parsed from.
func (r Route) Pattern() string { return r.pattern }

// Names returns the names of the dynamic segments in order.
func (r Route) Names() []string {
	var names []string
	for _, s := range r.segments {
		if s.kind != staticSegment {
			names = append(names, s.text)
		}
	}
	return names
}

// Match extracts the pathname params of path. ok is false when path does
// not follow the pattern.
func (r Route) Match(path string) (PathParams, bool) {
	parts := splitPath(path)
	params := PathParams{}
	for i, s := range r.segments {
		if s.kind == catchAllSegment {
			rest := parts[min(i, len(parts)):]
			if len(rest) == 0 && !s.optional {
				return nil, false
			}
			params[s.text] = strings.Join(rest, "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch s.kind {
		case staticSegment:
			if parts[i] != s.text {
				return nil, false
			}
		case paramSegment:
			params[s.text] = parts[i]
		}
	}
	if len(parts) != len(r.segments) {
		return nil, false
	}
	return params, true
}

// Build renders the concrete path for params.
func (r Route) Build(params PathParams) (string, error) {
	var b strings.Builder
	for _, s := range r.segments {
		if s.kind == staticSegment {
			b.WriteString("/" + s.text)
			continue
		}
		v, ok := params[s.text]
		if !ok {
			return "", fmt.Errorf("listfilter: missing pathname param %q for %s", s.text, r.pattern)
		}
		if s.kind == catchAllSegment {
			if v = strings.Trim(v, "/"); v == "" {
				if !s.optional {
					return "", fmt.Errorf("listfilter: empty pathname param %q for %s", s.text, r.pattern)
				}
				continue
			}
		}
		b.WriteString("/" + v)
	}
	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}
