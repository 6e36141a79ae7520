package listfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    PathParams
		ok      bool
	}{
		{"/admin/orders", "/admin/orders", PathParams{}, true},
		{"/admin/orders", "/admin/orders/", PathParams{}, true},
		{"/orders/[id]", "/orders/42", PathParams{"id": "42"}, true},
		{"/admin/orders/:id/items", "/admin/orders/a1/items", PathParams{"id": "a1"}, true},
		{"/admin/orders/:id/items", "/admin/orders/a1", nil, false},
		{"/admin/orders/:id/items", "/admin/customers/a1/items", nil, false},
		{"/docs/[...slug]", "/docs/a/b/c", PathParams{"slug": "a/b/c"}, true},
		{"/docs/[...slug]", "/docs", nil, false},
		{"/docs/[[...slug]]", "/docs", PathParams{"slug": ""}, true},
		{"/files/*rest", "/files", PathParams{"rest": ""}, true},
		{"/files/*rest", "/files/x/y", PathParams{"rest": "x/y"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			got, ok := ParseRoute(tt.pattern).Match(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouteNames(t *testing.T) {
	assert.Equal(t, []string{"id", "line"}, ParseRoute("/orders/[id]/lines/:line").Names())
	assert.Nil(t, ParseRoute("/admin/orders").Names())
}

func TestRouteBuild(t *testing.T) {
	path, err := ParseRoute("/admin/orders/:id/items").Build(PathParams{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/orders/42/items", path)

	path, err = ParseRoute("/docs/[[...slug]]").Build(PathParams{"slug": ""})
	require.NoError(t, err)
	assert.Equal(t, "/docs", path)

	_, err = ParseRoute("/docs/[...slug]").Build(PathParams{"slug": ""})
	assert.Error(t, err)

	path, err = ParseRoute("/").Build(nil)
	require.NoError(t, err)
	assert.Equal(t, "/", path)

	_, err = ParseRoute("/orders/[id]").Build(PathParams{})
	assert.Error(t, err)
}

func TestNewTemplateRejectsBadFields(t *testing.T) {
	_, err := NewTemplate(Field{Name: ""})
	assert.Error(t, err)

	_, err = NewTemplate(Field{Name: "q"}, Field{Name: "q"})
	assert.Error(t, err)

	_, err = NewTemplate(Field{Name: "bad", Default: make(chan int)})
	assert.Error(t, err)
}

func TestTemplateDefaultsAreCanonicalCopies(t *testing.T) {
	tmpl := MustTemplate(
		Field{Name: "page", Default: 1},
		Field{Name: "status", Default: []string{"pending"}},
	)

	defaults := tmpl.Defaults()
	assert.Equal(t, 1.0, defaults["page"])
	assert.Equal(t, []any{"pending"}, defaults["status"])

	defaults["status"].([]any)[0] = "mutated"
	assert.Equal(t, []any{"pending"}, tmpl.Defaults()["status"])
	assert.Equal(t, []string{"page", "status"}, tmpl.Keys())
}

func TestMergeKeepsOnlyTemplateKeys(t *testing.T) {
	tmpl := MustTemplate(Field{Name: "q", Default: ""}, Field{Name: "status", Default: ""})

	got := Merge(tmpl, State{"status": "shipped", "extra": true})

	assert.Equal(t, State{"q": "", "status": "shipped"}, got)
}

func TestStateAccessors(t *testing.T) {
	s := State{
		"q":      "dress",
		"status": []any{"a", 1.0, "b"},
		"one":    "solo",
		"min":    "12.5",
		"max":    30.0,
	}

	assert.Equal(t, "dress", s.String("q"))
	assert.Equal(t, "", s.String("max"))
	assert.Equal(t, []string{"a", "b"}, s.Strings("status"))
	assert.Equal(t, []string{"solo"}, s.Strings("one"))
	assert.Nil(t, s.Strings("missing"))

	v, ok := s.Float("min")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)
	v, ok = s.Float("max")
	assert.True(t, ok)
	assert.Equal(t, 30.0, v)
	_, ok = s.Float("q")
	assert.False(t, ok)
}
