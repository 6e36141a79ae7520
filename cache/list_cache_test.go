package list_cache

import (
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsStableAcrossMapOrder(t *testing.T) {
	p := models.PageRequest{Page: 1, Limit: 10}
	a, err := Key("orders", listfilter.State{"q": "x", "status": []any{"pending"}}, p)
	require.NoError(t, err)
	b, err := Key("orders", listfilter.State{"status": []any{"pending"}, "q": "x"}, p)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, `orders|{"q":"x","status":["pending"]}|1:10`, a)
}

func TestKeyChangesWithFilterAndPage(t *testing.T) {
	base, _ := Key("orders", listfilter.State{"q": "x"}, models.PageRequest{Page: 1, Limit: 10})
	otherFilter, _ := Key("orders", listfilter.State{"q": "y"}, models.PageRequest{Page: 1, Limit: 10})
	otherPage, _ := Key("orders", listfilter.State{"q": "x"}, models.PageRequest{Page: 2, Limit: 10})

	assert.NotEqual(t, base, otherFilter)
	assert.NotEqual(t, base, otherPage)
}

func TestGetSetExpires(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := New(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("orders|{}|1:10", Page{Rows: []string{"a"}, Total: 1})
	page, ok := c.Get("orders|{}|1:10")
	require.True(t, ok)
	assert.Equal(t, int64(1), page.Total)

	now = now.Add(time.Minute)
	_, ok = c.Get("orders|{}|1:10")
	assert.False(t, ok)

	c.Set("customers|{}|1:10", Page{})
	assert.Equal(t, 1, c.Len())
}

func TestInvalidateScreen(t *testing.T) {
	c := New(time.Minute)
	c.Set("orders|{}|1:10", Page{})
	c.Set("order-items|{}|1:10", Page{})
	c.Set("order-items;id=42|{}|1:10", Page{})
	c.Set("customers|{}|1:10", Page{})

	c.InvalidateScreen("orders")
	c.InvalidateScreen("order-items")

	_, ok := c.Get("orders|{}|1:10")
	assert.False(t, ok)
	_, ok = c.Get("order-items;id=42|{}|1:10")
	assert.False(t, ok)
	_, ok = c.Get("customers|{}|1:10")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}
