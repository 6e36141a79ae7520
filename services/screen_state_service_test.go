package services

import (
	"context"
	"testing"
	"time"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/rowaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScreenStateServiceDispatch(t *testing.T) {
	ctx := context.Background()
	svc := NewScreenStateService(NewMemoryScreenStateStore(), []string{"orders", "customers"}, nil, zap.NewNop())

	state, err := svc.State(ctx, "admin-1", "orders")
	require.NoError(t, err)
	assert.Equal(t, rowaction.Initial[rowaction.Fields](), state)

	_, err = svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Edit, Payload: rowaction.Fields{"id": "o-1"}})
	require.NoError(t, err)
	state, err = svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Edit, Payload: rowaction.Fields{"status": "shipped"}})
	require.NoError(t, err)

	assert.True(t, state.Open)
	assert.Equal(t, rowaction.Fields{"id": "o-1", "status": "shipped"}, state.Payload)

	other, err := svc.State(ctx, "admin-2", "orders")
	require.NoError(t, err)
	assert.False(t, other.Open)

	closed, err := svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Close})
	require.NoError(t, err)
	assert.Equal(t, rowaction.Initial[rowaction.Fields](), closed)
}

func TestScreenStateServiceUnknownScreen(t *testing.T) {
	svc := NewScreenStateService(NewMemoryScreenStateStore(), []string{"orders"}, nil, zap.NewNop())

	_, err := svc.Dispatch(context.Background(), "admin-1", "invoices", rowaction.Event[rowaction.Fields]{Type: rowaction.Add})
	assert.ErrorIs(t, err, ErrScreenNotFound)
}

func TestScreenStateServiceInvalidatesPagesAfterDelete(t *testing.T) {
	ctx := context.Background()
	pages := list_cache.New(time.Minute)
	svc := NewScreenStateService(NewMemoryScreenStateStore(), []string{"orders", "customers"}, pages, zap.NewNop())

	pages.Set("orders|{}|1:10", list_cache.Page{})
	pages.Set("customers|{}|1:10", list_cache.Page{})

	_, err := svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Add})
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Close})
	require.NoError(t, err)
	_, ok := pages.Get("orders|{}|1:10")
	assert.True(t, ok, "closing an add popup keeps pages")

	_, err = svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Delete, Payload: rowaction.Fields{"id": "o-1"}})
	require.NoError(t, err)
	_, ok = pages.Get("orders|{}|1:10")
	assert.True(t, ok, "opening a delete popup keeps pages")

	_, err = svc.Dispatch(ctx, "admin-1", "orders", rowaction.Event[rowaction.Fields]{Type: rowaction.Close})
	require.NoError(t, err)
	_, ok = pages.Get("orders|{}|1:10")
	assert.False(t, ok)
	_, ok = pages.Get("customers|{}|1:10")
	assert.True(t, ok)
}

func TestScreenStateKey(t *testing.T) {
	assert.Equal(t, "screen:a1:orders:rowaction", screenStateKey("a1", "orders"))
}
