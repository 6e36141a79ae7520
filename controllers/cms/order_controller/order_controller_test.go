package order_controller

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeOrders struct {
	gotFilters listfilter.State
	gotPage    models.PageRequest
	err        error
}

func (f *fakeOrders) List(_ context.Context, filters listfilter.State, p models.PageRequest) ([]models.CMSOrderListRow, int64, error) {
	f.gotFilters, f.gotPage = filters, p
	if f.err != nil {
		return nil, 0, f.err
	}
	return []models.CMSOrderListRow{{OrderNumber: "ORD-1", Status: "pending"}}, 1, nil
}

type fakeItems struct {
	gotOrderID string
}

func (f *fakeItems) List(_ context.Context, orderID string, _ listfilter.State, _ models.PageRequest) ([]models.CMSOrderItemRow, int64, error) {
	f.gotOrderID = orderID
	if orderID == "not-a-uuid" {
		return nil, 0, services.ErrInvalidOrderID
	}
	return nil, 0, nil
}

func setup(t *testing.T) (*gin.Engine, *fakeOrders, *fakeItems) {
	t.Helper()
	orders, items := &fakeOrders{}, &fakeItems{}
	r := gin.New()
	admin := r.Group("/api/v1/admin")
	ctl := NewController(admin.BasePath(), orders, items, nil, 500, zap.NewNop())

	admin.GET("/orders", ctl.GetOrders)
	admin.GET("/orders/export.pdf", ctl.ExportOrdersPDF)
	admin.POST("/orders/filters", ctl.ApplyOrderFilters)
	admin.GET("/orders/:id/items", ctl.GetOrderItems)
	admin.POST("/orders/:id/items/filters", ctl.ApplyOrderItemFilters)
	admin.DELETE("/orders/:id/items/filters", ctl.ResetOrderItemFilters)
	return r, orders, items
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOrdersDefaults(t *testing.T) {
	r, orders, _ := setup(t)

	w := serve(r, http.MethodGet, "/api/v1/admin/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, Filters.Defaults(), orders.gotFilters)
	assert.Equal(t, models.PageRequest{Page: 1, Limit: 10}, orders.gotPage)
}

func TestOrderItemsInvalidIDIsNotFound(t *testing.T) {
	r, _, items := setup(t)

	w := serve(r, http.MethodGet, "/api/v1/admin/orders/not-a-uuid/items", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not-a-uuid", items.gotOrderID)
}

func TestOrderItemFiltersKeepOrderID(t *testing.T) {
	r, _, _ := setup(t)

	w := serve(r, http.MethodPost, "/api/v1/admin/orders/0190f0c4-aaaa-7bbb-8ccc-000000000001/items/filters", `{"q":"scarf"}`)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/admin/orders/0190f0c4-aaaa-7bbb-8ccc-000000000001/items?q=%22scarf%22", w.Header().Get("Location"))

	w = serve(r, http.MethodDelete, "/api/v1/admin/orders/abc/items/filters", "")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/admin/orders/abc/items", w.Header().Get("Location"))
}

func TestApplyOrderFiltersDropsEmptyRange(t *testing.T) {
	r, _, _ := setup(t)

	w := serve(r, http.MethodPost, "/api/v1/admin/orders/filters", `{"status":["shipped"],"min_total":null,"date_from":""}`)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/admin/orders?status=%5B%22shipped%22%5D", w.Header().Get("Location"))
}

func TestExportOrdersPDF(t *testing.T) {
	r, orders, _ := setup(t)

	w := serve(r, http.MethodGet, "/api/v1/admin/orders/export.pdf?status=%22pending%22", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders-")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	assert.Equal(t, models.PageRequest{Page: 1, Limit: 500}, orders.gotPage)
	assert.Equal(t, []any{"pending"}, orders.gotFilters["status"])
}

func TestExportOrdersPDFListError(t *testing.T) {
	r, orders, _ := setup(t)
	orders.err = errors.New("db down")

	w := serve(r, http.MethodGet, "/api/v1/admin/orders/export.pdf", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
