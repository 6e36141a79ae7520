package saved_view_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/listscreen"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/middleware"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type viewResponse struct {
	Data models.SavedViewResponse `json:"data"`
}

type viewsResponse struct {
	Data []models.SavedViewResponse `json:"data"`
}

func noRows(_ context.Context, _ listfilter.View, _ models.PageRequest) ([]struct{}, int64, error) {
	return nil, 0, nil
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl := listfilter.MustTemplate(
		listfilter.Field{Name: "q", Default: ""},
		listfilter.Field{Name: "status", Default: []string{}},
	)
	reg := listscreen.NewRegistry()
	reg.Add(listscreen.New("orders", "", "/admin/orders", tmpl, noRows, nil, zap.NewNop()))
	reg.Add(listscreen.New("order-items", "", "/admin/orders/:id/items", tmpl, noRows, nil, zap.NewNop()))

	svc := services.NewSavedViewService(services.NewMemorySavedViewRepository(), zap.NewNop())
	ctl := NewController(svc, reg, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) { middleware.SetAdmin(c, "admin-1", "a@modeva.test") })
	r.POST("/admin/views", ctl.CreateSavedView)
	r.GET("/admin/views", ctl.GetSavedViews)
	r.GET("/admin/views/:id/open", ctl.OpenSavedView)
	r.DELETE("/admin/views/:id", ctl.DeleteSavedView)
	return r
}

func call(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSavedViewLifecycle(t *testing.T) {
	r := newRouter(t)

	w := call(r, http.MethodPost, "/admin/views", `{"screen":"orders","name":"Pending","filters":{"status":["pending"],"junk":1}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created viewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "/admin/orders?status=%5B%22pending%22%5D", created.Data.Href)
	assert.JSONEq(t, `{"q":"","status":["pending"]}`, string(created.Data.Filters))
	id := created.Data.ID.String()

	w = call(r, http.MethodGet, "/admin/views?screen=orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed viewsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "Pending", listed.Data[0].Name)

	w = call(r, http.MethodGet, "/admin/views/"+id+"/open", "")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/orders?status=%5B%22pending%22%5D", w.Header().Get("Location"))

	w = call(r, http.MethodDelete, "/admin/views/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodGet, "/admin/views/"+id+"/open", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSavedViewRejections(t *testing.T) {
	r := newRouter(t)

	w := call(r, http.MethodPost, "/admin/views", `{"screen":"invoices","name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, http.MethodPost, "/admin/views", `{"screen":"order-items","name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodPost, "/admin/views", `{"screen":"orders"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavedViewBadIDs(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodGet, "/admin/views/nope/open", "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodDelete, "/admin/views/"+uuid.NewString(), "").Code)
}
