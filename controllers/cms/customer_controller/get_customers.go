package customer_controller

import (
	"context"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/listscreen"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Filters is the customers screen filter form.
var Filters = listfilter.MustTemplate(
	listfilter.Field{Name: "q", Default: ""},
	listfilter.Field{Name: "status", Default: ""},
	listfilter.Field{Name: "activity", Default: ""},
)

type CustomerLister interface {
	List(ctx context.Context, f listfilter.State, p models.PageRequest) ([]models.CMSCustomerListRow, int64, error)
}

type Controller struct {
	Customers *listscreen.Screen[models.CMSCustomerListRow]
}

func NewController(basePath string, customers CustomerLister, cache *list_cache.Cache, log *zap.Logger) *Controller {
	list := func(ctx context.Context, view listfilter.View, p models.PageRequest) ([]models.CMSCustomerListRow, int64, error) {
		return customers.List(ctx, view.Effective, p)
	}
	return &Controller{
		Customers: listscreen.New("customers", "Customers fetched successfully", basePath+"/customers", Filters, list, cache, log),
	}
}

// GetCustomers godoc
// @Summary Get customers (CMS)
// @Description Fetch customers for CMS table view. Includes location, orders count, total spent, and activity status.
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "JSON string, search by name or email"
// @Param status query string false "JSON string: active, suspended, deleted, banned"
// @Param activity query string false "JSON string: active, inactive"
// @Success 200 {object} models.ApiResponse{data=[]models.CMSCustomerListRow,meta=models.Pagination,filters=models.FilterMeta}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers [get]
func (ctl *Controller) GetCustomers(c *gin.Context) {
	ctl.Customers.GetList(c)
}

// ApplyCustomerFilters godoc
// @Summary Apply customer filters
// @Tags Admin - Customers
// @Accept json,x-www-form-urlencoded
// @Security BearerAuth
// @Param filters body map[string]interface{} true "Filter form"
// @Success 303 "Redirect to the filtered list"
// @Router /admin/customers/filters [post]
func (ctl *Controller) ApplyCustomerFilters(c *gin.Context) {
	ctl.Customers.ApplyFilters(c)
}

// ResetCustomerFilters godoc
// @Summary Reset customer filters
// @Tags Admin - Customers
// @Security BearerAuth
// @Success 303 "Redirect to the unfiltered list"
// @Router /admin/customers/filters [delete]
func (ctl *Controller) ResetCustomerFilters(c *gin.Context) {
	ctl.Customers.ResetFilters(c)
}
