package product_controller

import (
	"context"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/listscreen"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Filters is the products screen filter form.
var Filters = listfilter.MustTemplate(
	listfilter.Field{Name: "q", Default: ""},
	listfilter.Field{Name: "status", Default: ""},
	listfilter.Field{Name: "sub_category_id", Default: []string{}},
	listfilter.Field{Name: "min_price"},
	listfilter.Field{Name: "max_price"},
)

type ProductLister interface {
	List(ctx context.Context, f listfilter.State, p models.PageRequest) ([]models.CMSProductListRow, int64, error)
}

type Controller struct {
	Products *listscreen.Screen[models.CMSProductListRow]
}

func NewController(basePath string, products ProductLister, cache *list_cache.Cache, log *zap.Logger) *Controller {
	list := func(ctx context.Context, view listfilter.View, p models.PageRequest) ([]models.CMSProductListRow, int64, error) {
		return products.List(ctx, view.Effective, p)
	}
	return &Controller{
		Products: listscreen.New("products", "Products retrieved successfully", basePath+"/products", Filters, list, cache, log),
	}
}

// GetProducts godoc
// @Summary Get products (CMS)
// @Description Paginated products with category names and stock. Filters are JSON-encoded query params.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "JSON string, search name and description"
// @Param status query string false "JSON string: Active, Draft"
// @Param sub_category_id query string false "JSON array of sub category UUIDs"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} models.ApiResponse{data=[]models.CMSProductListRow,meta=models.Pagination,filters=models.FilterMeta}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	ctl.Products.GetList(c)
}

// ApplyProductFilters godoc
// @Summary Apply product filters
// @Tags Admin - Products
// @Accept json,x-www-form-urlencoded
// @Security BearerAuth
// @Param filters body map[string]interface{} true "Filter form"
// @Success 303 "Redirect to the filtered list"
// @Router /admin/products/filters [post]
func (ctl *Controller) ApplyProductFilters(c *gin.Context) {
	ctl.Products.ApplyFilters(c)
}

// ResetProductFilters godoc
// @Summary Reset product filters
// @Tags Admin - Products
// @Security BearerAuth
// @Success 303 "Redirect to the unfiltered list"
// @Router /admin/products/filters [delete]
func (ctl *Controller) ResetProductFilters(c *gin.Context) {
	ctl.Products.ResetFilters(c)
}
