package order_controller

import "github.com/gin-gonic/gin"

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Retrieve orders with customer details and pagination. Filter values are JSON-encoded query params; malformed values fall back to their defaults.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "JSON string, search by order number, customer email or name" example("\"silk\"")
// @Param status query string false "JSON array of statuses (pending, confirmed, processing, shipped, delivered, cancelled, refunded)" example("[\"pending\"]")
// @Param date_from query string false "JSON string, YYYY-MM-DD"
// @Param date_to query string false "JSON string, YYYY-MM-DD (inclusive)"
// @Param min_total query number false "Minimum order total"
// @Param max_total query number false "Maximum order total"
// @Success 200 {object} models.ApiResponse{data=[]models.CMSOrderListRow,meta=models.Pagination,filters=models.FilterMeta}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func (ctl *Controller) GetOrders(c *gin.Context) {
	ctl.Orders.GetList(c)
}

// ApplyOrderFilters godoc
// @Summary Apply order filters
// @Description Accepts the submitted filter form (JSON object or url-encoded) and redirects to the orders list URL that carries it.
// @Tags Admin - Orders
// @Accept json,x-www-form-urlencoded
// @Security BearerAuth
// @Param filters body map[string]interface{} true "Filter form"
// @Success 303 "Redirect to the filtered list"
// @Failure 400 {object} models.ApiResponse
// @Router /admin/orders/filters [post]
func (ctl *Controller) ApplyOrderFilters(c *gin.Context) {
	ctl.Orders.ApplyFilters(c)
}

// ResetOrderFilters godoc
// @Summary Reset order filters
// @Tags Admin - Orders
// @Security BearerAuth
// @Success 303 "Redirect to the unfiltered list"
// @Router /admin/orders/filters [delete]
func (ctl *Controller) ResetOrderFilters(c *gin.Context) {
	ctl.Orders.ResetFilters(c)
}
