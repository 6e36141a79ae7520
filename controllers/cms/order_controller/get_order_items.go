package order_controller

import "github.com/gin-gonic/gin"

// GetOrderItems godoc
// @Summary Get order items (CMS)
// @Description Items of one order. The order id is part of the path and survives every filter change.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "JSON array of item statuses"
// @Param q query string false "JSON string, search by product name"
// @Success 200 {object} models.ApiResponse{data=[]models.CMSOrderItemRow,meta=models.Pagination,filters=models.FilterMeta}
// @Failure 404 {object} models.ApiResponse "Invalid order ID"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id}/items [get]
func (ctl *Controller) GetOrderItems(c *gin.Context) {
	ctl.Items.GetList(c)
}

// ApplyOrderItemFilters godoc
// @Summary Apply order item filters
// @Tags Admin - Orders
// @Accept json,x-www-form-urlencoded
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param filters body map[string]interface{} true "Filter form"
// @Success 303 "Redirect to the filtered item list"
// @Router /admin/orders/{id}/items/filters [post]
func (ctl *Controller) ApplyOrderItemFilters(c *gin.Context) {
	ctl.Items.ApplyFilters(c)
}

// ResetOrderItemFilters godoc
// @Summary Reset order item filters
// @Tags Admin - Orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 303 "Redirect to the unfiltered item list"
// @Router /admin/orders/{id}/items/filters [delete]
func (ctl *Controller) ResetOrderItemFilters(c *gin.Context) {
	ctl.Items.ResetFilters(c)
}
