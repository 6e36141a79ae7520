package cms_routes

import (
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup, ctl *order_controller.Controller) {
	order := rg.Group("/orders")

	order.GET("", ctl.GetOrders)
	order.POST("/filters", ctl.ApplyOrderFilters)
	order.DELETE("/filters", ctl.ResetOrderFilters)
	order.GET("/export.pdf", ctl.ExportOrdersPDF)

	// Items of one order; the id is a path param of the screen
	order.GET("/:id/items", ctl.GetOrderItems)
	order.POST("/:id/items/filters", ctl.ApplyOrderItemFilters)
	order.DELETE("/:id/items/filters", ctl.ResetOrderItemFilters)
}
