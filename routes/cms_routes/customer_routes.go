package cms_routes

import (
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/customer_controller"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup, ctl *customer_controller.Controller) {
	customer := rg.Group("/customers")

	customer.GET("", ctl.GetCustomers)
	customer.POST("/filters", ctl.ApplyCustomerFilters)
	customer.DELETE("/filters", ctl.ResetCustomerFilters)
}
