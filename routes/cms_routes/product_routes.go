package cms_routes

import (
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup, ctl *product_controller.Controller) {
	product := rg.Group("/products")

	product.GET("", ctl.GetProducts)
	product.POST("/filters", ctl.ApplyProductFilters)
	product.DELETE("/filters", ctl.ResetProductFilters)
}
