package cms_routes

import (
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/screen_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/saved_view_controller"
	"github.com/gin-gonic/gin"
)

func SetupScreenRoutes(rg *gin.RouterGroup, ctl *screen_controller.Controller) {
	screens := rg.Group("/screens/:screen")

	screens.GET("/state", ctl.GetScreenState)
	screens.POST("/actions", ctl.DispatchScreenAction)
}

func SetupSavedViewRoutes(rg *gin.RouterGroup, ctl *saved_view_controller.Controller) {
	views := rg.Group("/views")

	views.POST("", ctl.CreateSavedView)
	views.GET("", ctl.GetSavedViews)
	views.GET("/:id/open", ctl.OpenSavedView)
	views.DELETE("/:id", ctl.DeleteSavedView)
}
