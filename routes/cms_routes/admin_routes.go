package cms_routes

import (
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/customer_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/order_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/product_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/saved_view_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/screen_controller"
	"github.com/gin-gonic/gin"
)

// Controllers are the handlers mounted under the admin group.
type Controllers struct {
	Orders     *order_controller.Controller
	Customers  *customer_controller.Controller
	Products   *product_controller.Controller
	Screens    *screen_controller.Controller
	SavedViews *saved_view_controller.Controller
}

// SetupAdminRoutes mounts every admin route on admin. Auth and rate
// limiting are the caller's middleware on that group.
func SetupAdminRoutes(admin *gin.RouterGroup, ctl Controllers) {
	SetupOrderRoutes(admin, ctl.Orders)
	SetupCustomerRoutes(admin, ctl.Customers)
	SetupProductRoutes(admin, ctl.Products)
	SetupScreenRoutes(admin, ctl.Screens)
	SetupSavedViewRoutes(admin, ctl.SavedViews)
}
