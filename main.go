// @title Modeva CMS Admin API
// @version 1.0
// @description List screens whose filter state lives in the URL, row-action popup state and saved filter views.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"time"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/config"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/customer_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/listscreen"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/order_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/product_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/saved_view_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/screen_controller"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/middleware"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/routes/cms_routes"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dbs, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer dbs.Close(log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := config.ConnectRedis(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("redis init failed", zap.Error(err))
	}
	defer redisClient.Close()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtService, err := services.NewJWTService(cfg.JWTSecret)
	if err != nil {
		log.Fatal("jwt service init failed", zap.Error(err))
	}

	listCache := list_cache.New(cfg.ListCacheTTL)
	basePath := "/api/v1/admin"

	orders := order_controller.NewController(basePath,
		services.NewOrderListService(dbs.EcommerceGorm, log),
		services.NewOrderItemListService(dbs.EcommerceGorm, log),
		listCache, cfg.ExportRowLimit, log)
	customers := customer_controller.NewController(basePath,
		services.NewCustomerListService(dbs.EcommerceGorm, log), listCache, log)
	products := product_controller.NewController(basePath,
		services.NewProductListService(dbs.CmsGorm, log), listCache, log)

	registry := listscreen.NewRegistry()
	registry.Add(orders.Orders)
	registry.Add(orders.Items)
	registry.Add(customers.Customers)
	registry.Add(products.Products)

	screenStates := services.NewScreenStateService(
		services.NewRedisScreenStateStore(redisClient, cfg.ScreenStateTTL), registry.Names(), listCache, log)
	savedViews := services.NewSavedViewService(services.NewPgxSavedViewRepository(dbs.CmsDB), log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "Location"},
	}))

	api := router.Group("/api/v1")
	admin := api.Group("/admin")
	admin.Use(
		middleware.AdminAuthMiddleware(jwtService, log),
		middleware.RateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow, log),
	)
	cms_routes.SetupAdminRoutes(admin, cms_routes.Controllers{
		Orders:     orders,
		Customers:  customers,
		Products:   products,
		Screens:    screen_controller.NewController(screenStates, log),
		SavedViews: saved_view_controller.NewController(savedViews, registry, log),
	})
	log.Info("admin routes registered", zap.Strings("screens", registry.Names()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info("server is running", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
