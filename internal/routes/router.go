package routes

import (
	"net/http"
	"time"

	"logistics-inventory-api/internal/config"
	"logistics-inventory-api/internal/delivery/http/handler"
	"logistics-inventory-api/internal/infrastructure/database/postgres"
	"logistics-inventory-api/internal/logger"
	"logistics-inventory-api/internal/middleware"
	"logistics-inventory-api/internal/scheduler"
	"logistics-inventory-api/internal/usecase/alert"
	"logistics-inventory-api/internal/usecase/catalog"
	"logistics-inventory-api/internal/usecase/dashboard"
	"logistics-inventory-api/internal/usecase/inventory"
	"logistics-inventory-api/internal/usecase/order"
	"logistics-inventory-api/internal/usecase/shipment"
	"logistics-inventory-api/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires repositories, services and handlers, and returns the
// router together with the lifecycle scheduler built on the same services.
func SetupRoutes(cfg *config.Config, db *postgres.DB) (*gin.Engine, *scheduler.Scheduler) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: request ID, logging, security headers, CORS,
	// request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	productRepository := postgres.NewProductRepository(db)
	rawMaterialRepository := postgres.NewRawMaterialRepository(db)
	supplierRepository := postgres.NewSupplierRepository(db)
	productInvRepository := postgres.NewProductInventoryRepository(db)
	materialInvRepository := postgres.NewRawMaterialInventoryRepository(db)
	shipmentRepository := postgres.NewShipmentRepository(db)
	orderRepository := postgres.NewProductionOrderRepository(db)
	alertRepository := postgres.NewAlertRepository(db)

	alertService := alert.NewService(alertRepository)
	userService := user.NewService(userRepository, cfg.JWT)
	catalogService := catalog.NewService(productRepository, rawMaterialRepository, supplierRepository)
	inventoryService := inventory.NewService(productInvRepository, materialInvRepository, productRepository, rawMaterialRepository, alertService)
	shipmentService := shipment.NewService(shipmentRepository, productRepository, rawMaterialRepository, supplierRepository, productInvRepository, materialInvRepository, alertService)
	orderService := order.NewService(orderRepository, productRepository, rawMaterialRepository, productInvRepository, materialInvRepository, alertService)
	dashboardService := dashboard.NewService(shipmentRepository, orderRepository, productInvRepository, materialInvRepository, alertRepository)

	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	orderHandler := handler.NewOrderHandler(orderService)
	alertHandler := handler.NewAlertHandler(alertService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterAuthRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)

			operator := protected.Group("")
			operator.Use(middleware.OperatorOrAdmin())
			{
				catalogHandler.RegisterRoutes(operator)
				inventoryHandler.RegisterRoutes(operator)
				shipmentHandler.RegisterRoutes(operator)
				orderHandler.RegisterRoutes(operator)
				alertHandler.RegisterRoutes(operator)
				dashboardHandler.RegisterRoutes(operator)
			}

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	lifecycleScheduler := scheduler.New(
		shipmentRepository,
		orderRepository,
		shipmentService,
		orderService,
		alertService,
		time.Duration(cfg.Scheduler.AlertMaxAgeHrs)*time.Hour,
	)

	logger.Info("All routes initialized")
	return router, lifecycleScheduler
}
