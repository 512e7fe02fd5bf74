package router

import (
	"time"

	"shopstock/internal/config"
	"shopstock/internal/handler"
	"shopstock/internal/middleware"
	"shopstock/internal/model"
	"shopstock/internal/repository"
	"shopstock/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokenStore := service.NewTokenStore(rdb)
	authSvc := service.NewAuthService(userRepo, tokenStore, cfg)
	productSvc := service.NewProductService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo)
	reportSvc := service.NewReportService(saleRepo, productRepo, cfg.LowStockThreshold)
	categorySvc := service.NewCategoryService(categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/api/refresh", authH.Refresh)
	r.POST("/api/register", authH.Register)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, tokenStore)
	api := r.Group("/api", jwtMW)
	{
		api.POST("/logout", authH.Logout)
		api.GET("/user", authH.CurrentUser)

		// Inventory reads — any authenticated role
		api.GET("/products", productsH.List)
		api.GET("/products/:id", productsH.GetByID)

		// Product writes — admin only
		products := api.Group("/products", middleware.RequireRole(model.RoleAdmin))
		{
			products.POST("", productsH.Create)
			products.PATCH("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		// Sales — staff and admin both record sales
		api.GET("/sales", salesH.List)
		api.POST("/sales", middleware.RequireRole(model.RoleStaff, model.RoleAdmin), salesH.RecordSale)

		// Reports
		api.GET("/reports/dashboard", reportsH.Dashboard)
		api.GET("/reports/sales", reportsH.TotalSales)
		api.GET("/reports/profit", reportsH.TotalProfit)
		// Low-stock panel is an admin widget
		api.GET("/reports/low-stock", middleware.RequireRole(model.RoleAdmin), reportsH.LowStock)

		// Categories — admin writes, all authenticated reads
		api.GET("/categories", categoriesH.List)
		categories := api.Group("/categories", middleware.RequireRole(model.RoleAdmin))
		{
			categories.POST("", categoriesH.Create)
			categories.PATCH("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		// User management — admin only
		users := api.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			users.GET("", usersH.List)
			users.POST("", usersH.Create)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
