package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/config"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/handler"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/infra"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/middleware"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/notify"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/service"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler <- Service <- Repository <- DB/Redis
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
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// Infrastructure
	pix := infra.NewPix(cfg.PixKey, cfg.MerchantName)
	notifier := notify.NewLogNotifier()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	addOnRepo := repository.NewAddOnRepository(db)
	cartRepo := repository.NewCartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	registerRepo := repository.NewRegisterRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, rdb)
	categorySvc := service.NewCategoryService(categoryRepo)
	addOnSvc := service.NewAddOnService(addOnRepo)
	cartSvc := service.NewCartService(cartRepo, productRepo, addOnRepo, notifier)
	registerSvc := service.NewRegisterService(registerRepo, notifier, dispatcher)
	saleSvc := service.NewSaleService(saleRepo, cartSvc, registerSvc, notifier, service.CheckoutPolicy{
		RequireCustomerName: cfg.RequireCustomerName,
		DefaultCustomerName: cfg.DefaultCustomerName,
	}, pix)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	addOnsH := handler.NewAddOnsHandler(addOnSvc)
	cartH := handler.NewCartHandler(cartSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	registerH := handler.NewRegisterHandler(registerSvc)

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog: everyone authenticated reads, admin writes
		v1.GET("/products", middleware.RequireRole("admin", "cashier"), productsH.List)
		v1.GET("/products/:id", middleware.RequireRole("admin", "cashier"), productsH.Get)
		products := v1.Group("/products", middleware.RequireRole("admin"))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Deactivate)
		}

		v1.GET("/categories", middleware.RequireRole("admin", "cashier"), categoriesH.List)
		categories := v1.Group("/categories", middleware.RequireRole("admin"))
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}

		v1.GET("/addons", middleware.RequireRole("admin", "cashier"), addOnsH.List)
		addons := v1.Group("/addons", middleware.RequireRole("admin"))
		{
			addons.POST("", addOnsH.Create)
			addons.PUT("/:id", addOnsH.Update)
			addons.DELETE("/:id", addOnsH.Deactivate)
		}

		v1.GET("/acai-addons", middleware.RequireRole("admin", "cashier"), addOnsH.ListAcai)
		acaiAddons := v1.Group("/acai-addons", middleware.RequireRole("admin"))
		{
			acaiAddons.POST("", addOnsH.CreateAcai)
			acaiAddons.PUT("/:id", addOnsH.UpdateAcai)
			acaiAddons.DELETE("/:id", addOnsH.DeactivateAcai)
		}

		// Cart: scoped to the authenticated operator
		cart := v1.Group("/cart", middleware.RequireRole("admin", "cashier"))
		{
			cart.GET("", cartH.Get)
			cart.DELETE("", cartH.Clear)
			cart.POST("/items", cartH.AddItem)
			cart.PATCH("/items/:id", cartH.UpdateQuantity)
			cart.DELETE("/items/:id", cartH.RemoveItem)
		}

		// Sales
		v1.POST("/sales", middleware.RequireRole("admin", "cashier"), salesH.Finalize)
		v1.GET("/sales", middleware.RequireRole("admin", "cashier"), salesH.List)
		v1.GET("/sales/:id", middleware.RequireRole("admin", "cashier"), salesH.Get)
		v1.GET("/sales/:id/pix-qr", middleware.RequireRole("admin", "cashier"), salesH.PixQR)

		// Cash register
		register := v1.Group("/register", middleware.RequireRole("admin", "cashier"))
		{
			register.POST("/open", registerH.Open)
			register.POST("/close", registerH.Close)
			register.GET("/current", registerH.Current)
			register.POST("/movements", registerH.Movement)
			register.GET("/events", registerH.Events)
			register.GET("/:id/movements", registerH.Movements)
		}
		v1.GET("/register/history", middleware.RequireRole("admin"), registerH.History)

		// Users: admin only
		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
			users.PUT("/:id", authH.UpdateUser)
			users.DELETE("/:id", authH.DeactivateUser)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
