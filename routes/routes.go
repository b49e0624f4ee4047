package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hardware-store/config"
	"hardware-store/controllers"
	"hardware-store/libs"
	"hardware-store/middleware"
	"hardware-store/services"
)

// Dependencies carries the services the HTTP layer is built on.
type Dependencies struct {
	Config   *config.Config
	Auth     *services.AuthService
	Carts    *services.CartService
	Store    *services.ConfigService
	Popups   *services.PopupService
	Products *services.ProductService
	Checkout *services.CheckoutService
	Sellers  *services.SellerService
	Stats    *services.StatsService
	Uploader libs.ImageUploader
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	secure := deps.Config.IsProduction()

	authCtrl := controllers.NewAuthController(deps.Auth, deps.Carts, secure)
	productCtrl := controllers.NewProductController(deps.Products, deps.Uploader)
	categoryCtrl := controllers.NewCategoryController(deps.Products)
	cartCtrl := controllers.NewCartController(deps.Carts, deps.Products)
	configCtrl := controllers.NewConfigController(deps.Store)
	popupCtrl := controllers.NewPopupController(deps.Popups, deps.Store)
	transactionCtrl := controllers.NewTransactionController(deps.Checkout)
	sellerCtrl := controllers.NewSellerApplicationController(deps.Sellers)
	orderCtrl := controllers.NewOrderController(deps.Checkout, deps.Stats)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.Use(middleware.Session(deps.Auth, secure))

	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)
	api.GET("/auth/me", authCtrl.Me)

	api.GET("/products", productCtrl.GetAllProducts)
	api.GET("/products/:id", productCtrl.GetProductByID)
	api.GET("/categories", categoryCtrl.GetCategories)

	api.GET("/config", configCtrl.GetConfig)
	api.GET("/config/theme", configCtrl.GetTheme)
	api.GET("/config/theme.css", configCtrl.GetThemeCSS)

	api.GET("/payment-status", transactionCtrl.PaymentStatus)
	api.POST("/mercadopago/webhook", transactionCtrl.Webhook)
	api.GET("/mercadopago/webhook", transactionCtrl.WebhookQuery)

	api.POST("/seller-applications", sellerCtrl.Submit)

	visitor := api.Group("/")
	visitor.Use(middleware.CartOwner(secure))
	{
		visitor.GET("/cart", cartCtrl.GetCart)
		visitor.DELETE("/cart", cartCtrl.ClearCart)
		visitor.POST("/cart/items", cartCtrl.AddItem)
		visitor.PATCH("/cart/items/:productId", cartCtrl.UpdateItem)
		visitor.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)

		visitor.GET("/popups/next", popupCtrl.Next)
		visitor.POST("/popups/:id/shown", popupCtrl.MarkShown)
	}

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/checkout", transactionCtrl.Checkout)
	}

	admin := api.Group("/")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/config", configCtrl.SaveConfig)

		admin.GET("/seller-applications", sellerCtrl.List)
		admin.PATCH("/seller-applications/:id", sellerCtrl.UpdateStatus)

		admin.GET("/admin/stats", orderCtrl.GetStats)
		admin.GET("/admin/orders", orderCtrl.GetAllOrders)
		admin.GET("/admin/orders/:id", orderCtrl.GetOrderByID)

		admin.GET("/admin/products", productCtrl.AdminListProducts)
		admin.POST("/admin/products", productCtrl.CreateProduct)
		admin.PATCH("/admin/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/admin/products/:id", productCtrl.DeleteProduct)
	}

	router.Static("/uploads", deps.Config.UploadDir)
}
