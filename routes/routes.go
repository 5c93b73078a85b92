package routes

import (
	"log"

	"promo-shop/cart"
	"promo-shop/config"
	"promo-shop/controllers"
	"promo-shop/middleware"
	"promo-shop/models"
	"promo-shop/repositories"
	"promo-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartManager := cart.NewManager(config.RedisClient, config.AppConfig.CartTTL)

	var mailer services.OrderMailer
	if emailSvc, err := models.NewEmailService(); err != nil {
		log.Println("Email service disabled:", err)
	} else {
		mailer = emailSvc
	}

	var cloudinarySvc *models.CloudinaryService
	if svc, err := models.NewCloudinaryService(); err != nil {
		log.Println("Cloudinary disabled:", err)
	} else {
		cloudinarySvc = svc
	}

	checkoutSvc := services.NewCheckoutService(repositories.NewOrderRepository(), cartManager, mailer)

	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController(cartManager, repositories.NewProductRepository())
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController()
	adminCtrl := controllers.NewAdminController(cloudinarySvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/categories", productCtrl.GetCategories)
	router.GET("/content", adminCtrl.GetContent)
	router.GET("/catalogues", adminCtrl.GetCatalogues)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		session.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		session.DELETE("/cart", cartCtrl.ClearCart)
		session.GET("/checkout/totals", checkoutCtrl.GetTotals)

		session.POST("/checkout", middleware.AuthMiddleware(), checkoutCtrl.Checkout)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)
		auth.GET("/orders", checkoutCtrl.GetMyOrders)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminCtrl.GetDashboard)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/content", adminCtrl.SaveContent)
		admin.DELETE("/content/:id", adminCtrl.DeleteContent)

		admin.POST("/catalogues", adminCtrl.CreateCatalogue)
		admin.PATCH("/catalogues/:id", adminCtrl.UpdateCatalogue)
		admin.DELETE("/catalogues/:id", adminCtrl.DeleteCatalogue)

		admin.POST("/uploads", adminCtrl.UploadFile)
	}
}
