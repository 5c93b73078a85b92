package main

import (
	"log"

	"promo-shop/config"
	_ "promo-shop/docs"
	"promo-shop/middleware"
	"promo-shop/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Promo Shop API
// @version 1.0
// @description Promotional products storefront API: catalog, cart, checkout and admin CMS.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Money fields serialize as JSON numbers, matching the snapshot shape
	// the storefront consumes.
	decimal.MarshalJSONWithoutQuotes = true

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
