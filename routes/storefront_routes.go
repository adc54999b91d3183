package routes

import (
	"github.com/arjun-099/DukaanDesk/controllers"
	"github.com/gin-gonic/gin"
)

// initStorefrontRoutes initializes the public storefront and webhook routes.
// Each store is addressed by its merchant API token; the /storefront routes
// fall back to the configured single-tenant token.
func initStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store/:token")
	{
		store.GET("/products", controllers.ListStoreProducts)
		store.GET("/products/:id", controllers.GetStoreProduct)
		store.POST("/orders", controllers.CreateStoreOrder)
	}

	// Single-tenant mirror of /store/:token using the configured default token
	storefront := router.Group("/storefront")
	{
		storefront.GET("/products", controllers.ListStoreProducts)
		storefront.GET("/products/:id", controllers.GetStoreProduct)
		storefront.POST("/orders", controllers.CreateStoreOrder)
	}

	router.POST("/webhooks/payment/:token", controllers.PaymentWebhook)
}
