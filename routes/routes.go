package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jersey-hub/controllers"
	"jersey-hub/repositories"
	"jersey-hub/services"
)

func SetupRoutes(router *gin.Engine, store repositories.Store) {
	catalog := services.NewCatalogService(store)
	storefront := services.NewStorefrontService(store)

	jerseyCtrl := controllers.NewJerseyController(catalog)
	bannerCtrl := controllers.NewBannerController(catalog)
	orderCtrl := controllers.NewOrderController(catalog)
	storefrontCtrl := controllers.NewStorefrontController(storefront)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/jerseys", jerseyCtrl.ListJerseys)
		api.GET("/jerseys/:id", jerseyCtrl.GetJersey)
		api.POST("/jerseys", jerseyCtrl.CreateJersey)
		api.PUT("/jerseys/:id", jerseyCtrl.UpdateJersey)
		api.DELETE("/jerseys/:id", jerseyCtrl.DeleteJersey)

		api.GET("/banners", bannerCtrl.ListBanners)
		api.POST("/banners", bannerCtrl.CreateBanner)
		api.PUT("/banners/:id", bannerCtrl.UpdateBanner)
		api.DELETE("/banners/:id", bannerCtrl.DeleteBanner)

		api.GET("/orders", orderCtrl.ListOrders)
		api.POST("/orders", orderCtrl.CreateOrder)

		api.GET("/storefront", storefrontCtrl.Browse)
	}
}
