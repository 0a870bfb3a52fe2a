package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-api/pkg/auth"
	"storefront-api/pkg/catalog"
)

var Router *gin.Engine

var (
	catalogClient *catalog.Client
	orderStore    OrderStore
)

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	Router = gin.Default()

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes(verifier auth.Verifier, store OrderStore) {
	catalogClient = catalog.NewClient()
	orderStore = store

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		products := api.Group("/products")
		{
			products.GET("", GetProducts)
			products.GET("/categories", GetProductCategories)
		}

		authed := api.Group("", RequireAuth(verifier))
		{
			authed.POST("/auth/sync", SyncAuth)

			orders := authed.Group("/orders")
			{
				orders.GET("", GetOrders)
				orders.POST("", CreateOrder)
				orders.PATCH("", UpdateOrderStatus)
				orders.GET("/:id", GetOrderByID)
				orders.PATCH("/:id", CancelOrder)
			}

			wishlist := authed.Group("/wishlist")
			{
				wishlist.GET("", GetWishlist)
				wishlist.POST("", AddToWishlist)
				wishlist.DELETE("/:id", RemoveFromWishlist)
			}

			authed.GET("/user", GetUser)
			authed.POST("/user", UpdateUser)

			authed.GET("/profile", GetProfile)
			authed.POST("/profile", UpdateProfile)
		}
	}
}
