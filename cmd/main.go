package main

import (
	"log"

	"github.com/joho/godotenv"

	"storefront-api/internal/router"
	"storefront-api/pkg/auth"
	"storefront-api/pkg/global"
	"storefront-api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	router.InitEngine()
	router.InitializeRoutes(auth.NewHTTPVerifier(), router.MongoOrderStore{})

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
