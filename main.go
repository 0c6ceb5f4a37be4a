package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go-stall-management/database"
	"go-stall-management/helpers"
	routes "go-stall-management/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file loaded:", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	if err := os.MkdirAll(helpers.UploadDir, 0o755); err != nil {
		log.Fatalf("upload directory: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// The stall frontend is served from whatever host is handy during the
	// event, so CORS stays wide open.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "GET", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Stored payment-proof references resolve against this mount.
	router.Static("/uploads", "./"+helpers.UploadDir)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	orderStore := database.NewOrderStore(pool)
	waitingStore := database.NewWaitingStore(pool)

	routes.OrderRoutes(router, orderStore)
	routes.WaitingRoutes(router, waitingStore)

	router.Run(":" + port)
}
