package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backend/config"
	"backend/middleware"
	"backend/routes"
	"backend/storage"
	"backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment")
	}

	cfg := config.Load()

	gin.SetMode(gin.ReleaseMode)
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("Error closing MongoDB client: %v", err)
		}
	}()

	hash := func(password string) string {
		return utils.HashPassword(password, cfg.Secret)
	}
	if err := store.EnsureSeed(ctx, hash); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	routes.InitializeRoutes(r, store, cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
