package main

import (
	"log"

	"kabarindo/internal/config"
	"kabarindo/internal/db"
	"kabarindo/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load .env + environment
	cfg := config.Load()

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// File unggahan (cover artikel)
	r.Static("/uploads", cfg.UploadDir)

	router.RegisterRoutes(r, cfg)

	log.Printf("Kabarindo server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
