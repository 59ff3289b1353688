package main

import (
	"log"

	"github.com/jengzang/restaurant-discovery-go/internal/api"
	"github.com/jengzang/restaurant-discovery-go/internal/config"
	"github.com/jengzang/restaurant-discovery-go/internal/database"
)

func main() {
	cfg := config.Load()

	if cfg.GoogleAPIKey == "" {
		log.Println("GOOGLE_API_KEY is not set; live searches will fall back to mock data")
	}

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
