package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/configs"
	"github.com/VaniNagpal/Restaurant-Backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := ":" + cfg.Port
	fmt.Println("listening on http://localhost" + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
