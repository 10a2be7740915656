package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	catalog, err := LoadCatalog(cfg.ProjectsFile)
	if err != nil {
		log.Fatal("Failed to load project catalog: ", err)
	}
	log.Printf("Loaded %d projects in %d categories", len(catalog.Projects), len(catalog.Categories))

	store, err := OpenStore(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer store.Close()

	a, err := newApp(cfg, catalog, store, newSMTPMailer(cfg))
	if err != nil {
		log.Fatal("Failed to initialise: ", err)
	}

	go a.cleanupOldVisitorData(context.Background())

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.adminToken)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	r, err := a.routes()
	if err != nil {
		log.Fatal("Failed to set up routes: ", err)
	}
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
