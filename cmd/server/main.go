package main

import (
	"fmt"
	"log"
	"os"

	"github.com/stokradar/backend/config"
	httpDelivery "github.com/stokradar/backend/internal/delivery/http"
	"github.com/stokradar/backend/internal/domain"
	"github.com/stokradar/backend/internal/infrastructure/excel"
	"github.com/stokradar/backend/internal/infrastructure/store"
	"github.com/stokradar/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Stokradar Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Storage Type: %s", cfg.Storage.Type)

	// Initialize the catalog store
	var repository domain.ProductRepository
	switch cfg.Storage.Type {
	case "badger":
		badgerStore, err := store.OpenBadgerStore(cfg.Storage.Path, false)
		if err != nil {
			log.Fatalf("Failed to open catalog store: %v", err)
		}
		repository = badgerStore
		log.Printf("Catalog store: badger at %s", cfg.Storage.Path)
	default:
		repository = store.NewMemoryStore()
		log.Printf("Catalog store: in-memory")
	}
	defer repository.Close()

	// Initialize usecase layer
	searchService, err := usecase.NewSearchService(repository, usecase.SearchServiceConfig{
		MinScore:             cfg.Search.MinScore,
		ProductTypeThreshold: cfg.Search.ProductTypeThreshold,
		OtherTermsThreshold:  cfg.Search.OtherTermsThreshold,
		Workers:              cfg.Search.Workers,
		EnableDebugLogging:   cfg.Search.EnableDebugLogging || cfg.Server.Environment == "development",
	})
	if err != nil {
		log.Fatalf("Failed to create search service: %v", err)
	}
	defer searchService.Close()

	catalogService := usecase.NewCatalogService(repository, excel.NewParser())

	log.Printf("Search: min_score=%.2f, product_type_threshold=%.2f, other_terms_threshold=%.2f",
		cfg.Search.MinScore,
		cfg.Search.ProductTypeThreshold,
		cfg.Search.OtherTermsThreshold)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, catalogService, cfg.Upload.MaxFileBytes)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
