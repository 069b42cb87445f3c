package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github/itish2003/eventvendors/client"
	"github/itish2003/eventvendors/config"
	"github/itish2003/eventvendors/controller"
	"github/itish2003/eventvendors/services"
	"github/itish2003/eventvendors/web"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services.SetDocumentLicense(cfg.Extract.UnidocLicenseKey)

	// Vendor collection, persisted under a single key in the local store directory.
	kv, err := services.NewFileKeyValueStore(cfg.Store.Dir)
	if err != nil {
		log.Fatalf("FATAL: Failed to open vendor store: %v", err)
	}
	persistence := services.NewVendorPersistence(kv, cfg.Store.Key)
	store := services.NewVendorStore(persistence)

	if cfg.Store.Watch {
		if err := os.MkdirAll(kv.Dir, 0o755); err != nil {
			log.Fatalf("FATAL: Failed to create store dir: %v", err)
		}
		watcher, err := services.NewStoreWatcher(store, kv, cfg.Store.Key)
		if err != nil {
			log.Fatalf("FATAL: Failed to create store watcher: %v", err)
		}
		go watcher.Watch(ctx)
	}

	model, err := services.NewLanguageModel(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	aiService := services.NewAIService(model, cfg.LLM.ChatLanguage, cfg.Extract.MaxChars)

	aiController := controller.NewAIController(aiService, cfg.Extract.MaxUploadBytes)
	vendorController := controller.NewVendorController(store)

	// The UI reaches the AI endpoints over HTTP, like any other client.
	assistant := client.New(cfg.ResolveBackendURL(), nil)
	ui := web.NewHandler(store, assistant)

	router := gin.Default()
	controller.RegisterRoutes(router, aiController, vendorController)
	ui.RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		log.Printf("Vendor book starting on http://%s", server.Addr)
		log.Printf("  POST /api/extract, POST /api/extract/file, POST /api/chat")
		log.Printf("  GET  /api/vendors, GET /api/categories")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped")
}
