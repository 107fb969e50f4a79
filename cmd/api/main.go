package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recipe-mgmt/recipe-storage/config"
	"github.com/recipe-mgmt/recipe-storage/internal/api"
	"github.com/recipe-mgmt/recipe-storage/internal/auth"
	"github.com/recipe-mgmt/recipe-storage/internal/cache"
	"github.com/recipe-mgmt/recipe-storage/internal/gcp"
	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/router"
	"github.com/recipe-mgmt/recipe-storage/internal/server"
	"github.com/recipe-mgmt/recipe-storage/internal/service"
	"github.com/recipe-mgmt/recipe-storage/internal/store"
)

func main() {
	log, err := logger.New(string(config.GetEnvironment()))
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	opts := gcp.ClientOptionsFromEnv()

	recipeStore, err := store.NewFirestoreStore(ctx, cfg.FirebaseProjectID, cfg.RecipesCollection, log, opts...)
	if err != nil {
		log.Fatal("failed to connect to Firestore", "error", err)
	}
	defer recipeStore.Close()

	var verifier auth.Verifier
	switch cfg.AuthMode {
	case config.AuthModeLocal:
		verifier = auth.NewLocalVerifier(cfg.JWTSecret)
	default:
		verifier, err = auth.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID, opts...)
		if err != nil {
			log.Fatal("failed to initialize Firebase auth", "error", err)
		}
	}

	// The public-listing cache is optional; a missing or unreachable Redis
	// just means every listing hits the store.
	var publicCache cache.PublicRecipes
	if cfg.CacheConfigured() {
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Warn("Redis unavailable, running without public-listing cache", "error", err)
		} else {
			publicCache = cache.NewRedisPublicRecipes(client, cfg.PublicCacheTTL, log)
		}
	}

	recipeService := service.NewRecipeService(recipeStore, publicCache, log)
	recipeHandler := api.NewRecipeHandler(recipeService, log)
	engine := router.SetupRouter(recipeHandler, verifier, cfg.AuthEnabled, log)
	srv := server.New(cfg, engine, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal("server error", "error", err)
		}
	case sig := <-quit:
		log.Info("received signal, shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	log.Info("server stopped")
}
