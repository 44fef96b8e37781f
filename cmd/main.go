package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/carnage89/AlexeyR/internal/app"
	"github.com/carnage89/AlexeyR/internal/clients/telegram"
	"github.com/carnage89/AlexeyR/internal/handlers"
	"github.com/carnage89/AlexeyR/internal/observability"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/seed"
	"github.com/carnage89/AlexeyR/internal/server"
	"github.com/carnage89/AlexeyR/internal/services"
)

func main() {
	cfg := app.LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	// Tracing (opt-in)
	if shutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "alexeyr",
		Environment: cfg.Environment,
	}); shutdown != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	// Storage
	log.Info("Setting up storage from main...", "mode", cfg.StorageMode)
	repos, err := app.BuildRepos(log, cfg)
	if err != nil {
		log.Error("Storage init failed", "error", err)
		os.Exit(1)
	}
	if err := seed.Apply(ctx, log, repos.Content, repos.Service, repos.Pricing, repos.Portfolio); err != nil {
		log.Error("Seeding default site data failed", "error", err)
		os.Exit(1)
	}

	// Clients
	telegramClient := telegram.NewFromEnv(log)

	// Services
	log.Info("Setting up services from main...")
	contentService := services.NewContentService(log, repos.Content)
	catalogService := services.NewCatalogService(log, repos.Service, repos.Portfolio, repos.Pricing)
	contactService := services.NewContactService(log, repos.Contact, telegramClient)
	adminAuthService := services.NewAdminAuthService(log, cfg.AdminPassword)

	// Handlers
	log.Info("Setting up handlers from main...")
	contentHandler := handlers.NewContentHandler(contentService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	portfolioHandler := handlers.NewPortfolioHandler(catalogService)
	pricingHandler := handlers.NewPricingHandler(catalogService)
	contactHandler := handlers.NewContactHandler(contactService)
	authHandler := handlers.NewAuthHandler(adminAuthService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:              log,
		ContentHandler:   contentHandler,
		ServiceHandler:   serviceHandler,
		PortfolioHandler: portfolioHandler,
		PricingHandler:   pricingHandler,
		ContactHandler:   contactHandler,
		AuthHandler:      authHandler,
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
