package main

import (
	"context"
	"fmt"
	"fundflow/internal/client"
	"fundflow/internal/config"
	"fundflow/internal/repository"
	"fundflow/internal/server"
	"fundflow/internal/service"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	// Fail fast on missing secrets; an empty signing key would only surface
	// later as every callback failing verification.
	if cfg.Payway.APIKey == "" {
		log.Fatal("PAYWAY_API_KEY is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db := client.InitDB(cfg.DatabaseURL, cfg.SQLitePath)
	paywayClient := client.NewPaywayClient(&cfg.Payway)

	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	campaignService := service.NewCampaignService(campaignRepo, donationRepo, commentRepo, userRepo)
	paymentService := service.NewPaymentService(
		paywayClient,
		donationRepo,
		commentRepo,
		campaignRepo,
		cfg.BaseURL,
		cfg.Payway.APIKey,
		cfg.IsDevelopment(),
	)
	dashboardService := service.NewDashboardService(donationRepo, goalRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, authService, campaignService, paymentService, dashboardService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
