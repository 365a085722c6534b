package main

import (
	"dc_inventory_server/config"
	"dc_inventory_server/internal/http"
	"dc_inventory_server/internal/registry"
	"dc_inventory_server/internal/services"
	"dc_inventory_server/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal().Err(err).Msg("Invalid LOG_LEVEL")
	}

	if cfg.RegistryToken == "" {
		logger.Warn().Msg("REGISTRY_TOKEN is not set, registry calls will be unauthenticated")
	}

	client := registry.NewClient(cfg)
	assetService := services.NewAssetService(client)
	deviceService := services.NewDeviceService(client)

	server := http.NewServer(cfg, assetService, deviceService)

	logger.Info().
		Str("registry_url", cfg.RegistryURL).
		Str("port", cfg.HTTPPort).
		Msg("inventory server configured")

	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}
