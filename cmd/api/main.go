package main

import (
	"context"
	"os"

	"github.com/yigit/alumni/internal/pkg/logger"
	"github.com/yigit/alumni/internal/server"
)

// @title Alumni API
// @version 1.0
// @description Mentorship programs and user management for the alumni network

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
