package main

import (
	"os"

	"github.com/yigit/eduhub/internal/pkg/logger"
	"github.com/yigit/eduhub/internal/server"
)

// @title EduHub API
// @version 1.0
// @description Community backend for EduHub: discussions, events, articles and course Q&A

// @host localhost:4000
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token, required only when the admin guard is enabled

func main() {
	srv, err := server.NewServer()
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
