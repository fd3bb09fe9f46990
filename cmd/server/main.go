package main

import (
	"fmt"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/config"
	handler "github.com/parkchat/parkchat-api/internal/handler/http"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/qr"
	"github.com/parkchat/parkchat-api/internal/server"
	"github.com/parkchat/parkchat-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("parkchat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	verifier := auth.NewSupabaseVerifier(auth.Config{
		BaseURL: cfg.Supabase.URL,
		APIKey:  cfg.Supabase.AnonKey,
		Timeout: cfg.Server.RequestTimeout,
	}, log)
	gateway := store.NewRESTGateway(store.Config{
		BaseURL: cfg.Supabase.URL,
		APIKey:  cfg.Supabase.AnonKey,
		Timeout: cfg.Server.RequestTimeout,
	}, log)

	handlers := handler.NewHandler(verifier, gateway, qr.NewEncoder(), log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
