// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ParkChat

// Command lambda runs the API as an AWS Lambda function behind API
// Gateway, reusing the same router as the standalone server.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/config"
	handler "github.com/parkchat/parkchat-api/internal/handler/http"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/qr"
	"github.com/parkchat/parkchat-api/internal/store"
)

func main() {
	log := logger.NewLogger("parkchat-lambda")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

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
	adapter := httpadapter.New(handlers.Init())

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
