// Package auth implements the credential verifier: it validates bearer
// tokens against the external identity provider (Supabase GoTrue) and
// produces the authenticated principal for the request.
//
// Tokens are opaque to this service. Every request re-verifies its token
// with one outbound call; there is no local parsing and no cache, so a
// revoked token is rejected immediately.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/models"
)

// Verifier validates a raw bearer token and returns the principal it
// belongs to.
type Verifier interface {
	Verify(ctx context.Context, token string) (models.Principal, error)
}

// Config holds the settings for the identity provider client.
type Config struct {
	// BaseURL is the Supabase project base URL; the verification
	// endpoint lives under /auth/v1.
	BaseURL string
	// APIKey is sent as the "apikey" header on every call.
	APIKey string
	// Timeout bounds a single verification round trip.
	Timeout time.Duration
}

type supabaseVerifier struct {
	client *resty.Client
	logger *logger.Logger
}

// NewSupabaseVerifier builds a Verifier backed by the GoTrue
// /auth/v1/user endpoint.
func NewSupabaseVerifier(cfg Config, log *logger.Logger) Verifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("apikey", cfg.APIKey)

	return &supabaseVerifier{client: cli, logger: log}
}

// Verify submits the raw token to the identity provider and wraps the
// returned user into a [models.Principal].
//
// An empty token fails with [ErrNoToken]. Provider rejection and any
// transport fault both fail with [ErrInvalidToken]; the underlying cause
// is preserved in the wrapped error for logging.
func (v *supabaseVerifier) Verify(ctx context.Context, token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, ErrNoToken
	}

	var principal models.Principal
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&principal).
		Get("/auth/v1/user")
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: verify request: %w", ErrInvalidToken, err)
	}
	if resp.IsError() {
		v.logger.Debug().
			Int("status", resp.StatusCode()).
			Msg("identity provider rejected token")
		return models.Principal{}, fmt.Errorf("%w: identity provider returned %d", ErrInvalidToken, resp.StatusCode())
	}
	if principal.ID == "" {
		return models.Principal{}, fmt.Errorf("%w: identity provider returned no user id", ErrInvalidToken)
	}

	return principal, nil
}
