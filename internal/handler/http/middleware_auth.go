package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, verifies it against the identity provider via [auth.Verifier],
// and — on success — stores the authenticated principal in the request
// context under [utils.PrincipalCtxKey] before delegating to the next
// handler.
//
// Rejections:
//   - absent or malformed header, or empty token — HTTP 401 with
//     {"error":"No token provided"} ([auth.ErrNoToken]);
//   - provider rejection or verification transport fault — HTTP 403 with
//     {"error":"Invalid token"} ([auth.ErrInvalidToken]).
//
// Every request re-verifies its token; there is no cache.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromAuthHeader(r.Header.Get("Authorization"))
		if token == "" {
			h.writeError(w, r, auth.ErrNoToken)
			return
		}

		ctx := r.Context()
		principal, err := h.verifier.Verify(ctx, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		// Store the principal in the context so that downstream handlers
		// can stamp user_id without re-verifying the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// A header with no second space-separated part, or with an empty token
// value, yields "" — the caller treats that the same as an absent header.
func tokenFromAuthHeader(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}
