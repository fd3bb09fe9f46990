package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- tokenFromAuthHeader unit tests ----

func TestTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-token",
			wantToken: "my-token",
		},
		{
			name:      "missing token part",
			header:    "Bearer",
			wantToken: "",
		},
		{
			name:      "empty header",
			header:    "",
			wantToken: "",
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:      "only spaces",
			header:    " ",
			wantToken: "",
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantToken, tokenFromAuthHeader(tt.header))
		})
	}
}

// ---- auth middleware table test ----

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		verifyFn       func(ctx context.Context, token string) (models.Principal, error)
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"No token provided"}`,
		},
		{
			name:           "scheme without token → 401",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"No token provided"}`,
		},
		{
			name:       "provider rejects token → 403",
			authHeader: "Bearer expired-token",
			verifyFn: func(_ context.Context, _ string) (models.Principal, error) {
				return models.Principal{}, auth.ErrInvalidToken
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "valid token → next handler sees principal",
			authHeader: "Bearer " + goodToken,
			verifyFn: func(_ context.Context, token string) (models.Principal, error) {
				require.Equal(t, goodToken, token)
				return testPrincipal, nil
			},
			expectedStatus: http.StatusTeapot,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeVerifier{verifyFn: tt.verifyFn}, &fakeGateway{}, &fakeEncoder{}, logger.Nop())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				principal, ok := utils.GetPrincipalFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, testPrincipal, principal)

				w.WriteHeader(http.StatusTeapot)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
