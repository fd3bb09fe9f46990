package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
	"github.com/stretchr/testify/require"
)

// ---- Shared fixtures ----

const goodToken = "good-token"

var testPrincipal = models.Principal{ID: "user-1", Email: "visitor@example.com"}

// ---- Fake: auth.Verifier ----

type fakeVerifier struct {
	verifyFn func(ctx context.Context, token string) (models.Principal, error)
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (models.Principal, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, token)
	}
	if token == goodToken {
		return testPrincipal, nil
	}
	return models.Principal{}, auth.ErrInvalidToken
}

// ---- Fake: store.Gateway ----

type fakeGateway struct {
	queryFn  func(ctx context.Context, table string, filters map[string]string) ([]models.Row, error)
	insertFn func(ctx context.Context, table string, record map[string]any) (models.Row, error)
	updateFn func(ctx context.Context, table string, filters map[string]string, changes map[string]any) ([]models.Row, error)
}

func (f *fakeGateway) Query(ctx context.Context, table string, filters map[string]string) ([]models.Row, error) {
	if f.queryFn != nil {
		return f.queryFn(ctx, table, filters)
	}
	return []models.Row{}, nil
}

func (f *fakeGateway) Insert(ctx context.Context, table string, record map[string]any) (models.Row, error) {
	if f.insertFn != nil {
		return f.insertFn(ctx, table, record)
	}
	return models.Row{"id": float64(1)}, nil
}

func (f *fakeGateway) Update(ctx context.Context, table string, filters map[string]string, changes map[string]any) ([]models.Row, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, table, filters, changes)
	}
	return []models.Row{}, nil
}

// ---- Fake: qr.Encoder ----

type fakeEncoder struct {
	encodeFn func(content string) (string, error)
}

func (f *fakeEncoder) EncodeBase64PNG(content string) (string, error) {
	if f.encodeFn != nil {
		return f.encodeFn(content)
	}
	return "ZmFrZS1wbmc=", nil
}

// ---- Helpers ----

func newTestHandler(gw *fakeGateway) *Handler {
	if gw == nil {
		gw = &fakeGateway{}
	}
	return NewHandler(&fakeVerifier{}, gw, &fakeEncoder{}, logger.Nop())
}

func newTestRouter(gw *fakeGateway) http.Handler {
	return newTestHandler(gw).Init()
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-id middleware when a handler is exercised directly.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// injectPrincipal stores an authenticated principal in the request
// context, standing in for the auth middleware.
func injectPrincipal(r *http.Request, p models.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.PrincipalCtxKey, p))
}

// doRequest routes one request through the full router. A non-empty
// token is sent as a bearer Authorization header.
func doRequest(t *testing.T, router http.Handler, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// decodeObject parses a JSON-object response body.
func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	return got
}

// decodeArray parses a JSON-array response body.
func decodeArray(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	return got
}
