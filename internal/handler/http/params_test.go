package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalFrom(t *testing.T) {
	t.Run("principal set by middleware is returned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
		req = injectPrincipal(req, testPrincipal)

		principal, err := principalFrom(req)

		require.NoError(t, err)
		assert.Equal(t, testPrincipal, principal)
	})

	t.Run("missing principal is reported as missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)

		_, err := principalFrom(req)

		assert.ErrorIs(t, err, auth.ErrNoToken)
	})
}

func TestRequireQuery_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		params      []string
		wantFilters map[string]string
		wantErrMsg  string
	}{
		{
			name:        "single present parameter",
			target:      "/attractions?park_id=1",
			params:      []string{"park_id"},
			wantFilters: map[string]string{"park_id": "1"},
		},
		{
			name:        "two present parameters",
			target:      "/time-slots?park_id=1&date=2026-10-01",
			params:      []string{"park_id", "date"},
			wantFilters: map[string]string{"park_id": "1", "date": "2026-10-01"},
		},
		{
			name:       "absent parameter",
			target:     "/attractions",
			params:     []string{"park_id"},
			wantErrMsg: "park_id missing",
		},
		{
			name:       "present but empty parameter",
			target:     "/attractions?park_id=",
			params:     []string{"park_id"},
			wantErrMsg: "park_id missing",
		},
		{
			name:       "first of two missing wins",
			target:     "/time-slots?date=2026-10-01",
			params:     []string{"park_id", "date"},
			wantErrMsg: "park_id missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			filters, err := requireQuery(req, tt.params...)

			if tt.wantErrMsg != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantErrMsg, validationErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilters, filters)
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	h := newTestHandler(nil)

	newBodyRequest := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/book-ticket", strings.NewReader(body))
	}

	t.Run("valid body decodes", func(t *testing.T) {
		var req models.BookTicketRequest
		err := h.decodeAndValidate(newBodyRequest(`{
			"park_id": 1, "ticket_type": "Regular", "date": "2026-10-01",
			"time_slot": "10:00-12:00", "adults": 2, "total_price": 1500
		}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "Regular", req.TicketType)
		require.NotNil(t, req.TotalPrice)
		assert.Equal(t, 1500.0, *req.TotalPrice)
	})

	t.Run("zero numeric values pass validation", func(t *testing.T) {
		var req models.BookTicketRequest
		err := h.decodeAndValidate(newBodyRequest(`{
			"park_id": 1, "ticket_type": "Regular", "date": "2026-10-01",
			"time_slot": "10:00-12:00", "adults": 0, "total_price": 0
		}`), &req)

		require.NoError(t, err)
		require.NotNil(t, req.Adults)
		assert.Equal(t, 0, *req.Adults)
		assert.Equal(t, 0.0, *req.TotalPrice)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		var req models.BookTicketRequest
		err := h.decodeAndValidate(newBodyRequest(`{broken`), &req)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid JSON was passed", validationErr.Message)
	})

	t.Run("missing field is named by its json tag", func(t *testing.T) {
		var req models.BookTicketRequest
		err := h.decodeAndValidate(newBodyRequest(`{
			"park_id": 1, "ticket_type": "Regular", "date": "2026-10-01",
			"time_slot": "10:00-12:00", "adults": 2
		}`), &req)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "total_price missing", validationErr.Message)
	})
}
