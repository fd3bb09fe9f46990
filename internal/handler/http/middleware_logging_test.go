package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest creates a test request whose context carries a logger
// writing to buf, the same way withTraceID installs one.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/test",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/test"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 200",
			method:          http.MethodPost,
			path:            "/book-ticket",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"id":1}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/book-ticket"`,
				`"status":200`,
			},
		},
		{
			name:          "GET 404 no body",
			method:        http.MethodGet,
			path:          "/no-such-route",
			handlerStatus: http.StatusNotFound,
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/no-such-route"`,
				`"status":404`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)

			var buf bytes.Buffer
			req := makeLoggedRequest(tt.method, tt.path, &buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			logLine := buf.String()
			for _, fragment := range tt.checkLogContains {
				assert.Contains(t, logLine, fragment)
			}
		})
	}
}
