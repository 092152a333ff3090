package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tube/config"
	deliverycontext "tube/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream failed")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "generated when absent"},
		{name: "client id kept", incoming: "client-id-1", wantKept: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, false)

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, rec.Body.String())
			if tt.wantKept {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("success is quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.NotContains(t, buf.String(), "HTTP Request")
	})

	t.Run("success is logged in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?page=2", nil))

		assert.Contains(t, buf.String(), "HTTP Request")
		assert.Contains(t, buf.String(), `"query":"page=2"`)
	})

	t.Run("errors are logged with their final status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), `"status":502`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}
