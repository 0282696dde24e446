package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seedshare/config"
	deliverycontext "seedshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func serve(e *echo.Echo, target, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "client id reused", incoming: "abc-123_x.y", keep: true},
		{name: "unsafe characters replaced", incoming: "abc\r\nInjected: 1"},
		{name: "overlong id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen, seenCtx string
			e := newTestEcho(&bytes.Buffer{}, false)
			e.GET("/offers/:id", func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				seenCtx = deliverycontext.RequestIDFrom(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})

			rec := serve(e, "/offers/1", tt.incoming)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			assert.Equal(t, got, seenCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		target  string
		wantLog bool
		level   string
	}{
		{name: "success is quiet outside debug", target: "/offers/1"},
		{name: "success logged in debug", debug: true, target: "/offers/1", wantLog: true, level: "INFO"},
		{name: "probe quiet even in debug", debug: true, target: "/health"},
		{name: "client error logged", target: "/offers/missing", wantLog: true, level: "WARN"},
		{name: "server error logged", target: "/offers/boom", wantLog: true, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, tt.debug)
			e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
			e.GET("/offers/:id", func(c echo.Context) error {
				switch c.Param("id") {
				case "missing":
					return c.NoContent(http.StatusNotFound)
				case "boom":
					return echo.NewHTTPError(http.StatusInternalServerError, "boom")
				}

				return c.NoContent(http.StatusOK)
			})

			rec := serve(e, tt.target, "req-42")

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "HTTP request", line["msg"])
			assert.Equal(t, "/offers/:id", line["route"])
			assert.Equal(t, "req-42", line["request_id"])
			assert.EqualValues(t, rec.Code, line["status"])
		})
	}
}
