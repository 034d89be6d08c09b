package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func serve(t *testing.T, handler echo.HandlerFunc) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/v1/currencies", handler)

	req := httptest.NewRequest(http.MethodGet, "/v1/currencies", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	return line
}

func TestRequestLogger_Success(t *testing.T) {
	line := serve(t, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	if line["level"] != "info" || line["method"] != "GET" || line["uri"] != "/v1/currencies" {
		t.Fatalf("unexpected log line: %+v", line)
	}
	if line["status"] != float64(200) || line["request_id"] != "req-123" {
		t.Fatalf("unexpected log line: %+v", line)
	}
}

func TestRequestLogger_ClientError(t *testing.T) {
	line := serve(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	})

	if line["level"] != "warn" || line["status"] != float64(400) {
		t.Fatalf("unexpected log line: %+v", line)
	}
}

func TestRequestLogger_ServerError(t *testing.T) {
	line := serve(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	if line["level"] != "error" {
		t.Fatalf("unexpected log line: %+v", line)
	}
	if errMsg, _ := line["error"].(string); !strings.Contains(errMsg, "boom") {
		t.Fatalf("expected error in log line: %+v", line)
	}
}
