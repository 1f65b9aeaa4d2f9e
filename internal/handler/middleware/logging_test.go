//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fervo/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := newLogger(config.LogConfig{Level: "debug", TimeZone: "UTC", TimeFormat: "15:04:05"}, buf, true).GetSlogLogger()

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/api/events/:id", func(c *gin.Context) {
		logger.InfoContext(c.Request.Context(), "loading event")
		c.Status(http.StatusNotFound)
	})
	return r
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestRequestLogger_TagsEveryRecord(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedEngine(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/events/42", nil)
	req.Header.Set(requestIDHeader, "edge-7f3a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "edge-7f3a", w.Header().Get(requestIDHeader))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, "edge-7f3a", l["request_id"])
	}
	done := lines[1]
	assert.Equal(t, "WARN", done["level"])
	assert.Equal(t, "/api/events/:id", done["route"])
	assert.EqualValues(t, http.StatusNotFound, done["status_code"])
}

func TestRequestLogger_ReplacesUnsafeInboundID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedEngine(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/events/42", nil)
	req.Header.Set(requestIDHeader, "bad id\r\ninjected")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestInboundRequestID(t *testing.T) {
	assert.Equal(t, "abc-123_x.y", inboundRequestID("abc-123_x.y"))
	assert.Empty(t, inboundRequestID(""))
	assert.Empty(t, inboundRequestID(strings.Repeat("a", maxRequestIDSize+1)))
	assert.Empty(t, inboundRequestID("a/b"))
}

func TestRequestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", requestLogLevel("/health", http.StatusOK).String())
	assert.Equal(t, "INFO", requestLogLevel("/api/events", http.StatusOK).String())
	assert.Equal(t, "ERROR", requestLogLevel("/health", http.StatusServiceUnavailable).String())
}
