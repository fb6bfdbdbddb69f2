package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func loggerRouter(buf *bytes.Buffer, status int) *gin.Engine {
	l := slog.New(slog.NewTextHandler(buf, nil))
	r := gin.New()
	r.Use(Logger(l))
	r.GET("/", func(c *gin.Context) { c.Status(status) })
	return r
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, "level=INFO"},
		{"client error logs warn", http.StatusNotFound, "level=WARN"},
		{"server error logs error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := loggerRouter(&buf, tt.status)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			r.ServeHTTP(w, req)

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log output %q, want level %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, "method=GET") || !strings.Contains(out, "path=/") {
				t.Errorf("log output missing request attrs: %q", out)
			}
		})
	}
}

func TestLogger_NilLoggerFallsBackToDefault(t *testing.T) {
	r := gin.New()
	r.Use(Logger(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
