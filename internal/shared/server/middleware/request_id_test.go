package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated request id")
	}
	if got := resp.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("header %q does not match context id %q", got, seen)
	}
}

func TestRequestIDPropagatesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "caller-supplied")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Request-Id"); got != "caller-supplied" {
		t.Fatalf("expected caller id to be kept, got %q", got)
	}
}
