package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"egramseva-backend/pkg/logger"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromContext interface{}
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		fromContext = logger.FieldsFromContext(c.Request.Context())["request_id"]
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	echoed := w.Header().Get(RequestIDHeader)
	if echoed == "" {
		t.Fatalf("expected a generated request id on the response")
	}
	if fromContext != echoed {
		t.Fatalf("expected context field %v to match header %q", fromContext, echoed)
	}
}

func TestRequestIDMiddleware_HonoursCallerID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "editor-session-7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "editor-session-7" {
		t.Fatalf("expected caller id echoed, got %q", got)
	}
}
