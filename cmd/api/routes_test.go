package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nodebird-api/internal/auth"
	"nodebird-api/internal/config"
	"nodebird-api/internal/httpapi"

	"github.com/gin-gonic/gin"
)

func testEngine(t *testing.T, ready readyCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m, err := auth.NewManager(config.AuthConfig{JWTSecret: "secret", JWTIssuer: "nodebird"})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	r := gin.New()
	registerRoutes(r, httpapi.Handlers{}, m, ready)
	return r
}

func get(r *gin.Engine, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestRoutes_Health(t *testing.T) {
	r := testEngine(t, func(context.Context) error { return nil })
	if code := get(r, "/healthz"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := get(r, "/readyz"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRoutes_ReadyzReportsFailure(t *testing.T) {
	r := testEngine(t, func(context.Context) error { return errors.New("db down") })
	if code := get(r, "/readyz"); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
}

func TestRoutes_ProtectedRequireToken(t *testing.T) {
	r := testEngine(t, nil)
	for _, path := range []string{"/v1/test", "/v1/posts/my", "/v1/posts/hashtag/go"} {
		if code := get(r, path); code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, code)
		}
	}
}
