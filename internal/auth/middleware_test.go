package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func gatedRouter(m *Manager, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireToken(m), func(c *gin.Context) {
		*reached = true
		fromCtx, err := ClaimsFrom(c.Request.Context())
		if err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		fromGin, ok := ClaimsFromGin(c)
		if !ok || fromGin.UserID != fromCtx.UserID {
			c.Status(http.StatusTeapot)
			return
		}
		uid, _ := UserID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": uid, "nick": fromCtx.UserNick})
	})
	return r
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireToken_ValidAttachesClaims(t *testing.T) {
	now := t0
	m := newTestManager(t, &now)
	tok, _, _ := m.Sign(7, "duck")

	var reached bool
	for _, header := range []string{tok, "Bearer " + tok} {
		reached = false
		w := doGet(gatedRouter(m, &reached), header)
		if w.Code != http.StatusOK || !reached {
			t.Fatalf("expected 200 and handler reached, got %d (reached=%v)", w.Code, reached)
		}
		var body struct {
			ID   int64  `json:"id"`
			Nick string `json:"nick"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.ID != 7 || body.Nick != "duck" {
			t.Fatalf("unexpected body: %+v", body)
		}
	}
}

func TestRequireToken_MissingIsInvalid(t *testing.T) {
	now := t0
	var reached bool
	w := doGet(gatedRouter(newTestManager(t, &now), &reached), "")
	if w.Code != http.StatusUnauthorized || reached {
		t.Fatalf("expected 401 without reaching handler, got %d (reached=%v)", w.Code, reached)
	}
}

func TestRequireToken_InvalidShortCircuits(t *testing.T) {
	now := t0
	var reached bool
	w := doGet(gatedRouter(newTestManager(t, &now), &reached), "garbage")
	if w.Code != http.StatusUnauthorized || reached {
		t.Fatalf("expected 401 without reaching handler, got %d (reached=%v)", w.Code, reached)
	}
	var body struct {
		Code int `json:"code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Code != http.StatusUnauthorized {
		t.Fatalf("expected code 401 in body, got %d", body.Code)
	}
}

func TestRequireToken_ExpiredReturns419(t *testing.T) {
	now := t0
	m := newTestManager(t, &now)
	tok, _, _ := m.Sign(7, "duck")
	now = t0.Add(TokenLifetime + time.Second)

	var reached bool
	w := doGet(gatedRouter(m, &reached), tok)
	if w.Code != StatusTokenExpired || reached {
		t.Fatalf("expected 419 without reaching handler, got %d (reached=%v)", w.Code, reached)
	}
	var body struct {
		Code int `json:"code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Code != StatusTokenExpired {
		t.Fatalf("expected code 419 in body, got %d", body.Code)
	}
}

func TestRequireToken_DoesNotTrimWhitespace(t *testing.T) {
	now := t0
	m := newTestManager(t, &now)
	tok, _, _ := m.Sign(7, "duck")

	var reached bool
	w := doGet(gatedRouter(m, &reached), tok+" ")
	if w.Code != http.StatusUnauthorized || reached {
		t.Fatalf("expected 401 for padded token, got %d", w.Code)
	}
}
