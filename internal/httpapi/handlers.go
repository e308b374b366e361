package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nodebird-api/internal/auth"
	"nodebird-api/internal/posts"
	"nodebird-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Issuer *auth.TokenIssuer
	Posts  *posts.Service

	// LookupTimeout bounds the tenant store call during issuance. Zero means
	// the request context alone governs it.
	LookupTimeout time.Duration
}

const (
	msgTokenIssued  = "token issued"
	msgUnregistered = "unregistered domain, register the domain first"
	msgServerError  = "server error"
	msgNoResults    = "no results"
	msgBadRequest   = "invalid request"
)

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"code": status, "message": message})
}

// --- Token ---

type issueTokenRequest struct {
	DomainSecret string `json:"domainSecret"`
	// ClientSecret is accepted for older clients.
	ClientSecret string `json:"clientSecret"`
}

func (r issueTokenRequest) secret() string {
	if r.DomainSecret != "" {
		return r.DomainSecret
	}
	return r.ClientSecret
}

// IssueToken exchanges a domain secret for a short-lived token.
func (h Handlers) IssueToken(c *gin.Context) {
	if h.Issuer == nil {
		respondError(c, http.StatusInternalServerError, msgServerError)
		return
	}
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body carries no registered secret.
		respondError(c, http.StatusUnauthorized, msgUnregistered)
		return
	}

	ctx := c.Request.Context()
	if h.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.LookupTimeout)
		defer cancel()
	}

	token, err := h.Issuer.Issue(ctx, req.secret())
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrUnregisteredDomain):
		respondError(c, http.StatusUnauthorized, msgUnregistered)
		return
	default:
		logger.FromGin(c).Error("token issuance failed", "err", err)
		respondError(c, http.StatusInternalServerError, msgServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": msgTokenIssued, "token": token})
}

// TokenProbe echoes the verified claims back to the caller.
func (h Handlers) TokenProbe(c *gin.Context) {
	claims, err := auth.ClaimsFrom(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid token")
		return
	}
	c.JSON(http.StatusOK, claims)
}

// --- Posts ---

func (h Handlers) MyPosts(c *gin.Context) {
	if h.Posts == nil {
		respondError(c, http.StatusInternalServerError, msgServerError)
		return
	}
	userID, err := auth.UserID(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid token")
		return
	}
	out, err := h.Posts.MyPosts(c.Request.Context(), userID)
	if err != nil {
		h.postsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "payload": out})
}

func (h Handlers) PostsByHashtag(c *gin.Context) {
	if h.Posts == nil {
		respondError(c, http.StatusInternalServerError, msgServerError)
		return
	}
	out, err := h.Posts.ByHashtag(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.postsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "payload": out})
}

func (h Handlers) postsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, posts.ErrNotFound):
		respondError(c, http.StatusNotFound, msgNoResults)
	case errors.Is(err, posts.ErrInvalidArgument):
		respondError(c, http.StatusBadRequest, msgBadRequest)
	default:
		logger.FromGin(c).Error("posts lookup failed", "err", err)
		respondError(c, http.StatusInternalServerError, msgServerError)
	}
}
