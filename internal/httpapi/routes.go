package httpapi

import (
	"nodebird-api/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterV1 mounts the token and resource routes under /v1.
// Every route except token issuance sits behind the authorization gate.
func RegisterV1(r gin.IRouter, h Handlers, m *auth.Manager) {
	v1 := r.Group("/v1")
	v1.POST("/token", h.IssueToken)

	protected := v1.Group("")
	protected.Use(auth.RequireToken(m))
	{
		protected.GET("/test", h.TokenProbe)
		protected.GET("/posts/my", h.MyPosts)
		protected.GET("/posts/hashtag/:title", h.PostsByHashtag)
	}
}
