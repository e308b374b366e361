package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"nodebird-api/internal/auth"
	"nodebird-api/internal/httpapi"
	"nodebird-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// readyCheck reports whether downstream dependencies are reachable.
type readyCheck func(ctx context.Context) error

func readiness(db *sql.DB) readyCheck {
	return func(ctx context.Context) error {
		return utils.HealthCheck(ctx, db, 2*time.Second)
	}
}

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, m *auth.Manager, ready readyCheck) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		if ready != nil {
			if err := ready(c.Request.Context()); err != nil {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpapi.RegisterV1(r, h, m)
}
