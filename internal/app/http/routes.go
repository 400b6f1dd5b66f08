package routes

import (
	"net/http"

	landingapi "landing-platform/internal/api/landing"
	"landing-platform/internal/api/policies"
	"landing-platform/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

type Handlers struct {
	Landing  *landingapi.Handler
	Policies *policies.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public reads and policy rendering. Request bodies here are plain text.
	public := r.Group("/")
	public.Use(middleware.SanitizeJSON(bluemonday.StrictPolicy()))
	h.Landing.RegisterPublicRoutes(public)
	h.Policies.RegisterRoutes(public)

	// Block content may carry rich text, so admin bodies keep safe markup.
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequireRole("admin"),
		middleware.SanitizeJSON(middleware.AdminContentPolicy()),
	)
	h.Landing.RegisterAdminRoutes(admin)
}
