package policies

import (
	"errors"
	"net/http"

	"landing-platform/internal/domain/policy"
	"landing-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type PolicyService interface {
	List() []service.PolicySummary
	Render(policyType string, values map[string]string) (*service.PolicyRender, error)
}

type Handler struct {
	svc PolicyService
}

func NewHandler(svc PolicyService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/policies", h.List)
	r.POST("/policies/:type/render", h.Render)
}

type renderRequest struct {
	Values map[string]string `json:"values"`
}

// GET /policies
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"policies": h.svc.List()})
}

// POST /policies/:type/render
func (h *Handler) Render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	out, err := h.svc.Render(c.Param("type"), req.Values)
	if errors.Is(err, policy.ErrUnknownType) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Policy template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, out)
}
