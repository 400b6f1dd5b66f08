package landingapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"landing-platform/internal/domain/businessunit"
	"landing-platform/internal/domain/landing"
	"landing-platform/internal/domain/locale"
	"landing-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// LandingService is the service surface the handlers call.
type LandingService interface {
	GetPage(ctx context.Context, businessUnit, country, language string, preview bool) (*service.PageResult, error)
	GetPageBySlug(ctx context.Context, slug string, preview bool) (*service.PageResult, error)
	SavePage(ctx context.Context, businessUnit string, in service.SaveInput) (*landing.LandingPage, error)
	Publish(ctx context.Context, businessUnit, country, language string, publish bool) (*landing.LandingPage, error)
	ListLocales(ctx context.Context, businessUnit string) ([]locale.Entry, error)
	FindDuplicateActive(ctx context.Context, businessUnit string) ([]locale.Conflict, error)
	DeleteLocale(ctx context.Context, businessUnit, country, language string) error
	SetActive(ctx context.Context, businessUnit, pageID string, active bool) (*landing.LandingPage, error)
	CreateLocale(ctx context.Context, businessUnit string, in service.CreateLocaleInput) (*landing.LandingPage, error)
	SyncAnchors(ctx context.Context, businessUnit string) ([]service.AnchorSync, error)
	ReorderBlocks(ctx context.Context, businessUnit, country, language string, ids []string) (*landing.LandingPage, error)
	AddBlock(ctx context.Context, businessUnit, country, language, blockType, name string, position *int) (*landing.LandingPage, error)
	RemoveBlock(ctx context.Context, businessUnit, country, language, blockID string) (*landing.LandingPage, error)
	AuditMedia(ctx context.Context, businessUnit, country, language string) (*service.MediaAudit, error)
}

type Handler struct {
	svc    LandingService
	logger *slog.Logger
}

func NewHandler(svc LandingService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// RegisterPublicRoutes mounts the read-only page routes.
func (h *Handler) RegisterPublicRoutes(r gin.IRouter) {
	r.GET("/landing-page", h.GetPage)
	r.GET("/landing-page/by-slug/:slug", h.GetPageBySlug)
	r.GET("/landing-pages/locales", h.ListLocales)
}

// RegisterAdminRoutes mounts the editing routes. The caller applies auth.
func (h *Handler) RegisterAdminRoutes(r gin.IRouter) {
	r.POST("/landing-page", h.SavePage)
	r.POST("/landing-page/publish", h.Publish)
	r.PUT("/landing-page/blocks/reorder", h.ReorderBlocks)
	r.POST("/landing-page/blocks", h.AddBlock)
	r.DELETE("/landing-page/blocks/:id", h.RemoveBlock)

	r.POST("/landing-pages/create-locale", h.CreateLocale)
	r.DELETE("/landing-pages/locale", h.DeleteLocale)
	r.PUT("/landing-pages/active", h.SetActive)
	r.GET("/landing-pages/duplicates", h.FindDuplicates)
	r.POST("/landing-pages/sync-anchors", h.SyncAnchors)
	r.GET("/landing-pages/media-audit", h.AuditMedia)
}

func languageParam(c *gin.Context) string {
	if v := c.Query("lang"); v != "" {
		return v
	}
	return c.Query("language")
}

func (h *Handler) fail(c *gin.Context, err error) {
	var (
		status int
		msg    string
	)
	switch {
	case errors.Is(err, service.ErrBusinessUnitRequired):
		status, msg = http.StatusBadRequest, "businessUnit parameter required"
	case errors.Is(err, service.ErrLocaleRequired),
		errors.Is(err, service.ErrUnsupportedMode),
		errors.Is(err, landing.ErrUnknownBlockType),
		errors.Is(err, landing.ErrReorderMismatch):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, businessunit.ErrNotFound):
		status, msg = http.StatusNotFound, "Business unit not found"
	case errors.Is(err, landing.ErrPageNotFound):
		status, msg = http.StatusNotFound, "Landing page not found"
	case errors.Is(err, service.ErrSourceNotFound):
		status, msg = http.StatusNotFound, "Source locale not found"
	case errors.Is(err, landing.ErrBlockNotFound):
		status, msg = http.StatusNotFound, "Block not found"
	case errors.Is(err, landing.ErrLocaleExists):
		status, msg = http.StatusConflict, "Locale already exists"
	case errors.Is(err, service.ErrWrongBusinessUnit):
		status, msg = http.StatusForbidden, "Access denied"
	default:
		h.logger.Error("landing request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
}

// GET /landing-page?businessUnit=&country=&lang=&preview=
func (h *Handler) GetPage(c *gin.Context) {
	res, err := h.svc.GetPage(c.Request.Context(),
		c.Query("businessUnit"),
		c.Query("country"),
		languageParam(c),
		c.Query("preview") == "true",
	)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /landing-page/by-slug/:slug
func (h *Handler) GetPageBySlug(c *gin.Context) {
	res, err := h.svc.GetPageBySlug(c.Request.Context(), c.Param("slug"), c.Query("preview") == "true")
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /landing-pages/locales?businessUnit=
func (h *Handler) ListLocales(c *gin.Context) {
	entries, err := h.svc.ListLocales(c.Request.Context(), c.Query("businessUnit"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locales": entries})
}

// POST /admin/landing-page
func (h *Handler) SavePage(c *gin.Context) {
	var req SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.SavePage(c.Request.Context(), req.BusinessUnitID, service.SaveInput{
		Country:           req.Country,
		LanguageCode:      req.LanguageCode,
		Slug:              req.Slug,
		Blocks:            req.Blocks,
		HeroSlides:        req.HeroSlides,
		Footer:            req.Footer,
		EnableSocialLogin: req.EnableSocialLogin,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingPage": page, "success": true})
}

// POST /admin/landing-page/publish
func (h *Handler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.Publish(c.Request.Context(), req.BusinessUnitID, req.Country, req.LanguageCode, req.IsPublished)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingPage": page, "success": true})
}

// POST /admin/landing-pages/create-locale
func (h *Handler) CreateLocale(c *gin.Context) {
	var req CreateLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.CreateLocale(c.Request.Context(), req.BusinessUnitID, service.CreateLocaleInput{
		Country:        req.Country,
		LanguageCode:   req.Language,
		Mode:           req.Mode,
		SourceCountry:  req.SourceCountry,
		SourceLanguage: req.SourceLanguage,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"landingPage": page, "success": true})
}

// DELETE /admin/landing-pages/locale?businessUnit=&country=&lang=
func (h *Handler) DeleteLocale(c *gin.Context) {
	bu, country, language := c.Query("businessUnit"), c.Query("country"), languageParam(c)
	if bu == "" || country == "" || language == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "businessUnit, country, and language are required"})
		return
	}

	if err := h.svc.DeleteLocale(c.Request.Context(), bu, country, language); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Landing page deleted for " + country + "/" + language})
}

// PUT /admin/landing-pages/active
func (h *Handler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.SetActive(c.Request.Context(), req.BusinessUnitID, req.PageID, req.IsActive)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingPage": page, "success": true})
}

// GET /admin/landing-pages/duplicates?businessUnit=
func (h *Handler) FindDuplicates(c *gin.Context) {
	conflicts, err := h.svc.FindDuplicateActive(c.Request.Context(), c.Query("businessUnit"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts, "hasConflicts": len(conflicts) > 0})
}

// POST /admin/landing-pages/sync-anchors
func (h *Handler) SyncAnchors(c *gin.Context) {
	var req SyncAnchorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	synced, err := h.svc.SyncAnchors(c.Request.Context(), req.BusinessUnitID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": synced, "success": true})
}

// PUT /admin/landing-page/blocks/reorder
func (h *Handler) ReorderBlocks(c *gin.Context) {
	var req ReorderBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.ReorderBlocks(c.Request.Context(), req.BusinessUnitID, req.Country, req.LanguageCode, req.BlockIDs)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingPage": page, "success": true})
}

// POST /admin/landing-page/blocks
func (h *Handler) AddBlock(c *gin.Context) {
	var req AddBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.svc.AddBlock(c.Request.Context(), req.BusinessUnitID, req.Country, req.LanguageCode, req.Type, req.Name, req.Position)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"landingPage": page, "success": true})
}

// DELETE /admin/landing-page/blocks/:id?businessUnit=&country=&language=
func (h *Handler) RemoveBlock(c *gin.Context) {
	page, err := h.svc.RemoveBlock(c.Request.Context(),
		c.Query("businessUnit"),
		c.Query("country"),
		languageParam(c),
		c.Param("id"),
	)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingPage": page, "success": true})
}

// GET /admin/landing-pages/media-audit?businessUnit=&country=&language=
func (h *Handler) AuditMedia(c *gin.Context) {
	audit, err := h.svc.AuditMedia(c.Request.Context(), c.Query("businessUnit"), c.Query("country"), languageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, audit)
}
