package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"TeleCareZone-Web/internal/domain/effect"
	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/usecase"
)

// PagesHandler serves the landing page, the static pages and professional visits.
type PagesHandler struct {
	pageData
	landingUseCase usecase.LandingUseCase
	hostname       string
	logger         *zap.Logger
}

// NewPagesHandler creates a PagesHandler. An empty hostname means the request host is used.
func NewPagesHandler(landingUseCase usecase.LandingUseCase, site *model.SiteContent, hostname string, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		pageData:       pageData{site: site},
		landingUseCase: landingUseCase,
		hostname:       hostname,
		logger:         logger,
	}
}

func (h *PagesHandler) requestHost(c *gin.Context) string {
	if h.hostname != "" {
		return h.hostname
	}
	return c.Request.Host
}

// Landing GET / - hero, tabs and the expert directory
func (h *PagesHandler) Landing(c *gin.Context) {
	directory := h.landingUseCase.LoadDirectory(c.Request.Context(), h.requestHost(c))

	c.HTML(http.StatusOK, landingTemplate, h.with("", "landing", gin.H{
		"Directory": directory,
	}))
}

// About GET /about
func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, aboutTemplate, h.with(h.site.About.Title, "about", gin.H{
		"Page": h.site.About,
	}))
}

// Privacy GET /privacy-policy
func (h *PagesHandler) Privacy(c *gin.Context) {
	c.HTML(http.StatusOK, legalTemplate, h.with(h.site.Privacy.Title, "legal", gin.H{
		"Page": h.site.Privacy,
	}))
}

// Terms GET /terms
func (h *PagesHandler) Terms(c *gin.Context) {
	c.HTML(http.StatusOK, legalTemplate, h.with(h.site.Terms.Title, "legal", gin.H{
		"Page": h.site.Terms,
	}))
}

// Visit GET /visit/:subdomain - redirects to the professional's own site
func (h *PagesHandler) Visit(c *gin.Context) {
	subdomain := c.Param("subdomain")

	e, err := h.landingUseCase.Visit(h.requestHost(c), subdomain)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSubdomain) {
			h.renderError(c, http.StatusBadRequest, "Invalid Profile", "This profile link is not valid.")
			return
		}
		if errors.Is(err, usecase.ErrNoSubdomainHost) {
			h.renderError(c, http.StatusBadRequest, "Profile Unavailable", "Professional pages are not available on this address. Set site.hostname to enable them.")
			return
		}
		h.logger.Error("visit failed", zap.String("subdomain", subdomain), zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Something Went Wrong", "Please try again later.")
		return
	}

	applyEffects(c, []effect.Effect{e})
}
