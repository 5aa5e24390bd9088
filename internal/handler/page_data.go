package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"TeleCareZone-Web/internal/domain/model"
)

// Template names.
const (
	landingTemplate = "landing.html"
	aboutTemplate   = "about.html"
	legalTemplate   = "legal.html"
	contactTemplate = "contact.html"
	errorTemplate   = "error.html"
)

// pageData builds the template data shared by every page.
type pageData struct {
	site *model.SiteContent
}

func (p pageData) with(title, bodyClass string, extra gin.H) gin.H {
	data := gin.H{
		"Site":      p.site,
		"Title":     title,
		"BodyClass": bodyClass,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (p pageData) renderError(c *gin.Context, status int, title, message string) {
	c.HTML(status, errorTemplate, p.with(title, "error", gin.H{"Message": message}))
}

// NotFound renders the 404 page.
func NotFound(site *model.SiteContent) gin.HandlerFunc {
	p := pageData{site: site}
	return func(c *gin.Context) {
		p.renderError(c, http.StatusNotFound, "Page Not Found", "The page you are looking for does not exist.")
	}
}
