// Package server wires the handlers into a gin engine and runs the HTTP server.
package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/handler"
)

// Dependencies are the collaborators NewRouter mounts.
type Dependencies struct {
	Pages    *handler.PagesHandler
	Contact  *handler.ContactHandler
	Health   *handler.HealthHandler
	Proxy    *handler.ProxyHandler
	Site     *model.SiteContent
	Renderer render.HTMLRender
	Static   fs.FS
	Logger   *zap.Logger
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.HTMLRender = deps.Renderer

	r.Use(RequestID(), RequestLogger(deps.Logger), Recovery(deps.Logger))

	r.StaticFS("/static", http.FS(deps.Static))

	r.GET("/", deps.Pages.Landing)
	r.GET("/about", deps.Pages.About)
	r.GET("/privacy-policy", deps.Pages.Privacy)
	r.GET("/terms", deps.Pages.Terms)
	r.GET("/visit/:subdomain", deps.Pages.Visit)

	r.GET("/contact", deps.Contact.Show)
	r.POST("/contact", deps.Contact.Submit)

	r.GET("/health", deps.Health.Health)

	api := r.Group("/api", CORS())
	{
		api.Any("/*path", deps.Proxy.Forward)
	}

	r.NoRoute(handler.NotFound(deps.Site))

	return r
}

// StaticFS returns the static assets directory of the embedded web filesystem.
func StaticFS(webFS fs.FS) (fs.FS, error) {
	return fs.Sub(webFS, "static")
}
