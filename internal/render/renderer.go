// Package render provides the gin HTML renderer for the page templates.
package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"sync"

	ginrender "github.com/gin-gonic/gin/render"
)

const templatePattern = "*.html"

// Renderer implements gin's HTMLRender over a template set that can be reloaded.
type Renderer struct {
	fsys fs.FS

	mu   sync.RWMutex
	tmpl *template.Template
}

// New parses every *.html template at the root of fsys.
func New(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{fsys: fsys}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses the templates. The previous set stays active if parsing fails.
func (r *Renderer) Reload() error {
	tmpl, err := template.New("").ParseFS(r.fsys, templatePattern)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	r.mu.Lock()
	r.tmpl = tmpl
	r.mu.Unlock()
	return nil
}

// Instance returns the render for one response.
func (r *Renderer) Instance(name string, data any) ginrender.Render {
	r.mu.RLock()
	tmpl := r.tmpl
	r.mu.RUnlock()

	return ginrender.HTML{
		Template: tmpl,
		Name:     name,
		Data:     data,
	}
}

// Lookup reports whether a template with name is defined.
func (r *Renderer) Lookup(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tmpl.Lookup(name) != nil
}
