// Package content loads the static page copy from the YAML catalog.
package content

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"TeleCareZone-Web/internal/domain/model"
)

// DefaultPath is the catalog location inside web.FS.
const DefaultPath = "content/pages.yaml"

// Load parses the catalog at path in fsys.
func Load(fsys fs.FS, path string) (*model.SiteContent, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content catalog %s: %w", path, err)
	}

	var site model.SiteContent
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse content catalog %s: %w", path, err)
	}

	if site.SiteName == "" {
		return nil, fmt.Errorf("content catalog %s: site_name is required", path)
	}
	for name, page := range map[string]model.PageContent{"about": site.About, "privacy": site.Privacy, "terms": site.Terms} {
		if page.Title == "" {
			return nil, fmt.Errorf("content catalog %s: %s.title is required", path, name)
		}
	}

	return &site, nil
}
