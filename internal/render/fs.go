package render

import "io/fs"

const templatesDir = "templates"

// TemplatesFS returns the templates directory of the embedded web filesystem.
func TemplatesFS(webFS fs.FS) (fs.FS, error) {
	return fs.Sub(webFS, templatesDir)
}
