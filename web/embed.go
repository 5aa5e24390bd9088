// Package web embeds the page templates, the content catalog and static assets.
package web

import "embed"

//go:embed templates content static
var FS embed.FS
