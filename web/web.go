// Package web holds the HTML templates rendered by the router. Rendering
// is a thin collaborator here: templates stay minimal and all page data is
// assembled by the handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded template set. Each file is addressed by
// its base filename.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
