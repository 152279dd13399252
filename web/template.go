// Package web holds the HTML templates served by the journals service.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded template. The result is handed to gin via
// SetHTMLTemplate so the binary ships with no on-disk assets.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
