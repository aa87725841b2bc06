package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.j2
var embeddedTemplates embed.FS

// DefaultTemplate is the module template bundled with the generator.
const DefaultTemplate = "module.py.j2"

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
