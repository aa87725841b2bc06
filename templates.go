package apinsible

import (
	"io/fs"

	"github.com/goliatone/go-apinsible/pkg/render"
)

// EmbeddedTemplates exposes the built-in module templates so callers can copy
// or extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
