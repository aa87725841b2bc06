package render

import (
	"io/fs"
	"strings"

	"github.com/goliatone/go-apinsible/pkg/render/template"
)

// Option customises a Renderer.
type Option func(*Renderer)

// WithTemplateDir loads templates from dir before falling back to the
// embedded bundle, so a local module.py.j2 overrides the default.
func WithTemplateDir(dir string) Option {
	return func(r *Renderer) {
		r.templateDir = strings.TrimSpace(dir)
	}
}

// WithTemplatesFS replaces the embedded bundle.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.templates = fsys
	}
}

// WithTemplateName selects the template rendered for every module.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.templateName = trimmed
		}
	}
}

// WithEngine injects a pre-built template engine; directory and fs options
// are ignored when set.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}
