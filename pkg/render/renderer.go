package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-apinsible/pkg/render/template"
	"github.com/goliatone/go-apinsible/pkg/render/template/gotemplate"
)

// Renderer turns a Context into module source text.
type Renderer struct {
	engine       template.TemplateRenderer
	templateDir  string
	templates    fs.FS
	templateName string
}

// New constructs a Renderer. Without options it renders the embedded
// module.py.j2 template.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templates:    TemplatesFS(),
		templateName: DefaultTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		var engineOpts []gotemplate.Option
		if r.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(r.templateDir))
		}
		if r.templates != nil {
			engineOpts = append(engineOpts, gotemplate.WithFS(r.templates))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("render: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Render executes the configured template. Output is only returned once the
// whole template rendered successfully.
func (r *Renderer) Render(ctx context.Context, data Context) ([]byte, error) {
	if r == nil || r.engine == nil {
		return nil, errors.New("render: renderer is not initialised")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := r.engine.RenderTemplate(r.templateName, data)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", r.templateName, err)
	}
	return []byte(out), nil
}
