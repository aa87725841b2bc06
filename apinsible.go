package apinsible

import (
	"context"

	"github.com/goliatone/go-apinsible/pkg/generator"
	"github.com/goliatone/go-apinsible/pkg/render"
)

// Request aliases generator.Request for callers using the root package.
type Request = generator.Request

// Profile aliases generator.Profile so custom module types can be registered
// without importing the generator package.
type Profile = generator.Profile

// Context is the data handed to module templates.
type Context = render.Context

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate renders the module for resource using the named module type
// ("resource" or "info"). It is the simplest entry point for callers that
// just want module source.
func Generate(ctx context.Context, resource, moduleType string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Resource:   resource,
		ModuleType: moduleType,
	})
}
