package parser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// Provider answers parameter queries from an OpenAPI or Swagger document.
// The document is fetched and parsed once, on the first query.
type Provider struct {
	loader apidoc.Loader
	source apidoc.Source
	parser *Parser

	once sync.Once
	spec *openapi3.T
	err  error
}

var _ apidoc.Provider = (*Provider)(nil)

// NewProvider constructs a Provider reading src through loader.
func NewProvider(loader apidoc.Loader, src apidoc.Source) *Provider {
	return &Provider{loader: loader, source: src, parser: New()}
}

// Params implements apidoc.Provider.
func (p *Provider) Params(ctx context.Context, resource, action string) ([]apidoc.Param, error) {
	if resource == "" || action == "" {
		return nil, errors.New("openapi parser: resource and action are required")
	}

	p.once.Do(func() {
		if p.loader == nil || p.source == nil {
			p.err = errors.New("openapi parser: loader and source are required")
			return
		}
		doc, err := p.loader.Load(ctx, p.source)
		if err != nil {
			p.err = fmt.Errorf("openapi parser: load %s: %w", p.source.Location(), err)
			return
		}
		p.spec, p.err = p.parser.Load(ctx, doc)
	})
	if p.err != nil {
		return nil, p.err
	}

	return p.parser.Params(p.spec, resource, action)
}
