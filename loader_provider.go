package apinsible

import (
	internalLoader "github.com/goliatone/go-apinsible/internal/apidoc/loader"
	"github.com/goliatone/go-apinsible/internal/apidoc/apipie"
	"github.com/goliatone/go-apinsible/internal/openapi/parser"
	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...apidoc.LoaderOption) apidoc.Loader {
	cfg := apidoc.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewApipieProvider returns a provider reading the apipie dump at src.
func NewApipieProvider(loader apidoc.Loader, src apidoc.Source) apidoc.Provider {
	return apipie.New(loader, src)
}

// NewOpenAPIProvider returns a provider reading an OpenAPI 3 or Swagger 2
// document at src.
func NewOpenAPIProvider(loader apidoc.Loader, src apidoc.Source) apidoc.Provider {
	return parser.NewProvider(loader, src)
}
