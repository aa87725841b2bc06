package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
	"github.com/goliatone/go-apinsible/pkg/naming"
	"github.com/goliatone/go-apinsible/pkg/params"
	"github.com/goliatone/go-apinsible/pkg/render"
)

const defaultModuleType = "resource"

// ModuleRenderer turns a template context into module source.
type ModuleRenderer interface {
	Render(ctx context.Context, data render.Context) ([]byte, error)
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithProvider injects the schema provider. It is required.
func WithProvider(provider apidoc.Provider) Option {
	return func(g *Generator) {
		g.provider = provider
	}
}

// WithRenderer injects a module renderer.
func WithRenderer(renderer ModuleRenderer) Option {
	return func(g *Generator) {
		g.renderer = renderer
	}
}

// WithRegistry replaces the default profile registry.
func WithRegistry(registry *Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithPluralizer overrides how singular resource names are pluralised.
func WithPluralizer(fn func(string) string) Option {
	return func(g *Generator) {
		g.pluralize = fn
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithDefaultModuleType overrides the module type used when a request omits
// one.
func WithDefaultModuleType(name string) Option {
	return func(g *Generator) {
		g.defaultType = name
	}
}

// Generator coordinates provider → params → renderer for one resource.
type Generator struct {
	provider    apidoc.Provider
	renderer    ModuleRenderer
	registry    *Registry
	pluralize   func(string) string
	logger      *slog.Logger
	defaultType string
	initErr     error
}

// New constructs a Generator applying any provided options. Missing
// collaborators other than the provider get built-in implementations.
func New(options ...Option) *Generator {
	g := &Generator{defaultType: defaultModuleType}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	if g.registry == nil {
		g.registry = DefaultRegistry()
	}
	if g.pluralize == nil {
		g.pluralize = naming.Pluralize
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.renderer == nil {
		renderer, err := render.New()
		if err != nil {
			g.initErr = fmt.Errorf("generator: default renderer: %w", err)
		} else {
			g.renderer = renderer
		}
	}
	return g
}

// Request describes one generation run.
type Request struct {
	// Resource is the singular resource name, e.g. "host".
	Resource string

	// ModuleType names the profile to use. Empty selects the default.
	ModuleType string
}

// Result carries the rendered module alongside the intermediate data.
type Result struct {
	Profile Profile
	Params  params.Output
	Context render.Context
	Output  []byte
}

// Generate runs the full pipeline and returns the rendered module.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := g.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Run is Generate but also returns the intermediate results.
func (g *Generator) Run(ctx context.Context, req Request) (Result, error) {
	data, result, err := g.prepare(ctx, req)
	if err != nil {
		return Result{}, err
	}

	output, err := g.renderer.Render(ctx, data)
	if err != nil {
		return Result{}, fmt.Errorf("generator: render module: %w", err)
	}
	result.Output = output
	return result, nil
}

// Context builds the template context without rendering it.
func (g *Generator) Context(ctx context.Context, req Request) (render.Context, error) {
	data, _, err := g.prepare(ctx, req)
	return data, err
}

func (g *Generator) prepare(ctx context.Context, req Request) (render.Context, Result, error) {
	if ctx == nil {
		return render.Context{}, Result{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.Context{}, Result{}, err
	}
	if g.initErr != nil {
		return render.Context{}, Result{}, g.initErr
	}
	if g.provider == nil {
		return render.Context{}, Result{}, errors.New("generator: provider is required")
	}

	resource := strings.TrimSpace(req.Resource)
	if resource == "" {
		return render.Context{}, Result{}, errors.New("generator: resource is required")
	}

	moduleType := req.ModuleType
	if moduleType == "" {
		moduleType = g.defaultType
	}
	profile, err := g.registry.Get(moduleType)
	if err != nil {
		return render.Context{}, Result{}, err
	}

	plural := g.pluralize(resource)
	g.logger.Debug("fetching parameters", "resource", plural, "action", profile.Action, "type", profile.Name)

	nodes, err := g.provider.Params(ctx, plural, profile.Action)
	if err != nil {
		return render.Context{}, Result{}, fmt.Errorf("generator: fetch %s#%s: %w", plural, profile.Action, err)
	}

	out := params.Aggregate(params.Flatten(nodes, profile.Rules()))
	for _, name := range out.Overwritten {
		g.logger.Warn("duplicate option name, documentation keeps the last definition", "option", name)
	}
	g.logger.Debug("collected options", "count", len(out.Fragments), "documented", out.Docs.Len())

	docs, err := out.Docs.YAML()
	if err != nil {
		return render.Context{}, Result{}, fmt.Errorf("generator: %w", err)
	}

	data := render.Context{
		Resource:           resource,
		ResourceCapital:    naming.Capitalize(resource),
		ResourcePluralized: plural,
		Code:               out.Fragments,
		Docs:               docs,
		ModuleName:         profile.ModuleName(resource),
		BaseClass:          profile.BaseClass,
		ModuleType:         profile.Name,
	}
	return data, Result{Profile: profile, Params: out, Context: data}, nil
}
