package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-apinsible"
	"github.com/goliatone/go-apinsible/pkg/apidoc"
	"github.com/goliatone/go-apinsible/pkg/generator"
	"github.com/goliatone/go-apinsible/pkg/render"
)

// snapshotRenderer writes the template context as JSON instead of rendering
// the module, which makes template changes easy to review.
type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Render(_ context.Context, data render.Context) ([]byte, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		apidocPath = flag.String("apidoc", "internal/apidoc/apipie/testdata/apidoc.json", "apipie JSON dump")
		resource   = flag.String("resource", "domain", "singular resource name")
		moduleType = flag.String("type", "resource", "module type")
		outputPath = flag.String("output", "pkg/generator/testdata/domain_context.json", "output path for the serialized context")
	)
	flag.Parse()

	provider := apinsible.NewApipieProvider(apinsible.NewLoader(), apidoc.SourceFromFile(*apidocPath))
	gen := apinsible.NewGenerator(
		generator.WithProvider(provider),
		generator.WithRenderer(&snapshotRenderer{path: *outputPath}),
	)

	if _, err := gen.Generate(context.Background(), generator.Request{
		Resource:   *resource,
		ModuleType: *moduleType,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot context: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote template context snapshot to %s\n", *outputPath)
}
