package generator

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
	"github.com/goliatone/go-apinsible/pkg/render"
	"github.com/goliatone/go-apinsible/pkg/testsupport"
)

type recordingRenderer struct {
	got render.Context
	err error
}

func (r *recordingRenderer) Render(_ context.Context, data render.Context) ([]byte, error) {
	r.got = data
	if r.err != nil {
		return nil, r.err
	}
	return []byte("rendered:" + data.ModuleName), nil
}

func fixtureProvider() testsupport.StaticProvider {
	return testsupport.StaticProvider{
		"compute_resources#create": {
			{Name: "organization_id", ExpectedType: "numeric"},
			{
				Name:         "compute_resource",
				ExpectedType: "hash",
				Params: []apidoc.Param{
					{Name: "name", ExpectedType: "string", Required: true, Description: " A name "},
					{Name: "provider", ExpectedType: "string", Description: "Provider"},
					{Name: "location_ids", ExpectedType: "array"},
				},
			},
		},
		"compute_resources#index": {
			{Name: "search", ExpectedType: "string"},
			{Name: "host_id", ExpectedType: "numeric", Description: "Host"},
		},
	}
}

func TestGenerateBuildsResourceContext(t *testing.T) {
	renderer := &recordingRenderer{}
	gen := New(WithProvider(fixtureProvider()), WithRenderer(renderer))

	out, err := gen.Generate(context.Background(), Request{Resource: "compute_resource"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "rendered:ForemanComputeResourceModule" {
		t.Fatalf("unexpected output %q", out)
	}

	want := render.Context{
		Resource:           "compute_resource",
		ResourceCapital:    "ComputeResource",
		ResourcePluralized: "compute_resources",
		Code: []string{
			"name=dict(required=True, type='str'),",
			"provider=dict(required=False, type='str'),",
		},
		ModuleName: "ForemanComputeResourceModule",
		BaseClass:  "ForemanTaxonomicEntityAnsibleModule",
		ModuleType: "resource",
	}
	got := renderer.got
	got.Docs = ""
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(renderer.got.Docs, "name:\n") || !strings.Contains(renderer.got.Docs, "- A name") {
		t.Fatalf("unexpected docs yaml:\n%s", renderer.got.Docs)
	}
}

func TestGenerateInfoProfile(t *testing.T) {
	renderer := &recordingRenderer{}
	gen := New(WithProvider(fixtureProvider()), WithRenderer(renderer))

	result, err := gen.Run(context.Background(), Request{Resource: "compute_resource", ModuleType: "info"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff([]string{"host=dict(required=False, type='entity'),"}, result.Params.Fragments); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
	record, _ := result.Params.Docs.Get("host")
	if record.Type != "str" {
		t.Fatalf("expected str doc type, got %q", record.Type)
	}
	if result.Context.ModuleName != "ForemanComputeResourceInfo" || result.Context.BaseClass != "ForemanInfoAnsibleModule" {
		t.Fatalf("unexpected naming %+v", result.Context)
	}
}

func TestGenerateRejectsUnknownTypeBeforeFetching(t *testing.T) {
	called := false
	provider := apidoc.ProviderFunc(func(context.Context, string, string) ([]apidoc.Param, error) {
		called = true
		return nil, nil
	})
	gen := New(WithProvider(provider), WithRenderer(&recordingRenderer{}))

	_, err := gen.Generate(context.Background(), Request{Resource: "host", ModuleType: "report"})
	if err == nil || !strings.Contains(err.Error(), `unknown module type "report"`) {
		t.Fatalf("expected unknown module type error, got %v", err)
	}
	if called {
		t.Fatalf("provider must not be queried for an unknown module type")
	}
}

func TestGeneratePropagatesFailures(t *testing.T) {
	boom := errors.New("boom")
	failing := apidoc.ProviderFunc(func(context.Context, string, string) ([]apidoc.Param, error) {
		return nil, boom
	})

	if _, err := New(WithProvider(failing), WithRenderer(&recordingRenderer{})).Generate(context.Background(), Request{Resource: "host"}); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}

	renderer := &recordingRenderer{err: boom}
	out, err := New(WithProvider(fixtureProvider()), WithRenderer(renderer)).Generate(context.Background(), Request{Resource: "compute_resource"})
	if !errors.Is(err, boom) || out != nil {
		t.Fatalf("expected render error and no output, got %q, %v", out, err)
	}

	if _, err := New().Generate(context.Background(), Request{Resource: "host"}); err == nil {
		t.Fatalf("expected missing provider error")
	}
	if _, err := New(WithProvider(failing)).Generate(context.Background(), Request{Resource: "  "}); err == nil {
		t.Fatalf("expected missing resource error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(WithProvider(fixtureProvider())).Generate(ctx, Request{Resource: "compute_resource"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestGenerateLogsDuplicateNames(t *testing.T) {
	var logs bytes.Buffer
	provider := testsupport.StaticProvider{
		"domains#create": {
			{Name: "domain_id", ExpectedType: "numeric"},
			{Name: "domain", ExpectedType: "string"},
		},
	}
	gen := New(
		WithProvider(provider),
		WithRenderer(&recordingRenderer{}),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	result, err := gen.Run(context.Background(), Request{Resource: "domain"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Params.Fragments) != 2 || result.Params.Docs.Len() != 1 {
		t.Fatalf("expected two fragments and one doc entry, got %+v", result.Params)
	}
	if !strings.Contains(logs.String(), "option=domain") {
		t.Fatalf("expected duplicate warning, got %q", logs.String())
	}
}

func TestGenerateWithEmbeddedTemplate(t *testing.T) {
	gen := New(WithProvider(fixtureProvider()))

	out, err := gen.Generate(context.Background(), Request{Resource: "compute_resource"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"class ForemanComputeResourceModule(ForemanTaxonomicEntityAnsibleModule):",
		"            name=dict(required=True, type='str'),\n",
		"- A name\n",
		"options:\n  name:\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry := DefaultRegistry()
	if diff := cmp.Diff([]string{"info", "resource"}, registry.List()); diff != "" {
		t.Fatalf("profiles mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(ResourceProfile()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(Profile{Name: "report"}); err == nil {
		t.Fatalf("expected missing action error")
	}

	custom := ResourceProfile()
	custom.Name = "katello"
	custom.ModulePrefix = "Katello"
	registry.MustRegister(custom)
	profile, err := registry.Get("katello")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := profile.ModuleName("content_view"); got != "KatelloContentViewModule" {
		t.Fatalf("unexpected module name %q", got)
	}
}
