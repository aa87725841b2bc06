package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// LoadDocument reads a fixture and builds an apidoc.Document using a file
// source.
func LoadDocument(t *testing.T, path string) apidoc.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (apidoc.Document, error) {
	if path == "" {
		return apidoc.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return apidoc.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := apidoc.NewDocument(apidoc.SourceFromFile(path), data)
	if err != nil {
		return apidoc.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// StaticProvider serves fixed parameter trees keyed by "resource#action".
type StaticProvider map[string][]apidoc.Param

// Params implements apidoc.Provider.
func (p StaticProvider) Params(_ context.Context, resource, action string) ([]apidoc.Param, error) {
	nodes, ok := p[resource+"#"+action]
	if !ok {
		return nil, fmt.Errorf("testsupport: no params for %s#%s", resource, action)
	}
	return nodes, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
