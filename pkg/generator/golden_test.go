package generator

import (
	"testing"

	"github.com/goliatone/go-apinsible/internal/apidoc/apipie"
	"github.com/goliatone/go-apinsible/pkg/testsupport"
)

const (
	apipieFixture  = "../../internal/apidoc/apipie/testdata/apidoc.json"
	domainDocsPath = "testdata/domain_docs.golden.yaml"
)

func TestDomainDocumentationGolden(t *testing.T) {
	provider := apipie.FromDocument(testsupport.LoadDocument(t, apipieFixture))
	gen := New(WithProvider(provider), WithRenderer(&recordingRenderer{}))

	data, err := gen.Context(testsupport.Context(), Request{Resource: "domain"})
	if err != nil {
		t.Fatalf("context: %v", err)
	}

	if testsupport.WriteMaybeGolden(t, domainDocsPath, []byte(data.Docs)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, domainDocsPath)
	if diff := testsupport.CompareGolden(want, data.Docs); diff != "" {
		t.Fatalf("documentation mismatch (-want +got):\n%s", diff)
	}
}
