package parser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// actionMethods maps apipie action names onto the HTTP method of the
// collection endpoint implementing them.
var actionMethods = map[string]string{
	"index":  http.MethodGet,
	"create": http.MethodPost,
}

// Parser extracts parameter trees from OpenAPI 3 documents using kin-openapi.
// Swagger 2 documents are converted to OpenAPI 3 first.
type Parser struct{}

// New constructs a Parser.
func New() *Parser {
	return &Parser{}
}

// Load parses the raw document.
func (p *Parser) Load(ctx context.Context, doc apidoc.Document) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	if gjson.ValidBytes(raw) && gjson.GetBytes(raw, "swagger").Exists() {
		var v2 openapi2.T
		if err := json.Unmarshal(raw, &v2); err != nil {
			return nil, fmt.Errorf("openapi parser: decode swagger document: %w", err)
		}
		spec, err := openapi2conv.ToV3(&v2)
		if err != nil {
			return nil, fmt.Errorf("openapi parser: convert swagger document: %w", err)
		}
		return spec, nil
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	return spec, nil
}

// Params returns the parameters of the collection operation implementing
// action on resource: "create" is POST and "index" is GET on the path whose
// last segment is resource.
func (p *Parser) Params(spec *openapi3.T, resource, action string) ([]apidoc.Param, error) {
	if spec == nil {
		return nil, errors.New("openapi parser: document is nil")
	}
	method, ok := actionMethods[action]
	if !ok {
		return nil, fmt.Errorf("openapi parser: unsupported action %q", action)
	}

	item, op, path := findOperation(spec, resource, method)
	if op == nil {
		return nil, fmt.Errorf("openapi parser: no %s operation for resource %q", method, resource)
	}

	var out []apidoc.Param
	for _, ref := range mergeParameters(item.Parameters, op.Parameters) {
		if param, ok := convertParameter(ref); ok {
			out = append(out, param)
		}
	}
	body, err := requestBodyParams(op.RequestBody)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: %s %s: %w", method, path, err)
	}
	return append(out, body...), nil
}

func findOperation(spec *openapi3.T, resource, method string) (*openapi3.PathItem, *openapi3.Operation, string) {
	if spec.Paths == nil {
		return nil, nil, ""
	}

	var candidates []string
	for path := range spec.Paths.Map() {
		if lastSegment(path) == resource {
			candidates = append(candidates, path)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})

	for _, path := range candidates {
		item := spec.Paths.Value(path)
		if item == nil {
			continue
		}
		if op := item.GetOperation(method); op != nil {
			return item, op, path
		}
	}
	return nil, nil, ""
}

func lastSegment(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// mergeParameters lets operation parameters replace path-level ones with the
// same name and location while keeping declaration order.
func mergeParameters(shared, own openapi3.Parameters) openapi3.Parameters {
	if len(shared) == 0 {
		return own
	}
	overridden := make(map[string]bool, len(own))
	for _, ref := range own {
		if ref != nil && ref.Value != nil {
			overridden[ref.Value.In+":"+ref.Value.Name] = true
		}
	}
	merged := make(openapi3.Parameters, 0, len(shared)+len(own))
	for _, ref := range shared {
		if ref != nil && ref.Value != nil && overridden[ref.Value.In+":"+ref.Value.Name] {
			continue
		}
		merged = append(merged, ref)
	}
	return append(merged, own...)
}

func convertParameter(ref *openapi3.ParameterRef) (apidoc.Param, bool) {
	if ref == nil || ref.Value == nil {
		return apidoc.Param{}, false
	}
	param := ref.Value
	switch param.In {
	case openapi3.ParameterInPath, openapi3.ParameterInQuery:
	default:
		return apidoc.Param{}, false
	}

	out := apidoc.Param{
		Name:        param.Name,
		Required:    param.Required,
		Description: param.Description,
	}
	if param.Schema != nil && param.Schema.Value != nil {
		out.ExpectedType = expectedType(param.Schema.Value)
		if out.Description == "" {
			out.Description = param.Schema.Value.Description
		}
	}
	return out, true
}

func requestBodyParams(body *openapi3.RequestBodyRef) ([]apidoc.Param, error) {
	if body == nil || body.Value == nil {
		return nil, nil
	}
	media := body.Value.Content.Get("application/json")
	if media == nil {
		for _, candidate := range []string{"application/x-www-form-urlencoded", "multipart/form-data"} {
			if media = body.Value.Content.Get(candidate); media != nil {
				break
			}
		}
	}
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, nil
	}

	schema := media.Schema.Value
	if expectedType(schema) != apidoc.ExpectedHash {
		return nil, errors.New("request body is not an object")
	}
	return properties(schema, visited{schema: true}), nil
}
