package parser

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

type visited map[*openapi3.Schema]bool

// properties converts the properties of an object schema into params sorted by
// name. Object properties become groups; arrays of objects become groups of
// their item properties. A schema already on the current path is emitted as a
// leaf so recursive references terminate.
func properties(schema *openapi3.Schema, seen visited) []apidoc.Param {
	if len(schema.Properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	out := make([]apidoc.Param, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		out = append(out, property(name, ref.Value, required[name], seen))
	}
	return out
}

func property(name string, schema *openapi3.Schema, required bool, seen visited) apidoc.Param {
	param := apidoc.Param{
		Name:         name,
		Required:     required,
		ExpectedType: expectedType(schema),
		Description:  schema.Description,
	}

	nested := schema
	if isArray(schema) && schema.Items != nil && schema.Items.Value != nil {
		nested = schema.Items.Value
	}
	if !isObject(nested) || seen[nested] {
		return param
	}

	seen[nested] = true
	param.Params = properties(nested, seen)
	delete(seen, nested)
	return param
}

// expectedType maps a JSON schema type onto the apipie expected type tags.
func expectedType(schema *openapi3.Schema) string {
	switch {
	case schema.Type == nil:
		if len(schema.Properties) > 0 {
			return apidoc.ExpectedHash
		}
		return ""
	case schema.Type.Includes(openapi3.TypeArray):
		return apidoc.ExpectedArray
	case schema.Type.Includes(openapi3.TypeObject):
		return apidoc.ExpectedHash
	case schema.Type.Includes(openapi3.TypeInteger), schema.Type.Includes(openapi3.TypeNumber):
		return apidoc.ExpectedNumeric
	case schema.Type.Includes(openapi3.TypeBoolean):
		return apidoc.ExpectedBoolean
	case schema.Type.Includes(openapi3.TypeString):
		return apidoc.ExpectedString
	default:
		return ""
	}
}

func isObject(schema *openapi3.Schema) bool {
	return expectedType(schema) == apidoc.ExpectedHash && len(schema.Properties) > 0
}

func isArray(schema *openapi3.Schema) bool {
	return schema.Type != nil && schema.Type.Includes(openapi3.TypeArray)
}
