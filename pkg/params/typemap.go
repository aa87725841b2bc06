package params

import "github.com/goliatone/go-apinsible/pkg/apidoc"

// TypeMap maps apipie expected type tags onto option kinds.
type TypeMap map[string]Kind

var defaultTypeMap = TypeMap{
	apidoc.ExpectedArray:   KindList,
	apidoc.ExpectedHash:    KindDict,
	apidoc.ExpectedNumeric: KindInt,
	apidoc.ExpectedBoolean: KindBool,
	apidoc.ExpectedString:  KindStr,
}

// DefaultTypeMap returns a copy of the built-in tag table.
func DefaultTypeMap() TypeMap {
	out := make(TypeMap, len(defaultTypeMap))
	for tag, kind := range defaultTypeMap {
		out[tag] = kind
	}
	return out
}

// Lookup returns the kind for tag, falling back to KindStr for unknown tags.
func (m TypeMap) Lookup(tag string) Kind {
	if kind, ok := m[tag]; ok {
		return kind
	}
	return KindStr
}

// MapExpectedType maps tag using the built-in table. It never fails.
func MapExpectedType(tag string) Kind {
	return defaultTypeMap.Lookup(tag)
}
