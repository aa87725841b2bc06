package gotemplate

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var builtinFilters sync.Once

func registerBuiltinFilters() {
	builtinFilters.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"indent": filterIndent,
			"trim":   filterTrim,
			"pybool": filterPyBool,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

// filterIndent prefixes every line but the first with param spaces (default
// 4), like Jinja's indent. Blank lines stay empty.
func filterIndent(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	width := 4
	if param != nil && param.IsInteger() {
		width = max(param.Integer(), 0)
	}
	prefix := strings.Repeat(" ", width)

	lines := strings.Split(in.String(), "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return pongo2.AsValue(strings.Join(lines, "\n")), nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterPyBool renders a truthy value as True or False.
func filterPyBool(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsTrue() {
		return pongo2.AsValue("True"), nil
	}
	return pongo2.AsValue("False"), nil
}
