// Package naming derives the identifiers a generated module uses from a
// singular resource name.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
)

const (
	DefaultPrefix = "Foreman"
	ModuleSuffix  = "Module"
	InfoSuffix    = "Info"
)

// Capitalize joins the "_" separated segments of resource, upper-casing the
// first letter of each segment and lower-casing the rest:
// "compute_resource" becomes "ComputeResource".
func Capitalize(resource string) string {
	var b strings.Builder
	for _, segment := range strings.Split(resource, "_") {
		b.WriteString(capitalizeSegment(segment))
	}
	return b.String()
}

func capitalizeSegment(segment string) string {
	if segment == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(first)) + strings.ToLower(segment[size:])
}

// ModuleName returns prefix + Capitalize(resource) + suffix.
func ModuleName(resource, prefix, suffix string) string {
	return prefix + Capitalize(resource) + suffix
}

// ResourceModuleName is the class name of an entity module, e.g.
// ForemanHostModule.
func ResourceModuleName(resource string) string {
	return ModuleName(resource, DefaultPrefix, ModuleSuffix)
}

// InfoModuleName is the class name of an info module, e.g. ForemanHostInfo.
func InfoModuleName(resource string) string {
	return ModuleName(resource, DefaultPrefix, InfoSuffix)
}

// Pluralize maps a singular resource noun onto the collection name the API
// uses ("smart_proxy" becomes "smart_proxies").
func Pluralize(resource string) string {
	if resource == "" {
		return ""
	}
	return inflection.Plural(resource)
}
