// Package template defines renderer-agnostic template interfaces and adapters.
// The bundled gotemplate adapter speaks Jinja2-style syntax through pongo2 so
// module templates written for Jinja keep working.
package template
