// Package generator wires a schema Provider, the params pipeline and the
// module Renderer into a single Generate call. Module types ("resource",
// "info") are Profiles held in a Registry; unknown types fail before any
// network access.
package generator
