// Package apidoc exposes the public contracts for fetching a remote API's
// parameter documentation: sources, raw documents, loaders and the Provider
// that answers "which parameters does action X of resource Y accept".
// Implementations live under internal/ so transport and parser dependencies
// stay hidden from consumers.
package apidoc
