package apidoc

import "context"

// Expected type tags used by apipie parameter documentation.
const (
	ExpectedArray   = "array"
	ExpectedHash    = "hash"
	ExpectedNumeric = "numeric"
	ExpectedBoolean = "boolean"
	ExpectedString  = "string"
)

// Param is one node of an action's parameter tree. A node with Params is a
// group; its own Name, ExpectedType and Required never reach generated output.
type Param struct {
	Name         string  `json:"name"`
	Required     bool    `json:"required"`
	ExpectedType string  `json:"expected_type"`
	Description  string  `json:"description"`
	Params       []Param `json:"params,omitempty"`
}

// IsGroup reports whether the node nests further parameters.
func (p Param) IsGroup() bool {
	return len(p.Params) > 0
}

// Provider answers parameter queries for a resource action. Resource names
// are plural (e.g. "hosts"); actions are the remote action names ("create",
// "index").
type Provider interface {
	Params(ctx context.Context, resource, action string) ([]Param, error)
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func(ctx context.Context, resource, action string) ([]Param, error)

// Params calls f.
func (f ProviderFunc) Params(ctx context.Context, resource, action string) ([]Param, error) {
	return f(ctx, resource, action)
}
