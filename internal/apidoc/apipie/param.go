package apipie

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// rawParam mirrors the apipie parameter description. Only the fields the
// generator consumes are decoded.
type rawParam struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Required     bool       `json:"required"`
	ExpectedType string     `json:"expected_type"`
	Params       []rawParam `json:"params"`
}

func convert(nodes []rawParam) []apidoc.Param {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]apidoc.Param, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, apidoc.Param{
			Name:         node.Name,
			Required:     node.Required,
			ExpectedType: node.ExpectedType,
			Description:  plainText(node.Description),
			Params:       convert(node.Params),
		})
	}
	return out
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips the HTML apipie wraps descriptions in ("\n<p>Name</p>\n")
// while leaving surrounding whitespace for the caller to trim.
func plainText(description string) string {
	if !strings.ContainsAny(description, "<&") {
		return description
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(textPolicy.Sanitize(description))
}
