package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"
)

// toContext turns data into a pongo2 context. Structs are routed through
// their JSON form so templates see the json tag names.
func toContext(data any) (pongo2.Context, error) {
	var fields map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		fields = v
	case map[string]any:
		fields = v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	}

	out := make(pongo2.Context, len(fields))
	for key, value := range fields {
		if key = strings.TrimSpace(key); key != "" {
			out[key] = value
		}
	}
	return out, nil
}
