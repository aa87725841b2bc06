package params

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Node returns the documentation as a block-style YAML mapping node that
// keeps insertion order.
func (d *Documentation) Node() *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, record := range d.All() {
		root.Content = append(root.Content, scalar(name), recordNode(record))
	}
	return root
}

// YAML serialises the documentation in block style.
func (d *Documentation) YAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	node := d.Node()
	if len(node.Content) == 0 {
		return "{}\n", nil
	}
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("params: encode documentation: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("params: encode documentation: %w", err)
	}
	return buf.String(), nil
}

func recordNode(record DocRecord) *yaml.Node {
	descriptions := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, line := range record.Description {
		descriptions.Content = append(descriptions.Content, scalar(line))
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalar("description"), descriptions,
			scalar("type"), scalar(string(record.Type)),
			scalar("required"), {Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(record.Required)},
		},
	}
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
