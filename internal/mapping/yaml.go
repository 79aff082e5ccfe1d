package mapping

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the table as a mapping that keeps key order,
// with each value list in flow style.
func (t *Table) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for key, values := range t.All() {
		list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range values {
			list.Content = append(list.Content, scalar(v))
		}

		root.Content = append(root.Content,
			scalar(key),
			list,
		)
	}

	return root, nil
}

// Marshal serializes a Table to YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
