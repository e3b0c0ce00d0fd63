package texm

import "gopkg.in/yaml.v3"

// MarshalYAML encodes s as a YAML sequence of items, using the same item
// shape as MarshalJSON. It is handy for dumping trees while debugging:
//
//	- tag: b
//	  body:
//	    - text: bold
func (s Splice) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return []Item{}, nil
	}
	return []Item(s), nil
}

// UnmarshalYAML decodes a YAML sequence of items into s.
func (s *Splice) UnmarshalYAML(value *yaml.Node) error {
	var items []Item
	if err := value.Decode(&items); err != nil {
		return err
	}

	out, err := spliceFromWire(items)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML encodes it as a YAML mapping. Text is always written as a
// double-quoted scalar; block scalars cannot hold whitespace-only text.
func (it Item) MarshalYAML() (any, error) {
	if it.Kind != KindText {
		return toWire(it), nil
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "text"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: it.Text},
		},
	}, nil
}

// UnmarshalYAML decodes a YAML mapping into it. Mappings that do not
// describe exactly one valid item fail with an error wrapping
// ErrInvalidItem.
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	var w wireItem
	if err := value.Decode(&w); err != nil {
		return err
	}

	out, err := w.item()
	if err != nil {
		return err
	}
	*it = out
	return nil
}
