package texm

import "github.com/goccy/go-json"

// MarshalJSON encodes s as a JSON array of items. An empty splice encodes
// as [].
//
// Items are objects with a single discriminating key:
//
//	{"text": "Hello"}
//	{"tag": "b", "body": [...]}
//	{"braces": [...]}
func (s Splice) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Item(s))
}

// UnmarshalJSON decodes a JSON array of items into s.
func (s *Splice) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out, err := spliceFromWire(items)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON encodes it as a JSON object. See Splice.MarshalJSON.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(it))
}

// UnmarshalJSON decodes a JSON object into it. Objects that do not describe
// exactly one valid item fail with an error wrapping ErrInvalidItem.
func (it *Item) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out, err := w.item()
	if err != nil {
		return err
	}
	*it = out
	return nil
}
