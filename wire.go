package texm

import (
	"fmt"
	"strings"
)

// wireItem is the interchange shape of an Item, shared by the JSON and YAML
// encodings. Exactly one of Text, Tag and Braces is set.
type wireItem struct {
	Text   *string `json:"text,omitempty" yaml:"text,omitempty"`
	Tag    *string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Body   *Splice `json:"body,omitempty" yaml:"body,omitempty"`
	Braces *Splice `json:"braces,omitempty" yaml:"braces,omitempty"`
}

func toWire(it Item) wireItem {
	switch it.Kind {
	case KindTag:
		name := it.Name
		w := wireItem{Tag: &name}
		if len(it.Body) > 0 {
			body := it.Body
			w.Body = &body
		}
		return w
	case KindBraces:
		body := it.Body
		return wireItem{Braces: &body}
	default:
		text := it.Text
		return wireItem{Text: &text}
	}
}

// item validates w and converts it back to an Item. The result obeys the
// same rules as parsed items: text is non-empty and free of markup
// characters, and tag names are alphabetic.
func (w wireItem) item() (Item, error) {
	set := 0
	for _, ok := range []bool{w.Text != nil, w.Tag != nil, w.Braces != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return Item{}, fmt.Errorf("%w: want exactly one of text, tag or braces, got %d", ErrInvalidItem, set)
	}

	switch {
	case w.Text != nil:
		if *w.Text == "" {
			return Item{}, fmt.Errorf("%w: empty text", ErrInvalidItem)
		}
		if strings.ContainsAny(*w.Text, `\{}`) {
			return Item{}, fmt.Errorf("%w: text %q contains markup characters", ErrInvalidItem, *w.Text)
		}
		if w.Body != nil {
			return Item{}, fmt.Errorf("%w: text cannot have a body", ErrInvalidItem)
		}
		return Text(*w.Text), nil

	case w.Tag != nil:
		for _, r := range *w.Tag {
			if !isAlphabetic(r) {
				return Item{}, fmt.Errorf("%w: tag name %q is not alphabetic", ErrInvalidItem, *w.Tag)
			}
		}
		var body Splice
		if w.Body != nil {
			body = spliceOf(*w.Body)
		}
		return Item{Kind: KindTag, Name: *w.Tag, Body: body}, nil

	default:
		if w.Body != nil {
			return Item{}, fmt.Errorf("%w: braces take their contents from \"braces\", not \"body\"", ErrInvalidItem)
		}
		return Item{Kind: KindBraces, Body: spliceOf(*w.Braces)}, nil
	}
}

// spliceFromWire checks that decoded items keep text runs maximal, as the
// parser would, and returns them as a Splice.
func spliceFromWire(items []Item) (Splice, error) {
	for i := 1; i < len(items); i++ {
		if items[i].Kind == KindText && items[i-1].Kind == KindText {
			return nil, fmt.Errorf("%w: adjacent text items at %d and %d", ErrInvalidItem, i-1, i)
		}
	}
	return spliceOf(items), nil
}
