package texm

import "fmt"

// ItemKind identifies which of the three markup constructs an Item holds.
type ItemKind int

const (
	KindText   ItemKind = iota // Literal text.
	KindTag                    // \name with an optional {body}.
	KindBraces                 // Bare {group}.
)

// String returns the lowercase name of the kind.
func (k ItemKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTag:
		return "tag"
	case KindBraces:
		return "braces"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Splice is an ordered run of items in source reading order. A nil Splice
// is empty.
type Splice []Item

// Item is one parsed unit of markup. Which fields are meaningful depends on
// Kind:
//   - KindText: Text.
//   - KindTag: Name and Body.
//   - KindBraces: Body.
type Item struct {
	Kind ItemKind
	Text string // Literal characters, never containing '\', '{' or '}'.
	Name string // Tag name: a possibly empty run of alphabetic characters.
	Body Splice // Tag body or brace group contents.
}

// Text returns a text item.
func Text(s string) Item {
	return Item{Kind: KindText, Text: s}
}

// Tag returns a tag item with the given name and body.
func Tag(name string, body ...Item) Item {
	return Item{Kind: KindTag, Name: name, Body: spliceOf(body)}
}

// Braces returns a brace group wrapping body.
func Braces(body ...Item) Item {
	return Item{Kind: KindBraces, Body: spliceOf(body)}
}

// spliceOf normalizes an empty variadic list to a nil Splice so that
// constructed trees compare equal to parsed ones.
func spliceOf(items []Item) Splice {
	if len(items) == 0 {
		return nil
	}
	return Splice(items)
}

// Equal reports whether s and other hold structurally equal items. Nil and
// zero-length splices are equal.
func (s Splice) Equal(other Splice) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two items are structurally equal. Fields that the
// kind does not use are ignored.
func (it Item) Equal(other Item) bool {
	if it.Kind != other.Kind {
		return false
	}

	switch it.Kind {
	case KindText:
		return it.Text == other.Text
	case KindTag:
		return it.Name == other.Name && it.Body.Equal(other.Body)
	case KindBraces:
		return it.Body.Equal(other.Body)
	default:
		return false
	}
}

// Walk visits every item of s in pre-order. depth is 0 for the items of s
// itself and grows by one inside each tag body or brace group. If fn
// returns false the item's children are skipped.
func Walk(s Splice, fn func(it Item, depth int) bool) {
	walk(s, 0, fn)
}

func walk(s Splice, depth int, fn func(it Item, depth int) bool) {
	for _, it := range s {
		if !fn(it, depth) {
			continue
		}
		if it.Kind != KindText {
			walk(it.Body, depth+1, fn)
		}
	}
}
