// Package texm parses a small TeX-like markup notation into a tree and
// renders trees back to text.
//
// The notation has three constructs:
//   - literal text, any run of characters other than '\', '{' and '}'
//   - a tag, '\' followed by an alphabetic name and an optional {body}
//   - a brace group, a bare {...} used only for grouping
//
// A tag written without a body parses the same as one with an empty body,
// so `\foo` renders back as `\foo{}`.
package texm

import (
	"bytes"
	"io"
)

// Decoder reads and parses markup from an input stream.
type Decoder struct {
	r        io.Reader
	maxDepth int
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets how deeply brace groups and tag bodies may nest before
// Decode fails with ErrTooDeep. A negative n removes the limit.
func (dec *Decoder) SetMaxDepth(n int) {
	dec.maxDepth = n
}

// Decode reads the rest of the stream and parses it into s. The whole
// input is read before parsing; on error s is left untouched.
func (dec *Decoder) Decode(s *Splice) error {
	data, err := io.ReadAll(dec.r)
	if err != nil {
		return err
	}

	out, err := newParser(string(data), dec.maxDepth).parse()
	if err != nil {
		return err
	}

	*s = out
	return nil
}

// Parse parses text into its top-level splice.
//
// An empty input yields an empty splice. If the braces in text are
// unbalanced, or nest deeper than DefaultMaxDepth, Parse returns a
// *SyntaxError wrapping ErrTooManyClosingBraces, ErrTooFewClosingBraces or
// ErrTooDeep, and no tree.
func Parse(text string) (Splice, error) {
	return newParser(text, DefaultMaxDepth).parse()
}

// Unmarshal parses data and stores the resulting splice in s. It is
// equivalent to decoding data with a Decoder using the default depth limit.
func Unmarshal(data []byte, s *Splice) error {
	return NewDecoder(bytes.NewReader(data)).Decode(s)
}
