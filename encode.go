package texm

import (
	"io"
	"strings"
	"sync"
)

// Render returns the markup text for s.
//
// Text is written verbatim, a tag as \name{body} and a brace group as
// {body}. Tags always get braces, even when the body is empty, so for any
// tree returned by Parse, parsing the result of Render yields the same tree.
func Render(s Splice) string {
	var sb strings.Builder
	st := newState(&sb)
	st.writeSplice(s)
	putState(st)

	return sb.String()
}

// String returns the markup text for s. See Render.
func (s Splice) String() string {
	return Render(s)
}

// String returns the markup text for a single item.
func (it Item) String() string {
	return Render(Splice{it})
}

// An Encoder writes rendered markup to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the rendering of s to the stream. No trailing newline is
// written: it would come back as text on the next parse.
func (enc *Encoder) Encode(s Splice) error {
	st := newState(enc.w)
	st.writeSplice(s)
	err := st.err
	putState(st)

	return err
}

// state holds the output and first write error of a single render.
type state struct {
	w   io.Writer
	err error
}

var statePool = sync.Pool{
	New: func() any {
		return new(state)
	},
}

// newState retrieves a state from the pool.
func newState(w io.Writer) *state {
	s := statePool.Get().(*state)
	s.w = w
	return s
}

// putState returns a state to the pool.
func putState(s *state) {
	s.w = nil
	s.err = nil
	statePool.Put(s)
}

// write writes str unless an earlier write failed.
func (s *state) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *state) writeSplice(items Splice) {
	for _, it := range items {
		if s.err != nil {
			return
		}
		s.writeItem(it)
	}
}

func (s *state) writeItem(it Item) {
	switch it.Kind {
	case KindText:
		s.write(it.Text)
	case KindTag:
		s.write(`\`)
		s.write(it.Name)
		s.writeGroup(it.Body)
	case KindBraces:
		s.writeGroup(it.Body)
	}
}

func (s *state) writeGroup(body Splice) {
	s.write("{")
	s.writeSplice(body)
	s.write("}")
}
