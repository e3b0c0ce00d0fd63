package texm

import "unicode/utf8"

// cursor walks source text one rune at a time, tracking byte offsets.
type cursor struct {
	src string
	pos int // Byte offset of the current rune.
}

// newCursor creates a cursor positioned at the start of src.
func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// peek returns the current rune and its byte offset without consuming it.
// ok is false once the input is exhausted.
func (c *cursor) peek() (off int, r rune, ok bool) {
	if c.pos >= len(c.src) {
		return c.pos, 0, false
	}

	r, _ = utf8.DecodeRuneInString(c.src[c.pos:])
	return c.pos, r, true
}

// advance consumes the current rune and returns it with its byte offset.
// Invalid UTF-8 is consumed one byte at a time as utf8.RuneError.
func (c *cursor) advance() (off int, r rune, ok bool) {
	if c.pos >= len(c.src) {
		return c.pos, 0, false
	}

	off = c.pos
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	return off, r, true
}

// slice returns the source text between two byte offsets.
func (c *cursor) slice(start, end int) string {
	return c.src[start:end]
}
