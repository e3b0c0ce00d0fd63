package texm

import "unicode"

// DefaultMaxDepth is the deepest nesting of brace groups and tag bodies
// accepted by Parse.
const DefaultMaxDepth = 10000

// parser holds the state of a single parse.
type parser struct {
	src      string
	cur      *cursor
	maxDepth int // Negative means unlimited.
	depth    int // Number of brace groups currently open.
}

// newParser creates a parser over src.
func newParser(src string, maxDepth int) *parser {
	return &parser{
		src:      src,
		cur:      newCursor(src),
		maxDepth: maxDepth,
	}
}

// parse parses the whole input. On error no partial tree is returned.
func (p *parser) parse() (Splice, error) {
	out, err := p.parseSplice()
	if err != nil {
		return nil, err
	}

	if off, r, ok := p.cur.peek(); ok {
		if r != '}' {
			panic("texm: internal error: parser stopped before end of input")
		}
		return nil, newSyntaxError(ErrTooManyClosingBraces, p.src, off)
	}

	return out, nil
}

// parseSplice parses items until the end of input or an unconsumed '}'.
// The closing brace is left for the caller.
func (p *parser) parseSplice() (Splice, error) {
	var out Splice

	for {
		start, r, ok := p.cur.peek()
		if !ok {
			return out, nil
		}

		switch r {
		case '\\':
			p.cur.advance()
			name := p.scanName()

			var body Splice
			if _, next, ok := p.cur.peek(); ok && next == '{' {
				var err error
				if body, err = p.parseBraces(); err != nil {
					return nil, err
				}
			}
			out = append(out, Item{Kind: KindTag, Name: name, Body: body})

		case '{':
			body, err := p.parseBraces()
			if err != nil {
				return nil, err
			}
			out = append(out, Item{Kind: KindBraces, Body: body})

		case '}':
			return out, nil

		default:
			out = append(out, Item{Kind: KindText, Text: p.scanText(start)})
		}
	}
}

// parseBraces parses a '{' splice '}' group and returns its contents.
// The cursor must be on the opening brace.
func (p *parser) parseBraces() (Splice, error) {
	open, r, ok := p.cur.advance()
	if !ok || r != '{' {
		panic("texm: internal error: expected opening brace")
	}

	if p.maxDepth >= 0 && p.depth >= p.maxDepth {
		return nil, newSyntaxError(ErrTooDeep, p.src, open)
	}
	p.depth++

	body, err := p.parseSplice()
	p.depth--
	if err != nil {
		return nil, err
	}

	if _, r, ok := p.cur.advance(); !ok || r != '}' {
		return nil, newSyntaxError(ErrTooFewClosingBraces, p.src, open)
	}

	return body, nil
}

// scanName consumes the maximal run of alphabetic runes at the cursor.
func (p *parser) scanName() string {
	start := p.cur.pos
	for {
		_, r, ok := p.cur.peek()
		if !ok || !isAlphabetic(r) {
			break
		}
		p.cur.advance()
	}

	return p.cur.slice(start, p.cur.pos)
}

// scanText consumes the maximal run of literal characters starting at
// start.
func (p *parser) scanText(start int) string {
	for {
		_, r, ok := p.cur.peek()
		if !ok || isSpecial(r) {
			break
		}
		p.cur.advance()
	}

	return p.cur.slice(start, p.cur.pos)
}

// isSpecial reports whether r is one of the markup characters.
func isSpecial(r rune) bool {
	return r == '\\' || r == '{' || r == '}'
}

// isAlphabetic reports whether r has the Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}
