package texm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrips lists inputs that write every tag body explicitly, so that
// rendering the parsed tree reproduces them byte for byte.
var roundTrips = []string{
	"",
	"This is ordinary text containing no markup",
	`\q{Surrounded by \q{quotation marks!}}`,
	`\defun{\greet{} \print{Hello, world}}`,
	`\b{\i{\o{\u{Have you read your \book{} today?}}}}`,
	"{{{Enclosed}}}",
	"a{}b{c{}}d",
	`\{}\{x}`,
	"multi\nline {text}\n",
	"invalid \xff utf8",
}

// lossy lists inputs with tags written without braces. They parse the same
// as the braced spelling, so rendering adds {} and does not reproduce the
// input.
var lossy = map[string]string{
	`\hello\world`:    `\hello{}\world{}`,
	`\b{\book today}`: `\b{\book{} today}`,
	`\ x`:             `\{} x`,
}

func TestRenderRoundTrip(t *testing.T) {
	for _, input := range roundTrips {
		tree, err := Parse(input)
		require.NoError(t, err, "%q", input)
		assert.Equal(t, input, Render(tree))
		assert.Equal(t, input, tree.String())
	}
}

func TestRenderLossy(t *testing.T) {
	for input, want := range lossy {
		tree, err := Parse(input)
		require.NoError(t, err, "%q", input)

		got := Render(tree)
		assert.NotEqual(t, input, got, "bodiless tags always render with braces")
		assert.Equal(t, want, got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	inputs := append([]string{}, roundTrips...)
	for input := range lossy {
		inputs = append(inputs, input)
	}

	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err, "%q", input)

		second, err := Parse(Render(first))
		require.NoError(t, err, "%q", input)
		assert.Equal(t, first, second, "%q", input)
	}
}

func TestRenderConstructed(t *testing.T) {
	tree := Splice{
		Tag("section", Text("Intro")),
		Braces(),
		Tag(""),
		Text(" tail"),
	}
	assert.Equal(t, `\section{Intro}{}\{} tail`, Render(tree))
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, `\b{x}`, Tag("b", Text("x")).String())
}

func TestEncoder(t *testing.T) {
	tree, err := Parse(`\q{Surrounded by \q{quotation marks!}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(tree))
	assert.Equal(t, Render(tree), buf.String())

	// A second Encode appends.
	require.NoError(t, NewEncoder(&buf).Encode(Splice{Text("!")}))
	assert.Equal(t, Render(tree)+"!", buf.String())
}

type failingWriter struct {
	n int // Writes accepted before failing.
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestEncoderWriteError(t *testing.T) {
	tree := Splice{Tag("a", Text("b")), Braces(Text("c"))}

	for n := 0; n < 3; n++ {
		err := NewEncoder(&failingWriter{n: n}).Encode(tree)
		assert.ErrorIs(t, err, errWrite, "failing after %d writes", n)
	}

	err := NewEncoder(&failingWriter{n: 100}).Encode(tree)
	assert.NoError(t, err)
}
