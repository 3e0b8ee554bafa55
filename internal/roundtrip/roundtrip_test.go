package roundtrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoaolong/CSPPTist/internal/markup"
)

func TestToRestrictedHTML(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"energy", "Energy: $$E=mc^2$$", "<p>Energy: <latex>E=mc^2</latex></p>"},
		{"inline", "a $ x $ b", "<p>a <latex-inline>x</latex-inline> b</p>"},
		{"lines", "one\ntwo", "<p>one<br>two</p>"},
		{"paragraphs", "one\n\n\ntwo", "<p>one</p><p>two</p>"},
		{"indented lines", "  one  \n\ttwo", "<p>one<br>two</p>"},
		{"multiline block", "$$a\nb$$", "<p><latex>a<br>b</latex></p>"},
		{"escaped text", "a < b & c", "<p>a &lt; b &amp; c</p>"},
		{"escaped math", "$a<b$", "<p><latex-inline>a&lt;b</latex-inline></p>"},
		{"blank only", "\n\n", "\n\n"},
		{"unterminated", "price $5", "<p>price $5</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToRestrictedHTML(tt.text))
		})
	}
}

func TestToRestrictedHTMLLines(t *testing.T) {
	got := ToRestrictedHTMLLines([]string{"Energy:", "$$E=mc^2$$", "", "done"})
	assert.Equal(t, "<p>Energy:<br><latex>E=mc^2</latex></p><p>done</p>", got)
}

func TestToMarkedText(t *testing.T) {
	root, err := markup.ParseHTML("<p>Energy: <latex> E=mc^2 </latex></p><p>and <latex-inline>x</latex-inline></p>")
	require.NoError(t, err)
	assert.Equal(t, "Energy: $$ E=mc^2 $$\nand $x$", ToMarkedText(root))

	root, err = markup.ParseHTML("<p>a <latex-inline></latex-inline> b <latex>x</latex> c</p>")
	require.NoError(t, err)
	assert.Equal(t, "a $ $ b $$x$$ c", ToMarkedText(root))
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"Energy: $$E=mc^2$$",
		"a $x$ b\nsecond line",
		"first\nsecond",
		"a < b & c",
	}
	for _, text := range texts {
		root, err := markup.ParseHTML(ToRestrictedHTML(text))
		require.NoError(t, err)
		assert.Equal(t, text, ToMarkedText(root), "round trip of %q", text)
	}
}
