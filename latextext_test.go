package latextext

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoaolong/CSPPTist/internal/markup"
)

const mixed = "# Title\nSee $x^2$ and\n\n$$\\int_0^1 f(x)dx$$\n\nMore *text*."

// TestParse_AutoDetect HTML 与标记文本得到相同的结果
func TestParse_AutoDetect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latextext")
	defer teardown()
	//
	want := Document{
		{Kind: KindText, Content: "Energy: "},
		{Kind: KindLatexBlock, Content: "E=mc^2"},
	}
	assert.Equal(t, want, Parse("<p>Energy: <latex>E=mc^2</latex></p>"))
	assert.Equal(t, want, Parse("Energy: $$E=mc^2$$"))
	assert.Empty(t, Parse(""))
}

func TestParse_Mixed(t *testing.T) {
	doc := Parse(mixed)
	require.Len(t, doc, 5)
	assert.Equal(t, []Kind{KindMarkdown, KindLatexInline, KindMarkdown, KindLatexBlock, KindMarkdown}, doc.Kinds())
	assert.Equal(t, "x^2", doc[1].Content)
	assert.Equal(t, `\int_0^1 f(x)dx`, doc[3].Content)
}

func TestParse_Options(t *testing.T) {
	doc := Parse("# Title", WithClassification(ClassifyNever))
	assert.Equal(t, Document{{Kind: KindText, Content: "# Title"}}, doc)

	doc = Parse("plain", WithClassification(ClassifyAlways))
	assert.Equal(t, Document{{Kind: KindMarkdown, Content: "plain"}}, doc)

	doc = Parse(`area \(\pi r^2\)`, WithBracketDelimiters(true))
	assert.Equal(t, Document{
		{Kind: KindText, Content: "area "},
		{Kind: KindLatexInline, Content: `\pi r^2`},
	}, doc)

	doc = Parse("<p>a <latex-inline>x</latex-inline></p>", WithInlineTags(false))
	assert.Equal(t, Document{{Kind: KindText, Content: "a x"}}, doc)
}

func TestParseTree(t *testing.T) {
	root := markup.Fragment(
		markup.Element("p", markup.Text("first")),
		markup.Element("p", markup.Text("second "), markup.Element("latex-inline", markup.Text("y"))),
	)
	doc := ParseTree(root)
	assert.Equal(t, Document{
		{Kind: KindText, Content: "first\nsecond "},
		{Kind: KindLatexInline, Content: "y"},
	}, doc)
}

func TestParseHTML(t *testing.T) {
	doc, err := ParseHTML("<div>a<br>b</div>")
	require.NoError(t, err)
	assert.Equal(t, Document{{Kind: KindText, Content: "a\nb"}}, doc)
}

func TestFlatten(t *testing.T) {
	root, err := markup.ParseHTML("<p>Energy: <latex> E=mc^2 </latex></p>")
	require.NoError(t, err)
	assert.Equal(t, "Energy: $$E=mc^2$$", Flatten(root))
}

func TestHTMLRoundTrip(t *testing.T) {
	text, err := HTMLToText("<p>Energy: <latex>E=mc^2</latex></p>")
	require.NoError(t, err)
	assert.Equal(t, "Energy: $$E=mc^2$$", text)
	assert.Equal(t, "<p>Energy: <latex>E=mc^2</latex></p>", TextToHTML(text))
	assert.Equal(t, "<p>a</p><p>b</p>", LinesToHTML([]string{"a", "", "b"}))
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("## heading"))
	assert.False(t, IsMarkdown(""))
	assert.False(t, IsMarkdown("just words"))
}

func TestEscapeText(t *testing.T) {
	got := EscapeText("<a href=\"x\">'q' & b\nnext")
	want := "&lt;a href=&quot;x&quot;&gt;&#39;q&#39; &amp; b<br>next"
	if got != want {
		t.Errorf("EscapeText() = %q, want %q", got, want)
	}
	if EscapeText("") != "" {
		t.Error("EscapeText(\"\") should be empty")
	}
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latextext")
	defer teardown()
	//
	out, err := Render(Parse(mixed), nil)
	require.NoError(t, err)
	for _, want := range []string{
		`<h1 id="title">Title</h1>`,
		"<latex-inline>x^2</latex-inline>",
		"<latex>\\int_0^1 f(x)dx</latex>",
		"<em>text</em>",
	} {
		assert.Contains(t, out, want)
	}

	out, err = Render(Document{{Kind: KindText, Content: "a<b\nc"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a&lt;b<br>c", out)
}

func TestRender_UnicodeMath(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Math = UnicodeMath{}
	out, err := Render(ParseText("E: $E=mc^2$ and $$\\alpha<1$$"), cfg)
	require.NoError(t, err)
	assert.Equal(t, `E: <span class="math">E=mc²</span> and <div class="math">α&lt;1</div>`, out)
}

func TestRender_MathError(t *testing.T) {
	boom := errors.New("typesetter unavailable")
	cfg := &RenderConfig{
		Math: MathRendererFunc(func(tex string, display bool) (string, error) {
			return "", boom
		}),
	}
	_, err := Render(ParseText("a $x$"), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.HasPrefix(err.Error(), "rendering span 1 (latex-inline)"), err.Error())
}

func TestRender_NilMathUsesTags(t *testing.T) {
	out, err := Render(ParseText("$$a&b$$"), &RenderConfig{})
	require.NoError(t, err)
	assert.Equal(t, "<latex>a&amp;b</latex>", out)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Energy: \nE=mc²\n done", PlainText(ParseText("Energy: $$E=mc^2$$ done")))
	assert.Equal(t, "x ∈ ℝ", PlainText(ParseText(`$x \in \mathbb{R}$`)))
	assert.Equal(t, "½", PlainText(ParseText(`$$\frac{1}{2}$$`)))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("**b**")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>b</strong>")
}

func TestDefaultConfig(t *testing.T) {
	if DefaultConfig() != DefaultConfig() {
		t.Error("DefaultConfig() should return the singleton")
	}
	assert.Equal(t, TagMath{}, DefaultConfig().Math)
	assert.True(t, DefaultConfig().HardWraps)
}

func TestFormulas(t *testing.T) {
	formulas, err := Formulas("<p>a <latex-inline>x</latex-inline></p><latex>y</latex>")
	require.NoError(t, err)
	assert.Equal(t, []Span{
		{Kind: KindLatexInline, Content: "x"},
		{Kind: KindLatexBlock, Content: "y"},
	}, formulas)
}

// 空的行内公式不能吞掉后面的块级公式
func TestParse_EmptyInlineBeforeBlock(t *testing.T) {
	want := Document{
		{Kind: KindText, Content: "a "},
		{Kind: KindLatexInline, Content: ""},
		{Kind: KindText, Content: " b "},
		{Kind: KindLatexBlock, Content: "x"},
		{Kind: KindText, Content: " c"},
	}
	for _, src := range []string{
		"<p>a <latex-inline></latex-inline> b <latex>x</latex> c</p>",
		"<p>a <latex-inline> </latex-inline> b <latex>x</latex> c</p>",
	} {
		assert.Equal(t, want, Parse(src), "source %q", src)

		root, err := markup.ParseHTML(src)
		require.NoError(t, err)
		assert.Equal(t, want, ParseTree(root), "tree of %q", src)
	}
	assert.Equal(t, want, ParseText("a <latex-inline> </latex-inline> b <latex>x</latex> c"))

	text, err := HTMLToText("<p>a <latex-inline></latex-inline> b <latex>x</latex> c</p>")
	require.NoError(t, err)
	assert.Equal(t, "a $ $ b $$x$$ c", text)
	assert.Equal(t, want, ParseText(text))
}

// 行内公式紧接块级公式时，"$$" 先被当作块级定界符（与编辑器中的行为一致）
func TestParse_InlineAdjacentToBlock(t *testing.T) {
	doc := Parse("<p><latex-inline>y</latex-inline><latex>x</latex></p>")
	assert.Equal(t, Document{
		{Kind: KindText, Content: "$y"},
		{Kind: KindLatexBlock, Content: "$x"},
	}, doc)
	assert.Equal(t, "<p>$y<latex>$x</latex></p>", TextToHTML("$y$$$x$$"))
}
