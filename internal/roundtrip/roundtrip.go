// Package roundtrip converts between restricted HTML and marked plain text.
//
// ToMarkedText is used when slide text is loaded into a plain-text editor,
// ToRestrictedHTML when the edited text is saved back. The pair is lossy:
// attributes, unknown tags and line indentation do not survive.
package roundtrip

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"

	"github.com/caoaolong/CSPPTist/internal/buffer"
	"github.com/caoaolong/CSPPTist/internal/markup"
	"github.com/caoaolong/CSPPTist/internal/segment"
)

func tracer() tracing.Trace {
	return tracing.Select("latextext.roundtrip")
}

// ToMarkedText flattens a markup tree into plain text with $$...$$ for
// <latex> and $...$ for <latex-inline>. Math bodies are kept as written.
func ToMarkedText(root markup.Node) string {
	return markup.Flatten(root, markup.FlattenOptions{
		InlineTags: true,
		TrimMath:   false,
	})
}

// ToRestrictedHTML converts marked plain text into restricted HTML:
// $$...$$ becomes <latex>, $...$ becomes <latex-inline>, and lines are
// grouped into <p> paragraphs separated by blank lines, with <br> between
// the lines of one paragraph. Text outside formulas is HTML-escaped.
//
// If the text holds no non-blank line, the tagged string is returned as is.
func ToRestrictedHTML(text string) string {
	if text == "" {
		return ""
	}
	tagged := tagMath(text)

	var paragraphs []string
	para := buffer.New()
	flush := func() {
		if para.Len() > 0 {
			paragraphs = append(paragraphs, "<p>"+para.String()+"</p>")
			para.Reset()
		}
	}
	for _, line := range strings.Split(tagged, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if para.Len() > 0 {
			para.Write("<br>")
		}
		para.Write(line)
	}
	flush()

	if len(paragraphs) == 0 {
		return tagged
	}
	tracer().Debugf("restricted html: %d paragraphs", len(paragraphs))
	return strings.Join(paragraphs, "")
}

// ToRestrictedHTMLLines is ToRestrictedHTML for text given as lines.
func ToRestrictedHTMLLines(lines []string) string {
	return ToRestrictedHTML(strings.Join(lines, "\n"))
}

// tagMath replaces block formulas first, then inline formulas in the text
// between them, using the same scanners as segmentation.
func tagMath(text string) string {
	buf := buffer.New()
	cursor := 0
	for _, b := range segment.FindBlocks(text) {
		tagInline(buf, text[cursor:b.Start])
		writeMath(buf, "latex", b.Body(text, 2))
		cursor = b.End
	}
	tagInline(buf, text[cursor:])
	return buf.String()
}

func tagInline(buf *buffer.TextBuffer, text string) {
	cursor := 0
	for _, r := range segment.FindInlines(text) {
		buf.Write(html.EscapeString(text[cursor:r.Start]))
		writeMath(buf, "latex-inline", r.Body(text, 1))
		cursor = r.End
	}
	buf.Write(html.EscapeString(text[cursor:]))
}

func writeMath(buf *buffer.TextBuffer, tag, body string) {
	buf.Write("<" + tag + ">")
	buf.Write(html.EscapeString(strings.TrimSpace(body)))
	buf.Write("</" + tag + ">")
}
