/*
Package segment splits marked text into typed spans.

Segmentation runs in passes over a preprocessed string:

 1. block formulas $$...$$ are located by literal bracket matching;
 2. each region between block formulas is scanned for inline formulas $...$;
 3. the residual text of each region is classified as Markdown or text.

Block regions are excised before inline scanning ever sees the text, so the
inline scanner cannot consume the dollars of a block formula.
*/
package segment

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/caoaolong/CSPPTist/internal/classify"
	"github.com/caoaolong/CSPPTist/internal/types"
)

// tracer traces with key 'latextext.segment'.
func tracer() tracing.Trace {
	return tracing.Select("latextext.segment")
}

// Options configures a segmentation run.
type Options struct {
	// Classification selects how residual text is tagged.
	Classification classify.Mode
	// InlineTags enables rewriting of <latex-inline> tags.
	InlineTags bool
	// BracketDelimiters enables \[...\] and \(...\) as math delimiters.
	BracketDelimiters bool
	// Normalize applies Unicode NFC normalization before scanning.
	Normalize bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Classification: classify.Patterns,
		InlineTags:     true,
	}
}

// Segment preprocesses flat and splits it into an ordered document.
// Empty input yields an empty document.
func Segment(flat string, opts Options) types.Document {
	s := Preprocess(flat, opts)
	if s == "" {
		return nil
	}
	blocks := FindBlocks(s)
	tracer().Debugf("segment: %d bytes, %d block formulas", len(s), len(blocks))

	doc := make(types.Document, 0, 2*len(blocks)+1)
	cursor := 0
	for _, b := range blocks {
		doc = appendRegion(doc, s[cursor:b.Start], cursor > 0, true, opts.Classification)
		body := strings.TrimSpace(b.Body(s, 2))
		if body == "" {
			tracer().Debugf("empty block formula at offset %d", b.Start)
		}
		doc = append(doc, types.Span{Kind: types.KindLatexBlock, Content: body})
		cursor = b.End
	}
	doc = appendRegion(doc, s[cursor:], cursor > 0, false, opts.Classification)
	return doc
}

// appendRegion scans one interstitial region for inline formulas and
// appends the resulting spans. Newlines touching a block formula belong to
// the formula's line and are dropped.
//
// All residual pieces of a region share one kind: the region is Markdown if
// any of its pieces is.
func appendRegion(doc types.Document, text string, afterBlock, beforeBlock bool, mode classify.Mode) types.Document {
	if afterBlock {
		text = strings.TrimLeft(text, "\n")
	}
	if beforeBlock {
		text = strings.TrimRight(text, "\n")
	}
	if text == "" {
		return doc
	}

	first := len(doc)
	isMarkdown := false
	emit := func(residual string) {
		if residual == "" {
			return
		}
		if !isMarkdown && mode.Match(residual) {
			isMarkdown = true
		}
		doc = append(doc, types.Span{Kind: types.KindText, Content: residual})
	}

	cursor := 0
	for _, r := range FindInlines(text) {
		emit(text[cursor:r.Start])
		doc = append(doc, types.Span{
			Kind:    types.KindLatexInline,
			Content: strings.TrimSpace(r.Body(text, 1)),
		})
		cursor = r.End
	}
	emit(text[cursor:])

	if isMarkdown {
		for i := first; i < len(doc); i++ {
			if doc[i].Kind == types.KindText {
				doc[i].Kind = types.KindMarkdown
			}
		}
	}
	return doc
}
