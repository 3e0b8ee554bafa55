package markup

import (
	"strings"

	"github.com/caoaolong/CSPPTist/internal/buffer"
)

// FlattenOptions controls how recognized tags are re-encoded.
type FlattenOptions struct {
	// InlineTags enables <latex-inline>. When false, the tag is transparent.
	InlineTags bool
	// TrimMath trims whitespace around math bodies.
	TrimMath bool
}

// DefaultFlattenOptions are the options used for display.
func DefaultFlattenOptions() FlattenOptions {
	return FlattenOptions{
		InlineTags: true,
		TrimMath:   true,
	}
}

// Flatten walks the tree rooted at root and produces a flat string in which
// math elements are re-encoded as $$...$$ / $...$, <br> becomes a newline and
// paragraph elements are separated from their following sibling by a newline.
// Flatten never fails; a nil root flattens to "".
func Flatten(root Node, opts FlattenOptions) string {
	if root == nil {
		return ""
	}
	buf := buffer.New()
	f := flattener{opts: opts}
	f.node(buf, root)
	return buf.String()
}

type flattener struct {
	opts FlattenOptions
}

func (f flattener) node(buf *buffer.TextBuffer, n Node) {
	switch n := n.(type) {
	case *TextNode:
		buf.Write(n.Text)
	case *ElementNode:
		f.element(buf, n)
	}
}

func (f flattener) element(buf *buffer.TextBuffer, e *ElementNode) {
	switch e.Tag {
	case TagLatex:
		f.math(buf, e, "$$")
	case TagLatexInline:
		if !f.opts.InlineTags {
			f.children(buf, e.Children)
			return
		}
		f.math(buf, e, "$")
	case TagBreak:
		buf.WriteNewline()
	case TagParagraph, TagOther:
		f.children(buf, e.Children)
	}
}

// children flattens a sibling list. A paragraph is followed by a newline
// unless it is the last sibling.
func (f flattener) children(buf *buffer.TextBuffer, children []Node) {
	for i, c := range children {
		f.node(buf, c)
		if i == len(children)-1 {
			break
		}
		if e, ok := c.(*ElementNode); ok && e.Tag == TagParagraph {
			buf.WriteNewline()
		}
	}
}

// math flattens the subtree of a math element with the same rules and wraps
// the result in delim. A math element without text yields an empty body.
// An empty inline body is written as "$ $", since "$$" opens a block formula.
func (f flattener) math(buf *buffer.TextBuffer, e *ElementNode, delim string) {
	inner := buffer.New()
	f.children(inner, e.Children)
	body := inner.String()
	if f.opts.TrimMath {
		body = strings.TrimSpace(body)
	}
	if body == "" {
		tracer().Debugf("empty <%s> element", e.Name)
		if delim == "$" {
			body = " "
		}
	}
	buf.Write(delim)
	buf.Write(body)
	buf.Write(delim)
}
