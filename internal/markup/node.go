/*
Package markup holds the tree form of slide text and flattens it into a
marked string.

The tree is a closed variant: a node is either a *TextNode or an
*ElementNode. Element tag names are resolved once, when the node is built,
into a Tag; everything the flattener does is a switch over that small set.
Tags outside the recognized set are kept under TagOther and only contribute
their children.
*/
package markup

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'latextext.markup'.
func tracer() tracing.Trace {
	return tracing.Select("latextext.markup")
}

// Tag is the semantic class of an element.
type Tag uint8

const (
	TagOther       Tag = iota // transparent container
	TagLatex                  // <latex>, display math
	TagLatexInline            // <latex-inline>, inline math
	TagBreak                  // <br>
	TagParagraph              // <p> and <div>
)

func (t Tag) String() string {
	switch t {
	case TagLatex:
		return "latex"
	case TagLatexInline:
		return "latex-inline"
	case TagBreak:
		return "br"
	case TagParagraph:
		return "paragraph"
	}
	return "other"
}

// TagOf resolves an element name to its Tag. Matching is case-insensitive.
func TagOf(name string) Tag {
	switch strings.ToLower(name) {
	case "latex":
		return TagLatex
	case "latex-inline":
		return TagLatexInline
	case "br":
		return TagBreak
	case "p", "div":
		return TagParagraph
	}
	return TagOther
}

// Node is a node of a markup tree. It is implemented by *TextNode and
// *ElementNode only.
type Node interface {
	markupNode()
}

// TextNode is a run of literal text.
type TextNode struct {
	Text string
}

// ElementNode is an element with an ordered list of children.
// Name keeps the original tag name for diagnostics; Tag drives flattening.
type ElementNode struct {
	Tag      Tag
	Name     string
	Children []Node
}

func (*TextNode) markupNode()    {}
func (*ElementNode) markupNode() {}

// Text creates a text node.
func Text(s string) *TextNode {
	return &TextNode{Text: s}
}

// Element creates an element node, resolving its tag from name.
// Nil children are skipped.
func Element(name string, children ...Node) *ElementNode {
	e := &ElementNode{
		Tag:  TagOf(name),
		Name: strings.ToLower(name),
	}
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Fragment creates a transparent root holding a list of top-level nodes.
func Fragment(children ...Node) *ElementNode {
	return Element(fragmentName, children...)
}

const fragmentName = "#fragment"
