package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LooksLikeHTML reports whether s should be treated as an HTML fragment
// rather than as flat marked text: after trimming it starts with '<'.
func LooksLikeHTML(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<")
}

// ParseHTML parses an HTML fragment and converts it into a markup tree
// rooted at a transparent fragment node.
//
// The HTML parser is lenient: unclosed or mis-nested tags are repaired the
// way a browser would repair them, so the only error source is the reader.
func ParseHTML(src string) (Node, error) {
	return ReadHTML(strings.NewReader(src))
}

// ReadHTML is like ParseHTML but reads the fragment from r.
func ReadHTML(r io.Reader) (Node, error) {
	nodes, err := parseFragment(r)
	if err != nil {
		return nil, err
	}
	root := Fragment()
	for _, n := range nodes {
		if c := FromHTML(n); c != nil {
			root.Children = append(root.Children, c)
		}
	}
	tracer().Debugf("parsed markup fragment with %d top-level nodes", len(root.Children))
	return root, nil
}

// parseFragment parses r in the context of a <div>, the way slide text is
// embedded in the editor.
func parseFragment(r io.Reader) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return nodes, nil
}

// FromHTML converts a parsed HTML node (and its subtree) into a markup node.
// Comments, doctypes and other non-content nodes convert to nil.
// A document node converts to a fragment holding its converted children.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)
	case html.ElementNode:
		e := Element(n.Data)
		appendHTMLChildren(e, n)
		return e
	case html.DocumentNode:
		root := Fragment()
		appendHTMLChildren(root, n)
		return root
	}
	return nil
}

func appendHTMLChildren(e *ElementNode, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := FromHTML(c); child != nil {
			e.Children = append(e.Children, child)
		}
	}
}
