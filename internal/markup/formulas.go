package markup

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/caoaolong/CSPPTist/internal/types"
)

var mathSelector = cascadia.MustCompile("latex, latex-inline")

// Formulas lists the math elements of an HTML fragment in document order,
// without looking at the text around them. Math nested inside another math
// element is part of the outer formula's body.
func Formulas(src string) ([]types.Span, error) {
	nodes, err := parseFragment(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	var formulas []types.Span
	for _, n := range nodes {
		for _, m := range mathSelector.MatchAll(n) {
			if insideMath(m) {
				continue
			}
			formulas = append(formulas, formula(m))
		}
	}
	tracer().Debugf("found %d formulas", len(formulas))
	return formulas, nil
}

func formula(n *html.Node) types.Span {
	kind := types.KindLatexInline
	if TagOf(n.Data) == TagLatex {
		kind = types.KindLatexBlock
	}
	e := Element(n.Data)
	appendHTMLChildren(e, n)
	body := Flatten(Fragment(e.Children...), DefaultFlattenOptions())
	return types.Span{Kind: kind, Content: strings.TrimSpace(body)}
}

func insideMath(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if mathSelector.Match(p) {
			return true
		}
	}
	return false
}
