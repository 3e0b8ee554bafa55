// Package classify decides whether residual text carries Markdown syntax.
package classify

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/caoaolong/CSPPTist/internal/markdown"
	"github.com/caoaolong/CSPPTist/internal/types"
)

// markdownPatterns 常见 Markdown 语法；行首类模式使用 (?m) 按行锚定
var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}[ \t]`), // 标题 # ## ###
	regexp.MustCompile(`(?m)^[-*+][ \t]`),  // 无序列表 - * +
	regexp.MustCompile(`(?m)^\d+\.[ \t]`),  // 有序列表 1. 2.
	regexp.MustCompile(`\*\*[^*]+\*\*`),    // 粗体 **text**
	regexp.MustCompile(`__[^_]+__`),        // 粗体 __text__
	regexp.MustCompile(`\*[^*]+\*`),        // 斜体 *text*
	regexp.MustCompile(`_[^_]+_`),          // 斜体 _text_
	regexp.MustCompile("`[^`]+`"),          // 行内代码
	regexp.MustCompile(`\[.+\]\(.+\)`),     // 链接 [text](url)
	regexp.MustCompile(`!\[.+\]\(.+\)`),    // 图片 ![alt](url)
	regexp.MustCompile(`(?m)^>[ \t]`),      // 引用 > text
	regexp.MustCompile(`(?m)^-{3,}$`),      // 水平线 ---
	regexp.MustCompile(`(?m)^\*{3,}$`),     // 水平线 ***
	regexp.MustCompile(`\|.+\|`),           // 表格 | a | b |
	regexp.MustCompile("(?ms)^```.*?```$"), // 代码块
}

// IsMarkdown reports whether text matches at least one Markdown pattern.
// Empty and whitespace-only text is never Markdown.
func IsMarkdown(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, re := range markdownPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// HasMarkdownSyntax parses text with goldmark and reports whether the
// resulting tree contains anything beyond plain paragraphs of text.
// It is stricter than IsMarkdown: "a_b_c" or "x | y | z" without a
// delimiter row are plain text to a Markdown parser.
func HasMarkdownSyntax(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	doc, _ := markdown.Parse(text)
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindDocument, ast.KindParagraph, ast.KindTextBlock,
			ast.KindText, ast.KindString:
			return ast.WalkContinue, nil
		}
		found = true
		return ast.WalkStop, nil
	})
	return found
}

// Mode selects how residual text is classified.
type Mode uint8

const (
	// Patterns uses IsMarkdown. This is the default.
	Patterns Mode = iota
	// Parsed uses HasMarkdownSyntax.
	Parsed
	// Never classifies all residual text as plain text.
	Never
	// Always classifies all residual text as Markdown.
	Always
)

func (m Mode) String() string {
	switch m {
	case Patterns:
		return "patterns"
	case Parsed:
		return "parsed"
	case Never:
		return "never"
	case Always:
		return "always"
	}
	return "unknown"
}

// Kind classifies a single piece of residual text.
func (m Mode) Kind(text string) types.Kind {
	if m.Match(text) {
		return types.KindMarkdown
	}
	return types.KindText
}

// Match reports whether text is Markdown under mode m.
func (m Mode) Match(text string) bool {
	switch m {
	case Parsed:
		return HasMarkdownSyntax(text)
	case Never:
		return false
	case Always:
		return true
	}
	return IsMarkdown(text)
}
