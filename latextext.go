// Package latextext 将混合了 Markdown、LaTeX 公式和受限 HTML 的文本切分为有序片段
//
// 输入可以是 HTML 片段（<p>、<div>、<br>、<latex>、<latex-inline>），
// 也可以是带 $...$ / $$...$$ 标记的纯文本。输出是按源顺序排列、互不重叠的
// 片段列表，每个片段可以独立渲染：
//
//   - text: 普通文本
//   - markdown: 含 Markdown 语法的文本
//   - latex-inline: 行内公式
//   - latex-block: 块级公式
//
// 反向转换 TextToHTML 将标记文本保存回受限 HTML。
//
// 示例：
//
//	doc := latextext.Parse(`<p>Energy: <latex>E=mc^2</latex></p>`)
//	for _, span := range doc {
//	    switch span.Kind {
//	    case latextext.KindLatexBlock:
//	        // 块级公式
//	    case latextext.KindMarkdown:
//	        // Markdown
//	    }
//	}
//
//	html, err := latextext.Render(doc, nil)
package latextext

import (
	"github.com/caoaolong/CSPPTist/internal/classify"
	"github.com/caoaolong/CSPPTist/internal/markup"
	"github.com/caoaolong/CSPPTist/internal/segment"
)

// Parse 自动识别输入格式并切分
//
// 去掉首尾空白后以 '<' 开头的输入按 HTML 片段处理，其余按标记文本处理。
func Parse(input string, opts ...Option) Document {
	if markup.LooksLikeHTML(input) {
		doc, err := ParseHTML(input, opts...)
		if err == nil {
			return doc
		}
		tracer().Errorf("falling back to plain text: %v", err)
	}
	return ParseText(input, opts...)
}

// ParseText 切分标记文本
func ParseText(text string, opts ...Option) Document {
	options := applyOptions(opts...)
	return segment.Segment(text, options.segmentOptions())
}

// ParseTree 展平标记树后切分
func ParseTree(root markup.Node, opts ...Option) Document {
	options := applyOptions(opts...)
	flat := markup.Flatten(root, options.flattenOptions())
	return segment.Segment(flat, options.segmentOptions())
}

// ParseHTML 解析 HTML 片段后切分
//
// HTML 解析器会像浏览器一样修复不完整的标签，错误只来自读取输入。
func ParseHTML(src string, opts ...Option) (Document, error) {
	root, err := markup.ParseHTML(src)
	if err != nil {
		return nil, err
	}
	return ParseTree(root, opts...), nil
}

// IsMarkdown reports whether text contains common Markdown syntax.
func IsMarkdown(text string) bool {
	return classify.IsMarkdown(text)
}
