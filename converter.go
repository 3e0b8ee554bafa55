package latextext

import (
	"github.com/caoaolong/CSPPTist/internal/markup"
	"github.com/caoaolong/CSPPTist/internal/roundtrip"
)

// Node 标记树节点
type Node = markup.Node

// Flatten 将标记树展平为带 $$...$$ / $...$ 标记的文本，公式正文已 trim
func Flatten(root Node) string {
	return markup.Flatten(root, markup.DefaultFlattenOptions())
}

// HTMLToText 将受限 HTML 转换为可编辑的标记文本
//
// 公式正文保持原样，<latex> 编码为 $$...$$，<latex-inline> 编码为 $...$。
func HTMLToText(src string) (string, error) {
	root, err := markup.ParseHTML(src)
	if err != nil {
		return "", err
	}
	return roundtrip.ToMarkedText(root), nil
}

// TextToHTML 将标记文本转换回受限 HTML
//
// $$...$$ 转为 <latex>，$...$ 转为 <latex-inline>，空行分段，
// 段内换行转为 <br>。
func TextToHTML(text string) string {
	return roundtrip.ToRestrictedHTML(text)
}

// LinesToHTML is TextToHTML for text given as lines.
func LinesToHTML(lines []string) string {
	return roundtrip.ToRestrictedHTMLLines(lines)
}

// Formulas 按文档顺序列出 HTML 片段中的全部公式
func Formulas(src string) ([]Span, error) {
	return markup.Formulas(src)
}
