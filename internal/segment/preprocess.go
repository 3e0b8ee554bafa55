package segment

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// <latex>...</latex>，正文不跨越下一个 '<'，允许为空
	latexTagRe = regexp.MustCompile(`(?i)<latex>([^<]*)</latex>`)

	// <latex-inline>...</latex-inline>，正文非空
	latexInlineTagRe = regexp.MustCompile(`(?i)<latex-inline>([^<]+)</latex-inline>`)

	// 代码块和行内代码，括号定界符改写时跳过
	codeRegionRe = regexp.MustCompile("(```[\\s\\S]*?```|`[^`\\n]+`)")

	// LaTeX 块级公式：\[...\]（可跨行）
	bracketBlockRe = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)

	// LaTeX 行内公式：\(...\)
	bracketInlineRe = regexp.MustCompile(`\\\((.*?)\\\)`)

	newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Preprocess 规范化输入并把其他形式的公式统一改写为 $$...$$ / $...$
//
// 顺序：换行规范化 → 可选 NFC → 可选 \[..\] \(..\) 改写 → 标签改写
func Preprocess(text string, opts Options) string {
	text = newlineReplacer.Replace(text)
	if opts.Normalize && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	if opts.BracketDelimiters {
		text = RewriteBrackets(text)
	}
	return RewriteTags(text, opts.InlineTags)
}

// RewriteTags 将残留在文本中的 <latex> / <latex-inline> 标签改写为美元符定界
func RewriteTags(text string, inlineTags bool) string {
	if !strings.Contains(text, "<") {
		return text
	}
	if inlineTags {
		text = latexInlineTagRe.ReplaceAllStringFunc(text, func(match string) string {
			body := strings.TrimSpace(latexInlineTagRe.FindStringSubmatch(match)[1])
			if body == "" {
				// "$$" 会被当作块级定界符，保留一个空格使其仍是空的行内公式
				return "$ $"
			}
			return "$" + body + "$"
		})
	}
	return latexTagRe.ReplaceAllStringFunc(text, func(match string) string {
		body := latexTagRe.FindStringSubmatch(match)[1]
		return "$$" + strings.TrimSpace(body) + "$$"
	})
}

// RewriteBrackets 将 \[...\] 和 \(...\) 改写为 $$...$$ 和 $...$，跳过代码区域
func RewriteBrackets(text string) string {
	if !strings.Contains(text, `\[`) && !strings.Contains(text, `\(`) {
		return text
	}
	parts := codeRegionRe.Split(text, -1)
	codes := codeRegionRe.FindAllString(text, -1)

	var result strings.Builder
	for i, part := range parts {
		result.WriteString(rewriteBracketPart(part))
		if i < len(codes) {
			result.WriteString(codes[i])
		}
	}
	return result.String()
}

func rewriteBracketPart(part string) string {
	part = bracketBlockRe.ReplaceAllStringFunc(part, func(match string) string {
		body := strings.TrimSuffix(strings.TrimPrefix(match, `\[`), `\]`)
		return "$$" + strings.TrimSpace(body) + "$$"
	})
	return bracketInlineRe.ReplaceAllStringFunc(part, func(match string) string {
		body := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(match, `\(`), `\)`))
		if body == "" || strings.ContainsAny(body, "$\n") {
			return match
		}
		return "$" + body + "$"
	})
}
