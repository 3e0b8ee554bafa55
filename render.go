package latextext

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"

	"github.com/caoaolong/CSPPTist/internal/buffer"
	"github.com/caoaolong/CSPPTist/internal/markdown"
	"github.com/caoaolong/CSPPTist/internal/unimath"
)

// MathRenderer 将公式源码渲染为 HTML 片段
//
// display 为 true 时表示块级公式。实现可以调用外部排版引擎，
// 返回的错误会被 Render 包装后返回。
type MathRenderer interface {
	RenderMath(tex string, display bool) (string, error)
}

// MathRendererFunc adapts a function to MathRenderer.
type MathRendererFunc func(tex string, display bool) (string, error)

// RenderMath calls f(tex, display).
func (f MathRendererFunc) RenderMath(tex string, display bool) (string, error) {
	return f(tex, display)
}

// TagMath 输出 <latex> / <latex-inline> 标签，交给前端排版
type TagMath struct{}

// RenderMath wraps the escaped source in a math tag.
func (TagMath) RenderMath(tex string, display bool) (string, error) {
	tag := "latex-inline"
	if display {
		tag = "latex"
	}
	return "<" + tag + ">" + html.EscapeString(tex) + "</" + tag + ">", nil
}

// UnicodeMath 输出公式的 Unicode 近似文本，块级公式包在 <div> 中
type UnicodeMath struct{}

// RenderMath converts tex to Unicode text and escapes it.
func (UnicodeMath) RenderMath(tex string, display bool) (string, error) {
	s := html.EscapeString(unimath.Convert(tex))
	if display {
		return `<div class="math">` + s + "</div>", nil
	}
	return `<span class="math">` + s + "</span>", nil
}

var escapeReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "<br>",
)

// EscapeText 转义 HTML 特殊字符，并将换行转换为 <br>
func EscapeText(text string) string {
	if text == "" {
		return ""
	}
	return escapeReplacer.Replace(text)
}

// RenderMarkdown 使用默认配置将 Markdown 渲染为 HTML
func RenderMarkdown(text string) (string, error) {
	return markdown.Render(text)
}

// Render 将文档渲染为 HTML
//
// Markdown 片段经 goldmark 渲染，普通文本经 EscapeText 转义，
// 公式交给 config.Math。config 为 nil 时使用 DefaultConfig()。
func Render(doc Document, config *RenderConfig) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	math := config.mathRenderer()
	var md goldmark.Markdown

	out := buffer.New()
	for i, span := range doc {
		var (
			s   string
			err error
		)
		switch span.Kind {
		case KindMarkdown:
			if md == nil {
				md = markdownFor(config)
			}
			s, err = markdown.RenderWith(md, span.Content)
		case KindLatexInline, KindLatexBlock:
			s, err = math.RenderMath(span.Content, span.Kind.IsDisplay())
		default:
			s = EscapeText(span.Content)
		}
		if err != nil {
			tracer().Errorf("rendering span %d (%s) failed: %v", i, span.Kind, err)
			return "", fmt.Errorf("rendering span %d (%s): %w", i, span.Kind, err)
		}
		out.Write(s)
	}
	return out.String(), nil
}

// markdownFor 默认配置复用共享实例
func markdownFor(config *RenderConfig) goldmark.Markdown {
	cfg := markdown.Config{HardWraps: config.HardWraps, Unsafe: config.Unsafe}
	if cfg == markdown.DefaultConfig() {
		return markdown.Default()
	}
	return markdown.New(cfg)
}

// PlainText 生成纯文本预览：文本原样保留，公式转换为 Unicode 近似
func PlainText(doc Document) string {
	out := buffer.New()
	for _, span := range doc {
		switch span.Kind {
		case KindLatexBlock:
			if out.Len() > 0 {
				out.WriteNewline()
			}
			out.Write(unimath.Convert(span.Content))
			out.WriteNewline()
		case KindLatexInline:
			out.Write(unimath.Convert(span.Content))
		default:
			out.Write(span.Content)
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
