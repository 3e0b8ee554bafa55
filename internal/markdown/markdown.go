// Package markdown 持有共享的 goldmark 实例，负责 Markdown 片段的解析与渲染
package markdown

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

func tracer() tracing.Trace {
	return tracing.Select("latextext.markdown")
}

// Config 渲染配置
type Config struct {
	// HardWraps 将段落内的换行渲染为 <br>（前端 marked 的 breaks: true）
	HardWraps bool
	// Unsafe 允许原样输出 Markdown 中的 HTML
	Unsafe bool
}

// DefaultConfig 返回默认渲染配置
func DefaultConfig() Config {
	return Config{HardWraps: true}
}

// StandardExtensions GFM（表格、删除线、任务列表、自动链接）+ 定义列表 + 脚注
var StandardExtensions = []goldmark.Extender{
	extension.GFM,
	extension.DefinitionList,
	extension.Footnote,
}

// New 按配置创建 goldmark 实例
func New(cfg Config) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithExtensions(StandardExtensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}
	if cfg.HardWraps {
		opts = append(opts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	if cfg.Unsafe {
		opts = append(opts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	return goldmark.New(opts...)
}

var (
	defaultMarkdown     goldmark.Markdown
	defaultMarkdownOnce sync.Once
)

// Default 返回默认配置的共享实例（并发安全）
func Default() goldmark.Markdown {
	defaultMarkdownOnce.Do(func() {
		defaultMarkdown = New(DefaultConfig())
	})
	return defaultMarkdown
}

// Parse 仅解析为 AST，不渲染
func Parse(markdown string) (ast.Node, []byte) {
	source := []byte(markdown)
	reader := text.NewReader(source)
	return Default().Parser().Parse(reader), source
}

// Render 使用默认实例将 Markdown 渲染为 HTML
func Render(markdown string) (string, error) {
	return RenderWith(Default(), markdown)
}

// RenderWith 使用指定实例渲染
func RenderWith(md goldmark.Markdown, markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		tracer().Errorf("markdown rendering failed: %v", err)
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
