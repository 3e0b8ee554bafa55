package types

import (
	"fmt"
	"strings"
)

// Kind 表示内容片段的类型
type Kind uint8

const (
	// KindText 普通文本，交给 Markdown 渲染器时按纯文本处理
	KindText Kind = iota
	// KindMarkdown 含有 Markdown 语法的文本
	KindMarkdown
	// KindLatexInline 行内公式 $...$
	KindLatexInline
	// KindLatexBlock 块级公式 $$...$$
	KindLatexBlock
)

var kindNames = [...]string{
	KindText:        "text",
	KindMarkdown:    "markdown",
	KindLatexInline: "latex-inline",
	KindLatexBlock:  "latex-block",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsMath reports whether the kind carries LaTeX source.
func (k Kind) IsMath() bool {
	return k == KindLatexInline || k == KindLatexBlock
}

// IsDisplay reports whether the kind is display-mode math.
func (k Kind) IsDisplay() bool {
	return k == KindLatexBlock
}

// MarshalText 序列化为前端使用的类型名
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid span kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText 从类型名解析
func (k *Kind) UnmarshalText(b []byte) error {
	name := string(b)
	for i, n := range kindNames {
		if n == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown span kind %q", name)
}

// Span 是分段结果中的一个片段
//
// 公式片段的 Content 已去掉定界符并 trim；文本片段保持原样（换行已规范化）。
type Span struct {
	Kind    Kind   `json:"type"`
	Content string `json:"content"`
}

// Delimited 返回重新加上定界符的片段源码
func (s Span) Delimited() string {
	switch s.Kind {
	case KindLatexBlock:
		return "$$" + s.Content + "$$"
	case KindLatexInline:
		return "$" + s.Content + "$"
	default:
		return s.Content
	}
}

// Document 是按源顺序排列的片段序列
type Document []Span

// Markup 按顺序重新插入定界符，重建（规范化后的）输入
func (d Document) Markup() string {
	var b strings.Builder
	for _, s := range d {
		b.WriteString(s.Delimited())
	}
	return b.String()
}

// Kinds returns the kind of every span, in order.
func (d Document) Kinds() []Kind {
	kinds := make([]Kind, len(d))
	for i, s := range d {
		kinds[i] = s.Kind
	}
	return kinds
}

// HasMath reports whether the document contains at least one formula.
func (d Document) HasMath() bool {
	for _, s := range d {
		if s.Kind.IsMath() {
			return true
		}
	}
	return false
}
