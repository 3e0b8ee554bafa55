package latextext

import "github.com/caoaolong/CSPPTist/internal/types"

// 导出类型别名
type (
	Kind     = types.Kind
	Span     = types.Span
	Document = types.Document
)

const (
	KindText        = types.KindText
	KindMarkdown    = types.KindMarkdown
	KindLatexInline = types.KindLatexInline
	KindLatexBlock  = types.KindLatexBlock
)
