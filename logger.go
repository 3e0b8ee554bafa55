package latextext

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'latextext'.
//
// 各子包使用 'latextext.<包名>'，可按包单独调整日志级别。
func tracer() tracing.Trace {
	return tracing.Select("latextext")
}
