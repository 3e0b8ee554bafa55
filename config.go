package latextext

import "sync"

// RenderConfig controls how a Document is rendered to HTML.
type RenderConfig struct {
	// Math 公式渲染器，为 nil 时使用 TagMath
	Math MathRenderer
	// HardWraps 将 Markdown 段落内的换行渲染为 <br>
	HardWraps bool
	// Unsafe 允许 Markdown 片段中的原始 HTML 原样输出
	Unsafe bool
}

// DefaultRenderConfig returns a new default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Math:      TagMath{},
		HardWraps: true,
	}
}

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers that need different settings should start from
// DefaultRenderConfig instead of modifying the shared value.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = DefaultRenderConfig()
	})
	return defaultConfig
}

func (c *RenderConfig) mathRenderer() MathRenderer {
	if c == nil || c.Math == nil {
		return TagMath{}
	}
	return c.Math
}
