package latextext

import (
	"github.com/caoaolong/CSPPTist/internal/classify"
	"github.com/caoaolong/CSPPTist/internal/markup"
	"github.com/caoaolong/CSPPTist/internal/segment"
)

// ClassifyMode selects how text between formulas is classified.
type ClassifyMode = classify.Mode

const (
	// ClassifyPatterns 正则模式匹配（默认）
	ClassifyPatterns = classify.Patterns
	// ClassifyParsed 使用 goldmark 解析结果判断
	ClassifyParsed = classify.Parsed
	// ClassifyNever 全部作为普通文本
	ClassifyNever = classify.Never
	// ClassifyAlways 全部作为 Markdown
	ClassifyAlways = classify.Always
)

// ParseOptions holds options for segmentation.
type ParseOptions struct {
	Classification    ClassifyMode
	InlineTags        bool
	BracketDelimiters bool
	Normalize         bool
}

// Option is a function that configures ParseOptions.
type Option func(*ParseOptions)

// WithClassification sets how residual text is classified.
func WithClassification(mode ClassifyMode) Option {
	return func(opts *ParseOptions) {
		opts.Classification = mode
	}
}

// WithInlineTags sets whether <latex-inline> is recognized.
func WithInlineTags(enable bool) Option {
	return func(opts *ParseOptions) {
		opts.InlineTags = enable
	}
}

// WithBracketDelimiters sets whether \[...\] and \(...\) are treated as
// math delimiters.
func WithBracketDelimiters(enable bool) Option {
	return func(opts *ParseOptions) {
		opts.BracketDelimiters = enable
	}
}

// WithNormalization sets whether input is NFC-normalized before scanning.
func WithNormalization(enable bool) Option {
	return func(opts *ParseOptions) {
		opts.Normalize = enable
	}
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() *ParseOptions {
	return &ParseOptions{
		Classification: ClassifyPatterns,
		InlineTags:     true,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ParseOptions {
	options := defaultParseOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *ParseOptions) segmentOptions() segment.Options {
	return segment.Options{
		Classification:    o.Classification,
		InlineTags:        o.InlineTags,
		BracketDelimiters: o.BracketDelimiters,
		Normalize:         o.Normalize,
	}
}

func (o *ParseOptions) flattenOptions() markup.FlattenOptions {
	opts := markup.DefaultFlattenOptions()
	opts.InlineTags = o.InlineTags
	return opts
}
