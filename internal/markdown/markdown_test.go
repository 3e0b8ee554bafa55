package markdown

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark/ast"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{"heading", "# Title", []string{`<h1 id="title">Title</h1>`}},
		{"emphasis", "More *text*.", []string{"<em>text</em>"}},
		{"hard wraps", "one\ntwo", []string{"one<br>"}},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}},
		{"strikethrough", "~~gone~~", []string{"<del>gone</del>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.input)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, should contain %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	got, err := Render("")
	if err != nil || got != "" {
		t.Errorf("Render(\"\") = %q, %v", got, err)
	}
}

func TestRenderUnsafe(t *testing.T) {
	input := "a <b>raw</b>"
	safe, _ := Render(input)
	if strings.Contains(safe, "<b>raw</b>") {
		t.Errorf("default config should omit raw HTML, got %q", safe)
	}
	unsafe, err := RenderWith(New(Config{Unsafe: true}), input)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(unsafe, "<b>raw</b>") {
		t.Errorf("unsafe config should keep raw HTML, got %q", unsafe)
	}
}

func TestParse(t *testing.T) {
	doc, source := Parse("# Title\n\ntext")
	if string(source) != "# Title\n\ntext" {
		t.Errorf("Parse() returned source %q", source)
	}
	if doc.Kind() != ast.KindDocument {
		t.Fatalf("Parse() root kind = %v", doc.Kind())
	}
	if first := doc.FirstChild(); first == nil || first.Kind() != ast.KindHeading {
		t.Errorf("first child should be a heading")
	}
}

func TestDefaultShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the shared instance")
	}
}
