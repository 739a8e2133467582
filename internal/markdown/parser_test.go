package markdown_test

import (
	"strings"
	"testing"

	"github.com/mosite/go-blog/internal/markdown"
)

func TestParserRendersGFM(t *testing.T) {
	p := markdown.NewParser()

	out, err := p.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Fatalf("expected table output, got %q", out)
	}
}

func TestParserKeepsRawHTML(t *testing.T) {
	p := markdown.NewParser()

	out, err := p.Render([]byte("before\n\n<div class=\"note\">hi</div>\n"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "<div class=\"note\">") {
		t.Fatalf("expected raw html preserved, got %q", out)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	meta, body, err := markdown.ParseFrontMatter([]byte("just a body\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if meta.Title != "" || meta.Page {
		t.Fatalf("expected zero front matter, got %+v", meta)
	}
	if strings.TrimSpace(string(body)) != "just a body" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestParseFrontMatterFields(t *testing.T) {
	source := []byte("---\ntitle: Hi\nslug: custom-slug\ncategory: Go\ntags: [a, b]\ndraft: true\n---\n\nbody\n")
	meta, _, err := markdown.ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if meta.Title != "Hi" || meta.Slug != "custom-slug" || meta.Category != "Go" {
		t.Fatalf("unexpected front matter %+v", meta)
	}
	if len(meta.Tags) != 2 || !meta.Draft {
		t.Fatalf("unexpected tags or draft flag %+v", meta)
	}
}
