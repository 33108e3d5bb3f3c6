package templates_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/templates"
)

const sampleTemplate = `Intro text the parser should ignore.

1. Casino - Best Games Online
🎁 Welcome Bonus
Claim a generous match on your first deposit today.
✅ Fast payouts guaranteed
✅ Licensed and secure

2. Mobile App - Play Anywhere
Download our app for the smoothest experience on the go.
`

func TestParseContentSplitsPages(t *testing.T) {
	pages := templates.ParseContent(sampleTemplate, []string{"Casino", "Mobile App"})
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages got %d", len(pages))
	}

	casino, ok := pages["Casino"]
	if !ok {
		t.Fatal("expected Casino entry")
	}
	if casino.Subtitle != "Best Games Online" {
		t.Fatalf("unexpected subtitle %q", casino.Subtitle)
	}
	if len(casino.Blocks) != 1 {
		t.Fatalf("expected 1 block got %d", len(casino.Blocks))
	}
	block := casino.Blocks[0]
	if block.Title != "Welcome Bonus" {
		t.Fatalf("unexpected block title %q", block.Title)
	}
	if block.Kind != templates.KindList {
		t.Fatalf("expected list block got %q", block.Kind)
	}
	if !strings.Contains(block.Content, "Fast payouts guaranteed") {
		t.Fatalf("bullet text missing from content: %q", block.Content)
	}

	app, ok := pages["Mobile App"]
	if !ok {
		t.Fatal("expected Mobile App entry")
	}
	if app.Subtitle != "Play Anywhere" {
		t.Fatalf("unexpected subtitle %q", app.Subtitle)
	}
	if len(app.Blocks) != 1 || app.Blocks[0].Kind != templates.KindParagraph {
		t.Fatalf("expected single paragraph block, got %+v", app.Blocks)
	}
}

func TestParseContentMergesRepeatedPages(t *testing.T) {
	raw := `1. Casino - First subtitle
Some casino content line that is long enough.

2. Casino (Homepage) - Second subtitle
Another casino content line that is long enough.
`
	pages := templates.ParseContent(raw, []string{"Casino"})
	if len(pages) != 1 {
		t.Fatalf("expected merged single entry got %d", len(pages))
	}
	casino := pages["Casino"]
	if casino.Subtitle != "First subtitle" {
		t.Fatalf("expected first subtitle to win, got %q", casino.Subtitle)
	}
	if len(casino.Blocks) != 2 {
		t.Fatalf("expected 2 merged blocks got %d", len(casino.Blocks))
	}
	if !strings.Contains(casino.RawText, "Another casino content line") {
		t.Fatalf("merged raw text missing second entry: %q", casino.RawText)
	}
}

func TestParseContentEmptyInput(t *testing.T) {
	if pages := templates.ParseContent("   \n\n  ", []string{"Casino"}); pages != nil {
		t.Fatalf("expected nil for empty input got %v", pages)
	}
	if pages := templates.ParseContent("no numbered headings here", []string{"Casino"}); pages != nil {
		t.Fatalf("expected nil without page markers got %v", pages)
	}
}

func TestParseContentHeadingWithoutSubtitle(t *testing.T) {
	raw := "1. Casino\nPlenty of games to explore all night long.\n"
	pages := templates.ParseContent(raw, []string{"Casino"})
	if pages == nil || pages["Casino"] == nil {
		t.Fatal("expected Casino entry")
	}
	if pages["Casino"].Subtitle != "" {
		t.Fatalf("expected empty subtitle got %q", pages["Casino"].Subtitle)
	}
}

func TestStripFrontMatter(t *testing.T) {
	raw := "---\ntitle: Custom Title\ndescription: Custom description\n---\n1. Casino - Hello\nBody line long enough to keep.\n"
	meta, body, err := templates.StripFrontMatter(raw)
	if err != nil {
		t.Fatalf("strip front matter: %v", err)
	}
	if meta.Title != "Custom Title" {
		t.Fatalf("unexpected meta title %q", meta.Title)
	}
	if strings.Contains(body, "Custom Title") {
		t.Fatalf("front matter leaked into body: %q", body)
	}
	if !strings.Contains(body, "1. Casino - Hello") {
		t.Fatalf("body lost content: %q", body)
	}

	meta, body, err = templates.StripFrontMatter("plain content without fences")
	if err != nil {
		t.Fatalf("plain content: %v", err)
	}
	if meta.Title != "" || !strings.Contains(body, "plain content") {
		t.Fatalf("expected passthrough, got meta=%+v body=%q", meta, body)
	}
}

func TestNormalizeTextRewritesWordProcessorArtifacts(t *testing.T) {
	cases := map[string]string{
		"\uFEFFstart":        "start",
		"zero\u200Bwidth":    "zerowidth",
		"\u2018quoted\u2019": "'quoted'",
		"\u201Cquoted\u201D": `"quoted"`,
		"a\u2013b\u2014c":    "a-b-c",
		"wait\u2026":         "wait...",
		"non\u00A0breaking":  "non breaking",
		"line\r\nends\rhere": "line\nends\nhere",
	}
	for in, want := range cases {
		if got := templates.NormalizeText(in); got != want {
			t.Errorf("NormalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}
