package templates_test

import (
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/goliatone/go-sitegen/internal/templates"
)

func TestBuildSectionsPinsCTAAndUniquesTitles(t *testing.T) {
	blocks := []templates.ContentBlock{
		{Title: "Welcome Bonus", Content: "Claim your bonus today and start winning.", Kind: templates.KindList},
		{Title: "Welcome Bonus", Content: "Another take on the bonus offer for loyal players.", Kind: templates.KindParagraph},
		{Title: "Fast Payouts", Content: "Withdrawals are processed within minutes."},
	}

	sections := templates.BuildSections(blocks, false, 0)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections got %d", len(sections))
	}

	seen := map[string]bool{}
	for _, s := range sections {
		if seen[s.Title] {
			t.Fatalf("duplicate title %q", s.Title)
		}
		seen[s.Title] = true
	}

	if !sections[0].HasCTA || !sections[2].HasCTA {
		t.Fatal("expected CTA on first and last sections")
	}
	if sections[1].HasCTA {
		t.Fatal("did not expect CTA on middle section")
	}
	if sections[2].Kind != templates.KindParagraph {
		t.Fatalf("expected default paragraph kind got %q", sections[2].Kind)
	}
}

func TestBuildSectionsSplitsLongContent(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("This is a fairly long sentence used for testing. ", 12))
	sections := templates.BuildSections([]templates.ContentBlock{{Content: long}}, false, 0)
	if len(sections) < 2 {
		t.Fatalf("expected long content to split, got %d sections", len(sections))
	}
	seen := map[string]bool{}
	for _, s := range sections {
		if utf8.RuneCountInString(s.Content) > templates.MaxSectionLength {
			t.Fatalf("section exceeds ceiling: %d runes", utf8.RuneCountInString(s.Content))
		}
		for _, word := range strings.Fields(s.Content) {
			if !strings.Contains(long, word) {
				t.Fatalf("split inside a word: %q", word)
			}
		}
		if seen[s.Title] {
			t.Fatalf("duplicate title %q after split", s.Title)
		}
		seen[s.Title] = true
	}
}

func TestBuildSectionsShuffleIsPermutation(t *testing.T) {
	blocks := []templates.ContentBlock{
		{Title: "Alpha", Content: "Alpha section content for the page."},
		{Title: "Bravo", Content: "Bravo section content for the page."},
		{Title: "Charlie", Content: "Charlie section content for the page."},
		{Title: "Delta", Content: "Delta section content for the page."},
		{Title: "Echo", Content: "Echo section content for the page."},
	}

	plain := templates.BuildSections(blocks, false, 0)
	shuffled := templates.BuildSections(blocks, true, 7)

	if len(plain) != len(shuffled) {
		t.Fatalf("shuffle changed section count: %d vs %d", len(plain), len(shuffled))
	}
	if shuffled[0].Title != plain[0].Title || shuffled[len(shuffled)-1].Title != plain[len(plain)-1].Title {
		t.Fatal("shuffle moved pinned first/last sections")
	}
	if !shuffled[0].HasCTA || !shuffled[len(shuffled)-1].HasCTA {
		t.Fatal("expected CTA flags on first and last after shuffle")
	}

	sortTitles := func(sections []templates.Section) []string {
		titles := make([]string, len(sections))
		for i, s := range sections {
			titles[i] = s.Title
		}
		sort.Strings(titles)
		return titles
	}
	a, b := sortTitles(plain), sortTitles(shuffled)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle is not a permutation: %v vs %v", a, b)
		}
	}
}

func TestBuildSectionsShuffleDeterministic(t *testing.T) {
	blocks := []templates.ContentBlock{
		{Title: "Alpha", Content: "Alpha section content for the page."},
		{Title: "Bravo", Content: "Bravo section content for the page."},
		{Title: "Charlie", Content: "Charlie section content for the page."},
		{Title: "Delta", Content: "Delta section content for the page."},
	}
	first := templates.BuildSections(blocks, true, 42)
	second := templates.BuildSections(blocks, true, 42)
	for i := range first {
		if first[i].Title != second[i].Title {
			t.Fatalf("same seed produced different order at %d: %q vs %q", i, first[i].Title, second[i].Title)
		}
	}
}

func TestDeriveTitle(t *testing.T) {
	got := templates.DeriveTitle("Play hundreds of premium slots. More text follows here.")
	if got != "Play hundreds of premium slots." {
		t.Fatalf("unexpected derived title %q", got)
	}

	got = templates.DeriveTitle("Short one. tail")
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected snippet fallback got %q", got)
	}
}

func TestHeroSubtitle(t *testing.T) {
	page := &templates.PageContent{Subtitle: "The ultimate destination for online gaming"}
	if got := templates.HeroSubtitle(page, "Lucky", "Casino"); got != page.Subtitle {
		t.Fatalf("expected subtitle passthrough got %q", got)
	}

	page = &templates.PageContent{
		Blocks: []templates.ContentBlock{{Content: "Play hundreds of premium slots with daily jackpots. More."}},
	}
	if got := templates.HeroSubtitle(page, "Lucky", "Casino"); got != "Play hundreds of premium slots with daily jackpots." {
		t.Fatalf("expected first sentence got %q", got)
	}

	got := templates.HeroSubtitle(nil, "Lucky", "Games")
	if !strings.Contains(got, "Lucky") || !strings.Contains(got, "games") {
		t.Fatalf("fallback subtitle missing brand/page: %q", got)
	}
}

func TestBuildSectionsSplitsMultilineAtLineBoundaries(t *testing.T) {
	lines := []string{
		"Claim the welcome bonus on your first deposit today.",
		"Spin the daily wheel for free rewards every morning.",
		"Join the VIP club to unlock faster withdrawal limits.",
		"Weekly cashback lands in your account each Monday.",
		"Refer a friend and both of you collect extra spins.",
		"Seasonal tournaments pay out prize pools all year.",
	}
	content := strings.Join(lines, "\n")
	if utf8.RuneCountInString(content) <= templates.MaxSectionLength {
		t.Fatalf("fixture must exceed the ceiling to exercise the split")
	}

	sections := templates.BuildSections([]templates.ContentBlock{{Title: "Bonuses", Content: content}}, false, 0)
	if len(sections) < 2 {
		t.Fatalf("expected multi-line content to split, got %d sections", len(sections))
	}
	for _, section := range sections {
		if utf8.RuneCountInString(section.Content) > templates.MaxSectionLength {
			t.Fatalf("section exceeds ceiling: %d runes", utf8.RuneCountInString(section.Content))
		}
		for _, got := range strings.Split(section.Content, "\n") {
			found := false
			for _, line := range lines {
				if got == line {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("split broke a line apart: %q", got)
			}
		}
	}
}

func TestBuildSectionsOversizedLineFallsBackToSentences(t *testing.T) {
	giant := strings.TrimSpace(strings.Repeat("An oversized single line keeps running on and on. ", 12))
	content := "Short opening line.\n" + giant
	sections := templates.BuildSections([]templates.ContentBlock{{Content: content}}, false, 0)
	if len(sections) < 2 {
		t.Fatalf("expected oversized line to force a split, got %d sections", len(sections))
	}
	for _, section := range sections {
		if utf8.RuneCountInString(section.Content) > templates.MaxSectionLength {
			t.Fatalf("section exceeds ceiling: %d runes", utf8.RuneCountInString(section.Content))
		}
	}
}
