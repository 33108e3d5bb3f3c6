package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/layouts"
	"github.com/goliatone/go-sitegen/internal/render"
	"github.com/goliatone/go-sitegen/internal/templates"
)

func samplePage(layout layouts.Layout, seed int64) render.PageInput {
	return render.PageInput{
		Brand:     "LuckySpin",
		Domain:    "luckyspin.example",
		PageName:  "Casino",
		Component: "Casino",
		Layout:    layout,
		Sections: []templates.Section{
			{Title: "Welcome Bonus", Content: "Claim a generous match on your first deposit.", Kind: templates.KindParagraph, HasCTA: true},
			{Title: "Fast Payouts", Content: "Line one\nLine two\nLine three", Kind: templates.KindList},
			{Title: "Live Tables", Content: "Real dealers around the clock."},
			{Title: "Secure Play", Content: "Licensed and audited games.", HasCTA: true},
		},
		HeroTitle: "Play at LuckySpin",
		HeroSub:   "The best games, the fastest payouts, every day.",
		CTAText:   "Play Now",
		ImagePath: "/images/casino-hero.jpg",
		Seed:      seed,
		Colors:    render.SchemeFor("gold"),
		Meta: render.Meta{
			Title:       "Casino - LuckySpin",
			Description: "Play at LuckySpin",
			Keywords:    "casino, slots",
			Canonical:   "https://luckyspin.example/",
			OGTags:      map[string]string{"og:title": "Casino - LuckySpin"},
		},
	}
}

func TestRenderPageDeterministic(t *testing.T) {
	in := samplePage(layouts.CasinoHome, 42)
	first := render.RenderPage(in)
	second := render.RenderPage(in)
	if first != second {
		t.Fatal("same input produced different output")
	}
}

func TestRenderPageStructure(t *testing.T) {
	out := render.RenderPage(samplePage(layouts.CasinoHome, 42))

	for _, want := range []string{
		"export default function Casino()",
		"<SEOHead",
		`canonical="https://luckyspin.example/"`,
		"CTAButton",
		"Ready to Play?",
		"/images/casino-hero.jpg",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRenderPageEscapesContent(t *testing.T) {
	in := samplePage(layouts.CasinoSections, 1)
	in.Sections = []templates.Section{
		{Title: `Say "Hello"`, Content: "Costs $100 and a `tick`", HasCTA: true},
	}
	out := render.RenderPage(in)
	if !strings.Contains(out, `Say \"Hello\"`) {
		t.Fatal("double quotes not escaped")
	}
	if !strings.Contains(out, `\$100`) {
		t.Fatal("dollar sign not escaped")
	}
	if !strings.Contains(out, "\\`tick\\`") {
		t.Fatal("backtick not escaped")
	}
}

func TestRenderPageLayoutsDiffer(t *testing.T) {
	all := []layouts.Layout{
		layouts.CasinoHome, layouts.CasinoGames, layouts.CasinoBonuses,
		layouts.CasinoApp, layouts.CasinoAviator, layouts.CasinoBetting,
		layouts.CasinoLogin, layouts.ContactCards, layouts.Accordion,
		layouts.CasinoTimeline, layouts.CasinoBento, layouts.CasinoSections,
	}
	seen := map[string]layouts.Layout{}
	for _, layout := range all {
		out := render.RenderPage(samplePage(layout, 42))
		if prev, dup := seen[out]; dup {
			t.Fatalf("layouts %s and %s rendered identically", prev, layout)
		}
		seen[out] = layout
	}
}

func TestRenderPageWithoutImage(t *testing.T) {
	in := samplePage(layouts.CasinoHome, 42)
	in.ImagePath = ""
	out := render.RenderPage(in)
	if strings.Contains(out, "<img") {
		t.Fatal("expected gradient backdrop when no hero image is present")
	}
}

func TestTruncate(t *testing.T) {
	long := "The quick brown fox jumps over the lazy dog and keeps running through the forest"
	got := render.Truncate(long, 40)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix got %q", got)
	}
	trimmed := strings.TrimSuffix(got, "...")
	if !strings.HasSuffix(long, trimmed) && !strings.Contains(long, trimmed+" ") {
		t.Fatalf("truncate cut inside a word: %q", got)
	}

	short := "short text"
	if render.Truncate(short, 40) != short {
		t.Fatal("short text should pass through untouched")
	}
}

func TestRenderAppRoutes(t *testing.T) {
	site := render.SiteInput{
		Brand:    "LuckySpin",
		Domain:   "luckyspin.example",
		OfferURL: "https://go.example/offer",
		Colors:   render.SchemeFor("gold"),
		Fonts:    render.FontsFor(0),
		Pages: []render.PageRef{
			{Name: "Casino", Component: "Casino", Path: "/"},
			{Name: "Games", Component: "Games", Path: "/games"},
		},
	}

	app := render.RenderApp(site)
	for _, want := range []string{
		"import Casino from './pages/Casino';",
		`<Route path="/" element={<Casino />} />`,
		`<Route path="/games" element={<Games />} />`,
	} {
		if !strings.Contains(app, want) {
			t.Fatalf("App.jsx missing %q", want)
		}
	}

	header := render.RenderHeader(site)
	if !strings.Contains(header, `href="https://go.example/offer"`) {
		t.Fatal("header missing offer link")
	}

	cta := render.RenderCTAButton(site)
	if !strings.Contains(cta, "https://go.example/offer") {
		t.Fatal("CTA button missing offer URL")
	}
}

func TestSchemeForUnknownFallsBackToGold(t *testing.T) {
	if render.SchemeFor("nope") != render.SchemeFor("gold") {
		t.Fatal("unknown scheme should fall back to gold")
	}
}

func TestRenderPageImportsComponents(t *testing.T) {
	out := render.RenderPage(samplePage(layouts.CasinoHome, 42))
	for _, want := range []string{
		"import SEOHead from '../components/SEOHead';",
		"import CTAButton from '../components/CTAButton';",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Contains(out, "GameGrid") {
		t.Fatal("GameGrid must only appear when requested")
	}
}

func TestRenderPageMountsGameGrid(t *testing.T) {
	in := samplePage(layouts.CasinoGames, 42)
	in.IncludeGameGrid = true
	out := render.RenderPage(in)

	if !strings.Contains(out, "import GameGrid from '../components/GameGrid';") {
		t.Fatal("missing GameGrid import")
	}
	mount := strings.Index(out, "<GameGrid />")
	if mount < 0 {
		t.Fatal("missing GameGrid mount")
	}
	if closing := strings.Index(out, "Ready to Play?"); closing >= 0 && mount > closing {
		t.Fatal("GameGrid should mount above the closing CTA band")
	}
}

func TestRenderGameGridTiles(t *testing.T) {
	site := render.SiteInput{
		Brand:    "LuckySpin",
		Domain:   "luckyspin.example",
		OfferURL: "https://go.example/offer",
		Colors:   render.SchemeFor("gold"),
	}
	out := render.RenderGameGrid(site, []render.Game{
		{Src: "/games/lucky_wheel.webp", Name: "Lucky Wheel"},
	})

	for _, want := range []string{
		`"src":"/games/lucky_wheel.webp"`,
		`"name":"Lucky Wheel"`,
		`href="https://go.example/offer"`,
		`"https://luckyspin.example"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("GameGrid missing %q", want)
		}
	}
}

func TestRenderPageGamesGridRotatesWithSeed(t *testing.T) {
	grids := map[int64]string{
		4: `grid sm:grid-cols-2 lg:grid-cols-3 gap-6`,
		0: `grid grid-cols-2 md:grid-cols-4 gap-4`,
		1: `grid sm:grid-cols-2 lg:grid-cols-4 gap-5`,
	}
	for seed, grid := range grids {
		out := render.RenderPage(samplePage(layouts.CasinoGames, seed))
		if !strings.Contains(out, grid) {
			t.Fatalf("seed %d: games grid %q missing from output", seed, grid)
		}
	}
}

func TestRenderPageBonusGridRotatesWithSeed(t *testing.T) {
	grids := map[int64]string{
		1: `grid md:grid-cols-2 lg:grid-cols-3 gap-6`,
		2: `grid sm:grid-cols-2 gap-8`,
		3: `grid grid-cols-1 md:grid-cols-4 gap-4`,
	}
	for seed, grid := range grids {
		out := render.RenderPage(samplePage(layouts.CasinoBonuses, seed))
		if !strings.Contains(out, grid) {
			t.Fatalf("seed %d: bonus grid %q missing from output", seed, grid)
		}
	}
}
