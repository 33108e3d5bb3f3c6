package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-sitegen/internal/layouts"
	"github.com/goliatone/go-sitegen/internal/templates"
)

// Meta is the SEO head data rendered into a page component.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	OGTags      map[string]string
}

// PageInput is everything the renderer needs to emit one page component.
type PageInput struct {
	Brand     string
	Domain    string
	PageName  string
	Component string
	Layout    layouts.Layout
	Sections  []templates.Section
	HeroTitle string
	HeroSub   string
	CTAText   string
	ImagePath string
	Seed      int64
	Colors    ColorScheme
	Meta      Meta

	// IncludeGameGrid mounts the shared GameGrid component on pages whose
	// layout showcases games. The orchestrator sets it only when game
	// artwork was bundled into the archive.
	IncludeGameGrid bool
}

// RenderPage emits the full JSX source of one page component. Output is
// deterministic for a given input: every variant choice derives from the
// page seed.
func RenderPage(in PageInput) string {
	ctaText := in.CTAText
	if ctaText == "" {
		ctaText = "Play Now"
	}
	c := renderCtx{
		p:       in.Colors.Primary,
		a:       in.Colors.Accent,
		bg:      in.Colors.Bg,
		ctaText: ctaText,
		seed:    in.Seed,
	}

	ogJSON, _ := json.Marshal(in.Meta.OGTags)
	seoBlock := fmt.Sprintf(`      <SEOHead
        title="%s"
        description="%s"
        keywords="%s"
        canonical="%s"
        ogTags={%s}
      />`, EscapeJSX(in.Meta.Title), EscapeJSX(in.Meta.Description), EscapeJSX(in.Meta.Keywords), in.Meta.Canonical, string(ogJSON))

	heroTitle := EscapeJSX(in.HeroTitle)
	heroSub := EscapeJSX(in.HeroSub)
	if utf8.RuneCountInString(in.HeroSub) <= 10 {
		heroSub = fmt.Sprintf("Welcome to %s - discover the best %s experience. Play now!", EscapeJSX(in.Brand), EscapeJSX(in.PageName))
	}

	imgTag := ""
	if in.ImagePath != "" {
		siteURL := SiteURL(in.Domain)
		imgTag = fmt.Sprintf(`<img src="%s" alt="%s - %s" data-site="%s" className="w-full h-full object-cover"`,
			in.ImagePath, EscapeJSX(in.PageName), EscapeJSX(in.Brand), siteURL)
	}

	hero := c.heroBlock(in.PageName, heroTitle, heroSub, imgTag)
	body := c.layoutBody(in, hero, imgTag)

	imports := "import SEOHead from '../components/SEOHead';\nimport CTAButton from '../components/CTAButton';\n"
	if in.IncludeGameGrid {
		imports = "import GameGrid from '../components/GameGrid';\n" + imports
		body = injectGameGrid(body)
	}

	return fmt.Sprintf(`%s
export default function %s() {
  return (
    <>
%s
%s
    </>
  );
}
`, imports, in.Component, seoBlock, body)
}

// injectGameGrid mounts <GameGrid /> just above the closing CTA band, or at
// the end of the body when no band is present.
func injectGameGrid(body string) string {
	const anchor = `<section className="py-20 bg-gradient-to-r`
	if idx := strings.LastIndex(body, anchor); idx > 0 {
		return body[:idx] + "<GameGrid />\n      " + body[idx:]
	}
	return body + "\n      <GameGrid />"
}

// SiteURL normalizes a configured domain into an absolute site URL.
func SiteURL(domain string) string {
	if domain == "" {
		return ""
	}
	if strings.HasPrefix(domain, "http") {
		return domain
	}
	return "https://" + domain
}

func (c renderCtx) layoutBody(in PageInput, hero, imgTag string) string {
	secs := in.Sections

	switch in.Layout {
	case layouts.CasinoHome:
		return c.homeBody(hero, imgTag, secs)
	case layouts.CasinoGames:
		return c.gamesBody(hero, secs)
	case layouts.CasinoBonuses:
		return c.bonusesBody(hero, secs)
	case layouts.CasinoApp:
		return c.appBody(hero, secs)
	case layouts.CasinoAviator:
		return c.aviatorBody(in, hero, secs)
	case layouts.CasinoBetting:
		return c.bettingBody(hero, secs)
	case layouts.CasinoLogin:
		return c.loginBody(in, hero, secs)
	case layouts.ContactCards:
		return c.contactBody(in, hero, secs)
	case layouts.Accordion:
		return c.accordionBody(hero, secs)
	case layouts.CasinoTimeline:
		return c.timelineBody(hero, secs)
	case layouts.CasinoBento:
		return c.bentoBody(hero, secs)
	default:
		return join(hero, c.statsBlock(), c.renderSections(secs, 0), c.bottomCTA())
	}
}

func (c renderCtx) homeBody(hero, imgTag string, secs []templates.Section) string {
	variant := mod(c.seed, 5)
	grids := []string{
		"grid md:grid-cols-3 gap-8",
		"grid sm:grid-cols-2 lg:grid-cols-4 gap-6",
		"grid lg:grid-cols-2 gap-8",
		"grid sm:grid-cols-2 lg:grid-cols-3 gap-6",
		"grid grid-cols-1 md:grid-cols-2 lg:grid-cols-5 gap-6",
	}
	take := []int{3, 4, 2, 4, 5}[variant]
	if take > len(secs) {
		take = len(secs)
	}
	cardAnims := []string{"animate-float", "animate-wiggle", "animate-pulse", "animate-bounce", "animate-glow"}
	cardStyles := []string{
		fmt.Sprintf("group p-8 rounded-2xl border border-%s-500/20 bg-slate-800/80 hover:border-%s-400 hover:shadow-xl hover:shadow-%s-500/20 transition-all duration-300 hover:-translate-y-2", c.p, c.p, c.p),
		fmt.Sprintf("group p-6 rounded-3xl bg-gradient-to-br from-slate-800 to-slate-800/60 border border-%s-500/20 hover:border-%s-400/60 hover:shadow-2xl transition-all duration-300", c.p, c.p),
		fmt.Sprintf("group p-8 rounded-2xl bg-slate-800/90 border-l-4 border-%s-500 hover:bg-slate-800 transition-all duration-300", c.p),
		fmt.Sprintf("group p-6 rounded-2xl bg-gradient-to-b from-%s-500/10 to-transparent border border-%s-500/30 hover:shadow-xl hover:shadow-%s-500/20 transition-all duration-500 hover:scale-[1.02]", c.p, c.p, c.p),
		fmt.Sprintf("group p-8 rounded-2xl bg-slate-800/80 border border-slate-700 hover:border-%s-500 hover:shadow-lg transition-all duration-300", c.a),
	}

	var cards strings.Builder
	for i, sec := range secs[:take] {
		fmt.Fprintf(&cards, `
            <div className="%s">
              <div className="w-14 h-14 rounded-xl bg-gradient-to-br from-%s-500 to-%s-600 flex items-center justify-center mb-5 text-2xl %s" style={{ animationDelay: '%dms' }}>
                %s
              </div>
              <h3 className="text-xl font-bold text-white mb-3">%s</h3>
              <p className="text-%s-300 leading-relaxed">%s</p>
            </div>`,
			cardStyles[variant], c.p, c.a, cardAnims[mod(c.seed+int64(i), len(cardAnims))], i*200,
			emoji(i), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, DefaultTruncateLen)))
	}

	offerGrid := fmt.Sprintf(`      <section className="py-20 bg-slate-800/50">
        <div className="section-container">
          <h2 className="text-3xl font-bold text-center text-%s-400 mb-12">What We Offer</h2>
          <div className="%s">%s
          </div>
        </div>
      </section>`, c.p, grids[variant], cards.String())

	rest := ""
	if len(secs) > take {
		rest = c.renderSections(secs[take:], take)
	}

	imageBand := ""
	if imgTag != "" {
		imageBand = fmt.Sprintf(`      <section className="relative py-20 overflow-hidden">
        <div className="absolute inset-0">%s /><div className="absolute inset-0 bg-slate-900/80"></div></div>
        <div className="section-container relative z-10 text-center">
          <h2 className="text-3xl font-bold text-white mb-4">Join Thousands of Winners</h2>
          <p className="text-%s-300 max-w-2xl mx-auto mb-8">Start playing today and experience world-class casino entertainment.</p>
          <CTAButton text="%s" />
        </div>
      </section>`, imgTag, c.bg, EscapeJSX(c.ctaText))
	}

	return join(hero, c.statsBlock(), offerGrid, rest, imageBand, c.bottomCTA())
}

func (c renderCtx) gamesBody(hero string, secs []templates.Section) string {
	variant := mod(c.seed+1, 5)
	grids := []string{
		"grid sm:grid-cols-2 lg:grid-cols-3 gap-6",
		"grid grid-cols-2 md:grid-cols-4 gap-4",
		"grid sm:grid-cols-2 lg:grid-cols-4 gap-5",
		"grid grid-cols-2 md:grid-cols-3 lg:grid-cols-5 gap-4",
		"grid grid-cols-1 sm:grid-cols-2 md:grid-cols-4 gap-6",
	}
	take := []int{6, 8, 4, 6, 4}[variant]
	if take > len(secs) {
		take = len(secs)
	}
	cardAnims := []string{
		"group-hover:scale-125 group-hover:rotate-12", "group-hover:scale-110",
		"group-hover:scale-125 animate-float", "group-hover:scale-110 animate-pulse",
	}
	var cards strings.Builder
	for i, sec := range secs[:take] {
		anim := cardAnims[mod(c.seed+int64(i), len(cardAnims))]
		fmt.Fprintf(&cards, `
            <div className="group rounded-2xl overflow-hidden bg-slate-800/80 border border-%s-500/20 hover:border-%s-400/60 transition-all duration-300 hover:-translate-y-1">
              <div className="aspect-video bg-gradient-to-br from-%s-500/20 to-%s-500/20 flex items-center justify-center"><span className="text-6xl %s transition-transform duration-500">%s</span></div>
              <div className="p-6">
                <h3 className="text-lg font-bold text-white mb-2">%s</h3>
                <p className="text-%s-400 text-sm">%s</p>
                <div className="mt-4"><CTAButton text="Play Now" variant="secondary" /></div>
              </div>
            </div>`, c.p, c.p, c.p, c.a, anim, emoji(i), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 110)))
	}
	grid := fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container">
          <h2 className="text-3xl font-bold text-center text-%s-400 mb-12">Top Games</h2>
          <div className="%s">%s
          </div>
        </div>
      </section>`, c.p, grids[variant], cards.String())

	rest := ""
	if len(secs) > take {
		rest = c.renderSections(secs[take:], take)
	}
	return join(hero, grid, rest, c.bottomCTA())
}

func (c renderCtx) bonusesBody(hero string, secs []templates.Section) string {
	variant := mod(c.seed+2, 3)
	grids := []string{
		"grid md:grid-cols-2 lg:grid-cols-3 gap-6",
		"grid sm:grid-cols-2 gap-8",
		"grid grid-cols-1 md:grid-cols-4 gap-4",
	}
	take := []int{6, 4, 4}[variant]
	if take > len(secs) {
		take = len(secs)
	}
	cardStyles := []string{
		fmt.Sprintf("bg-gradient-to-b from-slate-800 to-slate-800/50 p-8 rounded-2xl border border-%s-500/20 hover:border-%s-400/60 transition-all group", c.p, c.p),
		fmt.Sprintf("bg-slate-800/80 p-8 rounded-2xl border-l-4 border-%s-500 hover:bg-slate-800 transition-all group", c.p),
		fmt.Sprintf("bg-gradient-to-br from-%s-500/10 to-%s-500/5 p-8 rounded-2xl border border-%s-500/30 hover:shadow-xl hover:shadow-%s-500/20 transition-all group hover:-translate-y-1", c.p, c.a, c.p, c.p),
		fmt.Sprintf("bg-slate-800/90 p-8 rounded-2xl border border-slate-600 hover:border-%s-500 transition-all group", c.a),
		fmt.Sprintf("bg-gradient-to-r from-slate-800 to-slate-800/60 p-8 rounded-2xl border-2 border-%s-500/20 hover:border-%s-400/50 transition-all group", c.p, c.p),
		fmt.Sprintf("bg-slate-800/70 p-8 rounded-3xl border border-%s-500/20 shadow-lg hover:shadow-%s-500/10 transition-all group", c.p, c.p),
	}
	var cards strings.Builder
	for i, sec := range secs[:take] {
		fmt.Fprintf(&cards, `
            <div className="%s">
              <div className="flex items-center gap-3 mb-4">
                <span className="text-3xl">%s</span>
                <h3 className="text-lg font-bold text-white">%s</h3>
              </div>
              <p className="text-%s-300 leading-relaxed line-clamp-4">%s</p>
              %s
            </div>`, cardStyles[i%len(cardStyles)], emoji(i+4), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 120)),
			wrapIf(sec.HasCTA, `<div className="mt-5">`, `<CTAButton text="Claim Now" variant="secondary" />`, `</div>`))
	}
	stack := fmt.Sprintf(`      <section className="py-20 bg-slate-900/50">
        <div className="section-container">
          <div className="%s">%s
          </div>
        </div>
      </section>`, grids[variant], cards.String())

	rest := ""
	if len(secs) > take {
		rest = c.renderSections(secs[take:], take)
	}
	return join(hero, stack, rest, c.bottomCTA())
}

func (c renderCtx) appBody(hero string, secs []templates.Section) string {
	take := 4
	if take > len(secs) {
		take = len(secs)
	}
	var steps strings.Builder
	for i, sec := range secs[:take] {
		fmt.Fprintf(&steps, `
            <div className="flex gap-6 items-start">
              <div className="flex-shrink-0 w-12 h-12 rounded-full bg-gradient-to-br from-%s-500 to-%s-600 flex items-center justify-center text-xl font-bold text-white">%d</div>
              <div>
                <h3 className="text-xl font-bold text-white mb-2">%s</h3>
                <p className="text-%s-300">%s</p>
              </div>
            </div>`, c.p, c.a, i+1, EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 180)))
	}
	stepsBlock := fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container max-w-3xl mx-auto">
          <h2 className="text-3xl font-bold text-center text-%s-400 mb-12">Get the App</h2>
          <div className="space-y-10">%s
          </div>
        </div>
      </section>`, c.p, steps.String())

	rest := ""
	if len(secs) > take {
		rest = c.renderSections(secs[take:], take)
	}
	return join(hero, stepsBlock, rest, c.statsBlock(), c.bottomCTA())
}

func (c renderCtx) aviatorBody(in PageInput, hero string, secs []templates.Section) string {
	panel := fmt.Sprintf(`      <section className="py-20 bg-slate-900/70">
        <div className="section-container">
          <div className="rounded-3xl bg-slate-950 border-2 border-%s-500/30 p-8 md:p-16 text-center relative overflow-hidden">
            <div className="absolute inset-0 bg-[radial-gradient(circle_at_50%%_120%%,rgba(251,191,36,0.12)_0%%,transparent_60%%)]"></div>
            <span className="text-7xl block mb-6 animate-float">✈️</span>
            <p className="text-5xl md:text-7xl font-extrabold text-transparent bg-clip-text bg-gradient-to-r from-%s-400 to-%s-400 mb-6">x2.47</p>
            <p className="text-%s-300 max-w-xl mx-auto mb-8">Cash out before the plane flies away. Every round at %s is a new chance to multiply your bet.</p>
            <CTAButton text="%s" />
          </div>
        </div>
      </section>`, c.p, c.p, c.a, c.bg, EscapeJSX(in.Brand), EscapeJSX(c.ctaText))

	return join(hero, panel, c.renderSections(secs, 0), c.bottomCTA())
}

func (c renderCtx) bettingBody(hero string, secs []templates.Section) string {
	sports := []struct{ icon, name, desc string }{
		{"🏏", "Cricket", "IPL, T20, Ashes"},
		{"⚽", "Football", "Premier League, UCL"},
		{"🎮", "eSports", "PUBG, Valorant, FIFA"},
		{"🏀", "More Sports", "Tennis, NBA, Kabaddi"},
	}
	var cards strings.Builder
	for _, s := range sports {
		fmt.Fprintf(&cards, `
            <div className="bg-slate-800 rounded-2xl border border-%s-500/20 hover:border-%s-400/50 transition-all group overflow-hidden hover:-translate-y-1 hover:shadow-xl hover:shadow-%s-500/20 duration-300">
              <div className="h-40 bg-gradient-to-br from-%s-600/30 to-%s-600/30 flex items-center justify-center"><span className="text-5xl group-hover:scale-125 transition-transform duration-300">%s</span></div>
              <div className="p-6 text-center">
                <h3 className="font-bold text-white text-lg mb-1">%s</h3>
                <p className="text-%s-400 text-sm mb-4">%s</p>
                <CTAButton text="Bet Now" variant="secondary" />
              </div>
            </div>`, c.p, c.p, c.p, c.p, c.a, s.icon, s.name, c.bg, s.desc)
	}
	grid := fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container">
          <h2 className="text-3xl font-bold text-center text-%s-400 mb-12">Sports & eSports</h2>
          <div className="grid sm:grid-cols-2 lg:grid-cols-4 gap-6">%s
          </div>
        </div>
      </section>`, c.p, cards.String())

	return join(hero, grid, c.renderSections(secs, 0), c.bottomCTA())
}

func (c renderCtx) loginBody(in PageInput, hero string, secs []templates.Section) string {
	lead := ""
	rest := secs
	if len(secs) > 0 {
		lead = fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container max-w-xl mx-auto">
          <div className="p-8 md:p-12 rounded-3xl bg-slate-800/90 border border-%s-500/30 text-center shadow-xl shadow-%s-500/10">
            <span className="text-5xl block mb-4">🔒</span>
            <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
            <p className="text-%s-300 mb-8">%s</p>
            <CTAButton text="%s" className="w-full" />
            <p className="text-%s-500 text-sm mt-6">New to %s? Registration takes under a minute.</p>
          </div>
        </div>
      </section>`, c.p, c.p, EscapeJSX(secs[0].Title), c.bg, EscapeJSX(Truncate(secs[0].Content, 200)), EscapeJSX(c.ctaText), c.bg, EscapeJSX(in.Brand))
		rest = secs[1:]
	}
	return join(hero, lead, c.renderSections(rest, 1), c.bottomCTA())
}

func (c renderCtx) contactBody(in PageInput, hero string, secs []templates.Section) string {
	take := 3
	if take > len(secs) {
		take = len(secs)
	}
	var cards strings.Builder
	for i, sec := range secs[:take] {
		fmt.Fprintf(&cards, `
            <div className="p-8 rounded-2xl bg-slate-800/80 border border-%s-500/20 text-center">
              <span className="text-4xl block mb-4">%s</span>
              <h3 className="text-xl font-bold text-white mb-3">%s</h3>
              <p className="text-%s-300 text-sm">%s</p>
            </div>`, c.p, emoji(i+2), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 140)))
	}
	grid := fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container">
          <h2 className="text-3xl font-bold text-center text-%s-400 mb-4">We Are Here to Help</h2>
          <p className="text-center text-%s-400 mb-12">Reach the %s team any time at %s.</p>
          <div className="grid md:grid-cols-%d gap-8">%s
          </div>
        </div>
      </section>`, c.p, c.bg, EscapeJSX(in.Brand), EscapeJSX(in.Domain), maxInt(take, 1), cards.String())

	rest := ""
	if len(secs) > take {
		rest = c.renderSections(secs[take:], take)
	}
	return join(hero, grid, rest, c.bottomCTA())
}

func (c renderCtx) accordionBody(hero string, secs []templates.Section) string {
	var items strings.Builder
	for _, sec := range secs {
		fmt.Fprintf(&items, `
            <details className="group rounded-2xl bg-slate-800/80 border border-%s-500/20 open:border-%s-400/50 transition-all">
              <summary className="cursor-pointer list-none p-6 flex items-center justify-between text-lg font-bold text-white">%s<span className="text-%s-400 group-open:rotate-45 transition-transform">+</span></summary>
              <div className="px-6 pb-6">%s</div>
            </details>`, c.p, c.p, EscapeJSX(sec.Title), c.p, c.listHTML(sec))
	}
	block := fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container max-w-3xl mx-auto">
          <h2 className="text-3xl font-bold text-center text-%s-400 mb-12">Good to Know</h2>
          <div className="space-y-4">%s
          </div>
        </div>
      </section>`, c.p, items.String())

	return join(hero, block, c.bottomCTA())
}

func (c renderCtx) timelineBody(hero string, secs []templates.Section) string {
	var items strings.Builder
	for i, sec := range secs {
		anim := sectionAnimClasses[mod(c.seed+int64(i)*3, len(sectionAnimClasses))]
		fmt.Fprintf(&items, `
            <div className="relative flex gap-6">
              <div className="absolute left-[11px] top-0 bottom-0 w-0.5 bg-gradient-to-b from-%s-500 via-%s-500 to-transparent"></div>
              <div className="flex-shrink-0 w-6 h-6 rounded-full bg-%s-500 border-4 border-slate-900 mt-1 %s"></div>
              <div className="pb-10">
                <h2 className="text-2xl font-bold text-%s-400 mb-3">%s</h2>
                %s
                %s
              </div>
            </div>`, c.p, c.a, c.p, anim, c.p, EscapeJSX(sec.Title), c.listHTML(sec), wrapIf(sec.HasCTA, `<div className="mt-4">`, c.ctaSecHTML(sec), `</div>`))
	}
	block := fmt.Sprintf(`      <section className="py-20 bg-slate-900/60">
        <div className="section-container max-w-2xl mx-auto">%s
        </div>
      </section>`, items.String())

	return join(hero, block, c.bottomCTA())
}

func (c renderCtx) bentoBody(hero string, secs []templates.Section) string {
	take := 5
	if take > len(secs) {
		take = len(secs)
	}
	var tiles strings.Builder
	for i, sec := range secs[:take] {
		span := ""
		if i == 0 {
			span = "col-span-2 row-span-2 "
		}
		fmt.Fprintf(&tiles, `
            <div className="%sp-6 rounded-2xl bg-slate-800/80 border border-%s-500/20 flex flex-col justify-center">
              <span className="text-4xl block mb-2">%s</span>
              <h2 className="text-lg font-bold text-white mb-1">%s</h2>
              <p className="text-%s-400 text-xs">%s</p>
            </div>`, span, c.p, emoji(i), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 80)))
	}
	grid := fmt.Sprintf(`      <section className="py-20 bg-slate-800/30">
        <div className="section-container">
          <div className="grid grid-cols-2 md:grid-cols-4 gap-4">%s
          </div>
        </div>
      </section>`, tiles.String())

	rest := ""
	if len(secs) > take {
		rest = c.renderSections(secs[take:], take)
	}
	return join(hero, grid, rest, c.bottomCTA())
}

func join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
