package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-sitegen/internal/templates"
)

// renderCtx carries the per-page values every fragment generator needs.
type renderCtx struct {
	p, a, bg string
	ctaText  string
	seed     int64
}

var sectionAnimClasses = []string{
	"animate-float", "animate-pulse", "animate-shimmer", "animate-bounce",
	"animate-glow", "animate-slide-up", "animate-wiggle", "animate-fade-in", "animate-scale-in",
}

func (c renderCtx) bgPattern(i int) string {
	patterns := []string{
		"bg-slate-800/50", "bg-slate-900/60", "bg-slate-800/30", "bg-slate-900/50", "bg-slate-800/40",
		"bg-slate-900/70", "bg-gradient-to-r from-slate-800/50 to-slate-900/50",
		"bg-gradient-to-b from-slate-800/40 to-slate-900/60",
		fmt.Sprintf("bg-gradient-to-br from-%s-900/10 to-slate-900/60", c.p),
		"bg-slate-800/60", "bg-slate-900/40", "bg-gradient-to-tr from-slate-800/60 to-slate-900/50",
	}
	return patterns[mod(c.seed+int64(i)*11, len(patterns))]
}

// listHTML renders a section body: list blocks become a check-marked ul,
// prose stays a paragraph.
func (c renderCtx) listHTML(sec templates.Section) string {
	if sec.Kind != templates.KindList {
		return fmt.Sprintf(`<p className="text-%s-300 leading-relaxed">%s</p>`, c.bg, EscapeJSX(sec.Content))
	}
	var items strings.Builder
	for _, line := range strings.Split(sec.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&items, `<li className="flex gap-2"><span className="text-%s-500">✓</span>%s</li>`, c.p, EscapeJSX(line))
	}
	return fmt.Sprintf(`<ul className="space-y-3 text-%s-300">%s</ul>`, c.bg, items.String())
}

func (c renderCtx) listGridHTML(sec templates.Section) string {
	if sec.Kind != templates.KindList {
		return fmt.Sprintf(`<p className="text-%s-300 leading-relaxed text-lg">%s</p>`, c.bg, EscapeJSX(sec.Content))
	}
	var items strings.Builder
	for _, line := range strings.Split(sec.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&items, `<div className="flex gap-2 text-%s-300"><span className="text-%s-500 flex-shrink-0">✓</span>%s</div>`, c.bg, c.p, EscapeJSX(line))
	}
	return fmt.Sprintf(`<div className="grid sm:grid-cols-2 gap-3">%s</div>`, items.String())
}

func (c renderCtx) ctaHTML(sec templates.Section) string {
	if !sec.HasCTA {
		return ""
	}
	return fmt.Sprintf(`<div className="mt-6"><CTAButton text="%s" /></div>`, EscapeJSX(c.ctaText))
}

func (c renderCtx) ctaSecHTML(sec templates.Section) string {
	if !sec.HasCTA {
		return ""
	}
	return fmt.Sprintf(`<CTAButton text="%s" variant="secondary" />`, EscapeJSX(c.ctaText))
}

type sectionTemplate func(c renderCtx, sec templates.Section, idx int) string

var sectionTemplates = []sectionTemplate{
	func(c renderCtx, sec templates.Section, idx int) string {
		order, orderImg := "", ""
		if idx%2 != 0 {
			order, orderImg = "lg:order-2", " lg:order-1"
		}
		return fmt.Sprintf(`      <section className="py-16 %s">
        <div className="section-container">
          <div className="grid lg:grid-cols-2 gap-12 items-center">
            <div className="%s">
              <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
              %s%s
            </div>
            <div className="bg-gradient-to-br from-%s-500/10 to-%s-500/10 rounded-2xl aspect-video flex items-center justify-center border border-%s-500/20%s">
              <span className="text-6xl animate-float">%s</span>
            </div>
          </div>
        </div>
      </section>`, c.bgPattern(idx), order, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.p, c.a, c.p, orderImg, emoji(idx))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/60">
        <div className="section-container">
          <div className="bg-gradient-to-r from-%s-500/10 to-%s-500/10 rounded-2xl p-8 md:p-12 border border-%s-500/20">
            <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
            %s%s
          </div>
        </div>
      </section>`, c.p, c.a, c.p, c.p, EscapeJSX(sec.Title), c.listGridHTML(sec), c.ctaHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/30">
        <div className="section-container text-center max-w-3xl mx-auto">
          <span className="text-4xl block mb-4">%s</span>
          <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
          <p className="text-%s-300 leading-relaxed mb-6">%s</p>
          %s
        </div>
      </section>`, emoji(idx+3), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 200)), c.ctaSecHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/50">
        <div className="section-container max-w-4xl mx-auto">
          <div className="relative pl-8 border-l-2 border-%s-500/50">
            <div className="absolute -left-[9px] top-0 w-4 h-4 rounded-full bg-%s-500 border-2 border-slate-900"></div>
            <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
            %s
            %s
          </div>
        </div>
      </section>`, c.p, c.p, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/40">
        <div className="section-container">
          <div className="grid sm:grid-cols-2 lg:grid-cols-4 gap-4">
            <div className="lg:col-span-2 p-6 rounded-2xl bg-slate-800/80 border border-%s-500/20">
              <span className="text-3xl block mb-3">%s</span>
              <h2 className="text-xl font-bold text-white mb-2">%s</h2>
              <p className="text-%s-400 text-sm">%s</p>
            </div>
            <div className="p-6 rounded-2xl bg-slate-800/60 border border-%s-500/20 flex items-center justify-center"><span className="text-5xl">%s</span></div>
            <div className="p-6 rounded-2xl bg-slate-800/60 border border-%s-500/20 flex items-center justify-center"><span className="text-5xl">%s</span></div>
            %s
          </div>
        </div>
      </section>`, c.p, emoji(idx+5), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 100)), c.a, emoji(idx+7), c.a, emoji(idx+9), wrapIf(sec.HasCTA, `<div className="lg:col-span-2 flex items-center justify-center">`, c.ctaSecHTML(sec), `</div>`))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/60">
        <div className="section-container">
          <div className="columns-1 md:columns-2 gap-8 space-y-6">
            <div className="break-inside-avoid p-6 rounded-2xl bg-slate-800/80 border border-%s-500/20">
              <h2 className="text-xl font-bold text-%s-400 mb-3">%s</h2>
              <p className="text-%s-300 text-sm leading-relaxed">%s</p>
              %s
            </div>
          </div>
        </div>
      </section>`, c.p, c.p, EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 150)), wrapIf(sec.HasCTA, `<div className="mt-4">`, c.ctaSecHTML(sec), `</div>`))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/30">
        <div className="section-container">
          <div className="grid grid-cols-1 md:grid-cols-3 gap-6">
            <div className="md:col-span-2 p-8 rounded-2xl bg-gradient-to-br from-%s-500/10 to-%s-500/10 border border-%s-500/20">
              <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
              %s
            </div>
            <div className="flex flex-col gap-4">
              <div className="flex-1 rounded-2xl bg-slate-800/80 border border-%s-500/20 flex items-center justify-center"><span className="text-5xl">%s</span></div>
              %s
            </div>
          </div>
        </div>
      </section>`, c.p, c.a, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.p, emoji(idx), c.ctaSecHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/50 relative overflow-hidden">
        <div className="absolute inset-0 bg-[radial-gradient(circle_at_20%%_80%%,rgba(251,191,36,0.08)_0%%,transparent_50%%)]"></div>
        <div className="section-container relative">
          <div className="flex flex-wrap gap-4">
            <div className="flex-1 min-w-[280px] p-6 rounded-2xl bg-slate-800/90 border border-%s-500/30 hover:border-%s-400/50 transition-all duration-300 shadow-lg hover:shadow-%s-500/20">
              <span className="text-4xl block mb-3 %s">%s</span>
              <h2 className="text-xl font-bold text-%s-400 mb-2">%s</h2>
              <p className="text-%s-300 text-sm leading-relaxed">%s</p>
              %s
            </div>
          </div>
        </div>
      </section>`, c.p, c.p, c.p, anim, emoji(idx+2), c.p, EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 120)), wrapIf(sec.HasCTA, `<div className="mt-4">`, c.ctaSecHTML(sec), `</div>`))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/40">
        <div className="section-container">
          <div className="grid grid-cols-2 md:grid-cols-5 gap-3">
            <div className="col-span-2 row-span-2 p-6 rounded-2xl bg-gradient-to-br from-%s-600/20 to-%s-600/20 border-2 border-%s-500/40 flex flex-col justify-center">
              <span className="text-5xl %s block mb-3">%s</span>
              <h2 className="text-xl font-bold text-white mb-2">%s</h2>
              <p className="text-%s-300 text-sm">%s</p>
            </div>
            <div className="p-4 rounded-xl bg-slate-800/80 border border-%s-500/20 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            <div className="p-4 rounded-xl bg-slate-800/80 border border-%s-500/20 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            <div className="p-4 rounded-xl bg-slate-800/80 border border-%s-500/20 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            <div className="p-4 rounded-xl bg-slate-800/80 border border-%s-500/20 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            %s
          </div>
        </div>
      </section>`, c.p, c.a, c.p, anim, emoji(idx), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 90)), c.p, emoji(idx+1), c.a, emoji(idx+2), c.p, emoji(idx+3), c.a, emoji(idx+4), wrapIf(sec.HasCTA, `<div className="col-span-2 flex items-center justify-center">`, c.ctaSecHTML(sec), `</div>`))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/60">
        <div className="section-container">
          <div className="max-w-2xl mx-auto">
            <div className="relative flex gap-6">
              <div className="absolute left-[11px] top-0 bottom-0 w-0.5 bg-gradient-to-b from-%s-500 via-%s-500 to-transparent"></div>
              <div className="flex-shrink-0 w-6 h-6 rounded-full bg-%s-500 border-4 border-slate-900 mt-1 %s"></div>
              <div className="pb-8">
                <h2 className="text-2xl font-bold text-%s-400 mb-3">%s</h2>
                %s
                %s
              </div>
            </div>
          </div>
        </div>
      </section>`, c.p, c.a, c.p, anim, c.p, EscapeJSX(sec.Title), c.listHTML(sec), wrapIf(sec.HasCTA, `<div className="mt-4">`, c.ctaSecHTML(sec), `</div>`))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 %s">
        <div className="section-container">
          <div className="grid md:grid-cols-3 gap-6">
            <div className="md:col-span-2 p-6 rounded-2xl bg-slate-800/70 border-l-4 border-%s-500">
              <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
              %s%s
            </div>
            <div className="p-6 rounded-2xl bg-gradient-to-b from-%s-500/20 to-%s-500/10 border border-%s-500/30 flex items-center justify-center">
              <span className="text-7xl %s">%s</span>
            </div>
          </div>
        </div>
      </section>`, c.bgPattern(idx), c.p, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.p, c.a, c.p, anim, emoji(idx+4))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/50">
        <div className="section-container">
          <div className="grid sm:grid-cols-2 md:grid-cols-4 gap-4">
            <div className="sm:col-span-2 p-6 rounded-2xl bg-slate-800/90 border border-%s-500/20">
              <span className="text-4xl block mb-3">%s</span>
              <h2 className="text-xl font-bold text-white mb-2">%s</h2>
              <p className="text-%s-400 text-sm">%s</p>
              %s
            </div>
            <div className="p-4 rounded-xl bg-slate-800/60 flex items-center justify-center"><span className="text-4xl">%s</span></div>
            <div className="p-4 rounded-xl bg-slate-800/60 flex items-center justify-center"><span className="text-4xl">%s</span></div>
          </div>
        </div>
      </section>`, c.p, emoji(idx), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 130)), wrapIf(sec.HasCTA, `<div className="mt-4">`, c.ctaSecHTML(sec), `</div>`), emoji(idx+1), emoji(idx+2))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/30">
        <div className="section-container max-w-5xl mx-auto">
          <div className="flex flex-col md:flex-row gap-8 items-start">
            <div className="flex-shrink-0 w-16 h-16 rounded-2xl bg-gradient-to-br from-%s-500 to-%s-600 flex items-center justify-center text-3xl">%s</div>
            <div className="flex-1">
              <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
              %s%s
            </div>
          </div>
        </div>
      </section>`, c.p, c.a, emoji(idx+6), EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 %s">
        <div className="section-container">
          <div className="max-w-3xl mx-auto text-center">
            <div className="inline-flex items-center justify-center w-20 h-20 rounded-full bg-%s-500/20 border-2 border-%s-500/50 mb-6">
              <span className="text-4xl">%s</span>
            </div>
            <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
            <p className="text-%s-300 leading-relaxed mb-6">%s</p>
            %s
          </div>
        </div>
      </section>`, c.bgPattern(idx), c.p, c.p, emoji(idx+8), c.p, EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 220)), wrapIf(sec.HasCTA, `<div className="mt-6">`, c.ctaSecHTML(sec), `</div>`))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/60">
        <div className="section-container">
          <div className="grid lg:grid-cols-2 gap-12">
            <div className="order-2 lg:order-1 p-8 rounded-2xl bg-slate-800/80 border border-%s-500/20">
              <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
              %s%s
            </div>
            <div className="order-1 lg:order-2 flex items-center justify-center">
              <div className="w-48 h-48 rounded-3xl bg-gradient-to-br from-%s-500/30 to-%s-500/30 border-2 border-%s-500/40 flex items-center justify-center %s">
                <span className="text-7xl">%s</span>
              </div>
            </div>
          </div>
        </div>
      </section>`, c.p, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.p, c.a, c.p, anim, emoji(idx+10))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/40">
        <div className="section-container">
          <div className="relative pl-8">
            <div className="absolute left-0 top-0 bottom-0 w-1 bg-gradient-to-b from-%s-500 to-%s-500 rounded-full"></div>
            <div className="absolute left-[-4px] top-2 w-3 h-3 rounded-full bg-%s-500 border-2 border-slate-900 %s"></div>
            <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
            %s%s
          </div>
        </div>
      </section>`, c.p, c.a, c.p, anim, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 %s">
        <div className="section-container">
          <div className="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6">
            <div className="lg:col-span-2 p-8 rounded-2xl bg-slate-800/80 border border-%s-500/20">
              <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
              %s%s
            </div>
            <div className="p-6 rounded-2xl bg-gradient-to-br from-%s-500/10 to-%s-500/10 border border-%s-500/30 flex flex-col items-center justify-center">
              <span className="text-6xl mb-4">%s</span>
              <p className="text-%s-400 text-sm text-center">%s</p>
            </div>
          </div>
        </div>
      </section>`, c.bgPattern(idx), c.p, EscapeJSX(sec.Title), c.listGridHTML(sec), c.ctaHTML(sec), c.p, c.a, c.p, emoji(idx+3), c.bg, EscapeJSX(Truncate(sec.Content, 60)))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/50">
        <div className="section-container">
          <div className="flex flex-col md:flex-row md:items-stretch gap-6">
            <div className="flex-1 p-8 rounded-2xl bg-slate-800/90 border-t-4 border-%s-500">
              <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
              %s%s
            </div>
            <div className="w-full md:w-48 rounded-2xl bg-slate-800/60 border border-%s-500/30 flex items-center justify-center shrink-0">
              <span className="text-6xl">%s</span>
            </div>
          </div>
        </div>
      </section>`, c.p, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.a, emoji(idx+5))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/30">
        <div className="section-container">
          <div className="grid grid-cols-2 md:grid-cols-6 gap-4 auto-rows-[120px]">
            <div className="col-span-2 row-span-2 p-6 rounded-2xl bg-slate-800/80 border border-%s-500/20 flex flex-col justify-center">
              <span className="text-4xl block mb-2">%s</span>
              <h2 className="text-lg font-bold text-white mb-1">%s</h2>
              <p className="text-%s-400 text-xs">%s</p>
              %s
            </div>
            <div className="p-4 rounded-xl bg-slate-800/60 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            <div className="p-4 rounded-xl bg-slate-800/60 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            <div className="col-span-2 p-4 rounded-xl bg-slate-800/60 flex items-center justify-center"><span className="text-3xl">%s</span></div>
            <div className="p-4 rounded-xl bg-slate-800/60 flex items-center justify-center"><span className="text-3xl">%s</span></div>
          </div>
        </div>
      </section>`, c.p, emoji(idx), EscapeJSX(sec.Title), c.bg, EscapeJSX(Truncate(sec.Content, 80)), wrapIf(sec.HasCTA, `<div className="mt-3">`, c.ctaSecHTML(sec), `</div>`), emoji(idx+1), emoji(idx+2), emoji(idx+3), emoji(idx+4))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		anim := sectionAnimClasses[mod(c.seed+int64(idx)*3, len(sectionAnimClasses))]
		return fmt.Sprintf(`      <section className="py-16 %s">
        <div className="section-container max-w-4xl mx-auto">
          <div className="p-8 md:p-12 rounded-3xl bg-slate-800/80 border-2 border-%s-500/30 shadow-xl shadow-%s-500/10">
            <div className="flex items-start gap-6">
              <span className="text-5xl flex-shrink-0 %s">%s</span>
              <div>
                <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
                %s%s
              </div>
            </div>
          </div>
        </div>
      </section>`, c.bgPattern(idx), c.p, c.p, anim, emoji(idx+7), c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/60">
        <div className="section-container">
          <div className="grid md:grid-cols-2 gap-8">
            <div className="p-8 rounded-2xl bg-gradient-to-br from-slate-800 to-slate-800/50 border border-%s-500/20">
              <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
              %s%s
            </div>
            <div className="p-8 rounded-2xl bg-gradient-to-br from-slate-800 to-slate-800/50 border border-%s-500/20">
              <div className="flex items-center gap-4 mb-4">
                <span className="text-5xl">%s</span>
                <p className="text-%s-300">%s</p>
              </div>
              %s
            </div>
          </div>
        </div>
      </section>`, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.a, emoji(idx+9), c.bg, EscapeJSX(Truncate(sec.Content, 100)), c.ctaSecHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-800/40">
        <div className="section-container">
          <div className="flex flex-wrap -mx-4">
            <div className="w-full lg:w-2/3 px-4">
              <div className="p-8 rounded-2xl bg-slate-800/90 border-r-4 border-%s-500">
                <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
                %s%s
              </div>
            </div>
            <div className="w-full lg:w-1/3 px-4 mt-6 lg:mt-0 flex items-center justify-center">
              <div className="rounded-2xl bg-%s-500/20 p-8 border border-%s-500/40">
                <span className="text-6xl block">%s</span>
              </div>
            </div>
          </div>
        </div>
      </section>`, c.p, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.p, c.p, emoji(idx+11))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 %s">
        <div className="section-container">
          <div className="max-w-2xl">
            <div className="border-l-4 border-%s-500 pl-8 py-4">
              <h2 className="text-2xl font-bold text-%s-400 mb-4">%s</h2>
              %s%s
            </div>
          </div>
        </div>
      </section>`, c.bgPattern(idx), c.p, c.p, EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec))
	},
	func(c renderCtx, sec templates.Section, idx int) string {
		return fmt.Sprintf(`      <section className="py-16 bg-slate-900/50">
        <div className="section-container">
          <div className="grid grid-cols-1 md:grid-cols-5 gap-6">
            <div className="md:col-span-3 p-8 rounded-2xl bg-slate-800/80 border border-%s-500/20">
              <span className="text-4xl block mb-4">%s</span>
              <h2 className="text-2xl font-bold text-white mb-4">%s</h2>
              %s%s
            </div>
            <div className="md:col-span-2 grid grid-cols-2 gap-4">
              <div className="rounded-xl bg-slate-800/60 border border-%s-500/20 flex items-center justify-center"><span className="text-4xl">%s</span></div>
              <div className="rounded-xl bg-slate-800/60 border border-%s-500/20 flex items-center justify-center"><span className="text-4xl">%s</span></div>
            </div>
          </div>
        </div>
      </section>`, c.p, emoji(idx), EscapeJSX(sec.Title), c.listHTML(sec), c.ctaHTML(sec), c.p, emoji(idx+1), c.a, emoji(idx+2))
	},
}

// renderSections renders a run of sections, rotating through the template
// pool from the page seed so repeated generations stay deterministic while
// neighboring sections differ.
func (c renderCtx) renderSections(secs []templates.Section, startIdx int) string {
	var out []string
	for i, sec := range secs {
		idx := startIdx + i
		tmpl := sectionTemplates[mod(c.seed*31+int64(i)*17+int64(idx)*7, len(sectionTemplates))]
		out = append(out, tmpl(c, sec, idx))
	}
	return strings.Join(out, "\n")
}

func wrapIf(cond bool, open, inner, closing string) string {
	if !cond {
		return ""
	}
	return open + inner + closing
}
