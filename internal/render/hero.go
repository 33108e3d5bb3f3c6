package render

import "fmt"

// heroBlock renders the page hero. The variant rotates with the page seed:
// left-aligned, centered, split, badge, and pill intros over either the hero
// image or a palette gradient.
func (c renderCtx) heroBlock(pageName, heroTitle, heroSub, imgTag string) string {
	variant := mod(c.seed, 5)
	animClass := []string{"animate-fade-in", "animate-scale-in", "animate-slide-up", "animate-fade-in", "animate-scale-in"}[variant]

	gradients := []string{
		"bg-gradient-to-r from-slate-900/90 via-slate-900/70 to-transparent",
		"bg-gradient-to-b from-slate-900/80 via-slate-900/60 to-slate-900",
		fmt.Sprintf("bg-gradient-to-tr from-slate-900/95 via-%s-900/40 to-transparent", c.p),
		fmt.Sprintf("bg-gradient-to-bl from-%s-900/50 via-slate-900/80 to-slate-900", c.p),
		fmt.Sprintf("bg-gradient-to-r from-slate-900 via-slate-900/50 to-%s-900/30", c.a),
	}
	decorators := []string{
		fmt.Sprintf(`<div className="absolute inset-0 bg-[radial-gradient(ellipse_at_top_right,_var(--tw-gradient-stops))] from-%s-500/10 via-transparent to-transparent"></div>`, c.p),
		fmt.Sprintf(`<div className="absolute top-0 right-0 w-[500px] h-[500px] rounded-full bg-%s-500/5 blur-3xl"></div><div className="absolute bottom-0 left-0 w-[400px] h-[400px] rounded-full bg-%s-500/5 blur-3xl"></div>`, c.p, c.a),
		`<div className="absolute inset-0 bg-[linear-gradient(135deg,transparent_40%,rgba(251,191,36,0.05)_60%,transparent_80%)]"></div>`,
		fmt.Sprintf(`<div className="absolute top-20 right-20 w-32 h-32 border border-%s-500/20 rounded-full animate-pulse"></div><div className="absolute bottom-20 left-20 w-48 h-48 border border-%s-500/10 rounded-full animate-float"></div>`, c.p, c.a),
		`<div className="absolute inset-0 bg-[radial-gradient(circle_at_30%_40%,rgba(251,191,36,0.08)_0%,transparent_50%)]"></div>`,
	}

	cta := EscapeJSX(c.ctaText)
	intros := []string{
		fmt.Sprintf(`<div className="section-container relative z-10 py-20"><div className="max-w-2xl %s"><h1 className="text-5xl md:text-6xl font-extrabold text-white mb-6 leading-tight drop-shadow-lg">%s</h1><p className="text-xl text-%s-200 mb-10 leading-relaxed">%s</p><div className="flex flex-wrap gap-4"><CTAButton text="%s" /><CTAButton text="Learn More" variant="secondary" /></div></div></div>`,
			animClass, heroTitle, c.bg, heroSub, cta),
		fmt.Sprintf(`<div className="section-container relative z-10 py-20 text-center"><div className="max-w-3xl mx-auto %s"><h1 className="text-5xl md:text-6xl font-extrabold text-white mb-6 leading-tight">%s</h1><p className="text-xl text-%s-200 mb-10 leading-relaxed max-w-2xl mx-auto">%s</p><div className="flex flex-wrap gap-4 justify-center"><CTAButton text="%s" /><CTAButton text="Learn More" variant="secondary" /></div></div></div>`,
			animClass, heroTitle, c.bg, heroSub, cta),
		fmt.Sprintf(`<div className="section-container relative z-10 py-20"><div className="grid lg:grid-cols-2 gap-12 items-center"><div className="%s"><h1 className="text-4xl md:text-5xl font-extrabold text-white mb-6 leading-tight">%s</h1><p className="text-lg text-%s-200 mb-8 leading-relaxed">%s</p><div className="flex flex-wrap gap-4"><CTAButton text="%s" /><CTAButton text="Learn More" variant="secondary" /></div></div><div className="hidden lg:flex items-center justify-center"><span className="text-8xl animate-float">%s</span></div></div></div>`,
			animClass, heroTitle, c.bg, heroSub, cta, emoji(int(c.seed))),
		fmt.Sprintf(`<div className="section-container relative z-10 py-24"><div className="max-w-xl %s"><span className="text-6xl block mb-6 animate-wiggle">%s</span><h1 className="text-4xl md:text-5xl font-extrabold text-white mb-6 leading-tight">%s</h1><p className="text-lg text-%s-200 mb-8 leading-relaxed">%s</p><CTAButton text="%s" /></div></div>`,
			animClass, emoji(int(c.seed)+3), heroTitle, c.bg, heroSub, cta),
		fmt.Sprintf(`<div className="section-container relative z-10 py-20 text-center"><div className="%s"><div className="inline-block px-6 py-2 rounded-full border border-%s-500/30 text-%s-400 text-sm font-semibold mb-6 animate-shimmer">%s %s %s</div><h1 className="text-5xl md:text-6xl font-extrabold text-white mb-6 leading-tight">%s</h1><p className="text-xl text-%s-200 mb-10 leading-relaxed max-w-2xl mx-auto">%s</p><div className="flex flex-wrap gap-4 justify-center"><CTAButton text="%s" /><CTAButton text="Learn More" variant="secondary" /></div></div></div>`,
			animClass, c.p, c.p, emoji(int(c.seed)), EscapeJSX(pageName), emoji(int(c.seed)+1), heroTitle, c.bg, heroSub, cta),
	}

	backdrop := fmt.Sprintf(`<div className="absolute inset-0 bg-gradient-to-br from-%s-800 via-slate-900 to-%s-900"></div>`, c.p, c.a)
	if imgTag != "" {
		backdrop = fmt.Sprintf(`<div className="absolute inset-0">%s /><div className="absolute inset-0 %s"></div></div>`, imgTag, gradients[variant])
	}

	return fmt.Sprintf(`      <section className="relative min-h-[550px] flex items-center overflow-hidden">
        %s
        %s
        %s
      </section>`, backdrop, decorators[variant], intros[variant])
}

// statsBlock renders the trust band under the hero. Three visual variants
// keyed off the page seed.
func (c renderCtx) statsBlock() string {
	variant := mod(c.seed, 3)
	styles := []string{
		fmt.Sprintf("py-14 bg-gradient-to-r from-%s-600/20 via-slate-800 to-%s-600/20 border-y border-%s-500/20", c.p, c.a, c.p),
		fmt.Sprintf("py-14 bg-slate-800/80 border-y border-%s-500/30", c.p),
		"py-16 bg-gradient-to-b from-slate-900 to-slate-800/50",
	}
	card := func(val, label string) string {
		switch variant {
		case 1:
			return fmt.Sprintf(`<div className="p-4 rounded-xl border border-%s-500/20 bg-slate-800/60"><p className="text-3xl font-extrabold text-%s-400">%s</p><p className="text-%s-400 mt-1 text-sm">%s</p></div>`, c.p, c.p, val, c.bg, label)
		case 2:
			return fmt.Sprintf(`<div className="flex flex-col items-center"><p className="text-4xl font-extrabold text-transparent bg-clip-text bg-gradient-to-r from-%s-400 to-%s-400">%s</p><p className="text-%s-400 mt-2">%s</p></div>`, c.p, c.a, val, c.bg, label)
		default:
			return fmt.Sprintf(`<div><p className="text-4xl font-extrabold text-%s-400">%s</p><p className="text-%s-400 mt-1">%s</p></div>`, c.p, val, c.bg, label)
		}
	}

	return fmt.Sprintf(`      <section className="%s">
        <div className="section-container">
          <div className="grid grid-cols-2 md:grid-cols-4 gap-8 text-center">
            %s
            %s
            %s
            %s
          </div>
        </div>
      </section>`, styles[variant],
		card("1500+", "Games"), card("90s", "Withdrawal"), card("250%", "Welcome Bonus"), card("24/7", "Support"))
}

// bottomCTA closes every page with the final conversion band.
func (c renderCtx) bottomCTA() string {
	return fmt.Sprintf(`      <section className="py-20 bg-gradient-to-r from-%s-600 via-%s-700 to-%s-600 text-white relative overflow-hidden">
        <div className="absolute inset-0 animate-pulse opacity-20 bg-white/10"></div>
        <div className="absolute top-1/2 left-1/2 -translate-x-1/2 -translate-y-1/2 w-96 h-96 rounded-full bg-%s-400/20 blur-3xl animate-pulse"></div>
        <div className="section-container text-center relative z-10">
          <h2 className="text-3xl md:text-4xl font-bold mb-6 drop-shadow-lg">Ready to Play?</h2>
          <p className="text-xl text-%s-100 mb-8 max-w-2xl mx-auto">
            Join thousands of winners. Claim your bonus and spin the reels today!
          </p>
          <CTAButton text="%s" />
        </div>
      </section>`, c.p, c.p, c.a, c.p, c.p, EscapeJSX(c.ctaText))
}
