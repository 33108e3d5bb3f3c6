package render

import (
	"fmt"
	"strings"
)

// PageRef identifies a routed page inside the generated app.
type PageRef struct {
	Name      string
	Component string
	Path      string
}

// SiteInput carries the site-wide values shared components are built from.
type SiteInput struct {
	Brand    string
	Domain   string
	OfferURL string
	Pages    []PageRef
	Colors   ColorScheme
	Fonts    FontSet
	LogoPath string
}

// RenderApp emits src/App.jsx with one route per page.
func RenderApp(in SiteInput) string {
	var imports, routes strings.Builder
	for _, page := range in.Pages {
		fmt.Fprintf(&imports, "import %s from './pages/%s';\n", page.Component, page.Component)
		fmt.Fprintf(&routes, "        <Route path=\"%s\" element={<%s />} />\n", page.Path, page.Component)
	}
	return fmt.Sprintf(`import { Routes, Route } from 'react-router-dom';
import Header from './components/Header';
import Footer from './components/Footer';
import Ticker from './components/Ticker';
%s
export default function App() {
  return (
    <div className="min-h-screen flex flex-col flex-wrap">
      <main className="flex-1 w-full order-3 min-h-[60vh]"><Routes>
%s      </Routes></main>
      <Header />
      <nav className="w-full order-2 shrink-0"><Ticker /></nav>
      <aside className="w-full order-4 shrink-0" aria-hidden="true"></aside>
      <Footer />
    </div>
  );
}
`, imports.String(), routes.String())
}

// RenderMain emits src/main.jsx.
func RenderMain() string {
	return `import React from 'react';
import ReactDOM from 'react-dom/client';
import { BrowserRouter } from 'react-router-dom';
import { HelmetProvider } from 'react-helmet-async';
import App from './App';
import './index.css';

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <HelmetProvider>
      <BrowserRouter>
        <App />
      </BrowserRouter>
    </HelmetProvider>
  </React.StrictMode>
);
`
}

// RenderHeader emits the sticky header with desktop and mobile navigation.
func RenderHeader(in SiteInput) string {
	p, bg := in.Colors.Primary, in.Colors.Bg
	var navLinks, mobileLinks strings.Builder
	for _, page := range in.Pages {
		fmt.Fprintf(&navLinks, "          <Link to=\"%s\" className=\"text-%s-300 hover:text-%s-400 font-semibold transition-colors\">%s</Link>\n", page.Path, bg, p, page.Name)
		fmt.Fprintf(&mobileLinks, "            <Link to=\"%s\" onClick={() => setOpen(false)} className=\"block py-2 text-%s-300 hover:text-%s-400 font-semibold\">%s</Link>\n", page.Path, bg, p, page.Name)
	}

	logoEl := fmt.Sprintf(`<Link to="/" className="text-2xl font-black text-transparent bg-clip-text bg-gradient-to-r from-%s-400 to-%s-600 hover:from-%s-300 hover:to-%s-500 transition-all">%s</Link>`, p, p, p, p, in.Brand)
	if in.LogoPath != "" {
		logoEl = fmt.Sprintf(`<Link to="/" className="flex items-center shrink-0"><img src="%s" alt="%s" className="h-10 w-auto max-w-[180px] object-contain" /></Link>`, in.LogoPath, in.Brand)
	}

	return fmt.Sprintf(`import { useState } from 'react';
import { Link } from 'react-router-dom';

export default function Header() {
  const [open, setOpen] = useState(false);

  return (
    <header className="w-full order-1 shrink-0 bg-slate-900/95 backdrop-blur-sm border-b border-%s-500/30 sticky top-0 z-50 shadow-lg shadow-%s-500/10">
      <div className="section-container">
        <div className="flex items-center justify-between h-16">
          %s
          <nav className="hidden md:flex items-center gap-6">
%s            <a href="%s" target="_blank" rel="noopener noreferrer" className="btn-primary text-sm !py-2 !px-5">Play Now</a>
          </nav>
          <button onClick={() => setOpen(!open)} className="md:hidden p-2 text-%s-400" aria-label="Toggle menu">
            <svg className="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24">
              {open ? <path strokeLinecap="round" strokeLinejoin="round" strokeWidth={2} d="M6 18L18 6M6 6l12 12" /> : <path strokeLinecap="round" strokeLinejoin="round" strokeWidth={2} d="M4 6h16M4 12h16M4 18h16" />}
            </svg>
          </button>
        </div>
        {open && (
          <nav className="md:hidden pb-4 border-t border-%s-500/30 pt-4">
%s            <a href="%s" target="_blank" rel="noopener noreferrer" className="btn-primary text-sm mt-3 text-center block">Play Now</a>
          </nav>
        )}
      </div>
    </header>
  );
}
`, p, p, logoEl, navLinks.String(), in.OfferURL, p, p, mobileLinks.String(), in.OfferURL)
}

// RenderFooter emits the three-column footer with the responsible-play
// notice.
func RenderFooter(in SiteInput) string {
	p, bg := in.Colors.Primary, in.Colors.Bg
	var links strings.Builder
	for _, page := range in.Pages {
		fmt.Fprintf(&links, "            <Link to=\"%s\" className=\"text-%s-400 hover:text-white transition-colors\">%s</Link>\n", page.Path, bg, page.Name)
	}

	brandEl := fmt.Sprintf(`<h3 className="text-xl font-bold text-%s-400 mb-3">%s</h3>`, p, in.Brand)
	if in.LogoPath != "" {
		brandEl = fmt.Sprintf(`<Link to="/" className="inline-block mb-3"><img src="%s" alt="%s" className="h-10 w-auto max-w-[160px] object-contain opacity-90 hover:opacity-100 transition-opacity" /></Link>`, in.LogoPath, in.Brand)
	}

	return fmt.Sprintf(`import { Link } from 'react-router-dom';

export default function Footer() {
  return (
    <footer className="w-full order-5 shrink-0 bg-slate-950 border-t border-%s-500/20 text-white">
      <div className="section-container py-12">
        <div className="grid grid-cols-1 md:grid-cols-3 gap-8">
          <div>
            %s
            <p className="text-%s-400">Play responsibly. 18+ only. Visit %s.</p>
          </div>
          <div>
            <h4 className="font-semibold mb-3 text-%s-300">Quick Links</h4>
            <div className="flex flex-col gap-2">
%s            </div>
          </div>
          <div>
            <h4 className="font-semibold mb-3 text-%s-300">Contact</h4>
            <p className="text-%s-400">%s</p>
          </div>
        </div>
        <div className="border-t border-slate-700 mt-8 pt-8 text-center text-%s-500 text-sm">&copy; {new Date().getFullYear()} %s. 18+ Play responsibly.</div>
      </div>
    </footer>
  );
}
`, p, brandEl, bg, in.Domain, p, links.String(), p, bg, in.Domain, bg, in.Brand)
}

// RenderCTAButton emits the shared call-to-action component pointing at the
// offer URL.
func RenderCTAButton(in SiteInput) string {
	return fmt.Sprintf(`export default function CTAButton({ text = 'Play Now', variant = 'primary', className = '' }) {
  const base = variant === 'primary' ? 'btn-primary' : 'btn-secondary';
  return (
    <a href="%s" target="_blank" rel="noopener noreferrer" className={`+"`${base} ${className}`"+`}>
      {text}
    </a>
  );
}
`, in.OfferURL)
}

// RenderSEOHead emits the Helmet wrapper pages feed their meta tags through.
func RenderSEOHead() string {
	return `import { Helmet } from 'react-helmet-async';

export default function SEOHead({ title, description, keywords, canonical, ogTags = {} }) {
  return (
    <Helmet>
      <title>{title}</title>
      <meta name="description" content={description} />
      {keywords && <meta name="keywords" content={keywords} />}
      {canonical && <link rel="canonical" href={canonical} />}
      {Object.entries(ogTags).filter(([, v]) => v).map(([key, value]) =>
        key.startsWith('og:') ? <meta key={key} property={key} content={value} /> : <meta key={key} name={key} content={value} />
      )}
    </Helmet>
  );
}
`
}

// RenderTicker emits the scrolling winners strip shown under the header.
func RenderTicker(in SiteInput) string {
	p, bg := in.Colors.Primary, in.Colors.Bg
	return fmt.Sprintf(`const ITEMS = [
  { pair: 'Lucky7', value: '₹48,200', change: '+12%%' },
  { pair: 'MegaSpin', value: '₹1,05,900', change: '+31%%' },
  { pair: 'GoldRush', value: '₹23,750', change: '+8%%' },
  { pair: 'StarBurst', value: '₹87,400', change: '+19%%' },
  { pair: 'JackpotX', value: '₹2,40,000', change: '+54%%' },
  { pair: 'SpinKing', value: '₹64,100', change: '+15%%' }
];

function TickerItem({ pair, value, change }) {
  return (
    <span className="inline-flex items-center gap-2 px-6 text-sm whitespace-nowrap">
      <span className="font-bold text-%s-400">{pair}</span>
      <span className="text-%s-300">{value}</span>
      <span className="text-emerald-400">{change}</span>
    </span>
  );
}

export default function Ticker() {
  const row = ITEMS.concat(ITEMS);
  return (
    <div className="w-full overflow-hidden bg-slate-950/90 border-b border-%s-500/20 py-2">
      <div className="flex animate-ticker w-max">
        {row.map((item, i) => <TickerItem key={i} {...item} />)}
      </div>
    </div>
  );
}
`, p, bg, p)
}

// RenderIndexHTML emits the Vite entry document with the font preloads.
func RenderIndexHTML(in SiteInput) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>%s</title>
  <link rel="icon" type="image/svg+xml" href="/favicon.svg" />
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="%s" rel="stylesheet">
</head>
<body>
  <div id="root"></div>
  <script type="module" src="/src/main.jsx"></script>
</body>
</html>
`, in.Brand, in.Fonts.URL)
}

// RenderFavicon emits a single-letter SVG favicon.
func RenderFavicon(brand string) string {
	initial := ""
	for _, r := range brand {
		initial = string(r)
		break
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">%s</text></svg>`, initial)
}

// RenderCSS emits src/index.css: tailwind layers, button components, and the
// animation keyframes the section templates reference.
func RenderCSS(colors ColorScheme, fonts FontSet) string {
	return fmt.Sprintf(`@tailwind base;
@tailwind components;
@tailwind utilities;

@layer base {
  html { scroll-behavior: smooth; font-size: 17px; }
  body { @apply bg-%s-900 text-%s-100 antialiased text-base; font-family: %s; }
  p, li, span { @apply text-base leading-relaxed; }
  h1 { @apply text-4xl md:text-5xl lg:text-6xl; }
  h2 { @apply text-2xl md:text-3xl; }
  h3 { @apply text-lg md:text-xl; }
}

@layer components {
  .btn-primary {
    @apply inline-block px-8 py-3.5 bg-gradient-to-r from-%s-500 to-%s-500 text-white font-bold rounded-xl text-base
           transition-all duration-300 shadow-lg shadow-%s-500/30 hover:shadow-xl hover:shadow-%s-500/40
           hover:-translate-y-0.5 hover:scale-105 active:translate-y-0;
  }
  .btn-secondary {
    @apply inline-block px-8 py-3.5 border-2 border-%s-400 text-%s-300
           font-bold rounded-xl text-base hover:bg-%s-500/20 hover:text-white
           transition-all duration-300;
  }
  .section-container {
    @apply max-w-7xl mx-auto px-4 sm:px-6 lg:px-8;
  }
  .glow {
    box-shadow: 0 0 20px rgba(251, 191, 36, 0.3), 0 0 40px rgba(251, 191, 36, 0.1);
  }
}

@keyframes ticker { 0%% { transform: translateX(0); } 100%% { transform: translateX(-50%%); } }
@keyframes shimmer { 0%%, 100%% { opacity: 1; } 50%% { opacity: 0.7; } }
@keyframes float { 0%%, 100%% { transform: translateY(0); } 50%% { transform: translateY(-10px); } }
@keyframes slide-up { 0%% { opacity: 0; transform: translateY(20px); } 100%% { opacity: 1; transform: translateY(0); } }
@keyframes glow { 0%%, 100%% { filter: drop-shadow(0 0 10px rgba(251,191,36,0.5)); } 50%% { filter: drop-shadow(0 0 20px rgba(251,191,36,0.8)); } }
@keyframes wiggle { 0%%, 100%% { transform: rotate(0deg); } 25%% { transform: rotate(-3deg); } 75%% { transform: rotate(3deg); } }
@keyframes fade-in { from { opacity: 0; transform: translateY(16px); } to { opacity: 1; transform: translateY(0); } }
@keyframes scale-in { from { opacity: 0; transform: scale(0.9); } to { opacity: 1; transform: scale(1); } }
`, colors.Bg, colors.Bg, fonts.Family,
		colors.Primary, colors.Accent, colors.Primary, colors.Primary,
		colors.Primary, colors.Primary, colors.Primary)
}
