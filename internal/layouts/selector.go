// Package layouts maps page names to the JSX layout variants the renderer
// knows how to emit.
package layouts

import "strings"

// Layout names a page layout variant understood by the renderer.
type Layout string

const (
	CasinoHome     Layout = "casino-home"
	CasinoGames    Layout = "casino-games"
	CasinoBonuses  Layout = "casino-bonuses"
	CasinoApp      Layout = "casino-app"
	CasinoAviator  Layout = "casino-aviator"
	CasinoBetting  Layout = "casino-betting"
	CasinoLogin    Layout = "casino-login"
	ContactCards   Layout = "contact-cards"
	Accordion      Layout = "accordion"
	CasinoTimeline Layout = "casino-timeline"
	CasinoBento    Layout = "casino-bento"
	CasinoSections Layout = "casino-sections"
)

// pageLayouts pins well-known page names to a dedicated layout.
var pageLayouts = map[string]Layout{
	"casino":      CasinoHome,
	"home":        CasinoHome,
	"games":       CasinoGames,
	"slots":       CasinoGames,
	"live casino": CasinoGames,
	"bonuses":     CasinoBonuses,
	"promotions":  CasinoBonuses,
	"mobile app":  CasinoApp,
	"app":         CasinoApp,
	"aviator":     CasinoAviator,
	"betting":     CasinoBetting,
	"login":       CasinoLogin,
	"contact":     ContactCards,
	"faq":         Accordion,
}

// fallbacks is the rotation used for pages without a pinned layout. Order
// matters: the seed formula indexes into it.
var fallbacks = []Layout{
	CasinoSections,
	CasinoTimeline,
	CasinoBento,
	CasinoGames,
	CasinoBonuses,
	ContactCards,
	Accordion,
	CasinoApp,
	CasinoBetting,
	CasinoAviator,
}

// Select resolves the layout for a page. Known page names get their pinned
// layout; everything else rotates through the fallback list deterministically
// from the project seed, the page's position, and the page count, so two
// unknown pages in one project land on different layouts.
func Select(pageName string, index, total int, seed int64) Layout {
	if layout, ok := pageLayouts[strings.ToLower(strings.TrimSpace(pageName))]; ok {
		return layout
	}
	n := (seed + int64(index)*13 + int64(total)*7) % int64(len(fallbacks))
	if n < 0 {
		n += int64(len(fallbacks))
	}
	return fallbacks[n]
}
