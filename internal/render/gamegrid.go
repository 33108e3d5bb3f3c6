package render

import (
	"encoding/json"
	"fmt"
)

// Game is one tile in the shared GameGrid component.
type Game struct {
	Src  string `json:"src"`
	Name string `json:"name"`
}

// RenderGameGrid emits src/components/GameGrid.jsx. Tiles link to the offer
// URL and load artwork bundled under public/games.
func RenderGameGrid(in SiteInput, games []Game) string {
	gamesJSON, _ := json.Marshal(games)
	siteURL := SiteURL(in.Domain)
	p := in.Colors.Primary

	return fmt.Sprintf(`const GAMES = %s;
const SITE_URL = %q;

export default function GameGrid() {
  return (
    <section className="py-16 bg-slate-900/60">
      <div className="section-container">
        <h2 className="text-3xl font-bold text-center text-%s-400 mb-10">Popular Games</h2>
        <div className="grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-5 gap-5">
          {GAMES.map((g, i) => (
            <a
              key={i}
              href="%s"
              target="_blank"
              rel="noopener noreferrer"
              className="group block rounded-2xl overflow-hidden border border-%s-500/20 hover:border-%s-400 hover:shadow-2xl hover:shadow-%s-500/30 transition-all duration-300 hover:-translate-y-1"
            >
              <div className="aspect-square bg-slate-800 overflow-hidden relative">
                <img src={g.src} alt={g.name} data-site={SITE_URL} className="w-full h-full object-cover group-hover:scale-110 transition-transform duration-500" />
                <div className="absolute inset-0 bg-gradient-to-t from-black/70 via-transparent to-transparent opacity-0 group-hover:opacity-100 transition-opacity duration-300 flex items-end justify-center pb-4">
                  <span className="bg-gradient-to-r from-%s-500 to-%s-600 text-white text-sm font-bold px-5 py-2 rounded-xl shadow-lg transform translate-y-2 group-hover:translate-y-0 transition-transform duration-300">Play Now</span>
                </div>
              </div>
              <div className="p-3 bg-slate-800/90">
                <p className="font-bold text-white text-sm truncate group-hover:text-%s-400 transition-colors">{g.name}</p>
              </div>
            </a>
          ))}
        </div>
      </div>
    </section>
  );
}
`, string(gamesJSON), siteURL, p, in.OfferURL, p, p, p, p, p, p)
}
