// Package render emits the React project sources for a generated site:
// page components, shared components, styles, and build configuration.
package render

// ColorScheme names the tailwind palette families a generated site uses.
type ColorScheme struct {
	Primary string
	Accent  string
	Bg      string
}

var colorSchemes = map[string]ColorScheme{
	"gold":   {Primary: "amber", Accent: "yellow", Bg: "slate"},
	"red":    {Primary: "red", Accent: "rose", Bg: "slate"},
	"purple": {Primary: "purple", Accent: "violet", Bg: "slate"},
	"neon":   {Primary: "emerald", Accent: "cyan", Bg: "slate"},
	"blue":   {Primary: "blue", Accent: "indigo", Bg: "slate"},
	"orange": {Primary: "orange", Accent: "amber", Bg: "slate"},
}

// SchemeFor resolves a scheme name, defaulting to gold.
func SchemeFor(name string) ColorScheme {
	if scheme, ok := colorSchemes[name]; ok {
		return scheme
	}
	return colorSchemes["gold"]
}

// SchemeNames lists the accepted color scheme identifiers.
func SchemeNames() []string {
	return []string{"gold", "red", "purple", "neon", "blue", "orange"}
}

// FontSet pairs a Google Fonts stylesheet with the CSS family it provides.
type FontSet struct {
	Name   string
	URL    string
	Family string
}

var fontSets = []FontSet{
	{Name: "Poppins", URL: "https://fonts.googleapis.com/css2?family=Poppins:wght@400;600;700;800&display=swap", Family: "'Poppins', sans-serif"},
	{Name: "Outfit", URL: "https://fonts.googleapis.com/css2?family=Outfit:wght@400;600;700;800&display=swap", Family: "'Outfit', sans-serif"},
	{Name: "Exo 2", URL: "https://fonts.googleapis.com/css2?family=Exo+2:wght@400;600;700;800&display=swap", Family: "'Exo 2', sans-serif"},
	{Name: "Raleway", URL: "https://fonts.googleapis.com/css2?family=Raleway:wght@400;600;700;800&display=swap", Family: "'Raleway', sans-serif"},
	{Name: "Oswald", URL: "https://fonts.googleapis.com/css2?family=Oswald:wght@400;600;700&display=swap", Family: "'Oswald', sans-serif"},
	{Name: "Bebas Neue", URL: "https://fonts.googleapis.com/css2?family=Bebas+Neue&family=Inter:wght@400;600&display=swap", Family: "'Bebas Neue', 'Inter', sans-serif"},
}

// FontsFor picks the font set for a project seed.
func FontsFor(seed int64) FontSet {
	return fontSets[mod(seed, len(fontSets))]
}

// emojis decorate generated sections; indexed by section position.
var emojis = []string{"🎰", "🃏", "💰", "🎲", "🎯", "🔥", "⭐", "🏆", "💎", "🚀", "♠️", "🎁"}

func emoji(i int) string {
	return emojis[mod(int64(i), len(emojis))]
}

func mod(v int64, n int) int {
	m := v % int64(n)
	if m < 0 {
		m += int64(n)
	}
	return int(m)
}
