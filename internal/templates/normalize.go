package templates

import "strings"

var punctuationReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"…", "...",
	" ", " ",
	"\u200B", "",
	"\uFEFF", "",
)

// NormalizeText rewrites word-processor punctuation (smart quotes, en/em
// dashes, ellipsis, non-breaking and zero-width spaces, CRLF) to plain ASCII
// equivalents. Every parser heuristic operates on normalized text.
func NormalizeText(raw string) string {
	return punctuationReplacer.Replace(raw)
}
