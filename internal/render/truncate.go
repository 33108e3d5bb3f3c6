package render

import "strings"

// DefaultTruncateLen bounds card copy inside dense layouts.
const DefaultTruncateLen = 160

// Truncate shortens text to at most max characters plus an ellipsis, cutting
// at the last word boundary when one falls late enough in the window.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max])
	if lastSpace := strings.LastIndex(cut, " "); lastSpace > max*6/10 {
		cut = cut[:lastSpace]
	}
	return cut + "..."
}
