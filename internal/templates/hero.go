package templates

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// HeroSubtitle picks the hero strapline for a page: the parsed subtitle when
// it carries enough text, then the first sentence of the first block, and
// finally a generic welcome line built from the brand and page names.
func HeroSubtitle(page *PageContent, brand, pageName string) string {
	if page != nil {
		if sub := strings.TrimSpace(page.Subtitle); utf8.RuneCountInString(sub) > 20 {
			return sub
		}
		if len(page.Blocks) > 0 {
			first := firstSentence(page.Blocks[0].Content)
			if utf8.RuneCountInString(first) > 25 {
				return first + "."
			}
		}
	}
	return fmt.Sprintf("Welcome to %s - discover the best %s experience. Play now!", brand, strings.ToLower(pageName))
}

func firstSentence(content string) string {
	content = strings.TrimSpace(content)
	if idx := strings.IndexAny(content, ".!?"); idx >= 0 {
		return strings.TrimSpace(content[:idx])
	}
	return content
}
