package templates

import (
	"regexp"
	"strings"
)

// pageAliases maps canonical page concepts to the synonym phrases commonly
// seen in uploaded templates. The table is fixed; unknown labels fall back to
// the first declared page.
var pageAliases = map[string][]string{
	"casino":  {"home", "homepage", "main", "casino"},
	"login":   {"login", "sign in", "signin", "secure access"},
	"app":     {"app", "mobile", "download", "mobile app", "apk"},
	"bonuses": {"bonuses", "bonus", "promotions", "welcome bonus"},
	"aviator": {"aviator", "crash", "crash game"},
	"games":   {"games", "slots", "game", "slot"},
	"betting": {"betting", "sports", "sportsbook", "bet"},
}

// aliasOrder fixes the concept scan order so a label touching two concepts
// always resolves the same way.
var aliasOrder = []string{"casino", "login", "app", "bonuses", "aviator", "games", "betting"}

var parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)`)

// cleanPageLabel strips parenthetical suffixes and lowercases the label for
// comparison, e.g. "Casino (Homepage)" becomes "casino".
func cleanPageLabel(label string) string {
	return strings.TrimSpace(strings.ToLower(parentheticalPattern.ReplaceAllString(label, "")))
}

// MatchPage resolves a free-text page label to one of the declared page
// names. The resolution is deliberately lenient: it tries exact equality,
// containment, first-token prefixes, and the alias table in that order, and
// never fails, falling back to the first declared page. Two different labels
// may resolve to the same page; callers merge content in that case.
func MatchPage(label string, declared []string) string {
	if len(declared) == 0 {
		return ""
	}

	cleaned := cleanPageLabel(label)
	firstWord := cleaned
	if idx := strings.IndexFunc(cleaned, func(r rune) bool { return r == ' ' || r == '\t' }); idx >= 0 {
		firstWord = cleaned[:idx]
	}

	for _, page := range declared {
		if strings.ToLower(page) == cleaned {
			return page
		}
	}

	for _, page := range declared {
		lower := strings.ToLower(page)
		if lower == "" || cleaned == "" {
			continue
		}
		if strings.Contains(cleaned, lower) || strings.Contains(lower, cleaned) {
			return page
		}
	}

	if firstWord != "" {
		for _, page := range declared {
			lower := strings.ToLower(page)
			if strings.HasPrefix(lower, firstWord) || strings.HasPrefix(firstWord, lower) {
				return page
			}
		}
	}

	if page, ok := matchByAlias(cleaned, declared); ok {
		return page
	}

	return declared[0]
}

func matchByAlias(cleaned string, declared []string) (string, bool) {
	for _, concept := range aliasOrder {
		aliases := pageAliases[concept]
		hit := strings.Contains(cleaned, concept)
		if !hit {
			for _, alias := range aliases {
				if strings.Contains(cleaned, alias) {
					hit = true
					break
				}
			}
		}
		if !hit {
			continue
		}

		for _, page := range declared {
			lower := strings.ToLower(page)
			// Explicit pairings the alias intersection alone would miss.
			if lower == "casino" && concept == "casino" {
				return page, true
			}
			if lower == "home" && (concept == "casino" || containsString(aliases, "homepage")) {
				return page, true
			}
			if lower == "mobile app" && (concept == "app" || strings.Contains(cleaned, "app")) {
				return page, true
			}
			for _, alias := range aliases {
				if strings.Contains(lower, alias) || strings.Contains(alias, lower) {
					return page, true
				}
			}
		}
	}
	return "", false
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
