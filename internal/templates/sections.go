package templates

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxSectionLength is the ceiling on a rendered section's content. Longer
// blocks are split at sentence or line boundaries before layout.
const MaxSectionLength = 220

// BuildSections expands parsed content blocks into renderable sections:
// long blocks are split under MaxSectionLength, every section gets a title
// unique within the page, CTA flags land on the first and last sections, and
// an optional seeded shuffle reorders the middle.
func BuildSections(blocks []ContentBlock, shuffle bool, seed int64) []Section {
	used := map[string]struct{}{}
	var sections []Section

	for _, block := range blocks {
		kind := block.Kind
		if kind == "" {
			kind = KindParagraph
		}
		parts := splitLongContent(block.Content, MaxSectionLength)
		for idx, part := range parts {
			var title string
			if idx == 0 {
				title = block.Title
				if title == "" {
					title = DeriveTitle(part)
				}
				if _, taken := used[title]; taken {
					title = uniqueTitle(part, used, len(sections))
				}
			} else {
				title = uniqueTitle(part, used, len(sections))
			}
			used[title] = struct{}{}
			sections = append(sections, Section{
				Title:   title,
				Content: part,
				Kind:    kind,
			})
		}
	}

	if shuffle && len(sections) > 2 {
		middle := sections[1 : len(sections)-1]
		sort.SliceStable(middle, func(i, j int) bool {
			return titleBucket(middle[i].Title, seed) < titleBucket(middle[j].Title, seed)
		})
	}

	for i := range sections {
		sections[i].HasCTA = i == 0 || i == len(sections)-1
	}
	return sections
}

// titleBucket maps a section title to one of five order buckets. The seed
// rotates bucket membership so different runs produce different but stable
// middle orderings.
func titleBucket(title string, seed int64) int64 {
	r, _ := utf8.DecodeRuneInString(title)
	b := (int64(r) + seed) % 5
	if b < 0 {
		b += 5
	}
	return b
}

// splitLongContent breaks content that exceeds maxLen into parts, preferring
// line boundaries when the text is already multi-line, then sentence
// boundaries, and finally word boundaries for a single oversized sentence.
// No part is split inside a word.
func splitLongContent(content string, maxLen int) []string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= maxLen {
		return []string{content}
	}

	lines := nonEmptyLines(content)
	if len(lines) > 1 && allShorterThan(lines, maxLen*2) {
		return packParts(lines, "\n", maxLen)
	}
	return packParts(splitSentences(content), " ", maxLen)
}

// nonEmptyLines splits content on newlines, trimming each line and dropping
// blanks.
func nonEmptyLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// allShorterThan reports whether every line is strictly shorter than limit.
func allShorterThan(lines []string, limit int) bool {
	for _, line := range lines {
		if utf8.RuneCountInString(line) >= limit {
			return false
		}
	}
	return true
}

// packParts greedily joins units with sep, starting a new part whenever the
// join would exceed maxLen. A single unit longer than maxLen is broken at
// word boundaries.
func packParts(units []string, sep string, maxLen int) []string {
	var parts []string
	current := ""
	for _, unit := range units {
		if utf8.RuneCountInString(unit) > maxLen {
			if current != "" {
				parts = append(parts, current)
				current = ""
			}
			parts = append(parts, splitWords(unit, maxLen)...)
			continue
		}
		if current == "" {
			current = unit
			continue
		}
		if utf8.RuneCountInString(current)+len(sep)+utf8.RuneCountInString(unit) > maxLen {
			parts = append(parts, current)
			current = unit
			continue
		}
		current += sep + unit
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

// splitWords breaks a single oversized run of text at word boundaries so no
// part exceeds maxLen.
func splitWords(text string, maxLen int) []string {
	var parts []string
	current := ""
	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > maxLen {
			parts = append(parts, current)
			current = word
			continue
		}
		current += " " + word
	}
	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

// splitSentences splits prose on sentence terminators, keeping the
// terminator attached to its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\n' && runes[i+1] != '\t' {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// DeriveTitle makes a display title out of untitled content: the first
// sentence when it is title-sized, otherwise a truncated word snippet.
func DeriveTitle(content string) string {
	content = strings.TrimSpace(content)
	first := content
	if idx := strings.IndexAny(content, ".!?"); idx >= 0 {
		first = strings.TrimSpace(content[:idx])
	}
	if n := utf8.RuneCountInString(first); n >= 15 && n <= 70 {
		return first + "."
	}

	words := strings.Fields(content)
	if len(words) > 8 {
		words = words[:8]
	}
	snippet := strings.Join(words, " ")
	if utf8.RuneCountInString(snippet) > 50 {
		snippet = string([]rune(snippet)[:50])
	}
	return snippet + "..."
}

// uniqueTitle derives a title not yet used on this page, walking a ladder of
// candidates: an unused mid-length sentence, an unused clause, a seven-word
// snippet, and finally a numbered five-word snippet.
func uniqueTitle(content string, used map[string]struct{}, ordinal int) string {
	for _, sentence := range splitSentences(content) {
		sentence = strings.TrimSuffix(sentence, ".")
		sentence = strings.TrimSuffix(sentence, "!")
		sentence = strings.TrimSuffix(sentence, "?")
		sentence = strings.TrimSpace(sentence)
		n := utf8.RuneCountInString(sentence)
		if n < 15 || n > 65 {
			continue
		}
		if _, taken := used[sentence]; !taken {
			return sentence
		}
	}

	for _, clause := range strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		clause = strings.TrimSpace(clause)
		n := utf8.RuneCountInString(clause)
		if n <= 10 || n >= 60 {
			continue
		}
		if _, taken := used[clause]; !taken {
			return clause
		}
	}

	words := strings.Fields(content)
	if len(words) > 7 {
		words = words[:7]
	}
	snippet := strings.Join(words, " ") + "..."
	if _, taken := used[snippet]; !taken {
		return snippet
	}

	if len(words) > 5 {
		words = words[:5]
	}
	return fmt.Sprintf("%s (%d)", strings.Join(words, " "), ordinal+1)
}
