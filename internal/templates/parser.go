package templates

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
)

var (
	pageHeadingPattern = regexp.MustCompile(`(?m)^[0-9]+\.[ \t]+`)
	headingLinePattern = regexp.MustCompile(`^[0-9]+\.\s+([^-]+?)(?:\s*-\s*(.+))?$`)
	bulletPattern      = regexp.MustCompile(`^[✅•\-]\s+(.+)$`)
	spacedDashPattern  = regexp.MustCompile(`\s-\s`)
)

// markerGlyphs are the section markers recognized at the start of a line. A
// marker line always opens a new content block titled by the text after the
// glyph.
var markerGlyphs = []string{
	"📝", "📲", "🎁", "🔥", "🎯", "♠", "🏆", "🎮",
	"💡", "🔒", "🚀", "⚽", "🏏", "🎾", "📱", "✈️", "✈",
}

// TemplateMeta carries the optional YAML front-matter a content template may
// open with. Recognized keys pre-fill the project's meta templates.
type TemplateMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
}

// StripFrontMatter splits an optional YAML front-matter prefix off the
// content template. Templates without a front-matter fence pass through
// unchanged.
func StripFrontMatter(raw string) (TemplateMeta, string, error) {
	var meta TemplateMeta
	body, err := frontmatter.Parse(strings.NewReader(raw), &meta)
	if err != nil {
		return TemplateMeta{}, raw, err
	}
	return meta, string(body), nil
}

// ParseContent turns a loosely structured multi-page text blob into a mapping
// from declared page name to that page's content. Page boundaries are lines
// shaped like "1. Label - subtitle"; everything before the first boundary is
// discarded. Returns nil when the input is empty or no page block was
// recognized.
func ParseContent(raw string, declared []string) map[string]*PageContent {
	normalized := NormalizeText(raw)
	if strings.TrimSpace(normalized) == "" {
		return nil
	}

	locs := pageHeadingPattern.FindAllStringIndex(normalized, -1)
	if len(locs) == 0 {
		return nil
	}

	result := map[string]*PageContent{}
	for i, loc := range locs {
		end := len(normalized)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := strings.TrimSpace(normalized[loc[0]:end])
		if chunk == "" {
			continue
		}

		firstLine := chunk
		rawContent := ""
		if nl := strings.IndexByte(chunk, '\n'); nl >= 0 {
			firstLine = chunk[:nl]
			rawContent = strings.TrimSpace(chunk[nl+1:])
		}

		m := headingLinePattern.FindStringSubmatch(strings.TrimSpace(firstLine))
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[1])
		subtitle := strings.TrimSpace(m[2])

		matched := MatchPage(label, declared)
		if matched == "" {
			continue
		}
		blocks := extractBlocks(rawContent)

		if existing, ok := result[matched]; ok {
			existing.Blocks = append(existing.Blocks, blocks...)
			existing.RawText += "\n\n" + rawContent
			continue
		}
		result[matched] = &PageContent{
			Subtitle: subtitle,
			Blocks:   blocks,
			RawText:  rawContent,
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// extractBlocks segments the body of one page block into content blocks:
// marker lines and heading-shaped lines open new blocks, bullet lines extend
// the current block as list items, and any other line longer than ten
// characters is appended as prose.
func extractBlocks(text string) []ContentBlock {
	var blocks []ContentBlock

	var (
		currentTitle string
		currentLines []string
		sawBullet    bool
	)

	push := func() {
		content := strings.TrimSpace(strings.Join(currentLines, "\n"))
		if utf8.RuneCountInString(content) > 10 || (currentTitle != "" && content != "") {
			kind := KindParagraph
			if sawBullet {
				kind = KindList
			}
			blocks = append(blocks, ContentBlock{
				Title:   currentTitle,
				Content: content,
				Kind:    kind,
			})
		}
		currentTitle = ""
		currentLines = nil
		sawBullet = false
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if title := markerTitle(line); title != "" {
			push()
			currentTitle = title
			continue
		}

		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			currentLines = append(currentLines, strings.TrimSpace(m[1]))
			sawBullet = true
			continue
		}

		if isHeadingLine(line) {
			if len(currentLines) > 0 || currentTitle != "" {
				push()
			}
			currentTitle = line
			continue
		}

		if utf8.RuneCountInString(line) > 10 {
			currentLines = append(currentLines, line)
		}
	}
	push()

	return blocks
}

// markerTitle returns the text after a leading marker glyph, or "" when the
// line does not start with one.
func markerTitle(line string) string {
	for _, glyph := range markerGlyphs {
		if !strings.HasPrefix(line, glyph) {
			continue
		}
		rest := line[len(glyph):]
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		if title := strings.TrimSpace(rest); title != "" {
			return title
		}
	}
	return ""
}

// isHeadingLine applies the short-title heuristic: a heading is a shortish
// line without a trailing period that starts with a title-case character and
// either ends in ?/!, contains an embedded spaced dash, or reads like a plain
// short title (no comma, at most twelve words).
func isHeadingLine(line string) bool {
	length := utf8.RuneCountInString(line)
	if length < 10 || length > 100 {
		return false
	}
	if bulletPattern.MatchString(line) {
		return false
	}
	if strings.Contains(line, "..") {
		return false
	}

	endsQuestion := strings.HasSuffix(line, "?")
	endsExclaim := strings.HasSuffix(line, "!")
	containsDash := spacedDashPattern.MatchString(line)
	noTrailingPeriod := !strings.HasSuffix(line, ".")
	shortEnough := length < 80
	titleStart := hasTitleStart(line)

	if (endsQuestion || endsExclaim) && shortEnough {
		return true
	}
	if containsDash && shortEnough && noTrailingPeriod && titleStart {
		return true
	}
	if shortEnough && noTrailingPeriod && titleStart &&
		!strings.Contains(line, ",") && len(strings.Fields(line)) <= 12 {
		return true
	}
	return false
}

func hasTitleStart(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r) || r == '🎰'
}
