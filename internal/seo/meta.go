package seo

import (
	"fmt"
	"regexp"
)

// Meta is the per-page head data.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// MetaTemplate is the user-supplied meta configuration. Title and
// Description may carry {{brand}}, {{domain}}, and {{page}} placeholders.
type MetaTemplate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

var (
	brandVar  = regexp.MustCompile(`(?i)\{\{brand\}\}`)
	domainVar = regexp.MustCompile(`(?i)\{\{domain\}\}`)
	pageVar   = regexp.MustCompile(`(?i)\{\{page\}\}`)
)

// ReplaceVariables substitutes the {{brand}}, {{domain}}, and {{page}}
// placeholders, case-insensitively.
func ReplaceVariables(template, brand, domain, page string) string {
	out := brandVar.ReplaceAllString(template, brand)
	out = domainVar.ReplaceAllString(out, domain)
	return pageVar.ReplaceAllString(out, page)
}

// MetaFor resolves a page's meta tags. A template with both title and
// description wins; otherwise the deterministic fallback built from brand,
// page, and domain is used.
func MetaFor(brand, domain, page string, tmpl *MetaTemplate) Meta {
	if tmpl != nil && tmpl.Title != "" && tmpl.Description != "" {
		return Meta{
			Title:       ReplaceVariables(tmpl.Title, brand, domain, page),
			Description: ReplaceVariables(tmpl.Description, brand, domain, page),
			Keywords:    ReplaceVariables(tmpl.Keywords, brand, domain, page),
		}
	}
	return FallbackMeta(brand, domain, page)
}

// FallbackMeta is the deterministic meta used when no template and no
// generated meta is available.
func FallbackMeta(brand, domain, page string) Meta {
	return Meta{
		Title:       fmt.Sprintf("%s - %s | %s", page, brand, domain),
		Description: fmt.Sprintf("%s page of %s. Visit %s for more information.", page, brand, domain),
		Keywords:    fmt.Sprintf("%s, %s, %s", brand, page, domain),
	}
}
