// Package seo produces the search-facing artifacts of a generated site:
// canonical URLs, meta tags, Open Graph tags, the sitemap, and robots.txt.
package seo

import (
	"fmt"
	"regexp"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// indexPages are the page names that map to the site root instead of their
// own slug.
var indexPages = map[string]bool{"casino": true, "home": true}

const siteGroup = "site"

// Links builds absolute URLs for a generated site, backed by a go-urlkit
// route manager rooted at the project's domain.
type Links struct {
	manager *urlkit.RouteManager
	baseURL string
}

// NewLinks creates a link builder for the given domain. The domain may be
// bare ("example.com") or carry a scheme already.
func NewLinks(domain string) *Links {
	baseURL := BaseURL(domain)
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					"home": "/",
					"page": "/:slug",
				},
			},
		},
	})
	return &Links{manager: manager, baseURL: baseURL}
}

// BaseURL normalizes a domain into an absolute site URL with https when no
// scheme is present.
func BaseURL(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ""
	}
	if strings.HasPrefix(domain, "http") {
		return strings.TrimSuffix(domain, "/")
	}
	return "https://" + strings.TrimSuffix(domain, "/")
}

// Canonical returns the canonical URL for a page. Index pages (casino, home)
// resolve to the site root.
func (l *Links) Canonical(pageName string) string {
	if IsIndexPage(pageName) {
		return l.baseURL + "/"
	}
	slug := PageSlug(pageName)
	if url, err := l.build("page", map[string]any{"slug": slug}); err == nil && url != "" {
		return url
	}
	return l.baseURL + "/" + slug
}

// ImageURL returns the absolute URL of a page's hero image.
func (l *Links) ImageURL(pageName string) string {
	return fmt.Sprintf("%s/images/%s-hero.jpg", l.baseURL, PageSlug(pageName))
}

func (l *Links) build(route string, params map[string]any) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("seo: route %q: %v", route, rec)
		}
	}()
	builder := l.manager.Group(siteGroup).Builder(route)
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// PageSlug converts a page name to its URL slug: lowercased with whitespace
// collapsed to hyphens.
func PageSlug(pageName string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(pageName)), "-")
}

// IsIndexPage reports whether a page name maps to the site root.
func IsIndexPage(pageName string) bool {
	return indexPages[strings.ToLower(strings.TrimSpace(pageName))]
}

// RoutePath returns the client-side route for a page: "/" for the index page
// of the project, "/<slug>" otherwise.
func RoutePath(pageName, indexPage string) string {
	if indexPage != "" && strings.EqualFold(strings.TrimSpace(pageName), strings.TrimSpace(indexPage)) {
		return "/"
	}
	return "/" + PageSlug(pageName)
}
