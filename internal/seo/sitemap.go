package seo

import (
	"fmt"
	"strings"
	"time"
)

// Sitemap renders sitemap.xml for the declared pages. Index pages get the
// root location and top priority.
func Sitemap(domain string, pages []string, now time.Time) string {
	baseURL := BaseURL(domain)
	today := now.UTC().Format("2006-01-02")

	var urls []string
	for _, page := range pages {
		slug := PageSlug(page)
		priority := "0.8"
		if IsIndexPage(page) {
			slug = ""
			priority = "1.0"
		}
		urls = append(urls, fmt.Sprintf(`  <url>
    <loc>%s/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>%s</priority>
  </url>`, baseURL, slug, today, priority))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
%s
</urlset>`, strings.Join(urls, "\n"))
}

// RobotsTxt renders robots.txt pointing crawlers at the sitemap.
func RobotsTxt(domain string) string {
	return fmt.Sprintf(`User-agent: *
Allow: /

Sitemap: %s/sitemap.xml`, BaseURL(domain))
}
