package seo_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/internal/seo"
)

func TestCanonicalURLs(t *testing.T) {
	links := seo.NewLinks("luckyspin.example")

	if got := links.Canonical("Casino"); got != "https://luckyspin.example/" {
		t.Fatalf("index canonical: got %q", got)
	}
	if got := links.Canonical("Mobile App"); got != "https://luckyspin.example/mobile-app" {
		t.Fatalf("page canonical: got %q", got)
	}

	links = seo.NewLinks("http://staging.example")
	if got := links.Canonical("Games"); got != "http://staging.example/games" {
		t.Fatalf("scheme passthrough: got %q", got)
	}
}

func TestReplaceVariables(t *testing.T) {
	got := seo.ReplaceVariables("{{Brand}} best {{PAGE}} on {{domain}}", "LuckySpin", "luckyspin.example", "Casino")
	if got != "LuckySpin best Casino on luckyspin.example" {
		t.Fatalf("unexpected substitution %q", got)
	}
}

func TestMetaForTemplateAndFallback(t *testing.T) {
	tmpl := &seo.MetaTemplate{
		Title:       "{{page}} | {{brand}}",
		Description: "Visit {{domain}} today",
		Keywords:    "{{brand}}, games",
	}
	meta := seo.MetaFor("LuckySpin", "luckyspin.example", "Casino", tmpl)
	if meta.Title != "Casino | LuckySpin" {
		t.Fatalf("template title: got %q", meta.Title)
	}
	if meta.Description != "Visit luckyspin.example today" {
		t.Fatalf("template description: got %q", meta.Description)
	}

	meta = seo.MetaFor("LuckySpin", "luckyspin.example", "Casino", nil)
	if meta.Title != "Casino - LuckySpin | luckyspin.example" {
		t.Fatalf("fallback title: got %q", meta.Title)
	}
	if !strings.Contains(meta.Description, "Visit luckyspin.example") {
		t.Fatalf("fallback description: got %q", meta.Description)
	}
}

func TestOpenGraphTags(t *testing.T) {
	links := seo.NewLinks("luckyspin.example")
	meta := seo.FallbackMeta("Lucky Spin", "luckyspin.example", "Casino")
	tags := seo.OpenGraphTags(meta, links, "Casino", "Lucky Spin")

	if tags["og:url"] != "https://luckyspin.example/" {
		t.Fatalf("og:url: got %q", tags["og:url"])
	}
	if tags["og:image"] != "https://luckyspin.example/images/casino-hero.jpg" {
		t.Fatalf("og:image: got %q", tags["og:image"])
	}
	if tags["twitter:site"] != "@LuckySpin" {
		t.Fatalf("twitter handle should drop spaces, got %q", tags["twitter:site"])
	}
	if tags["og:image:alt"] != "Casino - Lucky Spin" {
		t.Fatalf("og:image:alt: got %q", tags["og:image:alt"])
	}
}

func TestSitemap(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	xml := seo.Sitemap("luckyspin.example", []string{"Casino", "Mobile App"}, now)

	for _, want := range []string{
		"<loc>https://luckyspin.example/</loc>",
		"<loc>https://luckyspin.example/mobile-app</loc>",
		"<priority>1.0</priority>",
		"<priority>0.8</priority>",
		"<lastmod>2025-03-14</lastmod>",
		"<changefreq>weekly</changefreq>",
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("sitemap missing %q", want)
		}
	}
}

func TestRobotsTxt(t *testing.T) {
	robots := seo.RobotsTxt("luckyspin.example")
	if !strings.Contains(robots, "Sitemap: https://luckyspin.example/sitemap.xml") {
		t.Fatalf("robots missing sitemap line: %q", robots)
	}
	if !strings.Contains(robots, "Allow: /") {
		t.Fatalf("robots missing allow-all: %q", robots)
	}
}

func TestRoutePath(t *testing.T) {
	if got := seo.RoutePath("Casino", "Casino"); got != "/" {
		t.Fatalf("index route: got %q", got)
	}
	if got := seo.RoutePath("Mobile App", "Casino"); got != "/mobile-app" {
		t.Fatalf("page route: got %q", got)
	}
}
