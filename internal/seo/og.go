package seo

import (
	"fmt"
	"strings"
)

// OpenGraphTags builds the og: and twitter: tag map for a page.
func OpenGraphTags(meta Meta, links *Links, pageName, brand string) map[string]string {
	canonical := links.Canonical(pageName)
	imageURL := links.ImageURL(pageName)
	handle := "@" + strings.ReplaceAll(brand, " ", "")
	alt := fmt.Sprintf("%s - %s", pageName, brand)

	return map[string]string{
		"og:title":            meta.Title,
		"og:description":      meta.Description,
		"og:type":             "website",
		"og:url":              canonical,
		"og:site_name":        brand,
		"og:image":            imageURL,
		"og:image:url":        imageURL,
		"og:image:secure_url": imageURL,
		"og:image:type":       "image/jpeg",
		"og:image:alt":        alt,
		"og:locale":           "en_US",
		"og:locale:alternate": "en_GB",
		"twitter:card":        "summary_large_image",
		"twitter:site":        handle,
		"twitter:creator":     handle,
		"twitter:title":       meta.Title,
		"twitter:description": meta.Description,
		"twitter:image":       imageURL,
		"twitter:image:alt":   alt,
	}
}
