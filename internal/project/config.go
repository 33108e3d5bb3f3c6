package project

import (
	"encoding/json"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Logo is an optional brand asset supplied as a data URL, either bare or
// wrapped in an object carrying the original filename.
type Logo struct {
	Name    string `json:"name"`
	DataURL string `json:"base64"`
}

// UnmarshalJSON accepts both `"data:image/...;base64,..."` and
// `{"name": "...", "base64": "data:..."}` payload shapes.
func (l *Logo) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		l.Name = ""
		l.DataURL = bare
		return nil
	}

	var wrapped struct {
		Name    string `json:"name"`
		DataURL string `json:"base64"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	l.Name = wrapped.Name
	l.DataURL = wrapped.DataURL
	return nil
}

// MetaTemplates holds the optional SEO templates. Placeholders {{brand}},
// {{domain}} and {{page}} are replaced per page.
type MetaTemplates struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// ProjectConfig is the full input for one generation run.
type ProjectConfig struct {
	Brand           string        `json:"brand"`
	Domain          string        `json:"domain"`
	Pages           []string      `json:"pages"`
	ContentTemplate string        `json:"contentTemplate"`
	Logo            *Logo         `json:"logoData"`
	Meta            MetaTemplates `json:"meta"`
	OfferURL        string        `json:"offerUrl"`
	ImageStyle      string        `json:"imageStyle"`
	ColorScheme     string        `json:"colorScheme"`
}

// Validate enforces the mandatory fields before any generation work starts.
func (c ProjectConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Brand, validation.Required),
		validation.Field(&c.Domain, validation.Required),
		validation.Field(&c.Pages, validation.Required, validation.Length(1, 20)),
	)
}

var projectNameFallback = regexp.MustCompile(`[^a-z0-9]+`)

// ProjectName derives the archive root folder from the brand.
func (c ProjectConfig) ProjectName() string {
	if normalized, err := slug.Normalize(c.Brand); err == nil && normalized != "" {
		return normalized
	}
	name := projectNameFallback.ReplaceAllString(strings.ToLower(c.Brand), "-")
	return strings.Trim(name, "-")
}
