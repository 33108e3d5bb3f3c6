package project

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/identity"
	"github.com/goliatone/go-sitegen/internal/layouts"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/render"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/internal/templates"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// TextClient is the text collaborator surface the generator needs: page copy
// when no template content is available, and SEO meta when no template is set.
type TextClient interface {
	GeneratePageCopy(ctx context.Context, brand, domain, page, offerURL string) (*interfaces.PageCopy, error)
	GenerateMeta(ctx context.Context, brand, domain, page string) seo.Meta
}

// EmitFunc receives a progress update after every discrete generation step.
type EmitFunc func(step, total int, message string)

// Service assembles a deployable site project from a ProjectConfig.
type Service struct {
	images     interfaces.ImageGenerator
	text       TextClient
	logger     interfaces.Logger
	now        func() time.Time
	gameAssets string
}

// Option customizes the service.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGameAssetsDir points at a directory of game artwork. When set and
// non-empty, the images are bundled under public/games and pages with a
// games layout mount the GameGrid component.
func WithGameAssetsDir(dir string) Option {
	return func(s *Service) {
		s.gameAssets = dir
	}
}

// WithClock overrides the sitemap timestamp clock, used mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// New creates a generation service backed by the given collaborators.
func New(images interfaces.ImageGenerator, text TextClient, opts ...Option) *Service {
	s := &Service{
		images: images,
		text:   text,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type pageRender struct {
	sections  []templates.Section
	heroTitle string
	heroSub   string
	ctaText   string
	meta      seo.Meta
	ogTags    map[string]string
	canonical string
}

// Generate runs the full pipeline and returns the zipped project. Progress is
// reported through emit with total = 3 + 3*pageCount. Collaborator failures
// degrade (missing image, placeholder copy); only validation, context
// cancellation, and archive errors abort the run.
func (s *Service) Generate(ctx context.Context, cfg ProjectConfig, emit EmitFunc) (*interfaces.BuildArtifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("project: invalid config: %w", err)
	}
	if emit == nil {
		emit = func(int, int, string) {}
	}

	totalSteps := 3 + len(cfg.Pages)*3
	currentStep := 0
	step := func(message string) {
		currentStep++
		emit(currentStep, totalSteps, message)
	}

	projectName := cfg.ProjectName()
	projectSeed := identity.ProjectSeed(cfg.Brand, cfg.Domain)
	colors := render.SchemeFor(cfg.ColorScheme)
	fonts := render.FontsFor(projectSeed)
	links := seo.NewLinks(cfg.Domain)

	indexPage := ""
	for _, page := range cfg.Pages {
		if seo.IsIndexPage(page) {
			indexPage = page
			break
		}
	}

	refs := make([]render.PageRef, 0, len(cfg.Pages))
	for _, page := range cfg.Pages {
		refs = append(refs, render.PageRef{
			Name:      page,
			Component: ComponentName(page),
			Path:      seo.RoutePath(page, indexPage),
		})
	}

	archive := newArchiveWriter(projectName)

	step("Creating project structure...")
	logoPath := s.addLogo(archive, cfg.Logo)
	site := render.SiteInput{
		Brand:    cfg.Brand,
		Domain:   cfg.Domain,
		OfferURL: cfg.OfferURL,
		Pages:    refs,
		Colors:   colors,
		Fonts:    fonts,
		LogoPath: logoPath,
	}
	archive.add("package.json", render.RenderPackageJSON(projectName))
	archive.add("vite.config.js", render.RenderViteConfig())
	archive.add("postcss.config.js", render.RenderPostCSSConfig())
	archive.add("tailwind.config.js", render.RenderTailwindConfig(fonts))
	archive.add("index.html", render.RenderIndexHTML(site))
	archive.add("public/favicon.svg", render.RenderFavicon(cfg.Brand))
	games := s.addGameAssets(archive)

	pageImages := make(map[string]string, len(cfg.Pages))
	for _, page := range cfg.Pages {
		step(fmt.Sprintf("Generating image for %q page...", page))
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("project: generation canceled: %w", err)
		}
		image, err := s.images.GenerateHero(ctx, interfaces.HeroImageRequest{
			Brand:       cfg.Brand,
			Page:        page,
			Style:       orDefault(cfg.ImageStyle, "modern"),
			ColorScheme: orDefault(cfg.ColorScheme, "blue"),
		})
		if err != nil || image == nil {
			s.logger.Warn("hero image unavailable", "page", page, "error", err)
			continue
		}
		archive.addBytes("public/images/"+image.Filename, image.Data)
		pageImages[page] = "/images/" + image.Filename
	}

	parsed, metaTemplates := s.parseTemplate(cfg)

	pageData := make(map[string]pageRender, len(cfg.Pages))
	for _, page := range cfg.Pages {
		step(fmt.Sprintf("Generating content for %q page...", page))
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("project: generation canceled: %w", err)
		}
		data, err := s.resolvePage(ctx, cfg, page, parsed[page])
		if err != nil {
			return nil, err
		}
		data.meta = s.resolveMeta(ctx, cfg, page, metaTemplates)
		data.ogTags = seo.OpenGraphTags(data.meta, links, page, cfg.Brand)
		data.canonical = links.Canonical(page)
		pageData[page] = data
	}

	step("Generating SEO files...")
	archive.add("public/sitemap.xml", seo.Sitemap(cfg.Domain, cfg.Pages, s.now()))
	archive.add("public/robots.txt", seo.RobotsTxt(cfg.Domain))

	step("Assembling React components...")
	archive.add("src/index.css", render.RenderCSS(colors, fonts))
	archive.add("src/main.jsx", render.RenderMain())
	archive.add("src/App.jsx", render.RenderApp(site))
	archive.add("src/components/Header.jsx", render.RenderHeader(site))
	archive.add("src/components/Footer.jsx", render.RenderFooter(site))
	archive.add("src/components/CTAButton.jsx", render.RenderCTAButton(site))
	archive.add("src/components/SEOHead.jsx", render.RenderSEOHead())
	archive.add("src/components/Ticker.jsx", render.RenderTicker(site))
	if len(games) > 0 {
		archive.add("src/components/GameGrid.jsx", render.RenderGameGrid(site, games))
	}

	for i, page := range cfg.Pages {
		data := pageData[page]
		layout := layouts.Select(page, i, len(cfg.Pages), projectSeed)
		archive.add("src/pages/"+ComponentName(page)+".jsx", render.RenderPage(render.PageInput{
			Brand:     cfg.Brand,
			Domain:    cfg.Domain,
			PageName:  page,
			Component: ComponentName(page),
			Layout:    layout,
			Sections:  data.sections,
			HeroTitle: data.heroTitle,
			HeroSub:   data.heroSub,
			CTAText:   data.ctaText,
			ImagePath: pageImages[page],
			Seed:      identity.PageSeed(cfg.Brand, cfg.Domain, page),
			Colors:    colors,

			IncludeGameGrid: len(games) > 0 && layout == layouts.CasinoGames,
			Meta: render.Meta{
				Title:       data.meta.Title,
				Description: data.meta.Description,
				Keywords:    data.meta.Keywords,
				Canonical:   data.canonical,
				OGTags:      data.ogTags,
			},
		}))
	}

	archive.add("README.md", render.RenderReadme(cfg.Brand, cfg.Domain, refs))

	data, err := archive.finish()
	if err != nil {
		return nil, fmt.Errorf("project: assemble archive: %w", err)
	}
	s.logger.Info("project generated", "project", projectName, "pages", len(cfg.Pages), "bytes", len(data))
	return &interfaces.BuildArtifact{ProjectName: projectName, Data: data}, nil
}

// parseTemplate strips optional front matter, parses the body into per-page
// content, and folds front-matter meta into any unset template fields.
func (s *Service) parseTemplate(cfg ProjectConfig) (map[string]*templates.PageContent, MetaTemplates) {
	metaTemplates := cfg.Meta
	if strings.TrimSpace(cfg.ContentTemplate) == "" {
		return nil, metaTemplates
	}

	meta, body, err := templates.StripFrontMatter(cfg.ContentTemplate)
	if err != nil {
		s.logger.Warn("front matter ignored", "error", err)
		body = cfg.ContentTemplate
	} else {
		if metaTemplates.Title == "" {
			metaTemplates.Title = meta.Title
		}
		if metaTemplates.Description == "" {
			metaTemplates.Description = meta.Description
		}
		if metaTemplates.Keywords == "" {
			metaTemplates.Keywords = meta.Keywords
		}
	}

	return templates.ParseContent(body, cfg.Pages), metaTemplates
}

// resolvePage falls through parsed template content, AI copy, and the
// deterministic placeholder, in that priority.
func (s *Service) resolvePage(ctx context.Context, cfg ProjectConfig, page string, parsed *templates.PageContent) (pageRender, error) {
	if parsed != nil && len(parsed.Blocks) > 0 {
		seed := identity.PageSeed(cfg.Brand, cfg.Domain, page)
		sections := templates.BuildSections(parsed.Blocks, true, seed)
		heroTitle := fmt.Sprintf("%s - %s", page, cfg.Brand)
		if len(sections) > 0 && sections[0].Title != "" {
			heroTitle = sections[0].Title
		}
		return pageRender{
			sections:  sections,
			heroTitle: heroTitle,
			heroSub:   templates.HeroSubtitle(parsed, cfg.Brand, page),
			ctaText:   "Play Now",
		}, nil
	}

	pageCopy, err := s.text.GeneratePageCopy(ctx, cfg.Brand, cfg.Domain, page, cfg.OfferURL)
	if err != nil {
		return pageRender{}, fmt.Errorf("project: page copy for %q: %w", page, err)
	}

	sections := make([]templates.Section, 0, len(pageCopy.Sections))
	for _, section := range pageCopy.Sections {
		kind := templates.KindParagraph
		if section.Kind == string(templates.KindList) {
			kind = templates.KindList
		}
		sections = append(sections, templates.Section{
			Title:   section.Title,
			Content: section.Content,
			HasCTA:  section.HasCTA,
			Kind:    kind,
		})
	}
	return pageRender{
		sections:  sections,
		heroTitle: pageCopy.HeroTitle,
		heroSub:   pageCopy.HeroSubtitle,
		ctaText:   pageCopy.CTAText,
	}, nil
}

// resolveMeta prefers the configured templates and asks the text collaborator
// only when both title and description are missing from them.
func (s *Service) resolveMeta(ctx context.Context, cfg ProjectConfig, page string, metaTemplates MetaTemplates) seo.Meta {
	if metaTemplates.Title != "" && metaTemplates.Description != "" {
		return seo.MetaFor(cfg.Brand, cfg.Domain, page, &seo.MetaTemplate{
			Title:       metaTemplates.Title,
			Description: metaTemplates.Description,
			Keywords:    metaTemplates.Keywords,
		})
	}
	return s.text.GenerateMeta(ctx, cfg.Brand, cfg.Domain, page)
}

var gameImageExts = map[string]bool{
	".webp": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// addGameAssets copies game artwork from the configured directory into
// public/games and returns the tiles for the GameGrid component. A missing or
// empty directory disables the grid.
func (s *Service) addGameAssets(archive *archiveWriter) []render.Game {
	if s.gameAssets == "" {
		return nil
	}
	entries, err := os.ReadDir(s.gameAssets)
	if err != nil {
		s.logger.Warn("game assets unavailable", "dir", s.gameAssets, "error", err)
		return nil
	}

	var games []render.Game
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !gameImageExts[ext] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.gameAssets, name))
		if err != nil {
			s.logger.Warn("game asset skipped", "file", name, "error", err)
			continue
		}
		archive.addBytes("public/games/"+name, data)
		games = append(games, render.Game{
			Src:  "/games/" + name,
			Name: gameDisplayName(strings.TrimSuffix(name, ext)),
		})
	}
	return games
}

func gameDisplayName(base string) string {
	words := strings.Split(base, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

var logoExtByMIME = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// addLogo decodes the optional data-URL logo into public/ and returns the
// site-relative path, or "" when absent or undecodable.
func (s *Service) addLogo(archive *archiveWriter, logo *Logo) string {
	if logo == nil || logo.DataURL == "" {
		return ""
	}
	match := dataURLPattern.FindStringSubmatch(logo.DataURL)
	if match == nil {
		s.logger.Warn("logo ignored, expected data:image/...;base64,... payload")
		return ""
	}
	data, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		s.logger.Warn("logo ignored, invalid base64 payload", "error", err)
		return ""
	}

	ext := logoExtByMIME[strings.ToLower(match[1])]
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(logo.Name))
	}
	if ext == "" {
		ext = ".png"
	}
	filename := "logo" + ext
	archive.addBytes("public/"+filename, data)
	return "/" + filename
}

var componentStripPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// ComponentName turns a page name into its React component identifier.
func ComponentName(pageName string) string {
	cleaned := componentStripPattern.ReplaceAllString(pageName, "")
	var b strings.Builder
	for _, word := range strings.Fields(cleaned) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	if b.Len() == 0 {
		return "Page"
	}
	return b.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
