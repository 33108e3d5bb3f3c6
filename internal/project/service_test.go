package project_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/internal/project"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

type stubImages struct {
	available map[string]bool
}

func (s *stubImages) GenerateHero(_ context.Context, req interfaces.HeroImageRequest) (*interfaces.GeneratedImage, error) {
	if !s.available[req.Page] {
		return nil, errors.New("image provider unreachable")
	}
	return &interfaces.GeneratedImage{
		Filename:    seo.PageSlug(req.Page) + "-hero.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes-" + req.Page),
	}, nil
}

type stubText struct {
	copyCalls []string
	metaCalls []string
}

func (s *stubText) GeneratePageCopy(_ context.Context, brand, _, page, _ string) (*interfaces.PageCopy, error) {
	s.copyCalls = append(s.copyCalls, page)
	return &interfaces.PageCopy{
		HeroTitle:    "Generated " + page + " at " + brand,
		HeroSubtitle: "Subtitle for " + page,
		CTAText:      "Play Now",
		Sections: []interfaces.CopySection{
			{Title: "First " + page, Content: "Opening copy for " + page + ".", Kind: "paragraph", HasCTA: true},
			{Title: "Second " + page, Content: "Closing copy for " + page + ".", Kind: "list", HasCTA: true},
		},
	}, nil
}

func (s *stubText) GenerateMeta(_ context.Context, brand, domain, page string) seo.Meta {
	s.metaCalls = append(s.metaCalls, page)
	return seo.FallbackMeta(brand, domain, page)
}

const sampleTemplate = `1. Casino - Main page
Welcome Bonus Up To $500
Claim your welcome package today and start spinning with extra funds. Every new player qualifies for the full bonus on the first deposit.

2. Mobile App
Download the app for instant access. Playing on the move has never been easier for anyone.
`

func baseConfig() project.ProjectConfig {
	return project.ProjectConfig{
		Brand:           "Lucky Spin",
		Domain:          "luckyspin.example",
		Pages:           []string{"Casino", "Mobile App", "FAQ"},
		ContentTemplate: sampleTemplate,
		OfferURL:        "https://go.luckyspin.example/offer",
		ImageStyle:      "modern",
		ColorScheme:     "gold",
	}
}

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	files := make(map[string]string, len(reader.File))
	for _, file := range reader.File {
		src, err := file.Open()
		if err != nil {
			t.Fatalf("open %s: %v", file.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(src); err != nil {
			t.Fatalf("read %s: %v", file.Name, err)
		}
		src.Close()
		files[file.Name] = buf.String()
	}
	return files
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestGenerateProducesCompleteArchive(t *testing.T) {
	images := &stubImages{available: map[string]bool{"Casino": true}}
	text := &stubText{}
	service := project.New(images, text, project.WithClock(fixedClock))

	var steps []string
	emit := func(step, total int, message string) {
		steps = append(steps, fmt.Sprintf("%d/%d %s", step, total, message))
	}

	artifact, err := service.Generate(context.Background(), baseConfig(), emit)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if artifact.ProjectName != "lucky-spin" {
		t.Fatalf("expected project name lucky-spin, got %q", artifact.ProjectName)
	}

	files := readArchive(t, artifact.Data)
	for _, want := range []string{
		"lucky-spin/package.json",
		"lucky-spin/vite.config.js",
		"lucky-spin/postcss.config.js",
		"lucky-spin/tailwind.config.js",
		"lucky-spin/index.html",
		"lucky-spin/public/favicon.svg",
		"lucky-spin/public/sitemap.xml",
		"lucky-spin/public/robots.txt",
		"lucky-spin/public/images/casino-hero.jpg",
		"lucky-spin/src/index.css",
		"lucky-spin/src/main.jsx",
		"lucky-spin/src/App.jsx",
		"lucky-spin/src/components/Header.jsx",
		"lucky-spin/src/components/Footer.jsx",
		"lucky-spin/src/components/CTAButton.jsx",
		"lucky-spin/src/components/SEOHead.jsx",
		"lucky-spin/src/components/Ticker.jsx",
		"lucky-spin/src/pages/Casino.jsx",
		"lucky-spin/src/pages/MobileApp.jsx",
		"lucky-spin/src/pages/Faq.jsx",
		"lucky-spin/README.md",
	} {
		if _, ok := files[want]; !ok {
			t.Errorf("archive missing %s", want)
		}
	}

	// pages with failed image fetches degrade to no image
	if _, ok := files["lucky-spin/public/images/mobile-app-hero.jpg"]; ok {
		t.Fatalf("expected no image for Mobile App")
	}

	// parsed template content reaches the rendered pages
	if !strings.Contains(files["lucky-spin/src/pages/Casino.jsx"], `Welcome Bonus Up To \$500`) {
		t.Fatalf("expected parsed template copy in Casino page")
	}
	// pages without template content fall back to the text collaborator
	if !strings.Contains(files["lucky-spin/src/pages/Faq.jsx"], "Opening copy for FAQ.") {
		t.Fatalf("expected generated copy in FAQ page")
	}
	if len(text.copyCalls) != 1 || text.copyCalls[0] != "FAQ" {
		t.Fatalf("expected copy generation only for FAQ, got %v", text.copyCalls)
	}
	if len(text.metaCalls) != 3 {
		t.Fatalf("expected meta generation for every page, got %v", text.metaCalls)
	}

	if !strings.Contains(files["lucky-spin/public/sitemap.xml"], "2026-03-01") {
		t.Fatalf("expected fixed clock date in sitemap")
	}

	wantSteps := 3 + 2*3
	if len(steps) != wantSteps {
		t.Fatalf("expected %d progress events, got %d: %v", wantSteps, len(steps), steps)
	}
	if !strings.HasPrefix(steps[0], "1/12 Creating project structure...") {
		t.Fatalf("unexpected first step: %q", steps[0])
	}
	if !strings.Contains(steps[len(steps)-1], "Assembling React components...") {
		t.Fatalf("unexpected last step: %q", steps[len(steps)-1])
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	config := baseConfig()
	run := func() []byte {
		images := &stubImages{available: map[string]bool{"Casino": true, "Mobile App": true, "FAQ": true}}
		service := project.New(images, &stubText{}, project.WithClock(fixedClock))
		artifact, err := service.Generate(context.Background(), config, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return artifact.Data
	}

	if !bytes.Equal(run(), run()) {
		t.Fatalf("expected identical archives for identical inputs")
	}
}

func TestGenerateEmbedsLogo(t *testing.T) {
	config := baseConfig()
	config.Logo = &project.Logo{
		Name:    "logo.png",
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
	}

	service := project.New(&stubImages{}, &stubText{}, project.WithClock(fixedClock))
	artifact, err := service.Generate(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	files := readArchive(t, artifact.Data)
	if files["lucky-spin/public/logo.png"] != "png-bytes" {
		t.Fatalf("expected decoded logo in archive")
	}
	if !strings.Contains(files["lucky-spin/src/components/Header.jsx"], "/logo.png") {
		t.Fatalf("expected header to reference the logo")
	}
}

func TestGenerateAppliesMetaTemplates(t *testing.T) {
	config := baseConfig()
	config.Meta = project.MetaTemplates{
		Title:       "{{page}} | {{brand}}",
		Description: "Play at {{brand}} on {{domain}}.",
	}

	text := &stubText{}
	service := project.New(&stubImages{}, text, project.WithClock(fixedClock))
	artifact, err := service.Generate(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	files := readArchive(t, artifact.Data)
	if !strings.Contains(files["lucky-spin/src/pages/Casino.jsx"], "Casino | Lucky Spin") {
		t.Fatalf("expected templated meta title in page head")
	}
	if len(text.metaCalls) != 0 {
		t.Fatalf("expected no AI meta calls when templates are set, got %v", text.metaCalls)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	service := project.New(&stubImages{}, &stubText{})
	_, err := service.Generate(context.Background(), project.ProjectConfig{Domain: "x.example"}, nil)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "brand") {
		t.Fatalf("expected brand mentioned in validation error, got %v", err)
	}
}

func TestComponentName(t *testing.T) {
	cases := map[string]string{
		"Casino":      "Casino",
		"mobile app":  "MobileApp",
		"FAQ":         "Faq",
		"Aviator!":    "Aviator",
		"live casino": "LiveCasino",
		"":            "Page",
	}
	for in, want := range cases {
		if got := project.ComponentName(in); got != want {
			t.Errorf("ComponentName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateBundlesGameAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lucky_wheel.webp"), []byte("webp-bytes"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	service := project.New(&stubImages{}, &stubText{},
		project.WithClock(fixedClock),
		project.WithGameAssetsDir(dir),
	)

	config := baseConfig()
	config.Pages = []string{"Casino", "Games"}
	config.ContentTemplate = ""

	artifact, err := service.Generate(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	files := readArchive(t, artifact.Data)
	if files["lucky-spin/public/games/lucky_wheel.webp"] != "webp-bytes" {
		t.Fatalf("expected game artwork bundled under public/games")
	}
	if _, ok := files["lucky-spin/public/games/notes.txt"]; ok {
		t.Fatalf("non-image files must not be bundled")
	}

	grid := files["lucky-spin/src/components/GameGrid.jsx"]
	if !strings.Contains(grid, `"name":"Lucky Wheel"`) || !strings.Contains(grid, `"src":"/games/lucky_wheel.webp"`) {
		t.Fatalf("GameGrid missing tile data: %q", grid)
	}

	gamesPage := files["lucky-spin/src/pages/Games.jsx"]
	if !strings.Contains(gamesPage, "import GameGrid from '../components/GameGrid';") {
		t.Fatalf("games page missing GameGrid import")
	}
	if !strings.Contains(gamesPage, "<GameGrid />") {
		t.Fatalf("games page missing GameGrid mount")
	}
	if strings.Contains(files["lucky-spin/src/pages/Casino.jsx"], "GameGrid") {
		t.Fatalf("home page should not mount GameGrid")
	}
}

func TestGenerateSkipsGameGridWithoutAssets(t *testing.T) {
	service := project.New(&stubImages{}, &stubText{}, project.WithClock(fixedClock))

	config := baseConfig()
	config.Pages = []string{"Games"}
	config.ContentTemplate = ""

	artifact, err := service.Generate(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	files := readArchive(t, artifact.Data)
	if _, ok := files["lucky-spin/src/components/GameGrid.jsx"]; ok {
		t.Fatalf("GameGrid must be omitted when no artwork is available")
	}
	if strings.Contains(files["lucky-spin/src/pages/Games.jsx"], "GameGrid") {
		t.Fatalf("games page must not reference an absent component")
	}
}
