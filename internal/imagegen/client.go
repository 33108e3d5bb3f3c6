// Package imagegen fetches hero images from the remote prompt-to-image
// service, with bounded retries and graceful failure.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

var ErrImageUnavailable = errors.New("imagegen: image unavailable")

const (
	defaultBaseURL  = "https://gen.pollinations.ai/image"
	defaultModel    = "klein"
	defaultAttempts = 3
	defaultBackoff  = time.Second
	defaultWidth    = 1200
	defaultHeight   = 630
)

// pagePrompts carry the scene descriptions for well-known page names.
var pagePrompts = map[string]string{
	"home":       "luxurious casino interior with golden chandeliers, slot machines, neon lights, vibrant atmosphere, Las Vegas style",
	"about":      "elegant casino lobby with red carpet, golden accents, professional staff, premium gaming floor",
	"games":      "colorful slot machines and roulette tables, casino gaming floor, bright lights, excitement",
	"bonuses":    "golden coins and casino chips scattered, bonus jackpot concept, celebratory confetti",
	"promotions": "festive casino promotion banner, special offer concept, golden and red colors",
	"contact":    "modern casino customer support, friendly atmosphere, professional service desk",
	"faq":        "casino information desk, helpful staff, bright welcoming environment",
	"blog":       "casino lifestyle, entertainment and gaming concept, vibrant colors",
	"slots":      "colorful slot machine reels, jackpot symbols, bright casino lights",
	"live":       "live casino table with dealer, cards and chips, professional gaming",
}

var stylePrompts = map[string]string{
	"business":   "elegant casino photography, premium luxury, professional",
	"modern":     "modern casino design, sleek neon, contemporary gaming",
	"creative":   "vibrant artistic casino, bold colors, dynamic composition",
	"nature":     "organic casino aesthetic, warm golden tones",
	"minimalist": "clean casino design, refined luxury, minimal clutter",
}

// Config configures the image client.
type Config struct {
	BaseURL  string
	APIKey   string
	Model    string
	Width    int
	Height   int
	Attempts int
	Backoff  time.Duration
	Seed     func() int64
}

// Client talks to the prompt-to-image HTTP API.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     interfaces.Logger
}

// Option mutates a Client during construction.
type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds an image client with defaults filled in.
func New(config Config, opts ...Option) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Width <= 0 {
		config.Width = defaultWidth
	}
	if config.Height <= 0 {
		config.Height = defaultHeight
	}
	if config.Attempts <= 0 {
		config.Attempts = defaultAttempts
	}
	if config.Backoff <= 0 {
		config.Backoff = defaultBackoff
	}
	if config.Seed == nil {
		config.Seed = func() int64 { return time.Now().UnixNano() % 999999 }
	}

	client := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// GenerateHero fetches the hero image for a page. Retries up to the
// configured attempt count with increasing backoff; the final error wraps
// ErrImageUnavailable so callers can degrade instead of failing the job.
func (c *Client) GenerateHero(ctx context.Context, req interfaces.HeroImageRequest) (*interfaces.GeneratedImage, error) {
	prompt := BuildPrompt(req.Page, req.Brand, req.Style)
	seed := c.config.Seed()
	endpoint := fmt.Sprintf("%s/%s?%s", c.config.BaseURL, url.PathEscape(prompt), url.Values{
		"model":  {c.config.Model},
		"width":  {fmt.Sprintf("%d", c.config.Width)},
		"height": {fmt.Sprintf("%d", c.config.Height)},
		"seed":   {fmt.Sprintf("%d", seed)},
	}.Encode())

	var lastErr error
	for attempt := 1; attempt <= c.config.Attempts; attempt++ {
		img, err := c.fetch(ctx, endpoint)
		if err == nil {
			img.Filename = seo.PageSlug(req.Page) + "-hero.jpg"
			c.logger.Debug("hero image generated", "page", req.Page, "bytes", len(img.Data), "attempt", attempt)
			return img, nil
		}
		lastErr = err
		c.logger.Warn("hero image attempt failed", "page", req.Page, "attempt", attempt, "error", err)

		if attempt == c.config.Attempts {
			break
		}
		if err := sleep(ctx, c.config.Backoff*time.Duration(attempt)); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: page %q: %v", ErrImageUnavailable, req.Page, lastErr)
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*interfaces.GeneratedImage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "image/*")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("api error %d: %s", res.StatusCode, snippet(body, 300))
	}
	contentType := res.Header.Get("Content-Type")
	if !strings.Contains(contentType, "image") {
		return nil, fmt.Errorf("expected image, got %q: %s", contentType, snippet(body, 200))
	}

	return &interfaces.GeneratedImage{
		ContentType: contentType,
		Data:        body,
	}, nil
}

// BuildPrompt synthesizes the image prompt from the page concept and the
// requested visual style.
func BuildPrompt(pageName, brand, style string) string {
	normalized := strings.ToLower(strings.TrimSpace(pageName))
	base, ok := pagePrompts[normalized]
	if !ok {
		base = fmt.Sprintf("luxurious casino %s concept, golden accents, neon lights, vibrant gaming atmosphere, %s", normalized, brand)
	}
	styleDesc, ok := stylePrompts[style]
	if !ok {
		styleDesc = stylePrompts["modern"]
	}
	return fmt.Sprintf("%s, %s, photorealistic, high quality, no text, no watermark", base, styleDesc)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func snippet(body []byte, max int) string {
	s := string(body)
	if len(s) > max {
		s = s[:max]
	}
	return s
}
