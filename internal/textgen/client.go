// Package textgen generates page copy and SEO meta via the remote
// chat-completion service, falling back to deterministic placeholder copy
// when the service is unreachable.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

var ErrTextUnavailable = errors.New("textgen: text unavailable")

const (
	defaultEndpoint = "https://gen.pollinations.ai/v1/chat/completions"
	defaultModel    = "openai"
	defaultAttempts = 3
	defaultBackoff  = 2 * time.Second
)

// Config configures the text client.
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	Attempts int
	Backoff  time.Duration
}

// Client talks to the chat-completion HTTP API.
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

// New builds a text client with defaults filled in.
func New(config Config, opts ...Option) *Client {
	if config.Endpoint == "" {
		config.Endpoint = defaultEndpoint
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Attempts <= 0 {
		config.Attempts = defaultAttempts
	}
	if config.Backoff <= 0 {
		config.Backoff = defaultBackoff
	}

	client := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: time.Minute},
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GeneratePageCopy asks the model for hero copy and sections for a page.
// When every attempt fails it returns the deterministic placeholder copy and
// a nil error, so the pipeline degrades instead of aborting.
var _ interfaces.TextGenerator = (*Client)(nil)

func (c *Client) GeneratePageCopy(ctx context.Context, brand, domain, page, offerURL string) (*interfaces.PageCopy, error) {
	messages := []chatMessage{
		{
			Role:    "system",
			Content: "You are a creative web content writer for online casino and gaming websites. Generate vibrant, exciting content in JSON format. Output ONLY valid JSON, no markdown, no code fences.",
		},
		{
			Role: "user",
			Content: fmt.Sprintf(`Generate content for the %q page of the %q online casino website (%s).

Return JSON with this exact structure:
{
  "heroTitle": "main heading for the page",
  "heroSubtitle": "subtitle/description under the heading",
  "sections": [
    {
      "title": "section heading",
      "content": "2-3 sentences of content",
      "hasCTA": true
    }
  ],
  "ctaText": "call to action button text"
}

Requirements:
- heroTitle: catchy, exciting, casino/gaming themed, 5-10 words
- heroSubtitle: compelling, inviting, 20-40 words
- Generate 5-6 sections relevant to %q (slots, bonuses, games, promotions, live casino, sports betting, VIP, etc.)
- Each section content: 2-4 sentences, engaging, vibrant tone, casino vocabulary (jackpot, bonus, spin, win, etc.)
- ctaText: action text like "Play Now", "Claim Bonus", "Join Now" (2-4 words)
- Tone: fun, exciting, colorful - NOT formal or corporate
- The CTA link is: %s`, page, brand, domain, page, offerURL),
		},
	}

	raw, err := c.call(ctx, messages, 0.7)
	if err != nil {
		c.logger.Warn("page copy generation failed, using placeholder", "page", page, "error", err)
		return PlaceholderCopy(brand, domain, page), nil
	}

	var copyPayload struct {
		HeroTitle    string                   `json:"heroTitle"`
		HeroSubtitle string                   `json:"heroSubtitle"`
		CTAText      string                   `json:"ctaText"`
		Sections     []interfaces.CopySection `json:"sections"`
	}
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &copyPayload); err != nil {
		c.logger.Warn("page copy response unparseable, using placeholder", "page", page, "error", err)
		return PlaceholderCopy(brand, domain, page), nil
	}
	if len(copyPayload.Sections) == 0 {
		return PlaceholderCopy(brand, domain, page), nil
	}

	return &interfaces.PageCopy{
		HeroTitle:    copyPayload.HeroTitle,
		HeroSubtitle: copyPayload.HeroSubtitle,
		CTAText:      copyPayload.CTAText,
		Sections:     copyPayload.Sections,
	}, nil
}

// GenerateMeta asks the model for SEO meta tags, falling back to the
// deterministic meta on failure.
func (c *Client) GenerateMeta(ctx context.Context, brand, domain, page string) seo.Meta {
	messages := []chatMessage{
		{
			Role:    "system",
			Content: "You are an SEO expert. Generate meta tags. Output ONLY valid JSON, no markdown.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf(`Generate SEO meta tags for the %q page of %q (%s). Return JSON: {"title":"...","description":"...","keywords":"..."}`, page, brand, domain),
		},
	}

	raw, err := c.call(ctx, messages, 0.5)
	if err != nil {
		return seo.FallbackMeta(brand, domain, page)
	}
	var meta seo.Meta
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &meta); err != nil || meta.Title == "" {
		return seo.FallbackMeta(brand, domain, page)
	}
	return meta
}

func (c *Client) call(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 1; attempt <= c.config.Attempts; attempt++ {
		content, err := c.post(ctx, payload)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if attempt == c.config.Attempts {
			break
		}
		if err := sleep(ctx, c.config.Backoff); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %v", ErrTextUnavailable, lastErr)
}

func (c *Client) post(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("api error %d", res.StatusCode)
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", err
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return decoded.Choices[0].Message.Content, nil
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*")

// CleanJSON strips markdown code fences models sometimes wrap JSON in.
func CleanJSON(raw string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(raw, ""))
}

// PlaceholderCopy is the deterministic page copy used when the text service
// is unreachable.
func PlaceholderCopy(brand, domain, page string) *interfaces.PageCopy {
	return &interfaces.PageCopy{
		HeroTitle:    fmt.Sprintf("Welcome to %s - %s", brand, page),
		HeroSubtitle: fmt.Sprintf("Spin the reels, hit the jackpot! %s brings you the best casino games, exclusive bonuses, and the ultimate gaming experience at %s.", brand, domain),
		CTAText:      "Play Now",
		Sections: []interfaces.CopySection{
			{Title: fmt.Sprintf("Play & Win at %s", brand), Content: fmt.Sprintf("%s offers thrilling slots, live casino, and exclusive bonuses. Join thousands of winners at %s. Experience world-class entertainment 24/7.", brand, domain), HasCTA: true},
			{Title: fmt.Sprintf("Why Players Love %s", brand), Content: fmt.Sprintf("Big jackpots, fast payouts, and 24/7 support. %s delivers non-stop excitement and rewards. Our platform is trusted by players worldwide.", brand)},
			{Title: "Exclusive VIP Program", Content: "Join our VIP program for personalized rewards, higher limits, and dedicated account managers. The more you play, the more you earn!"},
			{Title: "Lightning-Fast Payouts", Content: "Withdraw your winnings in under 90 seconds via trusted payment methods. We support all major e-wallets, cards, and crypto payments."},
			{Title: "Safe & Secure Gaming", Content: "Your security is our top priority. We use industry-leading encryption and are fully licensed to ensure fair play at all times."},
			{Title: "Claim Your Bonus Now", Content: fmt.Sprintf("Ready to play? Visit %s and grab your welcome bonus. The next big win could be yours! Start spinning today.", domain), HasCTA: true},
		},
	}
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
