package runtimeconfig

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrServerAddrRequired indicates a missing listen address.
	ErrServerAddrRequired = errors.New("sitegen config: server listen address is required")
	// ErrImageEndpointRequired indicates a missing image collaborator endpoint.
	ErrImageEndpointRequired = errors.New("sitegen config: image generator endpoint is required")
	// ErrTextEndpointRequired indicates a missing text collaborator endpoint.
	ErrTextEndpointRequired = errors.New("sitegen config: text generator endpoint is required")
	// ErrRetentionInvalid indicates a non-positive job retention window.
	ErrRetentionInvalid = errors.New("sitegen config: job retention must be positive")
	// ErrBuildTimeoutInvalid indicates a non-positive build timeout.
	ErrBuildTimeoutInvalid = errors.New("sitegen config: build timeout must be positive")
	// ErrLoggingFormatInvalid indicates an unknown logging format.
	ErrLoggingFormatInvalid = errors.New("sitegen config: logging format is invalid")
)

// Config aggregates every knob the generator service exposes. Fields use
// simple types so host applications can populate them from flags or env.
type Config struct {
	Server        ServerConfig
	Generator     GeneratorConfig
	Collaborators CollaboratorsConfig
	Retention     RetentionConfig
	Logging       LoggingConfig
}

// GeneratorConfig tunes the project generation pipeline.
type GeneratorConfig struct {
	// GameAssetsDir optionally points at a directory of game artwork bundled
	// into generated projects. Empty disables the game grid.
	GameAssetsDir string
}

// ServerConfig captures the HTTP listener settings.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// CollaboratorsConfig wires the external image, text, and build services.
type CollaboratorsConfig struct {
	Image ImageConfig
	Text  TextConfig
	Build BuildConfig
}

// ImageConfig configures the prompt-to-image collaborator.
type ImageConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Width    int
	Height   int
}

// TextConfig configures the chat-completion collaborator.
type TextConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

// BuildConfig configures the npm build collaborator.
type BuildConfig struct {
	NpmBinary string
	Timeout   time.Duration
	WorkRoot  string
}

// RetentionConfig controls the job reaper.
type RetentionConfig struct {
	JobTTL     time.Duration
	SweepEvery time.Duration
}

// LoggingConfig configures the go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the settings the server runs with when the host
// supplies nothing.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":3001",
			ShutdownTimeout: 10 * time.Second,
		},
		Collaborators: CollaboratorsConfig{
			Image: ImageConfig{
				Endpoint: "https://gen.pollinations.ai/image",
				Model:    "klein",
				Width:    1200,
				Height:   630,
			},
			Text: TextConfig{
				Endpoint: "https://gen.pollinations.ai/v1/chat/completions",
				Model:    "openai",
			},
			Build: BuildConfig{
				NpmBinary: "npm",
				Timeout:   5 * time.Minute,
			},
		},
		Retention: RetentionConfig{
			JobTTL:     time.Hour,
			SweepEvery: 10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first inconsistency in the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	if strings.TrimSpace(c.Collaborators.Image.Endpoint) == "" {
		return ErrImageEndpointRequired
	}
	if strings.TrimSpace(c.Collaborators.Text.Endpoint) == "" {
		return ErrTextEndpointRequired
	}
	if c.Collaborators.Build.Timeout <= 0 {
		return ErrBuildTimeoutInvalid
	}
	if c.Retention.JobTTL <= 0 || c.Retention.SweepEvery <= 0 {
		return ErrRetentionInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}
