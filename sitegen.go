package sitegen

import (
	"net/http"

	"github.com/goliatone/go-sitegen/internal/buildsvc"
	"github.com/goliatone/go-sitegen/internal/commands"
	sitegenhttp "github.com/goliatone/go-sitegen/internal/http"
	"github.com/goliatone/go-sitegen/internal/imagegen"
	"github.com/goliatone/go-sitegen/internal/jobs"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/project"
	"github.com/goliatone/go-sitegen/internal/textgen"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// ProjectConfig exports the generation request payload.
type ProjectConfig = project.ProjectConfig

// GeneratorService exports the project generation service contract.
type GeneratorService = *project.Service

// JobRegistry exports the in-memory job tracker.
type JobRegistry = *jobs.Registry

// BuildArtifact exports the zip archive DTO produced by generation and builds.
type BuildArtifact = interfaces.BuildArtifact

// Option overrides a collaborator wired by New. Every override is optional;
// nil values keep the default.
type Option func(*Module)

// WithLoggerProvider replaces the go-logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithImageGenerator replaces the prompt-to-image collaborator.
func WithImageGenerator(images interfaces.ImageGenerator) Option {
	return func(m *Module) {
		if images != nil {
			m.images = images
		}
	}
}

// WithTextClient replaces the chat-completion collaborator.
func WithTextClient(text project.TextClient) Option {
	return func(m *Module) {
		if text != nil {
			m.text = text
		}
	}
}

// WithBuildRunner replaces the npm build collaborator.
func WithBuildRunner(builder interfaces.BuildRunner) Option {
	return func(m *Module) {
		if builder != nil {
			m.builder = builder
		}
	}
}

// Module is the top level runtime façade. It owns the job registry, the
// generation pipeline, and the HTTP API, and wires a shared logger provider
// through all of them.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	images   interfaces.ImageGenerator
	text     project.TextClient
	builder  interfaces.BuildRunner

	registry  *jobs.Registry
	generator *project.Service
	api       *sitegenhttp.API
}

// New constructs a sitegen module using the provided configuration and
// optional collaborator overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.images == nil {
		m.images = imagegen.New(imagegen.Config{
			BaseURL: cfg.Collaborators.Image.Endpoint,
			APIKey:  cfg.Collaborators.Image.APIKey,
			Model:   cfg.Collaborators.Image.Model,
			Width:   cfg.Collaborators.Image.Width,
			Height:  cfg.Collaborators.Image.Height,
		}, imagegen.WithLogger(logging.ImageLogger(m.provider)))
	}
	if m.text == nil {
		m.text = textgen.New(textgen.Config{
			Endpoint: cfg.Collaborators.Text.Endpoint,
			APIKey:   cfg.Collaborators.Text.APIKey,
			Model:    cfg.Collaborators.Text.Model,
		}, textgen.WithLogger(logging.TextLogger(m.provider)))
	}
	if m.builder == nil {
		m.builder = buildsvc.New(buildsvc.Config{
			NpmBinary: cfg.Collaborators.Build.NpmBinary,
			Timeout:   cfg.Collaborators.Build.Timeout,
			WorkRoot:  cfg.Collaborators.Build.WorkRoot,
		}, buildsvc.WithLogger(logging.BuildLogger(m.provider)))
	}

	m.registry = jobs.NewRegistry(
		jobs.WithRetention(cfg.Retention.JobTTL, cfg.Retention.SweepEvery),
		jobs.WithLogger(logging.JobsLogger(m.provider)),
	)
	m.generator = project.New(m.images, m.text,
		project.WithLogger(logging.ProjectLogger(m.provider)),
		project.WithGameAssetsDir(cfg.Generator.GameAssetsDir),
	)

	commandLogger := commands.CommandLogger(m.provider, "project")
	m.api = sitegenhttp.NewAPI(
		m.registry,
		commands.NewGenerateSiteHandler(m.registry, m.generator, commandLogger),
		commands.NewBuildProjectHandler(m.registry, m.builder, commandLogger),
		sitegenhttp.WithLogger(logging.HTTPLogger(m.provider)),
	)

	return m, nil
}

// Registry exposes the job registry for hosts that drive jobs directly.
func (m *Module) Registry() JobRegistry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Generator exposes the project generation service.
func (m *Module) Generator() GeneratorService {
	if m == nil {
		return nil
	}
	return m.generator
}

// Register mounts the API routes on the supplied mux.
func (m *Module) Register(mux *http.ServeMux) {
	m.api.Register(mux)
}

// Handler returns a ready-to-serve handler with every route mounted.
func (m *Module) Handler() http.Handler {
	mux := http.NewServeMux()
	m.Register(mux)
	return mux
}

// Start launches the background job reaper. It returns immediately.
func (m *Module) Start() {
	m.registry.StartReaper()
}

// Close stops the reaper and releases registry resources.
func (m *Module) Close() {
	m.registry.Close()
}
