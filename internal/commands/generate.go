package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitegen/internal/jobs"
	"github.com/goliatone/go-sitegen/internal/project"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const generateSiteMessageType = "sitegen.project.generate"

// SiteGenerator is the generation service surface the command needs.
type SiteGenerator interface {
	Generate(ctx context.Context, cfg project.ProjectConfig, emit project.EmitFunc) (*interfaces.BuildArtifact, error)
}

// GenerateSiteCommand starts the asynchronous generation of a site project
// for an already-created job.
type GenerateSiteCommand struct {
	JobID  string                `json:"job_id"`
	Config project.ProjectConfig `json:"config"`
}

// Type implements command.Message.
func (GenerateSiteCommand) Type() string { return generateSiteMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m GenerateSiteCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.JobID) == "" {
		errs["job_id"] = validation.NewError("sitegen.project.generate.job_id_required", "job_id is required")
	}
	if err := m.Config.Validate(); err != nil {
		errs["config"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateSiteHandler kicks off generation runs against the job registry.
type GenerateSiteHandler struct {
	inner *Handler[GenerateSiteCommand]
}

// NewGenerateSiteHandler wires the generation service into the shared
// command foundation. Execute returns once the job is started; completion is
// observed through the registry's event stream.
func NewGenerateSiteHandler(registry *jobs.Registry, generator SiteGenerator, logger interfaces.Logger, opts ...HandlerOption[GenerateSiteCommand]) *GenerateSiteHandler {
	exec := func(ctx context.Context, msg GenerateSiteCommand) error {
		// the run outlives both the command timeout and the HTTP request
		runCtx := context.WithoutCancel(ctx)
		return registry.Run(runCtx, msg.JobID, func(ctx context.Context, emit func(step, total int, message string)) (*interfaces.BuildArtifact, error) {
			return generator.Generate(ctx, msg.Config, project.EmitFunc(emit))
		})
	}

	handlerOpts := []HandlerOption[GenerateSiteCommand]{
		WithLogger[GenerateSiteCommand](logger),
		WithOperation[GenerateSiteCommand]("project.generate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateSiteHandler{
		inner: NewHandler[GenerateSiteCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateSiteCommand].Execute.
func (h *GenerateSiteHandler) Execute(ctx context.Context, msg GenerateSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
