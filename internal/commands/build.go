package commands

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitegen/internal/jobs"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const buildProjectMessageType = "sitegen.project.build"

// ErrJobNotReady means the job has no completed source archive to build.
var ErrJobNotReady = errors.New("commands: job is not complete yet")

// BuildProjectCommand builds the static bundle for a completed job. The
// resulting archive is cached on the job so repeated requests skip the
// npm run.
type BuildProjectCommand struct {
	JobID string `json:"job_id"`
}

// Type implements command.Message.
func (BuildProjectCommand) Type() string { return buildProjectMessageType }

// Validate ensures the message carries the required fields.
func (m BuildProjectCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.JobID) == "" {
		errs["job_id"] = validation.NewError("sitegen.project.build.job_id_required", "job_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildProjectHandler runs the build collaborator for completed jobs.
type BuildProjectHandler struct {
	inner *Handler[BuildProjectCommand]
}

// NewBuildProjectHandler wires the build runner into the shared command
// foundation. The handler timeout is disabled; the runner enforces its own
// hard wall-clock limit.
func NewBuildProjectHandler(registry *jobs.Registry, builder interfaces.BuildRunner, logger interfaces.Logger, opts ...HandlerOption[BuildProjectCommand]) *BuildProjectHandler {
	exec := func(ctx context.Context, msg BuildProjectCommand) error {
		job, err := registry.Get(msg.JobID)
		if err != nil {
			return err
		}
		if job.Status != jobs.StatusComplete || job.Archive == nil {
			return ErrJobNotReady
		}
		if job.BuildArchive != nil {
			return nil
		}

		artifact, err := builder.Build(ctx, job.Archive.Data)
		if err != nil {
			return err
		}
		return registry.SetBuildArchive(msg.JobID, artifact)
	}

	handlerOpts := []HandlerOption[BuildProjectCommand]{
		WithLogger[BuildProjectCommand](logger),
		WithOperation[BuildProjectCommand]("project.build"),
		WithTimeout[BuildProjectCommand](0),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildProjectHandler{
		inner: NewHandler[BuildProjectCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildProjectCommand].Execute.
func (h *BuildProjectHandler) Execute(ctx context.Context, msg BuildProjectCommand) error {
	return h.inner.Execute(ctx, msg)
}
