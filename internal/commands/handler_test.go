package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-sitegen/internal/jobs"
	"github.com/goliatone/go-sitegen/internal/project"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

type testMessage struct{}

func (testMessage) Type() string { return "sitegen.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "sitegen.test.invalid" }

func (invalidMessage) Validate() error { return errors.New("invalid") }

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run on cancelled context")
	}
}

func TestHandlerWrapsExecutionFailure(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return errors.New("boom")
	})

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func validConfig() project.ProjectConfig {
	return project.ProjectConfig{
		Brand:  "Lucky Spin",
		Domain: "luckyspin.example",
		Pages:  []string{"Casino"},
	}
}

func TestGenerateSiteCommandValidate(t *testing.T) {
	msg := GenerateSiteCommand{JobID: "job-1", Config: validConfig()}
	if err := msg.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	if err := (GenerateSiteCommand{Config: validConfig()}).Validate(); err == nil {
		t.Fatal("expected missing job_id to fail validation")
	}
	if err := (GenerateSiteCommand{JobID: "job-1"}).Validate(); err == nil {
		t.Fatal("expected empty config to fail validation")
	}
}

type stubGenerator struct {
	artifact *interfaces.BuildArtifact
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ project.ProjectConfig, emit project.EmitFunc) (*interfaces.BuildArtifact, error) {
	if emit != nil {
		emit(1, 6, "Creating project structure...")
	}
	return s.artifact, s.err
}

func waitStatus(t *testing.T, registry *jobs.Registry, id string, want jobs.Status) jobs.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := registry.Get(id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", id, want)
	return jobs.Job{}
}

func TestGenerateSiteHandlerRunsJob(t *testing.T) {
	registry := jobs.NewRegistry()
	generator := &stubGenerator{artifact: &interfaces.BuildArtifact{ProjectName: "lucky-spin", Data: []byte("zip")}}
	handler := NewGenerateSiteHandler(registry, generator, nil)

	job := registry.Create()
	if err := handler.Execute(context.Background(), GenerateSiteCommand{JobID: job.ID, Config: validConfig()}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	done := waitStatus(t, registry, job.ID, jobs.StatusComplete)
	if done.Archive == nil || done.Archive.ProjectName != "lucky-spin" {
		t.Fatalf("expected archive stored on job, got %+v", done.Archive)
	}
}

func TestGenerateSiteHandlerUnknownJob(t *testing.T) {
	registry := jobs.NewRegistry()
	handler := NewGenerateSiteHandler(registry, &stubGenerator{}, nil)

	err := handler.Execute(context.Background(), GenerateSiteCommand{JobID: "missing", Config: validConfig()})
	if err == nil {
		t.Fatal("expected unknown job to fail")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

type stubBuilder struct {
	calls    int
	artifact *interfaces.BuildArtifact
	err      error
}

func (s *stubBuilder) Build(context.Context, []byte) (*interfaces.BuildArtifact, error) {
	s.calls++
	return s.artifact, s.err
}

func completeJob(t *testing.T, registry *jobs.Registry) jobs.Job {
	t.Helper()
	job := registry.Create()
	if err := registry.Run(context.Background(), job.ID, func(context.Context, func(int, int, string)) (*interfaces.BuildArtifact, error) {
		return &interfaces.BuildArtifact{ProjectName: "site", Data: []byte("source")}, nil
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return waitStatus(t, registry, job.ID, jobs.StatusComplete)
}

func TestBuildProjectHandlerBuildsAndCaches(t *testing.T) {
	registry := jobs.NewRegistry()
	builder := &stubBuilder{artifact: &interfaces.BuildArtifact{ProjectName: "site-build", Data: []byte("dist")}}
	handler := NewBuildProjectHandler(registry, builder, nil)

	job := completeJob(t, registry)

	if err := handler.Execute(context.Background(), BuildProjectCommand{JobID: job.ID}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	cached, err := registry.Get(job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cached.BuildArchive == nil || cached.BuildArchive.ProjectName != "site-build" {
		t.Fatalf("expected build archive cached, got %+v", cached.BuildArchive)
	}

	if err := handler.Execute(context.Background(), BuildProjectCommand{JobID: job.ID}); err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if builder.calls != 1 {
		t.Fatalf("expected cached build to skip the runner, got %d calls", builder.calls)
	}
}

func TestBuildProjectHandlerRejectsPendingJob(t *testing.T) {
	registry := jobs.NewRegistry()
	handler := NewBuildProjectHandler(registry, &stubBuilder{}, nil)

	job := registry.Create()
	err := handler.Execute(context.Background(), BuildProjectCommand{JobID: job.ID})
	if err == nil {
		t.Fatal("expected pending job to be rejected")
	}
	if !errors.Is(err, ErrJobNotReady) {
		t.Fatalf("expected ErrJobNotReady, got %v", err)
	}
}
