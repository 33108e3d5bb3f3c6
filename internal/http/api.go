package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/jobs"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/preview"
	"github.com/goliatone/go-sitegen/internal/project"
	"github.com/goliatone/go-sitegen/internal/validation"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const maxRequestBody = 50 << 20

// API exposes the generation service over HTTP.
type API struct {
	registry *jobs.Registry
	generate *commands.GenerateSiteHandler
	build    *commands.BuildProjectHandler
	preview  *preview.Renderer
	logger   interfaces.Logger
}

// Option customizes the API.
type Option func(*API)

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// NewAPI wires the route handlers to the job registry and command handlers.
func NewAPI(registry *jobs.Registry, generate *commands.GenerateSiteHandler, build *commands.BuildProjectHandler, opts ...Option) *API {
	api := &API{
		registry: registry,
		generate: generate,
		build:    build,
		preview:  preview.NewRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// Register mounts every route on the mux.
func (api *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/generate", api.handleGenerate)
	mux.HandleFunc("GET /api/progress/{jobID}", api.handleProgress)
	mux.HandleFunc("GET /api/download/{jobID}", api.handleDownload)
	mux.HandleFunc("GET /api/download-build/{jobID}", api.handleDownloadBuild)
	mux.HandleFunc("GET /api/preview/{jobID}", api.handlePreview)
}

func (api *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "could not read request body"})
		return
	}

	payload, err := validation.DecodePayload(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := validation.ValidateGenerateRequest(payload); err != nil {
		writeError(w, err)
		return
	}

	var config project.ProjectConfig
	if err := json.Unmarshal(body, &config); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	job := api.registry.Create()
	if err := api.generate.Execute(r.Context(), commands.GenerateSiteCommand{JobID: job.ID, Config: config}); err != nil {
		api.logger.Error("generate request rejected", "job_id", job.ID, "error", err)
		writeError(w, err)
		return
	}

	api.logger.Info("generation started", "job_id", job.ID, "brand", config.Brand, "pages", len(config.Pages))
	writeJSON(w, http.StatusOK, map[string]string{"jobId": job.ID})
}

func (api *API) handleProgress(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobID")
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming_unsupported"})
		return
	}

	events, cancel, err := api.registry.Subscribe(jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// current state first so a reconnecting client does not wait for the
	// next step to learn where the job stands
	if job, err := api.registry.Get(jobID); err == nil && !job.Status.Terminal() {
		writeEvent(w, flusher, jobs.Event{Type: jobs.EventProgress, Data: job.Progress})
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			writeEvent(w, flusher, event)
			if event.Type == jobs.EventComplete || event.Type == jobs.EventError {
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event jobs.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

func (api *API) handleDownload(w http.ResponseWriter, r *http.Request) {
	job, err := api.registry.Get(r.PathValue("jobID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if job.Status != jobs.StatusComplete || job.Archive == nil {
		writeError(w, commands.ErrJobNotReady)
		return
	}
	serveArchive(w, job.Archive.ProjectName+"-project.zip", job.Archive.Data)
}

func (api *API) handleDownloadBuild(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobID")
	if err := api.build.Execute(r.Context(), commands.BuildProjectCommand{JobID: jobID}); err != nil {
		writeError(w, err)
		return
	}

	job, err := api.registry.Get(jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job.BuildArchive == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "build_failed", Message: "build produced no archive"})
		return
	}
	serveArchive(w, job.BuildArchive.ProjectName+".zip", job.BuildArchive.Data)
}

func (api *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	job, err := api.registry.Get(r.PathValue("jobID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if job.Status != jobs.StatusComplete || job.Archive == nil {
		writeError(w, commands.ErrJobNotReady)
		return
	}

	page, err := api.preview.ProjectPage(job.Archive.ProjectName, job.Archive.Data)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func serveArchive(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
