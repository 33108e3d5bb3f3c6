package http

import (
	"encoding/json"
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-sitegen/internal/buildsvc"
	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/jobs"
	"github.com/goliatone/go-sitegen/internal/validation"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message,omitempty"`
	Issues  []validation.ValidationIssue `json:"issues,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	if errors.Is(err, jobs.ErrJobNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: "Job not found",
		}
	}

	if errors.Is(err, commands.ErrJobNotReady) {
		return http.StatusBadRequest, errorResponse{
			Error:   "job_not_ready",
			Message: "Job is not complete yet",
		}
	}

	if errors.Is(err, validation.ErrSchemaValidation) {
		return http.StatusBadRequest, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
			Issues:  validation.Issues(err),
		}
	}

	if goerrors.IsCategory(err, goerrors.CategoryValidation) {
		return http.StatusBadRequest, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		}
	}

	if errors.Is(err, buildsvc.ErrInvalidProject) {
		return http.StatusBadRequest, errorResponse{
			Error:   "invalid_project",
			Message: err.Error(),
		}
	}

	if errors.Is(err, buildsvc.ErrBuildFailed) {
		return http.StatusInternalServerError, errorResponse{
			Error:   "build_failed",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}
