package logging

import (
	"context"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const (
	rootModule    = "sitegen"
	projectModule = "sitegen.project"
	jobsModule    = "sitegen.jobs"
	httpModule    = "sitegen.http"
	imageModule   = "sitegen.imagegen"
	textModule    = "sitegen.textgen"
	buildModule   = "sitegen.build"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ProjectLogger returns the logger namespace reserved for project generation.
func ProjectLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, projectModule)
}

// JobsLogger returns the logger namespace reserved for the job registry.
func JobsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, jobsModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP API.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// ImageLogger returns the logger namespace reserved for the image collaborator.
func ImageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, imageModule)
}

// TextLogger returns the logger namespace reserved for the text collaborator.
func TextLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, textModule)
}

// BuildLogger returns the logger namespace reserved for the build collaborator.
func BuildLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, buildModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
