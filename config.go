package sitegen

import "github.com/goliatone/go-sitegen/internal/runtimeconfig"

// Config exports the runtime configuration for consumers of the sitegen package.
type Config = runtimeconfig.Config

// ServerConfig exports the HTTP listener settings.
type ServerConfig = runtimeconfig.ServerConfig

// GeneratorConfig exports the generation pipeline settings.
type GeneratorConfig = runtimeconfig.GeneratorConfig

// CollaboratorsConfig exports the external collaborator settings.
type CollaboratorsConfig = runtimeconfig.CollaboratorsConfig

// RetentionConfig exports the job reaper settings.
type RetentionConfig = runtimeconfig.RetentionConfig

// LoggingConfig exports the go-logger provider settings.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns the configuration the module runs with when the host
// supplies nothing.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
