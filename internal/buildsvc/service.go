package buildsvc

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

var (
	// ErrInvalidProject means the source archive is not a buildable project.
	ErrInvalidProject = errors.New("buildsvc: invalid project archive")
	// ErrBuildFailed wraps npm failures and missing build output.
	ErrBuildFailed = errors.New("buildsvc: build failed")
)

const (
	defaultTimeout   = 5 * time.Minute
	defaultNpmBinary = "npm"
	outputSnippetLen = 2000
)

// CommandRunner executes a tool inside dir and returns its combined output.
// Injectable so tests can simulate npm without a toolchain on the host.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Config holds the knobs for the build collaborator.
type Config struct {
	NpmBinary string
	Timeout   time.Duration
	WorkRoot  string
}

// Service turns a generated source archive into a built static bundle by
// unpacking it, running the project's npm build, and zipping dist/.
type Service struct {
	config Config
	run    CommandRunner
	logger interfaces.Logger
}

// Option customizes the service.
type Option func(*Service)

// WithCommandRunner overrides how npm is invoked.
func WithCommandRunner(runner CommandRunner) Option {
	return func(s *Service) {
		if runner != nil {
			s.run = runner
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a build service. Zero-value config fields fall back to npm on
// PATH, a five minute hard timeout, and the system temp dir.
func New(config Config, opts ...Option) *Service {
	if config.NpmBinary == "" {
		config.NpmBinary = defaultNpmBinary
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.WorkRoot == "" {
		config.WorkRoot = os.TempDir()
	}
	s := &Service{
		config: config,
		run:    execRunner,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ interfaces.BuildRunner = (*Service)(nil)

// Build unpacks sourceZip, runs npm install and npm run build under the hard
// timeout, and returns the zipped dist folder named after the project.
func (s *Service) Build(ctx context.Context, sourceZip []byte) (*interfaces.BuildArtifact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	tempDir, err := os.MkdirTemp(s.config.WorkRoot, "sitegen-build-")
	if err != nil {
		return nil, fmt.Errorf("buildsvc: create temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tempDir); rmErr != nil {
			s.logger.Warn("cleanup temp dir failed", "dir", tempDir, "error", rmErr)
		}
	}()

	projectName, err := unpackArchive(sourceZip, tempDir)
	if err != nil {
		return nil, err
	}

	workDir := filepath.Join(tempDir, projectName)
	if _, err := os.Stat(filepath.Join(workDir, "package.json")); err != nil {
		return nil, fmt.Errorf("%w: package.json not found", ErrInvalidProject)
	}

	s.logger.Info("building project", "project", projectName)
	if err := s.npm(ctx, workDir, "install"); err != nil {
		return nil, err
	}
	if err := s.npm(ctx, workDir, "run", "build"); err != nil {
		return nil, err
	}

	distDir := filepath.Join(workDir, "dist")
	if info, err := os.Stat(distDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: dist folder not found", ErrBuildFailed)
	}

	data, err := zipDirectory(distDir)
	if err != nil {
		return nil, fmt.Errorf("buildsvc: archive dist: %w", err)
	}

	return &interfaces.BuildArtifact{
		ProjectName: projectName + "-build",
		Data:        data,
	}, nil
}

func (s *Service) npm(ctx context.Context, dir string, args ...string) error {
	output, err := s.run(ctx, dir, s.config.NpmBinary, args...)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: npm %s timed out: %v", ErrBuildFailed, strings.Join(args, " "), ctxErr)
	}
	snippet := strings.TrimSpace(string(output))
	if len(snippet) > outputSnippetLen {
		snippet = snippet[len(snippet)-outputSnippetLen:]
	}
	if snippet == "" {
		snippet = err.Error()
	}
	return fmt.Errorf("%w: npm %s: %s", ErrBuildFailed, strings.Join(args, " "), snippet)
}

// unpackArchive extracts the zip into destDir and returns the project root
// folder name, the first path segment of the first file entry.
func unpackArchive(sourceZip []byte, destDir string) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(sourceZip), int64(len(sourceZip)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	projectName := ""
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if segment, _, found := strings.Cut(file.Name, "/"); found && segment != "" {
			projectName = segment
			break
		}
	}
	if projectName == "" {
		projectName = "site"
	}

	for _, file := range reader.File {
		destPath := filepath.Join(destDir, filepath.FromSlash(file.Name))
		// zip-slip guard
		if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return "", fmt.Errorf("%w: entry escapes archive root: %s", ErrInvalidProject, file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return "", fmt.Errorf("buildsvc: extract dir: %w", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return "", fmt.Errorf("buildsvc: extract dir: %w", err)
		}
		if err := extractFile(file, destPath); err != nil {
			return "", err
		}
	}
	return projectName, nil
}

func extractFile(file *zip.File, destPath string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("buildsvc: open archive entry %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("buildsvc: write %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("buildsvc: write %s: %w", destPath, err)
	}
	return nil
}

// zipDirectory packs the directory contents, paths relative to dir.
func zipDirectory(dir string) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		dst, err := writer.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
