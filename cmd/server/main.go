package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sitegen "github.com/goliatone/go-sitegen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("sitegen server: %v", err)
	}
}

func run(args []string) error {
	cfg := sitegen.DefaultConfig()

	fs := flag.NewFlagSet("sitegen-server", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, "HTTP listen address")
	shutdownTimeout := fs.Duration("shutdown-timeout", cfg.Server.ShutdownTimeout, "Grace period for in-flight requests on shutdown")
	gameAssets := fs.String("game-assets", cfg.Generator.GameAssetsDir, "Directory of game artwork bundled into generated projects")
	imageEndpoint := fs.String("image-endpoint", cfg.Collaborators.Image.Endpoint, "Base URL of the prompt-to-image service")
	imageModel := fs.String("image-model", cfg.Collaborators.Image.Model, "Image model identifier")
	textEndpoint := fs.String("text-endpoint", cfg.Collaborators.Text.Endpoint, "Chat-completion endpoint URL")
	textModel := fs.String("text-model", cfg.Collaborators.Text.Model, "Text model identifier")
	npmBinary := fs.String("npm", cfg.Collaborators.Build.NpmBinary, "npm binary used for project builds")
	buildTimeout := fs.Duration("build-timeout", cfg.Collaborators.Build.Timeout, "Hard wall-clock limit for npm builds")
	jobTTL := fs.Duration("job-ttl", cfg.Retention.JobTTL, "How long finished jobs stay downloadable")
	sweepEvery := fs.Duration("sweep-every", cfg.Retention.SweepEvery, "Interval between job retention sweeps")
	logLevel := fs.String("log-level", cfg.Logging.Level, "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", cfg.Logging.Format, "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Server.Addr = *addr
	cfg.Server.ShutdownTimeout = *shutdownTimeout
	cfg.Generator.GameAssetsDir = *gameAssets
	cfg.Collaborators.Image.Endpoint = *imageEndpoint
	cfg.Collaborators.Image.Model = *imageModel
	cfg.Collaborators.Image.APIKey = os.Getenv("SITEGEN_IMAGE_API_KEY")
	cfg.Collaborators.Text.Endpoint = *textEndpoint
	cfg.Collaborators.Text.Model = *textModel
	cfg.Collaborators.Text.APIKey = os.Getenv("SITEGEN_TEXT_API_KEY")
	cfg.Collaborators.Build.NpmBinary = *npmBinary
	cfg.Collaborators.Build.Timeout = *buildTimeout
	cfg.Retention.JobTTL = *jobTTL
	cfg.Retention.SweepEvery = *sweepEvery
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := sitegen.New(cfg)
	if err != nil {
		return fmt.Errorf("initialise module: %w", err)
	}
	module.Start()
	defer module.Close()

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: module.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()
	log.Printf("listening on %s", cfg.Server.Addr)

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
