// Package main provides the semshacl binary entry point.
// Semshacl validates data graphs against SHACL shapes graphs authored
// as YAML or JSON graph documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/semshacl/config"
	"github.com/c360studio/semshacl/graph"
	"github.com/c360studio/semshacl/term"
	"github.com/c360studio/semshacl/validation"
	"github.com/c360studio/semshacl/vocabulary/sh"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semshacl"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		code := 2
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			code = exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semshacl",
		Short: "SHACL validation for YAML/JSON graph documents",
		Long: `Semshacl loads shapes graphs and data graphs from YAML or JSON
graph documents and validates the data against the shapes.

Shapes graphs may declare their own constraint components; the built-in
SHACL core components are always available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(validateCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func validateCmd() *cobra.Command {
	var (
		configPath    string
		shapeGlobs    []string
		dataGlobs     []string
		logLevel      string
		maxResults    int
		severityFloor string
		watch         bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate data graphs against shapes graphs",
		Long: `Validate resolves the shapes and data glob patterns, builds a
validation engine from the combined shapes graph, and checks each data
graph against it.

Exit codes: 0 when all data conforms, 1 when violations were reported,
2 on load or build errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(logLevel)

			cfg, err := loadConfig(configPath, logger)
			if err != nil {
				return exitError(2, fmt.Errorf("load config: %w", err))
			}
			if len(shapeGlobs) > 0 {
				cfg.Shapes.Paths = shapeGlobs
			}
			if len(dataGlobs) > 0 {
				cfg.Data.Paths = dataGlobs
			}
			if cmd.Flags().Changed("max-results") {
				cfg.Validation.MaxResults = maxResults
			}
			if cmd.Flags().Changed("severity-floor") {
				cfg.Validation.SeverityFloor = severityFloor
			}
			if watch {
				cfg.Watch.Enabled = true
			}
			if err := cfg.Validate(); err != nil {
				return exitError(2, fmt.Errorf("invalid configuration: %w", err))
			}

			return runValidate(cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringSliceVar(&shapeGlobs, "shapes", nil, "Shapes graph files or glob patterns")
	cmd.Flags().StringSliceVar(&dataGlobs, "data", nil, "Data graph files or glob patterns")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Cap on reported results (0 = unlimited)")
	cmd.Flags().StringVar(&severityFloor, "severity-floor", "", "Drop results below this severity (info, warning, violation)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Watch files and re-validate on change")

	return cmd
}

func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.NewLoader(logger).Load()
}

// exitCodeError carries an exit code alongside the cause.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func exitError(code int, err error) error {
	return &exitCodeError{code: code, err: err}
}

func runValidate(cfg *config.Config, logger *slog.Logger) error {
	shapeFiles, err := resolveGlobs(cfg.Shapes.Paths)
	if err != nil {
		return exitError(2, fmt.Errorf("resolve shapes globs: %w", err))
	}
	if len(shapeFiles) == 0 {
		return exitError(2, fmt.Errorf("no shapes files match %v", cfg.Shapes.Paths))
	}
	dataFiles, err := resolveGlobs(cfg.Data.Paths)
	if err != nil {
		return exitError(2, fmt.Errorf("resolve data globs: %w", err))
	}
	if len(dataFiles) == 0 {
		return exitError(2, fmt.Errorf("no data files match %v", cfg.Data.Paths))
	}

	logger.Info("Resolved input files",
		slog.Int("shapes", len(shapeFiles)),
		slog.Int("data", len(dataFiles)))

	pass, err := validateOnce(cfg, shapeFiles, dataFiles, logger)
	if err != nil {
		return exitError(2, err)
	}

	if !cfg.Watch.Enabled {
		if !pass {
			return exitError(1, fmt.Errorf("validation reported violations"))
		}
		return nil
	}

	return runWatch(cfg, logger)
}

// validateOnce builds the engine from the shapes files and validates each
// data file. It returns false when any data graph fails to conform, at any
// severity surviving the configured floor.
func validateOnce(cfg *config.Config, shapeFiles, dataFiles []string, logger *slog.Logger) (bool, error) {
	shapesGraph, err := loadGraph(shapeFiles)
	if err != nil {
		return false, fmt.Errorf("load shapes: %w", err)
	}

	opts := []validation.Option{validation.WithLogger(logger)}
	if cfg.Validation.MaxResults > 0 {
		opts = append(opts, validation.WithMaxResults(cfg.Validation.MaxResults))
	}
	if floor := severityFloorTerm(cfg.Validation.SeverityFloor); !floor.IsZero() {
		opts = append(opts, validation.WithSeverityFloor(floor))
	}
	engine, err := validation.NewEngine(shapesGraph, opts...)
	if err != nil {
		return false, fmt.Errorf("build engine: %w", err)
	}

	pass := true
	for _, file := range dataFiles {
		data, err := loadGraph([]string{file})
		if err != nil {
			return false, fmt.Errorf("load data: %w", err)
		}
		report, err := engine.Validate(data)
		if err != nil {
			return false, fmt.Errorf("validate %s: %w", file, err)
		}
		printReport(file, report)
		if !report.Conforms {
			pass = false
		}
	}
	return pass, nil
}

func printReport(file string, report *validation.Report) {
	if report.Conforms {
		fmt.Printf("%s: conforms\n", file)
		return
	}
	fmt.Printf("%s: %d result(s)\n", file, len(report.Results))
	for _, r := range report.Results {
		fmt.Printf("  [%s] focus=%s", severityLabel(r.Severity), r.FocusNode)
		if !r.Value.IsZero() {
			fmt.Printf(" value=%s", r.Value)
		}
		if r.Message != "" {
			fmt.Printf(" message=%q", r.Message)
		}
		fmt.Println()
	}
}

// severityFloorTerm maps a config severity name to its IRI; empty or
// unknown names disable filtering.
func severityFloorTerm(name string) term.Term {
	switch name {
	case "info":
		return term.NewIRI(sh.Info)
	case "warning":
		return term.NewIRI(sh.Warning)
	case "violation":
		return term.NewIRI(sh.Violation)
	default:
		return term.Term{}
	}
}

func severityLabel(severity term.Term) string {
	s := severity.Value
	if i := strings.LastIndex(s, "#"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// runWatch re-validates on file changes until interrupted. The glob
// patterns are re-resolved on every change so files created or removed
// after startup take effect.
func runWatch(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := NewFileWatcher(cfg.Watch, cfg.Shapes.Paths, cfg.Data.Paths, logger)
	if err != nil {
		return exitError(2, fmt.Errorf("create watcher: %w", err))
	}
	if err := watcher.Start(ctx); err != nil {
		return exitError(2, fmt.Errorf("start watcher: %w", err))
	}
	defer func() { _ = watcher.Stop() }()

	logger.Info("Watching for changes",
		slog.Duration("debounce", cfg.Watch.GetDebounceDelay()))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil
		case change, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if change.ShapesChanged {
				logger.Info("Shapes changed, rebuilding engine",
					slog.Int("files", len(change.Paths)))
			} else {
				logger.Info("Data changed, re-validating",
					slog.Int("files", len(change.Paths)))
			}

			shapeFiles, err := resolveGlobs(cfg.Shapes.Paths)
			if err != nil || len(shapeFiles) == 0 {
				logger.Warn("No shapes files resolved, skipping run")
				continue
			}
			dataFiles, err := resolveGlobs(cfg.Data.Paths)
			if err != nil || len(dataFiles) == 0 {
				logger.Warn("No data files resolved, skipping run")
				continue
			}
			if _, err := validateOnce(cfg, shapeFiles, dataFiles, logger); err != nil {
				logger.Error("Validation failed", slog.String("error", err.Error()))
			}
		}
	}
}

// loadGraph parses each file through the default parser registry and merges
// the results into one graph.
func loadGraph(files []string) (*graph.Graph, error) {
	merged := graph.New()
	for _, file := range files {
		g, err := parseFile(file)
		if err != nil {
			return nil, err
		}
		merged.AddGraph(g)
	}
	return merged, nil
}
