package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/semshacl/config"
)

const eventChannelBuffer = 16

// ChangeEvent reports a debounced batch of file changes.
type ChangeEvent struct {
	// Paths lists the changed files.
	Paths []string

	// ShapesChanged is true when any changed file matches a shapes
	// pattern, meaning the engine must be rebuilt.
	ShapesChanged bool
}

// FileWatcher watches the base directories of the input glob patterns and
// emits debounced change events. Matching is against the patterns, not a
// fixed file list, so files created after startup are picked up.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	shapePatterns []string
	dataPatterns  []string

	pendingMu sync.Mutex
	pending   map[string]bool

	events chan ChangeEvent
}

// NewFileWatcher creates a watcher over the shapes and data patterns.
func NewFileWatcher(cfg config.WatchConfig, shapePatterns, dataPatterns []string, logger *slog.Logger) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	w := &FileWatcher{
		watcher:       fsw,
		logger:        logger,
		debounce:      cfg.GetDebounceDelay(),
		shapePatterns: shapePatterns,
		dataPatterns:  dataPatterns,
		pending:       make(map[string]bool),
		events:        make(chan ChangeEvent, eventChannelBuffer),
	}
	return w, nil
}

// Events returns the channel of debounced change events.
func (w *FileWatcher) Events() <-chan ChangeEvent {
	return w.events
}

// Start adds watches under the base directory of every pattern and begins
// processing events.
func (w *FileWatcher) Start(ctx context.Context) error {
	bases := make(map[string]bool)
	for _, pattern := range append(append([]string{}, w.shapePatterns...), w.dataPatterns...) {
		bases[patternBase(pattern)] = true
	}

	for base := range bases {
		if err := w.addWatchesRecursive(base); err != nil {
			w.logger.Warn("Failed to watch pattern base",
				slog.String("path", base),
				slog.String("error", err.Error()))
		}
	}

	go w.processEvents(ctx)
	return nil
}

// patternBase returns the static directory prefix of a glob pattern, or
// the containing directory of a literal path.
func patternBase(pattern string) string {
	if hasGlobMeta(pattern) {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		return filepath.FromSlash(base)
	}
	return filepath.Dir(pattern)
}

// addWatchesRecursive adds watches to base and its subdirectories,
// skipping hidden directories.
func (w *FileWatcher) addWatchesRecursive(base string) error {
	return filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		name := filepath.Base(path)
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
		} else {
			w.logger.Debug("Watching directory", slog.String("path", path))
		}
		return nil
	})
}

// Stop stops the watcher. The events channel is closed by processEvents
// when it exits.
func (w *FileWatcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *FileWatcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *FileWatcher) handleFSEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	// New directories need their own watches for events beneath them.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addWatchesRecursive(event.Name)
			return
		}
	}

	path := filepath.Clean(event.Name)
	if !matchesAny(w.shapePatterns, path) && !matchesAny(w.dataPatterns, path) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = true
	w.pendingMu.Unlock()
}

// matchesAny reports whether path matches one of the patterns. Literal
// patterns compare cleaned paths; glob patterns use doublestar matching.
func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if filepath.Clean(pattern) == path {
				return true
			}
			continue
		}
		ok, err := doublestar.PathMatch(pattern, path)
		if err == nil && ok {
			return true
		}
	}
	return false
}

func (w *FileWatcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	pending := w.pending
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	change := ChangeEvent{}
	for path := range pending {
		change.Paths = append(change.Paths, path)
		if matchesAny(w.shapePatterns, path) {
			change.ShapesChanged = true
		}
	}

	select {
	case w.events <- change:
	default:
		w.logger.Warn("Dropped change event, channel full",
			slog.Int("paths", len(change.Paths)))
	}
}
