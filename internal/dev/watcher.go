package dev

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	gitignore "github.com/sabhiram/go-gitignore"
)

// ChangeType classifies a changed file.
type ChangeType int

const (
	// ChangeGo requires a rebuild of main.wasm.
	ChangeGo ChangeType = iota
	// ChangeCSS can be applied by reloading stylesheets.
	ChangeCSS
	// ChangeAsset requires a page reload.
	ChangeAsset
)

func (t ChangeType) String() string {
	switch t {
	case ChangeGo:
		return "go"
	case ChangeCSS:
		return "css"
	default:
		return "asset"
	}
}

// Change is a created, modified or deleted file.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files and directories to watch.
	Paths []string

	// Ignore lists .gitignore style patterns matched against paths
	// relative to each watched root. A .gitignore file at the root is
	// applied as well.
	Ignore []string

	// Interval is the polling interval (default: 100ms).
	Interval time.Duration
}

// DefaultIgnore contains patterns the watcher always skips.
var DefaultIgnore = []string{
	"*_test.go",
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls the file system for changes.
type Watcher struct {
	config     WatcherConfig
	ignore     *gitignore.GitIgnore
	gitignores map[string]*gitignore.GitIgnore

	mu       sync.Mutex
	onChange func(Change)
	running  bool
	stopCh   chan struct{}
	seen     map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	w := &Watcher{
		config:     config,
		ignore:     gitignore.CompileIgnoreLines(config.Ignore...),
		gitignores: make(map[string]*gitignore.GitIgnore),
		seen:       make(map[string]time.Time),
	}
	for _, root := range config.Paths {
		if gi, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			w.gitignores[root] = gi
		}
	}
	return w
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done or Stop is called. Files present when
// Start is called are not reported.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stop := w.stopCh
	w.mu.Unlock()

	initial := w.scan()
	w.mu.Lock()
	w.seen = initial
	w.mu.Unlock()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan returns the modification times of all watched files.
func (w *Watcher) scan() map[string]time.Time {
	current := make(map[string]time.Time)
	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				rel = p
			}
			if w.shouldIgnore(root, rel) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if info, err := d.Info(); err == nil {
				current[p] = info.ModTime()
			}
			return nil
		})
	}
	return current
}

// poll compares a fresh scan against the previous one and reports at
// most one change per ChangeType.
func (w *Watcher) poll() {
	current := w.scan()

	w.mu.Lock()
	previous := w.seen
	w.seen = current
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changes []Change
	for p, mod := range current {
		if last, ok := previous[p]; !ok || mod.After(last) {
			changes = append(changes, Change{Path: p, Type: classifyChange(p)})
		}
	}
	for p := range previous {
		if _, ok := current[p]; !ok {
			changes = append(changes, Change{Path: p, Type: classifyChange(p)})
		}
	}

	reported := make(map[ChangeType]bool)
	for _, c := range changes {
		if !reported[c.Type] {
			reported[c.Type] = true
			callback(c)
		}
	}
}

// shouldIgnore reports whether p, relative to root, matches an ignore
// pattern or the root's .gitignore. Patterns use .gitignore syntax.
func (w *Watcher) shouldIgnore(root, p string) bool {
	if p == "." {
		return false
	}
	if w.ignore.MatchesPath(p) {
		return true
	}
	gi := w.gitignores[root]
	return gi != nil && gi.MatchesPath(p)
}

// classifyChange determines the change type from the file extension.
func classifyChange(p string) ChangeType {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".go", ".mod", ".sum":
		return ChangeGo
	case ".css":
		return ChangeCSS
	default:
		return ChangeAsset
	}
}
