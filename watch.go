package swiftcss

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// RunFunc receives the outcome of every run started by Watch.
type RunFunc func(result *Result, err error)

// Watch runs the pipeline once and then again after every relevant file
// change until ctx is cancelled. In ModeWatch only files with a configured
// extension and the input files trigger a run; in ModeDev any file below the
// scanned directories does. Events that arrive while a run is pending are
// coalesced into that run. Watch returns ErrConfigChanged when the
// configuration file is modified and nil when ctx is cancelled.
func (c *Compiler) Watch(ctx context.Context, mode Mode, onRun RunFunc) error {
	if mode == ModeBuild {
		mode = ModeWatch
	}
	if onRun == nil {
		onRun = func(*Result, error) {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	w := newWatchFilter(c, mode)
	for _, dir := range c.cfg.Directories {
		if err := addRecursive(watcher, dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	for _, dir := range w.extraDirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	onRun(c.runLogged(ctx, mode))
	c.logger.Info("watching for changes", "mode", mode.String(), "directories", strings.Join(c.cfg.Directories, ","))

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watcher error", "err", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			trigger, err := w.handle(watcher, event)
			if err != nil {
				return err
			}
			if !trigger {
				continue
			}

			// Drain what is already queued so a burst of saves triggers one run.
		drain:
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						break drain
					}
					if _, err := w.handle(watcher, event); err != nil {
						return err
					}
				default:
					break drain
				}
			}

			if ctx.Err() != nil {
				return nil
			}
			c.logger.Info("file changed", "path", event.Name, "op", event.Op.String())
			onRun(c.runLogged(ctx, mode))
		}
	}
}

// runLogged runs the pipeline once and logs its outcome.
func (c *Compiler) runLogged(ctx context.Context, mode Mode) (*Result, error) {
	result, err := c.Run(ctx, mode)
	if err != nil {
		c.logger.Error("generation failed", "err", err)
		return nil, err
	}
	c.logger.Info("changes generated", "output", result.Output, "rules", result.Rules.Total(), "duration", result.Duration)
	return result, nil
}

// addRecursive watches dir and every non-hidden directory below it.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// watchFilter decides which events trigger a run.
type watchFilter struct {
	c      *Compiler
	mode   Mode
	dirs   []string // absolute scanned directories
	exts   map[string]bool
	inputs map[string]bool
	output string
	config string
}

func newWatchFilter(c *Compiler, mode Mode) *watchFilter {
	w := &watchFilter{
		c:      c,
		mode:   mode,
		exts:   make(map[string]bool),
		inputs: make(map[string]bool),
		output: absPath(c.cfg.Output),
	}
	for _, dir := range c.cfg.Directories {
		w.dirs = append(w.dirs, absPath(dir))
	}
	for _, ext := range c.cfg.extensions() {
		w.exts["."+ext] = true
	}
	for _, in := range c.cfg.Input {
		w.inputs[absPath(in)] = true
	}
	if c.cfg.ConfigFile != "" {
		w.config = absPath(c.cfg.ConfigFile)
	}
	return w
}

// extraDirs are the parent directories of input and config files, which may lie
// outside the scanned directories.
func (w *watchFilter) extraDirs() []string {
	var dirs []string
	add := func(path string) {
		dir := filepath.Dir(path)
		if !w.within(dir) && !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for in := range w.inputs {
		add(in)
	}
	if w.config != "" {
		add(w.config)
	}
	slices.Sort(dirs)
	return dirs
}

// handle classifies an event. New directories are added to the watcher.
func (w *watchFilter) handle(watcher *fsnotify.Watcher, event fsnotify.Event) (bool, error) {
	if event.Op == fsnotify.Chmod {
		return false, nil
	}
	path := absPath(event.Name)

	if w.config != "" && path == w.config {
		return false, ErrConfigChanged
	}
	if path == w.output || strings.HasPrefix(filepath.Base(path), ".") {
		return false, nil
	}
	if w.inputs[path] {
		return true, nil
	}
	if !w.within(path) {
		return false, nil
	}

	if event.Has(fsnotify.Create) && isDir(path) {
		if err := addRecursive(watcher, path); err != nil {
			w.c.logger.Warn("cannot watch directory", "path", path, "err", err)
		}
		return w.mode == ModeDev, nil
	}
	if w.c.discovery.ignored(event.Name) {
		return false, nil
	}
	if w.mode == ModeDev {
		return true, nil
	}
	return w.exts[filepath.Ext(path)], nil
}

// within reports whether path lies in one of the scanned directories.
func (w *watchFilter) within(path string) bool {
	for _, dir := range w.dirs {
		if path == dir {
			return true
		}
		if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") && !isHidden(rel) {
			return true
		}
	}
	return false
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
