// SPDX-License-Identifier: GPL-3.0-or-later

package file

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thatmisaki/aoc-2024/logger"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = time.Millisecond * 300

// Watcher waits for changes of config files and puzzle inputs.
//
// A watched directory matches the '.conf' files in it, a watched file
// matches only itself. Editors often replace a file instead of writing it,
// so the parent directory of every file is watched and events are filtered
// by name.
type Watcher struct {
	*logger.Logger

	paths    []string
	Debounce time.Duration
}

func NewWatcher(paths []string) *Watcher {
	return &Watcher{
		Logger: logger.New().With(
			slog.String("component", "discovery"),
			slog.String("discoverer", "file watcher"),
		),
		paths:    paths,
		Debounce: defaultDebounce,
	}
}

func (w *Watcher) String() string {
	return "file watcher"
}

// Wait blocks until a watched path changes and no further change follows
// within the debounce period. It returns ctx.Err() if ctx is done first.
func (w *Watcher) Wait(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Close() }()

	dirs, files := w.targets()

	added := make(map[string]bool)
	for _, dir := range append(dirs, parentDirs(files)...) {
		if added[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			w.Debugf("skip watching '%s': %v", dir, err)
			continue
		}
		added[dir] = true
	}
	if len(added) == 0 {
		return errors.New("nothing to watch")
	}

	confDirs := dirSet(dirs)
	match := func(name string) bool {
		name = filepath.Clean(name)
		if files[name] {
			return true
		}
		return strings.HasSuffix(name, ".conf") && confDirs[filepath.Dir(name)]
	}

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if event.Op == fsnotify.Chmod || !match(event.Name) {
				continue
			}
			w.Debugf("%s: %s", event.Op, event.Name)
			timer.Reset(w.Debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			w.Warning(err)
		case <-timer.C:
			return nil
		}
	}
}

func (w *Watcher) targets() (dirs []string, files map[string]bool) {
	files = make(map[string]bool)
	for _, path := range w.paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
			dirs = append(dirs, abs)
		} else {
			files[abs] = true
		}
	}
	return dirs, files
}

func parentDirs(files map[string]bool) []string {
	var dirs []string
	for name := range files {
		dirs = append(dirs, filepath.Dir(name))
	}
	return dirs
}

func dirSet(dirs []string) map[string]bool {
	set := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		set[d] = true
	}
	return set
}
