package commands

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/packforge/packforge/internal/logger"
)

// WatchCmd builds once, then watches the project directory and rebuilds
// on changes. The configuration is recomposed on every rebuild so
// override file edits take effect without a restart.
type WatchCmd struct {
	Dir      string        `arg:"" optional:"" default:"." help:"Project directory"`
	Config   string        `help:"Path to the overrides file, relative to the project directory" default:"packforge.yml"`
	Debounce time.Duration `help:"Quiet period before a rebuild" default:"300ms"`
}

func (c *WatchCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	engine, err := composeEngine(c.Dir, c.Config, globals, log)
	if err != nil {
		return err
	}

	if err := engine.Build(); err != nil {
		log.Error().Err(err).Msg("initial build failed")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	root := engine.Options().Context
	output := engine.Options().OutputPath
	if err := addWatchDirs(watcher, root, output); err != nil {
		return err
	}

	log.Info().Str("dir", root).Msg("watching for changes")

	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-rebuild:
			// Recompose so override file changes are picked up.
			next, err := composeEngine(c.Dir, c.Config, globals, log)
			if err != nil {
				log.Error().Err(err).Msg("recompose failed")
				continue
			}
			engine = next
			if err := engine.Build(); err != nil {
				log.Error().Err(err).Msg("rebuild failed")
				continue
			}
			log.Info().Msg("rebuilt")

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoredPath(event.Name, output) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(c.Debounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}

// addWatchDirs registers root and every subdirectory except the output
// path, dependency directories and hidden directories.
func addWatchDirs(watcher *fsnotify.Watcher, root, output string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (path == output || d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}

// ignoredPath filters events under the output path so rebuild output
// never retriggers a rebuild.
func ignoredPath(path, output string) bool {
	if strings.HasPrefix(path, output+string(filepath.Separator)) || path == output {
		return true
	}
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "."
}
