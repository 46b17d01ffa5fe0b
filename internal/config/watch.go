package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/fsnotify/fsnotify"
)

// Watch emits the freshly loaded config whenever the file under
// baseDir changes on disk. The directory is watched rather than the
// file itself, since the file may not exist yet. The channel closes
// when ctx is cancelled.
func Watch(ctx context.Context, baseDir string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(Path(baseDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	updates := make(chan *Config, 1)

	go func() {
		defer watcher.Close()
		defer close(updates)

		var last *Config

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(configFile) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(baseDir)
				if err != nil {
					continue
				}
				// Editors fire several events per save; only forward
				// actual changes.
				if last != nil && reflect.DeepEqual(cfg, last) {
					continue
				}
				last = cfg
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return updates, nil
}
