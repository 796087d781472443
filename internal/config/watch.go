package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file at path is written and delivers
// the result to onChange. A rewrite that fails to parse is dropped; the last
// good config stays in effect. Watch returns when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	if path == "" {
		path = configPath
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Op&fsnotify.Write == fsnotify.Write {
				if cfg, err := Load(path); err == nil {
					onChange(cfg)
				}
			}
		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
		}
	}
}
