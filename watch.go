package trimview

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleFor groups the burst of events an editor produces while saving a file.
const settleFor = 100 * time.Millisecond

// WatchConfig reloads the configuration file at path every time it changes.
// The parent directory is watched so that editors replacing the file are followed.
// Valid configurations are sent on the first channel and load errors on the second.
// Both channels are closed once ctx is done.
func WatchConfig(ctx context.Context, path string) (<-chan *Config, <-chan error, error) {
	path = filepath.Clean(path)

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, nil, err
	}

	configs := make(chan *Config)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(configs)
		defer fs.Close()

		settle := time.NewTimer(time.Hour)
		settle.Stop()
		defer settle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-fs.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != path {
					continue
				}
				if evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename) {
					settle.Reset(settleFor)
				}
			case err, ok := <-fs.Errors:
				if !ok {
					return
				}
				send(ctx, errs, err)
			case <-settle.C:
				conf, err := LoadConfig(path)
				if err != nil {
					send(ctx, errs, err)
					continue
				}
				send(ctx, configs, conf)
			}
		}
	}()
	return configs, errs, nil
}

func send[T any](ctx context.Context, ch chan<- T, v T) {
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}
