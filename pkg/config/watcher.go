package config

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file whenever it changes on disk and delivers
// the new value on the returned channel. Close the stop channel to end the
// watch. Reload failures are logged and skipped; the last good config stays
// in effect.
func Watch(path string, logger *log.Logger, stop <-chan struct{}) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	out := make(chan Config, 1)
	go func() {
		defer watcher.Close()
		defer close(out)
		for {
			select {
			case <-stop:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Printf("WARNING: config reload failed: %v", err)
					continue
				}
				// Drop a stale pending value so the reader always sees
				// the newest config.
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("WARNING: config watcher: %v", err)
			}
		}
	}()
	return out, nil
}
