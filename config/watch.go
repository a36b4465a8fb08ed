package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the tuning file at path whenever it changes and publishes
// each valid result on the returned channel. Reloads always start from base,
// so deleting a key restores the value in base. The channel holds at most
// one pending config and a newer reload replaces an unread one.
//
// The directory is watched rather than the file so editors that save by
// renaming a temp file over the original keep working.
func Watch(path string, base CameraConfig) (<-chan CameraConfig, func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	updates := make(chan CameraConfig, 1)

	go func() {
		defer close(updates)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cam, err := LoadCameraFile(path, base)
				if err != nil {
					log.Printf("Warning: Could not reload %s: %v", path, err)
					continue
				}
				publish(updates, cam)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: Camera config watcher: %v", err)
			}
		}
	}()

	return updates, watcher.Close, nil
}

// WatchCameraFile watches the tuning file at path. Each reload overlays the
// built-in defaults, never the values loaded at startup, so a key removed
// from the file goes back to its default.
func WatchCameraFile(path string) (<-chan CameraConfig, func() error, error) {
	return Watch(path, DefaultCamera())
}

// publish replaces any unread config with cam.
func publish(updates chan CameraConfig, cam CameraConfig) {
	select {
	case <-updates:
	default:
	}
	updates <- cam
}
