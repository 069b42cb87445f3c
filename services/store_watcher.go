package services

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// StoreWatcher reloads the vendor store when its backing file changes on disk.
type StoreWatcher struct {
	store *VendorStore
	dir   string
	file  string
}

// NewStoreWatcher watches the file that kv uses for key.
func NewStoreWatcher(store *VendorStore, kv *FileKeyValueStore, key string) (*StoreWatcher, error) {
	path, err := kv.PathFor(key)
	if err != nil {
		return nil, err
	}
	return &StoreWatcher{store: store, dir: kv.Dir, file: filepath.Clean(path)}, nil
}

// Watch blocks until ctx is cancelled. The store directory must exist.
func (w *StoreWatcher) Watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("WATCHER ERROR: Failed to create file watcher: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		log.Printf("WATCHER ERROR: Failed to add path to watcher: %v", err)
		return
	}
	log.Printf("WATCHER: Watching vendor store: %s", w.file)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("WATCHER ERROR: %v", err)
		case <-ctx.Done():
			log.Println("WATCHER: Context cancelled, shutting down watcher.")
			return
		}
	}
}

func (w *StoreWatcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.file {
		return
	}
	// Editors often save by writing a temp file and renaming it over the original.
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if err := w.store.Reload(); err != nil {
		log.Printf("WATCHER WARN: Keeping current vendors: %v", err)
	}
}
