package pricing

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invokes onChange whenever the pricing file is written or
// recreated, until ctx is cancelled. Lookups already re-read the file,
// so watching is only needed by frontends that want to refresh an
// estimate the moment the user saves an edit.
//
// The watcher runs in its own goroutine; Watch returns once it is
// installed. Watching the directory rather than the file survives
// editors that replace-on-save.
func (c *Catalog) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	baseName := filepath.Base(c.path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != baseName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				onChange()

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Usually recoverable; keep watching.
			}
		}
	}()

	return nil
}
