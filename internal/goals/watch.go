package goals

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// Watch invokes onChange whenever the goals file at path is written or
// replaced. Agents commonly rewrite the file via rename, so the watch is on
// the containing directory, filtered to the file name. Events are debounced.
// The returned cleanup stops the watch; onChange is not invoked after
// cleanup returns.
func Watch(path string, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	var (
		mu            sync.Mutex
		stopped       bool
		debounceTimer *time.Timer
	)

	// Debounce: wait for the writer to settle before notifying.
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceTimer = time.AfterFunc(watchDebounce, onChange)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				schedule()

			case <-watcher.Errors:
				// Ignore watcher errors silently

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		mu.Lock()
		stopped = true
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		mu.Unlock()
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}
