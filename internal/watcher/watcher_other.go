//go:build !darwin && !windows

package watcher

// Watcher is a stub on platforms without a native backend; the
// browser falls back to manual refresh.
// TODO: implement using inotify on Linux
type Watcher struct {
	eventCh chan string
}

// New creates a new directory watcher (stub).
func New(dir string) (*Watcher, error) {
	return &Watcher{
		eventCh: make(chan string, 16),
	}, nil
}

// Events returns the channel of changed paths.
func (w *Watcher) Events() <-chan string {
	return w.eventCh
}

// Start begins watching for events (stub - does nothing).
func (w *Watcher) Start() {
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.eventCh)
	return nil
}
