//go:build darwin

package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsevents"
)

// Watcher reports changes under the currently displayed directory so
// the browser can reload its listing. Events are coalesced; the
// consumer only needs a "something changed" signal per burst.
type Watcher struct {
	stream  *fsevents.EventStream
	eventCh chan string
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// New creates a watcher for dir.
func New(dir string) (*Watcher, error) {
	dev, err := fsevents.DeviceForPath(dir)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		eventCh: make(chan string, 16),
		done:    make(chan struct{}),
	}
	w.stream = &fsevents.EventStream{
		Paths:   []string{dir},
		Latency: 500 * time.Millisecond,
		Device:  dev,
		Flags:   fsevents.FileEvents | fsevents.WatchRoot,
	}
	return w, nil
}

// Events returns the channel of changed paths.
func (w *Watcher) Events() <-chan string {
	return w.eventCh
}

// Start begins delivering events.
func (w *Watcher) Start() {
	w.stream.Start()
	w.wg.Add(1)
	go w.run()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case events, ok := <-w.stream.Events:
			if !ok {
				return
			}
			for _, event := range events {
				path := event.Path
				if len(path) > 0 && path[0] != '/' {
					path = "/" + path
				}
				select {
				case w.eventCh <- path:
				default:
				}
			}
		}
	}
}

// Stop shuts the watcher down and closes the event channel.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	w.stream.Stop()
	w.wg.Wait()
	close(w.eventCh)
	return nil
}
