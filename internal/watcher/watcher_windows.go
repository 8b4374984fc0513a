//go:build windows

package watcher

import (
	"path/filepath"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Watcher reports changes under the currently displayed directory so
// the browser can reload its listing.
type Watcher struct {
	handle  windows.Handle
	dir     string
	eventCh chan string
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// New creates a watcher for dir.
func New(dir string) (*Watcher, error) {
	pathPtr, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return nil, err
	}

	handle, err := windows.CreateFile(
		pathPtr,
		windows.FILE_LIST_DIRECTORY,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		handle:  handle,
		dir:     dir,
		eventCh: make(chan string, 16),
		done:    make(chan struct{}),
	}, nil
}

// Events returns the channel of changed paths.
func (w *Watcher) Events() <-chan string {
	return w.eventCh
}

// Start begins delivering events.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
}

const notifyFilter = windows.FILE_NOTIFY_CHANGE_FILE_NAME |
	windows.FILE_NOTIFY_CHANGE_DIR_NAME |
	windows.FILE_NOTIFY_CHANGE_SIZE

func (w *Watcher) run() {
	defer w.wg.Done()
	buf := make([]byte, 64*1024)

	for {
		select {
		case <-w.done:
			return
		default:
		}

		var bytesReturned uint32
		err := windows.ReadDirectoryChanges(
			w.handle,
			&buf[0],
			uint32(len(buf)),
			false, // immediate children only
			notifyFilter,
			&bytesReturned,
			nil,
			0,
		)
		if err != nil {
			return
		}

		if bytesReturned > 0 {
			w.processEvents(buf[:bytesReturned])
		}
	}
}

func (w *Watcher) processEvents(buf []byte) {
	for len(buf) >= 12 {
		nextOffset := *(*uint32)(unsafe.Pointer(&buf[0]))
		nameLen := *(*uint32)(unsafe.Pointer(&buf[8]))

		if len(buf) >= 12+int(nameLen) {
			name := windows.UTF16ToString((*[1 << 15]uint16)(unsafe.Pointer(&buf[12]))[:nameLen/2])
			select {
			case w.eventCh <- filepath.Join(w.dir, name):
			default:
			}
		}

		if nextOffset == 0 {
			break
		}
		buf = buf[nextOffset:]
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
	if w.handle != 0 {
		windows.CloseHandle(w.handle)
	}
	w.wg.Wait()
	close(w.eventCh)
	return nil
}
