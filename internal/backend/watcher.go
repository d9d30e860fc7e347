package backend

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/drawerfm/drawer/internal/logging/events"
)

// Kind represents the type of event emitted by the backend watcher.
type Kind int

const (
	KindChange Kind = iota
	KindError
)

// Event conveys a filesystem change or an error from the watcher.
type Event struct {
	Kind Kind
	Path string
	Op   string
	Err  error
}

// Watcher follows one directory at a time and relays change events.
// Bursts of filesystem activity coalesce into a single event since the
// listing reloads wholesale anyway.
type Watcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	mu      sync.Mutex
	fs      *fsnotify.Watcher
	current string
}

// NewWatcher creates a watcher; it follows nothing until Follow is
// called.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
		fs:     fsw,
	}

	w.wg.Add(1)
	go w.relay()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Follow switches the watch to dir, dropping the previous directory.
// An empty dir stops watching entirely (trash, recents, and search
// listings have no single directory to follow).
func (w *Watcher) Follow(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == dir {
		return nil
	}
	if w.current != "" {
		// Remove can fail when the directory is already gone; the watch
		// died with it.
		_ = w.fs.Remove(w.current)
		w.current = ""
	}
	if dir == "" {
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	w.current = dir
	events.FS.Watch(dir)
	return nil
}

// Stop cancels the watcher. Use Wait if a clean drain is required
// (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
	w.fs.Close()
}

// Wait blocks until the relay goroutine has exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) relay() {
	defer w.wg.Done()

	throttle := newThrottle(250 * time.Millisecond)
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			throttle.wait()
			// Fold events that landed while throttled; the last one is
			// as good as any for a wholesale reload.
			for folded := true; folded; {
				select {
				case more, ok := <-w.fs.Events:
					if !ok {
						folded = false
						break
					}
					ev = more
				default:
					folded = false
				}
			}
			events.FS.Change(ev.Op.String(), ev.Name)
			out := Event{Kind: KindChange, Path: ev.Name, Op: ev.Op.String()}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- out:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- Event{Kind: KindError, Err: err}:
			}
		}
	}
}
