package document

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mdedit/mdedit/internal/logging"
)

// Watcher monitors one file and invokes a handler after writes,
// debounced so editors that save in bursts trigger a single reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	log      *logging.Logger
	debounce time.Duration

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// WatchFile starts watching path. The handler runs on the watcher's
// goroutine after each debounced change. The parent directory is
// watched rather than the file itself so rename-replace saves keep
// working.
func WatchFile(path string, debounce time.Duration, log *logging.Logger, handler func(path string)) (*Watcher, error) {
	if log == nil {
		log = logging.Discard()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:      fsw,
		log:      log.WithComponent("watcher"),
		debounce: debounce,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop(abs, handler)

	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop(path string, handler func(string)) {
	defer w.wg.Done()

	base := filepath.Base(path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("change detected: %s (%s)", ev.Name, ev.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			handler(path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)

		case <-w.done:
			return
		}
	}
}
