package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// TuningWatcher reports writes to a tuning file. Reloading is left to the
// game loop so configuration is only mutated on the update goroutine.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changed chan struct{}
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning watches the directory holding path; editors often replace
// files on save, which a watch on the file itself would lose.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "tuning: new watcher")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "tuning: watch %s", filepath.Dir(abs))
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Changed: make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err != nil || abs != tw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case tw.Changed <- struct{}{}:
			default:
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case tw.Errors <- err:
			default:
			}
		case <-tw.closeCh:
			return
		}
	}
}
