package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Change reports that a watched prefab file was edited on disk. File is
// the prefab name as passed to Load, e.g. PlayerFile.
type Change struct {
	File string
}

// Watcher reports edits to a fixed set of prefab files in one directory.
// It runs on fsnotify, or on mtime polling when built by NewPollWatcher.
type Watcher struct {
	dir   string
	files map[string]struct{}

	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func newWatcher(dir string, files []string) *Watcher {
	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		set[cleanPrefabPath(f)] = struct{}{}
	}
	return &Watcher{
		dir:     dir,
		files:   set,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
}

// NewWatcher watches dir with fsnotify and reports edits to files.
func NewWatcher(dir string, files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
	}

	w := newWatcher(dir, files)
	w.fs = fw
	w.wg.Add(1)
	go w.runNotify()
	return w, nil
}

// NewPollWatcher checks the modification time of files in dir every
// interval. Files missing at start report a change once they appear.
func NewPollWatcher(dir string, interval time.Duration, files ...string) *Watcher {
	w := newWatcher(dir, files)
	w.wg.Add(1)
	go w.runPoll(interval)
	return w
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		if w.fs != nil {
			err = w.fs.Close()
		}
		w.wg.Wait()
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

// watched maps an event path to the prefab it belongs to.
func (w *Watcher) watched(path string) (string, bool) {
	name := filepath.Base(path)
	_, ok := w.files[name]
	return name, ok
}

func (w *Watcher) emit(c Change) bool {
	select {
	case w.Changes <- c:
		return true
	case <-w.closeCh:
		return false
	}
}

func (w *Watcher) runNotify() {
	defer w.wg.Done()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, ok := w.watched(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[name]; seen && now.Sub(t) < debounce {
				continue
			}
			last[name] = now
			if !w.emit(Change{File: name}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) runPoll(interval time.Duration) {
	defer w.wg.Done()
	seen := make(map[string]time.Time, len(w.files))
	for name := range w.files {
		if t, ok := modTime(w.dir, name); ok {
			seen[name] = t
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			for name := range w.files {
				t, ok := modTime(w.dir, name)
				if !ok || t.Equal(seen[name]) {
					continue
				}
				seen[name] = t
				if !w.emit(Change{File: name}) {
					return
				}
			}
		case <-w.closeCh:
			return
		}
	}
}

func modTime(dir, name string) (time.Time, bool) {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(cleanPrefabPath(name))))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
