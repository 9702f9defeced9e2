//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package watch reports external changes to open files. Events are
// debounced per path and rate limited so editors that write through
// temp files do not flood the main loop.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	limiter  *rate.Limiter
	notify   func()

	mu       sync.Mutex
	watched  map[string]bool
	dirs     map[string]int
	pending  map[string]*time.Timer
	silenced map[string]time.Time

	changes chan string
	done    chan struct{}
	once    sync.Once
}

// New starts a watcher. notify is called after each change is queued,
// so a blocked main loop can be woken; it must be safe from any
// goroutine.
func New(debounce time.Duration, notify func()) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		limiter:  rate.NewLimiter(rate.Limit(4), 8),
		notify:   notify,
		watched:  map[string]bool{},
		dirs:     map[string]int{},
		pending:  map[string]*time.Timer{},
		silenced: map[string]time.Time{},
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers the paths of files that changed on disk.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Add starts watching path. The parent directory is watched rather
// than the file itself so that atomic saves (write temp, rename over)
// keep being seen.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched[abs] {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.watched[abs] = true
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watched[abs] {
		return nil
	}
	delete(w.watched, abs)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		return w.fs.Remove(dir)
	}
	return nil
}

// Silence drops events for path for a short window. Called before the
// editor writes the file itself, so its own saves do not report as
// external changes.
func (w *Watcher) Silence(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.silenced[abs] = time.Now().Add(w.debounce + time.Second)
	w.mu.Unlock()
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.mu.Lock()
		for _, t := range w.pending {
			t.Stop()
		}
		w.pending = map[string]*time.Timer{}
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.handle(event.Name)
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

// handle resets the per-path debounce timer. The change is reported
// only after the path has been quiet for the debounce interval.
func (w *Watcher) handle(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watched[abs] {
		return
	}
	if until, ok := w.silenced[abs]; ok {
		if time.Now().Before(until) {
			return
		}
		delete(w.silenced, abs)
	}
	if t, ok := w.pending[abs]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[abs] = time.AfterFunc(w.debounce, func() {
		w.fire(abs)
	})
}

func (w *Watcher) fire(abs string) {
	w.mu.Lock()
	delete(w.pending, abs)
	w.mu.Unlock()
	if !w.limiter.Allow() {
		return
	}
	select {
	case w.changes <- abs:
	case <-w.done:
		return
	default:
		// a full queue means the main loop is already behind; drop
	}
	if w.notify != nil {
		w.notify()
	}
}
