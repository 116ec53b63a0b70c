package assets

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spaghettifunk/affine/engine/resources"
)

// DefaultDebounce is how long the watcher waits after the last write
// before reloading. Editors often save in several writes.
const DefaultDebounce = 50 * time.Millisecond

/**
 * @brief Watches a single transform document and reloads it whenever the
 * file is written or replaced.
 */
type Watcher struct {
	path     string
	loader   Loader
	debounce time.Duration

	mutex    sync.Mutex
	isClosed bool

	done      chan struct{}
	stopped   chan struct{}
	fsnotify  *fsnotify.Watcher
	documents chan *resources.Document
	errors    chan error
}

/**
 * @brief Starts watching the document at path. The containing directory is
 * watched, so atomic saves (write to a temporary file, then rename) are
 * picked up too.
 *
 * @param path The document to watch.
 * @param loader Loads the document on change. nil means DocumentLoader.
 * @param debounce The quiet period after a change. Zero means DefaultDebounce.
 * @return A running watcher, or an error if the directory cannot be watched.
 */
func NewWatcher(path string, loader Loader, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if loader == nil {
		loader = DocumentLoader{}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		loader:    loader,
		debounce:  debounce,
		fsnotify:  fsWatch,
		documents: make(chan *resources.Document),
		errors:    make(chan error),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go w.start()
	core.LogDebug("watching %s", abs)
	return w, nil
}

// Path returns the absolute path of the watched document.
func (w *Watcher) Path() string {
	return w.path
}

// Documents delivers every successfully reloaded document. It is closed by
// Close.
func (w *Watcher) Documents() <-chan *resources.Document {
	return w.documents
}

// Errors delivers load and watch errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and waits for its loop to exit.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	reload := time.NewTimer(w.debounce)
	reload.Stop()
	defer w.shutdown(reload)

	for {
		select {

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				reload.Reset(w.debounce)
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				core.LogWarn("%s was removed, waiting for it to come back", w.path)
			}

		case <-reload.C:
			doc, err := w.loader.Load(w.path)
			if err != nil {
				core.LogError("reload %s: %s", w.path, err.Error())
				if !w.send(nil, err) {
					return
				}
				continue
			}
			core.LogInfo("reloaded %s (%d transforms)", w.path, len(doc.Transforms))
			if !w.send(doc, nil) {
				return
			}

		case e, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())
			if !w.send(nil, e) {
				return
			}

		case <-w.done:
			return
		}
	}
}

// send delivers a document or an error, giving up when the watcher closes.
func (w *Watcher) send(doc *resources.Document, err error) bool {
	if err != nil {
		select {
		case w.errors <- err:
			return true
		case <-w.done:
			return false
		}
	}
	select {
	case w.documents <- doc:
		return true
	case <-w.done:
		return false
	}
}

func (w *Watcher) shutdown(reload *time.Timer) {
	reload.Stop()
	w.fsnotify.Close()
	close(w.documents)
	close(w.errors)
	close(w.stopped)
}
