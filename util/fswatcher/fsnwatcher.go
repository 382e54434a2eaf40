package fswatcher

import (
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"
)

// Watches one file through its directory, so the file is still followed after being replaced (ex: editors that save to a temporary file and rename it).
type FileWatcher struct {
	w      *fsnotify.Watcher
	name   string
	events chan interface{}
}

func NewFileWatcher(name string) (*FileWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	name = filepath.Clean(name)
	if err := w0.Add(filepath.Dir(name)); err != nil {
		_ = w0.Close()
		return nil, err
	}
	w := &FileWatcher{w: w0, name: name, events: make(chan interface{})}
	go w.eventLoop()
	return w, nil
}

func (w *FileWatcher) Close() error {
	return w.w.Close()
}

// Receives *Event or error. Closed after Close.
func (w *FileWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FileWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.events <- err

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= Create
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= Modify
			}
			if op != 0 {
				w.events <- &Event{Op: op, Name: w.name}
			}
		}
	}
}
