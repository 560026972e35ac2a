// Package watcher provides debounced filesystem watching for the extract
// command's --watch mode.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher fires a callback after a quiet period following changes to
// matching files under a watched directory.
type FileWatcher struct {
	watcher       *fsnotify.Watcher
	dir           string
	extensions    map[string]bool
	debounceTime  time.Duration
	callback      func()
	ctx           context.Context
	cancel        context.CancelFunc
	debounceTimer *time.Timer
	timerMu       sync.Mutex
	stopOnce      sync.Once
	doneCh        chan struct{}
}

// New creates a watcher over dir (recursively) for the given file
// extensions, e.g. []string{".js"}.
func New(dir string, extensions []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extMap := make(map[string]bool)
	for _, ext := range extensions {
		extMap[ext] = true
	}

	fw := &FileWatcher{
		watcher:      watcher,
		dir:          dir,
		extensions:   extMap,
		debounceTime: 500 * time.Millisecond,
		doneCh:       make(chan struct{}),
	}

	if err := fw.addDirectoriesRecursively(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	return fw, nil
}

// Start begins watching. The callback runs on the watch goroutine after the
// debounce window closes.
func (fw *FileWatcher) Start(ctx context.Context, callback func()) error {
	if callback == nil {
		return nil
	}

	fw.callback = callback
	fw.ctx, fw.cancel = context.WithCancel(ctx)

	go fw.watch()
	return nil
}

// Stop stops the file watcher. Safe to call more than once.
func (fw *FileWatcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		if fw.cancel != nil {
			fw.cancel()
			<-fw.doneCh
		} else {
			close(fw.doneCh)
		}
		err = fw.watcher.Close()
	})
	return err
}

// addDirectoriesRecursively registers dir and all subdirectories.
func (fw *FileWatcher) addDirectoriesRecursively(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.watcher.Add(path)
		}
		return nil
	})
}

// watch processes fsnotify events until the context is cancelled.
func (fw *FileWatcher) watch() {
	defer close(fw.doneCh)

	for {
		select {
		case <-fw.ctx.Done():
			fw.stopTimer()
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			fw.resetTimer()

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event cycle recovers.
		}
	}
}

// relevant filters events down to create/write/remove/rename of files with a
// watched extension. New directories are added to the watch as they appear.
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			fw.addDirectoriesRecursively(event.Name)
			return false
		}
	}

	return fw.extensions[filepath.Ext(event.Name)]
}

// resetTimer restarts the debounce window.
func (fw *FileWatcher) resetTimer() {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debounceTime, func() {
		if fw.ctx.Err() == nil {
			fw.callback()
		}
	})
}

// stopTimer cancels any pending debounce callback.
func (fw *FileWatcher) stopTimer() {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
		fw.debounceTimer = nil
	}
}
