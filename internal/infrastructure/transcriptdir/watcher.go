package transcriptdir

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	apperrors "github.com/devpulse-team/devpulse/errors"
)

// Watcher emits the filename of every supported transcript file created in
// the incoming directory. Events for unsupported extensions are dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     chan string
	stop      chan struct{}
	logger    *zap.Logger
}

// NewWatcher starts watching the store's incoming directory
func NewWatcher(store *Store, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.ErrWatcherFailed(err)
	}

	if err := fsWatcher.Add(store.IncomingDir()); err != nil {
		fsWatcher.Close()
		return nil, apperrors.ErrWatcherFailed(err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		files:     make(chan string, 16),
		stop:      make(chan struct{}),
		logger:    logger,
	}

	go w.run()
	return w, nil
}

// Files returns the channel of newly arrived transcript filenames
func (w *Watcher) Files() <-chan string {
	return w.files
}

func (w *Watcher) run() {
	defer close(w.files)

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			filename := filepath.Base(event.Name)
			if !IsSupported(filename) {
				continue
			}
			if w.logger != nil {
				w.logger.Info("👀 New transcript detected", zap.String("file", filename))
			}
			select {
			case w.files <- filename:
			case <-w.stop:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("⚠️ Watcher error", zap.Error(err))
			}
		}
	}
}

// Stop shuts the watcher down and closes the file channel
func (w *Watcher) Stop() error {
	close(w.stop)
	return w.fsWatcher.Close()
}
