package overrides

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors the override directory and reports the files that
// changed, debounced per file.
type Watcher struct {
	Dir     string
	Changes <-chan string

	changes  chan string
	done     chan struct{}
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for dir.
func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ch := make(chan string, 16)
	return &Watcher{
		Dir:      dir,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		logger:   logger,
		debounce: 250 * time.Millisecond,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	_ = w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if !IsOverrideFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Override watcher error", zap.Error(err))
		}
	}
}

// emit never blocks; a full channel already holds a pending rebuild signal.
func (w *Watcher) emit(file string) {
	select {
	case w.changes <- file:
	default:
		w.logger.Debug("Dropping override change, rebuild already pending", zap.String("file", file))
	}
}

// IsOverrideFile reports whether name is an exclusion list or the library
// upgrade file.
func IsOverrideFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return base == LibraryUpgradesFile || strings.HasSuffix(base, ".txt")
}
