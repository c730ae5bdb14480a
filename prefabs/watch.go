package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says which part of the game config an edited file feeds.
type ChangeKind int

const (
	ChangeTuning ChangeKind = iota
	ChangeCatalog
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCatalog:
		return "catalog"
	case ChangeScript:
		return "script"
	default:
		return "tuning"
	}
}

// Change is one settled edit to a watched file.
type Change struct {
	Path string
	Kind ChangeKind
}

const settleWindow = 100 * time.Millisecond

// Watcher turns fsnotify traffic for the prefab and script directories into
// Changes. Editors that save with several writes produce one Change per
// settle window.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes both channels. Safe to call twice.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := classify(ev)
			if !ok {
				continue
			}
			now := time.Now()
			if prev, ok := seen[ev.Name]; ok && now.Sub(prev) < settleWindow {
				continue
			}
			seen[ev.Name] = now
			select {
			case w.Changes <- change:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// drop when the host is behind; one pending error is enough
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

func classify(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return Change{}, false
	}
	name := filepath.Base(ev.Name)
	switch ext := strings.ToLower(filepath.Ext(name)); {
	case ext == ".tengo":
		return Change{Path: ev.Name, Kind: ChangeScript}, true
	case ext != ".yaml" && ext != ".yml":
		return Change{}, false
	case name == CatalogFile:
		return Change{Path: ev.Name, Kind: ChangeCatalog}, true
	default:
		return Change{Path: ev.Name, Kind: ChangeTuning}, true
	}
}
