package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want ChangeKind
		ok   bool
	}{
		{"tuning write", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Write}, ChangeTuning, true},
		{"yml create", fsnotify.Event{Name: "prefabs/extra.yml", Op: fsnotify.Create}, ChangeTuning, true},
		{"catalog", fsnotify.Event{Name: "prefabs/" + CatalogFile, Op: fsnotify.Write}, ChangeCatalog, true},
		{"script rename", fsnotify.Event{Name: "prefabs/scripts/difficulty.tengo", Op: fsnotify.Rename}, ChangeScript, true},
		{"other extension", fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, 0, false},
		{"remove ignored", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Remove}, 0, false},
		{"chmod ignored", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Chmod}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify(tt.ev)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (got.Kind != tt.want || got.Path != tt.ev.Name) {
				t.Fatalf("got %+v, want kind %s", got, tt.want)
			}
		})
	}
}

func TestWatcherReportsTuningEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("physics: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Changes:
		if filepath.Base(got.Path) != TuningFile || got.Kind != ChangeTuning {
			t.Fatalf("got %+v, want a tuning change for %s", got, TuningFile)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change for a yaml edit")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Changes; ok {
		t.Fatalf("expected changes channel closed")
	}
}
