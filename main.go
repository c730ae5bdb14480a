package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyclimb/game"
	"github.com/milk9111/skyclimb/prefabs"
	"github.com/milk9111/skyclimb/profile"
	"github.com/milk9111/skyclimb/store"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	seed := flag.Uint64("seed", 0, "world seed (0 picks one from the clock)")
	storePath := flag.String("store", "skyclimb.yaml", "progress file")
	watch := flag.Bool("watch", false, "hot reload prefabs/*.yaml and prefabs/scripts/*.tengo")
	character := flag.String("character", "", "select an owned character before starting")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	fs, err := store.OpenFileStore(*storePath)
	if err != nil {
		if !errors.Is(err, store.ErrCorruptStore) {
			log.Fatal(err)
		}
		log.Printf("store: %v; starting from an empty profile", err)
	}
	prof, err := profile.Load(fs, catalog)
	if err != nil {
		log.Printf("%v", err)
	}
	if *character != "" {
		if err := prof.Select(*character); err != nil {
			log.Printf("character %s: %v", *character, err)
		}
	}

	session, err := game.NewSession(game.Options{Seed: *seed, Tuning: tuning, Profile: prof})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("run %s: seed %d, character %s", session.RunID(), *seed, prof.Selected)

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("watch %s: %v", prefabs.Dir, err)
		} else {
			defer watcher.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("skyclimb")

	g := NewGame(ctx, session, watcher, *debug)
	err = ebiten.RunGame(g)
	session.EndRun()
	if err != nil {
		log.Fatal(err)
	}
}
