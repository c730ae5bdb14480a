package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skyclimb/assets"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/game"
	"github.com/milk9111/skyclimb/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	ctx     context.Context
	session *game.Session
	loader  *assets.Loader
	watcher *prefabs.Watcher
	sounds  *Sounds
	shop    *ebitenui.UI
	debug   bool
	frames  int

	// model is the loaded look of the selected character; modelID names it.
	model      assets.Model
	modelID    string
	loadingID  string
	shopStatus string
}

func NewGame(ctx context.Context, session *game.Session, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		ctx:     ctx,
		session: session,
		loader:  assets.NewLoader(),
		watcher: watcher,
		sounds:  NewSounds(),
		debug:   debug,
	}
	g.requestModel()
	return g
}

// requestModel makes sure the selected character's model is loaded or on
// its way, and readies the player when it already is.
func (g *Game) requestModel() {
	ch := g.session.Profile().SelectedCharacter()
	if ch.ID == g.modelID {
		g.session.MarkPlayerReady()
		return
	}
	if ch.ID == g.loadingID {
		return
	}
	g.loadingID = ch.ID
	g.loader.Load(g.ctx, ch.ID, ch.Model, ch.Scale)
}

func (g *Game) Update() error {
	g.frames++

	g.pollModel()
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	events := g.session.Tick(1/float64(ebiten.TPS()), readInput())
	for _, ev := range events {
		g.sounds.Play(ev.Type)
		if ev.Type == ecs.EventDied {
			g.shopStatus = ""
			g.shop = NewShopUI(g)
		}
	}

	if !g.session.Alive() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.restart()
			return nil
		}
		if g.shop != nil {
			g.shop.Update()
		}
	}
	return nil
}

func (g *Game) pollModel() {
	res, ok := g.loader.Poll()
	if !ok {
		return
	}
	if res.ID == g.loadingID {
		g.loadingID = ""
	}
	if res.Err != nil {
		// The player stays inert; the failure was logged by the loader.
		return
	}
	g.model = res.Model
	g.modelID = res.ID
	if res.ID == g.session.Profile().SelectedCharacter().ID {
		g.session.MarkPlayerReady()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Kind == prefabs.ChangeCatalog {
		log.Printf("watch: %s changed; catalog edits apply on next launch", filepath.Base(change.Path))
		return
	}
	log.Printf("watch: reloading %s after edit to %s", change.Kind, filepath.Base(change.Path))
	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		log.Printf("watch: keeping current tuning: %v", err)
		return
	}
	if err := g.session.ApplyTuning(tuning); err != nil {
		log.Printf("watch: keeping current tuning: %v", err)
	}
}

func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.shop = nil
	g.requestModel()
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.session, g.model, g.modelID != "")
	drawHUD(screen, g.session)

	if !g.session.Ready() && g.session.Alive() {
		ebitenutil.DebugPrintAt(screen, "loading "+g.session.Profile().SelectedCharacter().Name+"...", baseWidth/2-60, baseHeight/2)
	}
	if !g.session.Alive() && g.shop != nil {
		g.shop.Draw(screen)
	}
	if g.debug {
		_, tr := g.session.PlayerState()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS %.1f  frame %d  run %s  seed %d\npos %.2f %.2f %.2f  difficulty %d  entities %d",
			ebiten.ActualFPS(), g.frames, g.session.RunID(), g.session.Seed(),
			tr.X, tr.Y, tr.Z, g.session.Difficulty(), len(ecs.Entities(g.session.World())),
		), 8, baseHeight-40)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
