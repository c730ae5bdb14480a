// Command modelview shows every character model from the catalog side by
// side, cycling through the idle, run and jump poses.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skyclimb/assets"
	"github.com/milk9111/skyclimb/prefabs"
)

const (
	screenWidth   = 720
	screenHeight  = 360
	pixelsPerUnit = 96
	ticksPerPose  = 40
)

var poses = []string{"idle", "run", "jump"}

type entry struct {
	spec  prefabs.CharacterSpec
	model assets.Model
	err   error
}

type viewer struct {
	entries []entry
	tick    int
}

func (v *viewer) Update() error {
	v.tick++
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	pose := poses[(v.tick/ticksPerPose)%len(poses)]
	slot := float32(screenWidth) / float32(max(len(v.entries), 1))
	ground := float32(screenHeight - 60)

	for i, e := range v.entries {
		cx := slot*float32(i) + slot/2
		if e.err != nil {
			ebitenutil.DebugPrintAt(screen, e.spec.Name+": "+e.err.Error(), int(cx-slot/2)+4, int(ground))
			continue
		}

		m := e.model.Scaled(e.spec.Scale)
		w := float32(m.Width * pixelsPerUnit)
		h := float32(m.Height * pixelsPerUnit)
		y := ground - h
		switch pose {
		case "run":
			if (v.tick/8)%2 == 0 {
				y -= 4
			}
		case "jump":
			y -= h * 0.25
		}

		vector.DrawFilledRect(screen, cx-w/2, y, w, h, e.model.BodyColor(), false)
		vector.DrawFilledRect(screen, cx-w*0.15, y+h*0.15, w*0.3, h*0.2, e.model.AccentColor(), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%d)\n%s", e.spec.Name, e.spec.Cost, pose), int(cx-slot/2)+4, int(ground)+8)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	v := &viewer{}
	for _, ch := range catalog.Characters {
		m, err := assets.LoadModel(ch.Model)
		if err != nil {
			log.Printf("model %s: %v", ch.ID, err)
		}
		v.entries = append(v.entries, entry{spec: ch, model: m, err: err})
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("skyclimb models")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
