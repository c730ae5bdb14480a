// Command worldgen generates a climb headlessly and reports what the
// generator produced, for tuning generation without playing.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/ecs/system"
	"github.com/milk9111/skyclimb/prefabs"
	"gopkg.in/yaml.v3"
)

type platformRow struct {
	ID     int     `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Moving bool    `yaml:"moving,omitempty"`
}

type report struct {
	Seed       uint64         `yaml:"seed"`
	Height     float64        `yaml:"height"`
	Difficulty int            `yaml:"difficulty"`
	Platforms  int            `yaml:"platforms"`
	Moving     int            `yaml:"moving"`
	Bananas    int            `yaml:"bananas"`
	PowerUps   map[string]int `yaml:"powerups"`
	Obstacles  int            `yaml:"obstacles"`
	Top        float64        `yaml:"top"`
	MaxStep    float64        `yaml:"max_step"`
	JumpApex   float64        `yaml:"jump_apex"`
	Column     []platformRow  `yaml:"column,omitempty"`
}

func main() {
	seed := flag.Uint64("seed", 1, "generator seed")
	height := flag.Float64("height", 200, "best height to generate ahead of")
	difficulty := flag.Int("difficulty", -1, "fixed difficulty (-1 derives it from -height)")
	dump := flag.Bool("dump", false, "include every platform in the report")
	flag.Parse()

	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()
	state, err := entity.NewWorldState(w, tuning)
	if err != nil {
		log.Fatal(err)
	}
	r := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	if err := system.SeedWorld(w, tuning, r); err != nil {
		log.Fatal(err)
	}

	gen, _ := ecs.Get(w, state, component.GeneratorComponent.Kind())
	gen.Difficulty = *difficulty
	if *difficulty < 0 {
		curve, err := system.NewDifficultyCurve(tuning.Difficulty)
		if err != nil {
			log.Fatal(err)
		}
		if gen.Difficulty, err = curve.Difficulty(*height); err != nil {
			log.Fatal(err)
		}
	}

	if _, err := system.SpawnAhead(w, tuning, r, *height); err != nil {
		log.Fatal(err)
	}

	rep := report{
		Seed:       *seed,
		Height:     *height,
		Difficulty: gen.Difficulty,
		PowerUps:   map[string]int{},
		Top:        math.Inf(-1),
		JumpApex:   prefabs.JumpApex(tuning.Player.JumpVelocity, tuning.Physics.Gravity),
	}

	prevY := math.NaN()
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		rep.Platforms++
		moving := p.Kind == component.PlatformMoving
		if moving {
			rep.Moving++
		}
		if !math.IsNaN(prevY) {
			rep.MaxStep = math.Max(rep.MaxStep, t.Y-prevY)
		}
		prevY = t.Y
		rep.Top = math.Max(rep.Top, t.Y)
		if *dump {
			rep.Column = append(rep.Column, platformRow{ID: p.ID, X: t.X, Y: t.Y, Z: t.Z, Moving: moving})
		}
	})
	rep.Bananas = ecs.Count(w, component.PickupComponent.Kind())
	rep.Obstacles = ecs.Count(w, component.ObstacleComponent.Kind())
	ecs.ForEach(w, component.PowerUpComponent.Kind(), func(_ ecs.Entity, pu *component.PowerUp) {
		rep.PowerUps[string(pu.Kind)]++
	})

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		log.Fatal(err)
	}
	if rep.MaxStep >= rep.JumpApex {
		log.Fatalf("generated a step of %.2f, higher than the jump apex %.2f", rep.MaxStep, rep.JumpApex)
	}
}
