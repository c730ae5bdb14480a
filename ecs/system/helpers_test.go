package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/prefabs"
)

const testDT = 1.0 / 60

type fakeProgress struct {
	bananas int
}

func (f *fakeProgress) AddBananas(n int) { f.bananas += n }

type testWorld struct {
	w      *ecs.World
	tuning *prefabs.Tuning
	player ecs.Entity
	rng    *rand.Rand
}

// newTestWorld builds a world with a ready player at spawn, the camera and
// the generator, but no platforms.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, tuning, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewCamera(w, tuning); err != nil {
		t.Fatal(err)
	}
	state, err := entity.NewWorldState(w, tuning)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := ecs.Get(w, state, component.ClockComponent.Kind())
	c.DT = testDT

	tw := &testWorld{w: w, tuning: tuning, player: player, rng: rand.New(rand.NewPCG(1, 2))}
	tw.playerState().Ready = true
	return tw
}

func (tw *testWorld) playerState() *component.Player {
	p, _ := ecs.Get(tw.w, tw.player, component.PlayerComponent.Kind())
	return p
}

func (tw *testWorld) transform() *component.Transform {
	t, _ := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	return t
}

func (tw *testWorld) input() *component.Input {
	in, _ := ecs.Get(tw.w, tw.player, component.InputComponent.Kind())
	return in
}

func (tw *testWorld) effects() *component.Effects {
	fx, _ := ecs.Get(tw.w, tw.player, component.EffectsComponent.Kind())
	return fx
}

func (tw *testWorld) score() *component.Score {
	s, _ := ecs.Get(tw.w, tw.player, component.ScoreComponent.Kind())
	return s
}

func (tw *testWorld) generator() *component.Generator {
	gen, _ := generator(tw.w)
	return gen
}

func (tw *testWorld) place(pos common.Vec3) {
	tw.transform().SetVec(pos)
}

func (tw *testWorld) platform(t *testing.T, pos common.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlatform(tw.w, 0, pos, component.PlatformStatic, component.Oscillator{Axis: component.AxisX})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func eventsOf(w *ecs.World, typ ecs.EventType) int {
	n := 0
	for _, ev := range w.Events().Drain() {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func entityNewMovingPlatform(tw *testWorld, pos common.Vec3) (ecs.Entity, error) {
	return entity.NewPlatform(tw.w, 0, pos, component.PlatformMoving, component.Oscillator{
		Axis:   component.AxisX,
		Range:  2,
		Speed:  0.05,
		Anchor: pos.X,
	})
}
