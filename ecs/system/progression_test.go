package system

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

type scriptedCurve struct {
	values []int
	calls  int
}

func (c *scriptedCurve) Difficulty(float64) (int, error) {
	v := c.values[min(c.calls, len(c.values)-1)]
	c.calls++
	return v, nil
}

func TestScoreFromHeight(t *testing.T) {
	tw := newTestWorld(t)
	sys := NewScoreSystem(tw.tuning, nil)

	tw.place(common.Vec3{Y: 1})
	sys.Update(tw.w)
	if tw.score().MaxHeight != 1 || tw.score().Total != 0 {
		t.Fatalf("first tick should only record the start height, got %+v", *tw.score())
	}

	tw.place(common.Vec3{Y: 3})
	sys.Update(tw.w)
	score := tw.score()
	if score.HeightScore != 100 || score.Total != 100 {
		t.Fatalf("expected 100 points for 2 units, got %+v", *score)
	}
	if score.HighScore != 100 {
		t.Fatalf("expected high score 100, got %d", score.HighScore)
	}
	if eventsOf(tw.w, ecs.EventHighScore) != 1 {
		t.Fatalf("expected a high score event")
	}

	for range 3 {
		sys.Update(tw.w)
	}
	if tw.score().Total != 100 || eventsOf(tw.w, ecs.EventHighScore) != 0 {
		t.Fatalf("repeated ticks without gains must not change the score, got %d", tw.score().Total)
	}

	tw.place(common.Vec3{Y: 0})
	sys.Update(tw.w)
	if tw.score().MaxHeight != 3 {
		t.Fatalf("max height must not drop, got %v", tw.score().MaxHeight)
	}
}

func TestScoreIncludesBonusImmediately(t *testing.T) {
	tw := newTestWorld(t)
	sys := NewScoreSystem(tw.tuning, nil)
	tw.place(common.Vec3{Y: 1})
	sys.Update(tw.w)

	tw.score().BonusScore += 25
	sys.Update(tw.w)
	if tw.score().Total != 25 {
		t.Fatalf("expected total 25, got %d", tw.score().Total)
	}
}

func TestDifficultyNeverDecreases(t *testing.T) {
	tw := newTestWorld(t)
	curve := &scriptedCurve{values: []int{0, 3, 1, 2, 5}}
	sys := NewScoreSystem(tw.tuning, curve)

	want := []int{0, 3, 3, 3, 5}
	for i, w := range want {
		sys.Update(tw.w)
		if got := tw.generator().Difficulty; got != w {
			t.Fatalf("tick %d: expected difficulty %d, got %d", i, w, got)
		}
	}
}

func TestStepCurve(t *testing.T) {
	tests := []struct {
		height float64
		want   int
	}{
		{math.Inf(-1), 0},
		{-5, 0},
		{0, 0},
		{11.9, 0},
		{12, 1},
		{100, 8},
	}
	curve := StepCurve{Step: 12}
	for _, tc := range tests {
		got, err := curve.Difficulty(tc.height)
		if err != nil || got != tc.want {
			t.Fatalf("height %v: expected %d, got %d (%v)", tc.height, tc.want, got, err)
		}
	}
}

func TestScriptCurve(t *testing.T) {
	curve, err := NewScriptCurve("difficulty.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	tests := []struct {
		height float64
		want   int
	}{
		{0, 0},
		{32, 2},
		{119, 7},
		{130, 8},
	}
	for _, tc := range tests {
		got, err := curve.Difficulty(tc.height)
		if err != nil || got != tc.want {
			t.Fatalf("height %v: expected %d, got %d (%v)", tc.height, tc.want, got, err)
		}
	}
}

func TestScriptCurveFromDisk(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		src     string
		height  float64
		want    int
		wantErr bool
	}{
		{name: "constant", src: "difficulty := 3\n", height: 10, want: 3},
		{name: "reads height", src: "difficulty := int(max_height) * 2\n", height: 4, want: 8},
		{name: "never assigns", src: "x := max_height\n", wantErr: true},
		{name: "does not compile", src: "difficulty := (\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := tt.name + ".tengo"
			if err := os.WriteFile(filepath.Join(dir, "scripts", file), []byte(tt.src), 0o644); err != nil {
				t.Fatal(err)
			}
			curve, err := NewScriptCurve(file)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			got, err := curve.Difficulty(tt.height)
			if err != nil || got != tt.want {
				t.Fatalf("expected %d, got %d (%v)", tt.want, got, err)
			}
		})
	}
}

func TestScriptCurveMissingFile(t *testing.T) {
	if _, err := NewScriptCurve("nope.tengo"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func platformHeights(w *ecs.World) []float64 {
	var ys []float64
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, t *component.Transform) {
		ys = append(ys, t.Y)
	})
	return ys
}

func TestSeedWorld(t *testing.T) {
	tw := newTestWorld(t)
	if err := SeedWorld(tw.w, tw.tuning, tw.rng); err != nil {
		t.Fatal(err)
	}

	ys := platformHeights(tw.w)
	if len(ys) != tw.tuning.InitialGeneration.Count {
		t.Fatalf("expected %d platforms, got %d", tw.tuning.InitialGeneration.Count, len(ys))
	}
	first, _ := ecs.First(tw.w, component.PlatformComponent.Kind())
	ft, _ := ecs.Get(tw.w, first, component.TransformComponent.Kind())
	if ft.X != 0 || ft.Y != 0 || ft.Z != 0 {
		t.Fatalf("expected first platform at origin, got %+v", *ft)
	}
	if tw.generator().PlatformCount != len(ys) {
		t.Fatalf("platform count %d does not match %d platforms", tw.generator().PlatformCount, len(ys))
	}
}

func TestSpawnAheadIsClimbableAndGapFree(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 1234} {
		tw := newTestWorld(t)
		r := rand.New(rand.NewPCG(seed, seed))
		if err := SeedWorld(tw.w, tw.tuning, r); err != nil {
			t.Fatal(err)
		}
		tw.generator().Difficulty = 4

		const maxHeight = 100.0
		added, err := SpawnAhead(tw.w, tw.tuning, r, maxHeight)
		if err != nil {
			t.Fatal(err)
		}
		if added == 0 {
			t.Fatalf("seed %d: expected new platforms", seed)
		}

		ys := platformHeights(tw.w)
		high, _ := highestPlatform(tw.w)
		if high < maxHeight+tw.tuning.World.SpawnAhead {
			t.Fatalf("seed %d: highest platform %.2f below %.2f", seed, high, maxHeight+tw.tuning.World.SpawnAhead)
		}

		maxDY := math.Max(tw.tuning.InitialGeneration.MaxDY, tw.tuning.Generation.MaxDY)
		apex := prefabs.JumpApex(tw.tuning.Player.JumpVelocity, tw.tuning.Physics.Gravity)
		for i := 1; i < len(ys); i++ {
			dy := ys[i] - ys[i-1]
			if dy <= 0 || dy > maxDY+1e-9 || dy >= apex {
				t.Fatalf("seed %d: step %d rises %.3f (max %.2f, apex %.2f)", seed, i, dy, maxDY, apex)
			}
		}

		again, err := SpawnAhead(tw.w, tw.tuning, r, maxHeight)
		if err != nil || again != 0 {
			t.Fatalf("seed %d: expected no work when already ahead, got %d (%v)", seed, again, err)
		}
	}
}

func TestPrune(t *testing.T) {
	tw := newTestWorld(t)
	if err := SeedWorld(tw.w, tw.tuning, tw.rng); err != nil {
		t.Fatal(err)
	}
	if _, err := SpawnAhead(tw.w, tw.tuning, tw.rng, 100); err != nil {
		t.Fatal(err)
	}

	const maxHeight = 100.0
	removed := Prune(tw.w, maxHeight, tw.tuning.World)
	if removed == 0 {
		t.Fatalf("expected something below the threshold to be pruned")
	}

	threshold := maxHeight + tw.tuning.World.PruneBelow
	for _, y := range platformHeights(tw.w) {
		if y < threshold {
			t.Fatalf("platform at %.2f survived below %.2f", y, threshold)
		}
	}
	ecs.ForEach2(tw.w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Obstacle, tr *component.Transform) {
		if tr.Y < threshold-tw.tuning.World.ObstaclePruneSlack {
			t.Fatalf("obstacle at %.2f survived", tr.Y)
		}
	})
	if !ecs.IsAlive(tw.w, tw.player) {
		t.Fatalf("prune must never touch the player")
	}
}
