package system

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/prefabs"
)

// SpawnSystem keeps generated platforms at least SpawnAhead units above the
// best height.
type SpawnSystem struct {
	tuning *prefabs.Tuning
	rng    *rand.Rand
}

func NewSpawnSystem(t *prefabs.Tuning, r *rand.Rand) *SpawnSystem {
	return &SpawnSystem{tuning: t, rng: r}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	e, _, _, ok := activePlayer(w)
	if !ok {
		return
	}
	score, ok := ecs.Get(w, e, component.ScoreComponent.Kind())
	if !ok || math.IsInf(score.MaxHeight, -1) {
		return
	}
	if _, err := SpawnAhead(w, s.tuning, s.rng, score.MaxHeight); err != nil {
		log.Printf("spawn: %v", err)
	}
}

// SeedWorld lays the starting column: a static platform at the origin and
// then Count-1 generated slots above it.
func SeedWorld(w *ecs.World, t *prefabs.Tuning, r *rand.Rand) error {
	gen, ok := generator(w)
	if !ok {
		return fmt.Errorf("seed world: no generator")
	}

	gen.PlatformCount++
	if _, err := entity.NewPlatform(w, gen.PlatformCount, common.Vec3{}, component.PlatformStatic, component.Oscillator{Axis: component.AxisX}); err != nil {
		return fmt.Errorf("seed world: %w", err)
	}
	gen.LastX, gen.LastY, gen.LastZ = 0, 0, 0

	for i := 1; i < t.InitialGeneration.Count; i++ {
		if err := spawnSlot(w, t, t.InitialGeneration, r, gen); err != nil {
			return fmt.Errorf("seed world: %w", err)
		}
	}
	return nil
}

// SpawnAhead generates slots above the frontier until the highest platform
// reaches maxHeight+SpawnAhead. It returns how many platforms it added.
func SpawnAhead(w *ecs.World, t *prefabs.Tuning, r *rand.Rand, maxHeight float64) (int, error) {
	gen, ok := generator(w)
	if !ok {
		return 0, fmt.Errorf("spawn ahead: no generator")
	}

	high, ok := highestPlatform(w)
	if !ok {
		high = gen.LastY
	}

	added := 0
	for high < maxHeight+gen.SpawnAhead {
		if err := spawnSlot(w, t, t.Generation, r, gen); err != nil {
			return added, fmt.Errorf("spawn ahead: %w", err)
		}
		added++
		high = math.Max(high, gen.LastY)
	}
	return added, nil
}

func highestPlatform(w *ecs.World) (float64, bool) {
	high, found := math.Inf(-1), false
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, t *component.Transform) {
		found = true
		high = math.Max(high, t.Y)
	})
	return high, found
}

func randRange(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func randAxis(r *rand.Rand) component.Axis {
	if r.Float64() < 0.5 {
		return component.AxisX
	}
	return component.AxisZ
}

// spawnSlot places one platform stepped off the last one, with its optional
// banana, power-up and obstacle.
func spawnSlot(w *ecs.World, t *prefabs.Tuning, spec prefabs.GenerationSpec, r *rand.Rand, gen *component.Generator) error {
	d := float64(gen.Difficulty)
	pos := common.Vec3{
		X: gen.LastX + randRange(r, -spec.MaxDX, spec.MaxDX),
		Y: gen.LastY + randRange(r, spec.MinDY, spec.MaxDY),
		Z: gen.LastZ + randRange(r, -spec.MaxDX, spec.MaxDX),
	}

	kind := component.PlatformStatic
	if r.Float64() < spec.MovingChance {
		kind = component.PlatformMoving
	}
	axis := randAxis(r)
	osc := component.Oscillator{
		Axis:  axis,
		Range: randRange(r, spec.RangeMin, spec.RangeMax),
		Speed: randRange(r, spec.SpeedMin, spec.SpeedMax) * (1 + d*spec.SpeedDifficulty) * (1 + r.Float64()*spec.SpeedJitter),
	}
	osc.Anchor = pos.X
	if axis == component.AxisZ {
		osc.Anchor = pos.Z
	}

	gen.PlatformCount++
	if _, err := entity.NewPlatform(w, gen.PlatformCount, pos, kind, osc); err != nil {
		return err
	}
	gen.LastX, gen.LastY, gen.LastZ = pos.X, pos.Y, pos.Z

	if r.Float64() < spec.BananaChance {
		if _, err := entity.NewBanana(w, pos.Add(common.Vec3{Y: spec.BananaLift})); err != nil {
			return err
		}
	}

	if r.Float64() < spec.PowerUpChance {
		kind := component.PowerUpKinds[r.IntN(len(component.PowerUpKinds))]
		at := pos.Add(common.Vec3{
			X: randRange(r, -spec.PowerUpSpread, spec.PowerUpSpread),
			Y: spec.PowerUpLift,
			Z: randRange(r, -spec.PowerUpSpread, spec.PowerUpSpread),
		})
		if _, err := entity.NewPowerUp(w, at, kind, r.Float64()*2*math.Pi); err != nil {
			return err
		}
	}

	if r.Float64() < spec.ObstacleChance {
		at := pos.Add(common.Vec3{Y: spec.ObstacleLift})
		rng := randRange(r, spec.ObstacleRangeMin, spec.ObstacleRangeMax)
		speed := randRange(r, spec.ObstacleSpeedMin, spec.ObstacleSpeedMax) + d*spec.ObstacleSpeedDifficulty
		if _, err := entity.NewObstacle(w, at, randAxis(r), rng, speed, ObstacleHalfExtent(t.Obstacles, gen.Difficulty)); err != nil {
			return err
		}
	}

	return nil
}
