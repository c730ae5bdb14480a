package system

import (
	"testing"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
)

func TestBananaCollect(t *testing.T) {
	tw := newTestWorld(t)
	progress := &fakeProgress{}
	tw.place(common.Vec3{Y: 1})
	if _, err := entity.NewBanana(tw.w, common.Vec3{Y: 1.5}); err != nil {
		t.Fatal(err)
	}

	NewPickupCollectSystem(tw.tuning, tw.rng, progress).Update(tw.w)

	score := tw.score()
	if score.Bananas != 1 || progress.bananas != 1 {
		t.Fatalf("expected one banana, got run=%d persisted=%d", score.Bananas, progress.bananas)
	}
	if score.BonusScore != 25 || score.Total != 25 {
		t.Fatalf("expected bonus and total 25, got %d/%d", score.BonusScore, score.Total)
	}
	if n := ecs.Count(tw.w, component.PickupComponent.Kind()); n != 0 {
		t.Fatalf("expected banana removed, %d left", n)
	}
	if n := ecs.Count(tw.w, component.ParticleBurstComponent.Kind()); n != 1 {
		t.Fatalf("expected one burst, got %d", n)
	}
	if eventsOf(tw.w, ecs.EventBananaCollected) != 1 {
		t.Fatalf("expected a banana event")
	}
}

func TestMagnetPullsBanana(t *testing.T) {
	tw := newTestWorld(t)
	tw.place(common.Vec3{Y: 1})
	banana, err := entity.NewBanana(tw.w, common.Vec3{X: 3, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	sys := NewPickupCollectSystem(tw.tuning, tw.rng, nil)

	sys.Update(tw.w)
	bt, _ := ecs.Get(tw.w, banana, component.TransformComponent.Kind())
	if bt.X != 3 {
		t.Fatalf("banana moved without a magnet: %v", bt.X)
	}

	tw.effects().Activate(component.PowerUpMagnet, 6)
	sys.Update(tw.w)
	step := tw.tuning.Pickups.MagnetPull * testDT * tw.tuning.Pickups.MagnetRate
	if !near(bt.X, 3-step) {
		t.Fatalf("expected banana at %.5f, got %.5f", 3-step, bt.X)
	}
}

func TestPowerUpRefreshesMagnet(t *testing.T) {
	tw := newTestWorld(t)
	tw.place(common.Vec3{Y: 1})
	tw.effects().Magnet = 2
	if _, err := entity.NewPowerUp(tw.w, common.Vec3{Y: 1.2}, component.PowerUpMagnet, 0); err != nil {
		t.Fatal(err)
	}

	NewEffectsSystem(tw.tuning).Update(tw.w)
	NewPowerUpCollectSystem(tw.tuning, tw.rng).Update(tw.w)

	if got := tw.effects().Magnet; got != 6 {
		t.Fatalf("expected magnet refreshed to exactly 6, got %v", got)
	}
	if tw.score().BonusScore != tw.tuning.PowerUps.Bonus {
		t.Fatalf("expected bonus %d, got %d", tw.tuning.PowerUps.Bonus, tw.score().BonusScore)
	}
	if n := ecs.Count(tw.w, component.PowerUpComponent.Kind()); n != 0 {
		t.Fatalf("expected power-up removed, %d left", n)
	}
}

func TestPowerUpStatsApplyAndExpire(t *testing.T) {
	tests := []struct {
		name  string
		kind  component.PowerUpKind
		check func(t *testing.T, tw *testWorld, active bool)
	}{
		{
			name: "speed",
			kind: component.PowerUpSpeed,
			check: func(t *testing.T, tw *testWorld, active bool) {
				want := tw.tuning.Player.MoveSpeed
				if active {
					want *= tw.tuning.Player.SpeedMultiplier
				}
				if got := tw.playerState().MoveSpeed; got != want {
					t.Fatalf("expected move speed %v, got %v", want, got)
				}
			},
		},
		{
			name: "jump",
			kind: component.PowerUpJump,
			check: func(t *testing.T, tw *testWorld, active bool) {
				want := tw.tuning.Player.JumpVelocity
				if active {
					want = tw.tuning.Player.BoostedJumpVelocity
				}
				if got := tw.playerState().JumpVelocity; got != want {
					t.Fatalf("expected jump velocity %v, got %v", want, got)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			tw.place(common.Vec3{Y: 1})
			if _, err := entity.NewPowerUp(tw.w, common.Vec3{Y: 1}, tc.kind, 0); err != nil {
				t.Fatal(err)
			}
			NewPowerUpCollectSystem(tw.tuning, tw.rng).Update(tw.w)
			tc.check(t, tw, true)

			tw.effects().Activate(tc.kind, testDT/2)
			NewEffectsSystem(tw.tuning).Update(tw.w)
			tc.check(t, tw, false)
			if tw.effects().Active(tc.kind) {
				t.Fatalf("expected %s to expire", tc.kind)
			}
			if eventsOf(tw.w, ecs.EventEffectExpired) != 1 {
				t.Fatalf("expected one expiry event")
			}
		})
	}
}

func TestObstacleKnockbackAndCooldown(t *testing.T) {
	tw := newTestWorld(t)
	tw.place(common.Vec3{Y: 1})
	if _, err := entity.NewObstacle(tw.w, common.Vec3{X: 0.3, Y: 1.5}, component.AxisX, 2, 0.05, 0.5); err != nil {
		t.Fatal(err)
	}
	sys := NewHazardSystem(tw.tuning, tw.rng)

	sys.Update(tw.w)
	tr := tw.transform()
	if tr.X >= 0 {
		t.Fatalf("expected knockback away from the obstacle, x=%v", tr.X)
	}
	if !near(tr.X, -tw.tuning.Obstacles.Knockback) {
		t.Fatalf("expected x %.2f, got %.4f", -tw.tuning.Obstacles.Knockback, tr.X)
	}
	if !near(tr.Y, 1+tw.tuning.Obstacles.Bounce) || tw.playerState().VelocityY != tw.tuning.Obstacles.BounceVelocity {
		t.Fatalf("expected bounce, y=%v vy=%v", tr.Y, tw.playerState().VelocityY)
	}
	if eventsOf(tw.w, ecs.EventObstacleHit) != 1 {
		t.Fatalf("expected one hit event")
	}

	tw.place(common.Vec3{Y: 1})
	sys.Update(tw.w)
	if eventsOf(tw.w, ecs.EventObstacleHit) != 0 {
		t.Fatalf("hit cooldown should block a second hit")
	}

	cd, _ := ecs.Get(tw.w, tw.player, component.HitCooldownComponent.Kind())
	cd.Seconds = testDT / 2
	NewCooldownSystem().Update(tw.w)
	sys.Update(tw.w)
	if eventsOf(tw.w, ecs.EventObstacleHit) != 1 {
		t.Fatalf("expected a hit once the cooldown ran out")
	}
}

func TestObstacleVerticalGate(t *testing.T) {
	tw := newTestWorld(t)
	tw.place(common.Vec3{Y: 1})
	if _, err := entity.NewObstacle(tw.w, common.Vec3{Y: 2.3}, component.AxisX, 2, 0.05, 0.5); err != nil {
		t.Fatal(err)
	}

	NewHazardSystem(tw.tuning, tw.rng).Update(tw.w)

	if eventsOf(tw.w, ecs.EventObstacleHit) != 0 {
		t.Fatalf("obstacle beyond the vertical gate should not hit")
	}
}

func TestObstacleHalfExtentGrowsAndCaps(t *testing.T) {
	tw := newTestWorld(t)
	spec := tw.tuning.Obstacles
	if got := ObstacleHalfExtent(spec, 0); got != spec.HalfExtent {
		t.Fatalf("expected base half extent, got %v", got)
	}
	if got := ObstacleHalfExtent(spec, 100); got != spec.MaxHalfExtent {
		t.Fatalf("expected capped half extent, got %v", got)
	}
}

func TestParticlesExpire(t *testing.T) {
	tw := newTestWorld(t)
	burst, err := entity.NewParticleBurst(tw.w, common.Vec3{Y: 1}, 4, tw.tuning.Particles, tw.rng)
	if err != nil {
		t.Fatal(err)
	}
	state, _ := ecs.First(tw.w, component.ClockComponent.Kind())
	clk, _ := ecs.Get(tw.w, state, component.ClockComponent.Kind())
	clk.DT = tw.tuning.Particles.LifeSeconds / 2

	sys := NewParticleSystem(tw.tuning)
	sys.Update(tw.w)
	b, ok := ecs.Get(tw.w, burst, component.ParticleBurstComponent.Kind())
	if !ok {
		t.Fatalf("burst removed too early")
	}
	if b.Positions[0].Y == 1 {
		t.Fatalf("expected particles to move")
	}

	sys.Update(tw.w)
	if ecs.IsAlive(tw.w, burst) {
		t.Fatalf("expected burst destroyed when its life ran out")
	}
}
