package system

import (
	"math"
	"testing"

	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
)

func TestOscillateStaysWithinRange(t *testing.T) {
	tests := []struct {
		name   string
		axis   component.Axis
		rng    float64
		speed  float64
		factor float64
	}{
		{"slow_x", component.AxisX, 2, 0.03, 1},
		{"fast_z", component.AxisZ, 1.2, 0.4, 1.7},
		{"speed_larger_than_range", component.AxisX, 0.5, 3, 1},
		{"negative_start", component.AxisZ, 3.2, -0.09, 2.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := &component.Transform{X: 4, Z: -2}
			o := &component.Oscillator{Axis: tc.axis, Range: tc.rng, Speed: tc.speed, Anchor: 4}
			if tc.axis == component.AxisZ {
				o.Anchor = -2
			}

			reversals := 0
			prev := math.Signbit(o.Speed)
			for range 2000 {
				oscillate(tr, o, tc.factor)
				pos := tr.X
				if tc.axis == component.AxisZ {
					pos = tr.Z
				}
				if off := math.Abs(pos - o.Anchor); off > tc.rng+1e-9 {
					t.Fatalf("offset %.4f exceeds range %.4f", off, tc.rng)
				}
				if math.Signbit(o.Speed) != prev {
					reversals++
					prev = math.Signbit(o.Speed)
				}
			}
			if reversals == 0 {
				t.Fatalf("expected the oscillator to reverse")
			}
			if tc.axis == component.AxisX && tr.Z != -2 {
				t.Fatalf("off-axis coordinate moved to %v", tr.Z)
			}
		})
	}
}

func TestMovementJumpAndDoubleJump(t *testing.T) {
	tw := newTestWorld(t)
	sys := NewMovementSystem(tw.tuning)
	p := tw.playerState()

	tw.input().JumpPressed = true
	sys.Update(tw.w)
	if !p.Jumping || p.VelocityY != tw.tuning.Player.JumpVelocity {
		t.Fatalf("expected first jump, got jumping=%v vy=%v", p.Jumping, p.VelocityY)
	}
	if tw.input().JumpPressed {
		t.Fatalf("expected jump edge to be consumed")
	}
	if eventsOf(tw.w, ecs.EventJumped) != 1 {
		t.Fatalf("expected a jumped event")
	}

	p.VelocityY = 0.1
	tw.input().JumpPressed = true
	sys.Update(tw.w)
	if !p.DoubleJumpUsed || p.VelocityY != tw.tuning.Player.JumpVelocity {
		t.Fatalf("expected double jump, got used=%v vy=%v", p.DoubleJumpUsed, p.VelocityY)
	}
	if eventsOf(tw.w, ecs.EventDoubleJumped) != 1 {
		t.Fatalf("expected a double jumped event")
	}

	p.VelocityY = 0.1
	tw.input().JumpPressed = true
	sys.Update(tw.w)
	if p.VelocityY != 0.1 {
		t.Fatalf("third jump should be ignored, vy=%v", p.VelocityY)
	}
}

func TestMovementNormalizesDiagonal(t *testing.T) {
	tw := newTestWorld(t)
	tw.place(common.Vec3{})
	in := tw.input()
	in.MoveX, in.MoveZ = 1, 1

	NewMovementSystem(tw.tuning).Update(tw.w)

	want := tw.tuning.Player.MoveSpeed / math.Sqrt2
	tr := tw.transform()
	if math.Abs(tr.X-want) > 1e-6 || math.Abs(tr.Z-want) > 1e-6 {
		t.Fatalf("expected (%.5f, %.5f), got (%.5f, %.5f)", want, want, tr.X, tr.Z)
	}
	if tw.playerState().Facing <= 0 {
		t.Fatalf("expected facing to turn toward +x+z, got %v", tw.playerState().Facing)
	}
}

func TestLandingSnapsOntoFirstMatchingPlatform(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		vy       float64
		wantY    float64
		wantLand bool
	}{
		{"falls_into_window", 2.6, -0.1, 2.25, true},
		{"rising_passes_through", 2.6, 0.3, 2.6, false},
		{"too_far_below", 1.8, -0.1, 1.8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			tw.platform(t, common.Vec3{Y: 2})
			tw.platform(t, common.Vec3{Y: 2.5})
			tw.place(common.Vec3{X: 0.5, Y: tc.y, Z: -0.5})
			p := tw.playerState()
			p.VelocityY = tc.vy
			p.Jumping = true
			p.DoubleJumpUsed = true

			NewLandingSystem(tw.tuning).Update(tw.w)

			if !near(tw.transform().Y, tc.wantY) {
				t.Fatalf("expected y %.2f, got %.4f", tc.wantY, tw.transform().Y)
			}
			if tc.wantLand == p.Jumping {
				t.Fatalf("expected landed=%v, jumping=%v", tc.wantLand, p.Jumping)
			}
			if tc.wantLand && (p.VelocityY != 0 || p.DoubleJumpUsed) {
				t.Fatalf("landing should reset vy and double jump")
			}
		})
	}
}

func TestGravityThenLandingFromSpawn(t *testing.T) {
	tw := newTestWorld(t)
	tw.platform(t, common.Vec3{})

	NewPhysicsSystem(tw.tuning).Update(tw.w)
	NewLandingSystem(tw.tuning).Update(tw.w)

	if !near(tw.transform().Y, tw.tuning.Landing.SnapOffset) {
		t.Fatalf("expected player resting at %.2f, got %.4f", tw.tuning.Landing.SnapOffset, tw.transform().Y)
	}
}

func TestDeathTriggersOnce(t *testing.T) {
	tw := newTestWorld(t)
	cam, _ := camera(tw.w)
	tw.place(common.Vec3{Y: cam.Y - tw.tuning.Camera.FallLimit - 1})

	sys := NewDeathSystem(tw.tuning)
	sys.Update(tw.w)
	if tw.playerState().Alive {
		t.Fatalf("expected the player to die")
	}
	if eventsOf(tw.w, ecs.EventDied) != 1 {
		t.Fatalf("expected one died event")
	}

	sys.Update(tw.w)
	if eventsOf(tw.w, ecs.EventDied) != 0 {
		t.Fatalf("death must not re-trigger")
	}
}

func TestCameraEasesTowardPlayer(t *testing.T) {
	tw := newTestWorld(t)
	tw.place(common.Vec3{X: 10, Y: 0, Z: 0})
	cam, _ := camera(tw.w)
	startX := cam.X

	NewCameraSystem().Update(tw.w)

	want := startX + (10+cam.OffsetX-startX)*cam.Smoothness
	if !near(cam.X, want) {
		t.Fatalf("expected camera x %.4f, got %.4f", want, cam.X)
	}
}

func TestPlatformMotionOnlyMovesMovingPlatforms(t *testing.T) {
	tw := newTestWorld(t)
	static := tw.platform(t, common.Vec3{})
	moving, err := entityNewMovingPlatform(tw, common.Vec3{X: 1})
	if err != nil {
		t.Fatal(err)
	}

	NewPlatformMotionSystem(tw.tuning).Update(tw.w)

	st, _ := ecs.Get(tw.w, static, component.TransformComponent.Kind())
	mt, _ := ecs.Get(tw.w, moving, component.TransformComponent.Kind())
	if st.X != 0 {
		t.Fatalf("static platform moved to %v", st.X)
	}
	if !near(mt.X, 1.05) {
		t.Fatalf("expected moving platform at 1.05, got %v", mt.X)
	}
}

func TestPlatformTilt(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		id      int
		x, z    float64
	}{
		{"origin", 0, 0, 0, 0},
		{"id only", 0, 2, math.Sin(2) * 0.02, math.Sin(1.4) * 0.02},
		{"elapsed only", 4, 0, math.Sin(2) * 0.02, math.Sin(1.4) * 0.02},
		{"both", 2, 3, math.Sin(4) * 0.02, math.Sin(0.7+2.1) * 0.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z := platformTilt(tt.elapsed, tt.id, 0.02)
			if !near(x, tt.x) || !near(z, tt.z) {
				t.Fatalf("got (%v, %v), want (%v, %v)", x, z, tt.x, tt.z)
			}
		})
	}
}

func TestPlatformMotionSetsTilt(t *testing.T) {
	tw := newTestWorld(t)
	moving, err := entityNewMovingPlatform(tw, common.Vec3{})
	if err != nil {
		t.Fatal(err)
	}
	state, _ := ecs.First(tw.w, component.ClockComponent.Kind())
	clk, _ := ecs.Get(tw.w, state, component.ClockComponent.Kind())
	clk.Elapsed = 3

	NewPlatformMotionSystem(tw.tuning).Update(tw.w)

	p, _ := ecs.Get(tw.w, moving, component.PlatformComponent.Kind())
	wantX, wantZ := platformTilt(3, p.ID, tw.tuning.Platforms.TiltAmplitude)
	if p.TiltX != wantX || p.TiltZ != wantZ || p.TiltX == p.TiltZ {
		t.Fatalf("unexpected tilt (%v, %v)", p.TiltX, p.TiltZ)
	}
}
