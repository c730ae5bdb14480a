package main

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skyclimb/assets"
	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/game"
)

const pixelsPerUnit = 36

var (
	skyColor      = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	staticColor   = color.RGBA{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff}
	movingColor   = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	bananaColor   = color.RGBA{R: 0xff, G: 0xe1, B: 0x35, A: 0xff}
	obstacleColor = color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xff}
	flashColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	particleColor = color.RGBA{R: 0xff, G: 0xf1, B: 0x76, A: 0xff}
	fallbackBody  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

	powerUpColors = map[component.PowerUpKind]color.RGBA{
		component.PowerUpSpeed:  {R: 0x00, G: 0xe5, B: 0xff, A: 0xff},
		component.PowerUpJump:   {R: 0x76, G: 0xff, B: 0x03, A: 0xff},
		component.PowerUpMagnet: {R: 0xe0, G: 0x40, B: 0xfb, A: 0xff},
	}
)

// drawable is one projected shape, sorted far to near before drawing.
type drawable struct {
	depth float64
	draw  func(*ebiten.Image)
}

// project maps world space to the screen with a fixed oblique view centered
// on the point the camera looks at. +Z comes toward the viewer.
func project(cam component.Camera, v common.Vec3) (float32, float32) {
	dx := v.X - (cam.X - cam.OffsetX)
	dy := v.Y - (cam.Y - cam.OffsetY)
	dz := v.Z - (cam.Z - cam.OffsetZ)
	sx := baseWidth/2 + (dx-dz*0.35)*pixelsPerUnit
	sy := baseHeight*0.6 - dy*pixelsPerUnit + dz*0.35*pixelsPerUnit
	return float32(sx), float32(sy)
}

func drawWorld(screen *ebiten.Image, s *game.Session, model assets.Model, hasModel bool) {
	screen.Fill(skyColor)

	w := s.World()
	cam := s.Camera()
	halfWidth := s.Tuning().Landing.HalfWidth
	var items []drawable

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		x, y := project(cam, t.Vec().Sub(common.Vec3{X: halfWidth}))
		clr := staticColor
		if p.Kind == component.PlatformMoving {
			clr = movingColor
		}
		lift := float32(p.TiltX * pixelsPerUnit * 10)
		items = append(items, drawable{depth: t.Z, draw: func(dst *ebiten.Image) {
			vector.DrawFilledRect(dst, x, y-lift, float32(halfWidth*2*pixelsPerUnit), 0.3*pixelsPerUnit, clr, false)
		}})
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Pickup, t *component.Transform) {
		x, y := project(cam, t.Vec())
		items = append(items, drawable{depth: t.Z, draw: func(dst *ebiten.Image) {
			vector.DrawFilledCircle(dst, x, y, 0.25*pixelsPerUnit, bananaColor, true)
		}})
	})

	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pu *component.PowerUp, t *component.Transform) {
		x, y := project(cam, t.Vec())
		clr := powerUpColors[pu.Kind]
		items = append(items, drawable{depth: t.Z, draw: func(dst *ebiten.Image) {
			vector.DrawFilledCircle(dst, x, y, 0.3*pixelsPerUnit, clr, true)
		}})
	})

	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ob *component.Obstacle, t *component.Transform) {
		x, y := project(cam, t.Vec().Add(common.Vec3{X: -ob.HalfExtent, Y: ob.HalfExtent}))
		size := float32(ob.HalfExtent * 2 * pixelsPerUnit)
		clr := obstacleColor
		if ob.Flash > 0 {
			clr = flashColor
		}
		items = append(items, drawable{depth: t.Z, draw: func(dst *ebiten.Image) {
			vector.DrawFilledRect(dst, x, y, size, size, clr, false)
		}})
	})

	ecs.ForEach(w, component.ParticleBurstComponent.Kind(), func(_ ecs.Entity, b *component.ParticleBurst) {
		for _, pos := range b.Positions {
			x, y := project(cam, pos)
			items = append(items, drawable{depth: pos.Z, draw: func(dst *ebiten.Image) {
				vector.DrawFilledRect(dst, x-2, y-2, 4, 4, particleColor, false)
			}})
		}
	})

	p, t := s.PlayerState()
	items = append(items, playerDrawable(cam, p, t, model, hasModel))

	slices.SortStableFunc(items, func(a, b drawable) int { return cmp.Compare(a.depth, b.depth) })
	for _, it := range items {
		it.draw(screen)
	}
}

func playerDrawable(cam component.Camera, p component.Player, t component.Transform, model assets.Model, hasModel bool) drawable {
	width, height := 0.7, 1.5
	body, accent := fallbackBody, fallbackBody
	if hasModel {
		width, height = model.Width, model.Height
		body, accent = model.BodyColor(), model.AccentColor()
	}

	x, y := project(cam, t.Vec().Add(common.Vec3{X: -width / 2, Y: height}))
	w := float32(width * pixelsPerUnit)
	h := float32(height * pixelsPerUnit)
	if p.Anim == component.AnimJump {
		h *= 1.08
		y -= h * 0.08
	}
	// A stripe on the side the player faces.
	face := float32(math.Sin(p.Facing)) * w * 0.3

	return drawable{depth: t.Z, draw: func(dst *ebiten.Image) {
		vector.DrawFilledRect(dst, x, y, w, h, body, false)
		vector.DrawFilledRect(dst, x+w*0.35+face, y+h*0.15, w*0.3, h*0.2, accent, false)
	}}
}

func drawHUD(screen *ebiten.Image, s *game.Session) {
	score := s.Score()
	height := 0.0
	if !math.IsInf(score.MaxHeight, -1) {
		height = score.MaxHeight
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Score %d   High %d   Height %.1f   Bananas %d (bank %d)",
		score.Total, score.HighScore, height, score.Bananas, s.Profile().Bananas)

	fx := s.Effects()
	for _, kind := range component.PowerUpKinds {
		if left := fx.Remaining(kind); left > 0 {
			fmt.Fprintf(&b, "\n%s %.1fs", kind, left)
		}
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 8)
}
