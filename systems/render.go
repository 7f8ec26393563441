package systems

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/tags"
)

const mapMargin = 10

// planView maps world XZ onto the screen, forward up.
type planView struct {
	minX, maxZ float64
	scale      float64
	offsetX    float64
}

func newPlanView(e *ecs.ECS, screen *ebiten.Image) (planView, bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return planView{}, false
	}
	minX, minZ, maxX, maxZ := components.Level.Get(levelEntry).Arena.Bounds()
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	scale := math.Min((w-2*mapMargin)/(maxX-minX), (h-2*mapMargin)/(maxZ-minZ))
	return planView{
		minX:    minX,
		maxZ:    maxZ,
		scale:   scale,
		offsetX: (w - (maxX-minX)*scale) / 2,
	}, true
}

func (p planView) point(v mgl64.Vec3) (float32, float32) {
	return float32(p.offsetX + (v.X()-p.minX)*p.scale), float32(mapMargin + (p.maxZ-v.Z())*p.scale)
}

func (p planView) rect(screen *ebiten.Image, min, max mgl64.Vec3, fill, stroke color.Color) {
	x, y := p.point(mgl64.Vec3{min.X(), 0, max.Z()})
	w := float32((max.X() - min.X()) * p.scale)
	h := float32((max.Z() - min.Z()) * p.scale)
	if fill != nil {
		vector.FillRect(screen, x, y, w, h, fill, false)
	}
	if stroke != nil {
		vector.StrokeRect(screen, x, y, w, h, 1, stroke, false)
	}
}

// shade brightens a color with height so stacked platforms stay readable.
func shade(c color.RGBA, height float64) color.RGBA {
	k := gamemath.Clamp(1+height/10, 0.5, 2)
	scale := func(v uint8) uint8 { return uint8(gamemath.Clamp(float64(v)*k, 0, 255)) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// DrawArena draws a plan view of the arena, its triggers and the player.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newPlanView(e, screen)
	if !ok {
		return
	}
	arena := components.Level.Get(components.Level.MustFirst(e.World)).Arena

	for _, b := range arena.Platforms {
		c := cfg.Ground
		if b.Slope != gamemath.SlopeNone {
			c = cfg.Ramp
		}
		view.rect(screen, b.Min, b.Max, shade(c, b.Max.Y()), nil)
	}
	components.Teleporter.Each(e.World, func(entry *donburi.Entry) {
		t := components.Teleporter.Get(entry)
		view.rect(screen, t.Volume.Min, t.Volume.Max, nil, cfg.LightBlue)
	})
	components.ForcePad.Each(e.World, func(entry *donburi.Entry) {
		pad := components.ForcePad.Get(entry)
		c := cfg.Yellow
		if pad.Rearm.IsRunning() {
			c = cfg.White
		}
		view.rect(screen, pad.Volume.Min, pad.Volume.Max, nil, c)
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	pos := player.Motor.Interpolated(sim.Alpha)
	x, y := view.point(pos)
	r := float32(player.Motor.Radius() * view.scale)
	c := cfg.LightGreen
	if !player.Motor.Contact().IsStableOnGround {
		c = cfg.Red
	}
	vector.FillCircle(screen, x, y, max(r, 2), c, true)

	hx, hy := view.point(pos.Add(player.Motor.CharacterForward().Mul(1.5)))
	vector.StrokeLine(screen, x, y, hx, hy, 1, cfg.White, true)

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(cameraEntry)
		cx, cy := view.point(cam.View.Position)
		fx, fy := view.point(cam.View.Position.Add(gamemath.Horizontal(cam.View.Forward()).Mul(2)))
		vector.FillCircle(screen, cx, cy, 2, cfg.Yellow, true)
		vector.StrokeLine(screen, cx, cy, fx, fy, 1, cfg.Yellow, true)
	}
}
