package motor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/shared/broadphase"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/tags"
)

// Geometry is the static collision world: axis-aligned blocks and ramps.
type Geometry struct {
	grid  *broadphase.Grid
	boxes []gamemath.Box
}

// NewGeometry indexes the boxes. The grid covers their footprint plus a margin.
func NewGeometry(boxes []gamemath.Box) *Geometry {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, b := range boxes {
		minX = math.Min(minX, b.Min.X())
		minZ = math.Min(minZ, b.Min.Z())
		maxX = math.Max(maxX, b.Max.X())
		maxZ = math.Max(maxZ, b.Max.Z())
	}
	if len(boxes) == 0 {
		minX, minZ, maxX, maxZ = 0, 0, 0, 0
	}
	const margin = 16
	g := &Geometry{
		grid:  broadphase.New(minX-margin, minZ-margin, maxX+margin, maxZ+margin, 4),
		boxes: boxes,
	}
	for i := range g.boxes {
		b := &g.boxes[i]
		tag := tags.ResolvSolid
		if b.Slope != gamemath.SlopeNone {
			tag = tags.ResolvRamp
		}
		g.grid.Insert(b.Min.X(), b.Min.Z(), b.Max.X(), b.Max.Z(), b, tag)
	}
	return g
}

// Boxes returns the indexed boxes.
func (g *Geometry) Boxes() []gamemath.Box {
	return g.boxes
}

// Near returns the boxes whose footprint comes within radius of (x, z).
func (g *Geometry) Near(x, z, radius float64) []*gamemath.Box {
	hits := g.grid.QueryRadius(x, z, radius, tags.ResolvSolid, tags.ResolvRamp)
	result := make([]*gamemath.Box, 0, len(hits))
	for _, h := range hits {
		b := h.(*gamemath.Box)
		cx := gamemath.Clamp(x, b.Min.X(), b.Max.X())
		cz := gamemath.Clamp(z, b.Min.Z(), b.Max.Z())
		if math.Hypot(x-cx, z-cz) <= radius {
			result = append(result, b)
		}
	}
	return result
}

// Raycast returns the distance from origin straight down to the first surface
// below it, or +Inf when there is none.
func (g *Geometry) Raycast(origin mgl64.Vec3) float64 {
	best := math.Inf(1)
	for _, b := range g.Near(origin.X(), origin.Z(), 0) {
		s := b.SurfaceHeight(origin.X(), origin.Z())
		if s <= origin.Y()+1e-9 && origin.Y()-s < best {
			best = origin.Y() - s
		}
	}
	return best
}
