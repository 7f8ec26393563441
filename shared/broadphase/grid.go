// Package broadphase indexes 3D volumes by their XZ footprint in a resolv
// space. Callers run the exact 3D test on whatever a query returns.
package broadphase

import (
	"math"

	"github.com/solarlune/resolv"
)

// UnitsPerMeter converts world metres into resolv units, one Tiled pixel
// each. resolv rounds footprints to whole units.
const UnitsPerMeter = 16

// Grid maps world XZ coordinates into a resolv space whose cells start at
// zero. Footprints outside the bounds are never returned by queries.
type Grid struct {
	space   *resolv.Space
	originX float64
	originZ float64
}

// New covers [minX, maxX] x [minZ, maxZ] with square cells of cellSize metres.
func New(minX, minZ, maxX, maxZ, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := int(math.Ceil((maxX-minX)/cellSize)) + 1
	h := int(math.Ceil((maxZ-minZ)/cellSize)) + 1
	ci := int(math.Ceil(cellSize * UnitsPerMeter))
	return &Grid{
		space:   resolv.NewSpace(w*ci, h*ci, ci, ci),
		originX: minX,
		originZ: minZ,
	}
}

// footprint converts world bounds into a resolv rectangle. resolv treats the
// far edge as exclusive, so the rectangle is one unit wider to keep the cell
// holding the far edge, and a point still occupies its own cell.
func (g *Grid) footprint(minX, minZ, maxX, maxZ float64) (x, y, w, h float64) {
	x = (minX - g.originX) * UnitsPerMeter
	y = (minZ - g.originZ) * UnitsPerMeter
	w = math.Max(maxX-minX, 0)*UnitsPerMeter + 1
	h = math.Max(maxZ-minZ, 0)*UnitsPerMeter + 1
	return x, y, w, h
}

// Space exposes the underlying resolv space.
func (g *Grid) Space() *resolv.Space {
	return g.space
}

// Insert adds a footprint carrying data. Tags filter queries.
func (g *Grid) Insert(minX, minZ, maxX, maxZ float64, data any, tags ...string) *resolv.Object {
	x, y, w, h := g.footprint(minX, minZ, maxX, maxZ)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = data
	g.space.Add(obj)
	return obj
}

// Move places an inserted footprint at new bounds.
func (g *Grid) Move(obj *resolv.Object, minX, minZ, maxX, maxZ float64) {
	obj.X, obj.Y, obj.W, obj.H = g.footprint(minX, minZ, maxX, maxZ)
	obj.Update()
}

func (g *Grid) Remove(obj *resolv.Object) {
	g.space.Remove(obj)
}

// Query returns the data of every footprint with one of the tags that
// overlaps the cells of the given bounds, each at most once.
func (g *Grid) Query(minX, minZ, maxX, maxZ float64, tags ...string) []any {
	x, y, w, h := g.footprint(minX, minZ, maxX, maxZ)
	area := resolv.NewObject(x, y, w, h)
	g.space.Add(area)
	defer g.space.Remove(area)

	check := area.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	seen := make(map[*resolv.Object]bool, len(check.Objects))
	result := make([]any, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if seen[obj] {
			continue
		}
		seen[obj] = true
		result = append(result, obj.Data)
	}
	return result
}

// QueryRadius is Query over the square around a circle.
func (g *Grid) QueryRadius(x, z, radius float64, tags ...string) []any {
	return g.Query(x-radius, z-radius, x+radius, z+radius, tags...)
}
