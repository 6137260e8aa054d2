package genmesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/planegen/pkg/math"
)

// ErrIndexOutOfRange is returned by VertexAt and PolygonAt when the index
// does not address a vertex or face of the grid.
var ErrIndexOutOfRange = errors.New("genmesh: index out of range")

// Plane generates a subdivided 2D plane spanning [-1,1] on both axes.
// The zero value is not usable; construct with NewPlane or Subdivide.
//
// The two lookup views (VertexAt/PolygonAt) are pure functions of the grid
// parameters and safe for concurrent use. Next mutates the face cursor and
// needs external synchronization if shared between goroutines.
type Plane struct {
	subdivideX int
	subdivideY int

	// Face-sequence cursor: the next cell to emit.
	x, y int
}

// NewPlane returns an unsubdivided plane, a 1x1 grid producing one face.
func NewPlane() *Plane {
	return Subdivide(1, 1)
}

// Subdivide returns a plane with x columns and y rows of cells.
// Both counts must be at least 1; violating that is a caller bug and panics.
func Subdivide(x, y int) *Plane {
	if x < 1 || y < 1 {
		panic(fmt.Sprintf("genmesh: subdivisions must be positive, got %dx%d", x, y))
	}
	return &Plane{subdivideX: x, subdivideY: y}
}

// SubdivideX returns the number of cell columns.
func (p *Plane) SubdivideX() int { return p.subdivideX }

// SubdivideY returns the number of cell rows.
func (p *Plane) SubdivideY() int { return p.subdivideY }

// vert maps integer grid position (gx, gy) to plane coordinates. Column 0
// lands on -1 and column subdivideX on +1 regardless of subdivision count.
// Every view derives its coordinates from this one function, so a vertex
// shared by adjacent faces is bit-identical in all of them.
func (p *Plane) vert(gx, gy int) math.Vec2 {
	sx := float32(p.subdivideX)
	sy := float32(p.subdivideY)
	return math.Vec2{
		X: (2/sx)*float32(gx) - 1,
		Y: (2/sy)*float32(gy) - 1,
	}
}

// Next emits the corners of the next grid cell counter-clockwise:
// bottom-left, bottom-right, top-right, top-left. Cells come out in
// row-major order, row 0 left to right first. After the last cell Next
// returns false and keeps returning false; the traversal cannot be
// restarted, so construct a fresh Plane to iterate again.
func (p *Plane) Next() (Quad[math.Vec2], bool) {
	if p.x == p.subdivideX {
		p.x = 0
		p.y++
	}
	if p.y >= p.subdivideY {
		return Quad[math.Vec2]{}, false
	}

	q := Quad[math.Vec2]{
		A: p.vert(p.x, p.y),
		B: p.vert(p.x+1, p.y),
		C: p.vert(p.x+1, p.y+1),
		D: p.vert(p.x, p.y+1),
	}
	p.x++
	return q, true
}

// VertexCount returns the number of distinct grid vertices,
// (subdivideX+1) * (subdivideY+1).
func (p *Plane) VertexCount() int {
	return (p.subdivideX + 1) * (p.subdivideY + 1)
}

// VertexAt returns the coordinate of the vertex with the given row-major
// linear index. Indices outside [0, VertexCount()) yield ErrIndexOutOfRange.
func (p *Plane) VertexAt(idx int) (math.Vec2, error) {
	if idx < 0 || idx >= p.VertexCount() {
		return math.Vec2{}, fmt.Errorf("%w: vertex %d of %d", ErrIndexOutOfRange, idx, p.VertexCount())
	}
	gy := idx / (p.subdivideX + 1)
	gx := idx % (p.subdivideX + 1)
	return p.vert(gx, gy), nil
}

// PolygonCount returns the number of faces, subdivideX * subdivideY.
func (p *Plane) PolygonCount() int {
	return p.subdivideX * p.subdivideY
}

// PolygonAt returns the vertex indices of the face with the given row-major
// linear index. Corner order is top-left, bottom-left, bottom-right,
// top-right — NOT the order Next uses. Existing consumers depend on both
// orders exactly as they are; do not reconcile them.
func (p *Plane) PolygonAt(idx int) (Quad[int], error) {
	if idx < 0 || idx >= p.PolygonCount() {
		return Quad[int]{}, fmt.Errorf("%w: polygon %d of %d", ErrIndexOutOfRange, idx, p.PolygonCount())
	}
	row := idx / p.subdivideX
	base := idx%p.subdivideX + row*(p.subdivideX+1)
	return Quad[int]{
		A: base + p.subdivideX + 1,
		B: base,
		C: base + 1,
		D: base + p.subdivideX + 2,
	}, nil
}

var (
	_ SharedVertex   = (*Plane)(nil)
	_ IndexedPolygon = (*Plane)(nil)
)
