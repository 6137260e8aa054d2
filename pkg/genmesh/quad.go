// Package genmesh generates grid-plane geometry for rendering pipelines.
//
// The Plane generator covers the unit square [-1,1]x[-1,1] with a
// rectangular grid of quadrilateral faces. It exposes three views over the
// same grid: a one-shot face sequence yielding raw coordinates, a
// shared-vertex view for building deduplicated vertex buffers, and an
// indexed-polygon view for building element buffers over those vertices.
package genmesh

import "github.com/Faultbox/planegen/pkg/math"

// Quad is a four-corner face container. The corner order depends on the
// producing view; see Plane.Next and Plane.PolygonAt.
type Quad[T any] struct {
	A, B, C, D T
}

// Vertices returns the four corners in order.
func (q Quad[T]) Vertices() [4]T {
	return [4]T{q.A, q.B, q.C, q.D}
}

// SharedVertex is the capability of exposing a deduplicated vertex view
// addressable by row-major linear index. Downstream code sizes its vertex
// buffer with VertexCount and fills it with VertexAt.
type SharedVertex interface {
	VertexCount() int
	VertexAt(idx int) (math.Vec2, error)
}

// IndexedPolygon is the capability of exposing faces as indices into the
// shared-vertex view, for building an element buffer without duplicating
// vertex data.
type IndexedPolygon interface {
	PolygonCount() int
	PolygonAt(idx int) (Quad[int], error)
}
