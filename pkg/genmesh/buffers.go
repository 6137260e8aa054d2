package genmesh

import "github.com/Faultbox/planegen/pkg/math"

// BuildVertexBuffer collects the shared-vertex view into a flat slice,
// one entry per distinct grid vertex, ordered by linear index.
func BuildVertexBuffer(sv SharedVertex) ([]math.Vec2, error) {
	verts := make([]math.Vec2, sv.VertexCount())
	for i := range verts {
		v, err := sv.VertexAt(i)
		if err != nil {
			return nil, err
		}
		verts[i] = v
	}
	return verts, nil
}

// BuildIndexBuffer triangulates the indexed-polygon view into a flat
// element buffer, two counter-clockwise triangles per quad fanned from the
// first corner. Indices reference the buffer produced by BuildVertexBuffer.
func BuildIndexBuffer(ip IndexedPolygon) ([]uint32, error) {
	indices := make([]uint32, 0, ip.PolygonCount()*6)
	for i := 0; i < ip.PolygonCount(); i++ {
		q, err := ip.PolygonAt(i)
		if err != nil {
			return nil, err
		}
		a, b, c, d := uint32(q.A), uint32(q.B), uint32(q.C), uint32(q.D)
		indices = append(indices,
			a, b, c,
			a, c, d,
		)
	}
	return indices, nil
}

// CollectFaces drains the plane's face sequence into a slice. The cursor is
// consumed; construct a fresh Plane to traverse again.
func CollectFaces(p *Plane) []Quad[math.Vec2] {
	faces := make([]Quad[math.Vec2], 0, p.PolygonCount())
	for {
		q, ok := p.Next()
		if !ok {
			return faces
		}
		faces = append(faces, q)
	}
}
