package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Faultbox/planegen/pkg/genmesh"
)

// Mesh is the flat JSON form of a generated plane, shaped for direct upload
// by web or tooling consumers. Vertices are two floats per entry, indices
// are three per triangle.
type Mesh struct {
	Vertices     []float32 `json:"vertices"` // [x0,y0, x1,y1, ...]
	Indices      []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	VertexCount  int       `json:"vertexCount"`
	PolygonCount int       `json:"polygonCount"`
}

// BuildMesh flattens the provider's views into a Mesh.
func BuildMesh(p Provider) (*Mesh, error) {
	verts, err := genmesh.BuildVertexBuffer(p)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	indices, err := genmesh.BuildIndexBuffer(p)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	flat := make([]float32, 0, len(verts)*2)
	for _, v := range verts {
		flat = append(flat, v.X, v.Y)
	}

	return &Mesh{
		Vertices:     flat,
		Indices:      indices,
		VertexCount:  p.VertexCount(),
		PolygonCount: p.PolygonCount(),
	}, nil
}

// WriteJSON writes the mesh as a single JSON document.
func WriteJSON(w io.Writer, p Provider) error {
	m, err := BuildMesh(p)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
