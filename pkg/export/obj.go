// Package export writes generated plane meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/planegen/pkg/genmesh"
)

// Provider is the pair of mesh views an exporter consumes: the deduplicated
// vertices and the faces indexing into them.
type Provider interface {
	genmesh.SharedVertex
	genmesh.IndexedPolygon
}

// OBJOptions controls Wavefront OBJ output.
type OBJOptions struct {
	// Name is written as an "o" line when non-empty.
	Name string
}

// WriteOBJ writes the mesh as Wavefront OBJ: one "v" line per shared vertex
// (the plane lies in z=0) and one quad "f" line per face. OBJ face indices
// are 1-based. Output is deterministic for a given grid.
func WriteOBJ(w io.Writer, p Provider, opts OBJOptions) error {
	bw := bufio.NewWriter(w)

	if opts.Name != "" {
		fmt.Fprintf(bw, "o %s\n", opts.Name)
	}

	for i := 0; i < p.VertexCount(); i++ {
		v, err := p.VertexAt(i)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(bw, "v %g %g 0\n", v.X, v.Y)
	}

	for i := 0; i < p.PolygonCount(); i++ {
		q, err := p.PolygonAt(i)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(bw, "f %d %d %d %d\n", q.A+1, q.B+1, q.C+1, q.D+1)
	}

	return bw.Flush()
}
