package genmesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/planegen/pkg/math"
)

func TestCounts(t *testing.T) {
	tests := []struct {
		name      string
		plane     *Plane
		wantVerts int
		wantPolys int
	}{
		{"new", NewPlane(), 4, 1},
		{"2x2", Subdivide(2, 2), 9, 4},
		{"4x4", Subdivide(4, 4), 25, 16},
		{"3x1", Subdivide(3, 1), 8, 3},
		{"1x5", Subdivide(1, 5), 12, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plane.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := tt.plane.PolygonCount(); got != tt.wantPolys {
				t.Errorf("PolygonCount() = %d, want %d", got, tt.wantPolys)
			}
		})
	}
}

func TestCountLaw(t *testing.T) {
	for sx := 1; sx <= 5; sx++ {
		for sy := 1; sy <= 5; sy++ {
			p := Subdivide(sx, sy)
			if got, want := p.VertexCount(), (sx+1)*(sy+1); got != want {
				t.Errorf("Subdivide(%d,%d).VertexCount() = %d, want %d", sx, sy, got, want)
			}
			if got, want := p.PolygonCount(), sx*sy; got != want {
				t.Errorf("Subdivide(%d,%d).PolygonCount() = %d, want %d", sx, sy, got, want)
			}
		}
	}
}

func TestSubdividePanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"zero x", 0, 2},
		{"zero y", 2, 0},
		{"both zero", 0, 0},
		{"negative", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Subdivide(%d, %d) did not panic", tt.x, tt.y)
				}
			}()
			Subdivide(tt.x, tt.y)
		})
	}
}

func TestFaceSequenceLength(t *testing.T) {
	p := Subdivide(3, 2)

	count := 0
	for {
		_, ok := p.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 6 {
		t.Errorf("face sequence yielded %d faces, want 6", count)
	}

	// Exhaustion is permanent and safe to probe repeatedly.
	for i := 0; i < 3; i++ {
		if _, ok := p.Next(); ok {
			t.Errorf("Next() after exhaustion returned a face (call %d)", i+1)
		}
	}
}

func TestFaceSequenceRowMajor(t *testing.T) {
	p := Subdivide(2, 2)
	faces := CollectFaces(p)
	if len(faces) != 4 {
		t.Fatalf("got %d faces, want 4", len(faces))
	}

	// Bottom-left corners in row-major cell order.
	wantBL := []math.Vec2{
		{X: -1, Y: -1},
		{X: 0, Y: -1},
		{X: -1, Y: 0},
		{X: 0, Y: 0},
	}
	for i, want := range wantBL {
		if faces[i].A != want {
			t.Errorf("face %d bottom-left = %v, want %v", i, faces[i].A, want)
		}
	}
}

func TestFaceSequenceCornerOrder(t *testing.T) {
	// The sequence view emits bottom-left, bottom-right, top-right, top-left.
	p := NewPlane()
	q, ok := p.Next()
	if !ok {
		t.Fatal("Next() returned no face for 1x1 plane")
	}

	want := Quad[math.Vec2]{
		A: math.Vec2{X: -1, Y: -1},
		B: math.Vec2{X: 1, Y: -1},
		C: math.Vec2{X: 1, Y: 1},
		D: math.Vec2{X: -1, Y: 1},
	}
	if q != want {
		t.Errorf("Next() = %+v, want %+v", q, want)
	}
}

func TestPolygonCornerOrder(t *testing.T) {
	// The indexed view deliberately uses a different corner order than the
	// sequence view: top-left, bottom-left, bottom-right, top-right.
	// Downstream output is bit-compatible only if this stays as-is.
	p := NewPlane()
	q, err := p.PolygonAt(0)
	if err != nil {
		t.Fatalf("PolygonAt(0) error: %v", err)
	}

	want := Quad[int]{A: 2, B: 0, C: 1, D: 3}
	if q != want {
		t.Errorf("PolygonAt(0) = %+v, want %+v", q, want)
	}
}

func TestOuterCorners(t *testing.T) {
	for _, p := range []*Plane{NewPlane(), Subdivide(2, 2), Subdivide(5, 3)} {
		sx := p.SubdivideX()
		vc := p.VertexCount()

		checks := []struct {
			idx  int
			want math.Vec2
		}{
			{0, math.Vec2{X: -1, Y: -1}},
			{sx, math.Vec2{X: 1, Y: -1}},
			{vc - 1, math.Vec2{X: 1, Y: 1}},
			{vc - sx - 1, math.Vec2{X: -1, Y: 1}},
		}
		for _, c := range checks {
			got, err := p.VertexAt(c.idx)
			if err != nil {
				t.Fatalf("%dx%d: VertexAt(%d) error: %v", sx, p.SubdivideY(), c.idx, err)
			}
			if got != c.want {
				t.Errorf("%dx%d: VertexAt(%d) = %v, want %v", sx, p.SubdivideY(), c.idx, got, c.want)
			}
		}
	}
}

func TestPolygonIndicesInRange(t *testing.T) {
	p := Subdivide(4, 3)
	vc := p.VertexCount()

	for i := 0; i < p.PolygonCount(); i++ {
		q, err := p.PolygonAt(i)
		if err != nil {
			t.Fatalf("PolygonAt(%d) error: %v", i, err)
		}
		for _, idx := range q.Vertices() {
			if idx < 0 || idx >= vc {
				t.Errorf("PolygonAt(%d) index %d outside [0, %d)", i, idx, vc)
			}
		}
	}
}

func TestSharedEdges(t *testing.T) {
	// Neighboring cells must reference identical vertex indices along their
	// shared edge; otherwise the mesh would render with seams.
	p := Subdivide(3, 3)
	sx := p.SubdivideX()

	for i := 0; i < p.PolygonCount(); i++ {
		q, err := p.PolygonAt(i)
		if err != nil {
			t.Fatalf("PolygonAt(%d) error: %v", i, err)
		}

		// Right neighbor shares this cell's right edge as its left edge.
		if (i+1)%sx != 0 {
			r, err := p.PolygonAt(i + 1)
			if err != nil {
				t.Fatalf("PolygonAt(%d) error: %v", i+1, err)
			}
			if q.C != r.B || q.D != r.A {
				t.Errorf("faces %d and %d do not share their vertical edge: %+v vs %+v", i, i+1, q, r)
			}
		}

		// Upper neighbor shares this cell's top edge as its bottom edge.
		if i+sx < p.PolygonCount() {
			u, err := p.PolygonAt(i + sx)
			if err != nil {
				t.Fatalf("PolygonAt(%d) error: %v", i+sx, err)
			}
			if q.A != u.B || q.D != u.C {
				t.Errorf("faces %d and %d do not share their horizontal edge: %+v vs %+v", i, i+sx, q, u)
			}
		}
	}
}

func TestSequenceMatchesIndexedView(t *testing.T) {
	// Both views must agree bit-for-bit on vertex placement. Resolving the
	// indexed corners through VertexAt must reproduce the sequence corners,
	// accounting for the differing corner orders of the two views.
	seq := Subdivide(3, 2)
	lookup := Subdivide(3, 2)

	for i := 0; ; i++ {
		face, ok := seq.Next()
		if !ok {
			break
		}
		poly, err := lookup.PolygonAt(i)
		if err != nil {
			t.Fatalf("PolygonAt(%d) error: %v", i, err)
		}

		resolve := func(idx int) math.Vec2 {
			v, err := lookup.VertexAt(idx)
			if err != nil {
				t.Fatalf("VertexAt(%d) error: %v", idx, err)
			}
			return v
		}

		// sequence: BL, BR, TR, TL — indexed: TL, BL, BR, TR
		if face.A != resolve(poly.B) || face.B != resolve(poly.C) ||
			face.C != resolve(poly.D) || face.D != resolve(poly.A) {
			t.Errorf("face %d: sequence corners %+v disagree with indexed corners %+v", i, face, poly)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	p := Subdivide(2, 2)

	for _, idx := range []int{-1, p.VertexCount(), p.VertexCount() + 10} {
		if _, err := p.VertexAt(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("VertexAt(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	for _, idx := range []int{-1, p.PolygonCount(), p.PolygonCount() + 10} {
		if _, err := p.PolygonAt(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("PolygonAt(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}
