package mesh_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/turnbuckle/internal/mesh"
)

// unit tetrahedron with outward winding, volume 1/6
func tetra() []r3.Triangle {
	o := r3.Vec{}
	x := r3.Vec{X: 1}
	y := r3.Vec{Y: 1}
	z := r3.Vec{Z: 1}
	return []r3.Triangle{
		{o, y, x},
		{o, x, z},
		{o, z, y},
		{x, y, z},
	}
}

func TestComputeClosedTetra(t *testing.T) {
	st, err := mesh.Compute(tetra(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Manifold() {
		t.Fatalf("closed tetrahedron reported broken: %+v", st)
	}
	if st.Triangles != 4 || st.Vertices != 4 {
		t.Errorf("got %d triangles, %d vertices, want 4 and 4", st.Triangles, st.Vertices)
	}
	if math.Abs(st.Volume-1.0/6.0) > 1e-12 {
		t.Errorf("volume = %g, want 1/6", st.Volume)
	}
	if st.MergeTol <= 0 {
		t.Error("derived merge tolerance not reported")
	}
}

func TestComputeOpenMesh(t *testing.T) {
	open := tetra()[:3] // remove the face opposite the origin
	st, err := mesh.Compute(open, 0)
	if err != nil {
		t.Fatal(err)
	}
	if st.Manifold() {
		t.Fatal("open mesh reported watertight")
	}
	if st.BoundaryEdges != 3 {
		t.Errorf("boundary edges = %d, want 3", st.BoundaryEdges)
	}
	if st.OverusedEdges != 0 {
		t.Errorf("overused edges = %d, want 0", st.OverusedEdges)
	}
}

func TestComputeOverusedEdge(t *testing.T) {
	tris := tetra()
	// a fin sharing one existing edge
	tris = append(tris, r3.Triangle{
		{X: 1}, {Y: 1}, {X: 2, Y: 2, Z: 2},
	})
	st, err := mesh.Compute(tris, 0)
	if err != nil {
		t.Fatal(err)
	}
	if st.Manifold() {
		t.Fatal("mesh with fin reported watertight")
	}
	if st.OverusedEdges != 1 {
		t.Errorf("overused edges = %d, want 1", st.OverusedEdges)
	}
}

func TestComputeWeldsNearbyVertices(t *testing.T) {
	tris := tetra()
	// nudge one use of the apex by much less than the weld distance
	tris[3][2] = r3.Vec{X: 1e-7, Y: 1e-7, Z: 1 + 1e-7}
	st, err := mesh.Compute(tris, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Manifold() {
		t.Fatalf("nudged vertex did not weld: %+v", st)
	}
	if st.Vertices != 4 {
		t.Errorf("vertices = %d, want 4 after welding", st.Vertices)
	}
	if st.MergeTol != 1e-3 {
		t.Errorf("MergeTol = %g, want the caller's 1e-3", st.MergeTol)
	}
}

func TestComputeDropsDegenerateTriangles(t *testing.T) {
	tris := tetra()
	apex := r3.Vec{Z: 1}
	tris = append(tris, r3.Triangle{apex, apex, {X: 1}})
	st, err := mesh.Compute(tris, 0)
	if err != nil {
		t.Fatal(err)
	}
	if st.Triangles != 4 {
		t.Errorf("degenerate triangle not dropped: %d triangles", st.Triangles)
	}
	if !st.Manifold() {
		t.Errorf("sliver broke topology: %+v", st)
	}
}

func TestComputeErrors(t *testing.T) {
	if _, err := mesh.Compute(nil, 0); err == nil {
		t.Error("empty mesh should fail")
	}
	if _, err := mesh.Compute(tetra(), 100); err == nil {
		t.Error("weld distance larger than the mesh should fail")
	}
	bad := tetra()
	bad[0][0].X = math.NaN()
	if _, err := mesh.Compute(bad, 0); err == nil {
		t.Error("non-finite vertex should fail")
	}
}
