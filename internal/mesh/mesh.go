// Package mesh inspects triangle soups produced by the octree renderer.
// It welds vertices within a merge tolerance, pairs up the resulting edges
// and reports whether the mesh is a closed 2-manifold, along with its
// enclosed volume. A printable part must pass Manifold before it is worth
// writing to STL.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarizes the welded topology of a triangle mesh.
type Stats struct {
	Triangles int
	Vertices  int
	// BoundaryEdges counts edges used by exactly one triangle. A closed
	// surface has none.
	BoundaryEdges int
	// OverusedEdges counts edges shared by three or more triangles, the
	// signature of self-intersecting or doubled geometry.
	OverusedEdges int
	// Volume is the signed enclosed volume in mm³, positive for outward
	// facing windings.
	Volume float64
	// MergeTol is the vertex weld distance actually used, either the
	// caller's or the derived default.
	MergeTol float64
}

// Manifold reports whether every edge is shared by exactly two triangles.
func (s Stats) Manifold() bool {
	return s.BoundaryEdges == 0 && s.OverusedEdges == 0
}

// Compute welds the triangle soup at tol and returns its topology stats.
// A tol of zero derives the weld distance from the shortest triangle side,
// which suits meshes straight out of marching cubes. Triangles that
// collapse to fewer than three distinct vertices after welding are dropped
// before edges are counted.
func Compute(triangles []r3.Triangle, tol float64) (Stats, error) {
	if len(triangles) == 0 {
		return Stats{}, errors.New("empty mesh")
	}
	bb := triangles[0][0]
	bbMax := bb
	minSide2 := math.MaxFloat64
	for i := range triangles {
		for j, vert := range triangles[i] {
			if !finite(vert) {
				return Stats{}, fmt.Errorf("non-finite vertex in triangle %d", i)
			}
			bb = minElem(bb, vert)
			bbMax = maxElem(bbMax, vert)
			side2 := r3.Norm2(r3.Sub(triangles[i][(j+1)%3], vert))
			if side2 > 0 {
				minSide2 = math.Min(minSide2, side2)
			}
		}
	}
	if tol == 0 {
		tol = math.Sqrt(minSide2) / 256
	}
	size := r3.Sub(bbMax, bb)
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	div := int64(maxDim/tol + 1e-12)
	if div <= 0 {
		return Stats{}, errors.New("merge tolerance larger than mesh")
	}
	if div > math.MaxInt64/2 {
		return Stats{}, errors.New("merge tolerance too small, quantization overflows int64")
	}

	// vertex weld cache, resolution space
	cache := make(map[[3]int64]int)
	vertices := 0
	ri := 1 / tol
	lookup := func(vert r3.Vec) int {
		v := r3.Scale(ri, vert)
		vi := [3]int64{int64(v.X), int64(v.Y), int64(v.Z)}
		idx, ok := cache[vi]
		if !ok {
			idx = vertices
			cache[vi] = idx
			vertices++
		}
		return idx
	}

	st := Stats{MergeTol: tol}
	edges := make(map[[2]int]int)
	for i := range triangles {
		var vi [3]int
		for j, vert := range triangles[i] {
			vi[j] = lookup(vert)
		}
		if vi[0] == vi[1] || vi[1] == vi[2] || vi[2] == vi[0] {
			continue // degenerate sliver, welded away
		}
		st.Triangles++
		st.Volume += signedTetraVolume(triangles[i])
		for j := range vi {
			edge := [2]int{vi[j], vi[(j+1)%3]}
			if edge[0] > edge[1] {
				edge[0], edge[1] = edge[1], edge[0]
			}
			edges[edge]++
		}
	}
	st.Vertices = vertices
	for _, n := range edges {
		switch {
		case n == 1:
			st.BoundaryEdges++
		case n > 2:
			st.OverusedEdges++
		}
	}
	return st, nil
}

// signedTetraVolume is the signed volume of the tetrahedron spanned by the
// triangle and the origin. Summed over a closed outward-wound surface it
// yields the enclosed volume.
func signedTetraVolume(t r3.Triangle) float64 {
	return r3.Dot(t[0], r3.Cross(t[1], t[2])) / 6
}

// finite rejects vertices that would not survive the float32 narrowing of
// the STL format.
func finite(v r3.Vec) bool {
	return !math32.IsNaN(float32(v.X)) && !math32.IsInf(float32(v.X), 0) &&
		!math32.IsNaN(float32(v.Y)) && !math32.IsInf(float32(v.Y), 0) &&
		!math32.IsNaN(float32(v.Z)) && !math32.IsInf(float32(v.Z), 0)
}

func minElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
