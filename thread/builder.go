package thread

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"

	"github.com/printforge/turnbuckle/internal/mesh"
)

// Builder turns a Spec into a watertight thread solid. The zero value is
// ready to use and checks every solid at a coarse octree resolution before
// handing it out.
type Builder struct {
	// VerifyCells is the octree cell count along the longest axis used for
	// the watertightness check. Zero selects 64.
	VerifyCells int
	// MergeTol is the vertex merge distance for the check mesh in mm.
	// Zero derives one from the mesh extents.
	MergeTol float64
	// Tolerance is a radial printing allowance in mm. External solids
	// shrink by it and internal cutters grow by it, so mating printed
	// parts clear each other.
	Tolerance float64
}

func (b *Builder) cells() int {
	if b.VerifyCells <= 0 {
		return 64
	}
	return b.VerifyCells
}

// Solid builds the thread solid for spec, centered on the z-axis and
// spanning spec.Length symmetrically about the origin. For External the
// result is the printable threaded rod including its core. For Internal it
// is the cutter to subtract from a host solid, its core included so the
// bore comes out in one subtraction.
func (b *Builder) Solid(spec Spec) (sdf.SDF3, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	dims := spec.Dims()
	base := dims.Minor / 2
	switch spec.Class {
	case External:
		base -= b.Tolerance
	case Internal:
		base += b.Tolerance
	}
	if base <= 0 {
		return nil, paramErrf("tolerance %g leaves no core on %s", b.Tolerance, spec)
	}
	profile, err := NewProfile(spec.Pitch, spec.Class)
	if err != nil {
		return nil, err
	}
	helix, err := NewHelix(base, spec.Pitch, spec.Length, spec.Hand, spec.Phase)
	if err != nil {
		return nil, err
	}
	var runout float64
	if spec.Class == External {
		// taper the crest down to the root over the last fraction of a
		// turn so the printed rod starts into its nut without cross
		// threading
		runout = helix.RunOut(profile.Rise())
	}
	solid := sdf.Union3D(
		newHelicalSweep(profile, helix, runout),
		must3.Cylinder(spec.Length, base, 0),
	)
	if err := b.Verify(solid, spec.String()); err != nil {
		return nil, err
	}
	return solid, nil
}

// Verify meshes a solid at the builder's verification resolution and
// rejects anything that is not a closed 2-manifold. name labels the solid
// in error messages.
func (b *Builder) Verify(s sdf.SDF3, name string) error {
	tris, err := render.RenderAll(render.NewOctreeRenderer(s, b.cells()))
	if err != nil {
		return fmt.Errorf("meshing %s for verification: %w", name, err)
	}
	st, err := mesh.Compute(tris, b.MergeTol)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", name, err)
	}
	if st.Manifold() {
		return nil
	}
	// Marching cubes occasionally emits coincident vertices that quantize
	// into neighboring cells. One retry at double the merge distance
	// absorbs those before we call the solid broken.
	st, err = mesh.Compute(tris, 2*st.MergeTol)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", name, err)
	}
	if !st.Manifold() {
		return fmt.Errorf("%s: %w", name, &NonManifoldError{
			BoundaryEdges: st.BoundaryEdges,
			OverusedEdges: st.OverusedEdges,
		})
	}
	return nil
}
