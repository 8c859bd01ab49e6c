package fitting

import (
	"fmt"
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/turnbuckle/thread"
)

// eye builds one eye fitting: a threaded shank from z=0 up, an unthreaded
// pilot, then the eye loop, the whole part flattened between two faces so
// it prints lying down without supports. Dimples at the thread root mark
// the hand.
func eye(p Params, b thread.Builder, hand thread.Hand) (sdf.SDF3, error) {
	engage := p.engagement()
	spec := thread.Spec{
		Nominal: p.Nominal,
		Pitch:   p.Pitch,
		Class:   thread.External,
		Hand:    hand,
		Length:  engage,
	}
	rod, err := b.Solid(spec)
	if err != nil {
		return nil, err
	}

	tube := p.eyeTubeRadius()
	ring := p.eyeRingRadius()
	pilot := pilotLength + tube
	loopZ := engage + pilot + ring
	top := loopZ + ring + tube

	parts := []sdf.SDF3{
		sdf.Transform3D(rod, sdf.Translate3D(r3.Vec{Z: engage / 2})),
		sdf.Transform3D(
			must3.Cylinder(pilot, p.Nominal/2, 0),
			sdf.Translate3D(r3.Vec{Z: engage + pilot/2}),
		),
		sdf.Transform3D(&torus{ring: ring, tube: tube}, sdf.Translate3D(r3.Vec{Z: loopZ})),
	}

	// flatten between two faces: slab thickness equals the thread minor
	// diameter times cos(30°), the widest section that still bridges at a
	// 30 degree overhang from the print bed
	flat := spec.Dims().Minor * math.Cos(30*math.Pi/180)
	slab := sdf.Transform3D(
		must3.Box(r3.Vec{X: 2 * (p.Nominal + p.EyeOD), Y: flat, Z: 2 * top}, 0),
		sdf.Translate3D(r3.Vec{Z: top / 2}),
	)

	marks := dimpleAt(0, flat/2, 0)
	if hand == thread.Right {
		marks = sdf.Union3D(marks, dimpleAt(0, -flat/2, 0))
	}

	solid := sdf.Difference3D(sdf.Intersect3D(sdf.Union3D(parts...), slab), marks)
	if err := b.Verify(solid, fmt.Sprintf("eye %s", hand)); err != nil {
		return nil, err
	}
	return solid, nil
}
