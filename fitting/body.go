package fitting

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/turnbuckle/thread"
)

// cutterOvershoot extends internal thread cutters past the body faces so
// the subtraction never leaves a coplanar skin.
const cutterOvershoot = 2.0

// body builds the hex turnbuckle body: left-hand internal thread in the
// lower half, right-hand in the upper half, bore mouths chamfered, hand
// dimples cut into the flats at each end. Centered on the origin.
func body(p Params, b thread.Builder) (sdf.SDF3, error) {
	length := p.bodyLength()
	engage := p.engagement()

	lower := thread.Spec{
		Nominal: p.Nominal,
		Pitch:   p.Pitch,
		Class:   thread.Internal,
		Hand:    thread.Left,
		Length:  engage + cutterOvershoot,
	}
	upper := lower
	upper.Hand = thread.Right
	lowerCut, err := b.Solid(lower)
	if err != nil {
		return nil, err
	}
	upperCut, err := b.Solid(upper)
	if err != nil {
		return nil, err
	}
	// each cutter reaches from the mid-plane out past its end face
	off := (engage + cutterOvershoot) / 2
	cuts := []sdf.SDF3{
		sdf.Transform3D(lowerCut, sdf.Translate3D(r3.Vec{Z: -off})),
		sdf.Transform3D(upperCut, sdf.Translate3D(r3.Vec{Z: off})),
	}

	// 45 degree bore mouth chamfers
	mouth := lower.Dims().Major/2 + b.Tolerance
	ch := p.Pitch / 2
	bottom := must3.Cone(2*ch, mouth+2*ch, mouth, 0)
	top := must3.Cone(2*ch, mouth, mouth+2*ch, 0)
	cuts = append(cuts,
		sdf.Transform3D(bottom, sdf.Translate3D(r3.Vec{Z: -length / 2})),
		sdf.Transform3D(top, sdf.Translate3D(r3.Vec{Z: length / 2})),
	)

	// one dimple marks the left-hand end, two the right-hand end
	cuts = append(cuts, dimpleAt(0, -p.HexF2F/2, -length/2))
	cuts = append(cuts,
		dimpleAt(0, -p.HexF2F/2, length/2),
		dimpleAt(0, p.HexF2F/2, length/2),
	)

	solid := sdf.Difference3D(hexPrism(p.HexF2F, length), sdf.Union3D(cuts...))
	if err := b.Verify(solid, "body"); err != nil {
		return nil, err
	}
	return solid, nil
}

func dimpleAt(x, y, z float64) sdf.SDF3 {
	return sdf.Transform3D(must3.Sphere(dimpleRadius), sdf.Translate3D(r3.Vec{X: x, Y: y, Z: z}))
}
