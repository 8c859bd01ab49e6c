package thread

import (
	"math"

	sdfx "github.com/deadsy/sdfx/sdf"
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// helicalSweep is the raw thread solid: a tooth Profile swept along a Helix.
// The solid is centered on the z-axis, spanning z ∈ [-Length/2, Length/2],
// cut square at both ends. With runout > 0 a conical envelope shaves the
// tooth crest down to the root over the last runout millimetres of each end.
type helicalSweep struct {
	profile sdf.SDF2
	base    float64 // root cylinder radius
	outer   float64 // base + tooth rise
	pitch   float64
	lead    float64 // signed axial advance per 2π of atan2 angle
	phase   float64
	half    float64 // half axial length
	runout  float64 // axial chamfer length per end, 0 for square ends
	slope   float64 // radial shrink of the envelope per axial mm of runout
	bb      r3.Box
}

func newHelicalSweep(p Profile, h Helix, runout float64) *helicalSweep {
	s := &helicalSweep{
		profile: p.SDF(),
		base:    h.Radius,
		outer:   h.Radius + p.Rise(),
		pitch:   h.Pitch,
		// Mapping the evaluated angle back to profile space runs against
		// the direction of thread advance.
		lead:   -h.Lead(),
		phase:  h.Phase,
		half:   h.Length / 2,
		runout: runout,
	}
	if runout > 0 {
		s.slope = p.Rise() / runout
	}
	r := s.outer
	s.bb = r3.Box{
		Min: r3.Vec{X: -r, Y: -r, Z: -s.half},
		Max: r3.Vec{X: r, Y: r, Z: s.half},
	}
	return s
}

// Evaluate returns the minimum distance to the swept thread.
func (s *helicalSweep) Evaluate(p r3.Vec) float64 {
	r := math.Hypot(p.X, p.Y)
	// Map the 3d point back to profile space: the angle and height collapse
	// to the axial position within one pitch period, the distance from the
	// axis maps to the radial profile coordinate.
	theta := math.Atan2(p.Y, p.X) - s.phase
	z := p.Z + s.lead*theta/(2*math.Pi)
	d := s.profile.Evaluate(r2.Vec{
		X: sdfx.SawTooth(z, s.pitch),
		Y: r - s.base,
	})
	// square end caps at the exact axial length
	d = math.Max(d, math.Abs(p.Z)-s.half)
	if s.runout > 0 {
		env := s.outer - s.slope*math.Max(0, math.Abs(p.Z)-(s.half-s.runout))
		d = math.Max(d, r-env)
	}
	return d
}

// Bounds returns the bounding box of the swept thread.
func (s *helicalSweep) Bounds() r3.Box {
	return s.bb
}
