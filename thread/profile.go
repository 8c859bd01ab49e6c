package thread

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is one thread tooth cross-section spanning a single pitch period.
// Coordinates are axial (x, one period centered on the tooth) and radial
// (y, zero on the root cylinder) so the same profile serves any diameter:
// the sweep decides where the root cylinder sits.
//
// The shape is the 60° V truncated flat at crest and root. External threads
// truncate the crest by H/8; internal threads by H/4 (the complementary
// standard ratio). The polygon extends a little below the root line so the
// swept tooth overlaps cleanly into the base cylinder it is unioned with.
type Profile struct {
	Pitch float64
	Class Class

	rise      float64 // radial height of the tooth above the root line
	crestFlat float64 // width of the flat at the crest
	rootFlat  float64 // combined width of the root flats at the period edges
	overlap   float64 // extension below the root line
	verts     []r2.Vec
}

// NewProfile builds the tooth profile for the given pitch and diameter
// class.
func NewProfile(pitch float64, class Class) (Profile, error) {
	if pitch <= 0 {
		return Profile{}, paramErrf("pitch %g must be positive", pitch)
	}
	crestTrunc := heightPerPitch * pitch / 8
	if class == Internal {
		crestTrunc = heightPerPitch * pitch / 4
	}
	p := Profile{
		Pitch:     pitch,
		Class:     class,
		rise:      minorDiamPerPitch * pitch / 2,
		crestFlat: 2 * crestTrunc * math.Tan(halfAngle),
	}
	run := p.rise * math.Tan(halfAngle)
	half := pitch/2 - p.crestFlat/2 - run
	if half <= 0 {
		return Profile{}, paramErrf("pitch %g: crest and root truncations cross, no root flat left", pitch)
	}
	p.rootFlat = 2 * half
	p.overlap = p.rise / 2

	cf := p.crestFlat / 2
	p.verts = []r2.Vec{
		{X: -pitch / 2, Y: -p.overlap},
		{X: -pitch / 2, Y: 0},
		{X: -cf - run, Y: 0},
		{X: -cf, Y: p.rise},
		{X: cf, Y: p.rise},
		{X: cf + run, Y: 0},
		{X: pitch / 2, Y: 0},
		{X: pitch / 2, Y: -p.overlap},
	}
	return p, nil
}

// Rise returns the radial tooth height above the root line,
// (major - minor)/2 of the thread the profile belongs to.
func (p Profile) Rise() float64 { return p.rise }

// Vertices returns a copy of the closed profile polygon, traced
// root-flat → flank → crest-flat → flank → root-flat.
func (p Profile) Vertices() []r2.Vec {
	out := make([]r2.Vec, len(p.verts))
	copy(out, p.verts)
	return out
}

// SDF returns the profile as a signed distance field for sweeping.
func (p Profile) SDF() sdf.SDF2 {
	return must2.Polygon(p.Vertices())
}
