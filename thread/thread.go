// Package thread generates metric screw-thread solid geometry for 3D
// printing.
//
// A thread solid is made by taking the 2D tooth profile of a single pitch
// period, centered on the root cylinder, and sweeping it helically about the
// z-axis. The profile is kept in the radial plane at every point of the
// sweep: the tooth cross section always points away from the axis and is not
// tilted by the helix pitch angle.
//
// The package deals in printable threads rather than machined ones: internal
// threads carry a fixed clearance allowance over the external dimensions so
// printed parts assemble, and external threads end in a conical run-out so
// no layer terminates in an unsupported overhang.
package thread

import (
	"math"
	"strconv"
)

// Thread geometry constants for the ISO 60° metric profile.
const (
	// halfAngle is the thread flank half-angle, 30° for metric V threads.
	halfAngle = 30 * math.Pi / 180
	// heightPerPitch is the fundamental triangle height per unit pitch,
	// H = P/(2 tan 30°).
	heightPerPitch = 0.8660254037844386
	// pitchDiamPerPitch relates pitch diameter to nominal: Dp = D - 0.649519 P.
	pitchDiamPerPitch = 0.6495190528383290
	// minorDiamPerPitch relates external minor diameter to nominal:
	// Dm = D - 1.226869 P.
	minorDiamPerPitch = 1.2268693281933321
	// internalClearance is the radial allowance added to every internal
	// thread radius, as a fraction of the fundamental height H. The 10%
	// allowance is the customary FDM wiggle room between male and female
	// threads of equal nominal dimensions.
	internalClearance = 0.1
	// minWallRatio is the smallest allowed external minor diameter as a
	// fraction of the nominal diameter. Below it the root cylinder is too
	// thin to hold a thread and the profile is rejected as degenerate.
	minWallRatio = 0.25
)

// Class selects between external (screw side) and internal (bore side)
// thread geometry.
type Class int

const (
	External Class = iota
	Internal
)

func (c Class) String() string {
	switch c {
	case External:
		return "external"
	case Internal:
		return "internal"
	}
	return "unknown"
}

// Hand is the direction a thread advances per revolution.
type Hand int

const (
	Right Hand = iota
	Left
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other handedness.
func (h Hand) Opposite() Hand {
	if h == Left {
		return Right
	}
	return Left
}

// Spec fully determines one thread interface of a part.
type Spec struct {
	// Nominal is the nominal (major) diameter [mm].
	Nominal float64
	// Pitch is the thread to thread distance [mm].
	Pitch float64
	Class Class
	Hand  Hand
	// Length is the axial engagement length [mm].
	Length float64
	// Phase rotates the thread start about the axis [radians].
	Phase float64
}

// Dims are the standard diameters derived from a Spec. For internal threads
// all three include the clearance allowance.
type Dims struct {
	Major     float64
	PitchDiam float64
	Minor     float64
}

// Dims derives the standard thread diameters for the spec's class.
func (s Spec) Dims() Dims {
	d := Dims{
		Major:     s.Nominal,
		PitchDiam: s.Nominal - pitchDiamPerPitch*s.Pitch,
		Minor:     s.Nominal - minorDiamPerPitch*s.Pitch,
	}
	if s.Class == Internal {
		c := 2 * internalClearance * heightPerPitch * s.Pitch
		d.Major += c
		d.PitchDiam += c
		d.Minor += c
	}
	return d
}

// Height returns the fundamental triangle height H for the spec's pitch.
func (s Spec) Height() float64 {
	return heightPerPitch * s.Pitch
}

// Validate checks the spec before any geometry is attempted.
func (s Spec) Validate() error {
	switch {
	case s.Nominal <= 0:
		return paramErrf("nominal diameter %g must be positive", s.Nominal)
	case s.Pitch <= 0:
		return paramErrf("pitch %g must be positive", s.Pitch)
	case s.Length < s.Nominal:
		return paramErrf("engagement length %gmm below minimum of one nominal diameter (%gmm)", s.Length, s.Nominal)
	}
	d := s.Dims()
	if d.Minor < minWallRatio*s.Nominal {
		return DegenerateProfileError{Nominal: s.Nominal, Pitch: s.Pitch, Minor: d.Minor}
	}
	if !(d.Minor < d.PitchDiam && d.PitchDiam < d.Major) {
		return paramErrf("diameter ordering broken for M%gx%g: minor %g, pitch %g, major %g",
			s.Nominal, s.Pitch, d.Minor, d.PitchDiam, d.Major)
	}
	return nil
}

func (s Spec) String() string {
	hand := ""
	if s.Hand == Left {
		hand = " LH"
	}
	return "M" + trimFloat(s.Nominal) + "x" + trimFloat(s.Pitch) + hand
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
