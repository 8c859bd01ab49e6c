// Package fitting assembles printable turnbuckle parts: a hex body with
// opposite-handed internal threads and two flat-sided eye fittings that
// screw into it. Turning the body draws the eyes together or apart over
// the full take-up travel.
package fitting

import (
	"fmt"
	"math"

	"github.com/printforge/turnbuckle/thread"
)

const (
	// pilotLength is the unthreaded run between each shank thread and its
	// eye loop, so the loop never rides onto the body threads.
	pilotLength = 5.0
	// wireClearance is the radial gap between the wire and the eye hole.
	wireClearance = 0.5
	// dimpleRadius sizes the spherical handedness markers.
	dimpleRadius = 1.0
	// cornerRound softens the hex body corners.
	cornerRound = 1.0
)

// Params describes a complete turnbuckle. All dimensions are millimetres.
type Params struct {
	// Nominal is the thread nominal diameter, e.g. 6 for M6.
	Nominal float64
	// Pitch is the thread pitch. Zero selects the coarse standard pitch
	// for Nominal.
	Pitch float64
	// TakeUp is the total adjustment travel. The body is TakeUp/2 long
	// and each eye shank carries TakeUp/4 of thread, so body plus shanks
	// span TakeUp exactly.
	TakeUp float64
	// EyeOD is the outside diameter of each eye loop.
	EyeOD float64
	// WireDiam is the wire or rope the eyes must pass.
	WireDiam float64
	// HexF2F is the body width across flats. Zero derives it from the
	// metric hex series for Nominal.
	HexF2F float64
	// Tolerance is the radial printing allowance applied to mating
	// threads.
	Tolerance float64
}

// TakeUpLengthError reports a take-up travel too short for the thread
// engagement and eye clearance the other parameters demand.
type TakeUpLengthError struct {
	TakeUp float64
	Min    float64
}

func (e TakeUpLengthError) Error() string {
	return fmt.Sprintf("take-up length %gmm too short: thread engagement and eye clearance need at least %gmm", e.TakeUp, e.Min)
}

func (e TakeUpLengthError) Unwrap() error { return thread.ErrValidation }

// EyeSizeError reports an eye loop too small to pass its wire with
// clearance.
type EyeSizeError struct {
	EyeOD    float64
	WireDiam float64
}

func (e EyeSizeError) Error() string {
	return fmt.Sprintf("eye outer diameter %gmm too small to loop %gmm wire with %gmm clearance", e.EyeOD, e.WireDiam, wireClearance)
}

func (e EyeSizeError) Unwrap() error { return thread.ErrValidation }

// resolve fills defaulted fields and validates the dimensional
// constraints. The returned Params are fully explicit.
func (p Params) resolve() (Params, error) {
	if p.Nominal <= 0 || p.TakeUp <= 0 || p.EyeOD <= 0 || p.WireDiam <= 0 {
		return p, fmt.Errorf("%w: all turnbuckle dimensions must be positive", thread.ErrValidation)
	}
	if p.Tolerance < 0 {
		return p, fmt.Errorf("%w: negative tolerance %g", thread.ErrValidation, p.Tolerance)
	}
	if p.Pitch == 0 {
		pitch, err := thread.StandardPitch(p.Nominal)
		if err != nil {
			return p, err
		}
		p.Pitch = pitch
	}
	if p.HexF2F == 0 {
		p.HexF2F = hexFlatToFlat(p.Nominal / 2)
	}
	if p.HexF2F < p.Nominal+2 {
		return p, fmt.Errorf("%w: hex width %gmm leaves no wall around a %gmm bore", thread.ErrValidation, p.HexF2F, p.Nominal)
	}
	if p.eyeTubeRadius() <= 0 {
		return p, EyeSizeError{EyeOD: p.EyeOD, WireDiam: p.WireDiam}
	}
	// engagement >= one nominal diameter per end, and the loops must
	// still clear each other at full take-up
	need := math.Max(4*p.Nominal, 2*(p.EyeOD+p.WireDiam))
	if p.TakeUp < need {
		return p, TakeUpLengthError{TakeUp: p.TakeUp, Min: need}
	}
	return p, nil
}

// engagement is the threaded length per end.
func (p Params) engagement() float64 { return p.TakeUp / 4 }

// bodyLength is the hex body axial length.
func (p Params) bodyLength() float64 { return p.TakeUp / 2 }

// eyeHoleRadius is the clear radius of the eye loop.
func (p Params) eyeHoleRadius() float64 { return p.WireDiam/2 + wireClearance }

// eyeTubeRadius is the section radius of the eye loop torus.
func (p Params) eyeTubeRadius() float64 { return (p.EyeOD/2 - p.eyeHoleRadius()) / 2 }

// eyeRingRadius is the radius of the torus center circle.
func (p Params) eyeRingRadius() float64 { return p.eyeHoleRadius() + p.eyeTubeRadius() }
