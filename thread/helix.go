package thread

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Helix is the sweep path of a thread: radius fixed, angle advancing 2π per
// pitch of axial travel, axial position running from 0 to Length.
type Helix struct {
	// Radius is the constant radial distance of the path from the z-axis.
	Radius float64
	Pitch  float64
	// Length is the axial extent [mm].
	Length float64
	Hand   Hand
	// Phase is the start angle of the path [radians].
	Phase float64
}

// NewHelix validates and returns a helix path. Lengths below two full
// pitches fail with HelixLengthError: fewer turns cannot form a stable
// engagement.
func NewHelix(radius, pitch, length float64, hand Hand, phase float64) (Helix, error) {
	switch {
	case radius <= 0:
		return Helix{}, paramErrf("helix radius %g must be positive", radius)
	case pitch <= 0:
		return Helix{}, paramErrf("helix pitch %g must be positive", pitch)
	case length < 2*pitch:
		return Helix{}, HelixLengthError{Length: length, Pitch: pitch}
	}
	return Helix{Radius: radius, Pitch: pitch, Length: length, Hand: hand, Phase: phase}, nil
}

// Turns returns the number of full revolutions over the length.
func (h Helix) Turns() float64 { return h.Length / h.Pitch }

// Lead returns the signed axial advance per counterclockwise revolution:
// positive for right-handed threads, negative for left-handed.
func (h Helix) Lead() float64 { return h.dir() * h.Pitch }

// At returns the point on the path at parameter t ∈ [0, 1].
func (h Helix) At(t float64) r3.Vec {
	z := t * h.Length
	theta := h.Phase + h.dir()*2*math.Pi*z/h.Pitch
	return r3.Vec{
		X: h.Radius * math.Cos(theta),
		Y: h.Radius * math.Sin(theta),
		Z: z,
	}
}

// RunOut returns the axial length of the chamfered lead-in/lead-out for a
// tooth of the given radial height. The chamfer runs at the thread flank
// angle so neither end of the swept tooth terminates in an unsupported
// overhang.
func (h Helix) RunOut(rise float64) float64 {
	return rise * math.Tan(halfAngle)
}

func (h Helix) dir() float64 {
	if h.Hand == Left {
		return -1
	}
	return 1
}
