package thread

import (
	"errors"
	"fmt"
)

// Error categories for errors.Is. Every failure produced by this package
// unwraps to exactly one of these.
var (
	// ErrValidation tags parameter failures detected before any sweep or
	// boolean operation is attempted.
	ErrValidation = errors.New("invalid thread parameters")
	// ErrGeometry tags sweep, boolean or meshing failures.
	ErrGeometry = errors.New("thread geometry construction failed")
)

func paramErrf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// UnsupportedDiameterError reports a nominal diameter outside the standard
// coarse series when no explicit pitch override was supplied.
type UnsupportedDiameterError struct {
	Nominal float64
}

func (e UnsupportedDiameterError) Error() string {
	return fmt.Sprintf("no standard coarse pitch for nominal diameter %gmm and no pitch override given", e.Nominal)
}

func (e UnsupportedDiameterError) Unwrap() error { return ErrValidation }

// DegenerateProfileError reports a pitch too large for its nominal diameter:
// the truncated-V tooth would cut below the minimum root wall and the sweep
// would self-intersect.
type DegenerateProfileError struct {
	Nominal float64
	Pitch   float64
	// Minor is the offending derived minor diameter.
	Minor float64
}

func (e DegenerateProfileError) Error() string {
	return fmt.Sprintf("pitch %gmm too large for nominal diameter %gmm: minor diameter %.3gmm below minimum wall %.3gmm",
		e.Pitch, e.Nominal, e.Minor, minWallRatio*e.Nominal)
}

func (e DegenerateProfileError) Unwrap() error { return ErrValidation }

// HelixLengthError reports an axial length too short for a stable thread.
type HelixLengthError struct {
	Length float64
	Pitch  float64
}

func (e HelixLengthError) Error() string {
	return fmt.Sprintf("helix length %gmm shorter than two pitches (%gmm): not enough turns for stable engagement",
		e.Length, 2*e.Pitch)
}

func (e HelixLengthError) Unwrap() error { return ErrValidation }

// NonManifoldError reports that the generated solid meshed to a surface with
// broken edge topology, after the tolerance retry was exhausted.
type NonManifoldError struct {
	// BoundaryEdges are edges referenced by exactly one triangle.
	BoundaryEdges int
	// OverusedEdges are edges referenced by more than two triangles.
	OverusedEdges int
}

func (e NonManifoldError) Error() string {
	return fmt.Sprintf("result is not manifold: %d boundary edges, %d overused edges",
		e.BoundaryEdges, e.OverusedEdges)
}

func (e NonManifoldError) Unwrap() error { return ErrGeometry }
