package thread

import "gonum.org/v1/gonum/floats/scalar"

// Standard thread dimension lookup.
//
// The table carries the ISO coarse pitch series. Pitch, pitch diameter and
// minor diameter are not stored: they follow from the fixed geometric
// relations in Spec.Dims, so the table only needs nominal diameter to pitch.

type standardEntry struct {
	nominal float64
	pitch   float64
}

var coarseSeries = []standardEntry{
	{4, 0.7},
	{5, 0.8},
	{6, 1},
	{8, 1.25},
	{10, 1.5},
	{12, 1.75},
	{16, 2},
	{20, 2.5},
	{24, 3},
}

const lookupTol = 1e-9

// StandardPitch returns the coarse-series pitch for a supported nominal
// diameter. Unsupported diameters fail with UnsupportedDiameterError; pass
// an explicit pitch to Spec instead of consulting the table for those.
func StandardPitch(nominal float64) (float64, error) {
	for _, e := range coarseSeries {
		if scalar.EqualWithinAbs(e.nominal, nominal, lookupTol) {
			return e.pitch, nil
		}
	}
	return 0, UnsupportedDiameterError{Nominal: nominal}
}

// Nominals returns the supported nominal diameters in ascending order.
func Nominals() []float64 {
	out := make([]float64, len(coarseSeries))
	for i, e := range coarseSeries {
		out[i] = e.nominal
	}
	return out
}

// ByNominal builds the Spec for a standard coarse-pitch metric thread.
func ByNominal(nominal float64, class Class, hand Hand, length float64) (Spec, error) {
	p, err := StandardPitch(nominal)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Nominal: nominal,
		Pitch:   p,
		Class:   class,
		Hand:    hand,
		Length:  length,
	}, nil
}
