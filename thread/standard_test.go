package thread

import (
	"errors"
	"sort"
	"testing"
)

func TestStandardPitch(t *testing.T) {
	want := map[float64]float64{
		4: 0.7, 5: 0.8, 6: 1, 8: 1.25, 10: 1.5,
		12: 1.75, 16: 2, 20: 2.5, 24: 3,
	}
	if len(want) != len(coarseSeries) {
		t.Fatalf("coarse series has %d entries, want %d", len(coarseSeries), len(want))
	}
	for nominal, pitch := range want {
		got, err := StandardPitch(nominal)
		if err != nil {
			t.Fatalf("StandardPitch(%g): %v", nominal, err)
		}
		if got != pitch {
			t.Errorf("StandardPitch(%g) = %g, want %g", nominal, got, pitch)
		}
	}
}

func TestStandardPitchUnsupported(t *testing.T) {
	for _, nominal := range []float64{0, 3, 7, 14, 100} {
		_, err := StandardPitch(nominal)
		var unsupported UnsupportedDiameterError
		if !errors.As(err, &unsupported) {
			t.Fatalf("StandardPitch(%g) = %v, want UnsupportedDiameterError", nominal, err)
		}
		if unsupported.Nominal != nominal {
			t.Errorf("error carries nominal %g, want %g", unsupported.Nominal, nominal)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("StandardPitch(%g) error does not unwrap to ErrValidation", nominal)
		}
	}
}

func TestNominalsSorted(t *testing.T) {
	n := Nominals()
	if len(n) != len(coarseSeries) {
		t.Fatalf("Nominals() has %d entries, want %d", len(n), len(coarseSeries))
	}
	if !sort.Float64sAreSorted(n) {
		t.Errorf("Nominals() not ascending: %v", n)
	}
}

func TestByNominal(t *testing.T) {
	spec, err := ByNominal(8, Internal, Left, 12)
	if err != nil {
		t.Fatal(err)
	}
	want := Spec{Nominal: 8, Pitch: 1.25, Class: Internal, Hand: Left, Length: 12}
	if spec != want {
		t.Errorf("ByNominal = %+v, want %+v", spec, want)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("standard spec should validate: %v", err)
	}
}
