package thread

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestNewProfileExternal(t *testing.T) {
	const pitch = 1.5
	p, err := NewProfile(pitch, External)
	if err != nil {
		t.Fatal(err)
	}
	if want := minorDiamPerPitch * pitch / 2; !scalar.EqualWithinAbs(p.Rise(), want, tol) {
		t.Errorf("Rise() = %g, want %g", p.Rise(), want)
	}
	verts := p.Vertices()
	if len(verts) != 8 {
		t.Fatalf("profile has %d vertices, want 8", len(verts))
	}
	// one pitch period, symmetric about the tooth center
	for i, v := range verts {
		m := verts[len(verts)-1-i]
		if !scalar.EqualWithinAbs(v.X, -m.X, tol) || !scalar.EqualWithinAbs(v.Y, m.Y, tol) {
			t.Errorf("vertex %d breaks symmetry: %v vs %v", i, v, m)
		}
	}
	var minX, maxX, maxY float64
	for _, v := range verts {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	if !scalar.EqualWithinAbs(maxX-minX, pitch, tol) {
		t.Errorf("profile spans %g axially, want one pitch", maxX-minX)
	}
	if !scalar.EqualWithinAbs(maxY, p.Rise(), tol) {
		t.Errorf("crest at %g, want rise %g", maxY, p.Rise())
	}
}

func TestProfileInternalCrestWider(t *testing.T) {
	ext, err := NewProfile(1, External)
	if err != nil {
		t.Fatal(err)
	}
	in, err := NewProfile(1, Internal)
	if err != nil {
		t.Fatal(err)
	}
	if in.crestFlat <= ext.crestFlat {
		t.Errorf("internal crest flat %g not wider than external %g", in.crestFlat, ext.crestFlat)
	}
	if !scalar.EqualWithinAbs(in.Rise(), ext.Rise(), tol) {
		t.Errorf("rise differs between classes: %g vs %g", in.Rise(), ext.Rise())
	}
}

func TestProfileSDFSign(t *testing.T) {
	p, err := NewProfile(1, External)
	if err != nil {
		t.Fatal(err)
	}
	s := p.SDF()
	if d := s.Evaluate(r2.Vec{X: 0, Y: p.Rise() / 2}); d >= 0 {
		t.Errorf("tooth center evaluates to %g, want inside", d)
	}
	if d := s.Evaluate(r2.Vec{X: 0, Y: p.Rise() + 0.1}); d <= 0 {
		t.Errorf("point above crest evaluates to %g, want outside", d)
	}
	if d := s.Evaluate(r2.Vec{X: 0.49, Y: p.Rise()}); d <= 0 {
		t.Errorf("crest-height point over the root flat evaluates to %g, want outside", d)
	}
}

func TestProfileVerticesCopy(t *testing.T) {
	p, err := NewProfile(1, External)
	if err != nil {
		t.Fatal(err)
	}
	v := p.Vertices()
	v[0] = r2.Vec{X: 99, Y: 99}
	if p.Vertices()[0] == v[0] {
		t.Error("Vertices() exposes internal state")
	}
}

func TestNewProfileBadPitch(t *testing.T) {
	for _, pitch := range []float64{0, -1} {
		if _, err := NewProfile(pitch, External); !errors.Is(err, ErrValidation) {
			t.Errorf("NewProfile(%g) = %v, want validation error", pitch, err)
		}
	}
}
