package fitting

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// torus is an exact-distance torus with its axis along y, so the loop lies
// in the xz plane. ring is the center circle radius, tube the section
// radius.
type torus struct {
	ring float64
	tube float64
}

func (t *torus) Evaluate(p r3.Vec) float64 {
	q := math.Hypot(p.X, p.Z) - t.ring
	return math.Hypot(q, p.Y) - t.tube
}

func (t *torus) Bounds() r3.Box {
	r := t.ring + t.tube
	return r3.Box{
		Min: r3.Vec{X: -r, Y: -t.tube, Z: -r},
		Max: r3.Vec{X: r, Y: t.tube, Z: r},
	}
}
