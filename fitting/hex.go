package fitting

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
)

// Metric hex flat-to-flat series [mm].
var hexF2FSeries = []float64{1.75, 2, 3.2, 4, 5, 6, 7, 8, 10, 13, 17, 19, 24, 30, 36, 46, 55, 65, 75, 85, 95}

// hexFlatToFlat picks a standard hex width across flats for a thread of
// nominal radius, rounding the usual wrench-size estimate down to the
// nearest series entry.
func hexFlatToFlat(radius float64) float64 {
	var est float64
	switch {
	case radius < 1.2/2:
		est = 3.2 * radius
	case radius < 3.8/2:
		est = 4.5 * radius
	case radius < 4.2/2:
		est = 4. * radius
	default:
		est = 3.5 * radius
	}
	for i := len(hexF2FSeries) - 1; i >= 0; i-- {
		v := hexF2FSeries[i]
		if est-1e-2 > v {
			return v
		}
	}
	return hexF2FSeries[0]
}

// hexPrism builds a hex prism of the given width across flats and height,
// corners rounded, flats facing ±y and centered on the origin.
func hexPrism(f2f, height float64) sdf.SDF3 {
	radius := f2f / (2 * math.Cos(30*math.Pi/180))
	round := cornerRound
	if limit := radius * 0.2; round > limit {
		round = limit
	}
	hex2d := sdf.Offset2D(must2.Polygon(must2.Nagon(6, radius-round)), round)
	return sdf.Extrude3D(hex2d, height)
}
