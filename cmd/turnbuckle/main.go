// Command turnbuckle generates the printable parts of a parametric
// turnbuckle as STL files: a hex body with opposite-handed internal
// threads and two flat-sided eye fittings.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/printforge/turnbuckle/fitting"
	"github.com/printforge/turnbuckle/thread"
)

func main() {
	var (
		nominal    = flag.Float64("d", 10, "thread nominal diameter [mm]")
		pitch      = flag.Float64("pitch", 0, "thread pitch [mm], 0 selects the coarse standard")
		takeUp     = flag.Float64("takeup", 100, "total take-up travel [mm]")
		eyeOD      = flag.Float64("eye", 30, "eye loop outside diameter [mm]")
		wire       = flag.Float64("wire", 4, "wire diameter the eyes must pass [mm]")
		hexF2F     = flag.Float64("hex", 0, "body width across flats [mm], 0 derives from the hex series")
		tol        = flag.Float64("tol", 0.1, "radial print tolerance on mating threads [mm]")
		quality    = flag.Int("quality", 300, "octree cells along the longest axis for STL meshing")
		outDir     = flag.String("o", ".", "output directory for STL files")
		profilePNG = flag.String("profile-png", "", "also plot the thread tooth profile to this PNG")
	)
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	params := fitting.Params{
		Nominal:   *nominal,
		Pitch:     *pitch,
		TakeUp:    *takeUp,
		EyeOD:     *eyeOD,
		WireDiam:  *wire,
		HexF2F:    *hexF2F,
		Tolerance: *tol,
	}
	var asm fitting.Assembler
	assembly, err := asm.Assemble(params)
	if err != nil {
		log.Fatal().Err(err).Msg("turnbuckle parameters rejected")
	}

	if *profilePNG != "" {
		if err := writeProfilePNG(*profilePNG, *nominal, *pitch); err != nil {
			log.Fatal().Err(err).Msg("profile plot failed")
		}
		log.Info().Str("path", *profilePNG).Msg("wrote profile plot")
	}

	// the parts share no state, render them in parallel
	type result struct {
		name string
		path string
		err  error
	}
	parts := assembly.Parts()
	results := make(chan result, len(parts))
	for _, part := range parts {
		part := part
		go func() {
			path := filepath.Join(*outDir, "turnbuckle-"+part.Name+".stl")
			err := render.CreateSTL(path, render.NewOctreeRenderer(part.Solid, *quality))
			results <- result{name: part.Name, path: path, err: err}
		}()
	}
	exit := 0
	for range parts {
		r := <-results
		if r.err != nil {
			log.Error().Err(r.err).Str("part", r.name).Msg("render failed")
			exit = 1
			continue
		}
		log.Info().Str("part", r.name).Str("path", r.path).Msg("wrote STL")
	}
	os.Exit(exit)
}

// writeProfilePNG plots the external tooth profile polygon, one pitch
// period, axial position against radial height.
func writeProfilePNG(path string, nominal, pitch float64) error {
	if pitch == 0 {
		std, err := thread.StandardPitch(nominal)
		if err != nil {
			return err
		}
		pitch = std
	}
	prof, err := thread.NewProfile(pitch, thread.External)
	if err != nil {
		return err
	}
	verts := prof.Vertices()
	pts := make(plotter.XYs, len(verts)+1)
	for i, v := range verts {
		pts[i].X, pts[i].Y = v.X, v.Y
	}
	pts[len(verts)] = pts[0] // close the polygon outline

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("thread tooth profile, P=%g", pitch)
	plt.X.Label.Text = "axial [mm]"
	plt.Y.Label.Text = "radial [mm]"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	plt.Add(plotter.NewGrid(), line)
	return plt.Save(12*vg.Centimeter, 8*vg.Centimeter, path)
}
