// genscene writes a random scene file for exercising flowybounds.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"FlowyBounds/bounds"
	"FlowyBounds/scene"
)

var (
	count  = flag.Int("count", 100, "Number of volumes")
	seed   = flag.Int64("seed", 1, "Random seed")
	spread = flag.Float64("spread", 100, "Volumes are placed in [-spread, spread] on every axis")
	out    = flag.String("out", "", "Output file, .toml or .yaml (default: TOML on stdout)")
)

func main() {
	flag.Parse()

	doc := generate(rand.New(rand.NewSource(*seed)), *count, *spread)
	if err := doc.Validate(); err != nil {
		panic(err)
	}

	var (
		w      io.Writer = os.Stdout
		format           = scene.TOML
	)
	if *out != "" {
		var err error
		if format, err = scene.FormatOf(*out); err != nil {
			panic(err)
		}
		f, err := os.Create(*out)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		w = f
	}
	if err := scene.Encode(w, doc, format); err != nil {
		panic(err)
	}
}

// generate builds count volumes of random kinds. Every fifth volume is
// given as a point cloud instead of explicit bounds.
func generate(r *rand.Rand, count int, spread float64) scene.Document {
	coord := func() float64 { return (r.Float64()*2 - 1) * spread }
	size := func() float64 { return r.Float64() * spread / 10 }

	doc := scene.Document{Name: fmt.Sprintf("random-%d", count)}
	for i := range count {
		kind := bounds.Kinds[r.Intn(len(bounds.Kinds))]
		dim := kind.Dimension()
		e := scene.Entry{
			ID:   uuid.New(),
			Name: fmt.Sprintf("%s-%d", kind, i),
			Kind: kind.String(),
		}

		center := make([]float64, dim)
		for j := range center {
			center[j] = coord()
		}
		switch {
		case i%5 == 4:
			for range 2 + r.Intn(6) {
				p := make([]float64, dim)
				for j := range p {
					p[j] = center[j] + (r.Float64()*2-1)*size()
				}
				e.Points = append(e.Points, p)
			}
		case kind.Round():
			e.Center = center
			e.Radius = size()
		default:
			e.Min = make([]float64, dim)
			e.Max = make([]float64, dim)
			for j := range center {
				half := size() / 2
				e.Min[j], e.Max[j] = center[j]-half, center[j]+half
			}
		}
		doc.Volumes = append(doc.Volumes, e)
	}
	return doc
}
