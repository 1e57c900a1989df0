// Command polar-plot renders a set of polar records as a cartesian
// scatter plot. Input is CSV, one "radius,azimuth-degrees" record per
// line; output is a PNG.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/polar"
)

func main() {
	input := flag.String("input", "", "input file (default stdin)")
	output := flag.String("output", "points.png", "output PNG path")
	title := flag.String("title", "Polar points", "plot title")
	reduce := flag.Bool("reduce", true, "reduce azimuths to [0, 360) before converting")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	pts, err := readPoints(in, *reduce)
	if err != nil {
		log.Fatalf("read points: %v", err)
	}
	if len(pts) == 0 {
		log.Fatal("no points to plot")
	}

	if err := render(pts, *title, *output); err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("wrote %d points to %s", len(pts), *output)
}

// readPoints parses radius,azimuth-degree records and converts each to a
// cartesian XY pair.
func readPoints(in io.Reader, reduce bool) (plotter.XYs, error) {
	var pts plotter.XYs
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d", line, len(fields))
		}
		radius, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d radius: %w", line, err)
		}
		azDeg, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d azimuth: %w", line, err)
		}

		p := polar.New[angle.Degrees](radius, angle.New[angle.Degrees](azDeg))
		if reduce {
			p = polar.Reduce(p)
		}
		c := polar.ToCartesian(p)
		pts = append(pts, plotter.XY{X: c.X, Y: c.Y})
	}
	return pts, scanner.Err()
}

func render(pts plotter.XYs, title, output string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter, plotter.NewGrid())

	return p.Save(6*vg.Inch, 6*vg.Inch, output)
}
