// Command coord-convert converts polar or spherical records to cartesian
// coordinates. Input is CSV, one record per line: "radius,azimuth" in
// polar mode, "radius,azimuth,polar" in spherical mode. Output is one
// JSON object per line on stdout.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/polar"
	"github.com/banshee-data/geom/spherical"
)

// Config holds the tool's flag-derived settings.
type Config struct {
	Mode   string // "polar" or "spherical"
	Unit   string // "degrees" or "radians"
	Input  string // input path, empty for stdin
	Reduce bool   // canonicalize angles before converting
}

// Record is one parsed input line. Polar is unused in polar mode.
type Record struct {
	Radius  float64
	Azimuth float64
	Polar   float64
}

// Result is one converted point, serialized as a JSON line.
type Result struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.Mode, "mode", "polar", "coordinate system of the input: polar or spherical")
	flag.StringVar(&cfg.Unit, "unit", "degrees", "angle unit of the input: degrees or radians")
	flag.StringVar(&cfg.Input, "input", "", "input file (default stdin)")
	flag.BoolVar(&cfg.Reduce, "reduce", false, "reduce angles to their canonical range before converting")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	if err := run(cfg, in, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg Config, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseRecord(text, cfg.Mode)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		res, err := convert(cfg, rec)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseRecord splits one CSV line into a Record. Polar mode takes two
// fields, spherical mode three.
func parseRecord(text, mode string) (Record, error) {
	fields := strings.Split(text, ",")
	want := 2
	if mode == "spherical" {
		want = 3
	}
	if len(fields) != want {
		return Record{}, fmt.Errorf("expected %d fields, got %d", want, len(fields))
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Record{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		vals[i] = v
	}
	rec := Record{Radius: vals[0], Azimuth: vals[1]}
	if mode == "spherical" {
		rec.Polar = vals[2]
	}
	return rec, nil
}

func convert(cfg Config, rec Record) (Result, error) {
	azimuth, err := toRadians(cfg.Unit, rec.Azimuth)
	if err != nil {
		return Result{}, err
	}

	switch cfg.Mode {
	case "polar":
		p := polar.New[angle.Radians](rec.Radius, azimuth)
		if cfg.Reduce {
			p = polar.Reduce(p)
		}
		c := polar.ToCartesian(p)
		return Result{X: c.X, Y: c.Y}, nil
	case "spherical":
		pol, err := toRadians(cfg.Unit, rec.Polar)
		if err != nil {
			return Result{}, err
		}
		p := spherical.New[angle.Radians](rec.Radius, azimuth, pol)
		if cfg.Reduce {
			p = spherical.Reduce(p)
		}
		c := spherical.ToCartesian(p)
		return Result{X: c.X, Y: c.Y, Z: c.Z}, nil
	}
	return Result{}, fmt.Errorf("unknown mode %q", cfg.Mode)
}

func toRadians(unit string, v float64) (angle.Angle[angle.Radians, float64], error) {
	switch unit {
	case "degrees":
		return angle.ToRadians(angle.New[angle.Degrees](v)), nil
	case "radians":
		return angle.New[angle.Radians](v), nil
	}
	return angle.Angle[angle.Radians, float64]{}, fmt.Errorf("unknown unit %q", unit)
}
