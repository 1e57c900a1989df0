package main

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		mode    string
		want    Record
		wantErr bool
	}{
		{"polar", "1.5, 90", "polar", Record{Radius: 1.5, Azimuth: 90}, false},
		{"spherical", "2,45,30", "spherical", Record{Radius: 2, Azimuth: 45, Polar: 30}, false},
		{"too few fields", "1.5", "polar", Record{}, true},
		{"too many fields", "1,2,3", "polar", Record{}, true},
		{"bad number", "1,abc", "polar", Record{}, true},
	}
	for _, tt := range tests {
		got, err := parseRecord(tt.text, tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: record mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestConvertPolar(t *testing.T) {
	cfg := Config{Mode: "polar", Unit: "degrees"}

	got, err := convert(cfg, Record{Radius: 1, Azimuth: 90})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if diff := cmp.Diff(Result{X: 0, Y: 1}, got, approx); diff != "" {
		t.Errorf("polar result mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertSpherical(t *testing.T) {
	cfg := Config{Mode: "spherical", Unit: "degrees"}

	got, err := convert(cfg, Record{Radius: 1, Azimuth: 0, Polar: 90})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if diff := cmp.Diff(Result{X: 1, Y: 0, Z: 0}, got, approx); diff != "" {
		t.Errorf("spherical result mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertReduce(t *testing.T) {
	cfg := Config{Mode: "polar", Unit: "degrees", Reduce: true}

	// -90° reduces to 270°; both land on (0,-1).
	got, err := convert(cfg, Record{Radius: 1, Azimuth: -90})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if diff := cmp.Diff(Result{X: 0, Y: -1}, got, approx); diff != "" {
		t.Errorf("reduced result mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertRejectsUnknowns(t *testing.T) {
	if _, err := convert(Config{Mode: "cylindrical", Unit: "degrees"}, Record{}); err == nil {
		t.Error("unknown mode accepted")
	}
	if _, err := convert(Config{Mode: "polar", Unit: "turns"}, Record{}); err == nil {
		t.Error("unknown unit accepted")
	}
}

func TestRun(t *testing.T) {
	in := strings.NewReader("1,0\n# comment\n\n2,180\n")
	var out strings.Builder

	cfg := Config{Mode: "polar", Unit: "degrees"}
	if err := run(cfg, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"x":1`) {
		t.Errorf("first line = %s", lines[0])
	}
}

func TestRunBadLineReportsLineNumber(t *testing.T) {
	in := strings.NewReader("1,0\nbogus\n")
	var out strings.Builder

	err := run(Config{Mode: "polar", Unit: "degrees"}, in, &out)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line 2 context", err)
	}
}

func TestToRadians(t *testing.T) {
	a, err := toRadians("degrees", 180)
	if err != nil {
		t.Fatalf("toRadians: %v", err)
	}
	if math.Abs(a.Magnitude()-math.Pi) > 1e-12 {
		t.Errorf("180° = %v rad, want π", a.Magnitude())
	}
}
