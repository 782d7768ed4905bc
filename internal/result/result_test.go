package result

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/aoicover/selector/internal/coverage"
	"github.com/aoicover/selector/internal/geom"
	"github.com/aoicover/selector/internal/grid"
	"github.com/aoicover/selector/internal/solver"
)

func unitSquareAOI(t *testing.T, delta float64) *coverage.AOI {
	t.Helper()
	aoi, err := coverage.NewAOI(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, delta)
	if err != nil {
		t.Fatalf("NewAOI: %v", err)
	}
	return aoi
}

func TestNewDiscreteIncludesCells(t *testing.T) {
	aoi := unitSquareAOI(t, 0.5)
	scene, err := coverage.NewScene("whole", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	sr, err := solver.Select(coverage.Discrete, aoi, []*coverage.Scene{scene})
	if err != nil {
		t.Fatal(err)
	}
	view := New(coverage.Discrete, sr)
	if len(view.AOI.Cells) != 4 {
		t.Fatalf("len(AOI.Cells) = %d, want 4", len(view.AOI.Cells))
	}
	if view.AOI.Area != 1 {
		t.Errorf("AOI.Area = %v, want 1", view.AOI.Area)
	}
	if len(view.Chosen) != 1 || view.Chosen[0] != "whole" {
		t.Errorf("Chosen = %v, want [whole]", view.Chosen)
	}
	if view.CoverageRatio != 1 {
		t.Errorf("CoverageRatio = %v, want 1", view.CoverageRatio)
	}
}

func TestNewContinuousOmitsCells(t *testing.T) {
	aoi := unitSquareAOI(t, 0.5)
	scene, err := coverage.NewScene("whole", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	sr, err := solver.Select(coverage.Continuous, aoi, []*coverage.Scene{scene})
	if err != nil {
		t.Fatal(err)
	}
	view := New(coverage.Continuous, sr)
	if view.AOI.Cells != nil {
		t.Errorf("AOI.Cells = %v, want nil in continuous mode", view.AOI.Cells)
	}
}

func TestEncodeIsLineDelimitedJSON(t *testing.T) {
	aoi := unitSquareAOI(t, 0.5)
	scene, err := coverage.NewScene("whole", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	sr, err := solver.Select(coverage.Discrete, aoi, []*coverage.Scene{scene})
	if err != nil {
		t.Fatal(err)
	}
	view := New(coverage.Discrete, sr)

	var buf bytes.Buffer
	if err := Encode(&buf, view); err != nil {
		t.Fatal(err)
	}
	if err := Encode(&buf, view); err != nil {
		t.Fatal(err)
	}

	dec := json.NewDecoder(&buf)
	var got []Result
	for dec.More() {
		var r Result
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d objects, want 2", len(got))
	}
}

func TestCellsSortedForDeterminism(t *testing.T) {
	aoi := unitSquareAOI(t, 0.5)
	scene, err := coverage.NewScene("whole", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	sr, err := solver.Select(coverage.Discrete, aoi, []*coverage.Scene{scene})
	if err != nil {
		t.Fatal(err)
	}
	cells := New(coverage.Discrete, sr).AOI.Cells
	want := []grid.Cell{{I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 0}, {I: 1, J: 1}}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("cells not sorted: %v, want %v", cells, want)
	}
}
