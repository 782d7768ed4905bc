package ingest

import (
	"io"
	"log"
	"strings"
	"testing"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLoadScenesValidRows(t *testing.T) {
	input := "a,1,\"[[0,0],[1,0],[1,1],[0,1]]\"\nb,2.5,\"[[0,0],[2,0],[2,2]]\"\n"
	scenes, err := LoadScenes(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 2 {
		t.Fatalf("len(scenes) = %d, want 2", len(scenes))
	}
	if scenes[0].ID != "a" || scenes[0].Price != 1 {
		t.Errorf("scenes[0] = %+v", scenes[0])
	}
	if scenes[1].ID != "b" || scenes[1].Price != 2.5 {
		t.Errorf("scenes[1] = %+v", scenes[1])
	}
}

func TestLoadScenesDropsMalformedRows(t *testing.T) {
	input := "good,1,\"[[0,0],[1,0],[1,1],[0,1]]\"\n" +
		"badprice,notanumber,\"[[0,0],[1,0],[1,1]]\"\n" +
		"badpoly,1,\"not a polygon\"\n" +
		"toofew,1\n"
	scenes, err := LoadScenes(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 1 || scenes[0].ID != "good" {
		t.Fatalf("scenes = %v, want only [good]", scenes)
	}
}

func TestLoadScenesNonPositivePriceDropped(t *testing.T) {
	input := "zero,0,\"[[0,0],[1,0],[1,1]]\"\n"
	scenes, err := LoadScenes(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 0 {
		t.Fatalf("scenes = %v, want none", scenes)
	}
}

func TestLoadAOIsWithoutDelta(t *testing.T) {
	input := "\"[[0,0],[1,0],[1,1],[0,1]]\"\n"
	rows, err := LoadAOIs(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].DeltaSet {
		t.Errorf("DeltaSet = true, want false")
	}
}

func TestLoadAOIsWithDelta(t *testing.T) {
	input := "\"[[0,0],[1,0],[1,1],[0,1]]\",0.25\n"
	rows, err := LoadAOIs(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if !rows[0].DeltaSet || rows[0].Delta != 0.25 {
		t.Errorf("rows[0] = %+v, want DeltaSet=true Delta=0.25", rows[0])
	}
}

func TestLoadAOIsDropsMalformedPolygon(t *testing.T) {
	input := "\"[[0,0],[1,0],[1,1],[0,1]]\"\nnotapolygon\n"
	rows, err := LoadAOIs(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
}
