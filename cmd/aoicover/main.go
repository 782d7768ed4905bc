// Command aoicover loads scenes and AOIs from CSV, runs greedy
// coverage selection for each AOI, and prints one JSON result per line
// to stdout.
//
// Usage:
//
//	aoicover -scenes scenes.csv -aois aois.csv -mode discrete -delta 0.5
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aoicover/selector/internal/config"
	"github.com/aoicover/selector/internal/coverage"
	"github.com/aoicover/selector/internal/ingest"
	"github.com/aoicover/selector/internal/result"
	"github.com/aoicover/selector/internal/solver"
)

var (
	scenesPath = flag.String("scenes", "", "path to the scenes CSV file")
	aoisPath   = flag.String("aois", "", "path to the AOIs CSV file")
	delta      = flag.Float64("delta", 0, "grid cell edge length override; 0 means use each AOI row's own delta column")
	mode       = flag.String("mode", "discrete", "coverage regime: discrete or continuous")
	configPath = flag.String("config", "", "optional YAML config file supplying defaults for the other flags")
)

func main() {
	flag.Parse()
	diag := log.New(os.Stderr, "aoicover: ", log.LstdFlags)

	if err := run(diag); err != nil {
		diag.Print(err)
		os.Exit(1)
	}
}

func run(diag *log.Logger) error {
	scenesFile, aoisFile, deltaOverride, modeFlag, err := resolveFlags()
	if err != nil {
		flag.Usage()
		return err
	}

	covMode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}

	scenesIn, err := os.Open(scenesFile)
	if err != nil {
		return fmt.Errorf("opening scenes file: %w", err)
	}
	defer scenesIn.Close()
	scenes, err := ingest.LoadScenes(scenesIn, diag)
	if err != nil {
		return fmt.Errorf("loading scenes: %w", err)
	}

	aoisIn, err := os.Open(aoisFile)
	if err != nil {
		return fmt.Errorf("opening AOIs file: %w", err)
	}
	defer aoisIn.Close()
	aoiRows, err := ingest.LoadAOIs(aoisIn, diag)
	if err != nil {
		return fmt.Errorf("loading AOIs: %w", err)
	}

	start := time.Now()
	for i, row := range aoiRows {
		rowDelta, err := resolveDelta(row, deltaOverride)
		if err != nil {
			diag.Printf("AOI row %d skipped: %v", i, err)
			continue
		}
		aoi, err := coverage.NewAOI(row.Poly, rowDelta)
		if err != nil {
			return fmt.Errorf("AOI row %d: %w", i, err)
		}
		sr, err := solver.Select(covMode, aoi, scenes)
		if err != nil {
			return fmt.Errorf("AOI row %d: %w", i, err)
		}
		if err := result.Encode(os.Stdout, result.New(covMode, sr)); err != nil {
			return fmt.Errorf("AOI row %d: encoding result: %w", i, err)
		}
	}

	diag.Printf(`{"elapsedMs":%d,"aois":%d,"scenes":%d}`, time.Since(start).Milliseconds(), len(aoiRows), len(scenes))
	return nil
}

// resolveFlags merges the optional config file with CLI flags, CLI
// flags always winning over a loaded config's values.
func resolveFlags() (scenes, aois string, deltaOverride float64, mode string, err error) {
	scenes, aois, deltaOverride, mode = *scenesPath, *aoisPath, *delta, *mode
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return "", "", 0, "", err
		}
		if scenes == "" {
			scenes = cfg.ScenesPath
		}
		if aois == "" {
			aois = cfg.AOIsPath
		}
		if deltaOverride == 0 {
			deltaOverride = cfg.Delta
		}
		modeSet := false
		flag.Visit(func(f *flag.Flag) {
			if f.Name == "mode" {
				modeSet = true
			}
		})
		if !modeSet && cfg.Mode != "" {
			mode = cfg.Mode
		}
	}
	if scenes == "" {
		return "", "", 0, "", fmt.Errorf("-scenes is required")
	}
	if aois == "" {
		return "", "", 0, "", fmt.Errorf("-aois is required")
	}
	return scenes, aois, deltaOverride, mode, nil
}

func parseMode(s string) (coverage.Mode, error) {
	switch s {
	case "discrete":
		return coverage.Discrete, nil
	case "continuous":
		return coverage.Continuous, nil
	default:
		return 0, fmt.Errorf("unknown mode %q, want discrete or continuous", s)
	}
}

// resolveDelta picks the cell edge length for one AOI row: a positive
// CLI/config override always wins, otherwise the row's own delta
// column, otherwise an error since delta has no other default.
func resolveDelta(row ingest.AOIRow, override float64) (float64, error) {
	if override > 0 {
		return override, nil
	}
	if row.DeltaSet {
		return row.Delta, nil
	}
	return 0, fmt.Errorf("no -delta override and row has no delta column")
}
