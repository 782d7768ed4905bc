// Package ingest loads Scene and AOI rows from CSV, logging and
// skipping any row that fails to parse rather than aborting the whole
// file.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/aoicover/selector/internal/coverage"
	"github.com/aoicover/selector/internal/geom"
)

// LoadScenes reads scene rows of the form id,price,polygon from r.
// A row that fails to parse is logged to diag and dropped; the scan
// continues with the remaining rows.
func LoadScenes(r io.Reader, diag *log.Logger) ([]*coverage.Scene, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var scenes []*coverage.Scene
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			rowNum++
			diag.Printf("ingest: scene row %d dropped: %v", rowNum, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading scenes: %w", err)
		}
		rowNum++
		scene, err := parseSceneRow(row)
		if err != nil {
			diag.Printf("ingest: scene row %d dropped: %v", rowNum, err)
			continue
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}

func parseSceneRow(row []string) (*coverage.Scene, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("want at least 3 columns (id, price, polygon), got %d", len(row))
	}
	id := strings.TrimSpace(row[0])
	price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("price column: %w", err)
	}
	poly, err := geom.ParsePolygon(row[2])
	if err != nil {
		return nil, fmt.Errorf("polygon column: %w", err)
	}
	return coverage.NewScene(id, poly, price)
}

// AOIRow is one parsed AOI CSV row. Delta is the optional trailing
// column; DeltaSet reports whether it was present, so the caller can
// decide whether a CLI override or a required flag applies.
type AOIRow struct {
	Poly     geom.Polygon
	Delta    float64
	DeltaSet bool
}

// LoadAOIs reads AOI rows of the form polygon[,delta] from r. A row
// that fails to parse is logged to diag and dropped.
func LoadAOIs(r io.Reader, diag *log.Logger) ([]AOIRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []AOIRow
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			rowNum++
			diag.Printf("ingest: AOI row %d dropped: %v", rowNum, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading AOIs: %w", err)
		}
		rowNum++
		aoiRow, err := parseAOIRow(row)
		if err != nil {
			diag.Printf("ingest: AOI row %d dropped: %v", rowNum, err)
			continue
		}
		rows = append(rows, aoiRow)
	}
	return rows, nil
}

func parseAOIRow(row []string) (AOIRow, error) {
	if len(row) < 1 {
		return AOIRow{}, fmt.Errorf("want at least 1 column (polygon), got %d", len(row))
	}
	poly, err := geom.ParsePolygon(row[0])
	if err != nil {
		return AOIRow{}, fmt.Errorf("polygon column: %w", err)
	}
	out := AOIRow{Poly: poly}
	if len(row) >= 2 && strings.TrimSpace(row[1]) != "" {
		delta, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return AOIRow{}, fmt.Errorf("delta column: %w", err)
		}
		out.Delta = delta
		out.DeltaSet = true
	}
	return out, nil
}
