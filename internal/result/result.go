// Package result assembles a query's outcome into a JSON-serializable
// view and writes it as one object per line.
package result

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/aoicover/selector/internal/coverage"
	"github.com/aoicover/selector/internal/geom"
	"github.com/aoicover/selector/internal/grid"
	"github.com/aoicover/selector/internal/solver"
)

// AOIView is the JSON shape of a query's Area-of-Interest. Cells is
// populated only in discrete mode, since continuous mode has no
// finite cell list to show.
type AOIView struct {
	Polygon geom.Polygon `json:"polygon"`
	Area    float64      `json:"area"`
	Delta   float64      `json:"delta"`
	Cells   []grid.Cell  `json:"cells,omitempty"`
}

// Result is the JSON shape of one query's outcome.
type Result struct {
	AOI           AOIView  `json:"aoi"`
	Possible      []string `json:"possible"`
	Chosen        []string `json:"result"`
	TotalPrice    float64  `json:"totalPrice"`
	CoverageRatio float64  `json:"coverageRatio"`
}

// New builds the JSON view of a solver.Result run under mode.
func New(mode coverage.Mode, r solver.Result) Result {
	aoiView := AOIView{
		Polygon: r.AOI.Poly,
		Area:    r.AOI.Area(),
		Delta:   r.AOI.Delta,
	}
	if mode == coverage.Discrete {
		cells := r.AOI.Cells().Slice()
		sort.Slice(cells, func(i, j int) bool {
			if cells[i].I != cells[j].I {
				return cells[i].I < cells[j].I
			}
			return cells[i].J < cells[j].J
		})
		aoiView.Cells = cells
	}
	return Result{
		AOI:           aoiView,
		Possible:      sceneIDs(r.Possible),
		Chosen:        sceneIDs(r.Chosen),
		TotalPrice:    r.TotalPrice,
		CoverageRatio: r.CoverageRatio(mode),
	}
}

func sceneIDs(scenes []*coverage.Scene) []string {
	ids := make([]string, len(scenes))
	for i, s := range scenes {
		ids[i] = s.ID
	}
	return ids
}

// Encode writes r to w as a single JSON object followed by a newline,
// so a stream of queries produces one object per line on w.
func Encode(w io.Writer, r Result) error {
	return json.NewEncoder(w).Encode(r)
}
