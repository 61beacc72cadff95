package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// PathStats summarises one viewer's scan path on one stimulus.
type PathStats struct {
	Stimulus  string
	Viewer    string
	Samples   int
	Valid     int
	ValidFrac float64
	MeanX     float64
	MeanY     float64
}

// Stats computes per-path summaries in stimulus order, then viewer order.
// Viewers without data for a stimulus are skipped.
func Stats(d *ViewDataset) []PathStats {
	var out []PathStats
	for _, stim := range d.Stimuli {
		byViewer := d.ViewData[stim]
		for _, v := range d.Viewers {
			path, ok := byViewer[v.Name]
			if !ok {
				continue
			}
			st := PathStats{Stimulus: stim, Viewer: v.Name, Samples: len(path)}
			var sumX, sumY float64
			for _, p := range path {
				if !p.Valid {
					continue
				}
				st.Valid++
				sumX += p.X
				sumY += p.Y
			}
			if st.Samples > 0 {
				st.ValidFrac = float64(st.Valid) / float64(st.Samples)
			}
			if st.Valid > 0 {
				st.MeanX = sumX / float64(st.Valid)
				st.MeanY = sumY / float64(st.Valid)
			}
			out = append(out, st)
		}
	}
	return out
}

// WriteStats emits a tab-delimited stats table with a header row.
func WriteStats(w io.Writer, stats []PathStats) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"stimulus", "viewer", "samples", "valid", "valid_frac", "mean_x", "mean_y"}); err != nil {
		return err
	}
	for _, st := range stats {
		rec := []string{
			st.Stimulus,
			st.Viewer,
			fmt.Sprintf("%d", st.Samples),
			fmt.Sprintf("%d", st.Valid),
			fmt.Sprintf("%.3f", st.ValidFrac),
			fmt.Sprintf("%.1f", st.MeanX),
			fmt.Sprintf("%.1f", st.MeanY),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
