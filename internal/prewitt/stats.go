package prewitt

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of gradient magnitudes over the
// interior of an edge grid. Border pixels are excluded since they are
// zero by construction.
type Summary struct {
	// Interior is the number of interior pixels considered.
	Interior int `json:"interior"`

	// EdgePixels is the number of interior pixels with non-zero magnitude.
	EdgePixels int `json:"edge_pixels"`

	// EdgeFraction is EdgePixels / Interior (0 when there is no interior).
	EdgeFraction float64 `json:"edge_fraction"`

	// Max is the largest gradient magnitude.
	Max float64 `json:"max"`

	// Mean is the arithmetic mean magnitude over all interior pixels,
	// suppressed zeros included.
	Mean float64 `json:"mean"`

	// Median is the empirical 0.5 quantile of interior magnitudes.
	Median float64 `json:"median"`

	// StdDev is the sample standard deviation of interior magnitudes.
	// Zero when fewer than two interior pixels exist.
	StdDev float64 `json:"std_dev"`
}

// Summarize computes distribution statistics for an edge grid produced
// by ComputeEdges. Grids without interior pixels yield a zero Summary.
func Summarize(edges *Grid) Summary {
	var s Summary
	if edges == nil || edges.rows < 3 || edges.cols < 3 {
		return s
	}

	mags := make([]float64, 0, (edges.rows-2)*(edges.cols-2))
	for y := 1; y < edges.rows-1; y++ {
		row := edges.Row(y)
		for x := 1; x < edges.cols-1; x++ {
			mags = append(mags, row[x])
		}
	}

	s.Interior = len(mags)
	for _, m := range mags {
		if m > 0 {
			s.EdgePixels++
		}
		if m > s.Max {
			s.Max = m
		}
	}
	s.EdgeFraction = float64(s.EdgePixels) / float64(s.Interior)
	s.Mean = stat.Mean(mags, nil)
	if len(mags) > 1 {
		s.StdDev = stat.StdDev(mags, nil)
	}

	sort.Float64s(mags)
	s.Median = stat.Quantile(0.5, stat.Empirical, mags, nil)
	return s
}
