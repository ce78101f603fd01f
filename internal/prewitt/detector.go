package prewitt

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// DefaultThreshold is the default gradient magnitude cutoff.
const DefaultThreshold = 40.0

// Config controls the edge detection pipeline.
type Config struct {
	// Threshold is the gradient magnitude cutoff. Magnitudes strictly
	// below it are zeroed; a magnitude exactly equal to the threshold is
	// kept. Zero disables suppression entirely. Must be >= 0; the
	// externally meaningful range is 0-255.
	Threshold float64

	// Smooth applies a 3x3 Gaussian blur before differentiation to
	// reduce high-frequency noise.
	Smooth bool
}

// DefaultConfig returns the default configuration: threshold 40 with
// smoothing enabled.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Smooth: true}
}

// Validate reports whether the configuration is usable.
// Returns ErrInvalidConfiguration if the threshold is negative.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be >= 0, got %g", ErrInvalidConfiguration, c.Threshold)
	}
	return nil
}

// gaussian3 holds the separable 1D weights of the 3x3 smoothing kernel,
// normalized to sum to 1. The standard deviation is derived from the
// window size k=3 using sigma = 0.3*((k-1)/2 - 1) + 0.8 = 0.8.
var gaussian3 = func() [3]float64 {
	const sigma = 0.8
	var w [3]float64
	var sum float64
	for i := -1; i <= 1; i++ {
		w[i+1] = math.Exp(-float64(i*i) / (2 * sigma * sigma))
		sum += w[i+1]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}()

// Smooth applies a 3x3 Gaussian blur and returns the result as a new
// grid of identical dimensions. The input is never mutated.
//
// Border policy: samples outside the grid are replicated from the
// nearest edge pixel, so every pixel, including the 1-pixel border,
// receives a defined weighted average. This differs from ComputeEdges,
// which skips the border outright.
func Smooth(g *Grid) *Grid {
	out := &Grid{
		data: make([]float64, len(g.data)),
		rows: g.rows,
		cols: g.cols,
	}

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			var sum float64
			for ky := -1; ky <= 1; ky++ {
				py := clamp(y+ky, 0, g.rows-1)
				for kx := -1; kx <= 1; kx++ {
					px := clamp(x+kx, 0, g.cols-1)
					sum += g.data[py*g.cols+px] * gaussian3[ky+1] * gaussian3[kx+1]
				}
			}
			out.data[y*out.cols+x] = sum
		}
	}
	return out
}

// ComputeEdges runs the Prewitt pipeline over an intensity grid and
// returns a gradient magnitude grid of identical dimensions.
//
// For every interior pixel the two Prewitt kernels are convolved against
// the 3x3 neighborhood, producing Gx and Gy, and the output value is
// sqrt(Gx² + Gy²), zeroed if strictly below cfg.Threshold. The 1-pixel
// border, where no full neighborhood exists, is always exactly zero.
//
// Inputs smaller than 3x3 in either dimension have no interior and
// return an all-zero grid of the same dimensions without error.
//
// The configuration is validated before any pixel is processed. The
// input grid is never mutated; when cfg.Smooth is set, differentiation
// reads from a smoothed copy.
//
// The row loop is partitioned across goroutines. Each worker owns a
// disjoint range of output rows, so no synchronization is needed.
func ComputeEdges(g *Grid, cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil || len(g.data) == 0 {
		return nil, fmt.Errorf("%w: nil or empty input grid", ErrInvalidDimensions)
	}

	src := g
	if cfg.Smooth {
		src = Smooth(g)
	}

	out := &Grid{
		data: make([]float64, len(src.data)),
		rows: src.rows,
		cols: src.cols,
	}

	// No interior pixels to compute; border-only grids stay zero.
	if src.rows < 3 || src.cols < 3 {
		return out, nil
	}

	parallel.Line(src.rows-2, func(start, end int) {
		for y := start + 1; y <= end; y++ {
			for x := 1; x < src.cols-1; x++ {
				var gx, gy float64
				for ky := -1; ky <= 1; ky++ {
					row := src.data[(y+ky)*src.cols:]
					for kx := -1; kx <= 1; kx++ {
						v := row[x+kx]
						gx += v * kernelX[ky+1][kx+1]
						gy += v * kernelY[ky+1][kx+1]
					}
				}
				mag := math.Sqrt(gx*gx + gy*gy)
				if mag < cfg.Threshold {
					mag = 0
				}
				out.data[y*out.cols+x] = mag
			}
		}
	})

	return out, nil
}

// clamp constrains an integer value to the range [min, max].
// Used for the replicate border policy in Smooth.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
