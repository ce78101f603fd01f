// Package prewitt implements gradient-magnitude edge detection using the
// Prewitt operator.
//
// The package is a pure numeric core: it consumes a single-channel
// intensity grid and produces a same-dimensioned grid of gradient
// magnitudes. Decoding image files, converting color to grayscale, and
// encoding results are the responsibility of collaborators (see the
// sibling imaging and render packages); nothing in this package performs
// I/O or logging.
//
// # Pipeline
//
// Edge detection proceeds in three composable steps:
//
//  1. Optional smoothing: a 3x3 Gaussian blur reduces high-frequency
//     noise before differentiation (see Smooth).
//  2. Gradient computation: the two fixed 3x3 Prewitt kernels are
//     convolved against every interior pixel, and the gradient magnitude
//     is the Euclidean norm sqrt(Gx² + Gy²).
//  3. Threshold suppression: magnitudes strictly below the configured
//     threshold are zeroed to remove weak or noisy edges.
//
// # Grid Representation
//
// Grids are dense row-major float64 buffers (see Grid). Samples are
// conceptually in the 0-255 range, but any non-negative values are
// accepted; smoothing and convolution may produce intermediate values
// outside the original range.
//
// # Border Policy
//
// The gradient step requires a full 3x3 neighborhood, so the 1-pixel
// border of the output is never computed and is always exactly zero.
// Inputs smaller than 3x3 in either dimension have no interior pixels
// and yield an all-zero grid of matching dimensions; this is not an
// error. The smoothing step, by contrast, produces a defined value for
// every pixel by replicating edge samples (see Smooth).
//
// # Error Handling
//
// Invalid inputs are reported through the sentinel errors
// ErrInvalidDimensions and ErrInvalidConfiguration, matched with
// errors.Is. The package performs no recovery and no retries; every
// operation is a deterministic function of its arguments.
package prewitt
