// Package imaging bridges image files and the intensity grids consumed
// by the prewitt core.
//
// It owns everything the core deliberately does not: decoding and
// encoding image files, converting color images to single-channel
// grayscale, and quantizing magnitude grids back to displayable 8-bit
// images. The core package reads and writes grids only; this package is
// the input and output collaborator on either side of it.
//
// Grayscale conversion uses ITU-R BT.601 luminance weights
// (0.299*R + 0.587*G + 0.114*B) and produces samples in the 0-255
// range, matching the externally meaningful threshold range.
package imaging
