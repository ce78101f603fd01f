package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/CODYJEWELLWEAVER/Prewitt-Edge-Detection/internal/prewitt"
)

// Load decodes the image at path. The format is detected from the file
// contents (PNG, JPEG, GIF, TIFF, and BMP are supported) and EXIF
// orientation is applied for JPEG sources.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

// Save encodes img to path, choosing the format from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// ToGrid converts an image to a single-channel intensity grid using
// BT.601 luminance weights. Samples are in the 0-255 range regardless
// of the source color depth; 16-bit sources are scaled down to 8 bits
// before conversion.
//
// Returns prewitt.ErrInvalidDimensions if the image has zero width or
// height.
func ToGrid(img image.Image) (*prewitt.Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	g, err := prewitt.NewGrid(height, width)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, gc, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(gc>>8) + 0.114*float64(b>>8)
			g.Set(y, x, lum)
		}
	}
	return g, nil
}

// FromGrid quantizes a magnitude grid to an 8-bit grayscale image,
// rounding each sample and clamping to [0, 255]. This is the output
// half of the collaborator contract: the core guarantees non-negative
// values but smoothing and convolution may exceed 255.
func FromGrid(g *prewitt.Grid) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			v := math.Round(g.At(y, x))
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return out
}
