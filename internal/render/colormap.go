package render

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/CODYJEWELLWEAVER/Prewitt-Edge-Detection/internal/prewitt"
)

// ramp holds the color stops of the heat map, from no edge to the
// strongest edge: black, dark red, yellow, white.
var ramp = []colorful.Color{
	{R: 0, G: 0, B: 0},
	{R: 0.55, G: 0, B: 0},
	{R: 1, G: 0.85, B: 0},
	{R: 1, G: 1, B: 1},
}

// Heatmap renders a magnitude grid as a false-color image. Magnitudes
// are normalized by the grid's maximum, so the strongest edge always
// maps to the hottest color; an all-zero grid renders entirely black.
func Heatmap(g *prewitt.Grid) *image.RGBA {
	var maxMag float64
	for y := 0; y < g.Rows(); y++ {
		for _, v := range g.Row(y) {
			if v > maxMag {
				maxMag = v
			}
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			var t float64
			if maxMag > 0 {
				t = g.At(y, x) / maxMag
			}
			r, gc, b := rampAt(t).RGB255()
			out.SetRGBA(x, y, color.RGBA{R: r, G: gc, B: b, A: 255})
		}
	}
	return out
}

// rampAt interpolates the color ramp at t in [0, 1], blending adjacent
// stops in Luv space for perceptual smoothness.
func rampAt(t float64) colorful.Color {
	if t <= 0 {
		return ramp[0]
	}
	if t >= 1 {
		return ramp[len(ramp)-1]
	}
	scaled := t * float64(len(ramp)-1)
	i := int(scaled)
	return ramp[i].BlendLuv(ramp[i+1], scaled-float64(i)).Clamped()
}
