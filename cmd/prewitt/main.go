// Command prewitt computes a gradient-magnitude edge map of an image
// using the Prewitt operator.
//
// The input image is decoded, converted to grayscale, optionally
// smoothed with a 3x3 Gaussian blur, and differentiated with the two
// fixed Prewitt kernels. Gradient magnitudes below the threshold are
// suppressed. The result is written as a grayscale PNG next to the
// input unless --output is given.
//
//	prewitt photo.jpg
//	prewitt --threshold 60 --smooth=false -o edges.png photo.jpg
//	prewitt --heatmap --stats diagram.png
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CODYJEWELLWEAVER/Prewitt-Edge-Detection/internal/imaging"
	"github.com/CODYJEWELLWEAVER/Prewitt-Edge-Detection/internal/prewitt"
	"github.com/CODYJEWELLWEAVER/Prewitt-Edge-Detection/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	flagOutput    string
	flagThreshold float64
	flagSmooth    bool
	flagHeatmap   bool
	flagStats     bool
)

var rootCmd = &cobra.Command{
	Use:   "prewitt INPUT",
	Short: "Prewitt gradient-magnitude edge detection",
	Long: `Compute a gradient-magnitude edge map of an image using the Prewitt
operator: grayscale conversion, optional 3x3 Gaussian pre-smoothing,
convolution with the two fixed Prewitt kernels, and magnitude
thresholding.`,
	Args:         cobra.ExactArgs(1),
	Version:      fmt.Sprintf("%s (built %s)", Version, BuildTime),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output image path (default: INPUT_edges.png)")
	rootCmd.Flags().Float64VarP(&flagThreshold, "threshold", "t", prewitt.DefaultThreshold, "gradient magnitude cutoff (0-255); magnitudes below are suppressed")
	rootCmd.Flags().BoolVar(&flagSmooth, "smooth", true, "apply 3x3 Gaussian smoothing before differentiation")
	rootCmd.Flags().BoolVar(&flagHeatmap, "heatmap", false, "render a false-color heat map instead of grayscale")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "print edge statistics to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	input := args[0]

	img, err := imaging.Load(input)
	if err != nil {
		return err
	}

	grid, err := imaging.ToGrid(img)
	if err != nil {
		return err
	}

	cfg := prewitt.Config{Threshold: flagThreshold, Smooth: flagSmooth}
	edges, err := prewitt.ComputeEdges(grid, cfg)
	if err != nil {
		return err
	}

	if flagStats {
		s := prewitt.Summarize(edges)
		log.Printf("interior pixels: %d", s.Interior)
		log.Printf("edge pixels:     %d (%.1f%%)", s.EdgePixels, s.EdgeFraction*100)
		log.Printf("magnitude:       max %.1f, mean %.1f, median %.1f, stddev %.1f",
			s.Max, s.Mean, s.Median, s.StdDev)
	}

	var out image.Image
	if flagHeatmap {
		out = render.Heatmap(edges)
	} else {
		out = imaging.FromGrid(edges)
	}

	output := flagOutput
	if output == "" {
		output = defaultOutputPath(input)
	}
	if err := imaging.Save(out, output); err != nil {
		return err
	}

	log.Printf("wrote %s", output)
	return nil
}

// defaultOutputPath derives an output file name from the input path,
// e.g. photo.jpg -> photo_edges.png.
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_edges.png"
}

func main() {
	// Log to stderr so stdout stays clean for shell pipelines.
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
