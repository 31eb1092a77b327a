package scatter

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Sentinel errors for scatter rendering.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("scatter: nil matrix")
	// ErrNeedTwoColumns indicates input that is not exactly two columns wide.
	ErrNeedTwoColumns = errors.New("scatter: input must have exactly two columns")
	// ErrLabelMismatch indicates len(labels) differs from the row count.
	ErrLabelMismatch = errors.New("scatter: labels length must equal the number of rows")
)

// Options configures the rendered plot.
//
// Fields:
//   - Title, XLabel, YLabel — plot annotations.
//   - Width, Height        — canvas size.
//   - ClassNames           — legend entry per label value; labels without a
//     name fall back to "class <label>".
type Options struct {
	Title      string
	XLabel     string
	YLabel     string
	Width      vg.Length
	Height     vg.Length
	ClassNames []string
}

// DefaultOptions returns a 6×6 inch canvas with generic PCA axis labels.
func DefaultOptions() Options {
	return Options{
		Title:  "PCA projection",
		XLabel: "PC1",
		YLabel: "PC2",
		Width:  6 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// Save renders the rows of the N×2 matrix X as scatter points grouped and
// colored by label, then writes the plot to path. The image format is
// derived from the file extension.
//
// Returns ErrNilMatrix, ErrNeedTwoColumns or ErrLabelMismatch on invalid
// input; rendering and file errors are returned wrapped.
func Save(X *mat.Dense, labels []int, path string, opts Options) error {
	if X == nil {
		return ErrNilMatrix
	}
	r, c := X.Dims()
	if c != 2 {
		return ErrNeedTwoColumns
	}
	if len(labels) != r {
		return ErrLabelMismatch
	}

	// Group points per label, classes in ascending label order for a
	// stable legend and color assignment.
	groups := make(map[int]plotter.XYs)
	for i := 0; i < r; i++ {
		groups[labels[i]] = append(groups[labels[i]], plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)})
	}
	classes := make([]int, 0, len(groups))
	for class := range groups {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for i, class := range classes {
		sc, err := plotter.NewScatter(groups[class])
		if err != nil {
			return fmt.Errorf("scatter: build class %d: %w", class, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = plotutil.Shape(i)
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(className(opts, class), sc)
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("scatter: save %s: %w", path, err)
	}

	return nil
}

// className resolves the legend entry for a label value.
func className(opts Options, class int) string {
	if class >= 0 && class < len(opts.ClassNames) {
		return opts.ClassNames[class]
	}

	return fmt.Sprintf("class %d", class)
}
