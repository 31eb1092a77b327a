package pca

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/eigen"
)

// Sentinel errors for the reducer.
var (
	// ErrInvalidComponents indicates a requested component count outside
	// [1, M] for an M-feature input.
	ErrInvalidComponents = errors.New("pca: component count must be in [1, feature count]")
	// ErrNotFitted indicates Transform or an accessor before a successful Fit.
	ErrNotFitted = errors.New("pca: model is not fitted")
	// ErrDimensionMismatch indicates Transform input whose column count
	// differs from the fitted data.
	ErrDimensionMismatch = errors.New("pca: column count differs from fitted data")
	// ErrEmptyMatrix indicates input with no rows or no columns.
	ErrEmptyMatrix = errors.New("pca: input must have at least one row and one column")
)

// PCA reduces an N×M table to its top-k principal components. The zero
// value is unusable; construct via New. A PCA is pure state: fitting twice
// on identical input reproduces the identical model.
type PCA struct {
	components int
	cols       int
	pairs      eigen.Pairs
	w          *mat.Dense // M×k projection, columns are top-k eigenvectors
	fitted     bool
}

// New returns an unfitted PCA that will retain the given number of
// components. The count is validated against the feature count on Fit.
func New(components int) *PCA {
	return &PCA{components: components}
}

// Fit learns the top-k eigen-directions of the sample covariance of X.
// X is expected to be standardized (zero-mean, unit-variance columns; see
// scale); Fit does not center or rescale.
//
// Returns ErrInvalidComponents when the component count is outside [1, M],
// and propagates eigen covariance/decomposition errors. On error the model
// stays unfitted.
func (p *PCA) Fit(X mat.Matrix) error {
	p.fitted = false

	if X == nil {
		return eigen.ErrNilMatrix
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if p.components < 1 || p.components > c {
		return ErrInvalidComponents
	}

	S, err := eigen.Covariance(X)
	if err != nil {
		return err
	}
	pairs, err := eigen.Decompose(S, eigen.DefaultOptions())
	if err != nil {
		return err
	}
	W, err := pairs.Components(p.components)
	if err != nil {
		return err
	}

	p.cols, p.pairs, p.w, p.fitted = c, pairs, W, true

	return nil
}

// Transform projects X onto the fitted components: ReducedMatrix = X·W,
// an N×k matrix. X is not modified, and identical inputs always produce
// identical outputs.
//
// Returns ErrNotFitted before Fit and ErrDimensionMismatch when X has a
// different column count than the fitted data.
func (p *PCA) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	if X == nil {
		return nil, eigen.ErrNilMatrix
	}
	r, c := X.Dims()
	if c != p.cols {
		return nil, ErrDimensionMismatch
	}
	if r == 0 {
		return nil, ErrEmptyMatrix
	}

	reduced := mat.NewDense(r, p.components, nil)
	reduced.Mul(X, p.w)

	return reduced, nil
}

// FitTransform runs Fit then Transform on the same matrix.
func (p *PCA) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}

	return p.Transform(X)
}

// ExplainedVarianceRatio returns, per retained component, the fraction of
// total variance it captures: eigenvalue[c] / Σ(all eigenvalues). The
// sequence is non-increasing, each entry lies in [0,1] and the sum over
// the retained components is ≤ 1. Returns nil before Fit.
func (p *PCA) ExplainedVarianceRatio() []float64 {
	if !p.fitted {
		return nil
	}
	total := p.pairs.TotalVariance()
	out := make([]float64, p.components)
	for i := 0; i < p.components; i++ {
		out[i] = p.pairs[i].Value / total
	}

	return out
}

// Components returns a copy of the M×k projection matrix W whose columns
// are the retained eigenvectors. Returns nil before Fit.
func (p *PCA) Components() *mat.Dense {
	if !p.fitted {
		return nil
	}

	return mat.DenseCopyOf(p.w)
}

// EigenPairs returns the full sorted eigendecomposition learned by Fit
// (all M pairs, not only the retained k). Returns nil before Fit.
func (p *PCA) EigenPairs() eigen.Pairs {
	if !p.fitted {
		return nil
	}
	out := make(eigen.Pairs, len(p.pairs))
	for i, pr := range p.pairs {
		vec := make([]float64, len(pr.Vector))
		copy(vec, pr.Vector)
		out[i] = eigen.Pair{Value: pr.Value, Vector: vec}
	}

	return out
}
