package scale

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for standardization.
var (
	// ErrEmptyMatrix indicates the input has no rows or no columns.
	ErrEmptyMatrix = errors.New("scale: input must have at least one row and one column")
	// ErrTooFewSamples indicates fewer than two rows; the sample standard
	// deviation is undefined for a single observation.
	ErrTooFewSamples = errors.New("scale: need at least two samples")
	// ErrZeroVariance indicates a constant feature column; its z-score is
	// undefined (division by zero) and must not silently become NaN.
	ErrZeroVariance = errors.New("scale: feature column has zero variance")
	// ErrNotFitted indicates Transform/InverseTransform before a successful Fit.
	ErrNotFitted = errors.New("scale: scaler is not fitted")
	// ErrDimensionMismatch indicates the transformed matrix has a different
	// column count than the matrix the scaler was fitted on.
	ErrDimensionMismatch = errors.New("scale: column count differs from fitted data")
)

// StandardScaler learns per-column mean and sample standard deviation on
// Fit and applies (x − μ) / σ on Transform. The zero value is unusable;
// construct via NewStandardScaler.
type StandardScaler struct {
	means  []float64
	stds   []float64
	fitted bool
}

// NewStandardScaler returns an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit learns the column means and sample standard deviations of X.
// Any previously learned parameters are discarded.
//
// Returns ErrEmptyMatrix, ErrTooFewSamples or ErrZeroVariance; on error
// the scaler stays (or becomes) unfitted.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	s.fitted = false

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if r < 2 {
		return ErrTooFewSamples
	}

	means := make([]float64, c)
	stds := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		mu, sigma := stat.MeanStdDev(col, nil) // sample (N−1) std
		if sigma == 0 {
			return ErrZeroVariance
		}
		means[j], stds[j] = mu, sigma
	}

	s.means, s.stds, s.fitted = means, stds, true

	return nil
}

// Transform returns a new matrix with every column of X shifted by the
// fitted mean and scaled by the fitted standard deviation. X is not
// modified.
//
// Returns ErrNotFitted before Fit and ErrDimensionMismatch when X has a
// different column count than the fitted data.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != len(s.means) {
		return nil, ErrDimensionMismatch
	}
	if r == 0 {
		return nil, ErrEmptyMatrix
	}

	Z := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			Z.Set(i, j, (X.At(i, j)-s.means[j])/s.stds[j])
		}
	}

	return Z, nil
}

// FitTransform runs Fit then Transform on the same matrix.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}

	return s.Transform(X)
}

// InverseTransform maps standardized data back to the original scale:
// x = z·σ + μ. It is the exact inverse of Transform up to floating-point
// rounding.
func (s *StandardScaler) InverseTransform(Z mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	r, c := Z.Dims()
	if c != len(s.means) {
		return nil, ErrDimensionMismatch
	}
	if r == 0 {
		return nil, ErrEmptyMatrix
	}

	X := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			X.Set(i, j, Z.At(i, j)*s.stds[j]+s.means[j])
		}
	}

	return X, nil
}

// Means returns a copy of the fitted column means, or nil before Fit.
func (s *StandardScaler) Means() []float64 {
	if !s.fitted {
		return nil
	}
	out := make([]float64, len(s.means))
	copy(out, s.means)

	return out
}

// StdDevs returns a copy of the fitted sample standard deviations, or nil
// before Fit.
func (s *StandardScaler) StdDevs() []float64 {
	if !s.fitted {
		return nil
	}
	out := make([]float64, len(s.stds))
	copy(out, s.stds)

	return out
}
