// Package eigen: option struct, sentinel errors and the Pair/Pairs types.
package eigen

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for covariance and eigendecomposition.
var (
	// ErrEmptyMatrix indicates input with no rows or no columns.
	ErrEmptyMatrix = errors.New("eigen: input must have at least one row and one column")
	// ErrTooFewSamples indicates fewer than two rows; the sample covariance
	// (N−1 denominator) needs at least two observations.
	ErrTooFewSamples = errors.New("eigen: need at least two samples for sample covariance")
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("eigen: nil matrix")
	// ErrEigenFailed indicates the symmetric eigensolver did not converge.
	ErrEigenFailed = errors.New("eigen: eigendecomposition failed")
	// ErrNegativeEigenvalue indicates an eigenvalue below −Tolerance. A
	// covariance matrix is positive semi-definite, so this signals an
	// invalid input or a solver defect, not a legitimate spectrum.
	ErrNegativeEigenvalue = errors.New("eigen: eigenvalue negative beyond tolerance")
	// ErrComponentCount indicates a requested component count outside [1, M].
	ErrComponentCount = errors.New("eigen: component count out of range")
)

// DefaultTolerance is the default allowance for tiny negative eigenvalues
// produced by floating-point noise on a semi-definite spectrum.
const DefaultTolerance = 1e-6

// Options holds the numeric policy for Decompose.
//
// Fields:
//   - Tolerance — eigenvalues in (−Tolerance, 0) are accepted as rounding
//     noise; anything below −Tolerance errors with ErrNegativeEigenvalue.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns Options with Tolerance=DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Pair couples one eigenvalue with its length-M unit eigenvector.
type Pair struct {
	Value  float64
	Vector []float64
}

// Pairs is an eigendecomposition sorted by non-increasing eigenvalue.
// Because the decomposed matrix is symmetric, the eigenvectors are mutually
// orthogonal up to numeric tolerance.
type Pairs []Pair

// Values returns the eigenvalue sequence in pair order (non-increasing).
func (p Pairs) Values() []float64 {
	out := make([]float64, len(p))
	for i, pr := range p {
		out[i] = pr.Value
	}

	return out
}

// TotalVariance returns the sum of all eigenvalues, which equals the trace
// of the decomposed covariance matrix.
func (p Pairs) TotalVariance() float64 {
	var sum float64
	for _, pr := range p {
		sum += pr.Value
	}

	return sum
}

// Components stacks the top-k eigenvectors as columns of an M×k projection
// matrix W, ready for X·W.
// Returns ErrComponentCount when k is outside [1, len(p)].
func (p Pairs) Components(k int) (*mat.Dense, error) {
	if k < 1 || k > len(p) {
		return nil, ErrComponentCount
	}
	m := len(p[0].Vector)
	W := mat.NewDense(m, k, nil)
	for c := 0; c < k; c++ {
		W.SetCol(c, p[c].Vector)
	}

	return W, nil
}
