package eigen

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Covariance computes the M×M sample covariance matrix of the columns of X:
// Cov = (1/(N−1)) · Xcᵀ·Xc for column-centered Xc. The result is symmetric
// exactly; on standardized input its diagonal entries are ≈1.
//
// Returns ErrNilMatrix, ErrEmptyMatrix or ErrTooFewSamples.
// Complexity: O(N·M²) time, O(M²) memory.
func Covariance(X mat.Matrix) (*mat.SymDense, error) {
	if X == nil {
		return nil, ErrNilMatrix
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if r < 2 {
		return nil, ErrTooFewSamples
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, X, nil)

	return &cov, nil
}

// Decompose performs a dense symmetric eigendecomposition of S and returns
// the eigenvalue/eigenvector pairs sorted by non-increasing eigenvalue.
// Ties keep the solver's relative order; tied eigenvectors span the same
// subspace, so their order carries no meaning.
//
// S must be positive semi-definite up to noise: an eigenvalue below
// −opts.Tolerance errors with ErrNegativeEigenvalue. A non-converging
// solver errors with ErrEigenFailed.
// Complexity: O(M³) time, O(M²) memory.
func Decompose(S *mat.SymDense, opts Options) (Pairs, error) {
	if S == nil {
		return nil, ErrNilMatrix
	}
	n := S.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	var es mat.EigenSym
	if ok := es.Factorize(S, true); !ok {
		return nil, ErrEigenFailed
	}

	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// EigenSym yields ascending eigenvalues; the smallest is the first.
	if vals[0] < -opts.Tolerance {
		return nil, ErrNegativeEigenvalue
	}

	pairs := make(Pairs, n)
	for i := 0; i < n; i++ {
		vec := make([]float64, n)
		mat.Col(vec, i, &vecs)
		pairs[i] = Pair{Value: vals[i], Vector: vec}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].Value > pairs[b].Value })

	return pairs, nil
}
