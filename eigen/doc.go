// Package eigen computes the sample covariance matrix of a data table and
// its eigendecomposition, the spectral heart of the PCA pipeline.
//
// The eigen package provides:
//
//   - Covariance: the M×M sample covariance (N−1 denominator) of column
//     data, symmetric by construction. On standardized input its diagonal
//     is ≈1 and its trace equals the feature count.
//   - Decompose: a dense symmetric eigendecomposition (gonum mat.EigenSym,
//     QR-based) returning eigenvalue/eigenvector pairs sorted by
//     non-increasing eigenvalue.
//   - Pairs helpers for the downstream reducer: the stacked top-k
//     projection matrix, the raw eigenvalue sequence and the total
//     variance (= trace).
//
// A covariance matrix is positive semi-definite, so all eigenvalues are
// real and non-negative up to numeric noise. Decompose enforces that: an
// eigenvalue below −Tolerance (default 1e-6) is treated as a solver or
// input defect and reported as ErrNegativeEigenvalue rather than passed on.
package eigen
