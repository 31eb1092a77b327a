// Package pca projects a standardized data table onto its top-k principal
// components and reports the fraction of variance each retained component
// captures.
//
// PCA follows the fit/transform idiom: Fit learns the eigen-directions of
// the sample covariance of X, Transform applies ReducedMatrix = X·W for
// the M×k projection matrix W built from the top-k eigenvectors. Both are
// pure functions of their inputs — fitting or transforming twice on
// identical data yields identical results.
//
//	p := pca.New(2)
//	reduced, err := p.FitTransform(Z) // Z standardized, N×M
//	ratios := p.ExplainedVarianceRatio()
//
// The input is expected to be standardized (see scale); PCA itself only
// assumes columns share a comparable scale and centers nothing.
package pca
