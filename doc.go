// Package lvlpca is a small, deterministic toolkit for Principal Component
// Analysis — from raw numeric tables to standardized data, covariance
// spectra and low-dimensional projections.
//
// 🚀 What is lvlpca?
//
//	A pure-Go PCA pipeline built on gonum, organized as one package per
//	stage so each step can be used (and tested) on its own:
//		• dataset/ — immutable sample×feature tables + the built-in Iris set
//		• scale/   — per-feature standardization (zero mean, unit variance)
//		• eigen/   — sample covariance + dense symmetric eigendecomposition
//		• pca/     — top-k projection and explained-variance reporting
//		• scatter/ — 2-D scatter rendering of reduced data, colored by class
//
// ✨ Why choose lvlpca?
//
//   - Deterministic – fixed inputs give identical outputs, no hidden RNG
//   - Explicit failures – sentinel errors for every degenerate input,
//     never a silent NaN
//   - Documented conventions – sample (N−1) standard deviation and sample
//     covariance throughout, so every stage agrees on the same scale
//   - Pure Go – gonum under the hood, no cgo
//
// The canonical walkthrough lives in examples/pca_iris_walkthrough.go:
// load Iris → standardize → inspect the eigen spectrum → project to 2-D →
// plot. Each package's example_test.go shows the same steps in isolation.
//
//	go get github.com/katalvlaran/lvlpca
package lvlpca
