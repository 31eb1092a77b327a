// Package scale rescales each feature column to zero mean and unit
// variance (z-scoring), the preprocessing step every later pipeline stage
// assumes.
//
// Convention: StandardScaler uses the sample standard deviation (N−1
// denominator), matching the sample covariance computed downstream in
// eigen. A constant column has no defined z-score and fails loudly with
// ErrZeroVariance instead of propagating NaN.
//
// Usage follows the fit/transform idiom:
//
//	scaler := scale.NewStandardScaler()
//	Z, err := scaler.FitTransform(X)
//
// After Fit, every column of Z has mean ≈ 0 and sample variance ≈ 1.
package scale
