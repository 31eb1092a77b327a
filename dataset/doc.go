// Package dataset defines the immutable numeric table consumed by the
// lvlpca pipeline: n samples × m features plus a parallel integer class
// label per sample.
//
// The dataset package provides:
//
//   - Dataset, an immutable table validated once at construction
//     (rectangular, finite values, label length matching the row count).
//   - Copy-returning accessors (Matrix, Labels, Row) so downstream stages
//     can never mutate the source data.
//   - Iris, the canonical 150×4 sample set with three balanced classes,
//     used throughout the examples and tests.
//
// A Dataset is created once and held for the remainder of a run; every
// later stage derives new values from it instead of modifying it.
package dataset
