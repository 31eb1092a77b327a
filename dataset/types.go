// Package dataset: core Dataset type, sentinel errors and accessors.
package dataset

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for dataset construction and queries.
var (
	// ErrEmptyDataset indicates the input table has no rows or no columns.
	ErrEmptyDataset = errors.New("dataset: table must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("dataset: all rows must have the same length")
	// ErrLabelMismatch indicates len(labels) differs from the number of rows.
	ErrLabelMismatch = errors.New("dataset: labels length must equal the number of rows")
	// ErrNonFinite indicates a NaN or ±Inf value where finite data is required.
	ErrNonFinite = errors.New("dataset: NaN or Inf encountered")
	// ErrRowIndex indicates a requested row index is out of range.
	ErrRowIndex = errors.New("dataset: row index out of range")
)

// Dataset is an immutable table of n samples × m numeric features with a
// parallel class label per sample. It is validated and copied once at
// construction; accessors return fresh copies, never internal storage.
type Dataset struct {
	data   []float64 // row-major n×m backing slice
	labels []int     // parallel labels, len == n
	n, m   int       // samples, features
}

// New builds a Dataset from a slice of feature rows and a parallel label
// vector. The input slices are deep-copied, so callers may reuse them.
//
// Returns ErrEmptyDataset, ErrRaggedRows, ErrLabelMismatch or ErrNonFinite
// on invalid input.
func New(rows [][]float64, labels []int) (*Dataset, error) {
	n := len(rows)
	if n == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyDataset
	}
	m := len(rows[0])
	if len(labels) != n {
		return nil, ErrLabelMismatch
	}

	data := make([]float64, 0, n*m)
	for _, row := range rows {
		if len(row) != m {
			return nil, ErrRaggedRows
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinite
			}
		}
		data = append(data, row...)
	}

	lab := make([]int, n)
	copy(lab, labels)

	return &Dataset{data: data, labels: lab, n: n, m: m}, nil
}

// Samples returns the number of rows (observations) in the table.
func (d *Dataset) Samples() int { return d.n }

// Features returns the number of columns (features) in the table.
func (d *Dataset) Features() int { return d.m }

// Matrix returns the feature table as a freshly allocated n×m *mat.Dense.
// Mutating the result does not affect the Dataset.
func (d *Dataset) Matrix() *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.n, d.m, buf)
}

// Labels returns a copy of the class label vector (len == Samples).
func (d *Dataset) Labels() []int {
	out := make([]int, d.n)
	copy(out, d.labels)

	return out
}

// Row returns a copy of sample i and its label.
// Returns ErrRowIndex when i is outside [0, Samples).
func (d *Dataset) Row(i int) ([]float64, int, error) {
	if i < 0 || i >= d.n {
		return nil, 0, ErrRowIndex
	}
	row := make([]float64, d.m)
	copy(row, d.data[i*d.m:(i+1)*d.m])

	return row, d.labels[i], nil
}

// Classes returns the distinct label values in ascending order.
func (d *Dataset) Classes() []int {
	seen := make(map[int]struct{}, 4)
	for _, l := range d.labels {
		seen[l] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// ClassIndices returns the row indices carrying the given label, in row
// order. The result is empty (non-nil) when the label is absent.
func (d *Dataset) ClassIndices(label int) []int {
	idx := make([]int, 0, d.n)
	for i, l := range d.labels {
		if l == label {
			idx = append(idx, i)
		}
	}

	return idx
}
