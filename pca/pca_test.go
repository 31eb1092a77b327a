package pca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/dataset"
	"github.com/katalvlaran/lvlpca/pca"
	"github.com/katalvlaran/lvlpca/scale"
)

// standardizedIris is a test helper returning the z-scored Iris table.
func standardizedIris(t *testing.T) *mat.Dense {
	t.Helper()
	Z, err := scale.NewStandardScaler().FitTransform(dataset.Iris().Matrix())
	require.NoError(t, err)

	return Z
}

// TestPCA_IrisScenario pins the classic Iris separation result: with k=2
// the first component captures over 70% of the variance and the pair
// together lands in the 0.95–0.98 band.
func TestPCA_IrisScenario(t *testing.T) {
	Z := standardizedIris(t)

	p := pca.New(2)
	reduced, err := p.FitTransform(Z)
	require.NoError(t, err)

	r, c := reduced.Dims()
	assert.Equal(t, 150, r)
	assert.Equal(t, 2, c)

	evr := p.ExplainedVarianceRatio()
	require.Len(t, evr, 2)
	assert.Greater(t, evr[0], 0.70, "first component must dominate")
	sum := evr[0] + evr[1]
	assert.Greater(t, sum, 0.95)
	assert.Less(t, sum, 0.98)
}

// TestPCA_ExplainedVarianceInvariants verifies the EVR sequence over all
// components: non-increasing, each in [0,1], summing to ≈1.
func TestPCA_ExplainedVarianceInvariants(t *testing.T) {
	Z := standardizedIris(t)

	p := pca.New(4)
	require.NoError(t, p.Fit(Z))

	evr := p.ExplainedVarianceRatio()
	require.Len(t, evr, 4)
	for i, v := range evr {
		assert.GreaterOrEqual(t, v, 0.0, "ratio %d must be non-negative", i)
		assert.LessOrEqual(t, v, 1.0, "ratio %d must be at most one", i)
		if i > 0 {
			assert.GreaterOrEqual(t, evr[i-1], evr[i], "ratios must be non-increasing")
		}
	}
	assert.InDelta(t, 1, floats.Sum(evr), 1e-9, "full spectrum must sum to one")
}

// TestPCA_Idempotent verifies that fitting and transforming twice on the
// identical input yields identical output, entry by entry.
func TestPCA_Idempotent(t *testing.T) {
	Z := standardizedIris(t)

	a, err := pca.New(2).FitTransform(Z)
	require.NoError(t, err)
	b, err := pca.New(2).FitTransform(Z)
	require.NoError(t, err)

	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, a.At(i, j), b.At(i, j), 1e-9)
		}
	}
}

// TestPCA_ComponentBounds verifies k=0, negative k and k>M all fail with
// ErrInvalidComponents.
func TestPCA_ComponentBounds(t *testing.T) {
	Z := standardizedIris(t)

	assert.ErrorIs(t, pca.New(0).Fit(Z), pca.ErrInvalidComponents)
	assert.ErrorIs(t, pca.New(-1).Fit(Z), pca.ErrInvalidComponents)
	assert.ErrorIs(t, pca.New(5).Fit(Z), pca.ErrInvalidComponents)
	assert.NoError(t, pca.New(4).Fit(Z), "k == M is the inclusive upper bound")
}

// TestPCA_NotFitted verifies Transform and accessors before Fit.
func TestPCA_NotFitted(t *testing.T) {
	p := pca.New(2)

	_, err := p.Transform(mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, pca.ErrNotFitted)
	assert.Nil(t, p.ExplainedVarianceRatio())
	assert.Nil(t, p.Components())
	assert.Nil(t, p.EigenPairs())
}

// TestPCA_DimensionMismatch verifies Transform rejects input with a column
// count differing from the fitted data.
func TestPCA_DimensionMismatch(t *testing.T) {
	p := pca.New(2)
	require.NoError(t, p.Fit(standardizedIris(t)))

	_, err := p.Transform(mat.NewDense(3, 3, nil))
	assert.ErrorIs(t, err, pca.ErrDimensionMismatch)
}

// TestPCA_ComponentsShapeAndOrthonormality verifies W is M×k with
// orthonormal columns.
func TestPCA_ComponentsShapeAndOrthonormality(t *testing.T) {
	p := pca.New(2)
	require.NoError(t, p.Fit(standardizedIris(t)))

	W := p.Components()
	r, c := W.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)

	var gram mat.Dense
	gram.Mul(W.T(), W)
	assert.InDelta(t, 1, gram.At(0, 0), 1e-9)
	assert.InDelta(t, 1, gram.At(1, 1), 1e-9)
	assert.InDelta(t, 0, gram.At(0, 1), 1e-9)
	assert.InDelta(t, 0, gram.At(1, 0), 1e-9)
}

// TestPCA_AccessorsAreCopies verifies mutating accessor results does not
// corrupt the fitted model.
func TestPCA_AccessorsAreCopies(t *testing.T) {
	Z := standardizedIris(t)
	p := pca.New(2)
	ref, err := p.FitTransform(Z)
	require.NoError(t, err)

	p.Components().Set(0, 0, 42)
	p.EigenPairs()[0].Vector[0] = 42
	evr := p.ExplainedVarianceRatio()
	evr[0] = 42

	again, err := p.Transform(Z)
	require.NoError(t, err)
	assert.InDelta(t, ref.At(0, 0), again.At(0, 0), 1e-12, "model must be unaffected by accessor mutation")
	assert.NotEqual(t, 42.0, p.ExplainedVarianceRatio()[0])
}

// TestPCA_PreservesPairwiseGeometry verifies that with k == M the
// projection is a rotation: pairwise distances are preserved.
func TestPCA_PreservesPairwiseGeometry(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	Z, err := scale.NewStandardScaler().FitTransform(X)
	require.NoError(t, err)

	reduced, err := pca.New(2).FitTransform(Z)
	require.NoError(t, err)

	dist := func(m *mat.Dense, a, b int) float64 {
		dx := m.At(a, 0) - m.At(b, 0)
		dy := m.At(a, 1) - m.At(b, 1)

		return dx*dx + dy*dy
	}
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			assert.InDelta(t, dist(Z, a, b), dist(reduced, a, b), 1e-9,
				"full-rank projection must preserve distances (%d,%d)", a, b)
		}
	}
}
