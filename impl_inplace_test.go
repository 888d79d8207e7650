// Package matrix_test contains unit tests for the in-place mutation surface:
// Assign, SetData, Apply, Randomize, Fill and Zero.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeitfall/matrix"
)

// ---------- Assign ----------

// TestAssignCopiesWithoutAliasing verifies the deep-copy contract of Assign.
func TestAssignCopiesWithoutAliasing(t *testing.T) {
	src := FromRows(t, [][]float64{
		{1, 2},
		{3, 4},
	})
	dst := MustDense(t, 2, 2)

	ret, err := dst.Assign(src)
	require.NoError(t, err)
	require.Same(t, dst, ret) // chaining contract: the receiver comes back
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, dst)

	// Mutating the source must not leak into the destination (no aliasing).
	MustSet(t, src, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, dst, 0, 0))
}

// TestAssignShapeMismatchLeavesReceiverUntouched pins the
// reject-and-leave-unmodified contract via a before/after snapshot.
func TestAssignShapeMismatchLeavesReceiverUntouched(t *testing.T) {
	dst := FromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	snapshot := dst.Clone() // shape 2x3

	_, err := dst.Assign(MustDense(t, 3, 2)) // 2x3 vs 3x2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "2x3 vs 3x2") // both shapes reported
	require.True(t, dst.Equal(snapshot))        // not a single element moved
}

// TestAssignNil ensures a nil source is rejected with ErrNilMatrix.
func TestAssignNil(t *testing.T) {
	dst := MustDense(t, 2, 2)

	_, err := dst.Assign(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- SetData ----------

// TestSetDataCopiesBuffer verifies a well-sized raw buffer is copied in.
func TestSetDataCopiesBuffer(t *testing.T) {
	m := MustDense(t, 2, 3)
	buf := []float64{1, 2, 3, 4, 5, 6}

	ret, err := m.SetData(buf)
	require.NoError(t, err)
	require.Same(t, m, ret)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	// The caller's slice must not be retained.
	buf[0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestSetDataLengthMismatch pins the strict-length contract: a raw buffer
// whose length disagrees with rows*cols is rejected exactly like a
// shape-bearing mismatch, and neither buffer nor shape metadata move.
func TestSetDataLengthMismatch(t *testing.T) {
	m := FromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	snapshot := m.Clone()

	for _, tc := range []struct {
		name string
		buf  []float64
	}{
		{"too short", []float64{1, 2, 3}},
		{"too long", make([]float64, 9)},
		{"empty", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.SetData(tc.buf)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			require.Equal(t, 2, m.Rows()) // shape metadata never drifts
			require.Equal(t, 3, m.Cols())
			require.True(t, m.Equal(snapshot)) // buffer untouched
		})
	}
}

// TestIngestionNumericPolicy verifies the finite-only guard on SetData and
// Assign, including the all-or-nothing scan-before-write behavior.
func TestIngestionNumericPolicy(t *testing.T) {
	t.Run("SetData rejects and leaves state", func(t *testing.T) {
		m := MustDense(t, 1, 3, matrix.WithValidateNaNInf())
		_, err := m.SetData([]float64{1, 2, 3})
		require.NoError(t, err)

		_, err = m.SetData([]float64{4, math.NaN(), 6})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		CompareExact(t, [][]float64{{1, 2, 3}}, m) // nothing written, not even index 0
	})

	t.Run("Assign rejects non-finite source", func(t *testing.T) {
		src := MustDense(t, 1, 2)
		require.NoError(t, src.Set(0, 1, math.Inf(1))) // src itself has no policy

		dst := MustDense(t, 1, 2, matrix.WithValidateNaNInf())
		_, err := dst.Assign(src)
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})

	t.Run("default lets non-finite through", func(t *testing.T) {
		m := MustDense(t, 1, 2)
		_, err := m.SetData([]float64{math.NaN(), math.Inf(-1)})
		require.NoError(t, err)
	})
}

// ---------- Apply ----------

// TestApplyFlatIndexOrder verifies the transform sees values paired with
// their flat row-major indices, applied eagerly in increasing order.
func TestApplyFlatIndexOrder(t *testing.T) {
	m := FromRows(t, [][]float64{
		{10, 20, 30},
		{40, 50, 60},
	})

	var seen []int
	ret := m.Apply(func(v float64, i int) float64 {
		seen = append(seen, i)
		return v + float64(i)
	})

	require.Same(t, m, ret)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, seen) // strictly increasing flat order
	CompareExact(t, [][]float64{{10, 21, 32}, {43, 54, 65}}, m)
}

// TestApplyStoresNonFinite ensures transforms are not gated by the ingestion
// policy: arithmetic results propagate, NaN included.
func TestApplyStoresNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1, matrix.WithValidateNaNInf())
	m.Apply(func(v float64, i int) float64 { return math.NaN() })

	require.True(t, math.IsNaN(MustAt(t, m, 0, 0)))
}

// ---------- Randomize ----------

// TestRandomizeRange checks every element lands in [0,1) and that the fill
// actually replaces prior contents.
func TestRandomizeRange(t *testing.T) {
	m := MustDense(t, 8, 8, matrix.WithRand(rand.New(rand.NewSource(testSeed))))
	m.Fill(-1) // sentinel contents outside [0,1)

	ret := m.Randomize()
	require.Same(t, m, ret)

	m.Do(func(i, j int, v float64) bool {
		require.GreaterOrEqualf(t, v, 0.0, "element [%d,%d] below range", i, j)
		require.Lessf(t, v, 1.0, "element [%d,%d] above range", i, j)
		require.NotEqualf(t, -1.0, v, "element [%d,%d] was not overwritten", i, j)
		return true
	})
}

// TestRandomizeSeededReproducibility verifies WithRand makes Randomize a
// pure function of the seed, and that repeated calls keep drawing.
func TestRandomizeSeededReproducibility(t *testing.T) {
	a := MustDense(t, 4, 5, matrix.WithRand(rand.New(rand.NewSource(testSeed)))).Randomize()
	b := MustDense(t, 4, 5, matrix.WithRand(rand.New(rand.NewSource(testSeed)))).Randomize()
	require.True(t, a.Equal(b)) // same seed, same stream, same matrix

	before := a.Clone()
	a.Randomize()                    // next draw from the same stream
	require.False(t, a.Equal(before)) // 20 fresh U[0,1) doubles colliding is impossible in practice
}

// ---------- Fill / Zero ----------

// TestFillZeroChaining exercises the bulk writers and the chaining contract.
func TestFillZeroChaining(t *testing.T) {
	m := MustDense(t, 2, 2)

	CompareExact(t, [][]float64{{3.5, 3.5}, {3.5, 3.5}}, m.Fill(3.5))
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, m.Zero())
}
