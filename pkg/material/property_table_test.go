package material

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaptide/materials/errors"
)

func TestPropertyTableAddProperty(t *testing.T) {
	type testCase struct {
		X, Y        []float64
		ExpectedErr error
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		table := NewPropertyTable()
		err := table.AddProperty(RefractiveIndex, tc.X, tc.Y)
		if tc.ExpectedErr != nil {
			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.False(t, table.Has(RefractiveIndex))
			return
		}
		assert.NoError(t, err)
		curve, found := table.Property(RefractiveIndex)
		assert.True(t, found)
		assert.Equal(t, tc.X, curve.X)
		assert.Equal(t, tc.Y, curve.Y)
	}

	t.Run("Valid", func(t *testing.T) {
		check(t, testCase{X: []float64{1, 2, 3}, Y: []float64{1.5, 1.5, 1.6}})
		check(t, testCase{X: []float64{1}, Y: []float64{-1}})
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		check(t, testCase{X: []float64{1, 2}, Y: []float64{1}, ExpectedErr: errors.ErrMalformedCurve})
	})

	t.Run("Empty", func(t *testing.T) {
		check(t, testCase{X: []float64{}, Y: []float64{}, ExpectedErr: errors.ErrMalformedCurve})
	})

	t.Run("NotIncreasing", func(t *testing.T) {
		check(t, testCase{X: []float64{3, 2, 1}, Y: []float64{1, 1, 1}, ExpectedErr: errors.ErrMalformedCurve})
		check(t, testCase{X: []float64{1, 1}, Y: []float64{1, 1}, ExpectedErr: errors.ErrMalformedCurve})
	})
}

func TestPropertyTableCopiesInput(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}
	table := NewPropertyTable()
	require.NoError(t, table.AddProperty(AbsorptionLength, x, y))
	x[0], y[0] = 100, 100

	curve, _ := table.Property(AbsorptionLength)
	assert.Equal(t, []float64{1, 2}, curve.X)
	assert.Equal(t, []float64{3, 4}, curve.Y)
}

func TestPropertyTableKeysAndDump(t *testing.T) {
	table := NewPropertyTable()
	table.AddConstProperty(ResolutionScale, 0.42)
	require.NoError(t, table.AddProperty(AbsorptionLength, []float64{1, 15}, []float64{3, 3}))
	table.AddConstProperty(ResolutionScale, 1.0)

	assert.Equal(t, []string{ResolutionScale, AbsorptionLength}, table.Keys())
	value, found := table.ConstProperty(ResolutionScale)
	assert.True(t, found)
	assert.Equal(t, 1.0, value)
	_, found = table.ConstProperty(ScintillationYield)
	assert.False(t, found)

	buf := &bytes.Buffer{}
	table.Dump(buf)
	expected := "RESOLUTIONSCALE: 1\n" +
		"ABSLENGTH: 2 points\n" +
		"             1            3\n" +
		"            15            3\n"
	assert.Equal(t, expected, buf.String())
}
