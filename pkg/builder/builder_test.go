package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/material"
	"github.com/yaptide/materials/validate"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	provider, err := element.NewNistProvider()
	require.NoError(t, err)
	return New(provider)
}

func TestBeginMaterial(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "H2O", 1.0, 2))

		decl, found := b.Declaration("A")
		require.True(t, found)
		assert.Equal(t, "H2O", decl.Formula)
		assert.Equal(t, material.Solid, decl.State)
		assert.True(t, decl.STP)
		assert.False(t, decl.Isotopic)
		assert.False(t, decl.Optical)
		assert.Equal(t, 0.0, decl.Potential)
		assert.Equal(t, ModeUnset, decl.Mode)
		assert.False(t, decl.Complete())
	})

	t.Run("Options", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 1,
			Isotopic(), Optical(), WithState(material.Gas), WithSTP(false), WithPotential(85.7),
		))

		decl, _ := b.Declaration("A")
		assert.True(t, decl.Isotopic)
		assert.True(t, decl.Optical)
		assert.Equal(t, material.Gas, decl.State)
		assert.False(t, decl.STP)
		assert.Equal(t, 85.7, decl.Potential)
		assert.Equal(t, []string{"A"}, b.OpticalNames())
	})

	t.Run("Invalid", func(t *testing.T) {
		type testCase struct {
			Name        string
			Density     float64
			Components  int
			ExpectedErr error
		}

		check := func(t *testing.T, tc testCase) {
			t.Helper()
			b := newTestBuilder(t)
			err := b.BeginMaterial(tc.Name, "", tc.Density, tc.Components)
			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.Empty(t, b.Names())
		}

		check(t, testCase{Name: "", Density: 1, Components: 1, ExpectedErr: errors.ErrInvalidDeclaration})
		check(t, testCase{Name: "A", Density: 0, Components: 1, ExpectedErr: errors.ErrInvalidDeclaration})
		check(t, testCase{Name: "A", Density: 1, Components: 0, ExpectedErr: errors.ErrInvalidDeclaration})
	})

	t.Run("Duplicate", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 1))
		require.NoError(t, b.AddElementByAtomCount(element.Z(1), 2))
		assert.ErrorIs(t, b.BeginMaterial("A", "", 2.0, 1), errors.ErrDuplicateMaterial)
	})

	t.Run("PreviousIncomplete", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 2))
		require.NoError(t, b.AddElementByAtomCount(element.Z(1), 2))
		assert.ErrorIs(t, b.BeginMaterial("B", "", 1.0, 1), errors.ErrIncompleteDeclaration)
		assert.Equal(t, []string{"A"}, b.Names())
	})
}

func TestAddElement(t *testing.T) {
	t.Run("NoOpenDeclaration", func(t *testing.T) {
		b := newTestBuilder(t)
		assert.ErrorIs(t, b.AddElementByWeight(element.Z(1), 1), errors.ErrNoOpenDeclaration)
	})

	t.Run("DeclarationComplete", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 1))
		require.NoError(t, b.AddElementByAtomCount(element.Symbol("H"), 2))
		assert.ErrorIs(t, b.AddElementByAtomCount(element.Symbol("O"), 1), errors.ErrNoOpenDeclaration)
	})

	t.Run("UnknownSymbol", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 1))
		assert.ErrorIs(t, b.AddElementByWeight(element.Symbol("Xx"), 1), errors.ErrUnresolvedElement)
		assert.NoError(t, b.AddElementByWeight(element.Symbol("Hydrogen"), 1))
	})

	t.Run("MixedModes", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 2))
		require.NoError(t, b.AddElementByAtomCount(element.Z(1), 2))
		assert.ErrorIs(t, b.AddElementByWeight(element.Z(8), 0.5), errors.ErrMixedComponentModes)
	})

	t.Run("InvalidQuantities", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 1))
		assert.ErrorIs(t, b.AddElementByWeight(element.Z(1), -0.1), errors.ErrInvalidComponent)
		assert.ErrorIs(t, b.AddElementByAtomCount(element.Z(1), 0), errors.ErrInvalidComponent)
		assert.ErrorIs(t, b.AddElementByIsotopes(element.Z(1), []IsotopeAbundance{{A: 2, Abundance: 1}}),
			errors.ErrInvalidComponent)
	})

	t.Run("InvalidIsotopes", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 1, Isotopic()))
		assert.ErrorIs(t, b.AddElementByIsotopes(element.Z(1), nil), errors.ErrInvalidComponent)
		assert.ErrorIs(t, b.AddElementByIsotopes(element.Z(1), []IsotopeAbundance{{A: 2, Abundance: 0}}),
			errors.ErrInvalidComponent)
		assert.ErrorIs(t, b.AddElementByIsotopes(element.Z(1), []IsotopeAbundance{{A: 0, Abundance: 1}}),
			errors.ErrInvalidComponent)
		assert.ErrorIs(t, b.AddElementByIsotopes(element.Z(1), []IsotopeAbundance{{A: 2, Abundance: -1}}),
			errors.ErrInvalidComponent)
	})
}

func TestWeightNormalization(t *testing.T) {
	type testCase struct {
		Weights  []float64
		Expected []float64
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, len(tc.Weights)))
		for i, w := range tc.Weights {
			require.NoError(t, b.AddElementByWeight(element.Z(i+1), w))
		}
		decl, _ := b.Declaration("A")
		assert.True(t, decl.Complete())
		assert.Equal(t, ModeWeight, decl.Mode)
		actual := decl.WeightFractions()
		require.Len(t, actual, len(tc.Expected))
		for i := range tc.Expected {
			assert.InDelta(t, tc.Expected[i], actual[i], 1e-12)
		}
	}

	t.Run("Percent", func(t *testing.T) {
		check(t, testCase{Weights: []float64{20, 30, 50}, Expected: []float64{0.2, 0.3, 0.5}})
	})

	t.Run("AlreadyNormalized", func(t *testing.T) {
		check(t, testCase{Weights: []float64{0.25, 0.75}, Expected: []float64{0.25, 0.75}})
	})

	t.Run("ZeroSum", func(t *testing.T) {
		check(t, testCase{Weights: []float64{0, 0}, Expected: []float64{0, 0}})
	})

	t.Run("NotNormalizedBeforeComplete", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.BeginMaterial("A", "", 1.0, 2))
		require.NoError(t, b.AddElementByWeight(element.Z(1), 20))
		decl, _ := b.Declaration("A")
		assert.Equal(t, []float64{20}, decl.WeightFractions())
	})
}

func TestAtomCountsNotNormalized(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.BeginMaterial("A", "", 1.0, 2))
	require.NoError(t, b.AddElementByAtomCount(element.Z(1), 2))
	require.NoError(t, b.AddElementByAtomCount(element.Z(8), 1))

	decl, _ := b.Declaration("A")
	assert.Equal(t, ModeAtomCount, decl.Mode)
	assert.Equal(t, []float64{2, 1}, decl.WeightFractions())
}

func TestIsotopeAbundancesNormalized(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.BeginMaterial("A", "", 1.0, 1, Isotopic()))
	input := []IsotopeAbundance{{A: 235, Abundance: 90}, {A: 238, Abundance: 10}}
	require.NoError(t, b.AddElementByIsotopes(element.Symbol("U"), input))

	decl, _ := b.Declaration("A")
	entries := decl.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 92, entries[0].Z)

	abundances := []float64{}
	for _, iso := range entries[0].Isotopes {
		abundances = append(abundances, iso.Abundance)
	}
	assert.True(t, validate.Normalized(abundances))
	assert.Equal(t, []float64{0.9, 0.1}, abundances)
	assert.Equal(t, 90.0, input[0].Abundance)
	// single component weight is renormalized to 1
	assert.Equal(t, []float64{1}, decl.WeightFractions())
}

func TestDeclarationIsCopy(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.BeginMaterial("A", "", 1.0, 1, Isotopic()))
	require.NoError(t, b.AddElementByIsotopes(element.Z(1), []IsotopeAbundance{{A: 2, Abundance: 1}}))

	decl, _ := b.Declaration("A")
	decl.Density = 5
	decl.Entries()[0].Isotopes[0].A = 3

	again, _ := b.Declaration("A")
	assert.Equal(t, 1.0, again.Density)
	assert.Equal(t, 2, again.Entries()[0].Isotopes[0].A)

	_, found := b.Declaration("B")
	assert.False(t, found)
}
