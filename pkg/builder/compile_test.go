package builder

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/material"
	"github.com/yaptide/materials/test"
	"github.com/yaptide/materials/validate"
)

type composition struct {
	Name      string
	Density   float64
	State     material.State
	Symbols   []string
	Fractions []float64
	Atoms     []int
	Isotopes  [][]element.IsotopeFraction
}

func compositionOf(m *material.Material) composition {
	c := composition{
		Name:      m.Name,
		Density:   m.Density,
		State:     m.State,
		Fractions: m.MassFractions(),
		Atoms:     m.AtomCounts(),
	}
	for _, el := range m.Elements() {
		c.Symbols = append(c.Symbols, el.Symbol)
		c.Isotopes = append(c.Isotopes, el.Isotopes)
	}
	return c
}

func declareWater(t *testing.T, b *Builder) {
	t.Helper()
	require.NoError(t, b.BeginMaterial("A", "H2O", 1.0, 2))
	require.NoError(t, b.AddElementByAtomCount(element.Z(1), 2))
	require.NoError(t, b.AddElementByAtomCount(element.Z(8), 1))
}

func TestCompileAtomCount(t *testing.T) {
	b := newTestBuilder(t)
	declareWater(t, b)

	m, err := b.Compile("A")
	require.NoError(t, err)
	assert.Equal(t, "A", m.Name)
	assert.Equal(t, 1.0, m.Density)
	assert.Equal(t, material.NTPTemperature, m.Temperature)
	assert.Equal(t, material.STPPressure, m.Pressure)
	assert.Nil(t, m.PropertyTable())

	require.Len(t, m.Elements(), 2)
	assert.Equal(t, "H", m.Elements()[0].Symbol)
	assert.Equal(t, "O", m.Elements()[1].Symbol)
	assert.Equal(t, []int{2, 1}, m.AtomCounts())
	densities := m.AtomDensities()
	assert.InDelta(t, 2.0, densities[0]/densities[1], 1e-9)
	assert.True(t, validate.Normalized(m.MassFractions()))
}

func TestCompileIsPure(t *testing.T) {
	b := newTestBuilder(t)
	declareWater(t, b)
	require.NoError(t, b.BeginMaterial("HeavyWater", "D2O", 1.1044, 2, Isotopic()))
	require.NoError(t, b.AddElementByIsotopes(element.Z(8), []IsotopeAbundance{
		{A: 16, Abundance: 0.796703}, {A: 17, Abundance: 0.000323}, {A: 18, Abundance: 0.001842},
	}))
	require.NoError(t, b.AddElementByIsotopes(element.Z(1), []IsotopeAbundance{{A: 2, Abundance: 0.201133}}))

	for _, name := range b.Names() {
		t.Run(name, func(t *testing.T) {
			first, err := b.Compile(name)
			require.NoError(t, err)
			second, err := b.Compile(name)
			require.NoError(t, err)

			assert.NotSame(t, first, second)
			assert.NotEqual(t, first.InstanceID, second.InstanceID)
			if diff := test.DiffModel(t, compositionOf(first), compositionOf(second)); diff != "" {
				t.Errorf("compilations differ\n%s", diff)
			}
		})
	}
}

func TestCompileIsotopic(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.BeginMaterial("HEU", "HEU", 18.724, 1, Isotopic(), WithPotential(890)))
	require.NoError(t, b.AddElementByIsotopes(element.Symbol("U"), []IsotopeAbundance{
		{A: 234, Abundance: 0.00980},
		{A: 235, Abundance: 0.93155},
		{A: 236, Abundance: 0.00450},
		{A: 238, Abundance: 0.05415},
	}))

	m, err := b.Compile("HEU")
	require.NoError(t, err)
	assert.Equal(t, 890.0, m.MeanExcitationEnergy)
	require.Len(t, m.Elements(), 1)

	uranium := m.Elements()[0]
	assert.Equal(t, "Uranium", uranium.Name)
	assert.Equal(t, "U", uranium.Symbol)
	assert.Equal(t, 92, uranium.Z)
	require.Len(t, uranium.Isotopes, 4)

	names := []string{}
	abundances := []float64{}
	for _, iso := range uranium.Isotopes {
		names = append(names, iso.Isotope.Name)
		abundances = append(abundances, iso.Abundance)
		assert.Equal(t, 92, iso.Isotope.Z)
		assert.Greater(t, iso.Isotope.A, 233.0)
	}
	assert.Equal(t, []string{"U-234", "U-235", "U-236", "U-238"}, names)
	assert.True(t, validate.Normalized(abundances))
	assert.InDelta(t, 0.93155/0.99999, abundances[1], 1e-9)
	assert.InDelta(t, 235.2014, uranium.A, 1e-3)
	assert.Equal(t, []float64{1}, m.MassFractions())
}

func TestCompileErrors(t *testing.T) {
	type testCase struct {
		Declare     func(t *testing.T, b *Builder)
		ExpectedErr error
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		b := newTestBuilder(t)
		if tc.Declare != nil {
			tc.Declare(t, b)
		}
		reason := compileErrorsTotal.WithLabelValues(tc.ExpectedErr.Error())
		before := testutil.ToFloat64(reason)

		m, err := b.Compile("A")
		assert.Nil(t, m)
		assert.ErrorIs(t, err, tc.ExpectedErr)
		assert.Equal(t, before+1, testutil.ToFloat64(reason))
	}

	t.Run("UnknownName", func(t *testing.T) {
		check(t, testCase{ExpectedErr: errors.ErrUnknownMaterialName})
	})

	t.Run("Incomplete", func(t *testing.T) {
		check(t, testCase{
			Declare: func(t *testing.T, b *Builder) {
				require.NoError(t, b.BeginMaterial("A", "", 1.0, 2))
				require.NoError(t, b.AddElementByAtomCount(element.Z(1), 2))
			},
			ExpectedErr: errors.ErrIncompleteDeclaration,
		})
	})

	t.Run("UnresolvedElement", func(t *testing.T) {
		check(t, testCase{
			Declare: func(t *testing.T, b *Builder) {
				require.NoError(t, b.BeginMaterial("A", "", 1.0, 1))
				require.NoError(t, b.AddElementByAtomCount(element.Z(117), 1))
			},
			ExpectedErr: errors.ErrUnresolvedElement,
		})
	})

	t.Run("UnresolvedIsotope", func(t *testing.T) {
		check(t, testCase{
			Declare: func(t *testing.T, b *Builder) {
				require.NoError(t, b.BeginMaterial("A", "", 1.0, 1, Isotopic()))
				require.NoError(t, b.AddElementByIsotopes(element.Z(92), []IsotopeAbundance{{A: 300, Abundance: 1}}))
			},
			ExpectedErr: errors.ErrUnresolvedIsotope,
		})
	})

	t.Run("OpticalWithoutDataset", func(t *testing.T) {
		check(t, testCase{
			Declare: func(t *testing.T, b *Builder) {
				require.NoError(t, b.BeginMaterial("A", "", 1.0, 1, Optical()))
				require.NoError(t, b.AddElementByAtomCount(element.Z(1), 1))
			},
			ExpectedErr: errors.ErrUnknownMaterialName,
		})
	})
}

func TestCompileCountsKinds(t *testing.T) {
	b := newTestBuilder(t)
	declareWater(t, b)

	counter := compiledTotal.WithLabelValues(KindElemental)
	before := testutil.ToFloat64(counter)
	_, err := b.Compile("A")
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestCompileAll(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		b := newTestBuilder(t)
		declareWater(t, b)
		require.NoError(t, b.BeginMaterial("B", "", 2.0, 1))
		require.NoError(t, b.AddElementByWeight(element.Symbol("Fe"), 1))

		materials, err := b.CompileAll(context.Background())
		require.NoError(t, err)
		require.Len(t, materials, 2)
		assert.Equal(t, "A", materials[0].Name)
		assert.Equal(t, "B", materials[1].Name)
	})

	t.Run("FirstErrorReturned", func(t *testing.T) {
		b := newTestBuilder(t)
		declareWater(t, b)
		require.NoError(t, b.BeginMaterial("B", "", 2.0, 1))
		require.NoError(t, b.AddElementByAtomCount(element.Z(117), 1))

		materials, err := b.CompileAll(context.Background())
		assert.Nil(t, materials)
		assert.ErrorIs(t, err, errors.ErrUnresolvedElement)
	})

	t.Run("Cancelled", func(t *testing.T) {
		b := newTestBuilder(t)
		declareWater(t, b)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := b.CompileAll(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
