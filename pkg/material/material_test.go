package material

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/pkg/element"
)

func hydrogen() *element.Element {
	return &element.Element{Name: "Hydrogen", Symbol: "H", Z: 1, A: 1.0}
}

func oxygen() *element.Element {
	return &element.Element{Name: "Oxygen", Symbol: "O", Z: 8, A: 16.0}
}

func TestMaterialAtomCount(t *testing.T) {
	water := New("water", 1.0, 2, Liquid, NTPTemperature, STPPressure)
	require.NoError(t, water.AddElementByAtomCount(hydrogen(), 2))
	assert.False(t, water.Complete())
	require.NoError(t, water.AddElementByAtomCount(oxygen(), 1))
	assert.True(t, water.Complete())

	assert.Equal(t, []int{2, 1}, water.AtomCounts())
	fractions := water.MassFractions()
	assert.InDelta(t, 2.0/18.0, fractions[0], 1e-12)
	assert.InDelta(t, 16.0/18.0, fractions[1], 1e-12)

	densities := water.AtomDensities()
	assert.InDelta(t, 2.0, densities[0]/densities[1], 1e-9)
}

func TestMaterialMassFraction(t *testing.T) {
	m := New("mix", 2.0, 2, Solid, NTPTemperature, STPPressure)
	require.NoError(t, m.AddElementByMassFraction(hydrogen(), 1))
	require.NoError(t, m.AddElementByMassFraction(oxygen(), 3))

	assert.Nil(t, m.AtomCounts())
	assert.Equal(t, []float64{0.25, 0.75}, m.MassFractions())
	assert.Equal(t, []*element.Element{m.Components[0].Element, m.Components[1].Element}, m.Elements())
}

func TestMaterialAddErrors(t *testing.T) {
	t.Run("Mixed", func(t *testing.T) {
		m := New("mixed", 1.0, 2, Solid, NTPTemperature, STPPressure)
		require.NoError(t, m.AddElementByAtomCount(hydrogen(), 2))
		err := m.AddElementByMassFraction(oxygen(), 0.5)
		assert.ErrorIs(t, err, errors.ErrMixedComponentModes)
	})

	t.Run("TooMany", func(t *testing.T) {
		m := New("one", 1.0, 1, Solid, NTPTemperature, STPPressure)
		require.NoError(t, m.AddElementByMassFraction(hydrogen(), 1))
		err := m.AddElementByMassFraction(oxygen(), 1)
		assert.ErrorIs(t, err, errors.ErrInvalidComponent)
	})

	t.Run("NilElement", func(t *testing.T) {
		m := New("nil", 1.0, 1, Solid, NTPTemperature, STPPressure)
		assert.ErrorIs(t, m.AddElementByAtomCount(nil, 1), errors.ErrUnresolvedElement)
	})

	t.Run("NonPositiveCount", func(t *testing.T) {
		m := New("zero", 1.0, 1, Solid, NTPTemperature, STPPressure)
		assert.ErrorIs(t, m.AddElementByAtomCount(hydrogen(), 0), errors.ErrInvalidComponent)
	})
}

func TestMaterialInstanceID(t *testing.T) {
	first := New("a", 1.0, 1, Solid, NTPTemperature, STPPressure)
	second := New("a", 1.0, 1, Solid, NTPTemperature, STPPressure)
	assert.NotEqual(t, first.InstanceID, second.InstanceID)
}

func TestStateJSON(t *testing.T) {
	for _, state := range []State{NonDefined, Solid, Liquid, Gas} {
		raw, err := json.Marshal(state)
		require.NoError(t, err)

		var decoded State
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, state, decoded)
	}

	var state State
	assert.Error(t, json.Unmarshal([]byte(`"plasma"`), &state))
	assert.Equal(t, "liquid", Liquid.String())
	assert.Equal(t, "undefined", NonDefined.String())
}
