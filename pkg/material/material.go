// Package material implement compiled materials and their optical property tables.
package material

import (
	"github.com/google/uuid"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/pkg/element"
)

// Reference conditions used for every compiled material.
const (
	// NTPTemperature in kelvins.
	NTPTemperature = 293.15
	// STPPressure in atmospheres.
	STPPressure = 1.0

	avogadro = 6.02214076e23
)

type fillMode int

const (
	fillUnset fillMode = iota
	fillMassFraction
	fillAtomCount
)

// Component is single element of material.
type Component struct {
	Element      *element.Element `json:"element"`
	MassFraction float64          `json:"massFraction"`
	// Atoms is atom multiplicity, 0 for materials defined by mass fractions.
	Atoms int `json:"atoms,omitempty"`
}

// Material is a realized material, ready to be used by geometry construction.
type Material struct {
	// InstanceID differs between two compilations of the same declaration.
	InstanceID uuid.UUID `json:"instanceId"`
	Name       string    `json:"name"`
	// Density in g/cm3.
	Density float64 `json:"density"`
	State   State   `json:"state"`
	// Temperature in K.
	Temperature float64 `json:"temperature"`
	// Pressure in atm.
	Pressure float64 `json:"pressure"`
	// MeanExcitationEnergy in eV, 0 if not set explicitly.
	MeanExcitationEnergy float64        `json:"meanExcitationEnergy,omitempty"`
	Components           []Component    `json:"components"`
	Properties           *PropertyTable `json:"properties,omitempty"`

	nComponents int
	mode        fillMode
}

// New creates material shell, which expects nComponents elements.
func New(name string, density float64, nComponents int, state State, temperature, pressure float64) *Material {
	return &Material{
		InstanceID:  uuid.New(),
		Name:        name,
		Density:     density,
		State:       state,
		Temperature: temperature,
		Pressure:    pressure,
		Components:  make([]Component, 0, nComponents),
		nComponents: nComponents,
	}
}

// AddElementByMassFraction ...
func (m *Material) AddElementByMassFraction(el *element.Element, fraction float64) error {
	if err := m.checkAdd(el, fillMassFraction); err != nil {
		return err
	}
	if fraction < 0 {
		return errors.MaterialError(
			m.Name, errors.ErrInvalidComponent, "negative mass fraction %f of %s", fraction, el.Symbol,
		)
	}
	m.Components = append(m.Components, Component{Element: el, MassFraction: fraction})
	if m.Complete() {
		m.fill()
	}
	return nil
}

// AddElementByAtomCount ...
func (m *Material) AddElementByAtomCount(el *element.Element, atoms int) error {
	if err := m.checkAdd(el, fillAtomCount); err != nil {
		return err
	}
	if atoms <= 0 {
		return errors.MaterialError(
			m.Name, errors.ErrInvalidComponent, "atom count of %s must be positive, got %d", el.Symbol, atoms,
		)
	}
	m.Components = append(m.Components, Component{Element: el, Atoms: atoms})
	if m.Complete() {
		m.fill()
	}
	return nil
}

func (m *Material) checkAdd(el *element.Element, mode fillMode) error {
	if el == nil {
		return errors.MaterialError(m.Name, errors.ErrUnresolvedElement, "nil element")
	}
	if m.Complete() {
		return errors.MaterialError(
			m.Name, errors.ErrInvalidComponent, "only %d components declared", m.nComponents,
		)
	}
	if m.mode != fillUnset && m.mode != mode {
		return errors.MaterialError(
			m.Name, errors.ErrMixedComponentModes, "can't mix mass fractions and atom counts",
		)
	}
	m.mode = mode
	return nil
}

// Complete returns true, if all declared components were added.
func (m *Material) Complete() bool {
	return len(m.Components) >= m.nComponents
}

func (m *Material) fill() {
	sum := 0.0
	switch m.mode {
	case fillAtomCount:
		for _, c := range m.Components {
			sum += float64(c.Atoms) * c.Element.A
		}
		for i, c := range m.Components {
			m.Components[i].MassFraction = float64(c.Atoms) * c.Element.A / sum
		}
	case fillMassFraction:
		for _, c := range m.Components {
			sum += c.MassFraction
		}
		if sum > 0 {
			for i := range m.Components {
				m.Components[i].MassFraction /= sum
			}
		}
	}
}

// Elements returns elements in order of insertion.
func (m *Material) Elements() []*element.Element {
	elements := make([]*element.Element, 0, len(m.Components))
	for _, c := range m.Components {
		elements = append(elements, c.Element)
	}
	return elements
}

// MassFractions returns normalized mass fraction of each component.
func (m *Material) MassFractions() []float64 {
	fractions := make([]float64, 0, len(m.Components))
	for _, c := range m.Components {
		fractions = append(fractions, c.MassFraction)
	}
	return fractions
}

// AtomCounts returns atom multiplicities, nil for materials defined by mass fractions.
func (m *Material) AtomCounts() []int {
	if m.mode != fillAtomCount {
		return nil
	}
	counts := make([]int, 0, len(m.Components))
	for _, c := range m.Components {
		counts = append(counts, c.Atoms)
	}
	return counts
}

// AtomDensities returns number of atoms per cm3 of each component.
func (m *Material) AtomDensities() []float64 {
	densities := make([]float64, 0, len(m.Components))
	for _, c := range m.Components {
		densities = append(densities, avogadro*m.Density*c.MassFraction/c.Element.A)
	}
	return densities
}

// PropertyTable returns attached optical property table, nil if none.
func (m *Material) PropertyTable() *PropertyTable {
	return m.Properties
}

// SetPropertyTable ...
func (m *Material) SetPropertyTable(table *PropertyTable) {
	m.Properties = table
}
