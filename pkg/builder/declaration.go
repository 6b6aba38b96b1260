package builder

import (
	"github.com/yaptide/materials/pkg/material"
)

// Mode is way components of a declaration are quantified.
type Mode int

const (
	// ModeUnset no component added yet.
	ModeUnset Mode = iota
	// ModeWeight components are weight fractions.
	ModeWeight
	// ModeAtomCount components are atom multiplicities.
	ModeAtomCount
)

var mapModeToString = map[Mode]string{
	ModeUnset:     "unset",
	ModeWeight:    "weight",
	ModeAtomCount: "atoms",
}

// String ...
func (m Mode) String() string {
	return mapModeToString[m]
}

// IsotopeAbundance is isotope given by mass number with its abundance.
// Abundances of one component are normalized, so any positive unit works.
type IsotopeAbundance struct {
	A         int     `json:"a" yaml:"a" validate:"gt=0"`
	Abundance float64 `json:"abundance" yaml:"abundance" validate:"gte=0"`
}

// Component is one element of a declaration.
type Component struct {
	Z int `json:"z"`
	// Weight is weight fraction, atom count in ModeAtomCount or raw abundance sum for isotope lists.
	Weight   float64            `json:"weight"`
	Isotopes []IsotopeAbundance `json:"isotopes,omitempty"`
}

// Declaration is static description of a material.
type Declaration struct {
	Name    string         `json:"name"`
	Formula string         `json:"formula"`
	Density float64        `json:"density"`
	State   material.State `json:"state"`
	// STP if false, material is meant for non reference conditions. Compilation always uses NTP/STP.
	STP bool `json:"stp"`
	// Potential is mean excitation energy in eV, 0 to let host compute it.
	Potential  float64 `json:"potential,omitempty"`
	Isotopic   bool    `json:"isotopic"`
	Optical    bool    `json:"optical"`
	Components int     `json:"components"`
	Mode       Mode    `json:"-"`

	entries []Component
}

// Complete returns true, if all declared components were added.
func (d *Declaration) Complete() bool {
	return len(d.entries) == d.Components
}

// Entries returns copy of added components.
func (d *Declaration) Entries() []Component {
	res := make([]Component, len(d.entries))
	for i, entry := range d.entries {
		res[i] = entry
		res[i].Isotopes = append([]IsotopeAbundance(nil), entry.Isotopes...)
	}
	return res
}

// WeightFractions returns weights of components. In ModeWeight those are normalized
// once the declaration is complete.
func (d *Declaration) WeightFractions() []float64 {
	res := make([]float64, len(d.entries))
	for i, entry := range d.entries {
		res[i] = entry.Weight
	}
	return res
}

func (d *Declaration) normalize() {
	if d.Mode != ModeWeight {
		return
	}
	sum := 0.0
	for _, entry := range d.entries {
		sum += entry.Weight
	}
	if sum == 0 {
		return
	}
	for i := range d.entries {
		d.entries[i].Weight /= sum
	}
}

// DeclarationOption modifies optional declaration parameters.
type DeclarationOption func(*Declaration)

// Isotopic marks material as built from explicit isotope lists.
func Isotopic() DeclarationOption {
	return func(d *Declaration) { d.Isotopic = true }
}

// Optical marks material as optical, its property table is compiled from registered dataset.
func Optical() DeclarationOption {
	return func(d *Declaration) { d.Optical = true }
}

// WithState ...
func WithState(state material.State) DeclarationOption {
	return func(d *Declaration) { d.State = state }
}

// WithSTP ...
func WithSTP(stp bool) DeclarationOption {
	return func(d *Declaration) { d.STP = stp }
}

// WithPotential sets mean excitation energy in eV.
func WithPotential(potential float64) DeclarationOption {
	return func(d *Declaration) { d.Potential = potential }
}
