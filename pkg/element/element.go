// Package element implement elements and isotopes consumed by material builder.
package element

import (
	"fmt"
	"strconv"

	"github.com/yaptide/materials/errors"
)

// Isotope is a single nuclide.
type Isotope struct {
	Name string `json:"name"`
	Z    int    `json:"z"`
	// N is mass number.
	N int `json:"n"`
	// A is atomic mass in g/mole.
	A float64 `json:"a"`
}

// IsotopeFraction isotope with its relative abundance in element.
type IsotopeFraction struct {
	Isotope   Isotope `json:"isotope"`
	Abundance float64 `json:"abundance"`
}

// Element is chemical element, optionally with explicit isotope composition.
type Element struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Z      int    `json:"z"`
	// A is molar mass in g/mole.
	A float64 `json:"a"`
	// MeanExcitationEnergy in eV, 0 if unknown.
	MeanExcitationEnergy float64           `json:"meanExcitationEnergy,omitempty"`
	Isotopes             []IsotopeFraction `json:"isotopes,omitempty"`

	nIsotopes int
}

// NewElement creates element, which will be assembled from nIsotopes isotopes
// added with AddIsotope.
func NewElement(name, symbol string, nIsotopes int) *Element {
	return &Element{
		Name:      name,
		Symbol:    symbol,
		Isotopes:  make([]IsotopeFraction, 0, nIsotopes),
		nIsotopes: nIsotopes,
	}
}

// IsotopeName returns "<symbol>-<massNumber>".
func IsotopeName(symbol string, n int) string {
	return symbol + "-" + strconv.Itoa(n)
}

// AddIsotope adds isotope with abundance given in percent.
// Adding the last declared isotope normalizes abundances and fixes Z and A.
func (e *Element) AddIsotope(iso Isotope, abundancePercent float64) error {
	if e.Complete() {
		return errors.ElementError(
			e.Name, errors.ErrInvalidComponent,
			"only %d isotopes declared, can't add %s", e.nIsotopes, iso.Name,
		)
	}
	if len(e.Isotopes) > 0 && e.Isotopes[0].Isotope.Z != iso.Z {
		return errors.ElementError(
			e.Name, errors.ErrInvalidComponent,
			"isotope %s has Z=%d, element has Z=%d", iso.Name, iso.Z, e.Isotopes[0].Isotope.Z,
		)
	}
	if abundancePercent < 0 {
		return errors.ElementError(
			e.Name, errors.ErrInvalidComponent, "negative abundance %f of %s", abundancePercent, iso.Name,
		)
	}
	e.Isotopes = append(e.Isotopes, IsotopeFraction{Isotope: iso, Abundance: abundancePercent / 100})
	if e.Complete() {
		e.fill()
	}
	return nil
}

// Complete returns true, if all declared isotopes were added.
func (e *Element) Complete() bool {
	return len(e.Isotopes) >= e.nIsotopes
}

func (e *Element) fill() {
	sum := 0.0
	for _, iso := range e.Isotopes {
		sum += iso.Abundance
	}
	if sum > 0 {
		for i := range e.Isotopes {
			e.Isotopes[i].Abundance /= sum
		}
	}
	e.A = 0
	for _, iso := range e.Isotopes {
		e.A += iso.Abundance * iso.Isotope.A
	}
	if len(e.Isotopes) > 0 {
		e.Z = e.Isotopes[0].Isotope.Z
	}
}

// String ...
func (e *Element) String() string {
	return fmt.Sprintf("%s(Z=%d, A=%.4f g/mole)", e.Symbol, e.Z, e.A)
}

// Provider resolves elements and isotopes.
type Provider interface {
	// AtomicNumber resolves element symbol or name.
	AtomicNumber(symbolOrName string) (int, error)
	// FindOrBuildElement returns nil, if there is no element with given Z.
	FindOrBuildElement(z int) *Element
	// IsotopeMass returns atomic mass in g/mole, 0 if isotope is unknown.
	IsotopeMass(z, n int) float64
}

// Ref references element either by atomic number or by symbol/name.
type Ref struct {
	z    int
	name string
}

// Z reference element by atomic number.
func Z(z int) Ref {
	return Ref{z: z}
}

// Symbol reference element by symbol or name, e.g. "La" or "Lanthanum".
func Symbol(symbolOrName string) Ref {
	return Ref{name: symbolOrName}
}

// Resolve returns atomic number of referenced element.
func (r Ref) Resolve(p Provider) (int, error) {
	if r.name == "" {
		if r.z <= 0 {
			return 0, errors.ElementError(
				r.String(), errors.ErrUnresolvedElement, "atomic number must be positive",
			)
		}
		return r.z, nil
	}
	return p.AtomicNumber(r.name)
}

// String ...
func (r Ref) String() string {
	if r.name != "" {
		return r.name
	}
	return "Z=" + strconv.Itoa(r.z)
}
