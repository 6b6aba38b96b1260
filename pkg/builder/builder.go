// Package builder accumulates material declarations and compiles them into materials.
package builder

import (
	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/material"
)

// Builder is registry of material declarations and optical datasets.
//
// Declarations are added during single threaded initialization. Once it is finished
// Builder is safe for concurrent compilation.
type Builder struct {
	provider element.Provider

	declarations map[string]*Declaration
	names        []string
	open         *Declaration

	optical      map[string]*OpticalEntry
	opticalNames []string
}

// New creates empty builder resolving elements with provider.
func New(provider element.Provider) *Builder {
	return &Builder{
		provider:     provider,
		declarations: map[string]*Declaration{},
		optical:      map[string]*OpticalEntry{},
	}
}

// BeginMaterial opens new declaration. Exactly components elements must be added
// before next declaration can begin.
func (b *Builder) BeginMaterial(
	name, formula string, density float64, components int, opts ...DeclarationOption,
) error {
	if b.open != nil && !b.open.Complete() {
		return errors.MaterialError(
			b.open.Name, errors.ErrIncompleteDeclaration,
			"%d of %d components added, can't begin %q",
			len(b.open.entries), b.open.Components, name,
		)
	}
	if name == "" {
		return errors.MaterialError(name, errors.ErrInvalidDeclaration, "empty material name")
	}
	if _, found := b.declarations[name]; found {
		return errors.MaterialError(name, errors.ErrDuplicateMaterial, "material already declared")
	}
	if components <= 0 {
		return errors.MaterialError(
			name, errors.ErrInvalidDeclaration, "component count must be positive, got %d", components,
		)
	}
	if density <= 0 {
		return errors.MaterialError(
			name, errors.ErrInvalidDeclaration, "density must be positive, got %g", density,
		)
	}

	decl := &Declaration{
		Name:       name,
		Formula:    formula,
		Density:    density,
		State:      material.Solid,
		STP:        true,
		Components: components,
		entries:    make([]Component, 0, components),
	}
	for _, opt := range opts {
		opt(decl)
	}
	b.declarations[name] = decl
	b.names = append(b.names, name)
	b.open = decl

	log.Debug("material %s (%s) declared, expecting %d components", name, formula, components)
	return nil
}

// AddElementByWeight adds element of given weight fraction to open declaration.
func (b *Builder) AddElementByWeight(ref element.Ref, weight float64) error {
	decl, z, err := b.openComponent(ref)
	if err != nil {
		return err
	}
	if weight < 0 {
		return errors.MaterialError(
			decl.Name, errors.ErrInvalidComponent, "negative weight %g of %s", weight, ref,
		)
	}
	return b.appendComponent(decl, ModeWeight, Component{Z: z, Weight: weight})
}

// AddElementByAtomCount adds element with n atoms per molecule to open declaration.
func (b *Builder) AddElementByAtomCount(ref element.Ref, n int) error {
	decl, z, err := b.openComponent(ref)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errors.MaterialError(
			decl.Name, errors.ErrInvalidComponent, "atom count of %s must be positive, got %d", ref, n,
		)
	}
	return b.appendComponent(decl, ModeAtomCount, Component{Z: z, Weight: float64(n)})
}

// AddElementByIsotopes adds element assembled from isotopes to open isotopic declaration.
// Element weight is sum of given abundances, abundances are normalized to sum up to 1.
func (b *Builder) AddElementByIsotopes(ref element.Ref, isotopes []IsotopeAbundance) error {
	decl, z, err := b.openComponent(ref)
	if err != nil {
		return err
	}
	if !decl.Isotopic {
		return errors.MaterialError(
			decl.Name, errors.ErrInvalidComponent, "isotopes of %s given for non isotopic material", ref,
		)
	}
	if len(isotopes) == 0 {
		return errors.MaterialError(decl.Name, errors.ErrInvalidComponent, "empty isotope list of %s", ref)
	}

	weight := 0.0
	for _, iso := range isotopes {
		if iso.A <= 0 || iso.Abundance < 0 {
			return errors.MaterialError(
				decl.Name, errors.ErrInvalidComponent,
				"invalid isotope %s of %s", element.IsotopeName(ref.String(), iso.A), ref,
			)
		}
		weight += iso.Abundance
	}
	if weight == 0 {
		return errors.MaterialError(
			decl.Name, errors.ErrInvalidComponent, "abundances of %s sum up to 0", ref,
		)
	}

	normalized := make([]IsotopeAbundance, len(isotopes))
	for i, iso := range isotopes {
		normalized[i] = IsotopeAbundance{A: iso.A, Abundance: iso.Abundance / weight}
	}
	return b.appendComponent(decl, ModeWeight, Component{Z: z, Weight: weight, Isotopes: normalized})
}

func (b *Builder) openComponent(ref element.Ref) (*Declaration, int, error) {
	if b.open == nil || b.open.Complete() {
		return nil, 0, errors.GeneralError(
			errors.ErrNoOpenDeclaration, "can't add %s, no material is awaiting components", ref,
		)
	}
	z, err := ref.Resolve(b.provider)
	if err != nil {
		return nil, 0, err
	}
	return b.open, z, nil
}

func (b *Builder) appendComponent(decl *Declaration, mode Mode, component Component) error {
	if decl.Mode != ModeUnset && decl.Mode != mode {
		return errors.MaterialError(
			decl.Name, errors.ErrMixedComponentModes,
			"material components are given as %s, can't add Z=%d as %s", decl.Mode, component.Z, mode,
		)
	}
	decl.Mode = mode
	decl.entries = append(decl.entries, component)
	if decl.Complete() {
		decl.normalize()
	}
	return nil
}

// Declaration returns copy of named declaration.
func (b *Builder) Declaration(name string) (*Declaration, bool) {
	decl, found := b.declarations[name]
	if !found {
		return nil, false
	}
	res := *decl
	res.entries = decl.Entries()
	return &res, true
}

// Names returns names of all declarations in order of declaration.
func (b *Builder) Names() []string {
	return append([]string(nil), b.names...)
}

// OpticalNames returns names of declarations marked as optical.
func (b *Builder) OpticalNames() []string {
	names := []string{}
	for _, name := range b.names {
		if b.declarations[name].Optical {
			names = append(names, name)
		}
	}
	return names
}
