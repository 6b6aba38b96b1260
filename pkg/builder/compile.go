package builder

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/material"
)

// Compile builds new material from named declaration. Materials are not cached,
// every call returns fresh instance.
func (b *Builder) Compile(name string) (*material.Material, error) {
	start := time.Now()
	m, err := b.compile(name)
	compileDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		compileErrorsTotal.WithLabelValues(errorReason(err)).Inc()
		log.Warning("compilation of %s failed: %s", name, err)
		return nil, err
	}
	compiledTotal.WithLabelValues(declarationKind(b.declarations[name])).Inc()
	return m, nil
}

func (b *Builder) compile(name string) (*material.Material, error) {
	decl, found := b.declarations[name]
	if !found {
		return nil, errors.MaterialError(name, errors.ErrUnknownMaterialName, "material was never declared")
	}
	if !decl.Complete() {
		return nil, errors.MaterialError(
			name, errors.ErrIncompleteDeclaration,
			"%d of %d components added", len(decl.entries), decl.Components,
		)
	}

	m := material.New(
		decl.Name, decl.Density, decl.Components, decl.State,
		material.NTPTemperature, material.STPPressure,
	)
	if decl.Potential > 0 {
		m.MeanExcitationEnergy = decl.Potential
	}

	for _, entry := range decl.entries {
		el := b.provider.FindOrBuildElement(entry.Z)
		if el == nil {
			return nil, errors.MaterialError(
				name, errors.ErrUnresolvedElement, "no element with Z=%d", entry.Z,
			)
		}
		if len(entry.Isotopes) > 0 {
			var err error
			if el, err = b.buildIsotopicElement(name, el, entry); err != nil {
				return nil, err
			}
		}

		var err error
		if decl.Mode == ModeAtomCount {
			err = m.AddElementByAtomCount(el, int(entry.Weight))
		} else {
			err = m.AddElementByMassFraction(el, entry.Weight)
		}
		if err != nil {
			return nil, err
		}
	}

	if decl.Optical {
		table, err := b.CompileOpticalTable(name)
		if err != nil {
			return nil, err
		}
		m.SetPropertyTable(table)
	}
	return m, nil
}

// buildIsotopicElement assembles fresh element from declared isotopes. Natural
// element is used only for its name and symbol.
func (b *Builder) buildIsotopicElement(
	materialName string, natural *element.Element, entry Component,
) (*element.Element, error) {
	el := element.NewElement(natural.Name, natural.Symbol, len(entry.Isotopes))
	el.MeanExcitationEnergy = natural.MeanExcitationEnergy
	for _, iso := range entry.Isotopes {
		isoName := element.IsotopeName(natural.Symbol, iso.A)
		mass := b.provider.IsotopeMass(entry.Z, iso.A)
		if mass == 0 {
			return nil, errors.MaterialError(
				materialName, errors.ErrUnresolvedIsotope, "unknown isotope %s", isoName,
			)
		}
		isotope := element.Isotope{Name: isoName, Z: entry.Z, N: iso.A, A: mass}
		if err := el.AddIsotope(isotope, iso.Abundance*100); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// CompileAll compiles every declaration concurrently. Materials are returned in
// order of declaration, first error aborts the whole batch.
func (b *Builder) CompileAll(ctx context.Context) ([]*material.Material, error) {
	names := b.Names()
	res := make([]*material.Material, len(names))

	group, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := b.Compile(name)
			if err != nil {
				return err
			}
			res[i] = m
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
