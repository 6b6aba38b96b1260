package builder

import (
	stderrors "errors"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/material"
	"github.com/yaptide/materials/pkg/optical"
)

type libraryFile struct {
	Materials []materialRecord `yaml:"materials" validate:"dive"`
}

type materialRecord struct {
	Name      string            `yaml:"name" validate:"required"`
	Formula   string            `yaml:"formula"`
	Density   float64           `yaml:"density" validate:"gt=0"`
	State     *material.State   `yaml:"state"`
	STP       *bool             `yaml:"stp"`
	Potential float64           `yaml:"potential" validate:"gte=0"`
	Optical   *opticalRecord    `yaml:"optical"`
	Elements  []componentRecord `yaml:"components" validate:"required,min=1,dive"`
}

type componentRecord struct {
	Element  string             `yaml:"element" validate:"required_without=Z"`
	Z        int                `yaml:"z" validate:"gte=0"`
	Weight   *float64           `yaml:"weight" validate:"omitempty,gte=0"`
	Atoms    int                `yaml:"atoms" validate:"gte=0"`
	Isotopes []IsotopeAbundance `yaml:"isotopes" validate:"dive"`
}

// opticalRecord registers dataset named as the material itself.
type opticalRecord struct {
	YieldScale *float64 `yaml:"yieldScale" validate:"omitempty,gt=0"`
}

func (o *opticalRecord) scale() float64 {
	if o.YieldScale == nil {
		return 1
	}
	return *o.YieldScale
}

func (c componentRecord) ref() element.Ref {
	if c.Element != "" {
		return element.Symbol(c.Element)
	}
	return element.Z(c.Z)
}

func (c componentRecord) quantities() int {
	n := 0
	if len(c.Isotopes) > 0 {
		n++
	}
	if c.Atoms > 0 {
		n++
	}
	if c.Weight != nil {
		n++
	}
	return n
}

// LoadDeclarations reads YAML library file and declares every material in it.
// Declarations preceding the first failing one stay registered.
func (b *Builder) LoadDeclarations(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file libraryFile
	if err := decoder.Decode(&file); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return errors.GeneralError(errors.ErrInvalidDeclaration, "malformed library file: %s", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return errors.GeneralError(errors.ErrInvalidDeclaration, "invalid library file: %s", err)
	}

	for _, record := range file.Materials {
		if err := b.declare(record); err != nil {
			return err
		}
	}
	log.Info("%d materials loaded from library file", len(file.Materials))
	return nil
}

func (b *Builder) declare(record materialRecord) error {
	opts := []DeclarationOption{WithPotential(record.Potential)}
	if record.State != nil {
		opts = append(opts, WithState(*record.State))
	}
	if record.STP != nil {
		opts = append(opts, WithSTP(*record.STP))
	}
	if record.Optical != nil {
		if err := checkYieldScale(record.Name, record.Optical.scale()); err != nil {
			return err
		}
		if _, err := optical.Lookup(record.Name); err != nil {
			return err
		}
		opts = append(opts, Optical())
	}
	for _, component := range record.Elements {
		if len(component.Isotopes) > 0 {
			opts = append(opts, Isotopic())
			break
		}
	}

	if err := b.BeginMaterial(
		record.Name, record.Formula, record.Density, len(record.Elements), opts...,
	); err != nil {
		return err
	}
	for _, component := range record.Elements {
		if component.quantities() != 1 {
			return errors.MaterialError(
				record.Name, errors.ErrInvalidComponent,
				"%s needs exactly one of weight, atoms or isotopes", component.ref(),
			)
		}
		var err error
		switch {
		case len(component.Isotopes) > 0:
			err = b.AddElementByIsotopes(component.ref(), component.Isotopes)
		case component.Atoms > 0:
			err = b.AddElementByAtomCount(component.ref(), component.Atoms)
		default:
			err = b.AddElementByWeight(component.ref(), *component.Weight)
		}
		if err != nil {
			return err
		}
	}

	if record.Optical == nil {
		return nil
	}
	return b.RegisterOpticalDatasetScaled(record.Name, record.Optical.scale())
}
