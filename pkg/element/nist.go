package element

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yaptide/materials/errors"
)

//go:embed elements.yaml
var elementsYAML []byte

type isotopeRecord struct {
	N         int     `yaml:"n" validate:"min=1"`
	Mass      float64 `yaml:"mass" validate:"gt=0"`
	Abundance float64 `yaml:"abundance" validate:"min=0,max=1"`
}

type elementRecord struct {
	Z        int             `yaml:"z" validate:"min=1,max=118"`
	Symbol   string          `yaml:"symbol" validate:"required,max=3"`
	Name     string          `yaml:"name" validate:"required"`
	A        float64         `yaml:"a" validate:"gt=0"`
	I        float64         `yaml:"i" validate:"min=0"`
	Isotopes []isotopeRecord `yaml:"isotopes" validate:"dive"`
}

type elementTable struct {
	Elements []elementRecord `yaml:"elements" validate:"required,dive"`
}

var (
	tableOnce sync.Once
	table     elementTable
	tableErr  error
)

func loadTable() (elementTable, error) {
	tableOnce.Do(func() {
		if err := yaml.Unmarshal(elementsYAML, &table); err != nil {
			tableErr = errors.GeneralError(errors.ErrUnresolvedElement, "element table: %v", err)
			return
		}
		if err := validator.New().Struct(table); err != nil {
			tableErr = errors.GeneralError(errors.ErrUnresolvedElement, "element table: %v", err)
		}
	})
	return table, tableErr
}

// NistProvider is element provider backed by embedded NIST element data.
// It is read-only after construction and safe for concurrent use.
type NistProvider struct {
	byZ    map[int]*elementRecord
	byName map[string]*elementRecord
}

// NewNistProvider ...
func NewNistProvider() (*NistProvider, error) {
	t, err := loadTable()
	if err != nil {
		return nil, err
	}
	p := &NistProvider{
		byZ:    map[int]*elementRecord{},
		byName: map[string]*elementRecord{},
	}
	for i := range t.Elements {
		record := &t.Elements[i]
		p.byZ[record.Z] = record
		p.byName[record.Symbol] = record
		p.byName[strings.ToLower(record.Name)] = record
	}
	return p, nil
}

// AtomicNumber resolves element symbol (case sensitive, "B" vs "Br") or name.
func (p *NistProvider) AtomicNumber(symbolOrName string) (int, error) {
	if record, found := p.byName[symbolOrName]; found {
		return record.Z, nil
	}
	if record, found := p.byName[strings.ToLower(symbolOrName)]; found {
		return record.Z, nil
	}
	return 0, errors.ElementError(symbolOrName, errors.ErrUnresolvedElement, "unknown element")
}

// FindOrBuildElement builds element with natural isotope composition.
func (p *NistProvider) FindOrBuildElement(z int) *Element {
	record, found := p.byZ[z]
	if !found {
		return nil
	}
	el := &Element{
		Name:                 record.Name,
		Symbol:               record.Symbol,
		Z:                    record.Z,
		A:                    record.A,
		MeanExcitationEnergy: record.I,
	}
	for _, iso := range record.Isotopes {
		if iso.Abundance == 0 {
			continue
		}
		el.Isotopes = append(el.Isotopes, IsotopeFraction{
			Isotope: Isotope{
				Name: IsotopeName(record.Symbol, iso.N),
				Z:    record.Z,
				N:    iso.N,
				A:    iso.Mass,
			},
			Abundance: iso.Abundance,
		})
	}
	el.nIsotopes = len(el.Isotopes)
	return el
}

// IsotopeMass returns atomic mass of isotope in g/mole, 0 if not known.
func (p *NistProvider) IsotopeMass(z, n int) float64 {
	record, found := p.byZ[z]
	if !found {
		return 0
	}
	for _, iso := range record.Isotopes {
		if iso.N == n {
			return iso.Mass
		}
	}
	return 0
}

// Elements returns all known atomic numbers in ascending order.
func (p *NistProvider) Elements() []int {
	t, _ := loadTable()
	zs := make([]int, 0, len(t.Elements))
	for _, record := range t.Elements {
		zs = append(zs, record.Z)
	}
	return zs
}
