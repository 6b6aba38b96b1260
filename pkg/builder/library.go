package builder

import (
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/optical"
)

// NewLibrary creates builder with all built-in materials declared.
func NewLibrary(provider element.Provider) (*Builder, error) {
	b := New(provider)
	for _, declare := range []func(*sequence){
		standardMaterials,
		pnnlMaterials,
		opticalMaterials,
	} {
		s := &sequence{b: b}
		declare(s)
		if s.err != nil {
			return nil, s.err
		}
	}
	log.Info("materials library ready: %d materials, %d optical datasets", len(b.names), b.OpticalCount())
	return b, nil
}

// sequence runs declaration calls until the first error.
type sequence struct {
	b   *Builder
	err error
}

func (s *sequence) begin(name, formula string, density float64, components int, opts ...DeclarationOption) {
	if s.err == nil {
		s.err = s.b.BeginMaterial(name, formula, density, components, opts...)
	}
}

func (s *sequence) weight(symbol string, weight float64) {
	if s.err == nil {
		s.err = s.b.AddElementByWeight(element.Symbol(symbol), weight)
	}
}

func (s *sequence) atoms(symbol string, n int) {
	if s.err == nil {
		s.err = s.b.AddElementByAtomCount(element.Symbol(symbol), n)
	}
}

func (s *sequence) isotopes(z int, isotopes ...IsotopeAbundance) {
	if s.err == nil {
		s.err = s.b.AddElementByIsotopes(element.Z(z), isotopes)
	}
}

func (s *sequence) optical(dataset string) {
	if s.err == nil {
		s.err = s.b.RegisterOpticalDataset(dataset)
	}
}

func standardMaterials(s *sequence) {
	s.begin("HighlyEnrichedUranium", "HEU", 18.724, 1, Isotopic())
	s.isotopes(92,
		IsotopeAbundance{A: 234, Abundance: 0.00980},
		IsotopeAbundance{A: 235, Abundance: 0.93155},
		IsotopeAbundance{A: 236, Abundance: 0.00450},
		IsotopeAbundance{A: 238, Abundance: 0.05415},
	)

	s.begin("HeavyWater", "D2O", 1.1044, 2, Isotopic())
	s.isotopes(8,
		IsotopeAbundance{A: 16, Abundance: 0.796703},
		IsotopeAbundance{A: 17, Abundance: 0.000323},
		IsotopeAbundance{A: 18, Abundance: 0.001842},
	)
	s.isotopes(1, IsotopeAbundance{A: 2, Abundance: 0.201133})

	s.begin("BoronCarbide", "B4C", 2.52, 2)
	s.atoms("B", 4)
	s.atoms("C", 1)

	s.begin("BoronNitride", "BN", 2.3, 2)
	s.atoms("B", 1)
	s.atoms("N", 1)

	s.begin("NiobiumTitanium", "NbTi", 5.7, 2)
	s.atoms("Nb", 1)
	s.atoms("Ti", 1)

	s.begin("NiobiumTin", "Nb3Sn", 5.7, 2)
	s.atoms("Nb", 3)
	s.atoms("Sn", 1)

	s.begin("Nitronic40", "None", 7.83, 9)
	s.weight("C", 0.04)
	s.weight("Cr", 20.25)
	s.weight("Fe", 62.82)
	s.weight("Mn", 9.0)
	s.weight("N", 0.3)
	s.weight("Ni", 6.5)
	s.weight("P", 0.04)
	s.weight("Si", 1.)
	s.weight("S", 0.01)

	s.begin("Nitronic50", "None", 7.88, 12)
	s.weight("C", 0.06)
	s.weight("Cr", 22.0)
	s.weight("Fe", 56.945)
	s.weight("Mn", 5.0)
	s.weight("Mo", 2.25)
	s.weight("N", 0.3)
	s.weight("Nb", 0.2)
	s.weight("Ni", 12.5)
	s.weight("P", 0.04)
	s.weight("Si", 0.475)
	s.weight("S", 0.03)
	s.weight("V", 0.2)

	s.begin("TungstenCarbide", "WC", 15.63, 2)
	s.atoms("W", 1)
	s.atoms("C", 1)
}

// pnnlMaterials is placeholder for materials from PNNL compendium.
func pnnlMaterials(*sequence) {}

func opticalMaterials(s *sequence) {
	s.begin(optical.LanthanumBromide, "LaBr3", 5.08, 2, Optical())
	s.atoms("La", 1)
	s.atoms("Br", 3)
	s.optical(optical.LanthanumBromide)

	s.begin(optical.EJ309, "C435H543", 0.959, 2, Optical())
	s.atoms("C", 435)
	s.atoms("H", 543)
	s.optical(optical.EJ309)
}
