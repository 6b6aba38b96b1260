package builder

import (
	"math"
	"strings"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/material"
	"github.com/yaptide/materials/pkg/optical"
)

// energyOrderedRIndex lists datasets, whose refractive index is published over
// energy instead of wavelength.
// TODO: move the axis kind into optical.Dataset once a third dataset needs it.
var energyOrderedRIndex = map[string]bool{
	optical.EJ309: true,
}

var timeConstantKeys = [3]string{
	material.ScintillationTimeConstant1,
	material.ScintillationTimeConstant2,
	material.ScintillationTimeConstant3,
}

type namedCurve struct {
	key   string
	curve optical.Curve
}

// OpticalEntry is optical dataset converted to energy ordered curves.
type OpticalEntry struct {
	Name            string              `json:"name"`
	TimeConstants   [3]optical.Optional `json:"timeConstants"`
	Yield           float64             `json:"yield"`
	YieldScale      float64             `json:"yieldScale"`
	ResolutionScale float64             `json:"resolutionScale"`

	// RIndex, AbsLength and Emission are over photon energy in eV.
	RIndex    optical.Curve `json:"rindex"`
	AbsLength optical.Curve `json:"absLength"`
	Emission  optical.Curve `json:"emission"`

	// Responses are light output curves over deposited energy in MeV.
	Responses map[optical.Particle]optical.Curve `json:"responses"`
}

// HasParticleResponse returns true, if any heavy particle has own light response.
func (e *OpticalEntry) HasParticleResponse() bool {
	for _, particle := range []optical.Particle{optical.Proton, optical.Alpha, optical.Ion} {
		if _, found := e.Responses[particle]; found {
			return true
		}
	}
	return false
}

// RegisterOpticalDataset registers dataset with unscaled yield.
func (b *Builder) RegisterOpticalDataset(name string) error {
	return b.RegisterOpticalDatasetScaled(name, 1)
}

// RegisterOpticalDatasetScaled registers dataset, its flat scintillation yield is
// multiplied by yieldScale. Registering the same name again replaces the entry.
func (b *Builder) RegisterOpticalDatasetScaled(name string, yieldScale float64) error {
	if err := checkYieldScale(name, yieldScale); err != nil {
		return err
	}
	dataset, err := optical.Lookup(name)
	if err != nil {
		return err
	}

	entry := &OpticalEntry{
		Name:            name,
		TimeConstants:   dataset.TimeConstants,
		Yield:           dataset.Yield,
		YieldScale:      yieldScale,
		ResolutionScale: dataset.ResolutionScale,
		AbsLength:       dataset.AbsLength,
		Emission:        optical.ToEnergyCurve(dataset.Emission, true),
		Responses:       dataset.LightResponses(dataset.Yield),
	}
	if energyOrderedRIndex[name] {
		entry.RIndex = dataset.RIndex
	} else {
		entry.RIndex = optical.ToEnergyCurve(dataset.RIndex, true)
	}

	if _, found := b.optical[name]; found {
		log.Warning("optical dataset %s registered again, previous entry replaced", name)
	} else {
		b.opticalNames = append(b.opticalNames, name)
	}
	b.optical[name] = entry
	opticalRegistrationsTotal.Inc()

	enabled := []string{}
	for _, particle := range optical.Particles {
		if _, found := entry.Responses[particle]; found {
			enabled = append(enabled, particle.String())
		}
	}
	log.Debug("optical dataset %s registered, scintillation enabled for: %s",
		name, strings.Join(enabled, ", "))
	return nil
}

func checkYieldScale(name string, yieldScale float64) error {
	if math.IsNaN(yieldScale) || yieldScale <= 0 {
		return errors.DatasetError(
			name, errors.ErrInvalidDeclaration, "yield scale must be positive, got %g", yieldScale,
		)
	}
	return nil
}

// OpticalEntry returns copy of registered optical entry.
func (b *Builder) OpticalEntry(name string) (*OpticalEntry, bool) {
	entry, found := b.optical[name]
	if !found {
		return nil, false
	}
	return entry.copy(), true
}

func (e *OpticalEntry) copy() *OpticalEntry {
	res := *e
	res.RIndex = e.RIndex.Copy()
	res.AbsLength = e.AbsLength.Copy()
	res.Emission = e.Emission.Copy()
	res.Responses = make(map[optical.Particle]optical.Curve, len(e.Responses))
	for particle, curve := range e.Responses {
		res.Responses[particle] = curve.Copy()
	}
	return &res
}

// OpticalCount returns number of registered optical datasets.
func (b *Builder) OpticalCount() int {
	return len(b.opticalNames)
}

// CompileOpticalTable builds property table from registered optical entry.
func (b *Builder) CompileOpticalTable(name string) (*material.PropertyTable, error) {
	entry, found := b.optical[name]
	if !found {
		return nil, errors.MaterialError(
			name, errors.ErrUnknownMaterialName, "no optical dataset registered",
		)
	}

	table := material.NewPropertyTable()
	table.AddConstProperty(material.ResolutionScale, entry.ResolutionScale)
	for i, timeConstant := range entry.TimeConstants {
		if timeConstant.Valid {
			table.AddConstProperty(timeConstantKeys[i], timeConstant.Value)
		}
	}
	if !entry.HasParticleResponse() {
		table.AddConstProperty(material.ScintillationYield, entry.Yield*entry.YieldScale)
	}

	curves := []namedCurve{{material.ScintillationComponent1, entry.Emission}}
	addResponse := func(key string, particle optical.Particle) bool {
		curve, found := entry.Responses[particle]
		if found {
			curves = append(curves, namedCurve{key, curve})
		}
		return found
	}

	addResponse(material.ElectronScintillationYield, optical.Electron)
	if addResponse(material.ProtonScintillationYield, optical.Proton) {
		// No dedicated data yet, deuterons and tritons share proton response.
		addResponse(material.DeuteronScintillationYield, optical.Proton)
		addResponse(material.TritonScintillationYield, optical.Proton)
	}
	hasAlpha := addResponse(material.AlphaScintillationYield, optical.Alpha)
	if addResponse(material.IonScintillationYield, optical.Ion) && !hasAlpha {
		addResponse(material.AlphaScintillationYield, optical.Ion)
	}
	curves = append(curves,
		namedCurve{material.RefractiveIndex, entry.RIndex},
		namedCurve{material.AbsorptionLength, entry.AbsLength},
	)

	for _, c := range curves {
		if err := table.AddProperty(c.key, c.curve.X, c.curve.Y); err != nil {
			return nil, err
		}
	}
	return table, nil
}
