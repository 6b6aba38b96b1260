// Package optical contains raw scintillator datasets and helpers turning them
// into energy ordered property curves.
package optical

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yaptide/materials/errors"
)

// Particle is particle class with its own scintillation response.
type Particle int

const (
	// Electron ...
	Electron Particle = iota
	// Proton ...
	Proton
	// Alpha ...
	Alpha
	// Ion is generic ion.
	Ion
)

// Particles in order used for logging and property tables.
var Particles = []Particle{Electron, Proton, Alpha, Ion}

var mapParticleToJSON = map[Particle]string{
	Electron: "electron",
	Proton:   "proton",
	Alpha:    "alpha",
	Ion:      "ion",
}

// String ...
func (p Particle) String() string {
	return mapParticleToJSON[p]
}

// MarshalText encoding.TextMarshaler implementation, used for map keys.
func (p Particle) MarshalText() ([]byte, error) {
	res, ok := mapParticleToJSON[p]
	if !ok {
		return nil, fmt.Errorf("Particle.MarshalText: can not convert %v to string", int(p))
	}
	return []byte(res), nil
}

// Model is light response formula.
type Model int

const (
	// Linear output = deposit * yield.
	Linear Model = iota
	// ElectronClass output = deposit * yield.
	ElectronClass
	// ProtonClass output = 0.9 * deposit^2 / (deposit + 5.95) * yield.
	ProtonClass
	// IonClass output = (0.013 * deposit - 0.084) * yield.
	IonClass
)

var mapModelToJSON = map[Model]string{
	Linear:        "linear",
	ElectronClass: "electron",
	ProtonClass:   "proton",
	IonClass:      "ion",
}

// String ...
func (m Model) String() string {
	return mapModelToJSON[m]
}

// MarshalJSON json.Marshaller implementation.
func (m Model) MarshalJSON() ([]byte, error) {
	res, ok := mapModelToJSON[m]
	if !ok {
		return nil, fmt.Errorf("Model.MarshalJSON: can not convert %v to string", int(m))
	}
	return json.Marshal(res)
}

// Curve is tabulated function, X and Y have equal length.
type Curve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Len ...
func (c Curve) Len() int {
	return len(c.X)
}

// Copy returns curve, which does not share memory with c.
func (c Curve) Copy() Curve {
	return Curve{
		X: append([]float64(nil), c.X...),
		Y: append([]float64(nil), c.Y...),
	}
}

// Dataset is raw optical data of single scintillator, as published by manufacturer.
type Dataset struct {
	Name string `json:"name"`
	// TimeConstants in ns.
	TimeConstants [3]Optional `json:"timeConstants"`
	// Yield in photons/MeV.
	Yield           float64 `json:"yield"`
	ResolutionScale float64 `json:"resolutionScale"`

	// RIndex X is wavelength in nm, unless dataset is listed as energy ordered.
	RIndex Curve `json:"rindex"`
	// AbsLength X is energy in eV, Y in m.
	AbsLength Curve `json:"absLength"`
	// Emission X is wavelength in nm, Y is relative probability.
	Emission Curve `json:"emission"`

	// EnergyDeposit in MeV, common X of all light responses.
	EnergyDeposit []float64 `json:"energyDeposit"`
	// LightOutput is published electron light output, kept for reference only.
	LightOutput []float64 `json:"lightOutput"`

	// Responses lists particles with light response and formula used for them.
	Responses map[Particle]Model `json:"responses"`
}

func (d Dataset) copy() Dataset {
	res := d
	res.RIndex = d.RIndex.Copy()
	res.AbsLength = d.AbsLength.Copy()
	res.Emission = d.Emission.Copy()
	res.EnergyDeposit = append([]float64(nil), d.EnergyDeposit...)
	res.LightOutput = append([]float64(nil), d.LightOutput...)
	res.Responses = make(map[Particle]Model, len(d.Responses))
	for particle, model := range d.Responses {
		res.Responses[particle] = model
	}
	return res
}

// Lookup returns copy of named dataset.
func Lookup(name string) (Dataset, error) {
	dataset, found := datasets[name]
	if !found {
		return Dataset{}, errors.DatasetError(
			name, errors.ErrUnknownOpticalDataset, "no such optical dataset",
		)
	}
	return dataset.copy(), nil
}

// Names returns sorted names of all datasets.
func Names() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
