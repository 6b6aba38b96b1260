package optical

// HcNanometerElectronVolt is h*c in eV*nm, energy = HcNanometerElectronVolt / wavelength.
const HcNanometerElectronVolt = 1239.583

// WavelengthToEnergy converts wavelengths in nm to photon energies in eV.
func WavelengthToEnergy(wavelengths []float64) []float64 {
	energies := make([]float64, len(wavelengths))
	for i, wavelength := range wavelengths {
		energies[i] = HcNanometerElectronVolt / wavelength
	}
	return energies
}

// Reverse returns reversed copy of xs.
func Reverse(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[len(xs)-1-i] = x
	}
	return res
}

// ToEnergyCurve converts curve over wavelength into curve over energy.
// With reverse both axes are reversed, so ascending wavelengths give ascending energies.
func ToEnergyCurve(wavelength Curve, reverse bool) Curve {
	energies := WavelengthToEnergy(wavelength.X)
	values := append([]float64(nil), wavelength.Y...)
	if !reverse {
		return Curve{X: energies, Y: values}
	}
	return Curve{X: Reverse(energies), Y: Reverse(values)}
}
