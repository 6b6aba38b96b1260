package optical

// Respond computes light output for every energy deposit (MeV), given
// yield in photons/MeV.
func Respond(model Model, deposit []float64, yield float64) []float64 {
	output := make([]float64, len(deposit))
	for i, d := range deposit {
		switch model {
		case ProtonClass:
			output[i] = 0.9 * d * d / (d + 5.95) * yield
		case IonClass:
			output[i] = (d*0.013 - 0.084) * yield
		default:
			output[i] = d * yield
		}
	}
	return output
}

// LightResponses computes light response curve of every particle listed in dataset.
// Particles without response are missing from returned map.
func (d Dataset) LightResponses(yield float64) map[Particle]Curve {
	res := make(map[Particle]Curve, len(d.Responses))
	for particle, model := range d.Responses {
		res[particle] = Curve{
			X: append([]float64(nil), d.EnergyDeposit...),
			Y: Respond(model, d.EnergyDeposit, yield),
		}
	}
	return res
}
