package optical

// LanthanumBromide and EJ309 are names of built-in datasets.
const (
	LanthanumBromide = "LanthanumBromide"
	EJ309            = "EJ309"
)

var datasets = map[string]Dataset{
	LanthanumBromide: {
		Name:            LanthanumBromide,
		TimeConstants:   [3]Optional{Some(16), None(), None()},
		Yield:           63000,
		ResolutionScale: 0.42,
		RIndex: Curve{
			X: []float64{349, 375, 399, 424, 449, 499, 549, 600, 649, 700},
			Y: []float64{2.77, 2.30, 2.23, 2.20, 2.16, 2.11, 2.08, 2.06, 2.04, 2.03},
		},
		AbsLength: Curve{
			X: []float64{1, 15},
			Y: []float64{3, 3},
		},
		Emission: Curve{
			X: []float64{
				330.00000, 331.81818, 339.83957, 351.87164, 375.93582, 382.35294, 387.16577,
				395.18716, 401.60428, 409.62567, 419.25134, 434.49197, 629.41174,
			},
			Y: []float64{
				0, 5.51559, 34.2926, 79.6163, 98.0815, 99.7602, 93.0456,
				71.9424, 43.4053, 16.3070, 7.43405, 2.15827, 0,
			},
		},
		EnergyDeposit: []float64{0.001, 1, 1000},
		LightOutput:   []float64{63, 63000, 63000000},
		Responses: map[Particle]Model{
			Electron: Linear,
		},
	},
	EJ309: {
		Name:            EJ309,
		TimeConstants:   [3]Optional{Some(3.5), Some(35.3), Some(294.0)},
		Yield:           12300,
		ResolutionScale: 15.0,
		// Published already as energy [eV] to index.
		RIndex: Curve{
			X: []float64{1, 15},
			Y: []float64{1.57, 1.57},
		},
		AbsLength: Curve{
			X: []float64{1, 15},
			Y: []float64{2.5, 2.5},
		},
		Emission: Curve{
			X: []float64{
				381.08, 383.44, 385.81, 387.71, 389.29, 391.35, 393.88, 397.34, 401.27,
				405.96, 410.83, 412.72, 417.12, 421.21, 423.08, 425.27, 427.13, 429.15,
				432.10, 437.72, 443.66, 447.87, 451.60, 456.59, 461.58, 467.66, 473.59,
				479.67, 484.51, 489.03, 496.06, 503.24, 509.17, 516.04, 520.73, 524.01,
			},
			Y: []float64{
				2.764, 8.436, 15.855, 25.455, 34.182, 44.000, 55.564, 63.418, 68.436,
				71.055, 76.291, 83.491, 93.091, 98.764, 99.636, 100.00, 93.964, 85.891,
				80.873, 77.164, 74.327, 68.436, 61.455, 55.127, 48.909, 44.000, 38.764,
				33.309, 29.164, 24.582, 18.909, 14.327, 11.491, 8.655, 6.909, 6.691,
			},
		},
		EnergyDeposit: []float64{
			0.0001, 0.10, 0.13, 0.17, 0.20, 0.24, 0.30, 0.34, 0.40, 0.48, 0.60,
			0.72, 0.84, 1.0, 1.3, 1.7, 2.0, 2.4, 3.0, 3.4, 4.0, 4.8,
			6.0, 7.2, 8.4, 10, 13, 17, 20, 24, 30, 34, 40,
		},
		LightOutput: []float64{1, 10, 100},
		Responses: map[Particle]Model{
			Electron: ElectronClass,
			Proton:   ProtonClass,
			Alpha:    IonClass,
			Ion:      IonClass,
		},
	},
}
