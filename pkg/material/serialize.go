package material

import (
	"bytes"
	"fmt"
	"io"
)

// Serialize writes materials as plain text cards, one MEDIUM ... END block per material.
func Serialize(materials ...*Material) string {
	writer := &bytes.Buffer{}
	for _, m := range materials {
		serializeMaterial(writer, m.Name, m)
	}
	return writer.String()
}

// SerializeState return true, if State should be serialized.
func (m *Material) SerializeState() bool {
	return m.State != NonDefined
}

// SerializeMeanExcitationEnergy return true, if MeanExcitationEnergy should be serialized.
func (m *Material) SerializeMeanExcitationEnergy() bool {
	return m.MeanExcitationEnergy > 0.0
}

// SerializeAtoms return true, if Atoms should be serialized.
func (c *Component) SerializeAtoms() bool {
	return c.Atoms > 0
}

func serializeMaterial(writer io.Writer, header string, m *Material) {
	fmt.Fprintf(writer, "MEDIUM %s\n", header)

	if m.SerializeState() {
		fmt.Fprintf(writer, "STATE %s\n", m.State)
	}
	fmt.Fprintf(writer, "RHO %g\n", m.Density)
	fmt.Fprintf(writer, "TEMP %g\n", m.Temperature)
	fmt.Fprintf(writer, "PRESSURE %g\n", m.Pressure)

	if m.SerializeMeanExcitationEnergy() {
		fmt.Fprintf(writer, "IVALUE %g\n", m.MeanExcitationEnergy)
	}

	for i := range m.Components {
		component := &m.Components[i]
		fmt.Fprintf(writer, "ELEMENT %s %d %f\n",
			component.Element.Symbol, component.Element.Z, component.MassFraction)
		if component.SerializeAtoms() {
			fmt.Fprintf(writer, "ATOMS %d\n", component.Atoms)
		}
		for _, iso := range component.Element.Isotopes {
			fmt.Fprintf(writer, "ISOTOPE %s %f %f\n", iso.Isotope.Name, iso.Isotope.A, iso.Abundance)
		}
	}

	if m.Properties != nil {
		serializeProperties(writer, m.Properties)
	}

	fmt.Fprintln(writer, "END")
}

func serializeProperties(writer io.Writer, table *PropertyTable) {
	for _, key := range table.keys {
		if value, isConst := table.consts[key]; isConst {
			fmt.Fprintf(writer, "CONST %s %g\n", key, value)
			continue
		}
		curve := table.curves[key]
		fmt.Fprintf(writer, "CURVE %s %d\n", key, len(curve.X))
		for i := range curve.X {
			fmt.Fprintf(writer, "%g %g\n", curve.X[i], curve.Y[i])
		}
	}
}
