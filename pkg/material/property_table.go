package material

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaptide/materials/errors"
	"github.com/yaptide/materials/format"
)

// Property keys understood by optical physics.
const (
	ResolutionScale            = "RESOLUTIONSCALE"
	ScintillationTimeConstant1 = "SCINTILLATIONTIMECONSTANT1"
	ScintillationTimeConstant2 = "SCINTILLATIONTIMECONSTANT2"
	ScintillationTimeConstant3 = "SCINTILLATIONTIMECONSTANT3"
	ScintillationYield         = "SCINTILLATIONYIELD"
	ScintillationComponent1    = "SCINTILLATIONCOMPONENT1"
	ElectronScintillationYield = "ELECTRONSCINTILLATIONYIELD"
	ProtonScintillationYield   = "PROTONSCINTILLATIONYIELD"
	DeuteronScintillationYield = "DEUTERONSCINTILLATIONYIELD"
	TritonScintillationYield   = "TRITONSCINTILLATIONYIELD"
	AlphaScintillationYield    = "ALPHASCINTILLATIONYIELD"
	IonScintillationYield      = "IONSCINTILLATIONYIELD"
	RefractiveIndex            = "RINDEX"
	AbsorptionLength           = "ABSLENGTH"
)

// PropertyVector is tabulated property, X must be strictly increasing.
type PropertyVector struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// PropertyTable holds named constant and tabulated material properties.
type PropertyTable struct {
	keys   []string
	consts map[string]float64
	curves map[string]PropertyVector
}

// NewPropertyTable ...
func NewPropertyTable() *PropertyTable {
	return &PropertyTable{
		consts: map[string]float64{},
		curves: map[string]PropertyVector{},
	}
}

// AddConstProperty sets constant property, replacing previous value.
func (t *PropertyTable) AddConstProperty(key string, value float64) {
	if _, found := t.consts[key]; !found {
		t.keys = append(t.keys, key)
	}
	t.consts[key] = value
}

// AddProperty sets tabulated property. Both slices are copied.
func (t *PropertyTable) AddProperty(key string, x, y []float64) error {
	if len(x) != len(y) {
		return errors.GeneralError(
			errors.ErrMalformedCurve, "property %s: %d x values, %d y values", key, len(x), len(y),
		)
	}
	if len(x) == 0 {
		return errors.GeneralError(errors.ErrMalformedCurve, "property %s: empty curve", key)
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return errors.GeneralError(
				errors.ErrMalformedCurve,
				"property %s: x not strictly increasing at %d (%g <= %g)", key, i, x[i], x[i-1],
			)
		}
	}
	if _, found := t.curves[key]; !found {
		t.keys = append(t.keys, key)
	}
	t.curves[key] = PropertyVector{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}
	return nil
}

// ConstProperty ...
func (t *PropertyTable) ConstProperty(key string) (float64, bool) {
	value, found := t.consts[key]
	return value, found
}

// Property ...
func (t *PropertyTable) Property(key string) (PropertyVector, bool) {
	curve, found := t.curves[key]
	return curve, found
}

// Has returns true, if constant or tabulated property is set.
func (t *PropertyTable) Has(key string) bool {
	_, isConst := t.consts[key]
	_, isCurve := t.curves[key]
	return isConst || isCurve
}

// Keys returns property keys in order of insertion.
func (t *PropertyTable) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Dump writes human readable table.
func (t *PropertyTable) Dump(writer io.Writer) {
	for _, key := range t.keys {
		if value, isConst := t.consts[key]; isConst {
			fmt.Fprintf(writer, "%s: %g\n", key, value)
			continue
		}
		curve := t.curves[key]
		fmt.Fprintf(writer, "%s: %d points\n", key, len(curve.X))
		for i := range curve.X {
			fmt.Fprintf(writer, "  %s %s\n",
				format.FloatToFixedWidthString(curve.X[i], 12),
				format.FloatToFixedWidthString(curve.Y[i], 12),
			)
		}
	}
}

// MarshalJSON json.Marshaller implementation.
func (t *PropertyTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Const  map[string]float64        `json:"const"`
		Curves map[string]PropertyVector `json:"curves"`
	}{
		Const:  t.consts,
		Curves: t.curves,
	})
}
