package optical

import "encoding/json"

// Optional is scalar, which may be absent in a dataset.
type Optional struct {
	Value float64
	Valid bool
}

// Some ...
func Some(value float64) Optional {
	return Optional{Value: value, Valid: true}
}

// None ...
func None() Optional {
	return Optional{}
}

// MarshalJSON json.Marshaller implementation. Absent value is null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
