package material

import (
	"encoding/json"
	"fmt"
)

// State is state of matter.
type State int

const (
	// NonDefined ...
	NonDefined State = iota
	// Solid ...
	Solid
	// Liquid ...
	Liquid
	// Gas ...
	Gas
)

var mapStateToJSON = map[State]string{
	NonDefined: "",
	Solid:      "solid",
	Liquid:     "liquid",
	Gas:        "gas",
}

var mapJSONToState = map[string]State{
	"":       NonDefined,
	"solid":  Solid,
	"liquid": Liquid,
	"gas":    Gas,
}

// ParseState ...
func ParseState(s string) (State, error) {
	state, found := mapJSONToState[s]
	if !found {
		return NonDefined, fmt.Errorf("unknown state of matter %q", s)
	}
	return state, nil
}

// String ...
func (s State) String() string {
	if name := mapStateToJSON[s]; name != "" {
		return name
	}
	return "undefined"
}

// MarshalJSON json.Marshaller implementation.
func (s State) MarshalJSON() ([]byte, error) {
	res, ok := mapStateToJSON[s]
	if !ok {
		return nil, fmt.Errorf("State.MarshalJSON: can not convert %v to string", s)
	}
	return json.Marshal(res)
}

// UnmarshalJSON json.Unmarshaller implementation.
func (s *State) UnmarshalJSON(b []byte) error {
	var input string
	if err := json.Unmarshal(b, &input); err != nil {
		return err
	}
	state, err := ParseState(input)
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for library files.
func (s *State) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var input string
	if err := unmarshal(&input); err != nil {
		return err
	}
	state, err := ParseState(input)
	if err != nil {
		return err
	}
	*s = state
	return nil
}
