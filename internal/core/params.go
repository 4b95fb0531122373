package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeText denotes read-only informational values.
	ParamTypeText ParamType = "text"
)

// Parameter is a single labelled value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a host exposes at one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable integer parameter exposed on the
// HUD. Bounds are exclusive when Strict is set.
type ParameterControl struct {
	Key   string
	Label string
	Step  int

	Min    int
	Max    int
	Strict bool
}

// Allows reports whether v is an acceptable value for the control.
func (c ParameterControl) Allows(v int) bool {
	if c.Strict {
		return v > c.Min && v < c.Max
	}
	return v >= c.Min && v <= c.Max
}

// ParameterProvider exposes the HUD snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
