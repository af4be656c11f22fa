package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

// ParamTypeInt denotes integer-valued parameters.
const ParamTypeInt ParamType = "int"

// Parameter describes a single value a rule was configured with.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterProvider is implemented by rules that expose their settings.
type ParameterProvider interface {
	Parameters() []Parameter
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// ParamInt reads an integer parameter from a flag-style map. It returns def
// when the key is absent and ok=false when the value does not parse.
func ParamInt(params map[string]string, key string, def int) (v int, ok bool) {
	raw, present := params[key]
	if !present {
		return def, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def, false
	}
	return parsed, true
}
