package domain

import "fmt"

// LabelEncoder maps a categorical value to the integer index it was fitted
// with. Class order comes from the exported encoder artifact and must not be
// re-sorted at serving time.
type LabelEncoder struct {
	Classes []string
}

func (e LabelEncoder) Encode(value string) (int, error) {
	for i, c := range e.Classes {
		if c == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (known: %v)", ErrUnknownCategory, value, e.Classes)
}

// LabelEncoders is the bundle of fitted encoders keyed by training column name.
type LabelEncoders map[string]LabelEncoder

func (e LabelEncoders) Encode(name, value string) (int, error) {
	enc, ok := e[name]
	if !ok {
		return 0, fmt.Errorf("%w: no encoder fitted for column %q", ErrUnknownCategory, name)
	}
	return enc.Encode(value)
}
