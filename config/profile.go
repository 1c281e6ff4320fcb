package config

import "github.com/menmos/intrange-go"

// A Profile describes one named range, either by its bounds or by its
// LOWER..UPPER//STEP notation. The notation wins when both are set.
type Profile struct {
	Lower    int    `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper    int    `json:"upper,omitempty" yaml:"upper,omitempty"`
	Step     int    `json:"step,omitempty" yaml:"step,omitempty"`
	Notation string `json:"notation,omitempty" yaml:"notation,omitempty"`
}

// Range builds the range described by the profile. An omitted step is
// inferred from the bounds.
func (p Profile) Range() (intrange.Range, error) {
	if p.Notation != "" {
		return intrange.ParseExFmt(p.Notation)
	}
	return intrange.New(p.Lower, p.Upper, p.Step), nil
}
