package payload

// Info summarizes a range and is what the CLI prints for `info`.
type Info struct {
	Notation string `json:"notation"`
	Lower    int    `json:"lower"`
	Upper    int    `json:"upper"`
	Step     int    `json:"step"`
	Empty    bool   `json:"empty"`
	Single   bool   `json:"single"`
	Size     int    `json:"size"`
	First    *int   `json:"first,omitempty"`
	Last     *int   `json:"last,omitempty"`
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
	Sum      int    `json:"sum"`
	Parity   Parity `json:"parity"`
}

// Parity holds the parity predicates of a range.
type Parity struct {
	AnyEven bool `json:"any_even"`
	AnyOdd  bool `json:"any_odd"`
	AllEven bool `json:"all_even"`
	AllOdd  bool `json:"all_odd"`
}

// OptionalInt returns a pointer to value when ok is true, nil otherwise.
func OptionalInt(value int, ok bool) *int {
	if !ok {
		return nil
	}
	return &value
}
