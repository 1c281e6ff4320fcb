package intrange

import "github.com/menmos/intrange-go/payload"

// Info returns a summary of every query on r.
func (r Range) Info() payload.Info {
	return payload.Info{
		Notation: r.String(),
		Lower:    r.lower,
		Upper:    r.upper,
		Step:     r.step,
		Empty:    r.empty,
		Single:   r.IsSingle(),
		Size:     r.Size(),
		First:    payload.OptionalInt(r.First()),
		Last:     payload.OptionalInt(r.Last()),
		Min:      payload.OptionalInt(r.Min()),
		Max:      payload.OptionalInt(r.Max()),
		Sum:      r.Sum(),
		Parity: payload.Parity{
			AnyEven: r.AnyEven(),
			AnyOdd:  r.AnyOdd(),
			AllEven: r.AllEven(),
			AllOdd:  r.AllOdd(),
		},
	}
}
