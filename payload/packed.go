// Package payload holds the untyped documents exchanged with the outside
// world: packed [lower, upper, step] triples and range summaries.
package payload

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

func loadInt(index int, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, errors.Errorf("element %d overflows an int", index)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, errors.Errorf("element %d (%v) is not an integer", index, v)
		}
		if v >= 1<<63 || v < -1<<63 {
			return 0, errors.Errorf("element %d (%v) overflows an int", index, v)
		}
		return int(v), nil
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, errors.Wrapf(err, "element %d (%s) is not an integer", index, v)
		}
		return int(parsed), nil
	}
	return 0, errors.Errorf("element %d should be an integer, got %T", index, value)
}

func loadTriple(values []interface{}) ([3]int, error) {
	var packed [3]int
	if len(values) != 3 {
		return packed, errors.Errorf("packed range must hold 3 elements, got %d", len(values))
	}

	for i, value := range values {
		n, err := loadInt(i, value)
		if err != nil {
			return [3]int{}, err
		}
		packed[i] = n
	}

	return packed, nil
}

// ParsePacked extracts a [lower, upper, step] triple from decoded data.
// Elements may be any integral number type produced by a JSON, YAML or TOML
// decoder.
func ParsePacked(data interface{}) ([3]int, error) {
	switch values := data.(type) {
	case []interface{}:
		return loadTriple(values)
	case []int:
		if len(values) != 3 {
			return [3]int{}, errors.Errorf("packed range must hold 3 elements, got %d", len(values))
		}
		return [3]int{values[0], values[1], values[2]}, nil
	case []int64:
		generic := make([]interface{}, len(values))
		for i, v := range values {
			generic[i] = v
		}
		return loadTriple(generic)
	}
	return [3]int{}, errors.Errorf("packed range should be an array, got %T", data)
}
