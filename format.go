package intrange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/menmos/intrange-go/payload"
	"github.com/pkg/errors"
)

const (
	boundsSeparator = ".."
	stepSeparator   = "//"
)

// String renders r in the LOWER..UPPER//STEP notation understood by ParseExFmt.
func (r Range) String() string {
	return fmt.Sprintf("%d%s%d%s%d", r.lower, boundsSeparator, r.upper, stepSeparator, r.step)
}

func parseInt(what string, text string) (int, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s %q: %v", what, text, err)
	}
	return value, nil
}

// ParseExFmt parses a range written as LOWER..UPPER or LOWER..UPPER//STEP.
// Without a step, the step is inferred like New does.
func ParseExFmt(notation string) (Range, error) {
	lowerText, rest, found := strings.Cut(strings.TrimSpace(notation), boundsSeparator)
	if !found {
		return Range{}, errors.Wrapf(ErrInvalidArgument, "range %q is missing %q", notation, boundsSeparator)
	}
	upperText, stepText, hasStep := strings.Cut(rest, stepSeparator)

	lower, err := parseInt("lower bound", lowerText)
	if err != nil {
		return Range{}, err
	}
	upper, err := parseInt("upper bound", upperText)
	if err != nil {
		return Range{}, err
	}

	if !hasStep {
		return New(lower, upper, 0), nil
	}

	step, err := parseInt("step", stepText)
	if err != nil {
		return Range{}, err
	}
	if step == 0 {
		return Range{}, errors.Wrapf(ErrInvalidArgument, "range %q has a zero step", notation)
	}
	return New(lower, upper, step), nil
}

// MustParse is like ParseExFmt but panics on malformed input.
func MustParse(notation string) Range {
	r, err := ParseExFmt(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// FromUntyped builds a range from a decoded [lower, upper, step] document,
// as produced by encoding/json, yaml or toml decoders.
func FromUntyped(data interface{}) (Range, error) {
	packed, err := payload.ParsePacked(data)
	if err != nil {
		return Range{}, errors.Wrapf(ErrInvalidArgument, "malformed packed range: %v", err)
	}
	return FromPacked(packed[:])
}

// MarshalText implements encoding.TextMarshaler.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseExFmt(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalJSON encodes r as its packed [lower, upper, step] triple.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Unpack())
}

// UnmarshalJSON decodes a packed [lower, upper, step] triple.
func (r *Range) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return errors.Wrap(err, "failed to decode packed range")
	}

	parsed, err := FromUntyped(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
