package intrange

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when an operation is called with an argument
// outside of its domain. Returned errors wrap it, test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
