package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// OutOfRangeError is returned from Range.Validate when a span does not fit inside its parent
var OutOfRangeError error = errors.New("range exceeds its parent")

// MisalignedError is returned from Range.Validate when a span does not start on its alignment
var MisalignedError error = errors.New("range is misaligned")
