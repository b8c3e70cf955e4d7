package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

func CheckPow2[T constraints.Integer](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	if alignment == 0 {
		return value
	}
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

func AlignDown(value int, alignment uint) int {
	if alignment == 0 {
		return value
	}
	return value & int(^(alignment - 1))
}

// Range is a caller-managed span of bytes inside a fixed-size parent, such as a resource bound
// into a device memory allocation
type Range struct {
	Offset    int
	Size      int
	Capacity  int
	Alignment uint
}

// Validate reports whether the span starts on its alignment and fits inside its parent
func (r Range) Validate() error {
	if r.Offset < 0 || r.Size < 0 {
		return cerrors.Wrapf(OutOfRangeError, "offset %d and size %d must not be negative", r.Offset, r.Size)
	}

	if r.Alignment > 0 {
		if err := CheckPow2(r.Alignment, "alignment"); err != nil {
			return err
		}

		if AlignUp(r.Offset, r.Alignment) != r.Offset {
			return cerrors.Wrapf(MisalignedError, "offset %d is not aligned to %d", r.Offset, r.Alignment)
		}
	}

	if r.Offset+r.Size > r.Capacity {
		return cerrors.Wrapf(OutOfRangeError, "offset %d places the end of the range %d past the end of the parent, which is size %d", r.Offset, r.Offset+r.Size, r.Capacity)
	}

	return nil
}
