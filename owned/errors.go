package owned

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
)

var (
	// ErrEnumeration marks a failure of a count-then-fill capability query, so callers can tell
	// "the query failed" apart from "there was nothing to report"
	ErrEnumeration = errors.New("enumeration failed")
	// ErrMixedDevices is returned when an operation is given objects created by more than one
	// device, such as a batch of fences or a buffer and the memory it is bound into
	ErrMixedDevices = errors.New("objects belong to more than one device")
	// ErrAlreadyBound is returned when a buffer or image that is already bound to memory is bound
	// again
	ErrAlreadyBound = errors.New("already bound to memory")
	// ErrInvalidIndexType is returned when an IndexType has no native equivalent
	ErrInvalidIndexType = errors.New("invalid index type")
	// ErrNullHandle is returned when an operation is attempted on a wrapper whose native handle
	// was never created or has already been destroyed
	ErrNullHandle = errors.New("native handle is null")
	// ErrOutOfRange is returned when a caller-managed offset or size falls outside its parent
	ErrOutOfRange = errors.New("out of range")
	// ErrExtensionNotEnabled is returned when an operation requires an extension that was not
	// enabled when the instance or device was created
	ErrExtensionNotEnabled = errors.New("extension not enabled")
	// ErrNotRecording is returned when a CommandBuilder is used outside of the Record call that
	// produced it
	ErrNotRecording = errors.New("command buffer is not recording")
)

// VulkanError is a native call that did not succeed. It carries the wrapper operation that made
// the call and the native status code.
type VulkanError struct {
	Op     string
	Result common.VkResult
	cause  error
}

func (e *VulkanError) Error() string {
	if e.cause != nil {
		return e.Op + ": " + e.cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Result)
}

func (e *VulkanError) Unwrap() error {
	return e.cause
}

// checkResult converts the (result, error) pair returned by a driver call into a *VulkanError
func checkResult(op string, result common.VkResult, err error) error {
	if err == nil {
		return nil
	}

	return &VulkanError{Op: op, Result: result, cause: err}
}

// checkEnumeration is checkResult for count-then-fill queries; the error is also marked with
// ErrEnumeration
func checkEnumeration(op string, result common.VkResult, err error) error {
	if err == nil {
		return nil
	}

	return errors.Mark(checkResult(op, result, err), ErrEnumeration)
}

// ResultOf extracts the native status code from an error returned by this package. It returns
// false if no native call is involved.
func ResultOf(err error) (common.VkResult, bool) {
	var vkErr *VulkanError
	if errors.As(err, &vkErr) {
		return vkErr.Result, true
	}
	return 0, false
}

func nullHandle(op string, kind ObjectKind) error {
	return errors.Wrapf(ErrNullHandle, "%s: %s", op, kind)
}
