package owned

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Fence is a device-to-host synchronization primitive
type Fence struct {
	handleRef[core1_0.Fence]
}

// NewFence creates a fence, optionally already in the signaled state
func NewFence(device Device, signaled bool) (Fence, error) {
	driver, err := device.driverFor("Fence::Create")
	if err != nil {
		return Fence{}, err
	}

	var info core1_0.FenceCreateInfo
	if signaled {
		info.Flags = core1_0.FenceCreateSignaled
	}

	handle, res, err := driver.CreateFence(nil, info)
	if err != nil {
		return Fence{}, checkResult("Fence::Create", res, err)
	}

	return Fence{refTo(newChild(device.Retain(), KindFence, handle, func(handle core1_0.Fence) {
		driver.DestroyFence(handle, nil)
	}))}, nil
}

// Retain acquires another reference to the fence
func (f Fence) Retain() Fence {
	if !f.retain() {
		return Fence{}
	}
	return f
}

// Reset returns the fence to the unsignaled state
func (f Fence) Reset() error {
	return ResetFences(f)
}

// Status reports whether the fence is signaled without waiting
func (f Fence) Status() (SignalStatus, error) {
	driver, handle, err := f.driverFor("Fence::Status", KindFence)
	if err != nil {
		return Unsignaled, err
	}

	res, err := driver.GetFenceStatus(handle)
	switch {
	case res == core1_0.VKNotReady:
		return Unsignaled, nil
	case err != nil:
		return Unsignaled, checkResult("Fence::Status", res, err)
	}
	return Signaled, nil
}

// Wait blocks until the fence is signaled or timeout elapses
func (f Fence) Wait(timeout time.Duration) (WaitResult, error) {
	return waitForFences("Fence::Wait", true, timeout, []Fence{f})
}

// ResetFences resets every fence in one call. All of the fences must come from the same device.
func ResetFences(fences ...Fence) error {
	if len(fences) == 0 {
		return nil
	}

	driver, handles, err := fenceHandles("Fence::Reset", fences)
	if err != nil {
		return err
	}

	res, err := driver.ResetFences(handles...)
	return checkResult("Fence::Reset", res, err)
}

// WaitAll blocks until every fence is signaled or timeout elapses. All of the fences must come
// from the same device.
func WaitAll(timeout time.Duration, fences ...Fence) (WaitResult, error) {
	return waitForFences("Fence::WaitAll", true, timeout, fences)
}

// WaitAny blocks until at least one fence is signaled or timeout elapses. All of the fences must
// come from the same device.
func WaitAny(timeout time.Duration, fences ...Fence) (WaitResult, error) {
	return waitForFences("Fence::WaitAny", false, timeout, fences)
}

func waitForFences(op string, waitAll bool, timeout time.Duration, fences []Fence) (WaitResult, error) {
	if len(fences) == 0 {
		return WaitSuccess, nil
	}

	driver, handles, err := fenceHandles(op, fences)
	if err != nil {
		return WaitTimeout, err
	}

	res, err := driver.WaitForFences(waitAll, timeout, handles...)
	switch {
	case res == core1_0.VKTimeout:
		return WaitTimeout, nil
	case err != nil:
		return WaitTimeout, checkResult(op, res, err)
	}
	return WaitSuccess, nil
}

// fenceHandles checks that every fence is live and was created by the same device
func fenceHandles(op string, fences []Fence) (core1_0.CoreDeviceDriver, []core1_0.Fence, error) {
	var device *deviceImpl
	handles := make([]core1_0.Fence, 0, len(fences))

	for _, fence := range fences {
		handle, live := fence.impl.res().get()
		if !live {
			return nil, nil, nullHandle(op, KindFence)
		}

		owner := fence.Device().impl
		if device == nil {
			device = owner
		} else if owner != device {
			return nil, nil, errors.Wrapf(ErrMixedDevices, "%s", op)
		}

		handles = append(handles, handle)
	}

	return device.driver, handles, nil
}
