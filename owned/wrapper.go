package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// handleRef carries the methods shared by every wrapper built on child. Wrapper types embed it
// and add a Retain that returns their own type.
type handleRef[H any] struct {
	impl *child[H]
}

func refTo[H any](c *child[H]) handleRef[H] {
	return handleRef[H]{impl: c}
}

// Handle returns the native handle, or the zero handle if the wrapper is null
func (r handleRef[H]) Handle() H {
	handle, _ := r.impl.res().get()
	return handle
}

// Initialized returns true if the native object has been created and not yet destroyed
func (r handleRef[H]) Initialized() bool {
	return r.impl.res().live()
}

// Device returns the device that created the object, without retaining it
func (r handleRef[H]) Device() Device {
	return r.impl.owner()
}

// Release drops one reference. Dropping the last one destroys the native object and then
// releases everything it depends on.
func (r handleRef[H]) Release() {
	r.impl.res().release()
}

// References returns the number of live references
func (r handleRef[H]) References() int {
	return r.impl.res().references()
}

func (r handleRef[H]) retain() bool {
	return r.impl.res().acquire()
}

// driverFor returns the device driver if the object is live and ErrNullHandle wrapped for op
// otherwise
func (r handleRef[H]) driverFor(op string, kind ObjectKind) (core1_0.CoreDeviceDriver, H, error) {
	handle, live := r.impl.res().get()
	if !live {
		return nil, handle, nullHandle(op, kind)
	}
	return r.impl.device.Driver(), handle, nil
}
