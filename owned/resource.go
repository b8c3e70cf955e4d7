package owned

import (
	"sync"
	"sync/atomic"

	"github.com/vkngwrapper/arsenal/owned/internal/refs"
)

// ObjectKind names a wrapped native object type in logs and statistics
type ObjectKind string

const (
	KindInstance            ObjectKind = "Instance"
	KindDevice              ObjectKind = "Device"
	KindQueue               ObjectKind = "Queue"
	KindBuffer              ObjectKind = "Buffer"
	KindBufferView          ObjectKind = "BufferView"
	KindDeviceMemory        ObjectKind = "DeviceMemory"
	KindImage               ObjectKind = "Image"
	KindSwapchainImage      ObjectKind = "SwapchainImage"
	KindImageView           ObjectKind = "ImageView"
	KindSampler             ObjectKind = "Sampler"
	KindShaderModule        ObjectKind = "ShaderModule"
	KindPipelineCache       ObjectKind = "PipelineCache"
	KindPipelineLayout      ObjectKind = "PipelineLayout"
	KindRenderPass          ObjectKind = "RenderPass"
	KindPipeline            ObjectKind = "Pipeline"
	KindDescriptorSetLayout ObjectKind = "DescriptorSetLayout"
	KindDescriptorPool      ObjectKind = "DescriptorPool"
	KindDescriptorSet       ObjectKind = "DescriptorSet"
	KindFramebuffer         ObjectKind = "Framebuffer"
	KindCommandPool         ObjectKind = "CommandPool"
	KindCommandBuffer       ObjectKind = "CommandBuffer"
	KindFence               ObjectKind = "Fence"
	KindSemaphore           ObjectKind = "Semaphore"
	KindEvent               ObjectKind = "Event"
	KindQueryPool           ObjectKind = "QueryPool"
	KindSurface             ObjectKind = "Surface"
	KindSwapchain           ObjectKind = "Swapchain"
	KindDebugMessenger      ObjectKind = "DebugMessenger"
)

// releaser is satisfied by every wrapper type
type releaser interface {
	Release()
}

// resource is the shared implementation object behind a wrapper. It owns one native handle, the
// call that destroys it, and references to the wrappers that must outlive it.
//
// Every method is safe to call on a nil *resource, which is how the zero value of a wrapper
// behaves as the null state.
type resource[H any] struct {
	refs    refs.Counter
	handle  refs.Slot[H]
	kind    ObjectKind
	tracker *tracker
	destroy func(H)

	depMutex sync.Mutex
	deps     []releaser
}

// init prepares a resource holding a single reference. deps must already be retained by the caller;
// they are released in reverse order after the handle is destroyed. A nil destroy marks a
// handle that this wrapper does not own.
func (r *resource[H]) init(kind ObjectKind, tracker *tracker, destroy func(H), deps ...releaser) {
	r.refs.Init()
	r.kind = kind
	r.tracker = tracker
	r.destroy = destroy
	r.deps = deps
}

// fill stores a successfully created native handle
func (r *resource[H]) fill(handle H) {
	r.handle.Fill(handle)
	r.tracker.created(r.kind)
}

func (r *resource[H]) get() (H, bool) {
	if r == nil {
		var zero H
		return zero, false
	}
	return r.handle.Get()
}

func (r *resource[H]) live() bool {
	_, live := r.get()
	return live
}

func (r *resource[H]) acquire() bool {
	if r == nil {
		return false
	}
	return r.refs.Acquire()
}

func (r *resource[H]) references() int {
	if r == nil {
		return 0
	}
	return r.refs.Count()
}

// attach adds a dependency after construction, such as the memory a buffer is bound into.
// dep must already be retained.
func (r *resource[H]) attach(dep releaser) {
	r.depMutex.Lock()
	defer r.depMutex.Unlock()

	r.deps = append(r.deps, dep)
}

// release drops one reference. The last one destroys the handle, if it is live and owned, and
// then releases every dependency.
func (r *resource[H]) release() {
	if r == nil || !r.refs.Drop() {
		return
	}

	if handle, live := r.handle.Take(); live {
		if r.destroy != nil {
			r.destroy(handle)
		}
		r.tracker.destroyed(r.kind)
	}

	r.depMutex.Lock()
	deps := r.deps
	r.deps = nil
	r.depMutex.Unlock()

	for i := len(deps) - 1; i >= 0; i-- {
		deps[i].Release()
	}
}

// child is the implementation behind wrappers whose only state beyond the handle is the device
// that created them
type child[H any] struct {
	resource[H]
	device Device

	// bound is claimed by the first memory bind of a buffer or image
	bound atomic.Bool
}

// newChild wraps a handle that was just created from device. device and deps must already be
// retained; the device is released last.
func newChild[H any](device Device, kind ObjectKind, handle H, destroy func(H), deps ...releaser) *child[H] {
	c := &child[H]{device: device}
	c.init(kind, device.statsTracker(), destroy, append([]releaser{device}, deps...)...)
	c.fill(handle)
	return c
}

func (c *child[H]) res() *resource[H] {
	if c == nil {
		return nil
	}
	return &c.resource
}

func (c *child[H]) owner() Device {
	if c == nil {
		return Device{}
	}
	return c.device
}
