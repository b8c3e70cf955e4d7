package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Queue is a device queue. Queues cannot be destroyed natively; a Queue retains its device so
// the device outlives every submission made through it.
type Queue struct {
	handleRef[core1_0.Queue]
	family int
}

// Retain acquires another reference to the queue
func (q Queue) Retain() Queue {
	if !q.retain() {
		return Queue{}
	}
	return q
}

// Family returns the index of the queue family the queue belongs to
func (q Queue) Family() int {
	return q.family
}

// SubmitOptions is one batch of work for Queue.SubmitWithSync
type SubmitOptions struct {
	CommandBuffers []CommandBuffer
	// WaitSemaphores are waited on before the stage at the same position in WaitStages
	WaitSemaphores   []Semaphore
	WaitStages       []PipelineStage
	SignalSemaphores []Semaphore
	// Fence is signaled when the batch completes. It may be nil.
	Fence *Fence
}

// Submit queues command buffers for execution and signals fence, which may be nil, when they
// complete
func (q Queue) Submit(buffers []CommandBuffer, fence *Fence) error {
	return q.SubmitWithSync(SubmitOptions{
		CommandBuffers: buffers,
		Fence:          fence,
	})
}

// SubmitWithSync queues command buffers for execution with semaphore synchronization
func (q Queue) SubmitWithSync(options SubmitOptions) error {
	driver, handle, err := q.driverFor("Queue::Submit", KindQueue)
	if err != nil {
		return err
	}

	var fence *core1_0.Fence
	if options.Fence != nil && options.Fence.Initialized() {
		fenceHandle := options.Fence.Handle()
		fence = &fenceHandle
	}

	commandBuffers, err := liveHandlesOf[core1_0.CommandBuffer]("Queue::Submit", KindCommandBuffer, options.CommandBuffers)
	if err != nil {
		return err
	}

	waitSemaphores, err := liveHandlesOf[core1_0.Semaphore]("Queue::Submit", KindSemaphore, options.WaitSemaphores)
	if err != nil {
		return err
	}

	signalSemaphores, err := liveHandlesOf[core1_0.Semaphore]("Queue::Submit", KindSemaphore, options.SignalSemaphores)
	if err != nil {
		return err
	}

	res, err := driver.QueueSubmit(handle, fence, core1_0.SubmitInfo{
		WaitSemaphores:   waitSemaphores,
		WaitDstStageMask: nativeStages(options.WaitStages),
		CommandBuffers:   commandBuffers,
		SignalSemaphores: signalSemaphores,
	})
	return checkResult("Queue::Submit", res, err)
}

// Present queues image for presentation once every semaphore in wait is signaled. The returned
// result distinguishes success from khr_swapchain.VKSuboptimal.
func (q Queue) Present(image SwapchainImage, wait []Semaphore) (common.VkResult, error) {
	_, handle, err := q.driverFor("Queue::Present", KindQueue)
	if err != nil {
		return core1_0.VKErrorUnknown, err
	}

	swapchain := image.Swapchain()
	extension, err := swapchain.extensionDriver("Queue::Present")
	if err != nil {
		return core1_0.VKErrorUnknown, err
	}

	waitSemaphores, err := liveHandlesOf[core1_0.Semaphore]("Queue::Present", KindSemaphore, wait)
	if err != nil {
		return core1_0.VKErrorUnknown, err
	}

	res, err := extension.QueuePresent(handle, khr_swapchain.PresentInfo{
		WaitSemaphores: waitSemaphores,
		Swapchains:     []khr_swapchain.Swapchain{swapchain.Handle()},
		ImageIndices:   []int{image.Index()},
	})
	if err != nil {
		return res, checkResult("Queue::Present", res, err)
	}
	return res, nil
}

// WaitIdle blocks until all work submitted to the queue is complete
func (q Queue) WaitIdle() error {
	driver, handle, err := q.driverFor("Queue::WaitIdle", KindQueue)
	if err != nil {
		return err
	}

	res, err := driver.QueueWaitIdle(handle)
	return checkResult("Queue::WaitIdle", res, err)
}

// liveHandlesOf is handlesOf for arguments that must all be live. A null wrapper fails the whole
// list with ErrNullHandle.
func liveHandlesOf[H any, W interface {
	Handle() H
	Initialized() bool
}](op string, kind ObjectKind, wrappers []W) ([]H, error) {
	for index, wrapper := range wrappers {
		if !wrapper.Initialized() {
			return nil, errors.Wrapf(ErrNullHandle, "%s: %s at index %d", op, kind, index)
		}
	}
	return handlesOf[H](wrappers), nil
}

// handlesOf collects the native handles of a list of wrappers
func handlesOf[H any, W interface{ Handle() H }](wrappers []W) []H {
	if len(wrappers) == 0 {
		return nil
	}

	handles := make([]H, 0, len(wrappers))
	for _, wrapper := range wrappers {
		handles = append(handles, wrapper.Handle())
	}
	return handles
}
