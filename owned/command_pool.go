package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// CommandPool allocates command buffers for one queue family. Command buffers retain their pool.
type CommandPool struct {
	handleRef[core1_0.CommandPool]
	family int
}

func NewCommandPool(device Device, family int, flags core1_0.CommandPoolCreateFlags) (CommandPool, error) {
	driver, err := device.driverFor("CommandPool::Create")
	if err != nil {
		return CommandPool{}, err
	}

	handle, res, err := driver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            flags,
		QueueFamilyIndex: family,
	})
	if err != nil {
		return CommandPool{}, checkResult("CommandPool::Create", res, err)
	}

	return CommandPool{
		handleRef: refTo(newChild(device.Retain(), KindCommandPool, handle, func(handle core1_0.CommandPool) {
			driver.DestroyCommandPool(handle, nil)
		})),
		family: family,
	}, nil
}

func (p CommandPool) Retain() CommandPool {
	if !p.retain() {
		return CommandPool{}
	}
	return p
}

// Family returns the queue family the pool's command buffers are submitted to
func (p CommandPool) Family() int {
	return p.family
}

// Allocate creates a primary command buffer
func (p CommandPool) Allocate() (CommandBuffer, error) {
	return p.allocate(core1_0.CommandBufferLevelPrimary)
}

// AllocateSecondary creates a secondary command buffer, which can be executed from a primary one
// with CommandBuilder.ExecuteCommands
func (p CommandPool) AllocateSecondary() (CommandBuffer, error) {
	return p.allocate(core1_0.CommandBufferLevelSecondary)
}

func (p CommandPool) allocate(level core1_0.CommandBufferLevel) (CommandBuffer, error) {
	driver, handle, err := p.driverFor("CommandPool::Allocate", KindCommandPool)
	if err != nil {
		return CommandBuffer{}, err
	}

	buffers, res, err := driver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        handle,
		Level:              level,
		CommandBufferCount: 1,
	})
	if err != nil {
		return CommandBuffer{}, checkResult("CommandPool::Allocate", res, err)
	}
	if len(buffers) == 0 {
		return CommandBuffer{}, errors.AssertionFailedf("CommandPool::Allocate: driver returned no command buffer")
	}

	pool := p.Retain()
	return CommandBuffer{
		handleRef: refTo(newChild(p.Device().Retain(), KindCommandBuffer, buffers[0], func(buffer core1_0.CommandBuffer) {
			driver.FreeCommandBuffers(buffer)
		}, pool)),
		pool: pool,
	}, nil
}

// Reset returns every command buffer allocated from the pool to the initial state, optionally
// returning their memory to the system
func (p CommandPool) Reset(releaseResources bool) error {
	driver, handle, err := p.driverFor("CommandPool::Reset", KindCommandPool)
	if err != nil {
		return err
	}

	var flags core1_0.CommandPoolResetFlags
	if releaseResources {
		flags = core1_0.CommandPoolResetReleaseResources
	}

	res, err := driver.ResetCommandPool(handle, flags)
	return checkResult("CommandPool::Reset", res, err)
}
