package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Buffer is a linear array of device data. Binding it to memory retains the memory.
type Buffer struct {
	handleRef[core1_0.Buffer]
	size  int
	usage core1_0.BufferUsageFlags
}

func NewBuffer(device Device, size int, usage core1_0.BufferUsageFlags) (Buffer, error) {
	driver, err := device.driverFor("Buffer::Create")
	if err != nil {
		return Buffer{}, err
	}

	handle, res, err := driver.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        size,
		Usage:       usage,
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return Buffer{}, checkResult("Buffer::Create", res, err)
	}

	return Buffer{
		handleRef: refTo(newChild(device.Retain(), KindBuffer, handle, func(handle core1_0.Buffer) {
			driver.DestroyBuffer(handle, nil)
		})),
		size:  size,
		usage: usage,
	}, nil
}

func (b Buffer) Retain() Buffer {
	if !b.retain() {
		return Buffer{}
	}
	return b
}

// Size returns the size the buffer was created with
func (b Buffer) Size() int {
	return b.size
}

func (b Buffer) Usage() core1_0.BufferUsageFlags {
	return b.usage
}

// MemoryRequirements queries the size, alignment and memory types the buffer needs
func (b Buffer) MemoryRequirements() (*core1_0.MemoryRequirements, error) {
	driver, handle, err := b.driverFor("Buffer::MemoryRequirements", KindBuffer)
	if err != nil {
		return nil, err
	}
	return driver.GetBufferMemoryRequirements(handle), nil
}

// Bind attaches the buffer to size bytes of memory starting at offset. A size of 0 uses the
// size from the buffer's memory requirements. The buffer retains memory until it is destroyed.
// A buffer can be bound once, to memory from its own device.
func (b Buffer) Bind(memory DeviceMemory, offset, size int) error {
	b.Device().Logger().Debug("Buffer::Bind")

	driver, handle, err := b.driverFor("Buffer::Bind", KindBuffer)
	if err != nil {
		return err
	}

	memoryHandle, err := memory.bindTarget("Buffer::Bind", b.Device(), offset, size, driver.GetBufferMemoryRequirements(handle))
	if err != nil {
		return err
	}

	if !b.impl.bound.CompareAndSwap(false, true) {
		return errors.Wrapf(ErrAlreadyBound, "Buffer::Bind")
	}

	res, err := driver.BindBufferMemory(handle, memoryHandle, offset)
	if err != nil {
		b.impl.bound.Store(false)
		return checkResult("Buffer::Bind", res, err)
	}

	b.impl.attach(memory.Retain())
	return nil
}
