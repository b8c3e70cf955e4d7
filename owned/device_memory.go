package owned

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/memutils"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// DeviceMemory is a single allocation from one memory type. Offsets and sizes inside it are
// managed by the caller; buffers and images bound into it retain it.
type DeviceMemory struct {
	handleRef[core1_0.DeviceMemory]
	size       int
	memoryType MemoryType
}

// NewDeviceMemory allocates size bytes from memoryType
func NewDeviceMemory(device Device, memoryType MemoryType, size int) (DeviceMemory, error) {
	driver, err := device.driverFor("DeviceMemory::Allocate")
	if err != nil {
		return DeviceMemory{}, err
	}

	handle, res, err := driver.AllocateMemory(nil, core1_0.MemoryAllocateInfo{
		AllocationSize:  size,
		MemoryTypeIndex: memoryType.Index,
	})
	if err != nil {
		return DeviceMemory{}, checkResult("DeviceMemory::Allocate", res, err)
	}

	return DeviceMemory{
		handleRef: refTo(newChild(device.Retain(), KindDeviceMemory, handle, func(handle core1_0.DeviceMemory) {
			driver.FreeMemory(handle, nil)
		})),
		size:       size,
		memoryType: memoryType,
	}, nil
}

func (m DeviceMemory) Retain() DeviceMemory {
	if !m.retain() {
		return DeviceMemory{}
	}
	return m
}

// Size returns the number of bytes that were allocated
func (m DeviceMemory) Size() int {
	return m.size
}

func (m DeviceMemory) MemoryType() MemoryType {
	return m.memoryType
}

// Commitment returns the number of bytes the driver has actually committed, which is only
// smaller than Size for lazily allocated memory
func (m DeviceMemory) Commitment() (int, error) {
	driver, handle, err := m.driverFor("DeviceMemory::Commitment", KindDeviceMemory)
	if err != nil {
		return 0, err
	}
	return driver.GetDeviceMemoryCommitment(handle), nil
}

// Map maps size bytes starting at offset into host memory. A negative size maps everything from
// offset to the end of the allocation.
func (m DeviceMemory) Map(offset, size int) (unsafe.Pointer, error) {
	driver, handle, err := m.driverFor("DeviceMemory::Map", KindDeviceMemory)
	if err != nil {
		return nil, err
	}

	if size < 0 {
		size = m.size - offset
	}
	if err := m.checkRange("DeviceMemory::Map", offset, size); err != nil {
		return nil, err
	}

	data, res, err := driver.MapMemory(handle, offset, size, 0)
	if err != nil {
		return nil, checkResult("DeviceMemory::Map", res, err)
	}
	return data, nil
}

func (m DeviceMemory) Unmap() {
	driver, handle, err := m.driverFor("DeviceMemory::Unmap", KindDeviceMemory)
	if err != nil {
		return
	}
	driver.UnmapMemory(handle)
}

// Flush makes host writes to a mapped range visible to the device. It is only needed for memory
// types that are not host coherent.
func (m DeviceMemory) Flush(offset, size int) error {
	driver, handle, err := m.driverFor("DeviceMemory::Flush", KindDeviceMemory)
	if err != nil {
		return err
	}

	res, err := driver.FlushMappedMemoryRanges(core1_0.MappedMemoryRange{
		Memory: handle,
		Offset: offset,
		Size:   size,
	})
	return checkResult("DeviceMemory::Flush", res, err)
}

// Invalidate makes device writes to a mapped range visible to the host. It is only needed for
// memory types that are not host coherent.
func (m DeviceMemory) Invalidate(offset, size int) error {
	driver, handle, err := m.driverFor("DeviceMemory::Invalidate", KindDeviceMemory)
	if err != nil {
		return err
	}

	res, err := driver.InvalidateMappedMemoryRanges(core1_0.MappedMemoryRange{
		Memory: handle,
		Offset: offset,
		Size:   size,
	})
	return checkResult("DeviceMemory::Invalidate", res, err)
}

func (m DeviceMemory) checkRange(op string, offset, size int) error {
	return checkSpan(op, memutils.Range{Offset: offset, Size: size, Capacity: m.size})
}

// bindTarget validates that a resource created by device with the given requirements can be
// bound at offset and returns the native memory handle
func (m DeviceMemory) bindTarget(op string, device Device, offset, size int, requirements *core1_0.MemoryRequirements) (core1_0.DeviceMemory, error) {
	handle, live := m.impl.res().get()
	if !live {
		return handle, nullHandle(op, KindDeviceMemory)
	}

	if m.Device().impl != device.impl {
		return handle, errors.Wrapf(ErrMixedDevices, "%s", op)
	}

	if requirements == nil {
		return handle, checkSpan(op, memutils.Range{Offset: offset, Size: size, Capacity: m.size})
	}

	if !m.memoryType.Supports(requirements.MemoryTypeBits) {
		return handle, errors.Newf("%s: memory type %d is not allowed by type bits %b", op, m.memoryType.Index, requirements.MemoryTypeBits)
	}

	if size <= 0 {
		size = requirements.Size
	}

	return handle, checkSpan(op, memutils.Range{
		Offset:    offset,
		Size:      size,
		Capacity:  m.size,
		Alignment: uint(requirements.Alignment),
	})
}

func checkSpan(op string, span memutils.Range) error {
	memutils.DebugValidate(span)

	if err := span.Validate(); err != nil {
		return errors.Mark(errors.Wrap(err, op), ErrOutOfRange)
	}
	return nil
}
