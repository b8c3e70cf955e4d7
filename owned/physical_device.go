package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"golang.org/x/exp/slices"
)

// PhysicalDevice is a snapshot of one GPU's capabilities, taken when the owning Instance was
// created. It is a plain value: copying it does not retain anything, and it is only usable
// while its Instance is alive.
type PhysicalDevice struct {
	handle core1_0.PhysicalDevice
	driver core1_0.CoreInstanceDriver

	properties    core1_0.PhysicalDeviceProperties
	features      core1_0.PhysicalDeviceFeatures
	queueFamilies []QueueFamily
	memoryTypes   []MemoryType
	memoryHeaps   []core1_0.MemoryHeap
}

func snapshotPhysicalDevice(driver core1_0.CoreInstanceDriver, handle core1_0.PhysicalDevice) (PhysicalDevice, error) {
	properties, err := driver.GetPhysicalDeviceProperties(handle)
	if err != nil {
		return PhysicalDevice{}, errors.Mark(errors.Wrap(err, "PhysicalDevice::Properties"), ErrEnumeration)
	}

	device := PhysicalDevice{
		handle: handle,
		driver: driver,
	}
	if properties != nil {
		device.properties = *properties
	}

	if features := driver.GetPhysicalDeviceFeatures(handle); features != nil {
		device.features = *features
	}

	for index, family := range driver.GetPhysicalDeviceQueueFamilyProperties(handle) {
		device.queueFamilies = append(device.queueFamilies, QueueFamily{
			Index:          index,
			Count:          family.QueueCount,
			Flags:          family.QueueFlags,
			physicalDevice: handle,
		})
	}

	memoryProperties := driver.GetPhysicalDeviceMemoryProperties(handle)
	if memoryProperties != nil {
		device.memoryHeaps = slices.Clone(memoryProperties.MemoryHeaps)
		for index, memoryType := range memoryProperties.MemoryTypes {
			heapSize := 0
			if memoryType.HeapIndex < len(memoryProperties.MemoryHeaps) {
				heapSize = memoryProperties.MemoryHeaps[memoryType.HeapIndex].Size
			}

			device.memoryTypes = append(device.memoryTypes, MemoryType{
				Index:     index,
				HeapIndex: memoryType.HeapIndex,
				Flags:     memoryType.PropertyFlags,
				HeapSize:  heapSize,
			})
		}
	}

	return device, nil
}

// Handle returns the native physical device handle
func (d PhysicalDevice) Handle() core1_0.PhysicalDevice {
	return d.handle
}

func (d PhysicalDevice) Properties() core1_0.PhysicalDeviceProperties {
	return d.properties
}

func (d PhysicalDevice) Features() core1_0.PhysicalDeviceFeatures {
	return d.features
}

// QueueFamilies returns the device's queue families in driver order
func (d PhysicalDevice) QueueFamilies() []QueueFamily {
	return slices.Clone(d.queueFamilies)
}

// MemoryTypes returns the device's memory types in driver order; a type's position is its Index
func (d PhysicalDevice) MemoryTypes() []MemoryType {
	return slices.Clone(d.memoryTypes)
}

func (d PhysicalDevice) MemoryHeaps() []core1_0.MemoryHeap {
	return slices.Clone(d.memoryHeaps)
}

// FindMemoryType returns the first memory type that is allowed by typeBits, usually
// core1_0.MemoryRequirements.MemoryTypeBits, and has every flag in required
func (d PhysicalDevice) FindMemoryType(typeBits uint32, required core1_0.MemoryPropertyFlags) (MemoryType, error) {
	for _, memoryType := range d.memoryTypes {
		if memoryType.Supports(typeBits) && memoryType.Flags&required == required {
			return memoryType, nil
		}
	}

	return MemoryType{}, errors.Newf("no memory type in bits %b has properties %s", typeBits, required)
}

// FormatProperties queries the features the device supports for a format
func (d PhysicalDevice) FormatProperties(format Format) *core1_0.FormatProperties {
	return d.driver.GetPhysicalDeviceFormatProperties(d.handle, format)
}

// Extensions returns the sorted names of the device extensions this device supports
func (d PhysicalDevice) Extensions() ([]string, error) {
	extensions, res, err := d.driver.EnumerateDeviceExtensionProperties(d.handle)
	if err != nil {
		return nil, checkEnumeration("PhysicalDevice::Extensions", res, err)
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

func (d PhysicalDevice) SurfaceFormats(surface Surface) ([]khr_surface.SurfaceFormat, error) {
	driver, err := surface.extensionDriver()
	if err != nil {
		return nil, err
	}

	formats, res, err := driver.GetPhysicalDeviceSurfaceFormats(surface.Handle(), d.handle)
	if err != nil {
		return nil, checkEnumeration("PhysicalDevice::SurfaceFormats", res, err)
	}
	return formats, nil
}

func (d PhysicalDevice) SurfaceCapabilities(surface Surface) (*khr_surface.SurfaceCapabilities, error) {
	driver, err := surface.extensionDriver()
	if err != nil {
		return nil, err
	}

	capabilities, res, err := driver.GetPhysicalDeviceSurfaceCapabilities(surface.Handle(), d.handle)
	if err != nil {
		return nil, checkResult("PhysicalDevice::SurfaceCapabilities", res, err)
	}
	return capabilities, nil
}

func (d PhysicalDevice) SurfacePresentModes(surface Surface) ([]khr_surface.PresentMode, error) {
	driver, err := surface.extensionDriver()
	if err != nil {
		return nil, err
	}

	modes, res, err := driver.GetPhysicalDeviceSurfacePresentModes(surface.Handle(), d.handle)
	if err != nil {
		return nil, checkEnumeration("PhysicalDevice::SurfacePresentModes", res, err)
	}
	return modes, nil
}

// QueueFamily describes one of a physical device's queue families
type QueueFamily struct {
	Index int
	// Count is the number of queues in the family
	Count int
	Flags core1_0.QueueFlags

	physicalDevice core1_0.PhysicalDevice
}

func (f QueueFamily) IsGraphics() bool {
	return f.Flags&core1_0.QueueGraphics != 0
}

func (f QueueFamily) IsCompute() bool {
	return f.Flags&core1_0.QueueCompute != 0
}

func (f QueueFamily) IsTransfer() bool {
	return f.Flags&core1_0.QueueTransfer != 0
}

func (f QueueFamily) IsSparseBinding() bool {
	return f.Flags&core1_0.QueueSparseBinding != 0
}

// SupportsSurface returns true if queues of this family can present to surface
func (f QueueFamily) SupportsSurface(surface Surface) (bool, error) {
	driver, err := surface.extensionDriver()
	if err != nil {
		return false, err
	}

	supported, res, err := driver.GetPhysicalDeviceSurfaceSupport(surface.Handle(), f.physicalDevice, f.Index)
	if err != nil {
		return false, checkResult("QueueFamily::SupportsSurface", res, err)
	}
	return supported, nil
}

// MemoryType describes one of a physical device's memory types and the size of its heap
type MemoryType struct {
	Index     int
	HeapIndex int
	Flags     core1_0.MemoryPropertyFlags
	HeapSize  int
}

func (t MemoryType) IsDeviceLocal() bool {
	return t.Flags&core1_0.MemoryPropertyDeviceLocal != 0
}

func (t MemoryType) IsHostVisible() bool {
	return t.Flags&core1_0.MemoryPropertyHostVisible != 0
}

func (t MemoryType) IsHostCoherent() bool {
	return t.Flags&core1_0.MemoryPropertyHostCoherent != 0
}

func (t MemoryType) IsHostCached() bool {
	return t.Flags&core1_0.MemoryPropertyHostCached != 0
}

func (t MemoryType) IsLazilyAllocated() bool {
	return t.Flags&core1_0.MemoryPropertyLazilyAllocated != 0
}

// Supports returns true if this type is one of the types allowed by typeBits
func (t MemoryType) Supports(typeBits uint32) bool {
	return typeBits&(1<<uint(t.Index)) != 0
}
