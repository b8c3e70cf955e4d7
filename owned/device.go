package owned

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/owned/internal/vulkan"
	"github.com/vkngwrapper/core/v3/core1_0"
)

var (
	newDeviceExtensions = vulkan.NewDeviceExtensions
	deviceDrivers       = func(extensions *vulkan.DeviceExtensions) SwapchainDriver {
		if extensions.Swapchain == nil {
			return nil
		}
		return extensions.Swapchain
	}
)

// Device is a logical device. Every resource created from it holds a reference to it, so the
// native device is destroyed only after all of them.
//
// The zero value is a null Device.
type Device struct {
	impl *deviceImpl
}

type deviceImpl struct {
	resource[core1_0.Device]

	driver         core1_0.CoreDeviceDriver
	instance       Instance
	physicalDevice PhysicalDevice
	extensions     *vulkan.DeviceExtensions
	swapchain      SwapchainDriver
}

// NewDevice creates a logical device from one of instance's physical devices. The device retains
// the instance.
func NewDevice(instance Instance, physicalDevice PhysicalDevice, options DeviceOptions) (Device, error) {
	if !instance.Initialized() {
		return Device{}, nullHandle("Device::Create", KindInstance)
	}

	handle, res, err := instance.Driver().CreateDevice(physicalDevice.Handle(), nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      options.queueCreateInfos(),
		EnabledFeatures:       options.Features,
		EnabledExtensionNames: options.Extensions,
	})
	if err != nil {
		return Device{}, checkResult("Device::Create", res, err)
	}

	driver, err := instance.Driver().BuildDeviceDriver(handle)
	if err != nil {
		// Without a device driver there is no way to call vkDestroyDevice
		instance.Logger().Error("device created but its driver could not be built; the native device leaks")
		return Device{}, errors.Wrap(err, "Device::BuildDriver")
	}

	extensions := newDeviceExtensions(driver, options.Extensions)
	instance = instance.Retain()
	impl := &deviceImpl{
		driver:         driver,
		instance:       instance,
		physicalDevice: physicalDevice,
		extensions:     extensions,
		swapchain:      deviceDrivers(extensions),
	}
	impl.init(KindDevice, instance.statsTracker(), func(core1_0.Device) {
		driver.DestroyDevice(nil)
	}, instance)
	impl.fill(handle)

	return Device{impl: impl}, nil
}

func (d *deviceImpl) res() *resource[core1_0.Device] {
	if d == nil {
		return nil
	}
	return &d.resource
}

// Handle returns the native device handle
func (d Device) Handle() core1_0.Device {
	handle, _ := d.impl.res().get()
	return handle
}

// Initialized returns true if the device has been created and not yet destroyed
func (d Device) Initialized() bool {
	return d.impl.res().live()
}

// Driver returns the device-level driver. It returns nil for a null Device.
func (d Device) Driver() core1_0.CoreDeviceDriver {
	if d.impl == nil {
		return nil
	}
	return d.impl.driver
}

// Instance returns the instance this device was created from, without retaining it
func (d Device) Instance() Instance {
	if d.impl == nil {
		return Instance{}
	}
	return d.impl.instance
}

func (d Device) PhysicalDevice() PhysicalDevice {
	if d.impl == nil {
		return PhysicalDevice{}
	}
	return d.impl.physicalDevice
}

func (d Device) Logger() *slog.Logger {
	return d.Instance().Logger()
}

// IsExtensionEnabled returns true if the named device extension was enabled at creation
func (d Device) IsExtensionEnabled(name string) bool {
	if d.impl == nil {
		return false
	}
	return d.impl.extensions.IsEnabled(name)
}

// GetQueue retrieves a queue that was created with the device. The queue retains the device.
func (d Device) GetQueue(family, index int) (Queue, error) {
	if !d.Initialized() {
		return Queue{}, nullHandle("Device::GetQueue", KindDevice)
	}

	handle := d.impl.driver.GetQueue(family, index)
	return Queue{
		handleRef: refTo(newChild(d.Retain(), KindQueue, handle, nil)),
		family:    family,
	}, nil
}

// WaitIdle blocks until every queue of the device is idle
func (d Device) WaitIdle() error {
	if !d.Initialized() {
		return nullHandle("Device::WaitIdle", KindDevice)
	}

	res, err := d.impl.driver.DeviceWaitIdle()
	return checkResult("Device::WaitIdle", res, err)
}

// Retain acquires another reference to the device. It returns a null Device if the device has
// already been destroyed.
func (d Device) Retain() Device {
	if !d.impl.res().acquire() {
		return Device{}
	}
	return d
}

// Release drops one reference. Dropping the last one destroys the device and releases the
// instance.
func (d Device) Release() {
	d.impl.res().release()
}

func (d Device) References() int {
	return d.impl.res().references()
}

func (d Device) statsTracker() *tracker {
	if d.impl == nil {
		return nil
	}
	return d.impl.tracker
}

// driverFor returns the device driver if the device is live and ErrNullHandle wrapped for op
// otherwise
func (d Device) driverFor(op string) (core1_0.CoreDeviceDriver, error) {
	if !d.Initialized() {
		return nil, nullHandle(op, KindDevice)
	}
	return d.impl.driver, nil
}
