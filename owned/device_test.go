package owned

import (
	"io"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/core/v3/mocks/mocks1_2"
	"go.uber.org/mock/gomock"
)

type DeviceSetup struct {
	MemoryTypes      []core1_0.MemoryType
	MemoryHeaps      []core1_0.MemoryHeap
	DeviceProperties core1_0.PhysicalDeviceProperties
	DeviceOptions    DeviceOptions
	// PreNewMock runs after the instance exists and before the device is created
	PreNewMock func(instanceDriver *mocks1_2.MockCoreInstanceDriver, deviceDriver *mocks1_2.MockCoreDeviceDriver)
}

var defaultMemorySetup = DeviceSetup{
	MemoryTypes: []core1_0.MemoryType{
		{
			PropertyFlags: core1_0.MemoryPropertyDeviceLocal,
			HeapIndex:     0,
		},
		{
			PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent,
			HeapIndex:     1,
		},
	},
	MemoryHeaps: []core1_0.MemoryHeap{
		{
			Size:  1000000,
			Flags: core1_0.MemoryHeapDeviceLocal,
		},
		{
			Size:  500000,
			Flags: 0,
		},
	},
	DeviceProperties: core1_0.PhysicalDeviceProperties{
		DriverType: core1_0.PhysicalDeviceTypeDiscreteGPU,
	},
}

// readyInstance creates an instance over mocked drivers with one physical device. The instance
// is released when the test ends.
func readyInstance(t *testing.T, ctrl *gomock.Controller, setup DeviceSetup) (*mocks1_2.MockCoreInstanceDriver, Instance) {
	global := mockLoader(ctrl, nil, nil)
	mockInstance, instanceHandle := newMockInstance(ctrl, global)
	physicalDevice := mocks.NewDummyPhysicalDevice(instanceHandle, common.Vulkan1_2)

	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(instanceHandle, core1_0.VKSuccess, nil)

	mockInstance.EXPECT().EnumeratePhysicalDevices().Return([]core1_0.PhysicalDevice{physicalDevice}, core1_0.VKSuccess, nil)
	mockInstance.EXPECT().GetPhysicalDeviceProperties(physicalDevice).Return(&setup.DeviceProperties, nil)
	mockInstance.EXPECT().GetPhysicalDeviceFeatures(physicalDevice).Return(&core1_0.PhysicalDeviceFeatures{})
	mockInstance.EXPECT().GetPhysicalDeviceQueueFamilyProperties(physicalDevice).Return(nil)
	mockInstance.EXPECT().GetPhysicalDeviceMemoryProperties(physicalDevice).Return(&core1_0.PhysicalDeviceMemoryProperties{
		MemoryTypes: setup.MemoryTypes,
		MemoryHeaps: setup.MemoryHeaps,
	})
	mockInstance.EXPECT().DestroyInstance(nil)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	instance, err := NewInstance(logger, global, InstanceOptions{ApplicationName: t.Name()})
	require.NoError(t, err)
	t.Cleanup(instance.Release)

	return mockInstance, instance
}

// readyDevice creates an instance and a device from its first physical device. Both are
// released when the test ends; releasing them earlier is harmless.
func readyDevice(t *testing.T, ctrl *gomock.Controller, setup DeviceSetup) (*mocks1_2.MockCoreDeviceDriver, Device) {
	mockInstance, instance := readyInstance(t, ctrl, setup)
	mockDevice, deviceHandle := newMockDevice(ctrl, mockInstance)

	if setup.PreNewMock != nil {
		setup.PreNewMock(mockInstance, mockDevice)
	}

	physicalDevice := instance.PhysicalDevices()[0]
	mockInstance.EXPECT().CreateDevice(physicalDevice.Handle(), nil, gomock.Any()).Return(deviceHandle, core1_0.VKSuccess, nil)
	mockDevice.EXPECT().DestroyDevice(nil)

	device, err := NewDevice(instance, physicalDevice, setup.DeviceOptions)
	require.NoError(t, err)
	t.Cleanup(device.Release)

	return mockDevice, device
}

// newMockDevice returns a device driver that mockInstance builds for the returned handle
func newMockDevice(ctrl *gomock.Controller, mockInstance *mocks1_2.MockCoreInstanceDriver) (*mocks1_2.MockCoreDeviceDriver, core1_0.Device) {
	handle := mocks.NewDummyDevice(common.Vulkan1_2, nil)
	mockDevice := mocks1_2.NewMockCoreDeviceDriver(ctrl)
	mockDevice.EXPECT().Device().Return(handle).AnyTimes()
	mockDevice.EXPECT().InstanceDriver().Return(mockInstance).AnyTimes()
	mockInstance.EXPECT().BuildDeviceDriver(handle).Return(mockDevice, nil)
	return mockDevice, handle
}

func TestDeviceRetainsInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockInstance, instance := readyInstance(t, ctrl, defaultMemorySetup)

	mockDevice, deviceHandle := newMockDevice(ctrl, mockInstance)

	physicalDevice := instance.PhysicalDevices()[0]
	mockInstance.EXPECT().CreateDevice(physicalDevice.Handle(), nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: []core1_0.DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: 0,
				QueuePriorities:  []float32{1},
			},
		},
	}).Return(deviceHandle, core1_0.VKSuccess, nil)

	device, err := NewDevice(instance, physicalDevice, DeviceOptions{})
	require.NoError(t, err)
	require.True(t, device.Initialized())
	require.Equal(t, deviceHandle, device.Handle())
	require.Equal(t, 2, instance.References())
	require.Equal(t, 1, instance.LiveObjects(KindDevice))

	// Dropping the caller's instance reference leaves it alive under the device
	instance.Release()
	require.True(t, instance.Initialized())

	mockDevice.EXPECT().DestroyDevice(nil).Do(func(*loader.AllocationCallbacks) {
		require.True(t, instance.Initialized())
	})
	device.Release()

	require.False(t, device.Initialized())
	require.False(t, instance.Initialized())
}

func TestDeviceCreateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockInstance, instance := readyInstance(t, ctrl, defaultMemorySetup)

	physicalDevice := instance.PhysicalDevices()[0]
	mockInstance.EXPECT().CreateDevice(physicalDevice.Handle(), nil, gomock.Any()).Return(core1_0.Device{}, core1_0.VKErrorInitializationFailed, core1_0.VKErrorInitializationFailed.ToError())

	device, err := NewDevice(instance, physicalDevice, DeviceOptions{})
	require.Error(t, err)
	require.False(t, device.Initialized())

	result, ok := ResultOf(err)
	require.True(t, ok)
	require.Equal(t, core1_0.VKErrorInitializationFailed, result)

	// A failed create takes no reference
	require.Equal(t, 1, instance.References())
}

func TestDeviceDriverBuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockInstance, instance := readyInstance(t, ctrl, defaultMemorySetup)

	physicalDevice := instance.PhysicalDevices()[0]
	handle := mocks.NewDummyDevice(common.Vulkan1_2, nil)
	mockInstance.EXPECT().CreateDevice(physicalDevice.Handle(), nil, gomock.Any()).Return(handle, core1_0.VKSuccess, nil)
	mockInstance.EXPECT().BuildDeviceDriver(handle).Return(nil, errors.New("vkGetDeviceProcAddr unavailable"))

	device, err := NewDevice(instance, physicalDevice, DeviceOptions{})
	require.ErrorContains(t, err, "vkGetDeviceProcAddr unavailable")
	require.False(t, device.Initialized())
	require.Equal(t, 1, instance.References())
	require.Equal(t, 0, instance.LiveObjects(KindDevice))
}

func TestNullDevice(t *testing.T) {
	var device Device

	require.False(t, device.Initialized())
	require.Equal(t, 0, device.References())
	require.False(t, device.Retain().Initialized())
	require.False(t, device.IsExtensionEnabled("VK_KHR_swapchain"))
	device.Release()

	_, err := device.GetQueue(0, 0)
	require.ErrorIs(t, err, ErrNullHandle)
	require.ErrorIs(t, device.WaitIdle(), ErrNullHandle)

	_, err = NewBuffer(device, 16, core1_0.BufferUsageStorageBuffer)
	require.ErrorIs(t, err, ErrNullHandle)
}

func TestDeviceWaitIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKSuccess, nil)
	require.NoError(t, device.WaitIdle())

	driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKErrorDeviceLost, core1_0.VKErrorDeviceLost.ToError())
	err := device.WaitIdle()
	require.Error(t, err)

	result, ok := ResultOf(err)
	require.True(t, ok)
	require.Equal(t, core1_0.VKErrorDeviceLost, result)
}

func TestQueueRetainsDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	driver.EXPECT().GetQueue(0, 0).Return(core1_0.Queue{})

	queue, err := device.GetQueue(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, queue.Family())
	require.Equal(t, 2, device.References())

	// Queues are not destroyable natively; releasing only drops the device reference
	queue.Release()
	require.False(t, queue.Initialized())
	require.Equal(t, 1, device.References())
}
