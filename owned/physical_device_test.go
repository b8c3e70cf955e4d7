package owned

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"go.uber.org/mock/gomock"
)

func TestMemoryTypeSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, device := readyDevice(t, ctrl, defaultMemorySetup)

	memoryTypes := device.PhysicalDevice().MemoryTypes()
	require.Len(t, memoryTypes, 2)

	require.Equal(t, MemoryType{
		Index:     0,
		HeapIndex: 0,
		Flags:     core1_0.MemoryPropertyDeviceLocal,
		HeapSize:  1000000,
	}, memoryTypes[0])
	require.True(t, memoryTypes[0].IsDeviceLocal())
	require.False(t, memoryTypes[0].IsHostVisible())

	require.Equal(t, 1, memoryTypes[1].Index)
	require.Equal(t, 500000, memoryTypes[1].HeapSize)
	require.True(t, memoryTypes[1].IsHostVisible())
	require.True(t, memoryTypes[1].IsHostCoherent())
	require.False(t, memoryTypes[1].IsHostCached())
	require.False(t, memoryTypes[1].IsLazilyAllocated())

	require.Len(t, device.PhysicalDevice().MemoryHeaps(), 2)
	require.Equal(t, core1_0.PhysicalDeviceTypeDiscreteGPU, device.PhysicalDevice().Properties().DriverType)
}

func TestFindMemoryType(t *testing.T) {
	testCases := map[string]struct {
		TypeBits      uint32
		Required      core1_0.MemoryPropertyFlags
		ExpectedIndex int
		ExpectError   bool
	}{
		"AnyType": {
			TypeBits:      0x3,
			ExpectedIndex: 0,
		},
		"HostVisible": {
			TypeBits:      0x3,
			Required:      core1_0.MemoryPropertyHostVisible,
			ExpectedIndex: 1,
		},
		"RestrictedByBits": {
			TypeBits:      0x2,
			ExpectedIndex: 1,
		},
		"NoMatch": {
			TypeBits:    0x1,
			Required:    core1_0.MemoryPropertyHostVisible,
			ExpectError: true,
		},
		"NoBits": {
			TypeBits:    0,
			ExpectError: true,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			_, device := readyDevice(t, ctrl, defaultMemorySetup)

			memoryType, err := device.PhysicalDevice().FindMemoryType(testCase.TypeBits, testCase.Required)
			if testCase.ExpectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.ExpectedIndex, memoryType.Index)
		})
	}
}

func TestQueueFamilyFlags(t *testing.T) {
	family := QueueFamily{
		Index: 1,
		Count: 2,
		Flags: core1_0.QueueCompute | core1_0.QueueTransfer,
	}

	require.False(t, family.IsGraphics())
	require.True(t, family.IsCompute())
	require.True(t, family.IsTransfer())
	require.False(t, family.IsSparseBinding())
}

func TestPhysicalDeviceExtensions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockInstance, instance := readyInstance(t, ctrl, defaultMemorySetup)
	physicalDevice := instance.PhysicalDevices()[0]

	mockInstance.EXPECT().EnumerateDeviceExtensionProperties(physicalDevice.Handle()).Return(map[string]*core1_0.ExtensionProperties{
		"VK_KHR_swapchain":             {},
		"VK_KHR_buffer_device_address": {},
	}, core1_0.VKSuccess, nil)

	names, err := physicalDevice.Extensions()
	require.NoError(t, err)
	require.Equal(t, []string{"VK_KHR_buffer_device_address", "VK_KHR_swapchain"}, names)

	mockInstance.EXPECT().EnumerateDeviceExtensionProperties(physicalDevice.Handle()).Return(nil, core1_0.VKIncomplete, core1_0.VKIncomplete.ToError())

	names, err = physicalDevice.Extensions()
	require.True(t, errors.Is(err, ErrEnumeration))
	require.Nil(t, names)
}
