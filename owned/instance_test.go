package owned

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/owned/internal/vulkan"
	mock_owned "github.com/vkngwrapper/arsenal/owned/mocks"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/core/v3/mocks/mocks1_0"
	"github.com/vkngwrapper/core/v3/mocks/mocks1_2"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"go.uber.org/mock/gomock"
)

func mockLoader(ctrl *gomock.Controller, extensions []string, layers []string) *mocks1_0.MockGlobalDriver {
	availableExtensions := make(map[string]*core1_0.ExtensionProperties)
	for _, name := range extensions {
		availableExtensions[name] = &core1_0.ExtensionProperties{}
	}

	availableLayers := make(map[string]*core1_0.LayerProperties)
	for _, name := range layers {
		availableLayers[name] = &core1_0.LayerProperties{}
	}

	global := mocks1_0.NewMockGlobalDriver(ctrl)
	global.EXPECT().AvailableExtensions().Return(availableExtensions, core1_0.VKSuccess, nil)
	global.EXPECT().AvailableLayers().Return(availableLayers, core1_0.VKSuccess, nil)
	return global
}

// newMockInstance returns an instance driver that global builds for the returned handle
func newMockInstance(ctrl *gomock.Controller, global *mocks1_0.MockGlobalDriver) (*mocks1_2.MockCoreInstanceDriver, core1_0.Instance) {
	handle := mocks.NewDummyInstance(common.Vulkan1_2, nil)
	mockInstance := mocks1_2.NewMockCoreInstanceDriver(ctrl)
	mockInstance.EXPECT().Instance().Return(handle).AnyTimes()
	global.EXPECT().BuildInstanceDriver(handle).Return(mockInstance, nil)
	return mockInstance, handle
}

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func TestInstanceMissingExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl, []string{"VK_KHR_get_physical_device_properties2"}, nil)

	instance, err := NewInstance(discardLogger, global, InstanceOptions{
		Extensions: []string{"VK_KHR_surface"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "VK_KHR_surface")
	require.False(t, instance.Initialized())
}

func TestInstanceMissingLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl, nil, []string{"VK_LAYER_KHRONOS_validation"})

	_, err := NewInstance(discardLogger, global, InstanceOptions{
		Layers: []string{"VK_LAYER_LUNARG_api_dump"},
	})
	require.Error(t, err)
}

func TestInstanceEnableAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl,
		[]string{"VK_KHR_get_surface_capabilities2", "VK_KHR_external_fence_capabilities"},
		[]string{"VK_LAYER_KHRONOS_validation"})
	mockInstance, instanceHandle := newMockInstance(ctrl, global)

	global.EXPECT().CreateInstance(nil, gomock.Any()).DoAndReturn(
		func(_ *loader.AllocationCallbacks, info core1_0.InstanceCreateInfo) (core1_0.Instance, common.VkResult, error) {
			require.Equal(t, []string{"VK_KHR_external_fence_capabilities", "VK_KHR_get_surface_capabilities2"}, info.EnabledExtensionNames)
			require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, info.EnabledLayerNames)
			require.Equal(t, common.Vulkan1_0, info.APIVersion)
			require.Equal(t, "EnableAll", info.ApplicationName)
			return instanceHandle, core1_0.VKSuccess, nil
		})
	mockInstance.EXPECT().EnumeratePhysicalDevices().Return(nil, core1_0.VKSuccess, nil)
	mockInstance.EXPECT().DestroyInstance(nil)

	instance, err := NewInstance(discardLogger, global, InstanceOptions{
		Flags:           InstanceEnableAllExtensions | InstanceEnableAllLayers,
		ApplicationName: "EnableAll",
		// Requesting an available name as well as enabling everything lists it once
		Extensions: []string{"VK_KHR_get_surface_capabilities2"},
	})
	require.NoError(t, err)
	defer instance.Destroy()

	require.True(t, instance.IsExtensionEnabled("VK_KHR_external_fence_capabilities"))
	require.False(t, instance.IsExtensionEnabled("VK_KHR_surface"))
	require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, instance.Layers())
	require.Empty(t, instance.PhysicalDevices())
}

func TestDebugMessengerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl, nil, nil)
	mockInstance, instanceHandle := newMockInstance(ctrl, global)

	global.EXPECT().CreateInstance(nil, gomock.Any()).DoAndReturn(
		func(_ *loader.AllocationCallbacks, info core1_0.InstanceCreateInfo) (core1_0.Instance, common.VkResult, error) {
			require.Empty(t, info.EnabledExtensionNames)
			require.Nil(t, info.Next)
			return instanceHandle, core1_0.VKSuccess, nil
		})
	mockInstance.EXPECT().EnumeratePhysicalDevices().Return(nil, core1_0.VKSuccess, nil)
	mockInstance.EXPECT().DestroyInstance(nil)

	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))

	instance, err := NewInstance(logger, global, InstanceOptions{Flags: InstanceDebugMessenger})
	require.NoError(t, err)
	defer instance.Destroy()

	require.Contains(t, out.String(), "debug messenger requested")
	require.Equal(t, 0, instance.LiveObjects(KindDebugMessenger))
}

func TestDebugMessengerLivesWithInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl, []string{ext_debug_utils.ExtensionName}, nil)
	mockInstance, instanceHandle := newMockInstance(ctrl, global)
	debugUtils := mock_owned.NewMockDebugUtilsDriver(ctrl)

	originalExtensions, originalDrivers := newInstanceExtensions, instanceDrivers
	t.Cleanup(func() {
		newInstanceExtensions, instanceDrivers = originalExtensions, originalDrivers
	})
	newInstanceExtensions = func(_ core1_0.CoreInstanceDriver, names []string) *vulkan.InstanceExtensions {
		return &vulkan.InstanceExtensions{Enabled: map[string]struct{}{names[0]: {}}}
	}
	instanceDrivers = func(*vulkan.InstanceExtensions) (DebugUtilsDriver, SurfaceDriver) {
		return debugUtils, nil
	}

	global.EXPECT().CreateInstance(nil, gomock.Any()).DoAndReturn(
		func(_ *loader.AllocationCallbacks, info core1_0.InstanceCreateInfo) (core1_0.Instance, common.VkResult, error) {
			require.Equal(t, []string{ext_debug_utils.ExtensionName}, info.EnabledExtensionNames)
			require.NotNil(t, info.Next)
			return instanceHandle, core1_0.VKSuccess, nil
		})
	debugUtils.EXPECT().CreateDebugUtilsMessenger(nil, gomock.Any()).Return(ext_debug_utils.DebugUtilsMessenger{}, core1_0.VKSuccess, nil)
	mockInstance.EXPECT().EnumeratePhysicalDevices().Return(nil, core1_0.VKSuccess, nil)

	instance, err := NewInstance(discardLogger, global, InstanceOptions{Flags: InstanceDebugMessenger})
	require.NoError(t, err)
	require.True(t, instance.IsExtensionEnabled(ext_debug_utils.ExtensionName))
	require.Equal(t, 1, instance.LiveObjects(KindDebugMessenger))

	gomock.InOrder(
		debugUtils.EXPECT().DestroyDebugUtilsMessenger(ext_debug_utils.DebugUtilsMessenger{}, nil),
		mockInstance.EXPECT().DestroyInstance(nil),
	)
	instance.Destroy()

	require.False(t, instance.Initialized())
	require.Equal(t, 0, instance.LiveObjects(KindDebugMessenger))
}

func TestInstanceEnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl, nil, nil)
	mockInstance, instanceHandle := newMockInstance(ctrl, global)

	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(instanceHandle, core1_0.VKSuccess, nil)
	mockInstance.EXPECT().EnumeratePhysicalDevices().Return(nil, core1_0.VKErrorInitializationFailed, core1_0.VKErrorInitializationFailed.ToError())
	// The half-built instance is torn down
	mockInstance.EXPECT().DestroyInstance(nil)

	instance, err := NewInstance(discardLogger, global, InstanceOptions{})
	require.True(t, errors.Is(err, ErrEnumeration))
	require.False(t, instance.Initialized())

	result, ok := ResultOf(err)
	require.True(t, ok)
	require.Equal(t, core1_0.VKErrorInitializationFailed, result)
}

func TestInstanceDriverBuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mockLoader(ctrl, nil, nil)
	handle := mocks.NewDummyInstance(common.Vulkan1_2, nil)

	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(handle, core1_0.VKSuccess, nil)
	global.EXPECT().BuildInstanceDriver(handle).Return(nil, errors.New("vkGetInstanceProcAddr unavailable"))

	var out bytes.Buffer
	instance, err := NewInstance(slog.New(slog.NewJSONHandler(&out, nil)), global, InstanceOptions{})
	require.ErrorContains(t, err, "vkGetInstanceProcAddr unavailable")
	require.False(t, instance.Initialized())
	require.Contains(t, out.String(), "leaks")
}

func TestLoaderEnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	global.EXPECT().AvailableExtensions().Return(nil, core1_0.VKErrorOutOfHostMemory, core1_0.VKErrorOutOfHostMemory.ToError())

	_, err := NewInstance(nil, global, InstanceOptions{})
	require.True(t, errors.Is(err, ErrEnumeration))
}

func TestNullInstance(t *testing.T) {
	var instance Instance

	require.False(t, instance.Initialized())
	require.Nil(t, instance.Driver())
	require.Nil(t, instance.PhysicalDevices())
	require.NotNil(t, instance.Logger())
	require.Equal(t, 0, instance.LiveObjects(KindBuffer))
	require.False(t, instance.Retain().Initialized())
	instance.Destroy()

	_, err := NewDevice(instance, PhysicalDevice{}, DeviceOptions{})
	require.ErrorIs(t, err, ErrNullHandle)
}
