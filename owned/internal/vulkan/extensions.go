package vulkan

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// InstanceExtensions records which instance extensions were enabled and holds the drivers for the
// ones the wrappers call into
type InstanceExtensions struct {
	Enabled    map[string]struct{}
	DebugUtils ext_debug_utils.ExtensionDriver
	Surface    khr_surface.ExtensionDriver
}

func NewInstanceExtensions(driver core1_0.CoreInstanceDriver, enabledNames []string) *InstanceExtensions {
	data := &InstanceExtensions{
		Enabled: nameSet(enabledNames),
	}

	if data.IsEnabled(ext_debug_utils.ExtensionName) {
		data.DebugUtils = ext_debug_utils.CreateExtensionDriverFromCoreDriver(driver)
	}

	if data.IsEnabled(khr_surface.ExtensionName) {
		data.Surface = khr_surface.CreateExtensionDriverFromCoreDriver(driver)
	}

	return data
}

func (e *InstanceExtensions) IsEnabled(name string) bool {
	_, enabled := e.Enabled[name]
	return enabled
}

// DeviceExtensions records which device extensions were enabled and holds the drivers for the
// ones the wrappers call into
type DeviceExtensions struct {
	Enabled   map[string]struct{}
	Swapchain khr_swapchain.ExtensionDriver
}

func NewDeviceExtensions(driver core1_0.CoreDeviceDriver, enabledNames []string) *DeviceExtensions {
	data := &DeviceExtensions{
		Enabled: nameSet(enabledNames),
	}

	if data.IsEnabled(khr_swapchain.ExtensionName) {
		data.Swapchain = khr_swapchain.CreateExtensionDriverFromCoreDriver(driver)
	}

	return data
}

func (e *DeviceExtensions) IsEnabled(name string) bool {
	_, enabled := e.Enabled[name]
	return enabled
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
