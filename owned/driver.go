package owned

//go:generate mockgen -source driver.go -destination ./mocks/driver.go -package mock_owned

import (
	"time"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// DebugUtilsDriver is the part of ext_debug_utils.ExtensionDriver that Instance uses
type DebugUtilsDriver interface {
	CreateDebugUtilsMessenger(allocationCallbacks *loader.AllocationCallbacks, options ext_debug_utils.DebugUtilsMessengerCreateInfo) (ext_debug_utils.DebugUtilsMessenger, common.VkResult, error)
	DestroyDebugUtilsMessenger(messenger ext_debug_utils.DebugUtilsMessenger, allocationCallbacks *loader.AllocationCallbacks)
}

// SurfaceDriver is the part of khr_surface.ExtensionDriver that Surface and the surface queries
// on PhysicalDevice use
type SurfaceDriver interface {
	DestroySurface(surface khr_surface.Surface, allocationCallbacks *loader.AllocationCallbacks)
	GetPhysicalDeviceSurfaceCapabilities(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, common.VkResult, error)
	GetPhysicalDeviceSurfaceFormats(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, common.VkResult, error)
	GetPhysicalDeviceSurfacePresentModes(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) ([]khr_surface.PresentMode, common.VkResult, error)
	GetPhysicalDeviceSurfaceSupport(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice, queueFamilyIndex int) (bool, common.VkResult, error)
}

// SwapchainDriver is the part of khr_swapchain.ExtensionDriver that Swapchain and Queue.Present
// use
type SwapchainDriver interface {
	CreateSwapchain(allocationCallbacks *loader.AllocationCallbacks, options khr_swapchain.SwapchainCreateInfo) (khr_swapchain.Swapchain, common.VkResult, error)
	DestroySwapchain(swapchain khr_swapchain.Swapchain, allocationCallbacks *loader.AllocationCallbacks)
	GetSwapchainImages(swapchain khr_swapchain.Swapchain) ([]core1_0.Image, common.VkResult, error)
	AcquireNextImage(swapchain khr_swapchain.Swapchain, timeout time.Duration, semaphore *core1_0.Semaphore, fence *core1_0.Fence) (int, common.VkResult, error)
	QueuePresent(queue core1_0.Queue, presentInfo khr_swapchain.PresentInfo) (common.VkResult, error)
}
