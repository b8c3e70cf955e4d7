package owned

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Swapchain is a queue of presentable images bound to a surface. Its images are fetched once at
// creation and belong to the swapchain: they are never destroyed through their wrappers.
//
// The zero value is a null Swapchain.
type Swapchain struct {
	impl *swapchainImpl
}

type swapchainImpl struct {
	resource[khr_swapchain.Swapchain]

	driver  SwapchainDriver
	device  Device
	surface Surface
	format  Format
	extent  core1_0.Extent2D
	images  []SwapchainImage
}

// NewSwapchain creates a swapchain presenting to surface. The device must have khr_swapchain
// enabled. The swapchain retains the device and the surface.
func NewSwapchain(device Device, surface Surface, options SwapchainOptions) (Swapchain, error) {
	if !device.Initialized() {
		return Swapchain{}, nullHandle("Swapchain::Create", KindDevice)
	}
	if !surface.Initialized() {
		return Swapchain{}, nullHandle("Swapchain::Create", KindSurface)
	}

	driver := device.impl.swapchain
	if driver == nil {
		return Swapchain{}, errors.Wrapf(ErrExtensionNotEnabled, "Swapchain::Create: %s", khr_swapchain.ExtensionName)
	}

	minImageCount := options.MinImageCount
	if minImageCount == 0 {
		minImageCount = defaultSwapchainImageCount
	}

	usage := options.Usage
	if usage == 0 {
		usage = core1_0.ImageUsageColorAttachment
	}

	transform := options.Transform
	if transform == 0 {
		transform = khr_surface.TransformIdentity
	}

	sharingMode := core1_0.SharingModeExclusive
	var queueFamilies []int
	if len(options.QueueFamilies) > 1 {
		sharingMode = core1_0.SharingModeConcurrent
		queueFamilies = options.QueueFamilies
	}

	handle, res, err := driver.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface:            surface.Handle(),
		MinImageCount:      minImageCount,
		ImageFormat:        options.Format,
		ImageColorSpace:    options.ColorSpace,
		ImageExtent:        options.Extent,
		ImageArrayLayers:   1,
		ImageUsage:         usage,
		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilies,
		PreTransform:       transform,
		CompositeAlpha:     khr_surface.CompositeAlphaOpaque,
		PresentMode:        options.PresentMode,
		Clipped:            true,
	})
	if err != nil {
		return Swapchain{}, checkResult("Swapchain::Create", res, err)
	}

	images, res, err := driver.GetSwapchainImages(handle)
	if err != nil {
		driver.DestroySwapchain(handle, nil)
		return Swapchain{}, checkEnumeration("Swapchain::Images", res, err)
	}

	device = device.Retain()
	surface = surface.Retain()
	impl := &swapchainImpl{
		driver:  driver,
		device:  device,
		surface: surface,
		format:  options.Format,
		extent:  options.Extent,
	}
	impl.init(KindSwapchain, device.statsTracker(), impl.destroySwapchain, device, surface)
	impl.fill(handle)

	for index, image := range images {
		impl.images = append(impl.images, SwapchainImage{
			Image: Image{
				handleRef: refTo(newChild(device.Retain(), KindSwapchainImage, image, nil)),
				format:    options.Format,
				extent: core1_0.Extent3D{
					Width:  options.Extent.Width,
					Height: options.Extent.Height,
					Depth:  1,
				},
				swapchain: impl,
			},
			index: index,
		})
	}

	return Swapchain{impl: impl}, nil
}

// destroySwapchain drops the swapchain's own reference to each image before the native
// swapchain goes away. Every other image reference holds the swapchain, so these are the last
// ones. The images issue no native call.
func (s *swapchainImpl) destroySwapchain(handle khr_swapchain.Swapchain) {
	for _, image := range s.images {
		image.handleRef.Release()
	}

	s.driver.DestroySwapchain(handle, nil)
}

func (s *swapchainImpl) res() *resource[khr_swapchain.Swapchain] {
	if s == nil {
		return nil
	}
	return &s.resource
}

// Handle returns the native swapchain handle
func (s Swapchain) Handle() khr_swapchain.Swapchain {
	handle, _ := s.impl.res().get()
	return handle
}

func (s Swapchain) Initialized() bool {
	return s.impl.res().live()
}

// Device returns the device the swapchain was created on, without retaining it
func (s Swapchain) Device() Device {
	if s.impl == nil {
		return Device{}
	}
	return s.impl.device
}

// Surface returns the surface the swapchain presents to, without retaining it
func (s Swapchain) Surface() Surface {
	if s.impl == nil {
		return Surface{}
	}
	return s.impl.surface
}

func (s Swapchain) Format() Format {
	if s.impl == nil {
		return core1_0.FormatUndefined
	}
	return s.impl.format
}

func (s Swapchain) Extent() core1_0.Extent2D {
	if s.impl == nil {
		return core1_0.Extent2D{}
	}
	return s.impl.extent
}

// Images returns the swapchain's images in presentation index order. The returned wrappers are
// not retained. Retaining an image, directly or through an ImageView, keeps the swapchain alive
// until that reference is released.
func (s Swapchain) Images() []SwapchainImage {
	if !s.Initialized() {
		return nil
	}

	images := make([]SwapchainImage, len(s.impl.images))
	copy(images, s.impl.images)
	return images
}

// AcquireNextImage waits up to timeout for the next presentable image and signals semaphore and
// fence, either of which may be nil, once it is ready. The result distinguishes success from
// khr_swapchain.VKSuboptimal; khr_swapchain.VKErrorOutOfDate is returned with an error.
func (s Swapchain) AcquireNextImage(timeout time.Duration, semaphore *Semaphore, fence *Fence) (SwapchainImage, common.VkResult, error) {
	driver, err := s.extensionDriver("Swapchain::AcquireNextImage")
	if err != nil {
		return SwapchainImage{}, core1_0.VKErrorUnknown, err
	}

	var semaphoreHandle *core1_0.Semaphore
	if semaphore != nil && semaphore.Initialized() {
		handle := semaphore.Handle()
		semaphoreHandle = &handle
	}

	var fenceHandle *core1_0.Fence
	if fence != nil && fence.Initialized() {
		handle := fence.Handle()
		fenceHandle = &handle
	}

	index, res, err := driver.AcquireNextImage(s.Handle(), timeout, semaphoreHandle, fenceHandle)
	if err != nil {
		return SwapchainImage{}, res, checkResult("Swapchain::AcquireNextImage", res, err)
	}

	if index < 0 || index >= len(s.impl.images) {
		return SwapchainImage{}, res, errors.Wrapf(ErrOutOfRange, "Swapchain::AcquireNextImage: index %d of %d images", index, len(s.impl.images))
	}

	return s.impl.images[index], res, nil
}

// Retain acquires another reference to the swapchain
func (s Swapchain) Retain() Swapchain {
	if !s.impl.res().acquire() {
		return Swapchain{}
	}
	return s
}

// Release drops one reference. Dropping the last one releases the images, destroys the
// swapchain, and then releases the surface and device.
func (s Swapchain) Release() {
	s.impl.res().release()
}

func (s Swapchain) References() int {
	return s.impl.res().references()
}

func (s Swapchain) extensionDriver(op string) (SwapchainDriver, error) {
	if !s.Initialized() {
		return nil, nullHandle(op, KindSwapchain)
	}
	return s.impl.driver, nil
}

// SwapchainImage is one of a swapchain's images. It is an Image that does not own its handle.
type SwapchainImage struct {
	Image
	index int
}

// Index returns the image's position in the swapchain, which is the index used to present it
func (i SwapchainImage) Index() int {
	return i.index
}

// Swapchain returns the owning swapchain without retaining it
func (i SwapchainImage) Swapchain() Swapchain {
	return Swapchain{impl: i.swapchain}
}

// Retain acquires another reference to the image and to its swapchain
func (i SwapchainImage) Retain() SwapchainImage {
	if !i.Image.Retain().Initialized() {
		return SwapchainImage{}
	}
	return i
}
