package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Image is a multidimensional array of device data. Images created with NewImage own their
// handle; images that belong to a swapchain do not, and are never destroyed through this
// wrapper. Retaining a swapchain image also retains its swapchain.
type Image struct {
	handleRef[core1_0.Image]
	format     Format
	extent     core1_0.Extent3D
	ownsHandle bool

	// swapchain is set for swapchain images. It is not a reference: only Retain and Release
	// acquire and drop one.
	swapchain *swapchainImpl
}

func NewImage(device Device, options ImageOptions) (Image, error) {
	driver, err := device.driverFor("Image::Create")
	if err != nil {
		return Image{}, err
	}

	info := options.createInfo()
	handle, res, err := driver.CreateImage(nil, info)
	if err != nil {
		return Image{}, checkResult("Image::Create", res, err)
	}

	return Image{
		handleRef: refTo(newChild(device.Retain(), KindImage, handle, func(handle core1_0.Image) {
			driver.DestroyImage(handle, nil)
		})),
		format:     info.Format,
		extent:     info.Extent,
		ownsHandle: true,
	}, nil
}

func (i Image) Retain() Image {
	if i.swapchain != nil && !i.swapchain.res().acquire() {
		return Image{}
	}

	if !i.retain() {
		i.swapchain.res().release()
		return Image{}
	}
	return i
}

// Release drops one reference. For a swapchain image it then drops the swapchain reference taken
// by Retain.
func (i Image) Release() {
	i.handleRef.Release()
	i.swapchain.res().release()
}

func (i Image) Format() Format {
	return i.format
}

func (i Image) Extent() core1_0.Extent3D {
	return i.extent
}

// OwnsHandle returns false for images that were not created by this wrapper and will not be
// destroyed by it
func (i Image) OwnsHandle() bool {
	return i.ownsHandle
}

// MemoryRequirements queries the size, alignment and memory types the image needs
func (i Image) MemoryRequirements() (*core1_0.MemoryRequirements, error) {
	driver, handle, err := i.driverFor("Image::MemoryRequirements", KindImage)
	if err != nil {
		return nil, err
	}
	return driver.GetImageMemoryRequirements(handle), nil
}

// MinimumAllocationSize returns the smallest span of memory the image can be bound to
func (i Image) MinimumAllocationSize() (int, error) {
	requirements, err := i.MemoryRequirements()
	if err != nil {
		return 0, err
	}
	return requirements.Size, nil
}

// MinimumAllocationAlignment returns the alignment the image's bind offset must honor
func (i Image) MinimumAllocationAlignment() (int, error) {
	requirements, err := i.MemoryRequirements()
	if err != nil {
		return 0, err
	}
	return requirements.Alignment, nil
}

// Bind attaches the image to size bytes of memory starting at offset. A size of 0 uses the size
// from the image's memory requirements. The image retains memory until it is destroyed.
// An image can be bound once, to memory from its own device.
func (i Image) Bind(memory DeviceMemory, offset, size int) error {
	i.Device().Logger().Debug("Image::Bind")

	if !i.ownsHandle {
		return errors.New("Image::Bind: image memory is owned by its swapchain")
	}

	driver, handle, err := i.driverFor("Image::Bind", KindImage)
	if err != nil {
		return err
	}

	memoryHandle, err := memory.bindTarget("Image::Bind", i.Device(), offset, size, driver.GetImageMemoryRequirements(handle))
	if err != nil {
		return err
	}

	if !i.impl.bound.CompareAndSwap(false, true) {
		return errors.Wrapf(ErrAlreadyBound, "Image::Bind")
	}

	res, err := driver.BindImageMemory(handle, memoryHandle, offset)
	if err != nil {
		i.impl.bound.Store(false)
		return checkResult("Image::Bind", res, err)
	}

	i.impl.attach(memory.Retain())
	return nil
}
