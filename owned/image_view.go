package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// ImageView is a view into a subresource range of an image. It retains the image.
type ImageView struct {
	handleRef[core1_0.ImageView]
	image Image
}

// NewImageView creates a view of image. A zero Format uses the image's format, a zero Aspect
// views color, and zero counts view one mip level and one layer.
func NewImageView(device Device, image Image, options ImageViewOptions) (ImageView, error) {
	driver, err := device.driverFor("ImageView::Create")
	if err != nil {
		return ImageView{}, err
	}

	imageHandle, live := image.impl.res().get()
	if !live {
		return ImageView{}, nullHandle("ImageView::Create", KindImage)
	}

	format := options.Format
	if format == 0 {
		format = image.Format()
	}

	aspect := options.Aspect
	if aspect == 0 {
		aspect = core1_0.ImageAspectColor
	}

	levelCount := options.LevelCount
	if levelCount == 0 {
		levelCount = 1
	}

	layerCount := options.LayerCount
	if layerCount == 0 {
		layerCount = 1
	}

	handle, res, err := driver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    imageHandle,
		ViewType: options.ViewType,
		Format:   format,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     aspect,
			BaseMipLevel:   options.BaseMipLevel,
			LevelCount:     levelCount,
			BaseArrayLayer: options.BaseArrayLayer,
			LayerCount:     layerCount,
		},
	})
	if err != nil {
		return ImageView{}, checkResult("ImageView::Create", res, err)
	}

	image = image.Retain()
	if !image.Initialized() {
		driver.DestroyImageView(handle, nil)
		return ImageView{}, nullHandle("ImageView::Create", KindImage)
	}

	return ImageView{
		handleRef: refTo(newChild(device.Retain(), KindImageView, handle, func(handle core1_0.ImageView) {
			driver.DestroyImageView(handle, nil)
		}, image)),
		image: image,
	}, nil
}

func (v ImageView) Retain() ImageView {
	if !v.retain() {
		return ImageView{}
	}
	return v
}

// Image returns the viewed image, without retaining it
func (v ImageView) Image() Image {
	return v.image
}
