package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// Framebuffer binds image views to the attachments of a render pass. It retains the render pass
// and every attachment.
type Framebuffer struct {
	handleRef[core1_0.Framebuffer]
}

func NewFramebuffer(device Device, pass RenderPass, attachments []ImageView, width, height, layers int) (Framebuffer, error) {
	driver, err := device.driverFor("Framebuffer::Create")
	if err != nil {
		return Framebuffer{}, err
	}

	passHandle, live := pass.impl.res().get()
	if !live {
		return Framebuffer{}, nullHandle("Framebuffer::Create", KindRenderPass)
	}

	views, err := liveHandlesOf[core1_0.ImageView]("Framebuffer::Create", KindImageView, attachments)
	if err != nil {
		return Framebuffer{}, err
	}

	if layers == 0 {
		layers = 1
	}

	handle, res, err := driver.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
		RenderPass:  passHandle,
		Attachments: views,
		Width:       width,
		Height:      height,
		Layers:      layers,
	})
	if err != nil {
		return Framebuffer{}, checkResult("Framebuffer::Create", res, err)
	}

	deps := make([]releaser, 0, len(attachments)+1)
	deps = append(deps, pass.Retain())
	for _, attachment := range attachments {
		deps = append(deps, attachment.Retain())
	}

	return Framebuffer{refTo(newChild(device.Retain(), KindFramebuffer, handle, func(handle core1_0.Framebuffer) {
		driver.DestroyFramebuffer(handle, nil)
	}, deps...))}, nil
}

func (f Framebuffer) Retain() Framebuffer {
	if !f.retain() {
		return Framebuffer{}
	}
	return f
}
