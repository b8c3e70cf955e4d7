package owned

import "github.com/vkngwrapper/core/v3/core1_0"

type RenderPass struct {
	handleRef[core1_0.RenderPass]
}

func NewRenderPass(device Device, options RenderPassOptions) (RenderPass, error) {
	driver, err := device.driverFor("RenderPass::Create")
	if err != nil {
		return RenderPass{}, err
	}

	handle, res, err := driver.CreateRenderPass(nil, core1_0.RenderPassCreateInfo{
		Attachments:         options.Attachments,
		Subpasses:           options.Subpasses,
		SubpassDependencies: options.Dependencies,
	})
	if err != nil {
		return RenderPass{}, checkResult("RenderPass::Create", res, err)
	}

	return RenderPass{refTo(newChild(device.Retain(), KindRenderPass, handle, func(handle core1_0.RenderPass) {
		driver.DestroyRenderPass(handle, nil)
	}))}, nil
}

func (p RenderPass) Retain() RenderPass {
	if !p.retain() {
		return RenderPass{}
	}
	return p
}
