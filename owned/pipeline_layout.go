package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// PipelineLayout describes the descriptor sets a pipeline accesses. It retains its set layouts.
type PipelineLayout struct {
	handleRef[core1_0.PipelineLayout]
}

func NewPipelineLayout(device Device, layouts ...DescriptorSetLayout) (PipelineLayout, error) {
	driver, err := device.driverFor("PipelineLayout::Create")
	if err != nil {
		return PipelineLayout{}, err
	}

	setLayouts, err := liveHandlesOf[core1_0.DescriptorSetLayout]("PipelineLayout::Create", KindDescriptorSetLayout, layouts)
	if err != nil {
		return PipelineLayout{}, err
	}

	handle, res, err := driver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{
		SetLayouts: setLayouts,
	})
	if err != nil {
		return PipelineLayout{}, checkResult("PipelineLayout::Create", res, err)
	}

	deps := make([]releaser, 0, len(layouts))
	for _, layout := range layouts {
		deps = append(deps, layout.Retain())
	}

	return PipelineLayout{refTo(newChild(device.Retain(), KindPipelineLayout, handle, func(handle core1_0.PipelineLayout) {
		driver.DestroyPipelineLayout(handle, nil)
	}, deps...))}, nil
}

func (l PipelineLayout) Retain() PipelineLayout {
	if !l.retain() {
		return PipelineLayout{}
	}
	return l
}
