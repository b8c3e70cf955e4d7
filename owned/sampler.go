package owned

import "github.com/vkngwrapper/core/v3/core1_0"

type Sampler struct {
	handleRef[core1_0.Sampler]
}

func NewSampler(device Device, options SamplerOptions) (Sampler, error) {
	driver, err := device.driverFor("Sampler::Create")
	if err != nil {
		return Sampler{}, err
	}

	handle, res, err := driver.CreateSampler(nil, core1_0.SamplerCreateInfo{
		MagFilter:    options.MagFilter,
		MinFilter:    options.MinFilter,
		MipmapMode:   options.MipmapMode,
		AddressModeU: options.AddressModeU,
		AddressModeV: options.AddressModeV,
		AddressModeW: options.AddressModeW,
		MinLod:       options.MinLod,
		MaxLod:       options.MaxLod,
		BorderColor:  options.BorderColor,
	})
	if err != nil {
		return Sampler{}, checkResult("Sampler::Create", res, err)
	}

	return Sampler{refTo(newChild(device.Retain(), KindSampler, handle, func(handle core1_0.Sampler) {
		driver.DestroySampler(handle, nil)
	}))}, nil
}

func (s Sampler) Retain() Sampler {
	if !s.retain() {
		return Sampler{}
	}
	return s
}
