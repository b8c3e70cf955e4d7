package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

type ShaderModule struct {
	handleRef[core1_0.ShaderModule]
}

// NewShaderModule creates a shader module from SPIR-V words
func NewShaderModule(device Device, code []uint32) (ShaderModule, error) {
	driver, err := device.driverFor("ShaderModule::Create")
	if err != nil {
		return ShaderModule{}, err
	}

	if len(code) == 0 {
		return ShaderModule{}, errors.New("ShaderModule::Create: shader code is empty")
	}

	handle, res, err := driver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: code,
	})
	if err != nil {
		return ShaderModule{}, checkResult("ShaderModule::Create", res, err)
	}

	return ShaderModule{refTo(newChild(device.Retain(), KindShaderModule, handle, func(handle core1_0.ShaderModule) {
		driver.DestroyShaderModule(handle, nil)
	}))}, nil
}

func (m ShaderModule) Retain() ShaderModule {
	if !m.retain() {
		return ShaderModule{}
	}
	return m
}
