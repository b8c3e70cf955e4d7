package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Pipeline is a compute or graphics pipeline. It retains its layout and, for graphics
// pipelines, its render pass.
type Pipeline struct {
	handleRef[core1_0.Pipeline]
	bindPoint core1_0.PipelineBindPoint
	layout    PipelineLayout
}

// NewComputePipeline creates a compute pipeline running entryPoint in module
func NewComputePipeline(device Device, layout PipelineLayout, module ShaderModule, entryPoint string) (Pipeline, error) {
	driver, err := device.driverFor("Pipeline::CreateCompute")
	if err != nil {
		return Pipeline{}, err
	}

	layoutHandle, live := layout.impl.res().get()
	if !live {
		return Pipeline{}, nullHandle("Pipeline::CreateCompute", KindPipelineLayout)
	}

	moduleHandle, live := module.impl.res().get()
	if !live {
		return Pipeline{}, nullHandle("Pipeline::CreateCompute", KindShaderModule)
	}

	pipelines, res, err := driver.CreateComputePipelines(nil, nil, core1_0.ComputePipelineCreateInfo{
		Stage: core1_0.PipelineShaderStageCreateInfo{
			Stage:  core1_0.StageCompute,
			Module: moduleHandle,
			Name:   entryPoint,
		},
		Layout:            layoutHandle,
		BasePipelineIndex: -1,
	})
	if err != nil {
		return Pipeline{}, checkResult("Pipeline::CreateCompute", res, err)
	}
	if len(pipelines) == 0 {
		return Pipeline{}, errors.AssertionFailedf("Pipeline::CreateCompute: driver returned no pipeline")
	}

	layout = layout.Retain()
	return Pipeline{
		handleRef: refTo(newChild(device.Retain(), KindPipeline, pipelines[0], func(handle core1_0.Pipeline) {
			driver.DestroyPipeline(handle, nil)
		}, layout)),
		bindPoint: core1_0.PipelineBindPointCompute,
		layout:    layout,
	}, nil
}

// NewGraphicsPipeline creates a graphics pipeline for one subpass of pass
func NewGraphicsPipeline(device Device, layout PipelineLayout, pass RenderPass, options GraphicsPipelineOptions) (Pipeline, error) {
	driver, err := device.driverFor("Pipeline::CreateGraphics")
	if err != nil {
		return Pipeline{}, err
	}

	layoutHandle, live := layout.impl.res().get()
	if !live {
		return Pipeline{}, nullHandle("Pipeline::CreateGraphics", KindPipelineLayout)
	}

	passHandle, live := pass.impl.res().get()
	if !live {
		return Pipeline{}, nullHandle("Pipeline::CreateGraphics", KindRenderPass)
	}

	pipelines, res, err := driver.CreateGraphicsPipelines(nil, nil, core1_0.GraphicsPipelineCreateInfo{
		Stages:             options.Stages,
		VertexInputState:   options.VertexInputState,
		InputAssemblyState: options.InputAssemblyState,
		ViewportState:      options.ViewportState,
		RasterizationState: options.RasterizationState,
		MultisampleState:   options.MultisampleState,
		DepthStencilState:  options.DepthStencilState,
		ColorBlendState:    options.ColorBlendState,
		Layout:             layoutHandle,
		RenderPass:         passHandle,
		Subpass:            options.Subpass,
		BasePipelineIndex:  -1,
	})
	if err != nil {
		return Pipeline{}, checkResult("Pipeline::CreateGraphics", res, err)
	}
	if len(pipelines) == 0 {
		return Pipeline{}, errors.AssertionFailedf("Pipeline::CreateGraphics: driver returned no pipeline")
	}

	layout = layout.Retain()
	return Pipeline{
		handleRef: refTo(newChild(device.Retain(), KindPipeline, pipelines[0], func(handle core1_0.Pipeline) {
			driver.DestroyPipeline(handle, nil)
		}, layout, pass.Retain())),
		bindPoint: core1_0.PipelineBindPointGraphics,
		layout:    layout,
	}, nil
}

func (p Pipeline) Retain() Pipeline {
	if !p.retain() {
		return Pipeline{}
	}
	return p
}

// BindPoint returns core1_0.PipelineBindPointCompute or core1_0.PipelineBindPointGraphics
func (p Pipeline) BindPoint() core1_0.PipelineBindPoint {
	return p.bindPoint
}

// Layout returns the pipeline's layout, without retaining it
func (p Pipeline) Layout() PipelineLayout {
	return p.layout
}
