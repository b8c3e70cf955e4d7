package owned

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// InstanceFlags indicate specific instance behaviors to activate or deactivate
type InstanceFlags int32

var instanceFlagsMapping = common.NewFlagStringMapping[InstanceFlags]()

func (f InstanceFlags) Register(str string) {
	instanceFlagsMapping.Register(f, str)
}
func (f InstanceFlags) String() string {
	return instanceFlagsMapping.FlagsToString(f)
}

const (
	// InstanceEnableAllLayers enables every layer the loader reports as available, in addition
	// to InstanceOptions.Layers
	InstanceEnableAllLayers InstanceFlags = 1 << iota
	// InstanceEnableAllExtensions enables every instance extension the loader reports as
	// available, in addition to InstanceOptions.Extensions
	InstanceEnableAllExtensions
	// InstanceDebugMessenger registers a debug messenger that forwards validation output to the
	// instance's logger. The messenger lives exactly as long as the instance. It is ignored if
	// ext_debug_utils is not available.
	InstanceDebugMessenger
	// InstanceExternallySynchronized ensures that the object statistics kept by this instance are
	// not synchronized internally. The consumer must guarantee that objects derived from the
	// instance are created and released from only one goroutine at a time.
	InstanceExternallySynchronized
)

func init() {
	InstanceEnableAllLayers.Register("InstanceEnableAllLayers")
	InstanceEnableAllExtensions.Register("InstanceEnableAllExtensions")
	InstanceDebugMessenger.Register("InstanceDebugMessenger")
	InstanceExternallySynchronized.Register("InstanceExternallySynchronized")
}

// InstanceOptions contains optional settings when creating an Instance
type InstanceOptions struct {
	// Flags indicates specific instance behaviors to activate or deactivate
	Flags InstanceFlags

	ApplicationName string
	EngineName      string
	// APIVersion is the highest Vulkan version the application will use. Defaults to
	// common.Vulkan1_0
	APIVersion common.APIVersion

	// Layers lists layer names that must be enabled. Creation fails if one is not available.
	Layers []string
	// Extensions lists instance extension names that must be enabled. Creation fails if one is
	// not available.
	Extensions []string
}

// DeviceOptions contains optional settings when creating a Device
type DeviceOptions struct {
	// QueueFamilies lists the queue family indices to create one queue from each. Defaults to
	// family 0.
	QueueFamilies []int
	// Priorities is the priority of the queue created from the family at the same position in
	// QueueFamilies. Missing entries default to 1.
	Priorities []float32
	// Extensions lists device extension names to enable
	Extensions []string
	// Features is the set of physical device features to enable. It may be left nil.
	Features *core1_0.PhysicalDeviceFeatures
}

func (o DeviceOptions) queueCreateInfos() []core1_0.DeviceQueueCreateInfo {
	families := o.QueueFamilies
	if len(families) == 0 {
		families = []int{0}
	}

	infos := make([]core1_0.DeviceQueueCreateInfo, 0, len(families))
	for i, family := range families {
		priority := float32(1)
		if i < len(o.Priorities) {
			priority = o.Priorities[i]
		}

		infos = append(infos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{priority},
		})
	}

	return infos
}

// ImageOptions describes an image to create. Zero fields take the defaults of a single-sampled
// 2D image with one mip level and one array layer.
type ImageOptions struct {
	Format core1_0.Format
	Width  int
	Height int
	// Depth defaults to 1
	Depth       int
	MipLevels   int
	ArrayLayers int
	Usage       core1_0.ImageUsageFlags
	Tiling      core1_0.ImageTiling
	// Samples defaults to core1_0.Samples1
	Samples core1_0.SampleCountFlags
}

func (o ImageOptions) createInfo() core1_0.ImageCreateInfo {
	info := core1_0.ImageCreateInfo{
		ImageType: core1_0.ImageType2D,
		Extent: core1_0.Extent3D{
			Width:  o.Width,
			Height: o.Height,
			Depth:  o.Depth,
		},
		MipLevels:     o.MipLevels,
		ArrayLayers:   o.ArrayLayers,
		Format:        o.Format,
		Tiling:        o.Tiling,
		InitialLayout: core1_0.ImageLayoutUndefined,
		Usage:         o.Usage,
		SharingMode:   core1_0.SharingModeExclusive,
		Samples:       o.Samples,
	}

	if info.Extent.Depth == 0 {
		info.Extent.Depth = 1
	}
	if info.MipLevels == 0 {
		info.MipLevels = 1
	}
	if info.ArrayLayers == 0 {
		info.ArrayLayers = 1
	}
	if info.Samples == 0 {
		info.Samples = core1_0.Samples1
	}

	return info
}

// ImageViewOptions describes how an ImageView looks at its image. The view's format defaults to
// the image's format.
type ImageViewOptions struct {
	ViewType       core1_0.ImageViewType
	Format         core1_0.Format
	Aspect         core1_0.ImageAspectFlags
	BaseMipLevel   int
	LevelCount     int
	BaseArrayLayer int
	LayerCount     int
}

// SamplerOptions describes a sampler to create
type SamplerOptions struct {
	MagFilter    core1_0.Filter
	MinFilter    core1_0.Filter
	MipmapMode   core1_0.SamplerMipmapMode
	AddressModeU core1_0.SamplerAddressMode
	AddressModeV core1_0.SamplerAddressMode
	AddressModeW core1_0.SamplerAddressMode
	MinLod       float32
	MaxLod       float32
	BorderColor  core1_0.BorderColor
}

// RenderPassOptions describes a render pass to create
type RenderPassOptions struct {
	Attachments  []core1_0.AttachmentDescription
	Subpasses    []core1_0.SubpassDescription
	Dependencies []core1_0.SubpassDependency
}

// GraphicsPipelineOptions contains the fixed-function and shader state of a graphics pipeline.
// The layout and render pass are supplied separately and retained by the pipeline.
type GraphicsPipelineOptions struct {
	Stages             []core1_0.PipelineShaderStageCreateInfo
	VertexInputState   *core1_0.PipelineVertexInputStateCreateInfo
	InputAssemblyState *core1_0.PipelineInputAssemblyStateCreateInfo
	ViewportState      *core1_0.PipelineViewportStateCreateInfo
	RasterizationState *core1_0.PipelineRasterizationStateCreateInfo
	MultisampleState   *core1_0.PipelineMultisampleStateCreateInfo
	DepthStencilState  *core1_0.PipelineDepthStencilStateCreateInfo
	ColorBlendState    *core1_0.PipelineColorBlendStateCreateInfo
	Subpass            int
}

const (
	defaultSwapchainImageCount = 3
)

// SwapchainOptions describes a swapchain to create
type SwapchainOptions struct {
	Format     core1_0.Format
	ColorSpace khr_surface.ColorSpace
	Extent     core1_0.Extent2D
	// MinImageCount defaults to 3
	MinImageCount int
	// PresentMode is the zero value, khr_surface.PresentModeImmediate, unless set
	PresentMode khr_surface.PresentMode
	// Usage defaults to core1_0.ImageUsageColorAttachment
	Usage     core1_0.ImageUsageFlags
	Transform khr_surface.SurfaceTransformFlags
	// QueueFamilies lists the families that will access the images. More than one makes the
	// images concurrently shared.
	QueueFamilies []int
}
