package owned

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/core/v3/mocks"
	"go.uber.org/mock/gomock"
)

func TestEventStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	driver.EXPECT().CreateEvent(nil, core1_0.EventCreateInfo{}).Return(core1_0.Event{}, core1_0.VKSuccess, nil)
	driver.EXPECT().DestroyEvent(core1_0.Event{}, nil)

	event, err := NewEvent(device)
	require.NoError(t, err)
	defer event.Release()

	gomock.InOrder(
		driver.EXPECT().GetEventStatus(core1_0.Event{}).Return(core1_0.VKSuccess, nil),
		driver.EXPECT().SetEvent(core1_0.Event{}).Return(core1_0.VKSuccess, nil),
		driver.EXPECT().GetEventStatus(core1_0.Event{}).Return(core1_0.VKEventSet, nil),
		driver.EXPECT().ResetEvent(core1_0.Event{}).Return(core1_0.VKSuccess, nil),
	)

	status, err := event.Status()
	require.NoError(t, err)
	require.Equal(t, Unsignaled, status)

	require.NoError(t, event.Set())

	status, err = event.Status()
	require.NoError(t, err)
	require.Equal(t, Signaled, status)

	require.NoError(t, event.Reset())
}

func TestQueueSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)
	buffer := readyCommandBuffer(t, driver, device)
	fence := readyFence(t, driver, device, false)

	driver.EXPECT().CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{}).Return(core1_0.Semaphore{}, core1_0.VKSuccess, nil).Times(2)
	driver.EXPECT().DestroySemaphore(core1_0.Semaphore{}, nil).Times(2)

	wait, err := NewSemaphore(device)
	require.NoError(t, err)
	defer wait.Release()

	signal, err := NewSemaphore(device)
	require.NoError(t, err)
	defer signal.Release()

	driver.EXPECT().GetQueue(0, 0).Return(core1_0.Queue{})
	queue, err := device.GetQueue(0, 0)
	require.NoError(t, err)
	defer queue.Release()

	gomock.InOrder(
		driver.EXPECT().QueueSubmit(core1_0.Queue{}, &core1_0.Fence{}, core1_0.SubmitInfo{
			CommandBuffers: []core1_0.CommandBuffer{{}},
		}).Return(core1_0.VKSuccess, nil),
		driver.EXPECT().QueueSubmit(core1_0.Queue{}, nil, core1_0.SubmitInfo{
			WaitSemaphores:   []core1_0.Semaphore{{}},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageComputeShader},
			CommandBuffers:   []core1_0.CommandBuffer{{}},
			SignalSemaphores: []core1_0.Semaphore{{}},
		}).Return(core1_0.VKSuccess, nil),
		driver.EXPECT().QueueWaitIdle(core1_0.Queue{}).Return(core1_0.VKSuccess, nil),
	)

	require.NoError(t, queue.Submit([]CommandBuffer{buffer}, &fence))
	require.NoError(t, queue.SubmitWithSync(SubmitOptions{
		CommandBuffers:   []CommandBuffer{buffer},
		WaitSemaphores:   []Semaphore{wait},
		WaitStages:       []PipelineStage{PipelineStageComputeShader},
		SignalSemaphores: []Semaphore{signal},
	}))
	require.NoError(t, queue.WaitIdle())
}

func TestDeviceMemoryMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	memoryHandle := mocks.NewDummyDeviceMemory(driver.Device(), 4096)
	driver.EXPECT().AllocateMemory(nil, core1_0.MemoryAllocateInfo{
		AllocationSize:  4096,
		MemoryTypeIndex: 1,
	}).Return(memoryHandle, core1_0.VKSuccess, nil)
	driver.EXPECT().FreeMemory(memoryHandle, nil)

	memory, err := NewDeviceMemory(device, device.PhysicalDevice().MemoryTypes()[1], 4096)
	require.NoError(t, err)
	defer memory.Release()

	require.Equal(t, 4096, memory.Size())
	require.True(t, memory.MemoryType().IsHostVisible())

	backing := make([]byte, 4096)
	driver.EXPECT().MapMemory(memoryHandle, 1024, 3072, gomock.Any()).Return(unsafe.Pointer(&backing[1024]), core1_0.VKSuccess, nil)
	driver.EXPECT().UnmapMemory(memoryHandle)

	data, err := memory.Map(1024, -1)
	require.NoError(t, err)
	require.Equal(t, unsafe.Pointer(&backing[1024]), data)
	memory.Unmap()

	// Ranges past the end are refused before reaching the driver
	_, err = memory.Map(4000, 512)
	require.True(t, errors.Is(err, ErrOutOfRange))

	driver.EXPECT().FlushMappedMemoryRanges(core1_0.MappedMemoryRange{Memory: memoryHandle, Offset: 0, Size: 256}).Return(core1_0.VKSuccess, nil)
	require.NoError(t, memory.Flush(0, 256))

	driver.EXPECT().InvalidateMappedMemoryRanges(core1_0.MappedMemoryRange{Memory: memoryHandle, Offset: 512, Size: 128}).Return(core1_0.VKSuccess, nil)
	require.NoError(t, memory.Invalidate(512, 128))

	driver.EXPECT().GetDeviceMemoryCommitment(memoryHandle).Return(4096)
	committed, err := memory.Commitment()
	require.NoError(t, err)
	require.Equal(t, 4096, committed)
}

func TestPipelineCacheData(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	seed := []byte{1, 2, 3, 4}
	seededHandle := mocks.NewDummyPipelineCache(driver.Device())
	emptyHandle := mocks.NewDummyPipelineCache(driver.Device())
	driver.EXPECT().CreatePipelineCache(nil, core1_0.PipelineCacheCreateInfo{InitialData: seed}).Return(seededHandle, core1_0.VKSuccess, nil)
	driver.EXPECT().CreatePipelineCache(nil, core1_0.PipelineCacheCreateInfo{}).Return(emptyHandle, core1_0.VKSuccess, nil)
	driver.EXPECT().DestroyPipelineCache(seededHandle, nil)
	driver.EXPECT().DestroyPipelineCache(emptyHandle, nil)

	seeded, err := NewPipelineCache(device, seed)
	require.NoError(t, err)
	defer seeded.Release()

	empty, err := NewPipelineCache(device, nil)
	require.NoError(t, err)
	defer empty.Release()

	driver.EXPECT().MergePipelineCaches(emptyHandle, seededHandle).Return(core1_0.VKSuccess, nil)
	require.NoError(t, empty.Merge(seeded))

	err = empty.Merge(seeded, PipelineCache{})
	require.ErrorIs(t, err, ErrNullHandle)

	driver.EXPECT().GetPipelineCacheData(emptyHandle).Return([]byte{1, 2, 3, 4, 5, 6}, core1_0.VKSuccess, nil)
	size, err := empty.Size()
	require.NoError(t, err)
	require.Equal(t, 6, size)
}

func TestImageViewRetainsImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	imageHandle := mocks.NewDummyImage(driver.Device())
	driver.EXPECT().CreateImage(nil, core1_0.ImageCreateInfo{
		ImageType:     core1_0.ImageType2D,
		Extent:        core1_0.Extent3D{Width: 256, Height: 128, Depth: 1},
		MipLevels:     1,
		ArrayLayers:   1,
		Format:        core1_0.FormatR8G8B8A8SRGB,
		InitialLayout: core1_0.ImageLayoutUndefined,
		Usage:         core1_0.ImageUsageSampled,
		SharingMode:   core1_0.SharingModeExclusive,
		Samples:       core1_0.Samples1,
	}).Return(imageHandle, core1_0.VKSuccess, nil)
	driver.EXPECT().CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    imageHandle,
		ViewType: core1_0.ImageViewType2D,
		Format:   core1_0.FormatR8G8B8A8SRGB,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask: core1_0.ImageAspectColor,
			LevelCount: 1,
			LayerCount: 1,
		},
	}).Return(core1_0.ImageView{}, core1_0.VKSuccess, nil)

	image, err := NewImage(device, ImageOptions{
		Format: core1_0.FormatR8G8B8A8SRGB,
		Width:  256,
		Height: 128,
		Usage:  core1_0.ImageUsageSampled,
	})
	require.NoError(t, err)
	require.True(t, image.OwnsHandle())

	view, err := NewImageView(device, image, ImageViewOptions{ViewType: core1_0.ImageViewType2D})
	require.NoError(t, err)

	image.Release()
	require.True(t, view.Image().Initialized())

	var destroyedView bool
	gomock.InOrder(
		driver.EXPECT().DestroyImageView(core1_0.ImageView{}, nil).Do(func(core1_0.ImageView, *loader.AllocationCallbacks) {
			destroyedView = true
		}),
		driver.EXPECT().DestroyImage(imageHandle, nil).Do(func(core1_0.Image, *loader.AllocationCallbacks) {
			require.True(t, destroyedView)
		}),
	)
	view.Release()

	require.False(t, image.Initialized())
}

func TestComputePipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver, device := readyDevice(t, ctrl, defaultMemorySetup)

	driver.EXPECT().CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{Code: []uint32{0x07230203}}).Return(core1_0.ShaderModule{}, core1_0.VKSuccess, nil)
	driver.EXPECT().DestroyShaderModule(core1_0.ShaderModule{}, nil)
	driver.EXPECT().CreatePipelineLayout(nil, gomock.Any()).Return(core1_0.PipelineLayout{}, core1_0.VKSuccess, nil)
	driver.EXPECT().CreateComputePipelines(nil, nil, core1_0.ComputePipelineCreateInfo{
		Stage: core1_0.PipelineShaderStageCreateInfo{
			Stage: core1_0.StageCompute,
			Name:  "main",
		},
		BasePipelineIndex: -1,
	}).Return([]core1_0.Pipeline{{}}, core1_0.VKSuccess, nil)

	_, err := NewShaderModule(device, nil)
	require.Error(t, err)

	module, err := NewShaderModule(device, []uint32{0x07230203})
	require.NoError(t, err)
	defer module.Release()

	layout, err := NewPipelineLayout(device)
	require.NoError(t, err)

	pipeline, err := NewComputePipeline(device, layout, module, "main")
	require.NoError(t, err)
	require.Equal(t, core1_0.PipelineBindPointCompute, pipeline.BindPoint())

	// The pipeline keeps its layout; the module can go once the pipeline exists
	layout.Release()
	require.True(t, pipeline.Layout().Initialized())

	gomock.InOrder(
		driver.EXPECT().DestroyPipeline(core1_0.Pipeline{}, nil),
		driver.EXPECT().DestroyPipelineLayout(core1_0.PipelineLayout{}, nil),
	)
	pipeline.Release()
	require.False(t, layout.Initialized())
}
