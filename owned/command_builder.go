package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// CommandBuilder records commands into a command buffer for the duration of one
// CommandBuffer.Record call. Each method records exactly one command. The first failure is kept
// and every later method does nothing; Record returns the failure.
type CommandBuilder struct {
	buffer CommandBuffer
	err    error
	done   bool
}

// Err returns the first failure recorded so far
func (b *CommandBuilder) Err() error {
	return b.err
}

func (b *CommandBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// target returns the driver and the buffer being recorded, or false if recording has already
// failed
func (b *CommandBuilder) target(op string) (core1_0.CoreDeviceDriver, core1_0.CommandBuffer, bool) {
	var handle core1_0.CommandBuffer
	if b.err != nil {
		return nil, handle, false
	}

	if b.done {
		b.fail(errors.Wrapf(ErrNotRecording, "%s", op))
		return nil, handle, false
	}

	driver, handle, err := b.buffer.driverFor(op, KindCommandBuffer)
	if err != nil {
		b.fail(err)
		return nil, handle, false
	}

	return driver, handle, true
}

// liveHandle returns the handle of a wrapper argument, failing the builder if it is null
func liveHandle[H any](b *CommandBuilder, op string, kind ObjectKind, ref handleRef[H]) (H, bool) {
	handle, live := ref.impl.res().get()
	if !live {
		b.fail(nullHandle(op, kind))
	}
	return handle, live
}

// liveHandles returns the handles of a list of wrapper arguments, failing the builder if any of
// them is null
func liveHandles[H any, W interface {
	Handle() H
	Initialized() bool
}](b *CommandBuilder, op string, kind ObjectKind, wrappers []W) ([]H, bool) {
	handles, err := liveHandlesOf[H](op, kind, wrappers)
	if err != nil {
		b.fail(err)
		return nil, false
	}
	return handles, true
}

func (b *CommandBuilder) BindPipeline(pipeline Pipeline) {
	driver, buffer, ok := b.target("CommandBuilder::BindPipeline")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::BindPipeline", KindPipeline, pipeline.handleRef)
	if !ok {
		return
	}

	driver.CmdBindPipeline(buffer, pipeline.BindPoint(), handle)
}

// BindDescriptorSets binds sets starting at firstSet, at the pipeline's bind point and through
// its layout
func (b *CommandBuilder) BindDescriptorSets(pipeline Pipeline, firstSet int, sets ...DescriptorSet) {
	driver, buffer, ok := b.target("CommandBuilder::BindDescriptorSets")
	if !ok {
		return
	}

	layout, ok := liveHandle(b, "CommandBuilder::BindDescriptorSets", KindPipelineLayout, pipeline.Layout().handleRef)
	if !ok {
		return
	}

	handles, ok := liveHandles[core1_0.DescriptorSet](b, "CommandBuilder::BindDescriptorSets", KindDescriptorSet, sets)
	if !ok {
		return
	}

	driver.CmdBindDescriptorSets(buffer, pipeline.BindPoint(), layout, firstSet, handles, nil)
}

func (b *CommandBuilder) BindIndexBuffer(indexBuffer Buffer, offset int, indexType IndexType) {
	driver, buffer, ok := b.target("CommandBuilder::BindIndexBuffer")
	if !ok {
		return
	}

	native, err := indexType.native()
	if err != nil {
		b.fail(err)
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::BindIndexBuffer", KindBuffer, indexBuffer.handleRef)
	if !ok {
		return
	}

	driver.CmdBindIndexBuffer(buffer, handle, offset, native)
}

// BindVertexBuffers binds buffers to consecutive vertex input bindings starting at firstBinding.
// offsets must have one entry per buffer.
func (b *CommandBuilder) BindVertexBuffers(firstBinding int, buffers []Buffer, offsets []int) {
	driver, buffer, ok := b.target("CommandBuilder::BindVertexBuffers")
	if !ok {
		return
	}

	if len(offsets) != len(buffers) {
		b.fail(errors.Wrapf(ErrOutOfRange, "CommandBuilder::BindVertexBuffers: %d buffers with %d offsets", len(buffers), len(offsets)))
		return
	}

	handles, ok := liveHandles[core1_0.Buffer](b, "CommandBuilder::BindVertexBuffers", KindBuffer, buffers)
	if !ok {
		return
	}

	driver.CmdBindVertexBuffers(buffer, firstBinding, handles, offsets)
}

// BeginRenderPass starts pass on framebuffer with inline subpass contents
func (b *CommandBuilder) BeginRenderPass(pass RenderPass, framebuffer Framebuffer, area core1_0.Rect2D, clearValues ...core1_0.ClearValue) {
	driver, buffer, ok := b.target("CommandBuilder::BeginRenderPass")
	if !ok {
		return
	}

	passHandle, ok := liveHandle(b, "CommandBuilder::BeginRenderPass", KindRenderPass, pass.handleRef)
	if !ok {
		return
	}

	framebufferHandle, ok := liveHandle(b, "CommandBuilder::BeginRenderPass", KindFramebuffer, framebuffer.handleRef)
	if !ok {
		return
	}

	err := driver.CmdBeginRenderPass(buffer, core1_0.SubpassContentsInline, core1_0.RenderPassBeginInfo{
		RenderPass:  passHandle,
		Framebuffer: framebufferHandle,
		RenderArea:  area,
		ClearValues: clearValues,
	})
	if err != nil {
		b.fail(errors.Wrapf(err, "CommandBuilder::BeginRenderPass"))
	}
}

func (b *CommandBuilder) EndRenderPass() {
	driver, buffer, ok := b.target("CommandBuilder::EndRenderPass")
	if !ok {
		return
	}

	driver.CmdEndRenderPass(buffer)
}

func (b *CommandBuilder) Dispatch(x, y, z int) {
	driver, buffer, ok := b.target("CommandBuilder::Dispatch")
	if !ok {
		return
	}

	driver.CmdDispatch(buffer, x, y, z)
}

// DispatchIndirect dispatches with the group counts read from args at offset
func (b *CommandBuilder) DispatchIndirect(args Buffer, offset int) {
	driver, buffer, ok := b.target("CommandBuilder::DispatchIndirect")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::DispatchIndirect", KindBuffer, args.handleRef)
	if !ok {
		return
	}

	driver.CmdDispatchIndirect(buffer, handle, offset)
}

func (b *CommandBuilder) Draw(vertexCount, instanceCount, firstVertex, firstInstance int) {
	driver, buffer, ok := b.target("CommandBuilder::Draw")
	if !ok {
		return
	}

	driver.CmdDraw(buffer, vertexCount, instanceCount, uint32(firstVertex), uint32(firstInstance))
}

func (b *CommandBuilder) DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int) {
	driver, buffer, ok := b.target("CommandBuilder::DrawIndexed")
	if !ok {
		return
	}

	driver.CmdDrawIndexed(buffer, indexCount, instanceCount, uint32(firstIndex), vertexOffset, uint32(firstInstance))
}

func (b *CommandBuilder) DrawIndirect(args Buffer, offset, drawCount, stride int) {
	driver, buffer, ok := b.target("CommandBuilder::DrawIndirect")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::DrawIndirect", KindBuffer, args.handleRef)
	if !ok {
		return
	}

	driver.CmdDrawIndirect(buffer, handle, offset, drawCount, stride)
}

func (b *CommandBuilder) DrawIndexedIndirect(args Buffer, offset, drawCount, stride int) {
	driver, buffer, ok := b.target("CommandBuilder::DrawIndexedIndirect")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::DrawIndexedIndirect", KindBuffer, args.handleRef)
	if !ok {
		return
	}

	driver.CmdDrawIndexedIndirect(buffer, handle, offset, drawCount, stride)
}

func (b *CommandBuilder) BeginQuery(pool QueryPool, query int) {
	driver, buffer, ok := b.target("CommandBuilder::BeginQuery")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::BeginQuery", KindQueryPool, pool.handleRef)
	if !ok {
		return
	}

	driver.CmdBeginQuery(buffer, handle, query, 0)
}

func (b *CommandBuilder) EndQuery(pool QueryPool, query int) {
	driver, buffer, ok := b.target("CommandBuilder::EndQuery")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::EndQuery", KindQueryPool, pool.handleRef)
	if !ok {
		return
	}

	driver.CmdEndQuery(buffer, handle, query)
}

func (b *CommandBuilder) ResetQueryPool(pool QueryPool, firstQuery, count int) {
	driver, buffer, ok := b.target("CommandBuilder::ResetQueryPool")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::ResetQueryPool", KindQueryPool, pool.handleRef)
	if !ok {
		return
	}

	driver.CmdResetQueryPool(buffer, handle, firstQuery, count)
}

// ExecuteCommands runs secondary command buffers from this primary one
func (b *CommandBuilder) ExecuteCommands(secondaries ...CommandBuffer) {
	driver, buffer, ok := b.target("CommandBuilder::ExecuteCommands")
	if !ok {
		return
	}

	handles, ok := liveHandles[core1_0.CommandBuffer](b, "CommandBuilder::ExecuteCommands", KindCommandBuffer, secondaries)
	if !ok {
		return
	}

	driver.CmdExecuteCommands(buffer, handles...)
}

// FillBuffer writes data repeatedly into size bytes of target starting at offset
func (b *CommandBuilder) FillBuffer(target Buffer, offset, size int, data uint32) {
	driver, buffer, ok := b.target("CommandBuilder::FillBuffer")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::FillBuffer", KindBuffer, target.handleRef)
	if !ok {
		return
	}

	driver.CmdFillBuffer(buffer, handle, offset, size, data)
}

func (b *CommandBuilder) CopyBuffer(src, dst Buffer, regions ...core1_0.BufferCopy) {
	driver, buffer, ok := b.target("CommandBuilder::CopyBuffer")
	if !ok {
		return
	}

	srcHandle, ok := liveHandle(b, "CommandBuilder::CopyBuffer", KindBuffer, src.handleRef)
	if !ok {
		return
	}

	dstHandle, ok := liveHandle(b, "CommandBuilder::CopyBuffer", KindBuffer, dst.handleRef)
	if !ok {
		return
	}

	err := driver.CmdCopyBuffer(buffer, srcHandle, dstHandle, regions...)
	if err != nil {
		b.fail(errors.Wrapf(err, "CommandBuilder::CopyBuffer"))
	}
}

func (b *CommandBuilder) PipelineBarrier(src, dst PipelineStage, memory []core1_0.MemoryBarrier, buffers []core1_0.BufferMemoryBarrier, images []core1_0.ImageMemoryBarrier) {
	driver, buffer, ok := b.target("CommandBuilder::PipelineBarrier")
	if !ok {
		return
	}

	err := driver.CmdPipelineBarrier(buffer, src.Native(), dst.Native(), 0, memory, buffers, images)
	if err != nil {
		b.fail(errors.Wrapf(err, "CommandBuilder::PipelineBarrier"))
	}
}

func (b *CommandBuilder) SetLineWidth(width float32) {
	driver, buffer, ok := b.target("CommandBuilder::SetLineWidth")
	if !ok {
		return
	}

	driver.CmdSetLineWidth(buffer, width)
}

func (b *CommandBuilder) SetDepthBias(constantFactor, clamp, slopeFactor float32) {
	driver, buffer, ok := b.target("CommandBuilder::SetDepthBias")
	if !ok {
		return
	}

	driver.CmdSetDepthBias(buffer, constantFactor, clamp, slopeFactor)
}

func (b *CommandBuilder) SetDepthBounds(minBounds, maxBounds float32) {
	driver, buffer, ok := b.target("CommandBuilder::SetDepthBounds")
	if !ok {
		return
	}

	driver.CmdSetDepthBounds(buffer, minBounds, maxBounds)
}

// SetEvent signals event once the given stages have completed
func (b *CommandBuilder) SetEvent(event Event, stages PipelineStage) {
	driver, buffer, ok := b.target("CommandBuilder::SetEvent")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::SetEvent", KindEvent, event.handleRef)
	if !ok {
		return
	}

	driver.CmdSetEvent(buffer, handle, stages.Native())
}

// ResetEvent unsignals event once the given stages have completed
func (b *CommandBuilder) ResetEvent(event Event, stages PipelineStage) {
	driver, buffer, ok := b.target("CommandBuilder::ResetEvent")
	if !ok {
		return
	}

	handle, ok := liveHandle(b, "CommandBuilder::ResetEvent", KindEvent, event.handleRef)
	if !ok {
		return
	}

	driver.CmdResetEvent(buffer, handle, stages.Native())
}

func (b *CommandBuilder) SetViewports(viewports ...Viewport) {
	driver, buffer, ok := b.target("CommandBuilder::SetViewports")
	if !ok {
		return
	}

	driver.CmdSetViewport(buffer, viewports...)
}

func (b *CommandBuilder) SetScissors(scissors ...core1_0.Rect2D) {
	driver, buffer, ok := b.target("CommandBuilder::SetScissors")
	if !ok {
		return
	}

	driver.CmdSetScissor(buffer, scissors...)
}
