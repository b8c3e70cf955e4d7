package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// CommandBuffer records commands for submission to a queue. It retains its pool and device.
type CommandBuffer struct {
	handleRef[core1_0.CommandBuffer]
	pool CommandPool
}

func (b CommandBuffer) Retain() CommandBuffer {
	if !b.retain() {
		return CommandBuffer{}
	}
	return b
}

// Pool returns the pool the buffer was allocated from, without retaining it
func (b CommandBuffer) Pool() CommandPool {
	return b.pool
}

func (b CommandBuffer) Begin() error {
	driver, handle, err := b.driverFor("CommandBuffer::Begin", KindCommandBuffer)
	if err != nil {
		return err
	}

	res, err := driver.BeginCommandBuffer(handle, core1_0.CommandBufferBeginInfo{})
	return checkResult("CommandBuffer::Begin", res, err)
}

func (b CommandBuffer) End() error {
	driver, handle, err := b.driverFor("CommandBuffer::End", KindCommandBuffer)
	if err != nil {
		return err
	}

	res, err := driver.EndCommandBuffer(handle)
	return checkResult("CommandBuffer::End", res, err)
}

// Reset returns the buffer to the initial state, optionally returning its memory to the pool
func (b CommandBuffer) Reset(releaseResources bool) error {
	driver, handle, err := b.driverFor("CommandBuffer::Reset", KindCommandBuffer)
	if err != nil {
		return err
	}

	var flags core1_0.CommandBufferResetFlags
	if releaseResources {
		flags = core1_0.CommandBufferResetReleaseResources
	}

	res, err := driver.ResetCommandBuffer(handle, flags)
	return checkResult("CommandBuffer::Reset", res, err)
}

// BindPipeline records a pipeline bind outside of a Record call. The buffer must have been begun.
func (b CommandBuffer) BindPipeline(pipeline Pipeline) error {
	builder := &CommandBuilder{buffer: b}
	builder.BindPipeline(pipeline)
	return builder.err
}

// BindDescriptorSets records a descriptor set bind at the pipeline's bind point outside of a
// Record call. The buffer must have been begun.
func (b CommandBuffer) BindDescriptorSets(pipeline Pipeline, sets ...DescriptorSet) error {
	builder := &CommandBuilder{buffer: b}
	builder.BindDescriptorSets(pipeline, 0, sets...)
	return builder.err
}

// Dispatch records a compute dispatch outside of a Record call. The buffer must have been begun.
func (b CommandBuffer) Dispatch(x, y, z int) error {
	builder := &CommandBuilder{buffer: b}
	builder.Dispatch(x, y, z)
	return builder.err
}

// Record begins the buffer, passes a builder to record, and ends the buffer. End is called even
// if record fails or panics. The first error from begin, from the builder, from record or from
// end is returned.
func (b CommandBuffer) Record(record func(builder *CommandBuilder) error) (err error) {
	b.Device().Logger().Debug("CommandBuffer::Record")

	if err := b.Begin(); err != nil {
		return err
	}

	builder := &CommandBuilder{buffer: b}
	defer func() {
		builder.done = true

		endErr := b.End()
		switch {
		case builder.err != nil:
			err = builder.err
		case err == nil:
			err = endErr
		}
	}()

	return record(builder)
}
