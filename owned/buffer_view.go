package owned

import (
	"github.com/vkngwrapper/arsenal/memutils"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// BufferView is a formatted view into a buffer. It retains the buffer.
type BufferView struct {
	handleRef[core1_0.BufferView]
	buffer Buffer
}

// NewBufferView creates a view of size bytes of buffer starting at offset
func NewBufferView(device Device, buffer Buffer, format Format, offset, size int) (BufferView, error) {
	driver, err := device.driverFor("BufferView::Create")
	if err != nil {
		return BufferView{}, err
	}

	bufferHandle, live := buffer.impl.res().get()
	if !live {
		return BufferView{}, nullHandle("BufferView::Create", KindBuffer)
	}

	err = checkSpan("BufferView::Create", memutils.Range{Offset: offset, Size: size, Capacity: buffer.Size()})
	if err != nil {
		return BufferView{}, err
	}

	handle, res, err := driver.CreateBufferView(nil, core1_0.BufferViewCreateInfo{
		Buffer: bufferHandle,
		Format: format,
		Offset: offset,
		Range:  size,
	})
	if err != nil {
		return BufferView{}, checkResult("BufferView::Create", res, err)
	}

	buffer = buffer.Retain()
	return BufferView{
		handleRef: refTo(newChild(device.Retain(), KindBufferView, handle, func(handle core1_0.BufferView) {
			driver.DestroyBufferView(handle, nil)
		}, buffer)),
		buffer: buffer,
	}, nil
}

func (v BufferView) Retain() BufferView {
	if !v.retain() {
		return BufferView{}
	}
	return v
}

// Buffer returns the viewed buffer, without retaining it
func (v BufferView) Buffer() Buffer {
	return v.buffer
}
