package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// Semaphore is a queue-to-queue synchronization primitive
type Semaphore struct {
	handleRef[core1_0.Semaphore]
}

func NewSemaphore(device Device) (Semaphore, error) {
	driver, err := device.driverFor("Semaphore::Create")
	if err != nil {
		return Semaphore{}, err
	}

	handle, res, err := driver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return Semaphore{}, checkResult("Semaphore::Create", res, err)
	}

	return Semaphore{refTo(newChild(device.Retain(), KindSemaphore, handle, func(handle core1_0.Semaphore) {
		driver.DestroySemaphore(handle, nil)
	}))}, nil
}

func (s Semaphore) Retain() Semaphore {
	if !s.retain() {
		return Semaphore{}
	}
	return s
}
