package owned

import "github.com/vkngwrapper/core/v3/core1_0"

// Event is a fine-grained synchronization primitive that can be signaled from the host or from
// a command buffer
type Event struct {
	handleRef[core1_0.Event]
}

func NewEvent(device Device) (Event, error) {
	driver, err := device.driverFor("Event::Create")
	if err != nil {
		return Event{}, err
	}

	handle, res, err := driver.CreateEvent(nil, core1_0.EventCreateInfo{})
	if err != nil {
		return Event{}, checkResult("Event::Create", res, err)
	}

	return Event{refTo(newChild(device.Retain(), KindEvent, handle, func(handle core1_0.Event) {
		driver.DestroyEvent(handle, nil)
	}))}, nil
}

func (e Event) Retain() Event {
	if !e.retain() {
		return Event{}
	}
	return e
}

func (e Event) Status() (SignalStatus, error) {
	driver, handle, err := e.driverFor("Event::Status", KindEvent)
	if err != nil {
		return Unsignaled, err
	}

	res, err := driver.GetEventStatus(handle)
	if err != nil {
		return Unsignaled, checkResult("Event::Status", res, err)
	}

	if res == core1_0.VKEventSet {
		return Signaled, nil
	}
	return Unsignaled, nil
}

// Set signals the event from the host
func (e Event) Set() error {
	driver, handle, err := e.driverFor("Event::Set", KindEvent)
	if err != nil {
		return err
	}

	res, err := driver.SetEvent(handle)
	return checkResult("Event::Set", res, err)
}

// Reset unsignals the event from the host
func (e Event) Reset() error {
	driver, handle, err := e.driverFor("Event::Reset", KindEvent)
	if err != nil {
		return err
	}

	res, err := driver.ResetEvent(handle)
	return checkResult("Event::Reset", res, err)
}
