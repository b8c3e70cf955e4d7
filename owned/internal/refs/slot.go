package refs

import "sync"

// Slot holds a native handle alongside its non-null sentinel. A handle is live from Fill
// until the first Take; every later Take reports false.
type Slot[H any] struct {
	mutex  sync.Mutex
	handle H
	live   bool
}

// Fill stores a freshly created handle and marks it live
func (s *Slot[H]) Fill(handle H) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.handle = handle
	s.live = true
}

// Get returns the stored handle and whether it is still live
func (s *Slot[H]) Get() (H, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.handle, s.live
}

// Take returns the handle and clears the sentinel. Only the first Take after Fill reports true.
func (s *Slot[H]) Take() (H, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.live {
		var zero H
		return zero, false
	}

	s.live = false
	return s.handle, true
}
