package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// Surface is a presentation target produced by platform glue outside this package. Wrapping it
// hands ownership to the wrapper: the native surface is destroyed when the last reference is
// released.
//
// The zero value is a null Surface.
type Surface struct {
	impl *surfaceImpl
}

type surfaceImpl struct {
	resource[khr_surface.Surface]
	instance Instance
}

// WrapSurface takes ownership of a surface created against instance. The instance must have
// khr_surface enabled. The surface retains the instance.
func WrapSurface(instance Instance, handle khr_surface.Surface) (Surface, error) {
	if !instance.Initialized() {
		return Surface{}, nullHandle("Surface::Wrap", KindInstance)
	}

	driver := instance.impl.surface
	if driver == nil {
		return Surface{}, errors.Wrapf(ErrExtensionNotEnabled, "Surface::Wrap: %s", khr_surface.ExtensionName)
	}

	instance = instance.Retain()
	impl := &surfaceImpl{instance: instance}
	impl.init(KindSurface, instance.statsTracker(), func(handle khr_surface.Surface) {
		driver.DestroySurface(handle, nil)
	}, instance)
	impl.fill(handle)

	return Surface{impl: impl}, nil
}

func (s *surfaceImpl) res() *resource[khr_surface.Surface] {
	if s == nil {
		return nil
	}
	return &s.resource
}

// Handle returns the native surface handle
func (s Surface) Handle() khr_surface.Surface {
	handle, _ := s.impl.res().get()
	return handle
}

func (s Surface) Initialized() bool {
	return s.impl.res().live()
}

// Instance returns the instance the surface belongs to, without retaining it
func (s Surface) Instance() Instance {
	if s.impl == nil {
		return Instance{}
	}
	return s.impl.instance
}

func (s Surface) Retain() Surface {
	if !s.impl.res().acquire() {
		return Surface{}
	}
	return s
}

// Release drops one reference. Dropping the last one destroys the surface and releases the
// instance.
func (s Surface) Release() {
	s.impl.res().release()
}

func (s Surface) References() int {
	return s.impl.res().references()
}

func (s Surface) extensionDriver() (SurfaceDriver, error) {
	if !s.Initialized() {
		return nil, nullHandle("Surface::Query", KindSurface)
	}

	driver := s.impl.instance.impl.surface
	if driver == nil {
		return nil, errors.Wrapf(ErrExtensionNotEnabled, "Surface::Query: %s", khr_surface.ExtensionName)
	}
	return driver, nil
}
