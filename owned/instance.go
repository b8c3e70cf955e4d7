package owned

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/owned/internal/refs"
	"github.com/vkngwrapper/arsenal/owned/internal/vulkan"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"golang.org/x/exp/slices"
)

var (
	newInstanceExtensions = vulkan.NewInstanceExtensions
	instanceDrivers       = func(extensions *vulkan.InstanceExtensions) (DebugUtilsDriver, SurfaceDriver) {
		var debugUtils DebugUtilsDriver
		if extensions.DebugUtils != nil {
			debugUtils = extensions.DebugUtils
		}

		var surface SurfaceDriver
		if extensions.Surface != nil {
			surface = extensions.Surface
		}
		return debugUtils, surface
	}
)

// Instance is the root of every object in this package. It owns the driver connection, the
// debug messenger if one was requested, and the physical devices enumerated at creation.
//
// The zero value is a null Instance.
type Instance struct {
	impl *instanceImpl
}

type instanceImpl struct {
	resource[core1_0.Instance]

	driver     core1_0.CoreInstanceDriver
	logger     *slog.Logger
	extensions *vulkan.InstanceExtensions
	layers     []string
	debugUtils DebugUtilsDriver
	surface    SurfaceDriver

	messenger       refs.Slot[ext_debug_utils.DebugUtilsMessenger]
	physicalDevices []PhysicalDevice
}

// NewInstance creates a Vulkan instance through the provided loader driver.
//
// logger receives lifecycle tracing for this instance and every object derived from it, and
// validation output when InstanceDebugMessenger is set. A nil logger uses slog.Default().
func NewInstance(logger *slog.Logger, global core1_0.GlobalDriver, options InstanceOptions) (Instance, error) {
	if logger == nil {
		logger = slog.Default()
	}

	availableExtensions, res, err := global.AvailableExtensions()
	if err != nil {
		return Instance{}, checkEnumeration("Instance::AvailableExtensions", res, err)
	}

	availableLayers, res, err := global.AvailableLayers()
	if err != nil {
		return Instance{}, checkEnumeration("Instance::AvailableLayers", res, err)
	}

	extensionNames, err := selectNames("extension", availableExtensions, options.Extensions, options.Flags&InstanceEnableAllExtensions != 0)
	if err != nil {
		return Instance{}, err
	}

	layerNames, err := selectNames("layer", availableLayers, options.Layers, options.Flags&InstanceEnableAllLayers != 0)
	if err != nil {
		return Instance{}, err
	}

	useMessenger := options.Flags&InstanceDebugMessenger != 0
	if useMessenger {
		_, available := availableExtensions[ext_debug_utils.ExtensionName]
		if available {
			extensionNames = appendUnique(extensionNames, ext_debug_utils.ExtensionName)
		} else {
			logger.Warn("debug messenger requested but ext_debug_utils is not available")
			useMessenger = false
		}
	}

	apiVersion := options.APIVersion
	if apiVersion == 0 {
		apiVersion = common.Vulkan1_0
	}

	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:       options.ApplicationName,
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		EngineName:            options.EngineName,
		EngineVersion:         common.CreateVersion(1, 0, 0),
		APIVersion:            apiVersion,
		EnabledExtensionNames: extensionNames,
		EnabledLayerNames:     layerNames,
	}

	if useMessenger {
		// Covers messages emitted while the instance itself is created and destroyed
		createInfo.Next = vulkan.DebugMessengerCreateInfo(logger)
	}

	handle, res, err := global.CreateInstance(nil, createInfo)
	if err != nil {
		return Instance{}, checkResult("Instance::Create", res, err)
	}

	driver, err := global.BuildInstanceDriver(handle)
	if err != nil {
		// Without an instance driver there is no way to call vkDestroyInstance
		logger.Error("instance created but its driver could not be built; the native instance leaks")
		return Instance{}, errors.Wrap(err, "Instance::BuildDriver")
	}

	extensions := newInstanceExtensions(driver, extensionNames)
	debugUtils, surface := instanceDrivers(extensions)
	impl := &instanceImpl{
		driver:     driver,
		logger:     logger,
		extensions: extensions,
		layers:     layerNames,
		debugUtils: debugUtils,
		surface:    surface,
	}
	impl.init(KindInstance, newTracker(logger, options.Flags&InstanceExternallySynchronized == 0), impl.destroyInstance)
	impl.fill(handle)
	instance := Instance{impl: impl}

	if useMessenger && debugUtils != nil {
		messenger, res, err := debugUtils.CreateDebugUtilsMessenger(nil, vulkan.DebugMessengerCreateInfo(logger))
		if err != nil {
			instance.Release()
			return Instance{}, checkResult("Instance::CreateDebugMessenger", res, err)
		}
		impl.messenger.Fill(messenger)
		impl.tracker.created(KindDebugMessenger)
	}

	handles, res, err := driver.EnumeratePhysicalDevices()
	if err != nil {
		instance.Release()
		return Instance{}, checkEnumeration("Instance::EnumeratePhysicalDevices", res, err)
	}

	for _, handle := range handles {
		physicalDevice, err := snapshotPhysicalDevice(driver, handle)
		if err != nil {
			instance.Release()
			return Instance{}, err
		}
		impl.physicalDevices = append(impl.physicalDevices, physicalDevice)
	}

	return instance, nil
}

func (i *instanceImpl) res() *resource[core1_0.Instance] {
	if i == nil {
		return nil
	}
	return &i.resource
}

func (i *instanceImpl) destroyInstance(core1_0.Instance) {
	if messenger, live := i.messenger.Take(); live {
		i.debugUtils.DestroyDebugUtilsMessenger(messenger, nil)
		i.tracker.destroyed(KindDebugMessenger)
	}

	i.driver.DestroyInstance(nil)
}

// selectNames validates the requested names against what the loader reports and, when all is
// set, adds every available name. The result is sorted.
func selectNames[T any](what string, available map[string]T, requested []string, all bool) ([]string, error) {
	var names []string
	for _, name := range requested {
		if _, ok := available[name]; !ok {
			return nil, errors.Newf("%s %s is not available", what, name)
		}
		names = appendUnique(names, name)
	}

	if all {
		for name := range available {
			names = appendUnique(names, name)
		}
	}

	slices.Sort(names)
	return names, nil
}

func appendUnique(names []string, name string) []string {
	if slices.Contains(names, name) {
		return names
	}
	return append(names, name)
}

// Handle returns the native instance handle
func (i Instance) Handle() core1_0.Instance {
	handle, _ := i.impl.res().get()
	return handle
}

// Initialized returns true if the instance has been created and not yet destroyed
func (i Instance) Initialized() bool {
	return i.impl.res().live()
}

// Driver returns the instance-level driver. It returns nil for a null Instance.
func (i Instance) Driver() core1_0.CoreInstanceDriver {
	if i.impl == nil {
		return nil
	}
	return i.impl.driver
}

// Logger returns the logger passed to NewInstance, or slog.Default() for a null Instance
func (i Instance) Logger() *slog.Logger {
	if i.impl == nil {
		return slog.Default()
	}
	return i.impl.logger
}

// PhysicalDevices returns the physical devices enumerated when the instance was created, in
// driver order
func (i Instance) PhysicalDevices() []PhysicalDevice {
	if i.impl == nil {
		return nil
	}
	return slices.Clone(i.impl.physicalDevices)
}

// IsExtensionEnabled returns true if the named instance extension was enabled at creation
func (i Instance) IsExtensionEnabled(name string) bool {
	if i.impl == nil {
		return false
	}
	return i.impl.extensions.IsEnabled(name)
}

// Layers returns the names of the layers enabled at creation
func (i Instance) Layers() []string {
	if i.impl == nil {
		return nil
	}
	return slices.Clone(i.impl.layers)
}

// BuildStatsString returns a JSON document with the number of live native objects per kind
// created through this instance. When detailed is set it also breaks down the number of objects
// ever created.
func (i Instance) BuildStatsString(detailed bool) string {
	if i.impl == nil {
		return newTracker(slog.Default(), false).BuildStatsString(detailed)
	}
	return i.impl.tracker.BuildStatsString(detailed)
}

// LiveObjects returns the number of objects of the given kind that have been created through
// this instance and not yet destroyed
func (i Instance) LiveObjects(kind ObjectKind) int {
	if i.impl == nil {
		return 0
	}
	return i.impl.tracker.Live(kind)
}

// Retain acquires another reference to the instance. It returns a null Instance if the instance
// has already been destroyed.
func (i Instance) Retain() Instance {
	if !i.impl.res().acquire() {
		return Instance{}
	}
	return i
}

// Release drops one reference. Dropping the last one destroys the debug messenger and then the
// instance.
func (i Instance) Release() {
	i.impl.res().release()
}

// Destroy releases the reference returned by NewInstance
func (i Instance) Destroy() {
	i.Release()
}

// References returns the number of live references to the instance
func (i Instance) References() int {
	return i.impl.res().references()
}

func (i Instance) statsTracker() *tracker {
	if i.impl == nil {
		return nil
	}
	return i.impl.tracker
}
