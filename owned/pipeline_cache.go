package owned

import "github.com/vkngwrapper/core/v3/core1_0"

type PipelineCache struct {
	handleRef[core1_0.PipelineCache]
}

// NewPipelineCache creates a pipeline cache, seeded with data previously returned by
// PipelineCache.Data if it is not empty
func NewPipelineCache(device Device, data []byte) (PipelineCache, error) {
	driver, err := device.driverFor("PipelineCache::Create")
	if err != nil {
		return PipelineCache{}, err
	}

	handle, res, err := driver.CreatePipelineCache(nil, core1_0.PipelineCacheCreateInfo{
		InitialData: data,
	})
	if err != nil {
		return PipelineCache{}, checkResult("PipelineCache::Create", res, err)
	}

	return PipelineCache{refTo(newChild(device.Retain(), KindPipelineCache, handle, func(handle core1_0.PipelineCache) {
		driver.DestroyPipelineCache(handle, nil)
	}))}, nil
}

func (c PipelineCache) Retain() PipelineCache {
	if !c.retain() {
		return PipelineCache{}
	}
	return c
}

// Merge adds the contents of every source cache to this one
func (c PipelineCache) Merge(sources ...PipelineCache) error {
	driver, handle, err := c.driverFor("PipelineCache::Merge", KindPipelineCache)
	if err != nil {
		return err
	}

	sourceHandles, err := liveHandlesOf[core1_0.PipelineCache]("PipelineCache::Merge", KindPipelineCache, sources)
	if err != nil {
		return err
	}

	res, err := driver.MergePipelineCaches(handle, sourceHandles...)
	return checkResult("PipelineCache::Merge", res, err)
}

// Data returns the serialized contents of the cache
func (c PipelineCache) Data() ([]byte, error) {
	driver, handle, err := c.driverFor("PipelineCache::Data", KindPipelineCache)
	if err != nil {
		return nil, err
	}

	data, res, err := driver.GetPipelineCacheData(handle)
	if err != nil {
		return nil, checkResult("PipelineCache::Data", res, err)
	}
	return data, nil
}

// Size returns the length of the serialized contents of the cache
func (c PipelineCache) Size() (int, error) {
	data, err := c.Data()
	return len(data), err
}
