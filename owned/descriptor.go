package owned

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// allShaderStages is VK_SHADER_STAGE_ALL
const allShaderStages core1_0.ShaderStageFlags = 0x7fffffff

// StorageBufferBinding describes a single storage buffer visible to every shader stage at the
// given binding index
func StorageBufferBinding(binding int) core1_0.DescriptorSetLayoutBinding {
	return core1_0.DescriptorSetLayoutBinding{
		Binding:         binding,
		DescriptorType:  core1_0.DescriptorTypeStorageBuffer,
		DescriptorCount: 1,
		StageFlags:      allShaderStages,
	}
}

type DescriptorSetLayout struct {
	handleRef[core1_0.DescriptorSetLayout]
}

func NewDescriptorSetLayout(device Device, bindings ...core1_0.DescriptorSetLayoutBinding) (DescriptorSetLayout, error) {
	driver, err := device.driverFor("DescriptorSetLayout::Create")
	if err != nil {
		return DescriptorSetLayout{}, err
	}

	handle, res, err := driver.CreateDescriptorSetLayout(nil, core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: bindings,
	})
	if err != nil {
		return DescriptorSetLayout{}, checkResult("DescriptorSetLayout::Create", res, err)
	}

	return DescriptorSetLayout{refTo(newChild(device.Retain(), KindDescriptorSetLayout, handle, func(handle core1_0.DescriptorSetLayout) {
		driver.DestroyDescriptorSetLayout(handle, nil)
	}))}, nil
}

func (l DescriptorSetLayout) Retain() DescriptorSetLayout {
	if !l.retain() {
		return DescriptorSetLayout{}
	}
	return l
}

// DescriptorPool allocates descriptor sets. Sets retain their pool, and releasing a set returns
// it to the pool unless the pool has been reset since the set was allocated.
type DescriptorPool struct {
	handleRef[core1_0.DescriptorPool]
	generation *atomic.Uint64
}

// NewDescriptorPool creates a pool that can hold maxSets sets drawing from sizes
func NewDescriptorPool(device Device, maxSets int, sizes ...core1_0.DescriptorPoolSize) (DescriptorPool, error) {
	driver, err := device.driverFor("DescriptorPool::Create")
	if err != nil {
		return DescriptorPool{}, err
	}

	handle, res, err := driver.CreateDescriptorPool(nil, core1_0.DescriptorPoolCreateInfo{
		Flags:     core1_0.DescriptorPoolCreateFreeDescriptorSet,
		MaxSets:   maxSets,
		PoolSizes: sizes,
	})
	if err != nil {
		return DescriptorPool{}, checkResult("DescriptorPool::Create", res, err)
	}

	return DescriptorPool{
		handleRef: refTo(newChild(device.Retain(), KindDescriptorPool, handle, func(handle core1_0.DescriptorPool) {
			driver.DestroyDescriptorPool(handle, nil)
		})),
		generation: &atomic.Uint64{},
	}, nil
}

func (p DescriptorPool) Retain() DescriptorPool {
	if !p.retain() {
		return DescriptorPool{}
	}
	return p
}

// Allocate creates one descriptor set with the given layout
func (p DescriptorPool) Allocate(layout DescriptorSetLayout) (DescriptorSet, error) {
	driver, handle, err := p.driverFor("DescriptorPool::Allocate", KindDescriptorPool)
	if err != nil {
		return DescriptorSet{}, err
	}

	layoutHandle, live := layout.impl.res().get()
	if !live {
		return DescriptorSet{}, nullHandle("DescriptorPool::Allocate", KindDescriptorSetLayout)
	}

	sets, res, err := driver.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: handle,
		SetLayouts:     []core1_0.DescriptorSetLayout{layoutHandle},
	})
	if err != nil {
		return DescriptorSet{}, checkResult("DescriptorPool::Allocate", res, err)
	}
	if len(sets) == 0 {
		return DescriptorSet{}, errors.AssertionFailedf("DescriptorPool::Allocate: driver returned no descriptor sets")
	}

	generation := p.generation.Load()
	pool := p.Retain()
	return DescriptorSet{
		handleRef: refTo(newChild(p.Device().Retain(), KindDescriptorSet, sets[0], func(set core1_0.DescriptorSet) {
			if pool.generation.Load() != generation {
				return
			}
			driver.FreeDescriptorSets(set)
		}, pool)),
		pool: pool,
	}, nil
}

// Reset returns every set allocated from the pool to it. Sets allocated before the reset must
// not be used afterward; releasing them no longer frees anything.
func (p DescriptorPool) Reset() error {
	driver, handle, err := p.driverFor("DescriptorPool::Reset", KindDescriptorPool)
	if err != nil {
		return err
	}

	p.generation.Add(1)
	res, err := driver.ResetDescriptorPool(handle, 0)
	return checkResult("DescriptorPool::Reset", res, err)
}

// DescriptorSet is a set of descriptors allocated from a DescriptorPool. It retains the pool.
type DescriptorSet struct {
	handleRef[core1_0.DescriptorSet]
	pool DescriptorPool
}

func (s DescriptorSet) Retain() DescriptorSet {
	if !s.retain() {
		return DescriptorSet{}
	}
	return s
}

// Pool returns the pool the set was allocated from, without retaining it
func (s DescriptorSet) Pool() DescriptorPool {
	return s.pool
}

// DescriptorBinding points one binding of a set at a range of a buffer
type DescriptorBinding struct {
	Binding int
	Buffer  Buffer
	Offset  int
	// Range defaults to the rest of the buffer after Offset
	Range int
	// Uniform writes a uniform buffer descriptor instead of a storage buffer descriptor
	Uniform bool
}

// Update writes buffer descriptors into the set
func (s DescriptorSet) Update(bindings ...DescriptorBinding) error {
	driver, handle, err := s.driverFor("DescriptorSet::Update", KindDescriptorSet)
	if err != nil {
		return err
	}

	writes := make([]core1_0.WriteDescriptorSet, 0, len(bindings))
	for _, binding := range bindings {
		bufferHandle, live := binding.Buffer.impl.res().get()
		if !live {
			return nullHandle("DescriptorSet::Update", KindBuffer)
		}

		descriptorRange := binding.Range
		if descriptorRange == 0 {
			descriptorRange = binding.Buffer.Size() - binding.Offset
		}

		descriptorType := core1_0.DescriptorTypeStorageBuffer
		if binding.Uniform {
			descriptorType = core1_0.DescriptorTypeUniformBuffer
		}

		writes = append(writes, core1_0.WriteDescriptorSet{
			DstSet:         handle,
			DstBinding:     binding.Binding,
			DescriptorType: descriptorType,
			BufferInfo: []core1_0.DescriptorBufferInfo{
				{
					Buffer: bufferHandle,
					Offset: binding.Offset,
					Range:  descriptorRange,
				},
			},
		})
	}

	err = driver.UpdateDescriptorSets(writes, nil)
	if err != nil {
		return errors.Wrapf(err, "DescriptorSet::Update")
	}
	return nil
}
