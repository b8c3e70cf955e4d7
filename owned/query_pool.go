package owned

import "github.com/vkngwrapper/core/v3/core1_0"

type QueryPool struct {
	handleRef[core1_0.QueryPool]
	count int
}

// NewQueryPool creates a pool of count queries of one type
func NewQueryPool(device Device, queryType core1_0.QueryType, count int) (QueryPool, error) {
	driver, err := device.driverFor("QueryPool::Create")
	if err != nil {
		return QueryPool{}, err
	}

	handle, res, err := driver.CreateQueryPool(nil, core1_0.QueryPoolCreateInfo{
		QueryType:  queryType,
		QueryCount: count,
	})
	if err != nil {
		return QueryPool{}, checkResult("QueryPool::Create", res, err)
	}

	return QueryPool{
		handleRef: refTo(newChild(device.Retain(), KindQueryPool, handle, func(handle core1_0.QueryPool) {
			driver.DestroyQueryPool(handle, nil)
		})),
		count: count,
	}, nil
}

func (p QueryPool) Retain() QueryPool {
	if !p.retain() {
		return QueryPool{}
	}
	return p
}

func (p QueryPool) Count() int {
	return p.count
}
