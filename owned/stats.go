package owned

import (
	"log/slog"

	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arsenal/owned/internal/refs"
	"golang.org/x/exp/slices"
)

// tracker counts live and created native objects per kind for one instance and everything
// derived from it
type tracker struct {
	logger *slog.Logger
	mutex  refs.OptionalRWMutex

	live    *swiss.Map[ObjectKind, int]
	created *swiss.Map[ObjectKind, int]
}

func newTracker(logger *slog.Logger, useMutex bool) *tracker {
	return &tracker{
		logger:  logger,
		mutex:   refs.OptionalRWMutex{UseMutex: useMutex},
		live:    swiss.NewMap[ObjectKind, int](42),
		created: swiss.NewMap[ObjectKind, int](42),
	}
}

func (t *tracker) created(kind ObjectKind) {
	if t == nil {
		return
	}
	t.logger.Debug(string(kind) + "::Create")

	t.mutex.Lock()
	defer t.mutex.Unlock()

	live, _ := t.live.Get(kind)
	t.live.Put(kind, live+1)

	created, _ := t.created.Get(kind)
	t.created.Put(kind, created+1)
}

func (t *tracker) destroyed(kind ObjectKind) {
	if t == nil {
		return
	}
	t.logger.Debug(string(kind) + "::Destroy")

	t.mutex.Lock()
	defer t.mutex.Unlock()

	live, _ := t.live.Get(kind)
	if live <= 1 {
		t.live.Delete(kind)
		return
	}
	t.live.Put(kind, live-1)
}

// Live returns the number of objects of the given kind that have been created and not yet destroyed
func (t *tracker) Live(kind ObjectKind) int {
	if t == nil {
		return 0
	}

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	live, _ := t.live.Get(kind)
	return live
}

func (t *tracker) BuildStatsString(detailed bool) string {
	writer := jwriter.NewWriter()
	t.writeStats(&writer, detailed)
	return string(writer.Bytes())
}

func (t *tracker) writeStats(writer *jwriter.Writer, detailed bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	objState := writer.Object()
	defer objState.End()

	totalLive := writeKindCounts(&objState, "Live", t.live, detailed)
	totalCreated := writeKindCounts(&objState, "Created", t.created, detailed)

	total := objState.Name("Total").Object()
	total.Name("Live").Int(totalLive)
	total.Name("Created").Int(totalCreated)
	total.End()
}

// writeKindCounts writes the per-kind counts as a named object when detailed is set and returns
// their sum either way
func writeKindCounts(objState *jwriter.ObjectState, name string, counts *swiss.Map[ObjectKind, int], detailed bool) int {
	if !detailed {
		sum := 0
		counts.Iter(func(_ ObjectKind, count int) bool {
			sum += count
			return false
		})
		return sum
	}

	kinds := make([]ObjectKind, 0, counts.Count())
	counts.Iter(func(kind ObjectKind, _ int) bool {
		kinds = append(kinds, kind)
		return false
	})
	slices.Sort(kinds)

	sum := 0
	kindObj := objState.Name(name).Object()
	for _, kind := range kinds {
		count, _ := counts.Get(kind)
		kindObj.Name(string(kind)).Int(count)
		sum += count
	}
	kindObj.End()

	return sum
}
