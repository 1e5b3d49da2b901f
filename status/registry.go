package status

import (
	"fmt"
	"slices"
	"strconv"
	"sync/atomic"
)

// Metric keys
const (
	KeyEngineTicks        = "engine.ticks"
	KeyEngineDroppedTicks = "engine.dropped_ticks"
	KeySessionObstacles   = "session.obstacles"
	KeySessionScore       = "session.score"
	KeySessionState       = "session.state"
	KeyRenderFPS          = "render.fps"
)

// Registry groups the typed metric maps behind one handle
// Writers fetch a metric pointer once and store into it on every tick
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount sums the entries of all three maps
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as "key=value", sorted by key
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, k+"="+v.Load())
	})
	slices.Sort(out)
	return out
}
