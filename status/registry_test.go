package status

import (
	"reflect"
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyEngineTicks)
	b := r.Ints.Get(KeyEngineTicks)
	if a != b {
		t.Error("Expected the same pointer for repeated Get")
	}
	if !r.Ints.Has(KeyEngineTicks) || r.Ints.Has(KeyEngineDroppedTicks) {
		t.Error("Has reported wrong membership")
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 4000 {
		t.Errorf("Expected 4000, got %v", got)
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeySessionObstacles).Store(3)
	r.Ints.Get(KeyEngineTicks).Store(120)
	r.Floats.Get(KeyRenderFPS).Set(59.94)
	r.Strings.Get(KeySessionState).Store("playing")

	want := []string{
		"engine.ticks=120",
		"render.fps=59.9",
		"session.obstacles=3",
		"session.state=playing",
	}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}
