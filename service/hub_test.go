package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/cave-copter/config"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	log      *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(cfg *config.Config) error {
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&fakeService{name: "recorder", deps: []string{"leaderboard"}, log: &calls})
	h.Register(&fakeService{name: "leaderboard", log: &calls})
	h.Register(&fakeService{name: "audio", log: &calls})

	if err := h.InitAll(config.Default()); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()

	want := []string{
		"init:audio", "init:leaderboard", "init:recorder",
		"start:audio", "start:leaderboard", "start:recorder",
		"stop:recorder", "stop:leaderboard", "stop:audio",
	}
	if !slices.Equal(calls, want) {
		t.Errorf("Expected %v, got %v", want, calls)
	}
	if got := h.Order(); !slices.Equal(got, []string{"audio", "leaderboard", "recorder"}) {
		t.Errorf("Expected stable order, got %v", got)
	}
}

func TestHubRegisterDuplicate(t *testing.T) {
	var calls []string
	h := NewHub()
	if err := h.Register(&fakeService{name: "audio", log: &calls}); err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	if err := h.Register(&fakeService{name: "audio", log: &calls}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

func TestHubDependencyErrors(t *testing.T) {
	var calls []string

	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &calls})
	if err := h.InitAll(config.Default()); !errors.Is(err, ErrMissing) {
		t.Errorf("Expected ErrMissing, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &calls})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &calls})
	if err := h.InitAll(config.Default()); !errors.Is(err, ErrCycle) {
		t.Errorf("Expected ErrCycle, got %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("Expected no lifecycle calls, got %v", calls)
	}
}

func TestHubInitRollback(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &calls})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: boom, log: &calls})

	if err := h.InitAll(config.Default()); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped init error, got %v", err)
	}
	want := []string{"init:a", "init:b", "stop:a"}
	if !slices.Equal(calls, want) {
		t.Errorf("Expected %v, got %v", want, calls)
	}
}

func TestHubStartRollback(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &calls})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: boom, log: &calls})

	if err := h.InitAll(config.Default()); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	calls = calls[:0]
	if err := h.StartAll(); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped start error, got %v", err)
	}
	want := []string{"start:a", "start:b", "stop:a"}
	if !slices.Equal(calls, want) {
		t.Errorf("Expected %v, got %v", want, calls)
	}

	// Nothing left running after a rolled back start
	calls = calls[:0]
	h.StopAll()
	if len(calls) != 0 {
		t.Errorf("Expected no stops, got %v", calls)
	}
}

func TestMustGet(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &calls})

	if got := MustGet[*fakeService](h, "a"); got.name != "a" {
		t.Errorf("Expected service a, got %s", got.name)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing service")
		}
	}()
	MustGet[*fakeService](h, "missing")
}
