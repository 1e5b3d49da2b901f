package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestHoldTrackerLifecycle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(550*time.Millisecond, 120*time.Millisecond)

	if got := h.Press(start); !reflect.DeepEqual(got, []Input{Confirm, LiftStart}) {
		t.Fatalf("Expected Confirm+LiftStart on first press, got %v", got)
	}

	// Initial repeat delay: no release yet
	if got := h.Poll(start.Add(500 * time.Millisecond)); got != nil {
		t.Fatalf("Expected hold inside initial grace, got %v", got)
	}

	// Auto-repeat extends the hold by the shorter window
	now := start.Add(530 * time.Millisecond)
	if got := h.Press(now); got != nil {
		t.Fatalf("Expected repeat press to be silent, got %v", got)
	}
	if got := h.Poll(now.Add(100 * time.Millisecond)); got != nil {
		t.Fatalf("Expected hold inside repeat grace, got %v", got)
	}

	if got := h.Poll(now.Add(121 * time.Millisecond)); !reflect.DeepEqual(got, []Input{LiftStop}) {
		t.Fatalf("Expected LiftStop after repeat grace, got %v", got)
	}
	if h.Held() {
		t.Error("Expected hold to end")
	}
	if got := h.Poll(now.Add(time.Second)); got != nil {
		t.Errorf("Expected single LiftStop, got %v", got)
	}

	// A fresh press starts a new hold
	if got := h.Press(now.Add(2 * time.Second)); len(got) != 2 {
		t.Errorf("Expected new hold, got %v", got)
	}
}

func TestInputString(t *testing.T) {
	if Confirm.String() != "Confirm" || Input(99).String() != "Unknown" {
		t.Error("Unexpected input names")
	}
}
