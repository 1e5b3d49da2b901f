package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestGoRecoversAndRunsHook(t *testing.T) {
	var buf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)

	hookCalled := false
	exitCode := -1

	crashOut = &buf
	crashExit = func(code int) {
		exitCode = code
		wg.Done()
	}
	SetResetHook(func() { hookCalled = true })
	defer SetResetHook(nil)

	Go(func() { panic("rotor failure") })
	wg.Wait()

	if !hookCalled {
		t.Error("Expected reset hook to run before report")
	}
	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "cave-copter crashed: rotor failure") {
		t.Errorf("Expected crash banner, got %q", buf.String())
	}
}

func TestHandleCrashNil(t *testing.T) {
	called := false
	crashExit = func(int) { called = true }
	HandleCrash(nil)
	if called {
		t.Error("Expected nil recovery to be ignored")
	}
}
