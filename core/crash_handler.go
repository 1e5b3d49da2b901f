package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	resetHook func()
	reported  sync.Once

	// Swapped by tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetResetHook installs the display restore that runs before a crash report
// The terminal binary passes screen.Fini so the stack prints on a cooked tty
func SetResetHook(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	resetHook = fn
}

// HandleCrash restores the display, prints the panic value with its stack and exits 1
// The first caller reports; later panics from other goroutines go straight to exit
func HandleCrash(r any) {
	if r == nil {
		return
	}
	reported.Do(func() { report(r) })
	crashExit(1)
}

func report(r any) {
	crashMu.Lock()
	hook := resetHook
	crashMu.Unlock()
	if hook != nil {
		hook()
	}

	stack := debug.Stack()
	log.Printf("panic: %v\n%s", r, stack)

	fmt.Fprintf(crashOut, "\r\n\x1b[31mcave-copter crashed: %v\x1b[0m\r\n%s\r\n", r, stack)
	if f, ok := crashOut.(interface{ Sync() error }); ok {
		f.Sync()
	}
}

// Go starts fn on its own goroutine behind HandleCrash
func Go(fn func()) {
	go func() {
		defer func() { HandleCrash(recover()) }()
		fn()
	}()
}
