package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashRestore  func()
	crashOutput   io.Writer = os.Stderr
	crashExitFunc           = os.Exit
)

// SetCrashRestore registers the function that returns the terminal to a sane
// state before a crash report is printed. Passing nil clears it.
func SetCrashRestore(restore func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashRestore = restore
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	out := crashOutput
	exit := crashExitFunc
	crashMu.Unlock()

	// Terminal first, otherwise the report lands on the alternate screen
	if restore != nil {
		restore()
	}

	fmt.Fprintf(out, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Protect registers restore for crash reports and runs fn. restore has run
// by the time Protect returns or a panic from fn leaves it, so a recover
// further up the main goroutine reports onto a sane terminal.
func Protect(restore func(), fn func()) {
	SetCrashRestore(restore)
	defer func() {
		restore()
		SetCrashRestore(nil)
	}()
	fn()
}
