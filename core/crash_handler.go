package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is finalized before a crash report is printed
var crashScreen atomic.Pointer[tcell.Screen]

// crashExit terminates the process after a crash report
var crashExit = os.Exit

// SetCrashScreen registers the screen restored by HandleCrash, nil clears it
func SetCrashScreen(s tcell.Screen) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	reportCrash(os.Stderr, r, debug.Stack())
	crashExit(1)
}

func reportCrash(w io.Writer, r any, stack []byte) {
	if p := crashScreen.Swap(nil); p != nil {
		(*p).Fini()
	}
	fmt.Fprintf(w, "\n\x1b[31mRAT CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
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
