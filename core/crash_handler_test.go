package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHandleCrashNilIsNoop(t *testing.T) {
	exited := false
	orig := crashExit
	crashExit = func(int) { exited = true }
	defer func() { crashExit = orig }()

	HandleCrash(nil)
	if exited {
		t.Error("Expected HandleCrash(nil) not to exit")
	}
}

func TestReportCrashFinalizesScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	SetCrashScreen(screen)

	var out bytes.Buffer
	reportCrash(&out, "boom", []byte("stack"))

	if !strings.Contains(out.String(), "boom") {
		t.Errorf("Expected crash report to contain panic value, got %q", out.String())
	}
	if crashScreen.Load() != nil {
		t.Error("Expected crash screen to be cleared after report")
	}
}
