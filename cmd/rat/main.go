package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/LoafDev/rat/audio"
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/engine"
	"github.com/LoafDev/rat/panels"
	"github.com/gdamore/tcell/v2"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to "+constants.LogDir+"/"+constants.LogFileName)
	soundFlag = flag.Bool("sound", false, "Play audio cues")
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("rat starting")

	if err := run(*soundFlag); err != nil {
		fmt.Fprintf(os.Stderr, "rat: %v\n", err)
		os.Exit(1)
	}
	log.Printf("rat exiting")
}

func run(sound bool) error {
	screen, err := newScreen()
	if err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	var cue panels.Cue
	if sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the demo runs silent
			log.Printf("continuing without audio: %v", err)
		} else {
			defer sm.Cleanup()
			cue = sm
		}
	}

	session := panels.NewSession(engine.NewMonotonicTimeProvider(), cue)
	loop(screen, session)
	return nil
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// loop pumps terminal events into the session and renders on every frame tick
func loop(screen tcell.Screen, session *panels.Session) {
	events := make(chan tcell.Event, constants.EventQueueSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	draw := func() {
		session.Render(screen)
		screen.Show()
	}
	draw()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				session.HandleKey(ev)
				if session.Quit() {
					return
				}
				draw()
			case *tcell.EventResize:
				screen.Sync()
				draw()
			}
		case <-ticker.C:
			draw()
		}
	}
}
