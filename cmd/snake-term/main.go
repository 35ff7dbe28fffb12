// Command snake-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"minisnake/game"
	"minisnake/internal/app"
	"minisnake/ui"
	"minisnake/ui/termcanvas"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file with theme and log settings")
	recordPath := flag.String("record", "", "Write session events to this .jsonl.zst file")
	flag.Parse()

	if err := run(*configPath, *recordPath); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, recordPath string) (err error) {
	// The terminal is the screen, so logs only go somewhere when log.file is set.
	env, err := app.Setup(configPath, recordPath, io.Discard)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := env.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("shutdown: %w", cerr)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := initScreen(screen); err != nil {
		return err
	}
	defer screen.Fini()

	start := time.Now()
	clock := func() float64 { return time.Since(start).Seconds() }

	g := game.NewGame(append(env.GameOptions(), game.WithStartTime(clock()))...)
	renderer := ui.NewRenderer(env.Theme)
	canvas := termcanvas.New(screen)
	env.Logger.Info("game started", "session", g.SessionID())

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(env.Config.Window.TargetFPS))
	defer ticker.Stop()

	var in frameInput
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in.apply(ev) {
					env.Logger.Info("quit", "score", g.Score(), "best", g.HighScore())
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if g.GameOver() {
				if in.restart {
					if err := g.Restart(clock()); err != nil {
						env.Logger.Warn("restart refused", "err", err)
					}
				}
			} else {
				g.HandleInput(in.controls)
				g.Tick(clock())
			}
			in = frameInput{}

			renderer.Draw(canvas, g)
			canvas.Show()
		}
	}
}

func initScreen(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	return nil
}

// frameInput gathers the key presses seen since the last frame. Terminals
// report presses rather than held keys, so a press counts as held for one frame.
type frameInput struct {
	controls game.Controls
	restart  bool
}

// apply records ev and reports whether it asks to quit.
func (in *frameInput) apply(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		in.controls.Up = true
	case tcell.KeyDown:
		in.controls.Down = true
	case tcell.KeyLeft:
		in.controls.Left = true
	case tcell.KeyRight:
		in.controls.Right = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			in.controls.Up = true
		case 's', 'S':
			in.controls.Down = true
		case 'a', 'A':
			in.controls.Left = true
		case 'd', 'D':
			in.controls.Right = true
		case 'r', 'R':
			in.restart = true
		}
	}
	return false
}
