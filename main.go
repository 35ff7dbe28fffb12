package main

import (
	"flag"
	"fmt"
	"minisnake/game"
	"minisnake/internal/app"
	"minisnake/ui"
	"minisnake/ui/rlcanvas"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "YAML file with window, theme and log settings")
	recordPath := flag.String("record", "", "Write session events to this .jsonl.zst file")
	flag.Parse()

	env, err := app.Setup(*configPath, *recordPath, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := env.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "snake: shutdown: %v\n", err)
		}
	}()
	cfg := env.Config

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	g := game.NewGame(append(env.GameOptions(), game.WithStartTime(rl.GetTime()))...)
	renderer := ui.NewRenderer(env.Theme)
	canvas := rlcanvas.New()
	env.Logger.Info("game started", "session", g.SessionID())

	for !rl.WindowShouldClose() {
		if g.GameOver() {
			if rl.IsKeyPressed(rl.KeyR) {
				if err := g.Restart(rl.GetTime()); err != nil {
					env.Logger.Warn("restart refused", "err", err)
				}
			}
		} else {
			g.HandleInput(readControls())
			g.Tick(rl.GetTime())
		}

		rl.BeginDrawing()
		renderer.Draw(canvas, g)
		rl.EndDrawing()
	}

	env.Logger.Info("window closed", "score", g.Score(), "best", g.HighScore())
}

// readControls samples the held state of WASD and the arrow keys.
func readControls() game.Controls {
	return game.Controls{
		Up:    rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
	}
}
