package main

import (
	"errors"
	"minisnake/game"
	"minisnake/game/types"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFrameInput_Apply(t *testing.T) {
	cases := []struct {
		name    string
		ev      *tcell.EventKey
		quit    bool
		want    game.Controls
		restart bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false, game.Controls{Up: true}, false},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), false, game.Controls{Right: true}, false},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), false, game.Controls{Left: true}, false},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), false, game.Controls{Down: true}, false},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), false, game.Controls{}, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true, game.Controls{}, false},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, game.Controls{}, false},
	}
	for _, tc := range cases {
		var in frameInput
		if quit := in.apply(tc.ev); quit != tc.quit {
			t.Fatalf("%s: quit=%v want=%v", tc.name, quit, tc.quit)
		}
		if in.controls != tc.want || in.restart != tc.restart {
			t.Fatalf("%s: controls=%+v restart=%v", tc.name, in.controls, in.restart)
		}
	}
}

func TestFrameInput_PressesAccumulate(t *testing.T) {
	var in frameInput
	in.apply(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	in.apply(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if in.controls != (game.Controls{Up: true, Right: true}) {
		t.Fatalf("controls=%+v want up and right", in.controls)
	}
	// Both count as held this frame; the fixed precedence picks up.
	if got := game.ResolveDirection(in.controls, types.Left); got != types.Up {
		t.Fatalf("resolved=%v want=%v", got, types.Up)
	}
}

type brokenScreen struct {
	tcell.Screen
	err error
}

func (s brokenScreen) Init() error { return s.err }

func TestInitScreen_WrapsError(t *testing.T) {
	cause := errors.New("no tty")
	err := initScreen(brokenScreen{Screen: tcell.NewSimulationScreen(""), err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("err=%v want it to wrap %v", err, cause)
	}
	if !strings.HasPrefix(err.Error(), "terminal init: ") {
		t.Fatalf("err=%q", err)
	}

	sim := tcell.NewSimulationScreen("")
	if err := initScreen(sim); err != nil {
		t.Fatalf("simulation screen: %v", err)
	}
	sim.Fini()
}
