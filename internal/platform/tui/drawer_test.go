package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// newTestDrawer maps a 128x64 field onto a 64x32 screen, two units per cell.
func newTestDrawer() (*core.Screen, *ScreenDrawer) {
	screen := core.NewScreen(64, 32)
	return screen, NewScreenDrawer(screen, 128, 64)
}

func TestDrawPlayer(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawPlayer(pong.NewPaddle(core.Player1, 128, 64))

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top", 0, 12, '█'},
		{"bottom", 0, 19, '█'},
		{"below", 0, 20, ' '},
		{"above", 0, 11, ' '},
		{"right of paddle", 1, 12, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screen.Get(tt.x, tt.y); got != tt.want {
				t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawPlayer2Edge(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawPlayer(pong.NewPaddle(core.Player2, 128, 64))

	if got := screen.Get(63, 12); got != '█' {
		t.Errorf("Get(63, 12) = %q, expected paddle", got)
	}
	if got := screen.Get(62, 12); got != ' ' {
		t.Errorf("Get(62, 12) = %q, expected blank", got)
	}
}

func TestDrawBall(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawBall(pong.Ball{X: 64, Y: 32, R: pong.BallRadius})

	if got := screen.Get(32, 16); got != '●' {
		t.Errorf("centre cell = %q, expected ball", got)
	}
	if got := screen.Get(36, 16); got != ' ' {
		t.Errorf("cell outside radius = %q, expected blank", got)
	}
	if got := screen.Get(32, 20); got != ' ' {
		t.Errorf("cell below radius = %q, expected blank", got)
	}
}

func TestDrawBallAlwaysVisible(t *testing.T) {
	// One cell covers far more than the ball.
	screen := core.NewScreen(4, 4)
	d := NewScreenDrawer(screen, 128, 64)
	d.DrawBall(pong.Ball{X: 64, Y: 32, R: pong.BallRadius})

	if got := screen.Get(2, 2); got != '●' {
		t.Errorf("Get(2, 2) = %q, expected ball on a tiny screen", got)
	}
}

func TestDrawBallOffField(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawBall(pong.Ball{X: -10, Y: 32, R: pong.BallRadius})

	if strings.ContainsRune(screen.String(), '●') {
		t.Error("ball outside the field should be clipped")
	}
}

func TestDrawBallAtFieldEdge(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawBall(pong.Ball{X: 0, Y: 32, R: pong.BallRadius})

	if got := screen.Get(0, 16); got != '●' {
		t.Errorf("Get(0, 16) = %q, expected the visible half of the ball", got)
	}
}

func TestDrawScore(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawScore(pong.Score{Player1: 3, Player2: 7})

	if got := screen.Get(27, 1); got != '3' {
		t.Errorf("Player1 slot = %q, expected '3'", got)
	}
	if got := screen.Get(35, 1); got != '7' {
		t.Errorf("Player2 slot = %q, expected '7'", got)
	}
	if got := screen.Get(25, 0); got != '┌' {
		t.Errorf("slot corner = %q, expected box", got)
	}
}

func TestDrawNet(t *testing.T) {
	screen, d := newTestDrawer()
	d.DrawNet()

	if got := screen.Get(32, 0); got != '╎' {
		t.Errorf("Get(32, 0) = %q, expected net", got)
	}
	if got := screen.Get(32, 1); got != ' ' {
		t.Errorf("Get(32, 1) = %q, expected gap", got)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	screen := core.NewScreen(3, 2)
	screen.DrawText(0, 0, "ab", core.ColorDefault)

	out := RenderScreen(screen)
	if !strings.Contains(out, "ab") {
		t.Errorf("RenderScreen() = %q, expected it to contain %q", out, "ab")
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
