package tui

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Score slot geometry in cells.
const (
	scoreSlotWidth  = 6
	scoreSlotHeight = 3
	scoreSlotGap    = 2
)

// ScreenDrawer implements pong.Drawer on a core.Screen, scaling field units to
// terminal cells.
type ScreenDrawer struct {
	screen *core.Screen
	fieldW int
	fieldH int
}

var _ pong.Drawer = (*ScreenDrawer)(nil)

// NewScreenDrawer creates a drawer mapping a fieldW x fieldH field onto screen.
func NewScreenDrawer(screen *core.Screen, fieldW, fieldH int) *ScreenDrawer {
	return &ScreenDrawer{
		screen: screen,
		fieldW: max(1, fieldW),
		fieldH: max(1, fieldH),
	}
}

// scaleX and scaleY give the number of cells per field unit.
func (d *ScreenDrawer) scaleX() float64 {
	return float64(d.screen.Width()) / float64(d.fieldW)
}

func (d *ScreenDrawer) scaleY() float64 {
	return float64(d.screen.Height()) / float64(d.fieldH)
}

// cell converts a field position to the cell containing it.
func (d *ScreenDrawer) cell(x, y float64) (int, int) {
	return int(math.Floor(x * d.scaleX())), int(math.Floor(y * d.scaleY()))
}

// DrawBall fills every cell whose centre lies inside the ball. The cell under
// the ball centre is always drawn so small terminals still show it.
func (d *ScreenDrawer) DrawBall(b pong.Ball) {
	sx, sy := d.scaleX(), d.scaleY()
	r := float64(b.R)
	w, h := d.screen.Width(), d.screen.Height()

	// Only visit cells on screen
	x0, y0 := d.cell(b.X-r, b.Y-r)
	x1, y1 := d.cell(b.X+r, b.Y+r)
	x0, x1 = core.Clamp(x0, 0, w), core.Clamp(x1, -1, w-1)
	y0, y1 = core.Clamp(y0, 0, h), core.Clamp(y1, -1, h-1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			fx := (float64(cx) + 0.5) / sx
			fy := (float64(cy) + 0.5) / sy
			if math.Hypot(fx-b.X, fy-b.Y) <= r {
				d.screen.SetColored(cx, cy, '●', core.ColorBrightWhite)
			}
		}
	}

	cx, cy := d.cell(b.X, b.Y)
	if core.NewRect(0, 0, w, h).Contains(cx, cy) {
		d.screen.SetColored(cx, cy, '●', core.ColorBrightWhite)
	}
}

// DrawPlayer fills the cells covered by the paddle, at least one cell wide.
func (d *ScreenDrawer) DrawPlayer(p pong.Paddle) {
	r := p.Rect()
	x0, y0 := d.cell(float64(r.X), float64(r.Y))
	x1 := int(math.Ceil(float64(r.Right()) * d.scaleX()))
	y1 := int(math.Ceil(float64(r.Bottom()) * d.scaleY()))

	color := core.ColorGreen
	if r.X > d.fieldW/2 {
		color = core.ColorBrightCyan
	}
	d.screen.DrawRect(core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0)), '█', color)
}

// DrawScore renders both scores in boxed slots either side of the centre line.
func (d *ScreenDrawer) DrawScore(s pong.Score) {
	mid := d.screen.Width() / 2
	left := core.NewRect(mid-scoreSlotGap/2-scoreSlotWidth, 0, scoreSlotWidth, scoreSlotHeight)
	right := core.NewRect(mid+scoreSlotGap/2, 0, scoreSlotWidth, scoreSlotHeight)

	d.drawSlot(left, s.Of(core.Player1), core.ColorGreen)
	d.drawSlot(right, s.Of(core.Player2), core.ColorBrightCyan)
}

func (d *ScreenDrawer) drawSlot(r core.Rect, points int, c core.Color) {
	d.screen.DrawRect(r, ' ', core.ColorDefault)
	d.screen.DrawBox(r, core.ColorGray)

	text := strconv.Itoa(points)
	x := r.X + (r.W-len(text))/2
	d.screen.DrawText(x, r.Y+r.H/2, text, c)
}

// DrawNet draws the dashed centre line.
func (d *ScreenDrawer) DrawNet() {
	x := d.screen.Width() / 2
	for y := 0; y < d.screen.Height(); y += 2 {
		d.screen.SetColored(x, y, '╎', core.ColorGray)
	}
}
