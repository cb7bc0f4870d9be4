package ohflip

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
)

// Visual characters for rendering
const (
	SolidChar = '█'
	GrassChar = '▓'
)

// Trampoline geometry in canvas units, relative to its anchor.
const (
	trampolineY    = CanvasH - 120
	meshHalfWidth  = 200.0
	poleX          = 196.0
	poleTop        = -20.0
	poleBottom     = 80.0
	grassTop       = CanvasH - 240
	playerBaseline = CanvasH - 170
)

// Minimum terminal size for the playfield.
const (
	MinCols = 40
	MinRows = 12
)

// view maps canvas coordinates to terminal cells through the camera zoom.
// The zoom is anchored at the bottom centre of the canvas.
type view struct {
	cols, rows int
	scale      float64
}

func newView(dst *core.Screen, scale float64) view {
	if scale <= 0 {
		scale = 1
	}
	return view{cols: dst.Width(), rows: dst.Height(), scale: scale}
}

// toCell converts a world point to fractional cell coordinates.
func (v view) toCell(p core.Vec2) (float64, float64) {
	sx := CanvasW/2 + v.scale*(p.X-CanvasW/2)
	sy := CanvasH + v.scale*(p.Y-CanvasH)
	return v.screenToCell(core.Vec2{X: sx, Y: sy})
}

// screenToCell converts an unzoomed canvas point to fractional cells.
func (v view) screenToCell(p core.Vec2) (float64, float64) {
	return p.X * float64(v.cols) / CanvasW, p.Y * float64(v.rows) / CanvasH
}

// fromCell converts fractional cell coordinates back to a world point.
func (v view) fromCell(cx, cy float64) core.Vec2 {
	sx := cx * CanvasW / float64(v.cols)
	sy := cy * CanvasH / float64(v.rows)
	return core.Vec2{
		X: CanvasW/2 + (sx-CanvasW/2)/v.scale,
		Y: CanvasH + (sy-CanvasH)/v.scale,
	}
}

// body is a rotated drawing frame in world space.
type body struct {
	origin core.Vec2
	angle  float64
}

func (b body) toWorld(local core.Vec2) core.Vec2 {
	return local.Rotate(b.angle).Add(b.origin)
}

func (b body) toLocal(world core.Vec2) core.Vec2 {
	return world.Sub(b.origin).Rotate(-b.angle)
}

// fillRect rasterizes a w×h rectangle centred at local c. Cells are filled
// when their centre falls inside; a rectangle smaller than a cell still
// marks the cell under its centre.
func (v view) fillRect(dst *core.Screen, b body, c core.Vec2, w, h float64, r rune, col core.Color) {
	hw, hh := w/2, h/2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range []core.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}} {
		x, y := v.toCell(b.toWorld(c.Add(corner)))
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0 := core.Clamp(int(math.Floor(minX)), 0, v.cols-1)
	x1 := core.Clamp(int(math.Ceil(maxX)), 0, v.cols-1)
	y0 := core.Clamp(int(math.Floor(minY)), 0, v.rows-1)
	y1 := core.Clamp(int(math.Ceil(maxY)), 0, v.rows-1)

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := b.toLocal(v.fromCell(float64(x)+0.5, float64(y)+0.5)).Sub(c)
			if math.Abs(p.X) <= hw && math.Abs(p.Y) <= hh {
				dst.SetColor(x, y, r, col)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := v.toCell(b.toWorld(c))
		dst.SetColor(int(math.Floor(x)), int(math.Floor(y)), r, col)
	}
}

// line draws a segment between two local points of b.
func (v view) line(dst *core.Screen, b body, from, to core.Vec2, r rune, col core.Color) {
	x0, y0 := v.toCell(b.toWorld(from))
	x1, y1 := v.toCell(b.toWorld(to))
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		dst.SetColor(int(math.Floor(x)), int(math.Floor(y)), r, col)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	renderSnapshot(dst, g.Snapshot(), g.state.Config().Popups)
}

func renderSnapshot(dst *core.Screen, snap Snapshot, popups config.PopupConfig) {
	if dst.Width() < MinCols || dst.Height() < MinRows {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	v := newView(dst, snap.CameraScale)
	drawTrampoline(dst, v, snap.ShakeOffset)
	drawPlayer(dst, v, snap)

	if snap.MainMenu {
		drawMenu(dst)
	} else {
		drawHUD(dst, snap)
	}
	drawPopups(dst, v, snap.Popups, popups)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawTrampoline(dst *core.Screen, v view, shake float64) {
	// Grass spans the whole width at any zoom
	for y := 0; y < v.rows; y++ {
		if v.fromCell(0, float64(y)+0.5).Y >= grassTop {
			dst.DrawHLine(0, y, v.cols, GrassChar, core.ColorGrass)
		}
	}

	anchor := body{origin: core.Vec2{X: CanvasW / 2, Y: trampolineY}}
	v.line(dst, anchor, core.Vec2{X: -poleX, Y: poleTop}, core.Vec2{X: -poleX, Y: poleBottom}, SolidChar, core.ColorBlack)
	v.line(dst, anchor, core.Vec2{X: poleX, Y: poleTop}, core.Vec2{X: poleX, Y: poleBottom}, SolidChar, core.ColorBlack)

	mesh := body{origin: core.Vec2{X: CanvasW / 2, Y: trampolineY + shake}}
	v.line(dst, mesh, core.Vec2{X: -meshHalfWidth}, core.Vec2{X: meshHalfWidth}, '▀', core.ColorBlack)
}

func drawPlayer(dst *core.Screen, v view, snap Snapshot) {
	b := body{
		origin: core.Vec2{X: CanvasW/2 + snap.PlayerX, Y: playerBaseline - snap.PlayerY},
		angle:  snap.Angle,
	}

	head := core.Vec2{X: 0, Y: -40}
	v.fillRect(dst, b, head, 80, 96, SolidChar, core.ColorOrange)

	eye := head.Add(core.Vec2{X: -4, Y: 4})
	if snap.EyeClosed || snap.Failing {
		v.line(dst, b, eye.Add(core.Vec2{X: -20, Y: 18}), eye.Add(core.Vec2{X: 20, Y: 18}), '▄', core.ColorBlack)
	} else {
		v.fillRect(dst, b, eye, 40, 40, SolidChar, core.ColorWhite)
		pupil := eye.Add(core.Vec2{X: -8, Y: 4 - snap.PupilOffset})
		v.fillRect(dst, b, pupil, 16, 24, SolidChar, core.ColorBlack)
	}

	hip := core.Vec2{X: 4, Y: 4}
	if snap.Touching {
		knee := hip.Add(core.Vec2{X: -30, Y: 20})
		v.line(dst, b, hip, knee, SolidChar, core.ColorBlack)
		v.line(dst, b, knee, hip.Add(core.Vec2{X: 0, Y: 40}), SolidChar, core.ColorBlack)
	} else {
		v.line(dst, b, hip, hip.Add(core.Vec2{X: 0, Y: 60}), SolidChar, core.ColorBlack)
	}
}

func drawMenu(dst *core.Screen) {
	h := dst.Height()
	title := "oh, flip"
	dst.DrawTextCenteredColor(h*160/720, title, core.ColorOrange)
	dst.DrawTextCenteredColor(h*240/720, "a game about backflips", core.ColorWhite)
	dst.DrawTextCenteredColor(h-2, "land flips to gain height - complete goals to feel good", core.ColorBlack)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Height: %d ft (Best: %d ft)", snap.HeightFt, snap.BestHeightFt), core.ColorBlack)
	dst.DrawTextColor(1, 1, fmt.Sprintf("Flips: %d (Best: %d)", snap.TotalFlips, snap.BestTotalFlips), core.ColorBlack)

	if snap.GoalText == "" {
		return
	}
	right := dst.Width() - 1
	header := fmt.Sprintf("Goal #%d:", snap.GoalIndex+1)
	if snap.GoalsDone {
		header = "All goals done!"
	}
	dst.DrawTextRight(right, 0, header, core.ColorBlack)
	dst.DrawTextRight(right, 1, snap.GoalText, core.ColorBlack)
}

func drawPopups(dst *core.Screen, v view, popups []Popup, cfg config.PopupConfig) {
	rest := Popup{Age: cfg.GrowIn}.Size(cfg)
	for _, p := range popups {
		x, y := v.screenToCell(p.Pos.Add(p.Offset(cfg)))
		text := p.Text
		if p.Size(cfg) > rest+0.1 {
			text = strings.ToUpper(text)
		}
		dst.DrawTextColor(int(x)-len(text)/2, int(y), text, p.Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
